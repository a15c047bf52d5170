package storage

type Bando struct {
	ID       int64 `json:"id"`
	Corte    int64 `json:"corte"`
	Numero   int   `json:"numero"`
	Talla    int   `json:"talla"`
	Cantidad int   `json:"cantidad"`
}
