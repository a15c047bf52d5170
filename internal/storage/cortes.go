package storage

const (
	EstadoEnProceso = "en_proceso"
	EstadoEntregado = "entregado"
)

type Corte struct {
	ID        int64  `json:"id"`
	Marca     string `json:"marca"`
	Categoria string `json:"categoria"`
	Color     string `json:"color"`
	// Cantidad es derivada: siempre la suma de los bandos del corte.
	Cantidad int    `json:"cantidad"`
	Estado   string `json:"estado"`
}

// NuevoCorte registra el corte junto con sus tallas en una sola transacción.
type NuevoCorte struct {
	Marca     string           `json:"marca"`
	Categoria string           `json:"categoria"`
	Color     string           `json:"color"`
	Tallas    []TallaDeclarada `json:"tallas"`
}

type TallaDeclarada struct {
	Talla  int `json:"talla"`
	Maximo int `json:"maximo"`
}
