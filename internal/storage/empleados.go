package storage

const (
	AreaCostura = "costura"
	AreaHoras   = "horas"
)

type Empleado struct {
	ID       int64  `json:"id"`
	Nombre   string `json:"nombre"`
	Telefono string `json:"telefono"`
	// Area decide cómo se paga: costura por pieza, horas por reloj.
	Area       string  `json:"area"`
	TarifaHora float64 `json:"tarifa_hora"`
	Activo     bool    `json:"activo"`
}
