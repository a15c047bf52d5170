package storage

import "opergest/internal/constants"

type Operacion struct {
	ID           int64   `json:"id"`
	Nombre       string  `json:"nombre"`
	PrecioChica  float64 `json:"precio_chica"`
	PrecioGrande float64 `json:"precio_grande"`
}

// PrecioPara elige la tarifa según la talla: chica hasta 27, grande desde 28.
func (o Operacion) PrecioPara(talla int) float64 {
	if talla < constants.TallaGrandeDesde {
		return o.PrecioChica
	}
	return o.PrecioGrande
}
