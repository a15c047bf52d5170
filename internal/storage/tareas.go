package storage

import "time"

// Tarea es trabajo asignado y todavía no terminado. Al completarla se borra
// y en su lugar queda un Reporte.
type Tarea struct {
	ID        int64     `json:"id"`
	Empleado  int64     `json:"empleado"`
	Corte     int64     `json:"corte"`
	Operacion int64     `json:"operacion"`
	Talla     int       `json:"talla"`
	Bandos    []int64   `json:"bandos"`
	CreatedAt time.Time `json:"created_at"`
}

type NuevaTarea struct {
	Empleado  int64   `json:"empleado"`
	Corte     int64   `json:"corte"`
	Operacion int64   `json:"operacion"`
	Bandos    []int64 `json:"bandos"`
}

// Reporte es el registro inmutable de una tarea terminada; de aquí sale la
// paga por pieza.
type Reporte struct {
	ID          int64     `json:"id"`
	Empleado    int64     `json:"empleado"`
	Corte       int64     `json:"corte"`
	Operacion   int64     `json:"operacion"`
	Talla       int       `json:"talla"`
	NumBandos   int       `json:"num_bandos"`
	CompletedAt time.Time `json:"completed_at"`
}
