package storage

import "time"

// RegistroHora es una entrada/salida de reloj de un empleado por horas.
// A lo sumo un registro abierto (sin salida) por empleado por día.
type RegistroHora struct {
	ID       int64      `json:"id"`
	Empleado int64      `json:"empleado"`
	Fecha    string     `json:"fecha"` // "2006-01-02"
	Entrada  time.Time  `json:"entrada"`
	Salida   *time.Time `json:"salida,omitempty"`
}
