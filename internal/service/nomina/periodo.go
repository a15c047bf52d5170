package nomina

import "time"

// Periodo deriva la quincena de pago del taller a partir de una fecha de
// referencia. El calendario es fijo:
//
//	día 1..8   -> [27 del mes anterior, 8 del mes]
//	día 9..22  -> [10, 22 del mes]
//	día 23..   -> [27 del mes, 27 + 12 días]
//
// Los dos extremos se pagan completos.
func Periodo(ref time.Time) (inicio, fin time.Time) {
	y, m, d := ref.Date()
	loc := ref.Location()

	switch {
	case d <= 8:
		// time.Date normaliza enero-1 al diciembre anterior
		inicio = time.Date(y, m-1, 27, 0, 0, 0, 0, loc)
		fin = time.Date(y, m, 8, 0, 0, 0, 0, loc)
	case d <= 22:
		inicio = time.Date(y, m, 10, 0, 0, 0, 0, loc)
		fin = time.Date(y, m, 22, 0, 0, 0, 0, loc)
	default:
		inicio = time.Date(y, m, 27, 0, 0, 0, 0, loc)
		fin = inicio.AddDate(0, 0, 12)
	}

	return inicio, fin
}
