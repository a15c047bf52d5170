package sqlite

import (
	"context"
	"fmt"
	"time"

	"opergest/internal/storage"
)

// GetReportesPeriodo devuelve los reportes de un empleado cuya fecha de
// terminado cae dentro de [desde, hasta], ambos extremos incluidos. Cada
// reporte trae contada la cantidad de bandos que citó.
func (s *Storage) GetReportesPeriodo(ctx context.Context, empleadoID int64, desde, hasta time.Time) ([]*storage.Reporte, error) {
	const op = "storage.sqlite.GetReportesPeriodo"

	// hasta es una fecha: se incluye el día completo
	hastaExcl := hasta.AddDate(0, 0, 1)

	rows, err := s.db.QueryContext(ctx,
		`SELECT r.id, r.empleado, r.corte, r.operacion, r.talla, r.completed_at,
		        COUNT(rb.bando)
		 FROM reportes r
		 LEFT JOIN reporte_bandos rb ON rb.reporte = r.id
		 WHERE r.empleado = ? AND r.completed_at >= ? AND r.completed_at < ?
		 GROUP BY r.id
		 ORDER BY r.completed_at`,
		empleadoID, desde, hastaExcl)
	if err != nil {
		return nil, fmt.Errorf("%s: error consultando reportes: %w", op, err)
	}
	defer rows.Close()

	reportes := []*storage.Reporte{}
	for rows.Next() {
		reporte := &storage.Reporte{}
		err := rows.Scan(&reporte.ID, &reporte.Empleado, &reporte.Corte, &reporte.Operacion,
			&reporte.Talla, &reporte.CompletedAt, &reporte.NumBandos)
		if err != nil {
			return nil, fmt.Errorf("%s: error escaneando filas: %w", op, err)
		}
		reportes = append(reportes, reporte)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: error iterando filas: %w", op, err)
	}

	return reportes, nil
}
