package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"opergest/internal/storage"
)

const fechaLayout = "2006-01-02"

// ClockIn abre el registro del día. Un empleado no puede tener dos entradas
// abiertas el mismo día.
func (s *Storage) ClockIn(ctx context.Context, empleadoID int64, ahora time.Time) (int64, error) {
	const op = "storage.sqlite.ClockIn"

	fecha := ahora.Format(fechaLayout)

	var abiertos int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM registros_horas WHERE empleado = ? AND fecha = ? AND salida IS NULL`,
		empleadoID, fecha).Scan(&abiertos)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if abiertos > 0 {
		return 0, fmt.Errorf("%s: empleado id=%d fecha=%s: %w", op, empleadoID, fecha, storage.ErrEntradaAbierta)
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO registros_horas (empleado, fecha, entrada) VALUES (?, ?, ?)`,
		empleadoID, fecha, ahora)
	if err != nil {
		return 0, fmt.Errorf("%s: error guardando la entrada: %w", op, err)
	}

	return res.LastInsertId()
}

// ClockOut cierra el registro abierto del día.
func (s *Storage) ClockOut(ctx context.Context, empleadoID int64, ahora time.Time) error {
	const op = "storage.sqlite.ClockOut"

	fecha := ahora.Format(fechaLayout)

	var id int64
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM registros_horas WHERE empleado = ? AND fecha = ? AND salida IS NULL`,
		empleadoID, fecha).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%s: empleado id=%d fecha=%s: %w", op, empleadoID, fecha, storage.ErrSinEntradaAbierta)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	_, err = s.db.ExecContext(ctx, `UPDATE registros_horas SET salida = ? WHERE id = ?`, ahora, id)
	if err != nil {
		return fmt.Errorf("%s: error guardando la salida: %w", op, err)
	}

	return nil
}

// GetHorasPeriodo devuelve los registros de reloj de un empleado con fecha en
// [desde, hasta], extremos incluidos.
func (s *Storage) GetHorasPeriodo(ctx context.Context, empleadoID int64, desde, hasta time.Time) ([]*storage.RegistroHora, error) {
	const op = "storage.sqlite.GetHorasPeriodo"

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, empleado, fecha, entrada, salida
		 FROM registros_horas
		 WHERE empleado = ? AND fecha >= ? AND fecha <= ?
		 ORDER BY fecha, entrada`,
		empleadoID, desde.Format(fechaLayout), hasta.Format(fechaLayout))
	if err != nil {
		return nil, fmt.Errorf("%s: error consultando horas: %w", op, err)
	}
	defer rows.Close()

	registros := []*storage.RegistroHora{}
	for rows.Next() {
		registro := &storage.RegistroHora{}
		var salida sql.NullTime
		err := rows.Scan(&registro.ID, &registro.Empleado, &registro.Fecha, &registro.Entrada, &salida)
		if err != nil {
			return nil, fmt.Errorf("%s: error escaneando filas: %w", op, err)
		}
		if salida.Valid {
			t := salida.Time
			registro.Salida = &t
		}
		registros = append(registros, registro)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: error iterando filas: %w", op, err)
	}

	return registros, nil
}

// ClearHoras borra los registros de reloj de un empleado después de cerrar la
// nómina, para que no se paguen dos veces. Solo se llama con el archivo de
// nómina ya exportado.
func (s *Storage) ClearHoras(ctx context.Context, empleadoID int64) error {
	const op = "storage.sqlite.ClearHoras"

	_, err := s.db.ExecContext(ctx, `DELETE FROM registros_horas WHERE empleado = ?`, empleadoID)
	if err != nil {
		return fmt.Errorf("%s: error limpiando horas: %w", op, err)
	}

	return nil
}
