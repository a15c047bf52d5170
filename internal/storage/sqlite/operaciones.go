package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"opergest/internal/storage"
)

func (s *Storage) SaveOperacion(ctx context.Context, operacion storage.Operacion) (int64, error) {
	const op = "storage.sqlite.SaveOperacion"

	if operacion.PrecioChica < 0 || operacion.PrecioGrande < 0 {
		return 0, fmt.Errorf("%s: %w", op, storage.ErrPrecioInvalido)
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO operaciones (nombre, precio_chica, precio_grande) VALUES (?, ?, ?)`,
		operacion.Nombre, operacion.PrecioChica, operacion.PrecioGrande)
	if err != nil {
		return 0, fmt.Errorf("%s: error guardando la operación: %w", op, err)
	}

	return res.LastInsertId()
}

func (s *Storage) GetOperacion(ctx context.Context, id int64) (*storage.Operacion, error) {
	const op = "storage.sqlite.GetOperacion"

	var operacion storage.Operacion
	err := s.db.QueryRowContext(ctx,
		`SELECT id, nombre, precio_chica, precio_grande FROM operaciones WHERE id = ?`, id).
		Scan(&operacion.ID, &operacion.Nombre, &operacion.PrecioChica, &operacion.PrecioGrande)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: operación id=%d: %w", op, id, storage.ErrOperacionNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &operacion, nil
}

// GetOperaciones devuelve la lista de precios completa. Sin filas devuelve
// ErrSinOperaciones, igual que los cortes.
func (s *Storage) GetOperaciones(ctx context.Context) ([]*storage.Operacion, error) {
	const op = "storage.sqlite.GetOperaciones"

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, nombre, precio_chica, precio_grande FROM operaciones ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("%s: error consultando operaciones: %w", op, err)
	}
	defer rows.Close()

	var operaciones []*storage.Operacion
	for rows.Next() {
		operacion := &storage.Operacion{}
		err := rows.Scan(&operacion.ID, &operacion.Nombre, &operacion.PrecioChica, &operacion.PrecioGrande)
		if err != nil {
			return nil, fmt.Errorf("%s: error escaneando filas: %w", op, err)
		}
		operaciones = append(operaciones, operacion)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: error iterando filas: %w", op, err)
	}

	if len(operaciones) == 0 {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrSinOperaciones)
	}

	return operaciones, nil
}

func (s *Storage) UpdateOperacion(ctx context.Context, operacion storage.Operacion) error {
	const op = "storage.sqlite.UpdateOperacion"

	if operacion.PrecioChica < 0 || operacion.PrecioGrande < 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrPrecioInvalido)
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE operaciones SET nombre = ?, precio_chica = ?, precio_grande = ? WHERE id = ?`,
		operacion.Nombre, operacion.PrecioChica, operacion.PrecioGrande, operacion.ID)
	if err != nil {
		return fmt.Errorf("%s: error actualizando la operación: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: operación id=%d: %w", op, operacion.ID, storage.ErrOperacionNotFound)
	}

	return nil
}

func (s *Storage) DeleteOperacion(ctx context.Context, id int64) error {
	const op = "storage.sqlite.DeleteOperacion"

	res, err := s.db.ExecContext(ctx, `DELETE FROM operaciones WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%s: error borrando la operación: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: operación id=%d: %w", op, id, storage.ErrOperacionNotFound)
	}

	return nil
}
