package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"opergest/internal/storage"
)

func (s *Storage) SaveEmpleado(ctx context.Context, empleado storage.Empleado) (int64, error) {
	const op = "storage.sqlite.SaveEmpleado"

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO empleados (nombre, telefono, area, tarifa_hora, activo) VALUES (?, ?, ?, ?, ?)`,
		empleado.Nombre, empleado.Telefono, empleado.Area, empleado.TarifaHora, empleado.Activo)
	if err != nil {
		return 0, fmt.Errorf("%s: error guardando el empleado: %w", op, err)
	}

	return res.LastInsertId()
}

func (s *Storage) GetEmpleado(ctx context.Context, id int64) (*storage.Empleado, error) {
	const op = "storage.sqlite.GetEmpleado"

	var empleado storage.Empleado
	err := s.db.QueryRowContext(ctx,
		`SELECT id, nombre, telefono, area, tarifa_hora, activo FROM empleados WHERE id = ?`, id).
		Scan(&empleado.ID, &empleado.Nombre, &empleado.Telefono, &empleado.Area,
			&empleado.TarifaHora, &empleado.Activo)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: empleado id=%d: %w", op, id, storage.ErrEmpleadoNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &empleado, nil
}

func (s *Storage) GetEmpleados(ctx context.Context) ([]*storage.Empleado, error) {
	const op = "storage.sqlite.GetEmpleados"

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, nombre, telefono, area, tarifa_hora, activo FROM empleados ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("%s: error consultando empleados: %w", op, err)
	}
	defer rows.Close()

	empleados := []*storage.Empleado{}
	for rows.Next() {
		empleado := &storage.Empleado{}
		err := rows.Scan(&empleado.ID, &empleado.Nombre, &empleado.Telefono, &empleado.Area,
			&empleado.TarifaHora, &empleado.Activo)
		if err != nil {
			return nil, fmt.Errorf("%s: error escaneando filas: %w", op, err)
		}
		empleados = append(empleados, empleado)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: error iterando filas: %w", op, err)
	}

	return empleados, nil
}

func (s *Storage) UpdateEmpleado(ctx context.Context, empleado storage.Empleado) error {
	const op = "storage.sqlite.UpdateEmpleado"

	res, err := s.db.ExecContext(ctx,
		`UPDATE empleados SET nombre = ?, telefono = ?, area = ?, tarifa_hora = ?, activo = ?
		 WHERE id = ?`,
		empleado.Nombre, empleado.Telefono, empleado.Area, empleado.TarifaHora, empleado.Activo,
		empleado.ID)
	if err != nil {
		return fmt.Errorf("%s: error actualizando el empleado: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: empleado id=%d: %w", op, empleado.ID, storage.ErrEmpleadoNotFound)
	}

	return nil
}
