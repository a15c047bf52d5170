package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"opergest/internal/storage"
)

// SaveTarea asigna una operación sobre bandos concretos de un corte a una
// costurera. Los bandos citados tienen que existir, ser del corte y compartir
// talla; la talla queda grabada en la tarea para no volver a cruzar bandos
// a la hora de pagar.
func (s *Storage) SaveTarea(ctx context.Context, nueva storage.NuevaTarea) (int64, error) {
	const op = "storage.sqlite.SaveTarea"

	if len(nueva.Bandos) == 0 {
		return 0, fmt.Errorf("%s: %w", op, storage.ErrBandosInvalidos)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: no se pudo abrir la transacción: %w", op, err)
	}
	defer tx.Rollback()

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(nueva.Bandos)), ",")
	args := make([]interface{}, 0, len(nueva.Bandos))
	for _, id := range nueva.Bandos {
		args = append(args, id)
	}

	rows, err := tx.QueryContext(ctx,
		`SELECT id, corte, talla FROM bandos WHERE id IN (`+placeholders+`)`, args...)
	if err != nil {
		return 0, fmt.Errorf("%s: error consultando bandos citados: %w", op, err)
	}

	talla := -1
	encontrados := 0
	for rows.Next() {
		var id, corte int64
		var t int
		if err := rows.Scan(&id, &corte, &t); err != nil {
			rows.Close()
			return 0, fmt.Errorf("%s: error escaneando filas: %w", op, err)
		}
		encontrados++
		if corte != nueva.Corte {
			rows.Close()
			return 0, fmt.Errorf("%s: bando id=%d: %w", op, id, storage.ErrBandosInvalidos)
		}
		if talla == -1 {
			talla = t
		} else if t != talla {
			rows.Close()
			return 0, fmt.Errorf("%s: bando id=%d: %w", op, id, storage.ErrBandosInvalidos)
		}
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return 0, fmt.Errorf("%s: error iterando filas: %w", op, err)
	}
	rows.Close()

	if encontrados != len(nueva.Bandos) {
		return 0, fmt.Errorf("%s: %w", op, storage.ErrBandosInvalidos)
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO tareas (empleado, corte, operacion, talla, created_at) VALUES (?, ?, ?, ?, ?)`,
		nueva.Empleado, nueva.Corte, nueva.Operacion, talla, time.Now())
	if err != nil {
		return 0, fmt.Errorf("%s: error guardando la tarea: %w", op, err)
	}

	tareaID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO tarea_bandos (tarea, bando) VALUES (?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("%s: error preparando los bandos de la tarea: %w", op, err)
	}
	defer stmt.Close()

	for _, bandoID := range nueva.Bandos {
		if _, err := stmt.ExecContext(ctx, tareaID, bandoID); err != nil {
			return 0, fmt.Errorf("%s: error guardando bando id=%d de la tarea: %w", op, bandoID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: error de commit: %w", op, err)
	}

	return tareaID, nil
}

// GetTareasEmpleado devuelve las tareas pendientes de un empleado, cada una
// con sus bandos citados. Lista vacía cuando no tiene nada asignado.
func (s *Storage) GetTareasEmpleado(ctx context.Context, empleadoID int64) ([]*storage.Tarea, error) {
	const op = "storage.sqlite.GetTareasEmpleado"

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, empleado, corte, operacion, talla, created_at
		 FROM tareas WHERE empleado = ? ORDER BY created_at`, empleadoID)
	if err != nil {
		return nil, fmt.Errorf("%s: error consultando tareas: %w", op, err)
	}
	defer rows.Close()

	tareas := []*storage.Tarea{}
	for rows.Next() {
		tarea := &storage.Tarea{}
		err := rows.Scan(&tarea.ID, &tarea.Empleado, &tarea.Corte, &tarea.Operacion, &tarea.Talla, &tarea.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("%s: error escaneando filas: %w", op, err)
		}
		tareas = append(tareas, tarea)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: error iterando filas: %w", op, err)
	}

	for _, tarea := range tareas {
		bandos, err := s.bandosDeTarea(ctx, tarea.ID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		tarea.Bandos = bandos
	}

	return tareas, nil
}

func (s *Storage) bandosDeTarea(ctx context.Context, tareaID int64) ([]int64, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT bando FROM tarea_bandos WHERE tarea = ? ORDER BY bando`, tareaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bandos := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		bandos = append(bandos, id)
	}

	return bandos, rows.Err()
}

// CompleteTarea convierte la tarea en un reporte definitivo y la borra, todo
// en una transacción. Es la frontera irreversible entre asignado y hecho:
// repetir el mismo id devuelve ErrTareaNotFound porque la tarea ya no existe.
func (s *Storage) CompleteTarea(ctx context.Context, tareaID int64) (int64, error) {
	const op = "storage.sqlite.CompleteTarea"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: no se pudo abrir la transacción: %w", op, err)
	}
	defer tx.Rollback()

	var tarea storage.Tarea
	err = tx.QueryRowContext(ctx,
		`SELECT id, empleado, corte, operacion, talla FROM tareas WHERE id = ?`, tareaID).
		Scan(&tarea.ID, &tarea.Empleado, &tarea.Corte, &tarea.Operacion, &tarea.Talla)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("%s: tarea id=%d: %w", op, tareaID, storage.ErrTareaNotFound)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO reportes (empleado, corte, operacion, talla, completed_at) VALUES (?, ?, ?, ?, ?)`,
		tarea.Empleado, tarea.Corte, tarea.Operacion, tarea.Talla, time.Now())
	if err != nil {
		return 0, fmt.Errorf("%s: error guardando el reporte: %w", op, err)
	}

	reporteID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO reporte_bandos (reporte, bando)
		 SELECT ?, bando FROM tarea_bandos WHERE tarea = ?`, reporteID, tareaID)
	if err != nil {
		return 0, fmt.Errorf("%s: error copiando los bandos al reporte: %w", op, err)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM tarea_bandos WHERE tarea = ?`, tareaID); err != nil {
		return 0, fmt.Errorf("%s: error borrando los bandos de la tarea: %w", op, err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM tareas WHERE id = ?`, tareaID); err != nil {
		return 0, fmt.Errorf("%s: error borrando la tarea: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: error de commit: %w", op, err)
	}

	return reporteID, nil
}

// RemoveTarea es la cancelación administrativa: borra la tarea sin producir
// reporte.
func (s *Storage) RemoveTarea(ctx context.Context, tareaID int64) error {
	const op = "storage.sqlite.RemoveTarea"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: no se pudo abrir la transacción: %w", op, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, `DELETE FROM tarea_bandos WHERE tarea = ?`, tareaID); err != nil {
		return fmt.Errorf("%s: error borrando los bandos de la tarea: %w", op, err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM tareas WHERE id = ?`, tareaID)
	if err != nil {
		return fmt.Errorf("%s: error borrando la tarea: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: tarea id=%d: %w", op, tareaID, storage.ErrTareaNotFound)
	}

	return tx.Commit()
}
