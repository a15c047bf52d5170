package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"opergest/internal/constants"
	"opergest/internal/storage"
)

// SaveCorte inserta el corte y declara sus tallas en la misma transacción.
func (s *Storage) SaveCorte(ctx context.Context, nuevo storage.NuevoCorte) (int64, error) {
	const op = "storage.sqlite.SaveCorte"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: no se pudo abrir la transacción: %w", op, err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO cortes (marca, categoria, color, cantidad, estado) VALUES (?, ?, ?, 0, ?)`,
		nuevo.Marca, nuevo.Categoria, nuevo.Color, storage.EstadoEnProceso)
	if err != nil {
		return 0, fmt.Errorf("%s: error guardando el corte: %w", op, err)
	}

	corteID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	for _, t := range nuevo.Tallas {
		if !constants.TallaValida(t.Talla) {
			return 0, fmt.Errorf("%s: talla %d: %w", op, t.Talla, storage.ErrTallaInvalida)
		}
		if t.Maximo <= 0 {
			return 0, fmt.Errorf("%s: talla %d: %w", op, t.Talla, storage.ErrCantidadInvalida)
		}
		if err := declareTallaTx(ctx, tx, corteID, t.Talla, t.Maximo); err != nil {
			return 0, fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: error de commit: %w", op, err)
	}

	return corteID, nil
}

func (s *Storage) GetCorte(ctx context.Context, id int64) (*storage.Corte, error) {
	const op = "storage.sqlite.GetCorte"

	stmt := `SELECT id, marca, categoria, color, cantidad, estado FROM cortes WHERE id = ?`

	var corte storage.Corte
	err := s.db.QueryRowContext(ctx, stmt, id).Scan(
		&corte.ID, &corte.Marca, &corte.Categoria, &corte.Color, &corte.Cantidad, &corte.Estado)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: corte id=%d: %w", op, id, storage.ErrCorteNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &corte, nil
}

// GetCortes lista los cortes, opcionalmente filtrados por estado. Si no hay
// ninguno devuelve ErrSinCortes: la pantalla vieja trataba "sin filas" como
// un aviso al usuario, no como lista vacía.
func (s *Storage) GetCortes(ctx context.Context, estado string) ([]*storage.Corte, error) {
	const op = "storage.sqlite.GetCortes"

	stmt := `SELECT id, marca, categoria, color, cantidad, estado FROM cortes`
	var args []interface{}

	if estado != "" {
		stmt += ` WHERE estado = ?`
		args = append(args, estado)
	}

	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: error consultando cortes: %w", op, err)
	}
	defer rows.Close()

	var cortes []*storage.Corte
	for rows.Next() {
		corte := &storage.Corte{}
		err := rows.Scan(&corte.ID, &corte.Marca, &corte.Categoria, &corte.Color, &corte.Cantidad, &corte.Estado)
		if err != nil {
			return nil, fmt.Errorf("%s: error escaneando filas: %w", op, err)
		}
		cortes = append(cortes, corte)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: error iterando filas: %w", op, err)
	}

	if len(cortes) == 0 {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrSinCortes)
	}

	return cortes, nil
}

func (s *Storage) UpdateCorte(ctx context.Context, id int64, marca, categoria, color string) error {
	const op = "storage.sqlite.UpdateCorte"

	res, err := s.db.ExecContext(ctx,
		`UPDATE cortes SET marca = ?, categoria = ?, color = ? WHERE id = ?`,
		marca, categoria, color, id)
	if err != nil {
		return fmt.Errorf("%s: error actualizando el corte: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: corte id=%d: %w", op, id, storage.ErrCorteNotFound)
	}

	return nil
}

// RecomputeCantidad deja la cantidad del corte igual a la suma de sus bandos.
// Nunca se confía en el total incremental; se recalcula siempre.
func (s *Storage) RecomputeCantidad(ctx context.Context, corteID int64) error {
	const op = "storage.sqlite.RecomputeCantidad"

	if err := recomputeCantidadTx(ctx, s.db, corteID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

func recomputeCantidadTx(ctx context.Context, ex execer, corteID int64) error {
	// misma sentencia que usaba la versión vieja del programa
	_, err := ex.ExecContext(ctx,
		`UPDATE cortes
		 SET cantidad = COALESCE((SELECT SUM(cantidad) FROM bandos WHERE corte = ?), 0)
		 WHERE id = ?`,
		corteID, corteID)
	return err
}

// SetEntregado transiciona en_proceso -> entregado. Repetirlo devuelve
// ErrCorteEntregado para que la UI avise "ya estaba entregado".
func (s *Storage) SetEntregado(ctx context.Context, id int64) error {
	const op = "storage.sqlite.SetEntregado"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: no se pudo abrir la transacción: %w", op, err)
	}
	defer tx.Rollback()

	var estado string
	err = tx.QueryRowContext(ctx, `SELECT estado FROM cortes WHERE id = ?`, id).Scan(&estado)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%s: corte id=%d: %w", op, id, storage.ErrCorteNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	if estado == storage.EstadoEntregado {
		return fmt.Errorf("%s: corte id=%d: %w", op, id, storage.ErrCorteEntregado)
	}

	_, err = tx.ExecContext(ctx, `UPDATE cortes SET estado = ? WHERE id = ?`, storage.EstadoEntregado, id)
	if err != nil {
		return fmt.Errorf("%s: error marcando el corte como entregado: %w", op, err)
	}

	return tx.Commit()
}
