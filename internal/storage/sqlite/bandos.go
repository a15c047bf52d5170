package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"opergest/internal/constants"
	"opergest/internal/storage"
)

// SaveBando registra producción contra el cupo (corte, talla). Todo el ciclo
// buscar cupo / sumar lo producido / verificar tope / insertar / recalcular
// corre dentro de una sola transacción, así dos altas concurrentes no pueden
// pasar las dos la verificación del tope.
func (s *Storage) SaveBando(ctx context.Context, bando storage.Bando) (int64, error) {
	const op = "storage.sqlite.SaveBando"

	if bando.Cantidad <= 0 {
		return 0, fmt.Errorf("%s: %w", op, storage.ErrCantidadInvalida)
	}
	if !constants.TallaValida(bando.Talla) {
		return 0, fmt.Errorf("%s: talla %d: %w", op, bando.Talla, storage.ErrTallaInvalida)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: no se pudo abrir la transacción: %w", op, err)
	}
	defer tx.Rollback()

	var maximo int
	err = tx.QueryRowContext(ctx,
		`SELECT maximo FROM tallas_corte WHERE corte = ? AND talla = ?`,
		bando.Corte, bando.Talla).Scan(&maximo)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("%s: corte %d talla %d: %w", op, bando.Corte, bando.Talla, storage.ErrCupoNoDeclarado)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var actual int
	err = tx.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(cantidad), 0) FROM bandos WHERE corte = ? AND talla = ?`,
		bando.Corte, bando.Talla).Scan(&actual)
	if err != nil {
		return 0, fmt.Errorf("%s: error sumando bandos: %w", op, err)
	}

	if actual+bando.Cantidad > maximo {
		return 0, fmt.Errorf("%s: %w", op, &storage.CupoExcedidoError{
			Corte:      bando.Corte,
			Talla:      bando.Talla,
			Solicitado: bando.Cantidad,
			Maximo:     maximo,
			Actual:     actual,
		})
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO bandos (corte, numero, talla, cantidad) VALUES (?, ?, ?, ?)`,
		bando.Corte, bando.Numero, bando.Talla, bando.Cantidad)
	if err != nil {
		if esUniqueViolation(err) {
			return 0, fmt.Errorf("%s: corte %d bando %d: %w", op, bando.Corte, bando.Numero, storage.ErrNumeroBandoUsado)
		}
		return 0, fmt.Errorf("%s: error guardando el bando: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if err := recomputeCantidadTx(ctx, tx, bando.Corte); err != nil {
		return 0, fmt.Errorf("%s: error recalculando la cantidad del corte: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: error de commit: %w", op, err)
	}

	return id, nil
}

// GetBandosCorte devuelve los bandos de un corte. Acá "sin filas" es una lista
// vacía, no un error; así venía comportándose la pantalla de bandos.
func (s *Storage) GetBandosCorte(ctx context.Context, corteID int64) ([]*storage.Bando, error) {
	const op = "storage.sqlite.GetBandosCorte"

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, corte, numero, talla, cantidad FROM bandos WHERE corte = ? ORDER BY numero`,
		corteID)
	if err != nil {
		return nil, fmt.Errorf("%s: error consultando bandos: %w", op, err)
	}
	defer rows.Close()

	bandos := []*storage.Bando{}
	for rows.Next() {
		bando := &storage.Bando{}
		err := rows.Scan(&bando.ID, &bando.Corte, &bando.Numero, &bando.Talla, &bando.Cantidad)
		if err != nil {
			return nil, fmt.Errorf("%s: error escaneando filas: %w", op, err)
		}
		bandos = append(bandos, bando)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: error iterando filas: %w", op, err)
	}

	return bandos, nil
}

// GetNumerosUsados devuelve los números de bando ya tomados en un corte; la UI
// ofrece para el próximo alta solo los que faltan.
func (s *Storage) GetNumerosUsados(ctx context.Context, corteID int64) ([]int, error) {
	const op = "storage.sqlite.GetNumerosUsados"

	rows, err := s.db.QueryContext(ctx,
		`SELECT numero FROM bandos WHERE corte = ? ORDER BY numero`, corteID)
	if err != nil {
		return nil, fmt.Errorf("%s: error consultando números usados: %w", op, err)
	}
	defer rows.Close()

	numeros := []int{}
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("%s: error escaneando filas: %w", op, err)
		}
		numeros = append(numeros, n)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: error iterando filas: %w", op, err)
	}

	return numeros, nil
}

func esUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}
