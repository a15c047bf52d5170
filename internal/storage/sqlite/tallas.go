package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"opergest/internal/constants"
	"opergest/internal/storage"
)

// DeclareTalla declara (o corrige) el cupo de una talla dentro de un corte.
// El programa viejo permitía declarar la misma talla dos veces y quedaban dos
// topes; acá hay UNIQUE (corte, talla) y la segunda declaración pisa el máximo.
func (s *Storage) DeclareTalla(ctx context.Context, corteID int64, talla, maximo int) error {
	const op = "storage.sqlite.DeclareTalla"

	if !constants.TallaValida(talla) {
		return fmt.Errorf("%s: talla %d: %w", op, talla, storage.ErrTallaInvalida)
	}
	if maximo <= 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrCantidadInvalida)
	}

	if err := declareTallaTx(ctx, s.db, corteID, talla, maximo); err != nil {
		return fmt.Errorf("%s: error declarando la talla: %w", op, err)
	}

	return nil
}

func declareTallaTx(ctx context.Context, ex execer, corteID int64, talla, maximo int) error {
	_, err := ex.ExecContext(ctx,
		`INSERT INTO tallas_corte (corte, talla, maximo) VALUES (?, ?, ?)
		 ON CONFLICT (corte, talla) DO UPDATE SET maximo = excluded.maximo`,
		corteID, talla, maximo)
	return err
}

func (s *Storage) GetCupo(ctx context.Context, corteID int64, talla int) (int, error) {
	const op = "storage.sqlite.GetCupo"

	var maximo int
	err := s.db.QueryRowContext(ctx,
		`SELECT maximo FROM tallas_corte WHERE corte = ? AND talla = ?`,
		corteID, talla).Scan(&maximo)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("%s: corte %d talla %d: %w", op, corteID, talla, storage.ErrCupoNoDeclarado)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return maximo, nil
}

// GetCupos devuelve talla -> máximo para un corte. Sin tallas declaradas
// devuelve ErrSinTallas.
func (s *Storage) GetCupos(ctx context.Context, corteID int64) (map[int]int, error) {
	const op = "storage.sqlite.GetCupos"

	rows, err := s.db.QueryContext(ctx,
		`SELECT talla, maximo FROM tallas_corte WHERE corte = ? ORDER BY talla`, corteID)
	if err != nil {
		return nil, fmt.Errorf("%s: error consultando cupos: %w", op, err)
	}
	defer rows.Close()

	cupos := make(map[int]int)
	for rows.Next() {
		var talla, maximo int
		if err := rows.Scan(&talla, &maximo); err != nil {
			return nil, fmt.Errorf("%s: error escaneando filas: %w", op, err)
		}
		cupos[talla] = maximo
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: error iterando filas: %w", op, err)
	}

	if len(cupos) == 0 {
		return nil, fmt.Errorf("%s: corte id=%d: %w", op, corteID, storage.ErrSinTallas)
	}

	return cupos, nil
}
