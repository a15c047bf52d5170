package sqlite

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"opergest/internal/config"
)

type Storage struct {
	db *sql.DB
}

func New(cfg config.Config) (*Storage, error) {
	const op = "storage.sqlite.New"

	dsn := fmt.Sprintf("file:%s?_foreign_keys=on", cfg.StoragePath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s := &Storage{db: db}
	if err := s.bootstrap(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s, nil
}

// bootstrap crea el esquema si no existe. Es idempotente, se corre en cada
// arranque igual que hacía la versión vieja del programa.
func (s *Storage) bootstrap() error {
	const op = "storage.sqlite.bootstrap"

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS cortes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			marca TEXT NOT NULL,
			categoria TEXT NOT NULL,
			color TEXT NOT NULL,
			cantidad INTEGER NOT NULL DEFAULT 0,
			estado TEXT NOT NULL DEFAULT 'en_proceso')`,

		`CREATE TABLE IF NOT EXISTS tallas_corte (
			corte INTEGER NOT NULL,
			talla INTEGER NOT NULL,
			maximo INTEGER NOT NULL,
			PRIMARY KEY (corte, talla),
			FOREIGN KEY (corte) REFERENCES cortes (id))`,

		`CREATE TABLE IF NOT EXISTS bandos (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			corte INTEGER NOT NULL,
			numero INTEGER NOT NULL,
			talla INTEGER NOT NULL,
			cantidad INTEGER NOT NULL,
			UNIQUE (corte, numero),
			FOREIGN KEY (corte) REFERENCES cortes (id))`,

		`CREATE TABLE IF NOT EXISTS operaciones (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			nombre TEXT NOT NULL,
			precio_chica REAL NOT NULL,
			precio_grande REAL NOT NULL)`,

		`CREATE TABLE IF NOT EXISTS tareas (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			empleado INTEGER NOT NULL,
			corte INTEGER NOT NULL,
			operacion INTEGER NOT NULL,
			talla INTEGER NOT NULL,
			created_at DATETIME NOT NULL,
			FOREIGN KEY (corte) REFERENCES cortes (id),
			FOREIGN KEY (operacion) REFERENCES operaciones (id))`,

		`CREATE TABLE IF NOT EXISTS tarea_bandos (
			tarea INTEGER NOT NULL,
			bando INTEGER NOT NULL,
			PRIMARY KEY (tarea, bando),
			FOREIGN KEY (tarea) REFERENCES tareas (id),
			FOREIGN KEY (bando) REFERENCES bandos (id))`,

		`CREATE TABLE IF NOT EXISTS reportes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			empleado INTEGER NOT NULL,
			corte INTEGER NOT NULL,
			operacion INTEGER NOT NULL,
			talla INTEGER NOT NULL,
			completed_at DATETIME NOT NULL)`,

		`CREATE TABLE IF NOT EXISTS reporte_bandos (
			reporte INTEGER NOT NULL,
			bando INTEGER NOT NULL,
			PRIMARY KEY (reporte, bando),
			FOREIGN KEY (reporte) REFERENCES reportes (id))`,

		`CREATE TABLE IF NOT EXISTS empleados (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			nombre TEXT NOT NULL,
			telefono TEXT NOT NULL,
			area TEXT NOT NULL,
			tarifa_hora REAL NOT NULL DEFAULT 0,
			activo INTEGER NOT NULL DEFAULT 1)`,

		`CREATE TABLE IF NOT EXISTS registros_horas (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			empleado INTEGER NOT NULL,
			fecha TEXT NOT NULL,
			entrada DATETIME NOT NULL,
			salida DATETIME)`,
	}

	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	return nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}
