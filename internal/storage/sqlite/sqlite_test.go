package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"opergest/internal/storage"
)

var testStorage *Storage

func TestMain(m *testing.M) {
	// una sola conexión: con :memory: cada conexión nueva sería otra base
	db, err := sql.Open("sqlite3", "file::memory:?_foreign_keys=on")
	if err != nil {
		panic(fmt.Errorf("no se pudo abrir la base de prueba: %w", err))
	}
	db.SetMaxOpenConns(1)

	testStorage = &Storage{db: db}
	if err := testStorage.bootstrap(); err != nil {
		panic(fmt.Errorf("bootstrap failed: %w", err))
	}

	code := m.Run()

	db.Close()
	os.Exit(code)
}

type TestCorteFixture struct {
	Marca     string
	Categoria string
	Color     string
	Tallas    []storage.TallaDeclarada
}

func createTestCorte(t *testing.T, fixture TestCorteFixture) int64 {
	t.Helper()

	id, err := testStorage.SaveCorte(context.Background(), storage.NuevoCorte{
		Marca:     fixture.Marca,
		Categoria: fixture.Categoria,
		Color:     fixture.Color,
		Tallas:    fixture.Tallas,
	})
	require.NoError(t, err)

	return id
}

func createTestEmpleado(t *testing.T, nombre, area string, tarifa float64) int64 {
	t.Helper()

	id, err := testStorage.SaveEmpleado(context.Background(), storage.Empleado{
		Nombre:     nombre,
		Telefono:   "5551234",
		Area:       area,
		TarifaHora: tarifa,
		Activo:     true,
	})
	require.NoError(t, err)

	return id
}

func cleanupTestDB(t *testing.T) {
	t.Helper()

	tables := []string{
		"tarea_bandos", "reporte_bandos", "tareas", "reportes",
		"registros_horas", "bandos", "tallas_corte", "cortes",
		"operaciones", "empleados",
	}
	for _, table := range tables {
		_, err := testStorage.db.Exec("DELETE FROM " + table)
		require.NoError(t, err)
	}
}
