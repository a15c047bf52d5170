package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opergest/internal/storage"
)

func TestDeclareTalla(t *testing.T) {
	cleanupTestDB(t)
	ctx := context.Background()

	corteID := createTestCorte(t, TestCorteFixture{Marca: "Levis", Categoria: "Dama", Color: "Azul"})

	require.NoError(t, testStorage.DeclareTalla(ctx, corteID, 30, 25))

	maximo, err := testStorage.GetCupo(ctx, corteID, 30)
	require.NoError(t, err)
	assert.Equal(t, 25, maximo)
}

func TestDeclareTallaCorrigeMaximo(t *testing.T) {
	cleanupTestDB(t)
	ctx := context.Background()

	corteID := createTestCorte(t, TestCorteFixture{Marca: "Levis", Categoria: "Dama", Color: "Azul"})

	require.NoError(t, testStorage.DeclareTalla(ctx, corteID, 30, 25))

	// volver a declarar la misma talla pisa el máximo, no suma otro tope
	require.NoError(t, testStorage.DeclareTalla(ctx, corteID, 30, 40))

	maximo, err := testStorage.GetCupo(ctx, corteID, 30)
	require.NoError(t, err)
	assert.Equal(t, 40, maximo)

	cupos, err := testStorage.GetCupos(ctx, corteID)
	require.NoError(t, err)
	assert.Len(t, cupos, 1)
}

func TestDeclareTallaInvalida(t *testing.T) {
	cleanupTestDB(t)
	ctx := context.Background()

	corteID := createTestCorte(t, TestCorteFixture{Marca: "Levis", Categoria: "Dama", Color: "Azul"})

	err := testStorage.DeclareTalla(ctx, corteID, 31, 10)
	assert.ErrorIs(t, err, storage.ErrTallaInvalida)

	err = testStorage.DeclareTalla(ctx, corteID, -2, 10)
	assert.ErrorIs(t, err, storage.ErrTallaInvalida)

	err = testStorage.DeclareTalla(ctx, corteID, 30, 0)
	assert.ErrorIs(t, err, storage.ErrCantidadInvalida)
}

func TestGetCupoNoDeclarado(t *testing.T) {
	cleanupTestDB(t)
	ctx := context.Background()

	corteID := createTestCorte(t, TestCorteFixture{Marca: "Levis", Categoria: "Dama", Color: "Azul"})

	_, err := testStorage.GetCupo(ctx, corteID, 30)
	assert.ErrorIs(t, err, storage.ErrCupoNoDeclarado)

	_, err = testStorage.GetCupos(ctx, corteID)
	assert.ErrorIs(t, err, storage.ErrSinTallas)
}
