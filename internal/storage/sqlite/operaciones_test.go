package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opergest/internal/storage"
)

func TestSaveOperacion(t *testing.T) {
	cleanupTestDB(t)
	ctx := context.Background()

	id, err := testStorage.SaveOperacion(ctx, storage.Operacion{
		Nombre: "Pretina", PrecioChica: 1.5, PrecioGrande: 2.0,
	})
	require.NoError(t, err)

	operacion, err := testStorage.GetOperacion(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Pretina", operacion.Nombre)
	assert.Equal(t, 1.5, operacion.PrecioChica)
	assert.Equal(t, 2.0, operacion.PrecioGrande)
}

func TestSaveOperacionPrecioInvalido(t *testing.T) {
	cleanupTestDB(t)
	ctx := context.Background()

	_, err := testStorage.SaveOperacion(ctx, storage.Operacion{
		Nombre: "Pretina", PrecioChica: -1, PrecioGrande: 2,
	})
	assert.ErrorIs(t, err, storage.ErrPrecioInvalido)

	_, err = testStorage.SaveOperacion(ctx, storage.Operacion{
		Nombre: "Pretina", PrecioChica: 1, PrecioGrande: -2,
	})
	assert.ErrorIs(t, err, storage.ErrPrecioInvalido)
}

func TestGetOperaciones(t *testing.T) {
	cleanupTestDB(t)
	ctx := context.Background()

	_, err := testStorage.GetOperaciones(ctx)
	assert.ErrorIs(t, err, storage.ErrSinOperaciones)

	_, err = testStorage.SaveOperacion(ctx, storage.Operacion{Nombre: "Ruedo", PrecioChica: 0.8, PrecioGrande: 1.2})
	require.NoError(t, err)
	_, err = testStorage.SaveOperacion(ctx, storage.Operacion{Nombre: "Bolsa", PrecioChica: 1, PrecioGrande: 1})
	require.NoError(t, err)

	operaciones, err := testStorage.GetOperaciones(ctx)
	require.NoError(t, err)
	require.Len(t, operaciones, 2)
	// vienen ordenadas por nombre
	assert.Equal(t, "Bolsa", operaciones[0].Nombre)
	assert.Equal(t, "Ruedo", operaciones[1].Nombre)
}

func TestUpdateOperacion(t *testing.T) {
	cleanupTestDB(t)
	ctx := context.Background()

	id, err := testStorage.SaveOperacion(ctx, storage.Operacion{Nombre: "Ruedo", PrecioChica: 0.8, PrecioGrande: 1.2})
	require.NoError(t, err)

	err = testStorage.UpdateOperacion(ctx, storage.Operacion{
		ID: id, Nombre: "Ruedo doble", PrecioChica: 1.0, PrecioGrande: 1.5,
	})
	require.NoError(t, err)

	operacion, err := testStorage.GetOperacion(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Ruedo doble", operacion.Nombre)
	assert.Equal(t, 1.0, operacion.PrecioChica)

	err = testStorage.UpdateOperacion(ctx, storage.Operacion{ID: 999, Nombre: "Nada"})
	assert.ErrorIs(t, err, storage.ErrOperacionNotFound)
}

func TestDeleteOperacion(t *testing.T) {
	cleanupTestDB(t)
	ctx := context.Background()

	id, err := testStorage.SaveOperacion(ctx, storage.Operacion{Nombre: "Cierre", PrecioChica: 2, PrecioGrande: 3})
	require.NoError(t, err)

	require.NoError(t, testStorage.DeleteOperacion(ctx, id))

	_, err = testStorage.GetOperacion(ctx, id)
	assert.ErrorIs(t, err, storage.ErrOperacionNotFound)

	err = testStorage.DeleteOperacion(ctx, id)
	assert.ErrorIs(t, err, storage.ErrOperacionNotFound)
}
