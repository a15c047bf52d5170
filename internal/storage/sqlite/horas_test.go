package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opergest/internal/storage"
)

func TestClockInClockOut(t *testing.T) {
	cleanupTestDB(t)
	ctx := context.Background()

	empleadoID := createTestEmpleado(t, "Rosa", storage.AreaHoras, 30)

	entrada := time.Date(2026, 3, 10, 8, 0, 0, 0, time.Local)
	_, err := testStorage.ClockIn(ctx, empleadoID, entrada)
	require.NoError(t, err)

	// segunda entrada el mismo día sin salida
	_, err = testStorage.ClockIn(ctx, empleadoID, entrada.Add(time.Hour))
	assert.ErrorIs(t, err, storage.ErrEntradaAbierta)

	salida := entrada.Add(8 * time.Hour)
	require.NoError(t, testStorage.ClockOut(ctx, empleadoID, salida))

	registros, err := testStorage.GetHorasPeriodo(ctx, empleadoID,
		time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local),
		time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local))
	require.NoError(t, err)
	require.Len(t, registros, 1)
	assert.Equal(t, "2026-03-10", registros[0].Fecha)
	require.NotNil(t, registros[0].Salida)
	assert.Equal(t, 8.0, registros[0].Salida.Sub(registros[0].Entrada).Hours())

	// cerrado el registro, puede volver a marcar entrada el mismo día
	_, err = testStorage.ClockIn(ctx, empleadoID, salida.Add(time.Hour))
	assert.NoError(t, err)
}

func TestClockOutSinEntrada(t *testing.T) {
	cleanupTestDB(t)
	ctx := context.Background()

	empleadoID := createTestEmpleado(t, "Rosa", storage.AreaHoras, 30)

	err := testStorage.ClockOut(ctx, empleadoID, time.Now())
	assert.ErrorIs(t, err, storage.ErrSinEntradaAbierta)
}

func TestGetHorasPeriodo(t *testing.T) {
	cleanupTestDB(t)
	ctx := context.Background()

	empleadoID := createTestEmpleado(t, "Rosa", storage.AreaHoras, 30)

	dias := []time.Time{
		time.Date(2026, 3, 9, 8, 0, 0, 0, time.Local),  // fuera del período
		time.Date(2026, 3, 10, 8, 0, 0, 0, time.Local), // primer día
		time.Date(2026, 3, 22, 8, 0, 0, 0, time.Local), // último día
		time.Date(2026, 3, 23, 8, 0, 0, 0, time.Local), // fuera del período
	}
	for _, dia := range dias {
		_, err := testStorage.ClockIn(ctx, empleadoID, dia)
		require.NoError(t, err)
		require.NoError(t, testStorage.ClockOut(ctx, empleadoID, dia.Add(8*time.Hour)))
	}

	registros, err := testStorage.GetHorasPeriodo(ctx, empleadoID,
		time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local),
		time.Date(2026, 3, 22, 0, 0, 0, 0, time.Local))
	require.NoError(t, err)
	require.Len(t, registros, 2)
	assert.Equal(t, "2026-03-10", registros[0].Fecha)
	assert.Equal(t, "2026-03-22", registros[1].Fecha)
}

func TestClearHoras(t *testing.T) {
	cleanupTestDB(t)
	ctx := context.Background()

	empleadoID := createTestEmpleado(t, "Rosa", storage.AreaHoras, 30)
	otroID := createTestEmpleado(t, "Carmen", storage.AreaHoras, 28)

	ahora := time.Date(2026, 3, 10, 8, 0, 0, 0, time.Local)
	_, err := testStorage.ClockIn(ctx, empleadoID, ahora)
	require.NoError(t, err)
	_, err = testStorage.ClockIn(ctx, otroID, ahora)
	require.NoError(t, err)

	require.NoError(t, testStorage.ClearHoras(ctx, empleadoID))

	desde := time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)
	hasta := time.Date(2026, 3, 31, 0, 0, 0, 0, time.Local)

	registros, err := testStorage.GetHorasPeriodo(ctx, empleadoID, desde, hasta)
	require.NoError(t, err)
	assert.Empty(t, registros)

	// las horas de los demás quedan intactas
	registros, err = testStorage.GetHorasPeriodo(ctx, otroID, desde, hasta)
	require.NoError(t, err)
	assert.Len(t, registros, 1)
}
