package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opergest/internal/storage"
)

func TestSaveBandoRespetaCupo(t *testing.T) {
	cleanupTestDB(t)
	ctx := context.Background()

	corteID := createTestCorte(t, TestCorteFixture{
		Marca:     "Levis",
		Categoria: "Caballero",
		Color:     "Azul",
		Tallas:    []storage.TallaDeclarada{{Talla: 32, Maximo: 10}},
	})

	_, err := testStorage.SaveBando(ctx, storage.Bando{Corte: corteID, Numero: 1, Talla: 32, Cantidad: 7})
	require.NoError(t, err)

	// con 7 producidos solo caben 3 más
	_, err = testStorage.SaveBando(ctx, storage.Bando{Corte: corteID, Numero: 2, Talla: 32, Cantidad: 4})
	var cupoErr *storage.CupoExcedidoError
	require.ErrorAs(t, err, &cupoErr)
	assert.Equal(t, 4, cupoErr.Solicitado)
	assert.Equal(t, 10, cupoErr.Maximo)
	assert.Equal(t, 7, cupoErr.Actual)

	_, err = testStorage.SaveBando(ctx, storage.Bando{Corte: corteID, Numero: 2, Talla: 32, Cantidad: 3})
	require.NoError(t, err)

	// cupo lleno: ni una pieza más
	_, err = testStorage.SaveBando(ctx, storage.Bando{Corte: corteID, Numero: 3, Talla: 32, Cantidad: 1})
	require.ErrorAs(t, err, &cupoErr)
	assert.Equal(t, 1, cupoErr.Solicitado)
	assert.Equal(t, 10, cupoErr.Actual)

	// la cantidad del corte es siempre la suma de sus bandos
	corte, err := testStorage.GetCorte(ctx, corteID)
	require.NoError(t, err)
	assert.Equal(t, 10, corte.Cantidad)
}

func TestSaveBandoCicloCompleto(t *testing.T) {
	cleanupTestDB(t)
	ctx := context.Background()

	corteID := createTestCorte(t, TestCorteFixture{
		Marca:     "Pepe",
		Categoria: "Dama",
		Color:     "Rojo",
		Tallas:    []storage.TallaDeclarada{{Talla: 30, Maximo: 20}},
	})

	_, err := testStorage.SaveBando(ctx, storage.Bando{Corte: corteID, Numero: 1, Talla: 30, Cantidad: 12})
	require.NoError(t, err)

	corte, err := testStorage.GetCorte(ctx, corteID)
	require.NoError(t, err)
	assert.Equal(t, 12, corte.Cantidad)

	_, err = testStorage.SaveBando(ctx, storage.Bando{Corte: corteID, Numero: 2, Talla: 30, Cantidad: 9})
	var cupoErr *storage.CupoExcedidoError
	require.ErrorAs(t, err, &cupoErr)
	assert.Equal(t, 9, cupoErr.Solicitado)
	assert.Equal(t, 20, cupoErr.Maximo)
	assert.Equal(t, 12, cupoErr.Actual)

	_, err = testStorage.SaveBando(ctx, storage.Bando{Corte: corteID, Numero: 2, Talla: 30, Cantidad: 8})
	require.NoError(t, err)

	corte, err = testStorage.GetCorte(ctx, corteID)
	require.NoError(t, err)
	assert.Equal(t, 20, corte.Cantidad)

	_, err = testStorage.SaveBando(ctx, storage.Bando{Corte: corteID, Numero: 3, Talla: 30, Cantidad: 1})
	require.ErrorAs(t, err, &cupoErr)
	assert.Equal(t, 1, cupoErr.Solicitado)
	assert.Equal(t, 20, cupoErr.Actual)
}

func TestSaveBandoValidaciones(t *testing.T) {
	cleanupTestDB(t)
	ctx := context.Background()

	corteID := createTestCorte(t, TestCorteFixture{
		Marca:     "Levis",
		Categoria: "Dama",
		Color:     "Negro",
		Tallas:    []storage.TallaDeclarada{{Talla: 10, Maximo: 50}},
	})

	cases := []struct {
		name  string
		bando storage.Bando
		want  error
	}{
		{
			name:  "cantidad cero",
			bando: storage.Bando{Corte: corteID, Numero: 1, Talla: 10, Cantidad: 0},
			want:  storage.ErrCantidadInvalida,
		},
		{
			name:  "cantidad negativa",
			bando: storage.Bando{Corte: corteID, Numero: 1, Talla: 10, Cantidad: -3},
			want:  storage.ErrCantidadInvalida,
		},
		{
			name:  "talla impar",
			bando: storage.Bando{Corte: corteID, Numero: 1, Talla: 31, Cantidad: 5},
			want:  storage.ErrTallaInvalida,
		},
		{
			name:  "talla fuera de rango",
			bando: storage.Bando{Corte: corteID, Numero: 1, Talla: 46, Cantidad: 5},
			want:  storage.ErrTallaInvalida,
		},
		{
			name:  "cupo no declarado",
			bando: storage.Bando{Corte: corteID, Numero: 1, Talla: 12, Cantidad: 5},
			want:  storage.ErrCupoNoDeclarado,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := testStorage.SaveBando(ctx, tc.bando)
			assert.True(t, errors.Is(err, tc.want), "esperaba %v, vino %v", tc.want, err)
		})
	}
}

func TestSaveBandoNumeroRepetido(t *testing.T) {
	cleanupTestDB(t)
	ctx := context.Background()

	corteID := createTestCorte(t, TestCorteFixture{
		Marca:     "Wrangler",
		Categoria: "Caballero",
		Color:     "Gris",
		Tallas:    []storage.TallaDeclarada{{Talla: 28, Maximo: 100}},
	})

	_, err := testStorage.SaveBando(ctx, storage.Bando{Corte: corteID, Numero: 5, Talla: 28, Cantidad: 10})
	require.NoError(t, err)

	_, err = testStorage.SaveBando(ctx, storage.Bando{Corte: corteID, Numero: 5, Talla: 28, Cantidad: 10})
	assert.ErrorIs(t, err, storage.ErrNumeroBandoUsado)

	// el mismo número en otro corte no choca
	otroCorte := createTestCorte(t, TestCorteFixture{
		Marca:     "Wrangler",
		Categoria: "Caballero",
		Color:     "Beige",
		Tallas:    []storage.TallaDeclarada{{Talla: 28, Maximo: 100}},
	})
	_, err = testStorage.SaveBando(ctx, storage.Bando{Corte: otroCorte, Numero: 5, Talla: 28, Cantidad: 10})
	assert.NoError(t, err)
}

func TestGetBandosCorte(t *testing.T) {
	cleanupTestDB(t)
	ctx := context.Background()

	corteID := createTestCorte(t, TestCorteFixture{
		Marca:     "Levis",
		Categoria: "Niño",
		Color:     "Azul",
		Tallas: []storage.TallaDeclarada{
			{Talla: 8, Maximo: 30},
			{Talla: 10, Maximo: 30},
		},
	})

	// sin bandos: lista vacía, no error
	bandos, err := testStorage.GetBandosCorte(ctx, corteID)
	require.NoError(t, err)
	assert.Empty(t, bandos)

	_, err = testStorage.SaveBando(ctx, storage.Bando{Corte: corteID, Numero: 2, Talla: 10, Cantidad: 15})
	require.NoError(t, err)
	_, err = testStorage.SaveBando(ctx, storage.Bando{Corte: corteID, Numero: 1, Talla: 8, Cantidad: 20})
	require.NoError(t, err)

	bandos, err = testStorage.GetBandosCorte(ctx, corteID)
	require.NoError(t, err)
	require.Len(t, bandos, 2)
	assert.Equal(t, 1, bandos[0].Numero)
	assert.Equal(t, 8, bandos[0].Talla)
	assert.Equal(t, 20, bandos[0].Cantidad)
	assert.Equal(t, 2, bandos[1].Numero)

	usados, err := testStorage.GetNumerosUsados(ctx, corteID)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, usados)
}
