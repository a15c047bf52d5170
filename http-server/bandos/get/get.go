package get

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"opergest/internal/storage"
)

type BandoProvider interface {
	GetBandosCorte(ctx context.Context, corteID int64) ([]*storage.Bando, error)
	GetNumerosUsados(ctx context.Context, corteID int64) ([]int, error)
}

// GetBandosCorte lista los bandos de un corte. Lista vacía es respuesta
// válida acá.
func GetBandosCorte(log *slog.Logger, provider BandoProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.bandos.get.GetBandosCorte"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "ID inválido", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		bandos, err := provider.GetBandosCorte(ctx, id)
		if err != nil {
			log.Error("Error consultando bandos", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Error interno del servidor", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, bandos)
	}
}

// GetNumerosUsados devuelve los números de bando tomados; la UI ofrece solo
// los libres para el próximo alta.
func GetNumerosUsados(log *slog.Logger, provider BandoProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.bandos.get.GetNumerosUsados"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "ID inválido", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		numeros, err := provider.GetNumerosUsados(ctx, id)
		if err != nil {
			log.Error("Error consultando números usados", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Error interno del servidor", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, numeros)
	}
}
