package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"opergest/internal/storage"
)

type OperacionProvider interface {
	GetOperaciones(ctx context.Context) ([]*storage.Operacion, error)
}

func GetOperaciones(log *slog.Logger, provider OperacionProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.operaciones.get.GetOperaciones"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		operaciones, err := provider.GetOperaciones(ctx)
		if err != nil {
			if errors.Is(err, storage.ErrSinOperaciones) {
				http.Error(w, "No hay operaciones registradas", http.StatusNotFound)
				return
			}
			log.Error("Error consultando operaciones", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Error interno del servidor", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, operaciones)
	}
}
