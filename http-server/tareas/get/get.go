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

type TareaProvider interface {
	GetTareasEmpleado(ctx context.Context, empleadoID int64) ([]*storage.Tarea, error)
}

// GetTareasEmpleado lista el trabajo pendiente de un empleado.
func GetTareasEmpleado(log *slog.Logger, provider TareaProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.tareas.get.GetTareasEmpleado"

		id, err := strconv.ParseInt(chi.URLParam(r, "empleado"), 10, 64)
		if err != nil {
			http.Error(w, "ID inválido", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		tareas, err := provider.GetTareasEmpleado(ctx, id)
		if err != nil {
			log.Error("Error consultando tareas", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Error interno del servidor", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, tareas)
	}
}
