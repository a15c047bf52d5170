package complete

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"opergest/internal/storage"
)

type TareaCompleter interface {
	CompleteTarea(ctx context.Context, tareaID int64) (int64, error)
	RemoveTarea(ctx context.Context, tareaID int64) error
}

type Response struct {
	ReporteID int64  `json:"reporte_id,omitempty"`
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
}

// CompleteTarea marca la tarea como hecha: queda un reporte definitivo y la
// tarea desaparece. No hay vuelta atrás.
func CompleteTarea(log *slog.Logger, completer TareaCompleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.tareas.complete.CompleteTarea"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "ID inválido", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		reporteID, err := completer.CompleteTarea(ctx, id)
		if err != nil {
			if errors.Is(err, storage.ErrTareaNotFound) {
				http.Error(w, "La tarea no existe (¿ya fue completada?)", http.StatusNotFound)
				return
			}
			log.Error("Error completando la tarea", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Error interno del servidor", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{
			ReporteID: reporteID,
			Status:    strconv.Itoa(http.StatusOK),
		})
	}
}

// RemoveTarea cancela la asignación sin producir reporte.
func RemoveTarea(log *slog.Logger, completer TareaCompleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.tareas.complete.RemoveTarea"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "ID inválido", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := completer.RemoveTarea(ctx, id); err != nil {
			if errors.Is(err, storage.ErrTareaNotFound) {
				http.Error(w, "La tarea no existe", http.StatusNotFound)
				return
			}
			log.Error("Error cancelando la tarea", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Error interno del servidor", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{Status: strconv.Itoa(http.StatusOK)})
	}
}
