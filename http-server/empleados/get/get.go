package get

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

type EmpleadoProvider interface {
	GetEmpleado(ctx context.Context, id int64) (*storage.Empleado, error)
	GetEmpleados(ctx context.Context) ([]*storage.Empleado, error)
}

func GetEmpleados(log *slog.Logger, provider EmpleadoProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.empleados.get.GetEmpleados"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		empleados, err := provider.GetEmpleados(ctx)
		if err != nil {
			log.Error("Error consultando empleados", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Error interno del servidor", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, empleados)
	}
}

func GetEmpleado(log *slog.Logger, provider EmpleadoProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.empleados.get.GetEmpleado"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "ID inválido", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		empleado, err := provider.GetEmpleado(ctx, id)
		if err != nil {
			if errors.Is(err, storage.ErrEmpleadoNotFound) {
				http.Error(w, "No se encontró a ningún empleado", http.StatusNotFound)
				return
			}
			log.Error("Error consultando el empleado", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Error interno del servidor", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, empleado)
	}
}
