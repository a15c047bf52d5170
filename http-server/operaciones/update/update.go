package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"opergest/internal/storage"
)

type OperacionUpdater interface {
	UpdateOperacion(ctx context.Context, operacion storage.Operacion) error
	DeleteOperacion(ctx context.Context, id int64) error
}

type Request struct {
	Nombre       string  `json:"nombre" validate:"required"`
	PrecioChica  float64 `json:"precio_chica" validate:"gte=0"`
	PrecioGrande float64 `json:"precio_grande" validate:"gte=0"`
}

type Response struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

var validate = validator.New()

func UpdateOperacion(log *slog.Logger, updater OperacionUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.operaciones.update.UpdateOperacion"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "ID inválido", http.StatusBadRequest)
			return
		}

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Datos inválidos", http.StatusBadRequest)
			return
		}

		if err := validate.Struct(req); err != nil {
			http.Error(w, "Los precios no pueden ser negativos", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		err = updater.UpdateOperacion(ctx, storage.Operacion{
			ID:           id,
			Nombre:       req.Nombre,
			PrecioChica:  req.PrecioChica,
			PrecioGrande: req.PrecioGrande,
		})
		if err != nil {
			if errors.Is(err, storage.ErrOperacionNotFound) {
				http.Error(w, "No se encontró ninguna operación con ese ID", http.StatusNotFound)
				return
			}
			log.Error("Error actualizando la operación", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Error interno del servidor", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{Status: strconv.Itoa(http.StatusOK)})
	}
}

func DeleteOperacion(log *slog.Logger, updater OperacionUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.operaciones.update.DeleteOperacion"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "ID inválido", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := updater.DeleteOperacion(ctx, id); err != nil {
			if errors.Is(err, storage.ErrOperacionNotFound) {
				http.Error(w, "No se encontró ninguna operación con ese ID", http.StatusNotFound)
				return
			}
			log.Error("Error borrando la operación", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Error interno del servidor", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{Status: strconv.Itoa(http.StatusOK)})
	}
}
