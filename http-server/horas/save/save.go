package save

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"opergest/internal/storage"
)

type RelojStorage interface {
	ClockIn(ctx context.Context, empleadoID int64, ahora time.Time) (int64, error)
	ClockOut(ctx context.Context, empleadoID int64, ahora time.Time) error
}

type Request struct {
	Empleado int64 `json:"empleado" validate:"required"`
}

type Response struct {
	RegistroID int64  `json:"registro_id,omitempty"`
	Status     string `json:"status"`
	Error      string `json:"error,omitempty"`
}

var validate = validator.New()

func ClockIn(log *slog.Logger, reloj RelojStorage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.horas.save.ClockIn"

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Datos inválidos", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			http.Error(w, "Falta el empleado", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, err := reloj.ClockIn(ctx, req.Empleado, time.Now())
		if err != nil {
			if errors.Is(err, storage.ErrEntradaAbierta) {
				http.Error(w, "El empleado ya tiene una entrada abierta hoy", http.StatusConflict)
				return
			}
			log.Error("Error marcando entrada", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Error interno del servidor", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{RegistroID: id, Status: strconv.Itoa(http.StatusOK)})
	}
}

func ClockOut(log *slog.Logger, reloj RelojStorage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.horas.save.ClockOut"

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Datos inválidos", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			http.Error(w, "Falta el empleado", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := reloj.ClockOut(ctx, req.Empleado, time.Now()); err != nil {
			if errors.Is(err, storage.ErrSinEntradaAbierta) {
				http.Error(w, "El empleado no tiene una entrada abierta hoy", http.StatusConflict)
				return
			}
			log.Error("Error marcando salida", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Error interno del servidor", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{Status: strconv.Itoa(http.StatusOK)})
	}
}
