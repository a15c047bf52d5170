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

type OperacionSaver interface {
	SaveOperacion(ctx context.Context, operacion storage.Operacion) (int64, error)
}

type Request struct {
	Nombre       string  `json:"nombre" validate:"required"`
	PrecioChica  float64 `json:"precio_chica" validate:"gte=0"`
	PrecioGrande float64 `json:"precio_grande" validate:"gte=0"`
}

type Response struct {
	OperacionID int64  `json:"operacion_id"`
	Status      string `json:"status"`
	Error       string `json:"error,omitempty"`
}

var validate = validator.New()

func SaveOperacion(log *slog.Logger, saver OperacionSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.operaciones.save.SaveOperacion"

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

		id, err := saver.SaveOperacion(ctx, storage.Operacion{
			Nombre:       req.Nombre,
			PrecioChica:  req.PrecioChica,
			PrecioGrande: req.PrecioGrande,
		})
		if err != nil {
			if errors.Is(err, storage.ErrPrecioInvalido) {
				http.Error(w, "Los precios no pueden ser negativos", http.StatusBadRequest)
				return
			}
			log.Error("Error guardando la operación", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Error interno del servidor", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{
			OperacionID: id,
			Status:      strconv.Itoa(http.StatusOK),
		})
	}
}
