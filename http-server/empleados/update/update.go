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

type EmpleadoUpdater interface {
	UpdateEmpleado(ctx context.Context, empleado storage.Empleado) error
}

type Request struct {
	Nombre     string  `json:"nombre" validate:"required"`
	Telefono   string  `json:"telefono" validate:"required,numeric"`
	Area       string  `json:"area" validate:"required,oneof=costura horas"`
	TarifaHora float64 `json:"tarifa_hora" validate:"gte=0"`
	Activo     bool    `json:"activo"`
}

type Response struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

var validate = validator.New()

func UpdateEmpleado(log *slog.Logger, updater EmpleadoUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.empleados.update.UpdateEmpleado"

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
			http.Error(w, "Campos inválidos (revise nombre, teléfono y área)", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		err = updater.UpdateEmpleado(ctx, storage.Empleado{
			ID:         id,
			Nombre:     req.Nombre,
			Telefono:   req.Telefono,
			Area:       req.Area,
			TarifaHora: req.TarifaHora,
			Activo:     req.Activo,
		})
		if err != nil {
			if errors.Is(err, storage.ErrEmpleadoNotFound) {
				http.Error(w, "No se encontró a ningún empleado", http.StatusNotFound)
				return
			}
			log.Error("Error actualizando el empleado", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Error interno del servidor", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{Status: strconv.Itoa(http.StatusOK)})
	}
}
