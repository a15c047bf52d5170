package save

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"opergest/internal/storage"
)

type EmpleadoSaver interface {
	SaveEmpleado(ctx context.Context, empleado storage.Empleado) (int64, error)
}

type Request struct {
	Nombre     string  `json:"nombre" validate:"required"`
	Telefono   string  `json:"telefono" validate:"required,numeric"`
	Area       string  `json:"area" validate:"required,oneof=costura horas"`
	TarifaHora float64 `json:"tarifa_hora" validate:"gte=0"`
}

type Response struct {
	EmpleadoID int64  `json:"empleado_id"`
	Status     string `json:"status"`
	Error      string `json:"error,omitempty"`
}

var validate = validator.New()

func SaveEmpleado(log *slog.Logger, saver EmpleadoSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.empleados.save.SaveEmpleado"

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Datos inválidos", http.StatusBadRequest)
			return
		}

		// el teléfono tiene que ser numérico; antes se colaba cualquier cosa
		if err := validate.Struct(req); err != nil {
			http.Error(w, "Campos inválidos (revise nombre, teléfono y área)", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, err := saver.SaveEmpleado(ctx, storage.Empleado{
			Nombre:     req.Nombre,
			Telefono:   req.Telefono,
			Area:       req.Area,
			TarifaHora: req.TarifaHora,
			Activo:     true,
		})
		if err != nil {
			log.Error("Error guardando el empleado", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Error interno del servidor", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{EmpleadoID: id, Status: strconv.Itoa(http.StatusOK)})
	}
}
