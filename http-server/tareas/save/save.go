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

type TareaSaver interface {
	SaveTarea(ctx context.Context, nueva storage.NuevaTarea) (int64, error)
}

type Request struct {
	Empleado  int64   `json:"empleado" validate:"required"`
	Corte     int64   `json:"corte" validate:"required"`
	Operacion int64   `json:"operacion" validate:"required"`
	Bandos    []int64 `json:"bandos" validate:"required,min=1"`
}

type Response struct {
	TareaID int64  `json:"tarea_id"`
	Status  string `json:"status"`
	Error   string `json:"error,omitempty"`
}

var validate = validator.New()

// SaveTarea asigna una operación sobre bandos de un corte a una costurera.
func SaveTarea(log *slog.Logger, saver TareaSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.tareas.save.SaveTarea"

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("JSON inválido", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Datos inválidos", http.StatusBadRequest)
			return
		}

		if err := validate.Struct(req); err != nil {
			http.Error(w, "Faltan campos obligatorios", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		tareaID, err := saver.SaveTarea(ctx, storage.NuevaTarea{
			Empleado:  req.Empleado,
			Corte:     req.Corte,
			Operacion: req.Operacion,
			Bandos:    req.Bandos,
		})
		if err != nil {
			if errors.Is(err, storage.ErrBandosInvalidos) {
				http.Error(w, "Los bandos no pertenecen al corte o mezclan tallas", http.StatusBadRequest)
				return
			}
			log.Error("Error guardando la tarea", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Error interno del servidor", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{
			TareaID: tareaID,
			Status:  strconv.Itoa(http.StatusOK),
		})
	}
}
