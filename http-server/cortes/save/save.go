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

type CorteSaver interface {
	SaveCorte(ctx context.Context, nuevo storage.NuevoCorte) (int64, error)
}

type Request struct {
	Marca     string `json:"marca" validate:"required"`
	Categoria string `json:"categoria" validate:"required"`
	Color     string `json:"color" validate:"required"`
	Tallas    []struct {
		Talla  int `json:"talla"`
		Maximo int `json:"maximo" validate:"gt=0"`
	} `json:"tallas" validate:"required,min=1,dive"`
}

type Response struct {
	CorteID int64  `json:"corte_id"`
	Status  string `json:"status"`
	Error   string `json:"error"`
}

var validate = validator.New()

// SaveCorte registra un corte nuevo junto con los cupos de sus tallas.
func SaveCorte(log *slog.Logger, saver CorteSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.cortes.save.SaveCorte"

		var req Request
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			log.Error("JSON inválido", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Datos inválidos", http.StatusBadRequest)
			return
		}

		if err := validate.Struct(req); err != nil {
			log.Error("Campos inválidos", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Faltan campos obligatorios", http.StatusBadRequest)
			return
		}

		nuevo := storage.NuevoCorte{
			Marca:     req.Marca,
			Categoria: req.Categoria,
			Color:     req.Color,
		}
		for _, t := range req.Tallas {
			nuevo.Tallas = append(nuevo.Tallas, storage.TallaDeclarada{Talla: t.Talla, Maximo: t.Maximo})
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		corteID, err := saver.SaveCorte(ctx, nuevo)
		if err != nil {
			log.Error("Error guardando el corte", slog.String("op", op), slog.String("error", err.Error()))
			render.JSON(w, r, Response{Error: "no se pudo guardar el corte"})
			return
		}

		render.JSON(w, r, Response{
			CorteID: corteID,
			Status:  strconv.Itoa(http.StatusOK),
		})
	}
}
