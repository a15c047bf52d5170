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

type CorteUpdater interface {
	UpdateCorte(ctx context.Context, id int64, marca, categoria, color string) error
	SetEntregado(ctx context.Context, id int64) error
	DeclareTalla(ctx context.Context, corteID int64, talla, maximo int) error
}

type UpdateRequest struct {
	Marca     string `json:"marca" validate:"required"`
	Categoria string `json:"categoria" validate:"required"`
	Color     string `json:"color" validate:"required"`
}

type TallaRequest struct {
	Talla  int `json:"talla"`
	Maximo int `json:"maximo" validate:"gt=0"`
}

type Response struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

var validate = validator.New()

func UpdateCorte(log *slog.Logger, updater CorteUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.cortes.update.UpdateCorte"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "ID inválido", http.StatusBadRequest)
			return
		}

		var req UpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Datos inválidos", http.StatusBadRequest)
			return
		}

		if err := validate.Struct(req); err != nil {
			http.Error(w, "Faltan campos obligatorios", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := updater.UpdateCorte(ctx, id, req.Marca, req.Categoria, req.Color); err != nil {
			if errors.Is(err, storage.ErrCorteNotFound) {
				http.Error(w, "No se encontró el número de corte", http.StatusNotFound)
				return
			}
			log.Error("Error actualizando el corte", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Error interno del servidor", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{Status: strconv.Itoa(http.StatusOK)})
	}
}

// EntregarCorte marca el corte como entregado. Si ya estaba entregado se le
// avisa al usuario, no es un error del servidor.
func EntregarCorte(log *slog.Logger, updater CorteUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.cortes.update.EntregarCorte"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "ID inválido", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := updater.SetEntregado(ctx, id); err != nil {
			if errors.Is(err, storage.ErrCorteNotFound) {
				http.Error(w, "No se encontró el número de corte", http.StatusNotFound)
				return
			}
			if errors.Is(err, storage.ErrCorteEntregado) {
				render.JSON(w, r, Response{Status: strconv.Itoa(http.StatusOK), Error: "el corte ya estaba entregado"})
				return
			}
			log.Error("Error entregando el corte", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Error interno del servidor", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{Status: strconv.Itoa(http.StatusOK)})
	}
}

func DeclararTalla(log *slog.Logger, updater CorteUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.cortes.update.DeclararTalla"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "ID inválido", http.StatusBadRequest)
			return
		}

		var req TallaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Datos inválidos", http.StatusBadRequest)
			return
		}

		if err := validate.Struct(req); err != nil {
			http.Error(w, "La cantidad máxima debe ser mayor que cero", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := updater.DeclareTalla(ctx, id, req.Talla, req.Maximo); err != nil {
			if errors.Is(err, storage.ErrTallaInvalida) {
				http.Error(w, "La talla no pertenece a la lista de tallas", http.StatusBadRequest)
				return
			}
			log.Error("Error declarando la talla", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Error interno del servidor", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{Status: strconv.Itoa(http.StatusOK)})
	}
}
