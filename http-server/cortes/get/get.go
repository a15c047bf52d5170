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

type CorteProvider interface {
	GetCorte(ctx context.Context, id int64) (*storage.Corte, error)
	GetCortes(ctx context.Context, estado string) ([]*storage.Corte, error)
	GetCupos(ctx context.Context, corteID int64) (map[int]int, error)
}

func GetCortes(log *slog.Logger, provider CorteProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.cortes.get.GetCortes"

		estado := r.URL.Query().Get("estado")

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		cortes, err := provider.GetCortes(ctx, estado)
		if err != nil {
			if errors.Is(err, storage.ErrSinCortes) {
				// la pantalla vieja avisaba "no hay cortes", no mostraba tabla vacía
				http.Error(w, "No hay cortes registrados", http.StatusNotFound)
				return
			}
			log.Error("Error consultando cortes", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Error interno del servidor", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, cortes)
	}
}

func GetCorte(log *slog.Logger, provider CorteProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.cortes.get.GetCorte"

		idStr := chi.URLParam(r, "id")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			http.Error(w, "ID inválido", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		corte, err := provider.GetCorte(ctx, id)
		if err != nil {
			if errors.Is(err, storage.ErrCorteNotFound) {
				http.Error(w, "No se encontró el número de corte", http.StatusNotFound)
				return
			}
			log.Error("Error consultando el corte", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Error interno del servidor", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, corte)
	}
}

func GetCupos(log *slog.Logger, provider CorteProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.cortes.get.GetCupos"

		idStr := chi.URLParam(r, "id")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			http.Error(w, "ID inválido", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		cupos, err := provider.GetCupos(ctx, id)
		if err != nil {
			if errors.Is(err, storage.ErrSinTallas) {
				http.Error(w, "El corte no tiene tallas declaradas", http.StatusNotFound)
				return
			}
			log.Error("Error consultando cupos", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Error interno del servidor", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, cupos)
	}
}
