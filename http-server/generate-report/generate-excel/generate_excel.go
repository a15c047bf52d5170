package generate_excel

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

type NominaExporter interface {
	ExportarNomina(ctx context.Context, empleadoID int64, ref time.Time) (string, error)
	CerrarNomina(ctx context.Context, empleadoID int64, ref time.Time) (string, error)
}

type Response struct {
	Archivo string `json:"archivo,omitempty"`
	Status  string `json:"status"`
	Error   string `json:"error,omitempty"`
}

// ExportarNomina escribe la planilla de la quincena a disco y devuelve la ruta.
func ExportarNomina(log *slog.Logger, exporter NominaExporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.generate-report.ExportarNomina"

		id, ref, ok := parseParams(w, r)
		if !ok {
			return
		}

		// a la planilla se le da más tiempo
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		path, err := exporter.ExportarNomina(ctx, id, ref)
		if err != nil {
			if errors.Is(err, storage.ErrEmpleadoNotFound) {
				http.Error(w, "No se encontró a ningún empleado", http.StatusNotFound)
				return
			}
			log.Error("Error exportando la nómina", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Error interno del servidor", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{Archivo: path, Status: strconv.Itoa(http.StatusOK)})
	}
}

// CerrarNomina exporta y además limpia las horas procesadas del empleado.
// El borrado es definitivo: solo corre con el archivo ya escrito.
func CerrarNomina(log *slog.Logger, exporter NominaExporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.generate-report.CerrarNomina"

		id, ref, ok := parseParams(w, r)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		path, err := exporter.CerrarNomina(ctx, id, ref)
		if err != nil {
			if errors.Is(err, storage.ErrEmpleadoNotFound) {
				http.Error(w, "No se encontró a ningún empleado", http.StatusNotFound)
				return
			}
			log.Error("Error cerrando la nómina", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Error interno del servidor", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{Archivo: path, Status: strconv.Itoa(http.StatusOK)})
	}
}

func parseParams(w http.ResponseWriter, r *http.Request) (int64, time.Time, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "empleado"), 10, 64)
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return 0, time.Time{}, false
	}

	ref := time.Now()
	if fechaStr := r.URL.Query().Get("fecha"); fechaStr != "" {
		ref, err = time.Parse("2006-01-02", fechaStr)
		if err != nil {
			http.Error(w, "Fecha inválida", http.StatusBadRequest)
			return 0, time.Time{}, false
		}
	}

	return id, ref, true
}
