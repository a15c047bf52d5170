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

	"opergest/internal/service/nomina"
	"opergest/internal/storage"
)

type NominaProvider interface {
	ReportePara(ctx context.Context, empleadoID int64, ref time.Time) (*nomina.ReporteNomina, error)
}

// GetReporteNomina arma el reporte quincenal de un empleado. La fecha de
// referencia viene por query (?fecha=2006-01-02); sin fecha se usa hoy.
func GetReporteNomina(log *slog.Logger, provider NominaProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.nomina.get.GetReporteNomina"

		id, err := strconv.ParseInt(chi.URLParam(r, "empleado"), 10, 64)
		if err != nil {
			http.Error(w, "ID inválido", http.StatusBadRequest)
			return
		}

		ref := time.Now()
		if fechaStr := r.URL.Query().Get("fecha"); fechaStr != "" {
			ref, err = time.Parse("2006-01-02", fechaStr)
			if err != nil {
				http.Error(w, "Fecha inválida", http.StatusBadRequest)
				return
			}
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		reporte, err := provider.ReportePara(ctx, id, ref)
		if err != nil {
			if errors.Is(err, storage.ErrEmpleadoNotFound) {
				http.Error(w, "No se encontró a ningún empleado", http.StatusNotFound)
				return
			}
			log.Error("Error armando la nómina", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Error interno del servidor", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, reporte)
	}
}
