package save

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"opergest/internal/storage"
)

type BandoSaver interface {
	SaveBando(ctx context.Context, bando storage.Bando) (int64, error)
}

type Request struct {
	Corte    int64 `json:"corte" validate:"required"`
	Numero   int   `json:"numero" validate:"gt=0"`
	Talla    int   `json:"talla"`
	Cantidad int   `json:"cantidad" validate:"gt=0"`
}

type Response struct {
	BandoID int64  `json:"bando_id"`
	Status  string `json:"status"`
	Error   string `json:"error,omitempty"`
}

var validate = validator.New()

// SaveBando registra producción contra el cupo de una talla. Si se pasa del
// tope, la respuesta le dice al usuario cuánto cabe todavía.
func SaveBando(log *slog.Logger, saver BandoSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.bandos.save.SaveBando"

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("JSON inválido", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Datos inválidos", http.StatusBadRequest)
			return
		}

		if err := validate.Struct(req); err != nil {
			http.Error(w, "La cantidad debe ser mayor que cero", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		bandoID, err := saver.SaveBando(ctx, storage.Bando{
			Corte:    req.Corte,
			Numero:   req.Numero,
			Talla:    req.Talla,
			Cantidad: req.Cantidad,
		})
		if err != nil {
			var cupoErr *storage.CupoExcedidoError
			if errors.As(err, &cupoErr) {
				w.WriteHeader(http.StatusConflict)
				render.JSON(w, r, Response{Error: fmt.Sprintf(
					"Se pasa del cupo: pidió %d, máximo %d, ya producidos %d (caben %d más)",
					cupoErr.Solicitado, cupoErr.Maximo, cupoErr.Actual, cupoErr.Maximo-cupoErr.Actual)})
				return
			}
			if errors.Is(err, storage.ErrCupoNoDeclarado) {
				http.Error(w, "No hay cupo declarado para esa talla", http.StatusNotFound)
				return
			}
			if errors.Is(err, storage.ErrTallaInvalida) {
				http.Error(w, "La talla no pertenece a la lista de tallas", http.StatusBadRequest)
				return
			}
			if errors.Is(err, storage.ErrNumeroBandoUsado) {
				http.Error(w, "El número de bando ya está usado en este corte", http.StatusConflict)
				return
			}
			log.Error("Error guardando el bando", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Error interno del servidor", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{
			BandoID: bandoID,
			Status:  strconv.Itoa(http.StatusOK),
		})
	}
}
