package get

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"opergest/internal/service/nomina"
	"opergest/internal/storage"
)

type MockNominaProvider struct {
	mock.Mock
}

func (m *MockNominaProvider) ReportePara(ctx context.Context, empleadoID int64, ref time.Time) (*nomina.ReporteNomina, error) {
	args := m.Called(ctx, empleadoID, ref)

	var reporte *nomina.ReporteNomina
	if args.Get(0) != nil {
		reporte = args.Get(0).(*nomina.ReporteNomina)
	}

	return reporte, args.Error(1)
}

func newTestRouter(provider NominaProvider) *chi.Mux {
	router := chi.NewRouter()
	router.Get("/api/nomina/{empleado}", GetReporteNomina(slog.Default(), provider))
	return router
}

func TestGetReporteNomina_Success(t *testing.T) {
	mockProvider := new(MockNominaProvider)

	ref := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	mockProvider.On("ReportePara", mock.Anything, int64(7), ref).Return(&nomina.ReporteNomina{
		Empleado: 7,
		Nombre:   "María",
		Area:     storage.AreaCostura,
		Total:    10,
	}, nil)

	router := newTestRouter(mockProvider)

	req := httptest.NewRequest(http.MethodGet, "/api/nomina/7?fecha=2024-03-15", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp nomina.ReporteNomina
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	assert.NoError(t, err)
	assert.Equal(t, "María", resp.Nombre)
	assert.Equal(t, 10.0, resp.Total)

	mockProvider.AssertExpectations(t)
}

func TestGetReporteNomina_FechaInvalida(t *testing.T) {
	mockProvider := new(MockNominaProvider)
	router := newTestRouter(mockProvider)

	req := httptest.NewRequest(http.MethodGet, "/api/nomina/7?fecha=15-03-2024", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Fecha inválida")

	mockProvider.AssertNotCalled(t, "ReportePara")
}

func TestGetReporteNomina_EmpleadoInexistente(t *testing.T) {
	mockProvider := new(MockNominaProvider)

	mockProvider.On("ReportePara", mock.Anything, int64(999), mock.Anything).
		Return(nil, fmt.Errorf("service.nomina.ReportePara: %w", storage.ErrEmpleadoNotFound))

	router := newTestRouter(mockProvider)

	req := httptest.NewRequest(http.MethodGet, "/api/nomina/999", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "No se encontró a ningún empleado")
}
