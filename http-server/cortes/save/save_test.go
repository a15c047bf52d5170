package save

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"opergest/internal/storage"
)

type MockCorteSaver struct {
	mock.Mock
}

func (m *MockCorteSaver) SaveCorte(ctx context.Context, nuevo storage.NuevoCorte) (int64, error) {
	args := m.Called(ctx, nuevo)
	return args.Get(0).(int64), args.Error(1)
}

func TestSaveCorte_Success(t *testing.T) {
	mockSaver := new(MockCorteSaver)

	mockSaver.On("SaveCorte", mock.Anything, mock.MatchedBy(func(nuevo storage.NuevoCorte) bool {
		return nuevo.Marca == "Levis" &&
			nuevo.Categoria == "Dama" &&
			nuevo.Color == "Azul" &&
			len(nuevo.Tallas) == 2 &&
			nuevo.Tallas[0].Talla == 28 && nuevo.Tallas[0].Maximo == 40
	})).Return(int64(5), nil)

	logger := slog.Default()
	handler := SaveCorte(logger, mockSaver)

	reqBody := `{
		"marca": "Levis",
		"categoria": "Dama",
		"color": "Azul",
		"tallas": [
			{"talla": 28, "maximo": 40},
			{"talla": 30, "maximo": 25}
		]
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/cortes", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp Response
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), resp.CorteID)
	assert.Equal(t, "200", resp.Status)

	mockSaver.AssertExpectations(t)
}

func TestSaveCorte_InvalidJSON(t *testing.T) {
	mockSaver := new(MockCorteSaver)
	logger := slog.Default()
	handler := SaveCorte(logger, mockSaver)

	req := httptest.NewRequest(http.MethodPost, "/api/cortes", strings.NewReader(`{`))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Datos inválidos")

	mockSaver.AssertNotCalled(t, "SaveCorte")
}

func TestSaveCorte_SinTallas(t *testing.T) {
	mockSaver := new(MockCorteSaver)
	logger := slog.Default()
	handler := SaveCorte(logger, mockSaver)

	// un corte sin tallas declaradas no se puede producir
	reqBody := `{"marca": "Levis", "categoria": "Dama", "color": "Azul", "tallas": []}`

	req := httptest.NewRequest(http.MethodPost, "/api/cortes", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Faltan campos obligatorios")

	mockSaver.AssertNotCalled(t, "SaveCorte")
}

func TestSaveCorte_StorageError(t *testing.T) {
	mockSaver := new(MockCorteSaver)

	mockSaver.On("SaveCorte", mock.Anything, mock.Anything).
		Return(int64(0), errors.New("database is locked"))

	logger := slog.Default()
	handler := SaveCorte(logger, mockSaver)

	reqBody := `{
		"marca": "Levis",
		"categoria": "Dama",
		"color": "Azul",
		"tallas": [{"talla": 28, "maximo": 40}]
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/cortes", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	var resp Response
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	assert.NoError(t, err)
	assert.Equal(t, "no se pudo guardar el corte", resp.Error)

	mockSaver.AssertExpectations(t)
}
