package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"inventario-system/internal/dto"
	"inventario-system/internal/entities"
)

type fakeResponsableService struct {
	historial map[string][]entities.Responsable
}

func (f *fakeResponsableService) Asignar(_ context.Context, _ dto.AsignarResponsableDTO) (*dto.RegistroCreadoDTO, error) {
	return &dto.RegistroCreadoDTO{ID: 1}, nil
}

func (f *fakeResponsableService) Liberar(_ context.Context, equipo string) (*dto.LiberacionResultadoDTO, error) {
	return &dto.LiberacionResultadoDTO{NombreEquipo: equipo, Liberados: 0}, nil
}

func (f *fakeResponsableService) Historial(_ context.Context, equipo string) ([]entities.Responsable, error) {
	return f.historial[equipo], nil
}

func (f *fakeResponsableService) ListarTodos(_ context.Context, _ *string) ([]entities.Responsable, error) {
	return nil, nil
}

func respuestaHistorial(t *testing.T, svc *fakeResponsableService, equipo string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/responsables/"+equipo, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("equipo")
	c.SetParamValues(equipo)

	ctrl := NewResponsableController(svc, zap.NewNop())
	require.NoError(t, ctrl.Historial(c))

	var cuerpo map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cuerpo))
	return rec, cuerpo
}

func TestResponsableController_HistorialDevuelveLaListaCompleta(t *testing.T) {
	svc := &fakeResponsableService{historial: map[string][]entities.Responsable{
		"PC-001": {
			{ID: 2, Equipo: "PC-001", Tecnico: null.StringFrom("Técnico Dos"), Activo: true},
			{ID: 1, Equipo: "PC-001", Tecnico: null.StringFrom("Técnico Uno"), Activo: false},
		},
	}}

	rec, cuerpo := respuestaHistorial(t, svc, "PC-001")

	assert.Equal(t, http.StatusOK, rec.Code)
	lista, ok := cuerpo["body"].([]interface{})
	require.True(t, ok)
	require.Len(t, lista, 2)

	// la asignación vigente viene primero, las liberadas después
	primero := lista[0].(map[string]interface{})
	assert.Equal(t, true, primero["activo"])
}

func TestResponsableController_HistorialSinAsignacionesEsListaVacia(t *testing.T) {
	svc := &fakeResponsableService{historial: map[string][]entities.Responsable{}}

	rec, cuerpo := respuestaHistorial(t, svc, "PC-999")

	assert.Equal(t, http.StatusOK, rec.Code)
	lista, ok := cuerpo["body"].([]interface{})
	require.True(t, ok)
	assert.Empty(t, lista)
}
