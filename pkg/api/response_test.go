package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "inventario-system/pkg/errors"
)

func responder(t *testing.T, fn func(c echo.Context) error) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, fn(c))

	var cuerpo map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cuerpo))
	return rec, cuerpo
}

func TestErrorResponse_HttpErrorConDetallesLosIncluye(t *testing.T) {
	httpErr := apperrors.NewHttpError(
		http.StatusBadRequest,
		"Campos inválidos u obligatorios: Equipo",
		fmt.Errorf("fallo de validación"),
		map[string]interface{}{"Equipo": "no cumple la regla 'required'"},
	)

	rec, cuerpo := responder(t, func(c echo.Context) error {
		return ErrorResponse(c, httpErr)
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, cuerpo["status"])
	assert.Equal(t, "Campos inválidos u obligatorios: Equipo", cuerpo["message"])

	details, ok := cuerpo["details"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "no cumple la regla 'required'", details["Equipo"])
	// el error interno nunca sale al cliente
	assert.NotContains(t, rec.Body.String(), "fallo de validación")
}

func TestErrorResponse_SinDetallesOmiteElCampo(t *testing.T) {
	httpErr := apperrors.NewHttpError(http.StatusNotFound, "Registro no encontrado", apperrors.ErrNotFound, nil)

	rec, cuerpo := responder(t, func(c echo.Context) error {
		return ErrorResponse(c, httpErr)
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotContains(t, cuerpo, "details")
}

func TestErrorResponse_ErrorDesconocidoEsGenerico(t *testing.T) {
	rec, cuerpo := responder(t, func(c echo.Context) error {
		return ErrorResponse(c, fmt.Errorf("violación de restricción: detalle interno"))
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Error interno del servidor", cuerpo["message"])
	assert.NotContains(t, rec.Body.String(), "detalle interno")
}

func TestSuccessList_ListaVaciaNuncaEsNull(t *testing.T) {
	rec, cuerpo := responder(t, func(c echo.Context) error {
		return SuccessList[string](c, "Lista obtenida", nil)
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	lista, ok := cuerpo["body"].([]interface{})
	require.True(t, ok)
	assert.Empty(t, lista)
}
