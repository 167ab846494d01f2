package controllers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventario-system/pkg/api"
	apperrors "inventario-system/pkg/errors"
)

// manejarError traduce los errores de la capa de servicio al envoltorio
// HTTP. Los errores de almacenamiento se registran pero no se exponen.
func manejarError(c echo.Context, logger *zap.Logger, err error, mensajeFallo string) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		return api.ErrorResponse(c, httpErr)
	}

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return api.ErrorResponse(c, apperrors.NewHttpError(http.StatusNotFound, "Registro no encontrado", err, nil))
	case errors.Is(err, apperrors.ErrReferenciaInvalida):
		return api.ErrorResponse(c, apperrors.NewHttpError(http.StatusBadRequest, "El equipo referenciado no existe", err, nil))
	default:
		logger.Error(mensajeFallo, zap.Error(err))
		return api.ErrorResponse(c, apperrors.NewHttpError(http.StatusInternalServerError, mensajeFallo, err, nil))
	}
}

func errorDeBind(c echo.Context, err error) error {
	return api.ErrorResponse(c, apperrors.NewHttpError(
		http.StatusBadRequest,
		"Formato de datos inválido en el cuerpo de la petición",
		err,
		nil,
	))
}
