package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "inventario-system/pkg/errors"
)

type Response[T any] struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Body    T           `json:"body"`
	Details interface{} `json:"details,omitempty"`
}

// SuccessOne devuelve un único objeto.
func SuccessOne[T any](c echo.Context, code int, message string, data T) error {
	return c.JSON(code, Response[T]{
		Status:  true,
		Message: message,
		Body:    data,
	})
}

// SuccessList devuelve una lista; nunca null, siempre [].
func SuccessList[T any](c echo.Context, message string, list []T) error {
	if list == nil {
		list = make([]T, 0)
	}
	return c.JSON(http.StatusOK, Response[[]T]{
		Status:  true,
		Message: message,
		Body:    list,
	})
}

// ErrorResponse mapea el error al código HTTP. Para HttpError se usan el
// mensaje de usuario y los detalles por campo; el error interno no sale
// al cliente.
func ErrorResponse(c echo.Context, err error) error {
	code := http.StatusInternalServerError
	msg := "Error interno del servidor"
	var details interface{}

	if httpErr, ok := err.(*apperrors.HttpError); ok {
		code = httpErr.Code
		msg = httpErr.Message
		if httpErr.Details != nil {
			details = httpErr.Details
		}
	}

	return c.JSON(code, Response[any]{
		Status:  false,
		Message: msg,
		Details: details,
	})
}
