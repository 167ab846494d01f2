package utils

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "inventario-system/pkg/errors"
)

type Validator struct {
	validate *validator.Validate
}

func NewValidator(v *validator.Validate) *Validator {
	return &Validator{validate: v}
}

// Validate adapta validator/v10 a echo.Validator y traduce los fallos
// a un HttpError 400 con el detalle por campo.
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.NewHttpError(http.StatusBadRequest, "Datos de la petición inválidos", err, nil)
	}

	details := make(map[string]interface{}, len(validationErrs))
	fields := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		details[fe.Field()] = fmt.Sprintf("no cumple la regla '%s'", fe.Tag())
		fields = append(fields, fe.Field())
	}

	msg := fmt.Sprintf("Campos inválidos u obligatorios: %s", strings.Join(fields, ", "))
	return apperrors.NewHttpError(http.StatusBadRequest, msg, err, details)
}
