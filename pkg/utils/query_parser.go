package utils

import (
	"net/url"
	"time"
)

// Formatos aceptados para fecha_inicio / fecha_fin en los reportes.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// ParseFecha devuelve nil si el parámetro no viene o no se puede interpretar.
func ParseFecha(query url.Values, key string) *time.Time {
	raw := query.Get(key)
	if raw == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}

// ParseOpcional devuelve nil para parámetros de filtro ausentes o vacíos.
func ParseOpcional(query url.Values, key string) *string {
	raw := query.Get(key)
	if raw == "" {
		return nil
	}
	return &raw
}
