package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"inventario-system/internal/entities"
	apperrors "inventario-system/pkg/errors"
)

func equiposDePrueba() []entities.Equipo {
	return []entities.Equipo{
		{
			NombreEquipo:             "PC-001",
			MarcaEquipo:              null.StringFrom("Dell"),
			ModeloEquipo:             null.StringFrom("OptiPlex 7090"),
			IpEquipo:                 null.StringFrom("192.168.1.10"),
			EstadoEquipo:             "ACTIVO",
			FechaCreacionEquipo:      time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
			FechaActualizacionEquipo: time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC),
		},
		{
			NombreEquipo:             "PC-002",
			EstadoEquipo:             "MANTENIMIENTO",
			FechaCreacionEquipo:      time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
			FechaActualizacionEquipo: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		},
	}
}

func TestExportacionService_CSVConBOMYEncabezado(t *testing.T) {
	repo := &fakeEquipoRepo{lista: equiposDePrueba()}
	svc := NewExportacionService(repo, zap.NewNop())

	contenido, nombre, err := svc.ExportarCSV(context.Background())
	require.NoError(t, err)

	// el BOM hace que Excel interprete el archivo como UTF-8
	require.True(t, bytes.HasPrefix(contenido, []byte{0xEF, 0xBB, 0xBF}))
	assert.True(t, strings.HasPrefix(nombre, "inventario_"))
	assert.True(t, strings.HasSuffix(nombre, ".csv"))

	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(contenido, []byte{0xEF, 0xBB, 0xBF})))
	filas, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, filas, 3) // encabezado + 2 equipos

	assert.Equal(t, "nombre_equipo", filas[0][0])
	assert.Equal(t, "PC-001", filas[1][0])
	assert.Equal(t, "Dell", filas[1][1])
	assert.Equal(t, "PC-002", filas[2][0])
	assert.Equal(t, "", filas[2][1]) // columna nula exportada vacía
}

func TestExportacionService_ExcelContieneLosEquipos(t *testing.T) {
	repo := &fakeEquipoRepo{lista: equiposDePrueba()}
	svc := NewExportacionService(repo, zap.NewNop())

	contenido, nombre, err := svc.ExportarExcel(context.Background())
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(nombre, ".xlsx"))

	f, err := excelize.OpenReader(bytes.NewReader(contenido))
	require.NoError(t, err)
	defer f.Close()

	encabezado, err := f.GetCellValue("Inventario", "A1")
	require.NoError(t, err)
	assert.Equal(t, "nombre_equipo", encabezado)

	primero, err := f.GetCellValue("Inventario", "A2")
	require.NoError(t, err)
	assert.Equal(t, "PC-001", primero)
}

func TestExportacionService_SinDatosDevuelve404(t *testing.T) {
	repo := &fakeEquipoRepo{}
	svc := NewExportacionService(repo, zap.NewNop())

	_, _, err := svc.ExportarCSV(context.Background())
	require.Error(t, err)

	var httpErr *apperrors.HttpError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}
