package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"inventario-system/internal/dto"
	"inventario-system/internal/entities"
	"inventario-system/internal/repositories"
	apperrors "inventario-system/pkg/errors"
)

// utf8BOM hace que Excel reconozca el CSV como UTF-8.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var columnasExportacion = []string{
	"nombre_equipo", "marca_equipo", "modelo_equipo", "tipo_equipo", "tipo_area", "unidad_actual",
	"procesador_equipo", "ram_equipo", "tipo_ram", "disco_equipo", "sistema_operativo",
	"ip_equipo", "mac_equipo", "arquitectura_equipo", "serial_equipo",
	"office", "version_office", "licencia_windows_equipo", "antivirus_equipo",
	"observaciones", "estado_equipo", "fecha_creacion_equipo", "fecha_actualizacion_equipo",
}

type ExportacionServiceInterface interface {
	ExportarCSV(ctx context.Context) (contenido []byte, nombreArchivo string, err error)
	ExportarExcel(ctx context.Context) (contenido []byte, nombreArchivo string, err error)
}

type ExportacionService struct {
	equipoRepo repositories.EquipoRepositoryInterface
	logger     *zap.Logger
}

func NewExportacionService(equipoRepo repositories.EquipoRepositoryInterface, logger *zap.Logger) ExportacionServiceInterface {
	return &ExportacionService{equipoRepo: equipoRepo, logger: logger}
}

func filaEquipo(e entities.Equipo) []string {
	return []string{
		e.NombreEquipo, e.MarcaEquipo.String, e.ModeloEquipo.String, e.TipoEquipo.String,
		e.TipoArea.String, e.UnidadActual.String, e.ProcesadorEquipo.String, e.RamEquipo.String,
		e.TipoRam.String, e.DiscoEquipo.String, e.SistemaOperativo.String,
		e.IpEquipo.String, e.MacEquipo.String, e.ArquitecturaEquipo.String, e.SerialEquipo.String,
		e.Office.String, e.VersionOffice.String, e.LicenciaWindowsEquipo.String, e.AntivirusEquipo.String,
		e.Observaciones.String, e.EstadoEquipo,
		e.FechaCreacionEquipo.Format("2006-01-02 15:04:05"),
		e.FechaActualizacionEquipo.Format("2006-01-02 15:04:05"),
	}
}

func (s *ExportacionService) equiposParaExportar(ctx context.Context) ([]entities.Equipo, error) {
	equipos, err := s.equipoRepo.Listar(ctx, dto.FiltroEquiposDTO{})
	if err != nil {
		return nil, err
	}
	if len(equipos) == 0 {
		return nil, apperrors.NewHttpError(http.StatusNotFound, "No hay datos para exportar", apperrors.ErrNotFound, nil)
	}
	return equipos, nil
}

func (s *ExportacionService) ExportarCSV(ctx context.Context) ([]byte, string, error) {
	equipos, err := s.equiposParaExportar(ctx)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	if err := w.Write(columnasExportacion); err != nil {
		return nil, "", err
	}
	for _, e := range equipos {
		if err := w.Write(filaEquipo(e)); err != nil {
			return nil, "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}

	nombre := fmt.Sprintf("inventario_%s.csv", time.Now().Format("20060102_150405"))
	s.logger.Info("exportación CSV generada", zap.Int("equipos", len(equipos)))
	return buf.Bytes(), nombre, nil
}

func (s *ExportacionService) ExportarExcel(ctx context.Context) ([]byte, string, error) {
	equipos, err := s.equiposParaExportar(ctx)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const hoja = "Inventario"
	f.SetSheetName("Sheet1", hoja)

	for col, titulo := range columnasExportacion {
		celda, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(hoja, celda, titulo); err != nil {
			return nil, "", err
		}
	}
	for fila, e := range equipos {
		for col, valor := range filaEquipo(e) {
			celda, _ := excelize.CoordinatesToCellName(col+1, fila+2)
			if err := f.SetCellValue(hoja, celda, valor); err != nil {
				return nil, "", err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", err
	}

	nombre := fmt.Sprintf("inventario_%s.xlsx", time.Now().Format("20060102_150405"))
	s.logger.Info("exportación Excel generada", zap.Int("equipos", len(equipos)))
	return buf.Bytes(), nombre, nil
}
