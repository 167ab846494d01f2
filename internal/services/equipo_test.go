package services

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"inventario-system/internal/dto"
	"inventario-system/internal/entities"
	apperrors "inventario-system/pkg/errors"
)

// fakeTxManager ejecuta la función directamente; los repos falsos no usan
// la transacción.
type fakeTxManager struct {
	fallo error
}

func (f *fakeTxManager) RunInTransaction(_ context.Context, fn func(tx pgx.Tx) error) error {
	if err := fn(nil); err != nil {
		return err
	}
	return f.fallo
}

type fakeEquipoRepo struct {
	estado      string
	unidad      string
	existente   bool
	estadoNuevo string
	rolActor    string
	lista       []entities.Equipo
}

func (f *fakeEquipoRepo) Registrar(_ context.Context, _ dto.RegistrarEquipoDTO) (bool, error) {
	return !f.existente, nil
}

func (f *fakeEquipoRepo) Buscar(_ context.Context, _ string) (*entities.Equipo, error) {
	return nil, apperrors.ErrNotFound
}

func (f *fakeEquipoRepo) Listar(_ context.Context, _ dto.FiltroEquiposDTO) ([]entities.Equipo, error) {
	return f.lista, nil
}

func (f *fakeEquipoRepo) ContarTodos(_ context.Context) (int64, error) { return 0, nil }

func (f *fakeEquipoRepo) EstadoActualTx(_ context.Context, _ pgx.Tx, nombre string) (string, error) {
	if f.estado == "" {
		return "", apperrors.ErrNotFound
	}
	return f.estado, nil
}

func (f *fakeEquipoRepo) ActualizarEstadoTx(_ context.Context, _ pgx.Tx, _, estado, rolActor string) error {
	f.estadoNuevo = estado
	f.rolActor = rolActor
	return nil
}

func (f *fakeEquipoRepo) ActualizarUnidadTx(_ context.Context, _ pgx.Tx, _, unidad string) error {
	f.unidad = unidad
	return nil
}

type fakeHistorialRepo struct {
	equipo         string
	estadoAnterior string
	estadoNuevo    string
	rolActor       string
	inserciones    int
}

func (f *fakeHistorialRepo) InsertarTx(_ context.Context, _ pgx.Tx, equipo, estadoAnterior, estadoNuevo, rolActor string) (int64, error) {
	f.equipo = equipo
	f.estadoAnterior = estadoAnterior
	f.estadoNuevo = estadoNuevo
	f.rolActor = rolActor
	f.inserciones++
	return 1, nil
}

func (f *fakeHistorialRepo) Reporte(_ context.Context, _ dto.FiltroHistorialEstadosDTO) ([]entities.HistorialEstado, error) {
	return nil, nil
}

func TestEquipoService_RegistrarDistingueCreacionDeActualizacion(t *testing.T) {
	ctx := context.Background()

	nuevo := &fakeEquipoRepo{existente: false}
	svc := NewEquipoService(nuevo, &fakeHistorialRepo{}, &fakeTxManager{}, zap.NewNop())
	res, err := svc.Registrar(ctx, dto.RegistrarEquipoDTO{NombreEquipo: "PC-001"})
	require.NoError(t, err)
	assert.Equal(t, "registrado", res.Accion)

	repetido := &fakeEquipoRepo{existente: true}
	svc = NewEquipoService(repetido, &fakeHistorialRepo{}, &fakeTxManager{}, zap.NewNop())
	res, err = svc.Registrar(ctx, dto.RegistrarEquipoDTO{NombreEquipo: "PC-001"})
	require.NoError(t, err)
	assert.Equal(t, "actualizado", res.Accion)
}

func TestEquipoService_CambiarEstadoRegistraTransicion(t *testing.T) {
	equipoRepo := &fakeEquipoRepo{estado: "ACTIVO"}
	historialRepo := &fakeHistorialRepo{}
	svc := NewEquipoService(equipoRepo, historialRepo, &fakeTxManager{}, zap.NewNop())

	res, err := svc.CambiarEstado(context.Background(), "PC-001", "MANTENIMIENTO", "TECNICO")
	require.NoError(t, err)

	assert.Equal(t, "PC-001", res.NombreEquipo)
	assert.Equal(t, "ACTIVO", res.EstadoAnterior)
	assert.Equal(t, "MANTENIMIENTO", res.EstadoNuevo)

	assert.Equal(t, "MANTENIMIENTO", equipoRepo.estadoNuevo)
	assert.Equal(t, "TECNICO", equipoRepo.rolActor)

	assert.Equal(t, 1, historialRepo.inserciones)
	assert.Equal(t, "ACTIVO", historialRepo.estadoAnterior)
	assert.Equal(t, "MANTENIMIENTO", historialRepo.estadoNuevo)
	assert.Equal(t, "TECNICO", historialRepo.rolActor)
}

func TestEquipoService_CambiarEstadoMapeaRolDelActor(t *testing.T) {
	casos := map[string]string{
		"SUPERUSUARIO":  "ADMIN",
		"ADMINISTRADOR": "ADMIN",
		"TECNICO":       "TECNICO",
		"OTRO":          "TECNICO",
	}

	for rol, esperado := range casos {
		equipoRepo := &fakeEquipoRepo{estado: "ACTIVO"}
		svc := NewEquipoService(equipoRepo, &fakeHistorialRepo{}, &fakeTxManager{}, zap.NewNop())

		_, err := svc.CambiarEstado(context.Background(), "PC-001", "DE BAJA", rol)
		require.NoError(t, err)
		assert.Equal(t, esperado, equipoRepo.rolActor, "rol %s", rol)
	}
}

func TestEquipoService_CambiarEstadoEquipoInexistente(t *testing.T) {
	equipoRepo := &fakeEquipoRepo{}
	historialRepo := &fakeHistorialRepo{}
	svc := NewEquipoService(equipoRepo, historialRepo, &fakeTxManager{}, zap.NewNop())

	_, err := svc.CambiarEstado(context.Background(), "NO-EXISTE", "ACTIVO", "TECNICO")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, 0, historialRepo.inserciones)
}
