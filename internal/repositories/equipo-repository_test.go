package repositories

import (
	"context"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventario-system/internal/dto"
)

func TestEquipoRepository_Integration_UpsertIdempotente(t *testing.T) {
	requireTestDB(t)
	cleanupTables(t)
	ctx := context.Background()

	repo := NewEquipoRepository(testPool)

	creado, err := repo.Registrar(ctx, dto.RegistrarEquipoDTO{
		NombreEquipo: "PC-001",
		Marca:        null.StringFrom("Dell"),
		Unidad:       null.StringFrom("SEDE-A"),
	})
	require.NoError(t, err)
	assert.True(t, creado)

	// registrar el mismo nombre reemplaza los campos, no duplica la fila
	creado, err = repo.Registrar(ctx, dto.RegistrarEquipoDTO{
		NombreEquipo: "PC-001",
		Marca:        null.StringFrom("HP"),
		Unidad:       null.StringFrom("SEDE-B"),
	})
	require.NoError(t, err)
	assert.False(t, creado)

	total, err := repo.ContarTodos(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	equipo, err := repo.Buscar(ctx, "PC-001")
	require.NoError(t, err)
	assert.Equal(t, "HP", equipo.MarcaEquipo.String)
	assert.Equal(t, "SEDE-B", equipo.UnidadActual.String)
}

func TestEquipoRepository_Integration_BusquedaPorIP(t *testing.T) {
	requireTestDB(t)
	cleanupTables(t)
	ctx := context.Background()

	repo := NewEquipoRepository(testPool)

	equipos := []dto.RegistrarEquipoDTO{
		{NombreEquipo: "PC-001", Ip: null.StringFrom("192.168.1.10")},
		{NombreEquipo: "PC-002", Ip: null.StringFrom("10.0.0.5")},
		{NombreEquipo: "PC-003", Ip: null.StringFrom("192.168.2.20")},
	}
	for _, e := range equipos {
		_, err := repo.Registrar(ctx, e)
		require.NoError(t, err)
	}

	busqueda := "192.168"
	resultado, err := repo.Listar(ctx, dto.FiltroEquiposDTO{Busqueda: &busqueda})
	require.NoError(t, err)

	require.Len(t, resultado, 2)
	assert.Equal(t, "PC-001", resultado[0].NombreEquipo)
	assert.Equal(t, "PC-003", resultado[1].NombreEquipo)
}

func TestEquipoRepository_Integration_TrasladoAtomico(t *testing.T) {
	requireTestDB(t)
	cleanupTables(t)
	ctx := context.Background()

	equipoRepo := NewEquipoRepository(testPool)
	trasladoRepo := NewTrasladoRepository(testPool)
	txManager := NewTxManager(testPool)

	_, err := equipoRepo.Registrar(ctx, dto.RegistrarEquipoDTO{
		NombreEquipo: "PC-001",
		Unidad:       null.StringFrom("SEDE-A"),
	})
	require.NoError(t, err)

	payload := dto.CrearTrasladoDTO{Equipo: "PC-001", Origen: "SEDE-A", Destino: "SEDE-B"}
	err = txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := trasladoRepo.InsertarTx(ctx, tx, payload, nil); err != nil {
			return err
		}
		return equipoRepo.ActualizarUnidadTx(ctx, tx, payload.Equipo, payload.Destino)
	})
	require.NoError(t, err)

	equipo, err := equipoRepo.Buscar(ctx, "PC-001")
	require.NoError(t, err)
	assert.Equal(t, "SEDE-B", equipo.UnidadActual.String)

	traslados, err := trasladoRepo.ListarPorEquipo(ctx, "PC-001")
	require.NoError(t, err)
	require.Len(t, traslados, 1)
	assert.Equal(t, "SEDE-A", traslados[0].SedeOrigen)
	assert.Equal(t, "SEDE-B", traslados[0].SedeDestino)
}

// Si un paso falla, la transacción completa se revierte: ni traslado ni
// cambio de unidad quedan a medias.
func TestEquipoRepository_Integration_TrasladoRevierteCompleto(t *testing.T) {
	requireTestDB(t)
	cleanupTables(t)
	ctx := context.Background()

	equipoRepo := NewEquipoRepository(testPool)
	trasladoRepo := NewTrasladoRepository(testPool)
	txManager := NewTxManager(testPool)

	_, err := equipoRepo.Registrar(ctx, dto.RegistrarEquipoDTO{
		NombreEquipo: "PC-001",
		Unidad:       null.StringFrom("SEDE-A"),
	})
	require.NoError(t, err)

	payload := dto.CrearTrasladoDTO{Equipo: "PC-001", Origen: "SEDE-A", Destino: "SEDE-B"}
	err = txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := trasladoRepo.InsertarTx(ctx, tx, payload, nil); err != nil {
			return err
		}
		// el equipo del segundo paso no existe: RowsAffected 0
		return equipoRepo.ActualizarUnidadTx(ctx, tx, "NO-EXISTE", payload.Destino)
	})
	require.Error(t, err)

	equipo, err := equipoRepo.Buscar(ctx, "PC-001")
	require.NoError(t, err)
	assert.Equal(t, "SEDE-A", equipo.UnidadActual.String)

	traslados, err := trasladoRepo.ListarPorEquipo(ctx, "PC-001")
	require.NoError(t, err)
	assert.Empty(t, traslados)
}
