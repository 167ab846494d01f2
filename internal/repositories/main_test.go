package repositories

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"inventario-system/pkg/database/postgresql"
)

var testPool *pgxpool.Pool

// TestMain prepara la base de pruebas cuando TEST_DATABASE_URL está
// definida; sin ella los tests de integración se omiten.
func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn != "" {
		if err := postgresql.RunMigrations(dsn, "../../migrations"); err != nil {
			log.Fatalf("no se pudieron aplicar las migraciones de prueba: %v", err)
		}

		var err error
		testPool, err = pgxpool.New(context.Background(), dsn)
		if err != nil {
			log.Fatalf("no se pudo conectar a la base de pruebas: %v", err)
		}
		defer testPool.Close()
	}

	os.Exit(m.Run())
}

func requireTestDB(t *testing.T) {
	t.Helper()
	if testPool == nil {
		t.Skip("TEST_DATABASE_URL no definida; se omite el test de integración")
	}
}

func cleanupTables(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(), `
		TRUNCATE TABLE responsables_equipo, historial_traslados, historial_mantenimiento,
		               historial_estado, equipos, usuarios, roles
		RESTART IDENTITY CASCADE;
	`)
	require.NoError(t, err, "no se pudieron limpiar las tablas")
}

// seedTecnico crea un rol y un usuario técnico de prueba.
func seedTecnico(t *testing.T, cedula int64, nombre string) {
	t.Helper()
	ctx := context.Background()

	var rolID int64
	err := testPool.QueryRow(ctx, `
		INSERT INTO roles (nombre_rol) VALUES ('TECNICO')
		ON CONFLICT (nombre_rol) DO UPDATE SET nombre_rol = EXCLUDED.nombre_rol
		RETURNING id_rol
	`).Scan(&rolID)
	require.NoError(t, err)

	_, err = testPool.Exec(ctx, `
		INSERT INTO usuarios (cedula_usuario, nombre_usuario, password_usuario, fk_id_rol)
		VALUES ($1, $2, 'hash-de-prueba', $3)
	`, cedula, nombre, rolID)
	require.NoError(t, err)
}
