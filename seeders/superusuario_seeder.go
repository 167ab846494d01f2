package seeders

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"inventario-system/pkg/config"
	"inventario-system/pkg/utils"
)

func SeedSuperusuario(db *pgxpool.Pool, cfg *config.Config) error {
	ctx := context.Background()
	log.Println("  - Sembrando el superusuario inicial...")

	if cfg.Seeder.AdminCedula == "" || cfg.Seeder.AdminPassword == "" {
		log.Println("    SEED_ADMIN_CEDULA o SEED_ADMIN_PASSWORD no definidos; se omite la creación.")
		return nil
	}

	cedula, err := strconv.ParseInt(cfg.Seeder.AdminCedula, 10, 64)
	if err != nil {
		return fmt.Errorf("SEED_ADMIN_CEDULA debe ser numérico: %w", err)
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var existente int64
	err = tx.QueryRow(ctx, "SELECT cedula_usuario FROM usuarios WHERE cedula_usuario = $1", cedula).Scan(&existente)
	if err == nil {
		log.Println("    El superusuario ya existe; no se modifica.")
		return tx.Commit(ctx)
	}

	var rolID int64
	if err := tx.QueryRow(ctx, "SELECT id_rol FROM roles WHERE nombre_rol = 'SUPERUSUARIO'").Scan(&rolID); err != nil {
		return fmt.Errorf("rol SUPERUSUARIO no encontrado; ejecute primero el seeder de roles")
	}

	hash, err := utils.HashPassword(cfg.Seeder.AdminPassword)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO usuarios (cedula_usuario, nombre_usuario, password_usuario, fk_id_rol)
		VALUES ($1, $2, $3, $4)
	`, cedula, cfg.Seeder.AdminNombre, hash, rolID)
	if err != nil {
		return fmt.Errorf("error al crear el superusuario: %w", err)
	}

	log.Println("    Superusuario creado.")
	return tx.Commit(ctx)
}
