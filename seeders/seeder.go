package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"inventario-system/pkg/config"
)

// SeedRolesYAdmin crea los roles del sistema y el superusuario inicial.
func SeedRolesYAdmin(db *pgxpool.Pool, cfg *config.Config) {
	ctx := context.Background()
	log.Println("Iniciando seeders de roles y administrador...")

	if err := seedRoles(ctx, db); err != nil {
		log.Fatalf("error al poblar roles: %v", err)
	}
	if err := SeedSuperusuario(db, cfg); err != nil {
		log.Fatalf("error al crear el superusuario: %v", err)
	}

	log.Println("Seeders completados.")
}
