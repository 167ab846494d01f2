package main

import (
	"context"
	"log"

	"inventario-system/pkg/config"
	"inventario-system/pkg/database/postgresql"
	"inventario-system/seeders"
)

func main() {
	cfg := config.New()
	log.Println("Usando DSN:", cfg.Postgres.DSN)

	dbPool, err := postgresql.ConnectDB(context.Background(), cfg.Postgres.DSN)
	if err != nil {
		log.Fatalf("no se pudo conectar a la base de datos: %v", err)
	}
	defer dbPool.Close()

	seeders.SeedRolesYAdmin(dbPool, cfg)
}
