package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedRoles(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Poblando la tabla 'roles'...")

	query := `INSERT INTO roles (nombre_rol) VALUES ($1) ON CONFLICT (nombre_rol) DO NOTHING;`
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)
	for _, nombre := range rolesData {
		if _, err := tx.Exec(ctx, query, nombre); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
