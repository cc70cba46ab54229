package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Default roles of the billing system. Superadmin carries the superuser
// permission; the rest mirror how the depots actually divide the work.
var rolesData = []string{
	"Superadmin",
	"Depot Manager",
	"Accountant",
	"Driver",
	"Auditor",
}

func seedRoles(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("seeding table 'roles'")

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `INSERT INTO roles (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`
	for _, name := range rolesData {
		if _, err := tx.Exec(ctx, query, name); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
