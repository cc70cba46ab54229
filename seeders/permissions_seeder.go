package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"refill-system/internal/authz"
)

func seedPermissions(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("seeding table 'permissions'")

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `INSERT INTO permissions (code) VALUES ($1) ON CONFLICT (code) DO NOTHING`
	for _, code := range authz.All {
		if _, err := tx.Exec(ctx, query, code); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
