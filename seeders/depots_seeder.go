package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

var depotsData = []struct {
	Code string
	Name string
}{
	{"DP-NORTH", "North Depot"},
	{"DP-SOUTH", "South Depot"},
	{"DP-CENTRAL", "Central Depot"},
}

func seedDepots(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("seeding table 'depots'")

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `INSERT INTO depots (code, name) VALUES ($1, $2) ON CONFLICT (code) DO NOTHING`
	for _, d := range depotsData {
		if _, err := tx.Exec(ctx, query, d.Code, d.Name); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
