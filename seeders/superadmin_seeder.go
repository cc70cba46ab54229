package seeders

import (
	"context"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"refill-system/pkg/utils"
)

func seedSuperAdmin(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("seeding superadmin account")

	username := getenvDefault("ADMIN_USERNAME", "admin")
	email := getenvDefault("ADMIN_EMAIL", "admin@refill.local")
	password := getenvDefault("ADMIN_PASSWORD", "ChangeMe123!")

	var roleID uint64
	if err := db.QueryRow(ctx, "SELECT id FROM roles WHERE name = 'Superadmin'").Scan(&roleID); err != nil {
		return err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO users (username, email, password, employee_id, role_id, is_staff)
		VALUES ($1, $2, $3, 'EMP-000001', $4, TRUE)
		ON CONFLICT (username) DO NOTHING`
	if _, err := db.Exec(ctx, query, username, email, hashed, roleID); err != nil {
		return err
	}
	return nil
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
