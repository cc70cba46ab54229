// Package seeders fills the database with the baseline records a fresh
// installation needs: the permission catalog, default roles and their
// grants, the first superadmin account and the initial depots.
package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedCore inserts the permission catalog, roles and role grants.
func SeedCore(db *pgxpool.Pool) {
	ctx := context.Background()

	if err := seedPermissions(ctx, db); err != nil {
		log.Fatalf("seeding permissions: %v", err)
	}
	if err := seedRoles(ctx, db); err != nil {
		log.Fatalf("seeding roles: %v", err)
	}
	if err := seedRolePermissions(ctx, db); err != nil {
		log.Fatalf("seeding role permissions: %v", err)
	}
	log.Println("core seed finished")
}

// SeedAdmin creates the first superadmin account.
func SeedAdmin(db *pgxpool.Pool) {
	if err := seedSuperAdmin(context.Background(), db); err != nil {
		log.Fatalf("seeding superadmin: %v", err)
	}
	log.Println("admin seed finished")
}

// SeedDepots inserts the initial depot list.
func SeedDepots(db *pgxpool.Pool) {
	if err := seedDepots(context.Background(), db); err != nil {
		log.Fatalf("seeding depots: %v", err)
	}
	log.Println("depot seed finished")
}
