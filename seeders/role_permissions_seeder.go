package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"refill-system/internal/authz"
)

// getRolePermissionsMap defines the baseline grants per role. The seeder
// is additive: it never removes grants an operator added by hand.
func getRolePermissionsMap() map[string][]string {
	return map[string][]string{
		"Superadmin": {authz.Superuser},
		"Depot Manager": {
			authz.DepotsView,
			authz.EquipmentView, authz.EquipmentCreate, authz.EquipmentUpdate,
			authz.InventoryView, authz.InventoryCreate, authz.InventoryUpdate, authz.InventoryDelete,
			authz.CustomersView,
			authz.DistributionsView, authz.DistributionsCreate, authz.DistributionsUpdate, authz.DistributionsConfirm,
			authz.UsersView,
		},
		"Accountant": {
			authz.CustomersView, authz.CustomersCreate, authz.CustomersUpdate,
			authz.TransactionsView, authz.TransactionsCreate, authz.TransactionsUpdate, authz.TransactionsExport,
			authz.InvoicesView, authz.InvoicesCreate, authz.InvoicesUpdate, authz.InvoicesResend,
		},
		"Driver": {
			authz.DistributionsView, authz.DistributionsConfirm,
			authz.DepotsView, authz.EquipmentView,
		},
		"Auditor": {
			authz.AuditView,
			authz.UsersView, authz.DepotsView, authz.EquipmentView, authz.CustomersView,
			authz.InventoryView, authz.TransactionsView, authz.InvoicesView, authz.DistributionsView,
		},
	}
}

func seedRolePermissions(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("seeding table 'role_permissions'")

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `INSERT INTO role_permissions (role_id, permission_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`

	for roleName, codes := range getRolePermissionsMap() {
		var roleID uint64
		if err := tx.QueryRow(ctx, "SELECT id FROM roles WHERE name = $1", roleName).Scan(&roleID); err != nil {
			log.Printf("role %q not found, skipping", roleName)
			continue
		}

		for _, code := range codes {
			var permID uint64
			if err := tx.QueryRow(ctx, "SELECT id FROM permissions WHERE code = $1", code).Scan(&permID); err != nil {
				log.Printf("permission %q not found, skipping", code)
				continue
			}
			if _, err := tx.Exec(ctx, query, roleID, permID); err != nil {
				return err
			}
		}
	}
	return tx.Commit(ctx)
}
