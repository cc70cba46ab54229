package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"refill-system/internal/entities"
	apperrors "refill-system/pkg/errors"
)

type PermissionRepositoryInterface interface {
	GetPermissionsForRole(ctx context.Context, roleID uint64) ([]string, error)
	GetRoles(ctx context.Context) ([]entities.Role, error)
	FindRole(ctx context.Context, id uint64) (*entities.Role, error)
}

type permissionRepository struct {
	storage *pgxpool.Pool
}

func NewPermissionRepository(storage *pgxpool.Pool) PermissionRepositoryInterface {
	return &permissionRepository{storage: storage}
}

// GetPermissionsForRole returns the permission codes granted to a role,
// e.g. "transactions:view".
func (r *permissionRepository) GetPermissionsForRole(ctx context.Context, roleID uint64) ([]string, error) {
	query := `
		SELECT p.code
		FROM permissions AS p
			JOIN role_permissions AS rp ON rp.permission_id = p.id
		WHERE rp.role_id = $1
		ORDER BY p.code ASC`

	rows, err := r.storage.Query(ctx, query, roleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	codes := make([]string, 0)
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}
	return codes, rows.Err()
}

func (r *permissionRepository) GetRoles(ctx context.Context) ([]entities.Role, error) {
	rows, err := r.storage.Query(ctx, "SELECT id, name FROM roles ORDER BY name ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roles := make([]entities.Role, 0)
	for rows.Next() {
		var role entities.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

func (r *permissionRepository) FindRole(ctx context.Context, id uint64) (*entities.Role, error) {
	var role entities.Role
	err := r.storage.QueryRow(ctx, "SELECT id, name FROM roles WHERE id = $1", id).
		Scan(&role.ID, &role.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("role %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, err
	}
	return &role, nil
}
