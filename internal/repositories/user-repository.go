package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"refill-system/internal/dto"
	"refill-system/internal/entities"
	apperrors "refill-system/pkg/errors"
	"refill-system/pkg/types"
	"refill-system/pkg/utils"
)

const (
	userTable      = "users"
	userJoinFields = "u.id, u.username, u.email, u.password, u.employee_id, u.role_id, u.depot_id, u.is_staff, u.is_active, u.created_at, u.updated_at, r.name AS role, d.name AS depot"
)

var (
	userFilterColumns = map[string]string{
		"role":  "u.role_id",
		"depot": "u.depot_id",
	}
)

type UserRepositoryInterface interface {
	GetUsers(ctx context.Context, filter types.Filter) ([]dto.UserDTO, uint64, error)
	FindUser(ctx context.Context, id uint64) (*dto.UserDTO, error)
	FindUserByLogin(ctx context.Context, login string) (*entities.User, error)
	CreateUser(ctx context.Context, payload dto.CreateUserDTO, hashedPassword string) (*dto.UserDTO, error)
	UpdateUser(ctx context.Context, id uint64, payload dto.UpdateUserDTO, hashedPassword *string) (*dto.UserDTO, error)
	DeleteUser(ctx context.Context, id uint64) error
}

type userRepository struct {
	storage *pgxpool.Pool
}

func NewUserRepository(storage *pgxpool.Pool) UserRepositoryInterface {
	return &userRepository{storage: storage}
}

type dbUser struct {
	entities.User
	Role  string
	Depot sql.NullString
}

func (db *dbUser) toDTO() dto.UserDTO {
	out := dto.UserDTO{
		ID:         db.ID,
		Username:   db.Username,
		Email:      db.Email,
		EmployeeID: db.EmployeeID,
		Role:       db.Role,
		RoleID:     db.RoleID,
		DepotID:    utils.NullInt64ToPtr(db.DepotID),
		IsStaff:    db.IsStaff,
		IsActive:   db.IsActive,
		CreatedAt:  db.CreatedAt.Local().Format(utils.TimeLayout),
		UpdatedAt:  utils.NullTimeToString(db.UpdatedAt),
	}
	if db.Depot.Valid {
		out.Depot = &db.Depot.String
	}
	return out
}

func scanUser(row pgx.Row) (dbUser, error) {
	var db dbUser
	err := row.Scan(
		&db.ID, &db.Username, &db.Email, &db.Password, &db.EmployeeID,
		&db.RoleID, &db.DepotID, &db.IsStaff, &db.IsActive,
		&db.CreatedAt, &db.UpdatedAt,
		&db.Role, &db.Depot,
	)
	return db, err
}

func (r *userRepository) GetUsers(ctx context.Context, filter types.Filter) ([]dto.UserDTO, uint64, error) {
	dataSQL, dataArgs, countSQL, countArgs, err := BuildListQuery(ListParams{
		Table:   userTable + " AS u",
		Columns: strings.Split(userJoinFields, ", "),
		Joins: []Join{
			{Table: "roles AS r", On: "r.id = u.role_id"},
			{Table: "depots AS d", On: "d.id = u.depot_id", Kind: "LEFT"},
		},
		AllowedFilters: userFilterColumns,
		AllowedSort:    map[string]string{"username": "u.username", "employee_id": "u.employee_id", "created_at": "u.created_at"},
		DefaultOrder:   "u.username ASC",
	}, filter)
	if err != nil {
		return nil, 0, err
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, dataSQL, dataArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	users := make([]dto.UserDTO, 0)
	for rows.Next() {
		db, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, db.toDTO())
	}
	return users, total, rows.Err()
}

func (r *userRepository) FindUser(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s AS u
			JOIN roles AS r ON r.id = u.role_id
			LEFT JOIN depots AS d ON d.id = u.depot_id
		WHERE u.id = $1`, userJoinFields, userTable)

	db, err := scanUser(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	out := db.toDTO()
	return &out, nil
}

// FindUserByLogin accepts a username or an email and returns the raw user
// row, password hash included, for credential checks.
func (r *userRepository) FindUserByLogin(ctx context.Context, login string) (*entities.User, error) {
	query := fmt.Sprintf(`
		SELECT id, username, email, password, employee_id, role_id, depot_id, is_staff, is_active, created_at, updated_at
		FROM %s WHERE username = $1 OR email = $1`, userTable)

	var e entities.User
	err := r.storage.QueryRow(ctx, query, login).Scan(
		&e.ID, &e.Username, &e.Email, &e.Password, &e.EmployeeID,
		&e.RoleID, &e.DepotID, &e.IsStaff, &e.IsActive,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *userRepository) CreateUser(ctx context.Context, payload dto.CreateUserDTO, hashedPassword string) (*dto.UserDTO, error) {
	var id uint64
	query := fmt.Sprintf(`
		INSERT INTO %s (username, email, password, employee_id, role_id, depot_id, is_staff)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`, userTable)

	err := r.storage.QueryRow(ctx, query,
		payload.Username,
		payload.Email,
		hashedPassword,
		payload.EmployeeID,
		payload.RoleID,
		payload.DepotID,
		payload.IsStaff,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return nil, apperrors.ErrConflict
			case "23503":
				return nil, apperrors.ErrBadRequest
			}
		}
		return nil, err
	}
	return r.FindUser(ctx, id)
}

func (r *userRepository) UpdateUser(ctx context.Context, id uint64, payload dto.UpdateUserDTO, hashedPassword *string) (*dto.UserDTO, error) {
	var setClauses []string
	var args []interface{}
	argID := 1

	appendSet := func(col string, val interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, argID))
		args = append(args, val)
		argID++
	}

	if payload.Username != nil {
		appendSet("username", *payload.Username)
	}
	if payload.Email != nil {
		appendSet("email", *payload.Email)
	}
	if hashedPassword != nil {
		appendSet("password", *hashedPassword)
	}
	if payload.EmployeeID != nil {
		appendSet("employee_id", *payload.EmployeeID)
	}
	if payload.RoleID != nil {
		appendSet("role_id", *payload.RoleID)
	}
	if payload.DepotID != nil {
		appendSet("depot_id", *payload.DepotID)
	}
	if payload.IsStaff != nil {
		appendSet("is_staff", *payload.IsStaff)
	}
	if payload.IsActive != nil {
		appendSet("is_active", *payload.IsActive)
	}
	if len(setClauses) == 0 {
		return r.FindUser(ctx, id)
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d",
		userTable, strings.Join(setClauses, ", "), argID)
	args = append(args, id)

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.ErrConflict
		}
		return nil, err
	}
	if result.RowsAffected() == 0 {
		return nil, apperrors.ErrNotFound
	}
	return r.FindUser(ctx, id)
}

func (r *userRepository) DeleteUser(ctx context.Context, id uint64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", userTable)
	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.ErrRecordInUse
		}
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
