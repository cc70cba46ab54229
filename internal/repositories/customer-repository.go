package repositories

import (
	"context"
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
	customerTable  = "customers"
	customerFields = "id, name, email, phone, payment_type, is_meter_installed, created_at, updated_at"
)

var (
	customerSearchColumns = []string{"name", "email"}
)

type CustomerRepositoryInterface interface {
	GetCustomers(ctx context.Context, filter types.Filter) ([]dto.CustomerDTO, uint64, error)
	FindCustomer(ctx context.Context, id uint64) (*dto.CustomerDTO, error)
	CreateCustomer(ctx context.Context, payload dto.CreateCustomerDTO) (*dto.CustomerDTO, error)
	UpdateCustomer(ctx context.Context, id uint64, payload dto.UpdateCustomerDTO) (*dto.CustomerDTO, error)
	DeleteCustomer(ctx context.Context, id uint64) error
}

type customerRepository struct {
	storage *pgxpool.Pool
}

func NewCustomerRepository(storage *pgxpool.Pool) CustomerRepositoryInterface {
	return &customerRepository{storage: storage}
}

func mapCustomerToDTO(e entities.Customer) dto.CustomerDTO {
	return dto.CustomerDTO{
		ID:               e.ID,
		Name:             e.Name,
		Email:            e.Email,
		Phone:            utils.NullStringToString(e.Phone),
		PaymentType:      e.PaymentType,
		IsMeterInstalled: e.IsMeterInstalled,
		CreatedAt:        e.CreatedAt.Local().Format(utils.TimeLayout),
		UpdatedAt:        utils.NullTimeToString(e.UpdatedAt),
	}
}

func scanCustomer(row pgx.Row) (entities.Customer, error) {
	var e entities.Customer
	err := row.Scan(&e.ID, &e.Name, &e.Email, &e.Phone, &e.PaymentType, &e.IsMeterInstalled, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

func (r *customerRepository) GetCustomers(ctx context.Context, filter types.Filter) ([]dto.CustomerDTO, uint64, error) {
	dataSQL, dataArgs, countSQL, countArgs, err := BuildListQuery(ListParams{
		Table:         customerTable,
		Columns:       strings.Split(customerFields, ", "),
		AllowedSearch: customerSearchColumns,
		AllowedSort:   map[string]string{"name": "name", "created_at": "created_at"},
		DefaultOrder:  "name ASC",
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

	customers := make([]dto.CustomerDTO, 0)
	for rows.Next() {
		e, err := scanCustomer(rows)
		if err != nil {
			return nil, 0, err
		}
		customers = append(customers, mapCustomerToDTO(e))
	}
	return customers, total, rows.Err()
}

func (r *customerRepository) FindCustomer(ctx context.Context, id uint64) (*dto.CustomerDTO, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", customerFields, customerTable)
	e, err := scanCustomer(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	out := mapCustomerToDTO(e)
	return &out, nil
}

func (r *customerRepository) CreateCustomer(ctx context.Context, payload dto.CreateCustomerDTO) (*dto.CustomerDTO, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, email, phone, payment_type, is_meter_installed)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s`, customerTable, customerFields)

	e, err := scanCustomer(r.storage.QueryRow(ctx, query,
		payload.Name,
		payload.Email,
		payload.Phone.Ptr(),
		payload.PaymentType,
		payload.IsMeterInstalled,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.ErrConflict
		}
		return nil, err
	}
	out := mapCustomerToDTO(e)
	return &out, nil
}

func (r *customerRepository) UpdateCustomer(ctx context.Context, id uint64, payload dto.UpdateCustomerDTO) (*dto.CustomerDTO, error) {
	var setClauses []string
	var args []interface{}
	argID := 1

	appendSet := func(col string, val interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, argID))
		args = append(args, val)
		argID++
	}

	if payload.Name.Valid {
		appendSet("name", payload.Name.String)
	}
	if payload.Email.Valid {
		appendSet("email", payload.Email.String)
	}
	if payload.Phone.Valid {
		appendSet("phone", payload.Phone.Ptr())
	}
	if payload.PaymentType.Valid {
		appendSet("payment_type", payload.PaymentType.String)
	}
	if payload.IsMeterInstalled.Valid {
		appendSet("is_meter_installed", payload.IsMeterInstalled.Bool)
	}
	if len(setClauses) == 0 {
		return r.FindCustomer(ctx, id)
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		customerTable, strings.Join(setClauses, ", "), argID, customerFields)
	args = append(args, id)

	e, err := scanCustomer(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.ErrConflict
		}
		return nil, err
	}
	out := mapCustomerToDTO(e)
	return &out, nil
}

func (r *customerRepository) DeleteCustomer(ctx context.Context, id uint64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", customerTable)
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
