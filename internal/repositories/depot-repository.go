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
	depotTable  = "depots"
	depotFields = "id, code, name, created_at, updated_at"
)

// Filter/search allow-lists; keys match the admin registry declarations.
var (
	depotSearchColumns = []string{"name", "code"}
)

type DepotRepositoryInterface interface {
	GetDepots(ctx context.Context, filter types.Filter) ([]dto.DepotDTO, uint64, error)
	FindDepot(ctx context.Context, id uint64) (*dto.DepotDTO, error)
	CreateDepot(ctx context.Context, payload dto.CreateDepotDTO) (*dto.DepotDTO, error)
	UpdateDepot(ctx context.Context, id uint64, payload dto.UpdateDepotDTO) (*dto.DepotDTO, error)
	DeleteDepot(ctx context.Context, id uint64) error
}

type depotRepository struct {
	storage *pgxpool.Pool
}

func NewDepotRepository(storage *pgxpool.Pool) DepotRepositoryInterface {
	return &depotRepository{storage: storage}
}

func mapDepotToDTO(e entities.Depot) dto.DepotDTO {
	return dto.DepotDTO{
		ID:        e.ID,
		Code:      e.Code,
		Name:      e.Name,
		CreatedAt: e.CreatedAt.Local().Format(utils.TimeLayout),
		UpdatedAt: utils.NullTimeToString(e.UpdatedAt),
	}
}

func scanDepot(row pgx.Row) (entities.Depot, error) {
	var e entities.Depot
	err := row.Scan(&e.ID, &e.Code, &e.Name, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

func (r *depotRepository) GetDepots(ctx context.Context, filter types.Filter) ([]dto.DepotDTO, uint64, error) {
	dataSQL, dataArgs, countSQL, countArgs, err := BuildListQuery(ListParams{
		Table:         depotTable,
		Columns:       strings.Split(depotFields, ", "),
		AllowedSearch: depotSearchColumns,
		AllowedSort:   map[string]string{"code": "code", "name": "name", "created_at": "created_at"},
		DefaultOrder:  "code ASC",
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

	depots := make([]dto.DepotDTO, 0)
	for rows.Next() {
		e, err := scanDepot(rows)
		if err != nil {
			return nil, 0, err
		}
		depots = append(depots, mapDepotToDTO(e))
	}
	return depots, total, rows.Err()
}

func (r *depotRepository) FindDepot(ctx context.Context, id uint64) (*dto.DepotDTO, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", depotFields, depotTable)
	e, err := scanDepot(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	out := mapDepotToDTO(e)
	return &out, nil
}

func (r *depotRepository) CreateDepot(ctx context.Context, payload dto.CreateDepotDTO) (*dto.DepotDTO, error) {
	query := fmt.Sprintf("INSERT INTO %s (code, name) VALUES ($1, $2) RETURNING %s", depotTable, depotFields)
	e, err := scanDepot(r.storage.QueryRow(ctx, query, payload.Code, payload.Name))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.ErrConflict
		}
		return nil, err
	}
	out := mapDepotToDTO(e)
	return &out, nil
}

func (r *depotRepository) UpdateDepot(ctx context.Context, id uint64, payload dto.UpdateDepotDTO) (*dto.DepotDTO, error) {
	var setClauses []string
	var args []interface{}
	argID := 1

	if payload.Code != nil {
		setClauses = append(setClauses, fmt.Sprintf("code = $%d", argID))
		args = append(args, *payload.Code)
		argID++
	}
	if payload.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", argID))
		args = append(args, *payload.Name)
		argID++
	}
	if len(setClauses) == 0 {
		return r.FindDepot(ctx, id)
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		depotTable, strings.Join(setClauses, ", "), argID, depotFields)
	args = append(args, id)

	e, err := scanDepot(r.storage.QueryRow(ctx, query, args...))
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
	out := mapDepotToDTO(e)
	return &out, nil
}

func (r *depotRepository) DeleteDepot(ctx context.Context, id uint64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", depotTable)
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
