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
	equipmentTable  = "equipment"
	equipmentFields = "id, sku, name, equipment_type, is_active, created_at, updated_at"
)

var (
	equipmentFilterColumns = map[string]string{
		"equipment_type": "equipment_type",
		"is_active":      "is_active",
	}
)

type EquipmentRepositoryInterface interface {
	GetEquipment(ctx context.Context, filter types.Filter) ([]dto.EquipmentDTO, uint64, error)
	FindEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error)
	UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error)
	DeleteEquipment(ctx context.Context, id uint64) error
}

type equipmentRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentRepository(storage *pgxpool.Pool) EquipmentRepositoryInterface {
	return &equipmentRepository{storage: storage}
}

func mapEquipmentToDTO(e entities.Equipment) dto.EquipmentDTO {
	return dto.EquipmentDTO{
		ID:            e.ID,
		SKU:           e.SKU,
		Name:          e.Name,
		EquipmentType: e.EquipmentType,
		IsActive:      e.IsActive,
		CreatedAt:     e.CreatedAt.Local().Format(utils.TimeLayout),
		UpdatedAt:     utils.NullTimeToString(e.UpdatedAt),
	}
}

func scanEquipment(row pgx.Row) (entities.Equipment, error) {
	var e entities.Equipment
	err := row.Scan(&e.ID, &e.SKU, &e.Name, &e.EquipmentType, &e.IsActive, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

func (r *equipmentRepository) GetEquipment(ctx context.Context, filter types.Filter) ([]dto.EquipmentDTO, uint64, error) {
	dataSQL, dataArgs, countSQL, countArgs, err := BuildListQuery(ListParams{
		Table:          equipmentTable,
		Columns:        strings.Split(equipmentFields, ", "),
		AllowedFilters: equipmentFilterColumns,
		AllowedSort:    map[string]string{"sku": "sku", "name": "name", "created_at": "created_at"},
		DefaultOrder:   "sku ASC",
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

	items := make([]dto.EquipmentDTO, 0)
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, mapEquipmentToDTO(e))
	}
	return items, total, rows.Err()
}

func (r *equipmentRepository) FindEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", equipmentFields, equipmentTable)
	e, err := scanEquipment(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	out := mapEquipmentToDTO(e)
	return &out, nil
}

func (r *equipmentRepository) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error) {
	isActive := true
	if payload.IsActive != nil {
		isActive = *payload.IsActive
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (sku, name, equipment_type, is_active) VALUES ($1, $2, $3, $4) RETURNING %s",
		equipmentTable, equipmentFields)
	e, err := scanEquipment(r.storage.QueryRow(ctx, query, payload.SKU, payload.Name, payload.EquipmentType, isActive))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.ErrConflict
		}
		return nil, err
	}
	out := mapEquipmentToDTO(e)
	return &out, nil
}

func (r *equipmentRepository) UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error) {
	var setClauses []string
	var args []interface{}
	argID := 1

	appendSet := func(col string, val interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, argID))
		args = append(args, val)
		argID++
	}

	if payload.SKU != nil {
		appendSet("sku", *payload.SKU)
	}
	if payload.Name != nil {
		appendSet("name", *payload.Name)
	}
	if payload.EquipmentType != nil {
		appendSet("equipment_type", *payload.EquipmentType)
	}
	if payload.IsActive != nil {
		appendSet("is_active", *payload.IsActive)
	}
	if len(setClauses) == 0 {
		return r.FindEquipment(ctx, id)
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		equipmentTable, strings.Join(setClauses, ", "), argID, equipmentFields)
	args = append(args, id)

	e, err := scanEquipment(r.storage.QueryRow(ctx, query, args...))
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
	out := mapEquipmentToDTO(e)
	return &out, nil
}

func (r *equipmentRepository) DeleteEquipment(ctx context.Context, id uint64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", equipmentTable)
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
