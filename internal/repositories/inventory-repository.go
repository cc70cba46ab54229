package repositories

import (
	"context"
	"errors"
	"fmt"

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
	inventoryTable      = "customer_site_inventory"
	inventoryJoinFields = "i.id, i.customer_id, i.equipment_id, i.quantity, i.created_at, i.updated_at, c.name AS customer_name, e.sku AS equipment_sku, e.name AS equipment_name"
)

var (
	inventoryFilterColumns = map[string]string{
		"equipment": "i.equipment_id",
	}
	inventorySearchColumns = []string{"c.name"}
)

type InventoryRepositoryInterface interface {
	GetInventory(ctx context.Context, filter types.Filter) ([]dto.InventoryDTO, uint64, error)
	FindInventory(ctx context.Context, id uint64) (*dto.InventoryDTO, error)
	CreateInventory(ctx context.Context, payload dto.CreateInventoryDTO) (*dto.InventoryDTO, error)
	UpdateInventory(ctx context.Context, id uint64, payload dto.UpdateInventoryDTO) (*dto.InventoryDTO, error)
	DeleteInventory(ctx context.Context, id uint64) error
}

type inventoryRepository struct {
	storage *pgxpool.Pool
}

func NewInventoryRepository(storage *pgxpool.Pool) InventoryRepositoryInterface {
	return &inventoryRepository{storage: storage}
}

type dbInventory struct {
	entities.CustomerSiteInventory
	EquipmentSKU string
}

func (db *dbInventory) toDTO() dto.InventoryDTO {
	return dto.InventoryDTO{
		ID: db.ID,
		Customer: dto.ShortCustomerDTO{
			ID:   db.CustomerID,
			Name: utils.NullStringToString(db.CustomerName),
		},
		Equipment: dto.ShortEquipmentDTO{
			ID:   db.EquipmentID,
			SKU:  db.EquipmentSKU,
			Name: utils.NullStringToString(db.EquipmentName),
		},
		Quantity:  db.Quantity,
		CreatedAt: db.CreatedAt.Local().Format(utils.TimeLayout),
		UpdatedAt: utils.NullTimeToString(db.UpdatedAt),
	}
}

func scanInventory(row pgx.Row) (dbInventory, error) {
	var db dbInventory
	err := row.Scan(
		&db.ID, &db.CustomerID, &db.EquipmentID, &db.Quantity,
		&db.CreatedAt, &db.UpdatedAt,
		&db.CustomerName, &db.EquipmentSKU, &db.EquipmentName,
	)
	return db, err
}

const inventoryJoinClause = `
	FROM customer_site_inventory AS i
		JOIN customers AS c ON c.id = i.customer_id
		JOIN equipment AS e ON e.id = i.equipment_id`

func (r *inventoryRepository) GetInventory(ctx context.Context, filter types.Filter) ([]dto.InventoryDTO, uint64, error) {
	dataSQL, dataArgs, countSQL, countArgs, err := BuildListQuery(ListParams{
		Table:   inventoryTable + " AS i",
		Columns: []string{"i.id", "i.customer_id", "i.equipment_id", "i.quantity", "i.created_at", "i.updated_at", "c.name AS customer_name", "e.sku AS equipment_sku", "e.name AS equipment_name"},
		Joins: []Join{
			{Table: "customers AS c", On: "c.id = i.customer_id"},
			{Table: "equipment AS e", On: "e.id = i.equipment_id"},
		},
		AllowedFilters: inventoryFilterColumns,
		AllowedSearch:  inventorySearchColumns,
		AllowedSort:    map[string]string{"quantity": "i.quantity", "customer": "c.name"},
		DefaultOrder:   "c.name ASC, e.sku ASC",
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

	items := make([]dto.InventoryDTO, 0)
	for rows.Next() {
		db, err := scanInventory(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, db.toDTO())
	}
	return items, total, rows.Err()
}

func (r *inventoryRepository) FindInventory(ctx context.Context, id uint64) (*dto.InventoryDTO, error) {
	query := fmt.Sprintf("SELECT %s %s WHERE i.id = $1", inventoryJoinFields, inventoryJoinClause)
	db, err := scanInventory(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	out := db.toDTO()
	return &out, nil
}

func (r *inventoryRepository) CreateInventory(ctx context.Context, payload dto.CreateInventoryDTO) (*dto.InventoryDTO, error) {
	var id uint64
	query := fmt.Sprintf(`
		INSERT INTO %s (customer_id, equipment_id, quantity)
		VALUES ($1, $2, $3)
		RETURNING id`, inventoryTable)

	err := r.storage.QueryRow(ctx, query, payload.CustomerID, payload.EquipmentID, payload.Quantity).Scan(&id)
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
	return r.FindInventory(ctx, id)
}

func (r *inventoryRepository) UpdateInventory(ctx context.Context, id uint64, payload dto.UpdateInventoryDTO) (*dto.InventoryDTO, error) {
	if payload.Quantity == nil {
		return r.FindInventory(ctx, id)
	}

	query := fmt.Sprintf("UPDATE %s SET quantity = $1, updated_at = NOW() WHERE id = $2", inventoryTable)
	result, err := r.storage.Exec(ctx, query, *payload.Quantity, id)
	if err != nil {
		return nil, err
	}
	if result.RowsAffected() == 0 {
		return nil, apperrors.ErrNotFound
	}
	return r.FindInventory(ctx, id)
}

func (r *inventoryRepository) DeleteInventory(ctx context.Context, id uint64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", inventoryTable)
	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
