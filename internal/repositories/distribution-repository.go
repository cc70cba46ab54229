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
	distributionTable      = "distributions"
	distributionItemTable  = "distribution_items"
	distributionNumberSeq  = "distribution_number_seq"
	distributionNumberPfx  = "DST"
	distributionJoinFields = "d.id, d.distribution_number, d.depot_id, d.user_id, d.confirmed_at, d.created_at, dp.code AS depot_code, dp.name AS depot_name, u.username"
)

type DistributionRepositoryInterface interface {
	GetDistributions(ctx context.Context, filter types.Filter) ([]dto.DistributionDTO, uint64, error)
	FindDistribution(ctx context.Context, id uint64) (*dto.DistributionDTO, error)
	CreateDistribution(ctx context.Context, payload dto.CreateDistributionDTO) (*dto.DistributionDTO, error)
	UpdateDistribution(ctx context.Context, id uint64, payload dto.UpdateDistributionDTO) (*dto.DistributionDTO, error)
	DeleteDistribution(ctx context.Context, id uint64) error
	ConfirmDistribution(ctx context.Context, id uint64) (*dto.DistributionDTO, error)
}

type distributionRepository struct {
	storage *pgxpool.Pool
}

func NewDistributionRepository(storage *pgxpool.Pool) DistributionRepositoryInterface {
	return &distributionRepository{storage: storage}
}

type dbDistribution struct {
	entities.Distribution
	DepotCode string
}

func (db *dbDistribution) toDTO(items []dto.DistributionItemDTO) dto.DistributionDTO {
	return dto.DistributionDTO{
		ID:                 db.ID,
		DistributionNumber: db.DistributionNumber,
		Depot: dto.ShortDepotDTO{
			ID:   db.DepotID,
			Code: db.DepotCode,
			Name: utils.NullStringToString(db.DepotName),
		},
		User: dto.ShortUserDTO{
			ID:       db.UserID,
			Username: utils.NullStringToString(db.Username),
		},
		ConfirmedAt: utils.NullTimeToString(db.ConfirmedAt),
		CreatedAt:   db.CreatedAt.Local().Format(utils.TimeLayout),
		Items:       items,
	}
}

func scanDistribution(row pgx.Row) (dbDistribution, error) {
	var db dbDistribution
	err := row.Scan(
		&db.ID, &db.DistributionNumber, &db.DepotID, &db.UserID,
		&db.ConfirmedAt, &db.CreatedAt,
		&db.DepotCode, &db.DepotName, &db.Username,
	)
	return db, err
}

func (r *distributionRepository) GetDistributions(ctx context.Context, filter types.Filter) ([]dto.DistributionDTO, uint64, error) {
	dataSQL, dataArgs, countSQL, countArgs, err := BuildListQuery(ListParams{
		Table:   distributionTable + " AS d",
		Columns: strings.Split(distributionJoinFields, ", "),
		Joins: []Join{
			{Table: "depots AS dp", On: "dp.id = d.depot_id"},
			{Table: "users AS u", On: "u.id = d.user_id"},
		},
		AllowedFilters: map[string]string{"depot": "d.depot_id", "user": "d.user_id"},
		AllowedSearch:  []string{"d.distribution_number"},
		AllowedSort:    map[string]string{"created_at": "d.created_at", "confirmed_at": "d.confirmed_at"},
		DefaultOrder:   "d.created_at DESC",
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

	records := make([]dbDistribution, 0)
	for rows.Next() {
		db, err := scanDistribution(rows)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, db)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	// One items query for the whole page, keyed back by parent id.
	ids := make([]uint64, 0, len(records))
	for _, rec := range records {
		ids = append(ids, rec.ID)
	}
	itemsByID, err := r.loadItems(ctx, r.storage, ids)
	if err != nil {
		return nil, 0, err
	}

	distributions := make([]dto.DistributionDTO, 0, len(records))
	for _, rec := range records {
		distributions = append(distributions, rec.toDTO(itemsByID[rec.ID]))
	}
	return distributions, total, nil
}

func (r *distributionRepository) FindDistribution(ctx context.Context, id uint64) (*dto.DistributionDTO, error) {
	return r.findDistribution(ctx, r.storage, id)
}

func (r *distributionRepository) findDistribution(ctx context.Context, q Querier, id uint64) (*dto.DistributionDTO, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s AS d
			JOIN depots AS dp ON dp.id = d.depot_id
			JOIN users AS u ON u.id = d.user_id
		WHERE d.id = $1`, distributionJoinFields, distributionTable)

	db, err := scanDistribution(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	itemsByID, err := r.loadItems(ctx, q, []uint64{id})
	if err != nil {
		return nil, err
	}
	out := db.toDTO(itemsByID[id])
	return &out, nil
}

func (r *distributionRepository) loadItems(ctx context.Context, q Querier, distributionIDs []uint64) (map[uint64][]dto.DistributionItemDTO, error) {
	out := make(map[uint64][]dto.DistributionItemDTO, len(distributionIDs))
	if len(distributionIDs) == 0 {
		return out, nil
	}

	query := fmt.Sprintf(`
		SELECT di.id, di.distribution_id, di.equipment_id, di.quantity, e.sku, e.name
		FROM %s AS di
			JOIN equipment AS e ON e.id = di.equipment_id
		WHERE di.distribution_id = ANY($1)
		ORDER BY di.id ASC`, distributionItemTable)

	rows, err := q.Query(ctx, query, distributionIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item dto.DistributionItemDTO
		var distributionID uint64
		if err := rows.Scan(&item.ID, &distributionID, &item.Equipment.ID, &item.Quantity, &item.Equipment.SKU, &item.Equipment.Name); err != nil {
			return nil, err
		}
		out[distributionID] = append(out[distributionID], item)
	}
	return out, rows.Err()
}

// CreateDistribution writes the parent record and its inline items in one
// transaction; either the whole set lands or none of it does. The
// distribution number comes from a dedicated database sequence.
func (r *distributionRepository) CreateDistribution(ctx context.Context, payload dto.CreateDistributionDTO) (*dto.DistributionDTO, error) {
	var id uint64
	err := WithTx(ctx, r.storage, func(tx pgx.Tx) error {
		var seq uint64
		if err := tx.QueryRow(ctx, fmt.Sprintf("SELECT nextval('%s')", distributionNumberSeq)).Scan(&seq); err != nil {
			return err
		}
		number := utils.FormatSequenceNumber(distributionNumberPfx, seq)

		query := fmt.Sprintf(`
			INSERT INTO %s (distribution_number, depot_id, user_id)
			VALUES ($1, $2, $3)
			RETURNING id`, distributionTable)
		if err := tx.QueryRow(ctx, query, number, payload.DepotID, payload.UserID).Scan(&id); err != nil {
			return translateDistributionError(err)
		}
		return r.insertItems(ctx, tx, id, payload.Items)
	})
	if err != nil {
		return nil, err
	}
	return r.FindDistribution(ctx, id)
}

// UpdateDistribution never touches distribution_number or created_at. When
// items are present the inline set is replaced wholesale, matching how the
// admin form submits it.
func (r *distributionRepository) UpdateDistribution(ctx context.Context, id uint64, payload dto.UpdateDistributionDTO) (*dto.DistributionDTO, error) {
	err := WithTx(ctx, r.storage, func(tx pgx.Tx) error {
		var setClauses []string
		var args []interface{}
		argID := 1

		appendSet := func(col string, val interface{}) {
			setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, argID))
			args = append(args, val)
			argID++
		}

		if payload.DepotID != nil {
			appendSet("depot_id", *payload.DepotID)
		}
		if payload.UserID != nil {
			appendSet("user_id", *payload.UserID)
		}

		if len(setClauses) > 0 {
			query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d",
				distributionTable, strings.Join(setClauses, ", "), argID)
			args = append(args, id)

			result, err := tx.Exec(ctx, query, args...)
			if err != nil {
				return translateDistributionError(err)
			}
			if result.RowsAffected() == 0 {
				return apperrors.ErrNotFound
			}
		} else {
			var exists bool
			if err := tx.QueryRow(ctx, fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1)", distributionTable), id).Scan(&exists); err != nil {
				return err
			}
			if !exists {
				return apperrors.ErrNotFound
			}
		}

		if payload.Items != nil {
			if _, err := tx.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE distribution_id = $1", distributionItemTable), id); err != nil {
				return err
			}
			if err := r.insertItems(ctx, tx, id, payload.Items); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.FindDistribution(ctx, id)
}

func (r *distributionRepository) insertItems(ctx context.Context, q Querier, distributionID uint64, items []dto.CreateDistributionItemDTO) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (distribution_id, equipment_id, quantity)
		VALUES ($1, $2, $3)`, distributionItemTable)

	for _, item := range items {
		if _, err := q.Exec(ctx, query, distributionID, item.EquipmentID, item.Quantity); err != nil {
			return translateDistributionError(err)
		}
	}
	return nil
}

func (r *distributionRepository) DeleteDistribution(ctx context.Context, id uint64) error {
	return WithTx(ctx, r.storage, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE distribution_id = $1", distributionItemTable), id); err != nil {
			return err
		}
		result, err := tx.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", distributionTable), id)
		if err != nil {
			return err
		}
		if result.RowsAffected() == 0 {
			return apperrors.ErrNotFound
		}
		return nil
	})
}

// ConfirmDistribution stamps confirmed_at once; confirming twice is a
// conflict.
func (r *distributionRepository) ConfirmDistribution(ctx context.Context, id uint64) (*dto.DistributionDTO, error) {
	query := fmt.Sprintf(`
		UPDATE %s SET confirmed_at = NOW()
		WHERE id = $1 AND confirmed_at IS NULL`, distributionTable)

	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return nil, err
	}
	if result.RowsAffected() == 0 {
		var exists bool
		if err := r.storage.QueryRow(ctx, fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1)", distributionTable), id).Scan(&exists); err != nil {
			return nil, err
		}
		if exists {
			return nil, apperrors.ErrConflict
		}
		return nil, apperrors.ErrNotFound
	}
	return r.FindDistribution(ctx, id)
}

func translateDistributionError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return apperrors.ErrConflict
		case "23503":
			return apperrors.ErrBadRequest
		}
	}
	return err
}
