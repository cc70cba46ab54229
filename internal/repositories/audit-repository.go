package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"refill-system/internal/dto"
	"refill-system/internal/entities"
	apperrors "refill-system/pkg/errors"
	"refill-system/pkg/types"
	"refill-system/pkg/utils"
)

const (
	auditTable      = "audit_log"
	auditJoinFields = "a.id, a.user_id, a.action, a.entity_type, a.entity_id, a.payload, a.created_at, u.username"
)

var (
	auditFilterColumns = map[string]string{
		"action":      "a.action",
		"entity_type": "a.entity_type",
	}
)

// AuditRepositoryInterface exposes insert and read operations only. The
// audit log is append-only, so no update or delete method exists at any
// layer.
type AuditRepositoryInterface interface {
	GetAuditLogs(ctx context.Context, filter types.Filter) ([]dto.AuditLogDTO, uint64, error)
	FindAuditLog(ctx context.Context, id uint64) (*dto.AuditLogDTO, error)
	InsertAuditLog(ctx context.Context, entry entities.AuditLog) error
}

type auditRepository struct {
	storage *pgxpool.Pool
}

func NewAuditRepository(storage *pgxpool.Pool) AuditRepositoryInterface {
	return &auditRepository{storage: storage}
}

func mapAuditToDTO(e entities.AuditLog) dto.AuditLogDTO {
	out := dto.AuditLogDTO{
		ID:         e.ID,
		Action:     e.Action,
		EntityType: e.EntityType,
		EntityID:   e.EntityID,
		Payload:    e.Payload,
		CreatedAt:  e.CreatedAt.Local().Format(utils.TimeLayout),
	}
	if e.UserID.Valid {
		out.User = &dto.ShortUserDTO{
			ID:       uint64(e.UserID.Int64),
			Username: utils.NullStringToString(e.Username),
		}
	}
	return out
}

func scanAuditLog(row pgx.Row) (entities.AuditLog, error) {
	var e entities.AuditLog
	err := row.Scan(
		&e.ID, &e.UserID, &e.Action, &e.EntityType, &e.EntityID,
		&e.Payload, &e.CreatedAt, &e.Username,
	)
	return e, err
}

func (r *auditRepository) GetAuditLogs(ctx context.Context, filter types.Filter) ([]dto.AuditLogDTO, uint64, error) {
	dataSQL, dataArgs, countSQL, countArgs, err := BuildListQuery(ListParams{
		Table:   auditTable + " AS a",
		Columns: strings.Split(auditJoinFields, ", "),
		Joins: []Join{
			{Table: "users AS u", On: "u.id = a.user_id", Kind: "LEFT"},
		},
		AllowedFilters: auditFilterColumns,
		AllowedSearch:  []string{"a.entity_type", "u.username"},
		AllowedSort:    map[string]string{"created_at": "a.created_at"},
		DefaultOrder:   "a.created_at DESC",
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

	entries := make([]dto.AuditLogDTO, 0)
	for rows.Next() {
		e, err := scanAuditLog(rows)
		if err != nil {
			return nil, 0, err
		}
		entries = append(entries, mapAuditToDTO(e))
	}
	return entries, total, rows.Err()
}

func (r *auditRepository) FindAuditLog(ctx context.Context, id uint64) (*dto.AuditLogDTO, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s AS a
			LEFT JOIN users AS u ON u.id = a.user_id
		WHERE a.id = $1`, auditJoinFields, auditTable)

	e, err := scanAuditLog(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	out := mapAuditToDTO(e)
	return &out, nil
}

func (r *auditRepository) InsertAuditLog(ctx context.Context, entry entities.AuditLog) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, action, entity_type, entity_id, payload)
		VALUES ($1, $2, $3, $4, $5)`, auditTable)

	_, err := r.storage.Exec(ctx, query,
		entry.UserID, entry.Action, entry.EntityType, entry.EntityID, entry.Payload)
	return err
}
