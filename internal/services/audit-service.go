package services

import (
	"context"
	"database/sql"
	"encoding/json"

	"go.uber.org/zap"

	"refill-system/internal/dto"
	"refill-system/internal/entities"
	"refill-system/internal/repositories"
	"refill-system/pkg/types"
	"refill-system/pkg/utils"
)

// AuditServiceInterface records mutations and serves the browse views.
// There are no update or delete operations here: the audit log is
// append-only all the way down.
type AuditServiceInterface interface {
	Record(ctx context.Context, action, entityType string, entityID uint64, payload interface{})
	GetAuditLogs(ctx context.Context, filter types.Filter) ([]dto.AuditLogDTO, uint64, error)
	FindAuditLog(ctx context.Context, id uint64) (*dto.AuditLogDTO, error)
}

type auditService struct {
	auditRepo repositories.AuditRepositoryInterface
	logger    *zap.Logger
}

func NewAuditService(auditRepo repositories.AuditRepositoryInterface, logger *zap.Logger) AuditServiceInterface {
	return &auditService{auditRepo: auditRepo, logger: logger}
}

// Record writes one audit entry after a successful mutation. It is
// best-effort: a failed write is logged and never fails the mutation
// that triggered it.
func (s *auditService) Record(ctx context.Context, action, entityType string, entityID uint64, payload interface{}) {
	entry := entities.AuditLog{
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
	}

	if userID, err := utils.GetUserIDFromContext(ctx); err == nil {
		entry.UserID = sql.NullInt64{Int64: int64(userID), Valid: true}
	}

	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			s.logger.Warn("audit payload marshal failed",
				zap.String("action", action),
				zap.String("entity_type", entityType),
				zap.Error(err))
		} else {
			entry.Payload = raw
		}
	}

	if err := s.auditRepo.InsertAuditLog(ctx, entry); err != nil {
		s.logger.Error("audit write failed",
			zap.String("action", action),
			zap.String("entity_type", entityType),
			zap.Uint64("entity_id", entityID),
			zap.Error(err))
	}
}

func (s *auditService) GetAuditLogs(ctx context.Context, filter types.Filter) ([]dto.AuditLogDTO, uint64, error) {
	return s.auditRepo.GetAuditLogs(ctx, filter)
}

func (s *auditService) FindAuditLog(ctx context.Context, id uint64) (*dto.AuditLogDTO, error) {
	return s.auditRepo.FindAuditLog(ctx, id)
}
