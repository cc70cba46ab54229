package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"refill-system/internal/services"
	apperrors "refill-system/pkg/errors"
	"refill-system/pkg/types"
	"refill-system/pkg/utils"
)

// AuditController exposes list and detail views only. The audit log takes
// no writes over HTTP; see the route table, which binds nothing else.
type AuditController struct {
	auditService services.AuditServiceInterface
	logger       *zap.Logger
}

func NewAuditController(auditService services.AuditServiceInterface, logger *zap.Logger) *AuditController {
	return &AuditController{auditService: auditService, logger: logger}
}

func (c *AuditController) GetAuditLogs(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	entries, total, err := c.auditService.GetAuditLogs(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.ListResponse(ctx, entries, "Audit log fetched successfully", types.Pagination{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	})
}

func (c *AuditController) FindAuditLog(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrBadRequest, c.logger)
	}

	entry, err := c.auditService.FindAuditLog(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, entry, "Audit entry fetched successfully", http.StatusOK)
}

// RejectMutation answers any write attempt on the audit log. The routes
// below bind it to POST, PUT, PATCH and DELETE so the denial is explicit
// rather than a generic 404.
func (c *AuditController) RejectMutation(ctx echo.Context) error {
	return utils.ErrorResponse(ctx, apperrors.ErrAuditReadOnly, c.logger)
}
