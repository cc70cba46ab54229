package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"refill-system/internal/admin"
	apperrors "refill-system/pkg/errors"
	"refill-system/pkg/utils"
)

// AdminController serves the admin resource metadata: which columns each
// list view shows, which filters and search fields exist, which fields
// are read-only and which resources allow mutation at all. UI shells
// render from this instead of hardcoding the layout.
type AdminController struct {
	registry *admin.Registry
	logger   *zap.Logger
}

func NewAdminController(registry *admin.Registry, logger *zap.Logger) *AdminController {
	return &AdminController{registry: registry, logger: logger}
}

func (c *AdminController) GetResources(ctx echo.Context) error {
	return utils.SuccessResponse(ctx, c.registry.All(), "Admin resources fetched successfully", http.StatusOK)
}

func (c *AdminController) GetResource(ctx echo.Context) error {
	registration, ok := c.registry.Lookup(ctx.Param("resource"))
	if !ok {
		return utils.ErrorResponse(ctx, apperrors.ErrNotFound, c.logger)
	}
	return utils.SuccessResponse(ctx, registration, "Admin resource fetched successfully", http.StatusOK)
}
