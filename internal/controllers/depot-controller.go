package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"refill-system/internal/dto"
	"refill-system/internal/services"
	"refill-system/pkg/types"
	"refill-system/pkg/utils"
)

type DepotController struct {
	depotService services.DepotServiceInterface
	logger       *zap.Logger
}

func NewDepotController(depotService services.DepotServiceInterface, logger *zap.Logger) *DepotController {
	return &DepotController{depotService: depotService, logger: logger}
}

func (c *DepotController) GetDepots(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	depots, total, err := c.depotService.GetDepots(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.ListResponse(ctx, depots, "Depots fetched successfully", types.Pagination{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	})
}

func (c *DepotController) FindDepot(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	depot, err := c.depotService.FindDepot(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, depot, "Depot fetched successfully", http.StatusOK)
}

func (c *DepotController) CreateDepot(ctx echo.Context) error {
	var payload dto.CreateDepotDTO
	if err := bindAndValidate(ctx, &payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	depot, err := c.depotService.CreateDepot(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, depot, "Depot created successfully", http.StatusCreated)
}

func (c *DepotController) UpdateDepot(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateDepotDTO
	if err := bindAndValidate(ctx, &payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	depot, err := c.depotService.UpdateDepot(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, depot, "Depot updated successfully", http.StatusOK)
}

func (c *DepotController) DeleteDepot(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.depotService.DeleteDepot(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, struct{}{}, "Depot deleted successfully", http.StatusOK)
}
