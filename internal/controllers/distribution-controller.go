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

type DistributionController struct {
	distributionService services.DistributionServiceInterface
	logger              *zap.Logger
}

func NewDistributionController(distributionService services.DistributionServiceInterface, logger *zap.Logger) *DistributionController {
	return &DistributionController{distributionService: distributionService, logger: logger}
}

func (c *DistributionController) GetDistributions(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	distributions, total, err := c.distributionService.GetDistributions(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.ListResponse(ctx, distributions, "Distributions fetched successfully", types.Pagination{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	})
}

func (c *DistributionController) FindDistribution(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	distribution, err := c.distributionService.FindDistribution(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, distribution, "Distribution fetched successfully", http.StatusOK)
}

func (c *DistributionController) CreateDistribution(ctx echo.Context) error {
	var payload dto.CreateDistributionDTO
	if err := bindAndValidate(ctx, &payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	distribution, err := c.distributionService.CreateDistribution(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, distribution, "Distribution created successfully", http.StatusCreated)
}

func (c *DistributionController) UpdateDistribution(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateDistributionDTO
	if err := bindAndValidate(ctx, &payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	distribution, err := c.distributionService.UpdateDistribution(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, distribution, "Distribution updated successfully", http.StatusOK)
}

func (c *DistributionController) DeleteDistribution(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.distributionService.DeleteDistribution(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, struct{}{}, "Distribution deleted successfully", http.StatusOK)
}

// ConfirmDistribution stamps the run as received at the depot. It works
// once per distribution; repeating it is a conflict.
func (c *DistributionController) ConfirmDistribution(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	distribution, err := c.distributionService.ConfirmDistribution(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, distribution, "Distribution confirmed successfully", http.StatusOK)
}
