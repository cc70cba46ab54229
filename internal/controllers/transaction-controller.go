package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"refill-system/internal/dto"
	"refill-system/internal/services"
	"refill-system/pkg/types"
	"refill-system/pkg/utils"
)

type TransactionController struct {
	transactionService services.TransactionServiceInterface
	logger             *zap.Logger
}

func NewTransactionController(transactionService services.TransactionServiceInterface, logger *zap.Logger) *TransactionController {
	return &TransactionController{transactionService: transactionService, logger: logger}
}

func (c *TransactionController) GetTransactions(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	transactions, total, err := c.transactionService.GetTransactions(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.ListResponse(ctx, transactions, "Transactions fetched successfully", types.Pagination{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	})
}

// ExportTransactions streams the filtered transaction list as an XLSX
// workbook. The same filter[...] query keys as the list view apply.
func (c *TransactionController) ExportTransactions(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	workbook, err := c.transactionService.ExportTransactions(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	filename := fmt.Sprintf("transactions_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return ctx.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", workbook)
}

func (c *TransactionController) FindTransaction(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	transaction, err := c.transactionService.FindTransaction(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, transaction, "Transaction fetched successfully", http.StatusOK)
}

func (c *TransactionController) CreateTransaction(ctx echo.Context) error {
	var payload dto.CreateTransactionDTO
	if err := bindAndValidate(ctx, &payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	transaction, err := c.transactionService.CreateTransaction(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, transaction, "Transaction created successfully", http.StatusCreated)
}

func (c *TransactionController) UpdateTransaction(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateTransactionDTO
	if err := bindAndValidate(ctx, &payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	transaction, err := c.transactionService.UpdateTransaction(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, transaction, "Transaction updated successfully", http.StatusOK)
}

func (c *TransactionController) DeleteTransaction(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.transactionService.DeleteTransaction(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, struct{}{}, "Transaction deleted successfully", http.StatusOK)
}
