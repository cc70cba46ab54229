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

type InvoiceController struct {
	invoiceService services.InvoiceServiceInterface
	logger         *zap.Logger
}

func NewInvoiceController(invoiceService services.InvoiceServiceInterface, logger *zap.Logger) *InvoiceController {
	return &InvoiceController{invoiceService: invoiceService, logger: logger}
}

func (c *InvoiceController) GetInvoices(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	invoices, total, err := c.invoiceService.GetInvoices(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.ListResponse(ctx, invoices, "Invoices fetched successfully", types.Pagination{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	})
}

func (c *InvoiceController) FindInvoice(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	invoice, err := c.invoiceService.FindInvoice(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, invoice, "Invoice fetched successfully", http.StatusOK)
}

func (c *InvoiceController) CreateInvoice(ctx echo.Context) error {
	var payload dto.CreateInvoiceDTO
	if err := bindAndValidate(ctx, &payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	invoice, err := c.invoiceService.CreateInvoice(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, invoice, "Invoice created successfully", http.StatusCreated)
}

func (c *InvoiceController) UpdateInvoice(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateInvoiceDTO
	if err := bindAndValidate(ctx, &payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	invoice, err := c.invoiceService.UpdateInvoice(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, invoice, "Invoice updated successfully", http.StatusOK)
}

func (c *InvoiceController) DeleteInvoice(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.invoiceService.DeleteInvoice(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, struct{}{}, "Invoice deleted successfully", http.StatusOK)
}

// MarkInvoiceGenerated records the rendered document path and moves the
// invoice to the generated state.
func (c *InvoiceController) MarkInvoiceGenerated(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.MarkInvoiceGeneratedDTO
	if err := bindAndValidate(ctx, &payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	invoice, err := c.invoiceService.MarkInvoiceGenerated(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, invoice, "Invoice marked generated successfully", http.StatusOK)
}

// ResendInvoices is the bulk action behind the "resend emails" button:
// the selected invoices that never went out are emailed again.
func (c *InvoiceController) ResendInvoices(ctx echo.Context) error {
	var payload dto.ResendInvoicesDTO
	if err := bindAndValidate(ctx, &payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	sent, err := c.invoiceService.ResendInvoices(ctx.Request().Context(), payload.IDs)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, map[string]int{"sent": sent}, "Invoices resent successfully", http.StatusOK)
}
