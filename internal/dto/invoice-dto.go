package dto

import "github.com/aarondl/null/v8"

type InvoiceDTO struct {
	ID            uint64           `json:"id"`
	InvoiceNumber string           `json:"invoice_number"`
	Customer      ShortCustomerDTO `json:"customer"`
	TotalAmount   string           `json:"total_amount"`
	Status        string           `json:"status"`
	PDFPath       string           `json:"pdf_path,omitempty"`
	GeneratedAt   string           `json:"generated_at,omitempty"`
	EmailedAt     string           `json:"emailed_at,omitempty"`
	CreatedAt     string           `json:"created_at"`
}

// CreateInvoiceDTO carries no invoice_number, pdf_path or generated_at:
// those fields are system-owned and read-only in the admin form.
type CreateInvoiceDTO struct {
	CustomerID  uint64 `json:"customer_id" validate:"required"`
	TotalAmount string `json:"total_amount" validate:"required"`
	Status      string `json:"status" validate:"omitempty,oneof=draft generated emailed paid void"`
}

type UpdateInvoiceDTO struct {
	Status      null.String `json:"status,omitempty" validate:"omitempty"`
	TotalAmount null.String `json:"total_amount,omitempty"`
}

// MarkInvoiceGeneratedDTO records the path of the rendered invoice
// document. status and generated_at are set server-side by the action.
type MarkInvoiceGeneratedDTO struct {
	PDFPath string `json:"pdf_path" validate:"required"`
}

// ResendInvoicesDTO selects invoices for a bulk email resend.
type ResendInvoicesDTO struct {
	IDs []uint64 `json:"ids" validate:"required,min=1,dive,required"`
}
