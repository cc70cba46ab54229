package entities

import (
	"database/sql"
	"time"
)

// Invoice lifecycle states.
const (
	InvoiceStatusDraft     = "draft"
	InvoiceStatusGenerated = "generated"
	InvoiceStatusEmailed   = "emailed"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusVoid      = "void"
)

type Invoice struct {
	ID            uint64         `db:"id"`
	InvoiceNumber string         `db:"invoice_number"`
	CustomerID    uint64         `db:"customer_id"`
	TotalAmount   string         `db:"total_amount"`
	Status        string         `db:"status"`
	PDFPath       sql.NullString `db:"pdf_path"`
	GeneratedAt   sql.NullTime   `db:"generated_at"`
	EmailedAt     sql.NullTime   `db:"emailed_at"`
	CreatedAt     time.Time      `db:"created_at"`

	CustomerName  sql.NullString `db:"customer_name"`
	CustomerEmail sql.NullString `db:"customer_email"`
}
