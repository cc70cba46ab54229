package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"refill-system/internal/dto"
	"refill-system/internal/entities"
	apperrors "refill-system/pkg/errors"
	"refill-system/pkg/types"
	"refill-system/pkg/utils"
)

const (
	invoiceTable      = "invoices"
	invoiceNumberSeq  = "invoice_number_seq"
	invoiceNumberPfx  = "INV"
	invoiceJoinFields = "i.id, i.invoice_number, i.customer_id, i.total_amount::text, i.status, i.pdf_path, i.generated_at, i.emailed_at, i.created_at, c.name AS customer_name, c.email AS customer_email"
)

var (
	invoiceFilterColumns = map[string]string{
		"status": "i.status",
	}
	invoiceSearchColumns = []string{"i.invoice_number", "c.name"}
)

type InvoiceRepositoryInterface interface {
	GetInvoices(ctx context.Context, filter types.Filter) ([]dto.InvoiceDTO, uint64, error)
	FindInvoice(ctx context.Context, id uint64) (*dto.InvoiceDTO, error)
	CreateInvoice(ctx context.Context, payload dto.CreateInvoiceDTO) (*dto.InvoiceDTO, error)
	UpdateInvoice(ctx context.Context, id uint64, payload dto.UpdateInvoiceDTO) (*dto.InvoiceDTO, error)
	DeleteInvoice(ctx context.Context, id uint64) error
	ListUnsent(ctx context.Context, ids []uint64) ([]entities.Invoice, error)
	MarkGenerated(ctx context.Context, id uint64, pdfPath string) error
	MarkEmailed(ctx context.Context, id uint64) error
}

type invoiceRepository struct {
	storage *pgxpool.Pool
}

func NewInvoiceRepository(storage *pgxpool.Pool) InvoiceRepositoryInterface {
	return &invoiceRepository{storage: storage}
}

func mapInvoiceToDTO(e entities.Invoice) dto.InvoiceDTO {
	return dto.InvoiceDTO{
		ID:            e.ID,
		InvoiceNumber: e.InvoiceNumber,
		Customer: dto.ShortCustomerDTO{
			ID:   e.CustomerID,
			Name: utils.NullStringToString(e.CustomerName),
		},
		TotalAmount: e.TotalAmount,
		Status:      e.Status,
		PDFPath:     utils.NullStringToString(e.PDFPath),
		GeneratedAt: utils.NullTimeToString(e.GeneratedAt),
		EmailedAt:   utils.NullTimeToString(e.EmailedAt),
		CreatedAt:   e.CreatedAt.Local().Format(utils.TimeLayout),
	}
}

func scanInvoice(row pgx.Row) (entities.Invoice, error) {
	var e entities.Invoice
	err := row.Scan(
		&e.ID, &e.InvoiceNumber, &e.CustomerID, &e.TotalAmount, &e.Status,
		&e.PDFPath, &e.GeneratedAt, &e.EmailedAt, &e.CreatedAt,
		&e.CustomerName, &e.CustomerEmail,
	)
	return e, err
}

func (r *invoiceRepository) GetInvoices(ctx context.Context, filter types.Filter) ([]dto.InvoiceDTO, uint64, error) {
	dataSQL, dataArgs, countSQL, countArgs, err := BuildListQuery(ListParams{
		Table:   invoiceTable + " AS i",
		Columns: strings.Split(invoiceJoinFields, ", "),
		Joins: []Join{
			{Table: "customers AS c", On: "c.id = i.customer_id"},
		},
		AllowedFilters: invoiceFilterColumns,
		AllowedSearch:  invoiceSearchColumns,
		AllowedSort:    map[string]string{"generated_at": "i.generated_at", "emailed_at": "i.emailed_at", "created_at": "i.created_at"},
		DefaultOrder:   "i.created_at DESC",
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

	invoices := make([]dto.InvoiceDTO, 0)
	for rows.Next() {
		e, err := scanInvoice(rows)
		if err != nil {
			return nil, 0, err
		}
		invoices = append(invoices, mapInvoiceToDTO(e))
	}
	return invoices, total, rows.Err()
}

func (r *invoiceRepository) FindInvoice(ctx context.Context, id uint64) (*dto.InvoiceDTO, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s AS i
			JOIN customers AS c ON c.id = i.customer_id
		WHERE i.id = $1`, invoiceJoinFields, invoiceTable)

	e, err := scanInvoice(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	out := mapInvoiceToDTO(e)
	return &out, nil
}

// CreateInvoice assigns the invoice number from a dedicated database
// sequence. pdf_path and generated_at stay empty until the document is
// rendered.
func (r *invoiceRepository) CreateInvoice(ctx context.Context, payload dto.CreateInvoiceDTO) (*dto.InvoiceDTO, error) {
	var seq uint64
	if err := r.storage.QueryRow(ctx, fmt.Sprintf("SELECT nextval('%s')", invoiceNumberSeq)).Scan(&seq); err != nil {
		return nil, err
	}
	number := utils.FormatSequenceNumber(invoiceNumberPfx, seq)

	status := payload.Status
	if status == "" {
		status = entities.InvoiceStatusDraft
	}

	var id uint64
	query := fmt.Sprintf(`
		INSERT INTO %s (invoice_number, customer_id, total_amount, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id`, invoiceTable)

	err := r.storage.QueryRow(ctx, query, number, payload.CustomerID, payload.TotalAmount, status).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return nil, apperrors.ErrConflict
			case "23503":
				return nil, apperrors.ErrBadRequest
			}
		}
		return nil, err
	}
	return r.FindInvoice(ctx, id)
}

// UpdateInvoice never touches invoice_number, pdf_path or generated_at;
// those fields move through MarkGenerated and MarkEmailed only.
func (r *invoiceRepository) UpdateInvoice(ctx context.Context, id uint64, payload dto.UpdateInvoiceDTO) (*dto.InvoiceDTO, error) {
	var setClauses []string
	var args []interface{}
	argID := 1

	appendSet := func(col string, val interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, argID))
		args = append(args, val)
		argID++
	}

	if payload.Status.Valid {
		appendSet("status", payload.Status.String)
	}
	if payload.TotalAmount.Valid {
		appendSet("total_amount", payload.TotalAmount.String)
	}
	if len(setClauses) == 0 {
		return r.FindInvoice(ctx, id)
	}

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d",
		invoiceTable, strings.Join(setClauses, ", "), argID)
	args = append(args, id)

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	if result.RowsAffected() == 0 {
		return nil, apperrors.ErrNotFound
	}
	return r.FindInvoice(ctx, id)
}

func (r *invoiceRepository) DeleteInvoice(ctx context.Context, id uint64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", invoiceTable)
	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ListUnsent returns generated invoices that were never emailed. With ids
// the set is narrowed to an explicit selection, as the bulk resend action
// does; without ids it covers everything pending, as the scheduler does.
func (r *invoiceRepository) ListUnsent(ctx context.Context, ids []uint64) ([]entities.Invoice, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s AS i
			JOIN customers AS c ON c.id = i.customer_id
		WHERE i.status = $1 AND i.emailed_at IS NULL`, invoiceJoinFields, invoiceTable)
	args := []interface{}{entities.InvoiceStatusGenerated}

	if len(ids) > 0 {
		query += " AND i.id = ANY($2)"
		args = append(args, ids)
	}
	query += " ORDER BY i.created_at ASC"

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invoices := make([]entities.Invoice, 0)
	for rows.Next() {
		e, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, e)
	}
	return invoices, rows.Err()
}

func (r *invoiceRepository) MarkGenerated(ctx context.Context, id uint64, pdfPath string) error {
	query := fmt.Sprintf(`
		UPDATE %s SET status = $1, pdf_path = $2, generated_at = NOW()
		WHERE id = $3`, invoiceTable)

	result, err := r.storage.Exec(ctx, query, entities.InvoiceStatusGenerated, pdfPath, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *invoiceRepository) MarkEmailed(ctx context.Context, id uint64) error {
	query := fmt.Sprintf(`
		UPDATE %s SET status = $1, emailed_at = NOW()
		WHERE id = $2`, invoiceTable)

	result, err := r.storage.Exec(ctx, query, entities.InvoiceStatusEmailed, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
