package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"refill-system/internal/admin"
	"refill-system/internal/dto"
	"refill-system/internal/entities"
	"refill-system/internal/repositories"
	"refill-system/pkg/service"
	"refill-system/pkg/types"
	"refill-system/pkg/utils"
)

type InvoiceServiceInterface interface {
	GetInvoices(ctx context.Context, filter types.Filter) ([]dto.InvoiceDTO, uint64, error)
	FindInvoice(ctx context.Context, id uint64) (*dto.InvoiceDTO, error)
	CreateInvoice(ctx context.Context, payload dto.CreateInvoiceDTO) (*dto.InvoiceDTO, error)
	UpdateInvoice(ctx context.Context, id uint64, payload dto.UpdateInvoiceDTO) (*dto.InvoiceDTO, error)
	DeleteInvoice(ctx context.Context, id uint64) error
	MarkInvoiceGenerated(ctx context.Context, id uint64, payload dto.MarkInvoiceGeneratedDTO) (*dto.InvoiceDTO, error)
	ResendInvoices(ctx context.Context, ids []uint64) (int, error)
	ResendPending(ctx context.Context) (int, error)
}

type invoiceService struct {
	invoiceRepo repositories.InvoiceRepositoryInterface
	mailer      service.Mailer
	audit       AuditServiceInterface
	logger      *zap.Logger
}

func NewInvoiceService(
	invoiceRepo repositories.InvoiceRepositoryInterface,
	mailer service.Mailer,
	audit AuditServiceInterface,
	logger *zap.Logger,
) InvoiceServiceInterface {
	return &invoiceService{
		invoiceRepo: invoiceRepo,
		mailer:      mailer,
		audit:       audit,
		logger:      logger,
	}
}

func (s *invoiceService) GetInvoices(ctx context.Context, filter types.Filter) ([]dto.InvoiceDTO, uint64, error) {
	return s.invoiceRepo.GetInvoices(ctx, filter)
}

func (s *invoiceService) FindInvoice(ctx context.Context, id uint64) (*dto.InvoiceDTO, error) {
	return s.invoiceRepo.FindInvoice(ctx, id)
}

func (s *invoiceService) CreateInvoice(ctx context.Context, payload dto.CreateInvoiceDTO) (*dto.InvoiceDTO, error) {
	invoice, err := s.invoiceRepo.CreateInvoice(ctx, payload)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, entities.AuditActionCreate, admin.ResourceInvoices, invoice.ID, payload)
	return invoice, nil
}

func (s *invoiceService) UpdateInvoice(ctx context.Context, id uint64, payload dto.UpdateInvoiceDTO) (*dto.InvoiceDTO, error) {
	invoice, err := s.invoiceRepo.UpdateInvoice(ctx, id, payload)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, entities.AuditActionUpdate, admin.ResourceInvoices, id, payload)
	return invoice, nil
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, id uint64) error {
	if err := s.invoiceRepo.DeleteInvoice(ctx, id); err != nil {
		return err
	}
	s.audit.Record(ctx, entities.AuditActionDelete, admin.ResourceInvoices, id, nil)
	return nil
}

// MarkInvoiceGenerated records where the rendered invoice document lives
// and moves the invoice to the generated state. pdf_path and generated_at
// are read-only form fields; this action is the only way they change.
func (s *invoiceService) MarkInvoiceGenerated(ctx context.Context, id uint64, payload dto.MarkInvoiceGeneratedDTO) (*dto.InvoiceDTO, error) {
	if err := s.invoiceRepo.MarkGenerated(ctx, id, payload.PDFPath); err != nil {
		return nil, err
	}
	s.audit.Record(ctx, entities.AuditActionUpdate, admin.ResourceInvoices, id, payload)
	return s.invoiceRepo.FindInvoice(ctx, id)
}

// ResendInvoices emails the selected invoices that were generated but
// never delivered. It returns how many went out; a failed send skips
// that invoice and moves on.
func (s *invoiceService) ResendInvoices(ctx context.Context, ids []uint64) (int, error) {
	return s.resend(ctx, ids)
}

// ResendPending is the scheduler entry point: it sweeps every generated
// invoice still waiting for delivery.
func (s *invoiceService) ResendPending(ctx context.Context) (int, error) {
	return s.resend(ctx, nil)
}

func (s *invoiceService) resend(ctx context.Context, ids []uint64) (int, error) {
	pending, err := s.invoiceRepo.ListUnsent(ctx, ids)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, invoice := range pending {
		email := utils.NullStringToString(invoice.CustomerEmail)
		if email == "" {
			s.logger.Warn("invoice customer has no email, skipping",
				zap.String("invoice_number", invoice.InvoiceNumber))
			continue
		}

		subject := fmt.Sprintf("Invoice %s", invoice.InvoiceNumber)
		body := fmt.Sprintf(
			"Dear %s,\n\nPlease find your invoice %s for the amount of %s.\n",
			utils.NullStringToString(invoice.CustomerName), invoice.InvoiceNumber, invoice.TotalAmount)

		if err := s.mailer.Send(email, subject, body); err != nil {
			// A disabled mailer leaves the whole backlog unsent; the
			// invoices stay eligible for the next sweep.
			if errors.Is(err, service.ErrMailerDisabled) {
				s.logger.Warn("mailer disabled, invoice left unsent",
					zap.String("invoice_number", invoice.InvoiceNumber))
			} else {
				s.logger.Error("invoice email failed",
					zap.String("invoice_number", invoice.InvoiceNumber),
					zap.Error(err))
			}
			continue
		}
		if err := s.invoiceRepo.MarkEmailed(ctx, invoice.ID); err != nil {
			s.logger.Error("marking invoice emailed failed",
				zap.String("invoice_number", invoice.InvoiceNumber),
				zap.Error(err))
			continue
		}

		s.audit.Record(ctx, entities.AuditActionResend, admin.ResourceInvoices, invoice.ID, nil)
		sent++
	}
	return sent, nil
}
