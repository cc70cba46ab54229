package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"refill-system/internal/dto"
	"refill-system/internal/entities"
	"refill-system/pkg/service"
	"refill-system/pkg/types"
)

type fakeInvoiceRepo struct {
	unsent       []entities.Invoice
	listErr      error
	emailedIDs   []uint64
	markErr      map[uint64]error
	listedIDs    []uint64
	listedCalls  int
	generatedID  uint64
	generatedPDF string
}

func (f *fakeInvoiceRepo) GetInvoices(ctx context.Context, filter types.Filter) ([]dto.InvoiceDTO, uint64, error) {
	return nil, 0, nil
}

func (f *fakeInvoiceRepo) FindInvoice(ctx context.Context, id uint64) (*dto.InvoiceDTO, error) {
	return &dto.InvoiceDTO{ID: id}, nil
}

func (f *fakeInvoiceRepo) CreateInvoice(ctx context.Context, payload dto.CreateInvoiceDTO) (*dto.InvoiceDTO, error) {
	return &dto.InvoiceDTO{ID: 1}, nil
}

func (f *fakeInvoiceRepo) UpdateInvoice(ctx context.Context, id uint64, payload dto.UpdateInvoiceDTO) (*dto.InvoiceDTO, error) {
	return &dto.InvoiceDTO{ID: id}, nil
}

func (f *fakeInvoiceRepo) DeleteInvoice(ctx context.Context, id uint64) error { return nil }

func (f *fakeInvoiceRepo) ListUnsent(ctx context.Context, ids []uint64) ([]entities.Invoice, error) {
	f.listedCalls++
	f.listedIDs = ids
	return f.unsent, f.listErr
}

func (f *fakeInvoiceRepo) MarkGenerated(ctx context.Context, id uint64, pdfPath string) error {
	f.generatedID = id
	f.generatedPDF = pdfPath
	return nil
}

func (f *fakeInvoiceRepo) MarkEmailed(ctx context.Context, id uint64) error {
	if err, ok := f.markErr[id]; ok {
		return err
	}
	f.emailedIDs = append(f.emailedIDs, id)
	return nil
}

type fakeMailer struct {
	sent    []string
	failFor map[string]error
}

func (f *fakeMailer) Send(to, subject, body string) error {
	if err, ok := f.failFor[to]; ok {
		return err
	}
	f.sent = append(f.sent, to)
	return nil
}

type recordingAudit struct {
	actions []string
	ids     []uint64
}

func (r *recordingAudit) Record(ctx context.Context, action, entityType string, entityID uint64, payload interface{}) {
	r.actions = append(r.actions, action)
	r.ids = append(r.ids, entityID)
}

func (r *recordingAudit) GetAuditLogs(ctx context.Context, filter types.Filter) ([]dto.AuditLogDTO, uint64, error) {
	return nil, 0, nil
}

func (r *recordingAudit) FindAuditLog(ctx context.Context, id uint64) (*dto.AuditLogDTO, error) {
	return nil, nil
}

func unsentInvoice(id uint64, number, email string) entities.Invoice {
	inv := entities.Invoice{
		ID:            id,
		InvoiceNumber: number,
		TotalAmount:   "150.00",
		Status:        entities.InvoiceStatusGenerated,
		CustomerName:  sql.NullString{String: "Acme", Valid: true},
	}
	if email != "" {
		inv.CustomerEmail = sql.NullString{String: email, Valid: true}
	}
	return inv
}

func TestResendInvoicesMarksAndAudits(t *testing.T) {
	repo := &fakeInvoiceRepo{unsent: []entities.Invoice{
		unsentInvoice(1, "INV-000001", "a@example.com"),
		unsentInvoice(2, "INV-000002", "b@example.com"),
	}}
	mailer := &fakeMailer{}
	audit := &recordingAudit{}
	svc := NewInvoiceService(repo, mailer, audit, zap.NewNop())

	sent, err := svc.ResendInvoices(context.Background(), []uint64{1, 2})
	require.NoError(t, err)

	assert.Equal(t, 2, sent)
	assert.Equal(t, []uint64{1, 2}, repo.listedIDs)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, mailer.sent)
	assert.Equal(t, []uint64{1, 2}, repo.emailedIDs)
	assert.Equal(t, []string{entities.AuditActionResend, entities.AuditActionResend}, audit.actions)
}

func TestResendSkipsCustomersWithoutEmail(t *testing.T) {
	repo := &fakeInvoiceRepo{unsent: []entities.Invoice{
		unsentInvoice(1, "INV-000001", ""),
		unsentInvoice(2, "INV-000002", "b@example.com"),
	}}
	mailer := &fakeMailer{}
	svc := NewInvoiceService(repo, mailer, &recordingAudit{}, zap.NewNop())

	sent, err := svc.ResendInvoices(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, 1, sent)
	assert.Equal(t, []string{"b@example.com"}, mailer.sent)
	assert.Equal(t, []uint64{2}, repo.emailedIDs)
}

func TestResendContinuesPastMailerFailure(t *testing.T) {
	repo := &fakeInvoiceRepo{unsent: []entities.Invoice{
		unsentInvoice(1, "INV-000001", "broken@example.com"),
		unsentInvoice(2, "INV-000002", "ok@example.com"),
	}}
	mailer := &fakeMailer{failFor: map[string]error{"broken@example.com": errors.New("smtp refused")}}
	audit := &recordingAudit{}
	svc := NewInvoiceService(repo, mailer, audit, zap.NewNop())

	sent, err := svc.ResendInvoices(context.Background(), nil)
	require.NoError(t, err)

	// The failed invoice stays unsent so the next sweep retries it.
	assert.Equal(t, 1, sent)
	assert.Equal(t, []uint64{2}, repo.emailedIDs)
	assert.Equal(t, []uint64{2}, audit.ids)
}

func TestResendDoesNotAuditWhenMarkFails(t *testing.T) {
	repo := &fakeInvoiceRepo{
		unsent:  []entities.Invoice{unsentInvoice(1, "INV-000001", "a@example.com")},
		markErr: map[uint64]error{1: errors.New("db down")},
	}
	audit := &recordingAudit{}
	svc := NewInvoiceService(repo, &fakeMailer{}, audit, zap.NewNop())

	sent, err := svc.ResendInvoices(context.Background(), nil)
	require.NoError(t, err)

	assert.Zero(t, sent)
	assert.Empty(t, audit.actions)
}

func TestResendPendingSweepsWithoutIDFilter(t *testing.T) {
	repo := &fakeInvoiceRepo{}
	svc := NewInvoiceService(repo, &fakeMailer{}, &recordingAudit{}, zap.NewNop())

	_, err := svc.ResendPending(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, repo.listedCalls)
	assert.Nil(t, repo.listedIDs)
}

func TestMarkInvoiceGeneratedRecordsPathAndAudits(t *testing.T) {
	repo := &fakeInvoiceRepo{}
	audit := &recordingAudit{}
	svc := NewInvoiceService(repo, &fakeMailer{}, audit, zap.NewNop())

	invoice, err := svc.MarkInvoiceGenerated(context.Background(), 7, dto.MarkInvoiceGeneratedDTO{PDFPath: "/invoices/INV-000007.pdf"})
	require.NoError(t, err)

	assert.Equal(t, uint64(7), invoice.ID)
	assert.Equal(t, uint64(7), repo.generatedID)
	assert.Equal(t, "/invoices/INV-000007.pdf", repo.generatedPDF)
	assert.Equal(t, []string{entities.AuditActionUpdate}, audit.actions)
}

func TestResendWithDisabledMailerMarksNothing(t *testing.T) {
	repo := &fakeInvoiceRepo{unsent: []entities.Invoice{
		unsentInvoice(1, "INV-000001", "a@example.com"),
		unsentInvoice(2, "INV-000002", "b@example.com"),
	}}
	disabled := service.NewSMTPMailer("", "", "noreply@refill.local", zap.NewNop())
	audit := &recordingAudit{}
	svc := NewInvoiceService(repo, disabled, audit, zap.NewNop())

	sent, err := svc.ResendInvoices(context.Background(), nil)
	require.NoError(t, err)

	assert.Zero(t, sent)
	assert.Empty(t, repo.emailedIDs)
	assert.Empty(t, audit.actions)
}

func TestResendPropagatesListFailure(t *testing.T) {
	repo := &fakeInvoiceRepo{listErr: errors.New("db down")}
	svc := NewInvoiceService(repo, &fakeMailer{}, &recordingAudit{}, zap.NewNop())

	_, err := svc.ResendInvoices(context.Background(), nil)
	assert.Error(t, err)
}
