package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"refill-system/internal/dto"
	"refill-system/pkg/types"
	"refill-system/pkg/utils"
)

type fakeInvoiceService struct {
	updatedID      uint64
	updatedPayload dto.UpdateInvoiceDTO
	generatedID    uint64
	generatedPDF   string
}

func (f *fakeInvoiceService) GetInvoices(ctx context.Context, filter types.Filter) ([]dto.InvoiceDTO, uint64, error) {
	return nil, 0, nil
}

func (f *fakeInvoiceService) FindInvoice(ctx context.Context, id uint64) (*dto.InvoiceDTO, error) {
	return &dto.InvoiceDTO{ID: id}, nil
}

func (f *fakeInvoiceService) CreateInvoice(ctx context.Context, payload dto.CreateInvoiceDTO) (*dto.InvoiceDTO, error) {
	return &dto.InvoiceDTO{ID: 1}, nil
}

func (f *fakeInvoiceService) UpdateInvoice(ctx context.Context, id uint64, payload dto.UpdateInvoiceDTO) (*dto.InvoiceDTO, error) {
	f.updatedID = id
	f.updatedPayload = payload
	return &dto.InvoiceDTO{ID: id}, nil
}

func (f *fakeInvoiceService) DeleteInvoice(ctx context.Context, id uint64) error { return nil }

func (f *fakeInvoiceService) MarkInvoiceGenerated(ctx context.Context, id uint64, payload dto.MarkInvoiceGeneratedDTO) (*dto.InvoiceDTO, error) {
	f.generatedID = id
	f.generatedPDF = payload.PDFPath
	return &dto.InvoiceDTO{ID: id}, nil
}

func (f *fakeInvoiceService) ResendInvoices(ctx context.Context, ids []uint64) (int, error) {
	return len(ids), nil
}

func (f *fakeInvoiceService) ResendPending(ctx context.Context) (int, error) { return 0, nil }

func newJSONTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = utils.NewValidator(validator.New())
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// System-owned fields submitted in an update body never reach the service:
// the update DTO has no slot for them, so binding drops the values.
func TestUpdateInvoiceDiscardsReadonlyFields(t *testing.T) {
	svc := &fakeInvoiceService{}
	ctrl := NewInvoiceController(svc, zap.NewNop())

	body := `{
		"status": "paid",
		"invoice_number": "INV-999999",
		"pdf_path": "/tmp/forged.pdf",
		"generated_at": "2020-01-01 00:00:00"
	}`
	ctx, rec := newJSONTestContext(http.MethodPut, "/api/invoice/5", body)
	ctx.SetParamNames("id")
	ctx.SetParamValues("5")
	require.NoError(t, ctrl.UpdateInvoice(ctx))
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, uint64(5), svc.updatedID)
	assert.Equal(t, "paid", svc.updatedPayload.Status.String)
	assert.True(t, svc.updatedPayload.Status.Valid)

	raw, err := json.Marshal(svc.updatedPayload)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "invoice_number")
	assert.NotContains(t, string(raw), "pdf_path")
	assert.NotContains(t, string(raw), "generated_at")
}

func TestMarkInvoiceGeneratedAction(t *testing.T) {
	svc := &fakeInvoiceService{}
	ctrl := NewInvoiceController(svc, zap.NewNop())

	ctx, rec := newJSONTestContext(http.MethodPost, "/api/invoice/9/generate", `{"pdf_path": "/invoices/INV-000009.pdf"}`)
	ctx.SetParamNames("id")
	ctx.SetParamValues("9")
	require.NoError(t, ctrl.MarkInvoiceGenerated(ctx))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint64(9), svc.generatedID)
	assert.Equal(t, "/invoices/INV-000009.pdf", svc.generatedPDF)
}

func TestMarkInvoiceGeneratedRequiresPath(t *testing.T) {
	ctrl := NewInvoiceController(&fakeInvoiceService{}, zap.NewNop())

	ctx, rec := newJSONTestContext(http.MethodPost, "/api/invoice/9/generate", `{}`)
	ctx.SetParamNames("id")
	ctx.SetParamValues("9")
	require.NoError(t, ctrl.MarkInvoiceGenerated(ctx))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
