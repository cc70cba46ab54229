package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"refill-system/internal/dto"
	"refill-system/pkg/types"
)

type fakeTransactionService struct {
	updatedID      uint64
	updatedPayload dto.UpdateTransactionDTO
}

func (f *fakeTransactionService) GetTransactions(ctx context.Context, filter types.Filter) ([]dto.TransactionDTO, uint64, error) {
	return nil, 0, nil
}

func (f *fakeTransactionService) FindTransaction(ctx context.Context, id uint64) (*dto.TransactionDTO, error) {
	return &dto.TransactionDTO{ID: id}, nil
}

func (f *fakeTransactionService) CreateTransaction(ctx context.Context, payload dto.CreateTransactionDTO) (*dto.TransactionDTO, error) {
	return &dto.TransactionDTO{ID: 1}, nil
}

func (f *fakeTransactionService) UpdateTransaction(ctx context.Context, id uint64, payload dto.UpdateTransactionDTO) (*dto.TransactionDTO, error) {
	f.updatedID = id
	f.updatedPayload = payload
	return &dto.TransactionDTO{ID: id}, nil
}

func (f *fakeTransactionService) DeleteTransaction(ctx context.Context, id uint64) error {
	return nil
}

func (f *fakeTransactionService) ExportTransactions(ctx context.Context, filter types.Filter) ([]byte, error) {
	return nil, nil
}

// transaction_number and created_at are generated server-side; a body
// submitting them updates nothing but the mutable columns.
func TestUpdateTransactionDiscardsReadonlyFields(t *testing.T) {
	svc := &fakeTransactionService{}
	ctrl := NewTransactionController(svc, zap.NewNop())

	body := `{
		"total_amount": "99.50",
		"transaction_number": "TXN-999999",
		"created_at": "2020-01-01 00:00:00"
	}`
	ctx, rec := newJSONTestContext(http.MethodPut, "/api/transaction/3", body)
	ctx.SetParamNames("id")
	ctx.SetParamValues("3")
	require.NoError(t, ctrl.UpdateTransaction(ctx))
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, uint64(3), svc.updatedID)
	require.NotNil(t, svc.updatedPayload.TotalAmount)
	assert.Equal(t, "99.50", *svc.updatedPayload.TotalAmount)

	raw, err := json.Marshal(svc.updatedPayload)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "transaction_number")
	assert.NotContains(t, string(raw), "created_at")
}
