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

type fakeDistributionService struct {
	updatedID      uint64
	updatedPayload dto.UpdateDistributionDTO
}

func (f *fakeDistributionService) GetDistributions(ctx context.Context, filter types.Filter) ([]dto.DistributionDTO, uint64, error) {
	return nil, 0, nil
}

func (f *fakeDistributionService) FindDistribution(ctx context.Context, id uint64) (*dto.DistributionDTO, error) {
	return &dto.DistributionDTO{ID: id}, nil
}

func (f *fakeDistributionService) CreateDistribution(ctx context.Context, payload dto.CreateDistributionDTO) (*dto.DistributionDTO, error) {
	return &dto.DistributionDTO{ID: 1}, nil
}

func (f *fakeDistributionService) UpdateDistribution(ctx context.Context, id uint64, payload dto.UpdateDistributionDTO) (*dto.DistributionDTO, error) {
	f.updatedID = id
	f.updatedPayload = payload
	return &dto.DistributionDTO{ID: id}, nil
}

func (f *fakeDistributionService) DeleteDistribution(ctx context.Context, id uint64) error {
	return nil
}

func (f *fakeDistributionService) ConfirmDistribution(ctx context.Context, id uint64) (*dto.DistributionDTO, error) {
	return &dto.DistributionDTO{ID: id}, nil
}

func TestUpdateDistributionDiscardsReadonlyFields(t *testing.T) {
	svc := &fakeDistributionService{}
	ctrl := NewDistributionController(svc, zap.NewNop())

	body := `{
		"depot_id": 2,
		"items": [{"equipment_id": 4, "quantity": 10}],
		"distribution_number": "DST-999999",
		"created_at": "2020-01-01 00:00:00"
	}`
	ctx, rec := newJSONTestContext(http.MethodPut, "/api/distribution/6", body)
	ctx.SetParamNames("id")
	ctx.SetParamValues("6")
	require.NoError(t, ctrl.UpdateDistribution(ctx))
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, uint64(6), svc.updatedID)
	require.NotNil(t, svc.updatedPayload.DepotID)
	assert.Equal(t, uint64(2), *svc.updatedPayload.DepotID)
	require.Len(t, svc.updatedPayload.Items, 1)

	raw, err := json.Marshal(svc.updatedPayload)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "distribution_number")
	assert.NotContains(t, string(raw), "created_at")
}
