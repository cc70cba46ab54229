package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"refill-system/internal/dto"
	apperrors "refill-system/pkg/errors"
	"refill-system/pkg/types"
)

type fakeAuditService struct {
	entries []dto.AuditLogDTO
	total   uint64
	findErr error
	filter  types.Filter
}

func (f *fakeAuditService) Record(ctx context.Context, action, entityType string, entityID uint64, payload interface{}) {
}

func (f *fakeAuditService) GetAuditLogs(ctx context.Context, filter types.Filter) ([]dto.AuditLogDTO, uint64, error) {
	f.filter = filter
	return f.entries, f.total, nil
}

func (f *fakeAuditService) FindAuditLog(ctx context.Context, id uint64) (*dto.AuditLogDTO, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for i := range f.entries {
		if f.entries[i].ID == id {
			return &f.entries[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func newAuditTestContext(method, target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestGetAuditLogs(t *testing.T) {
	svc := &fakeAuditService{
		entries: []dto.AuditLogDTO{{ID: 1, Action: "create", EntityType: "depots", EntityID: 5}},
		total:   1,
	}
	ctrl := NewAuditController(svc, zap.NewNop())

	ctx, rec := newAuditTestContext(http.MethodGet, "/api/audit?filter[action]=create&limit=10")
	require.NoError(t, ctrl.GetAuditLogs(ctx))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "create", svc.filter.Filter["action"])
	assert.Equal(t, uint64(10), svc.filter.Limit)
	assert.Contains(t, rec.Body.String(), `"total_count":1`)
	assert.Contains(t, rec.Body.String(), `"entity_type":"depots"`)
}

func TestFindAuditLog(t *testing.T) {
	svc := &fakeAuditService{entries: []dto.AuditLogDTO{{ID: 9, Action: "resend", EntityType: "invoices"}}}
	ctrl := NewAuditController(svc, zap.NewNop())

	ctx, rec := newAuditTestContext(http.MethodGet, "/api/audit/9")
	ctx.SetParamNames("id")
	ctx.SetParamValues("9")
	require.NoError(t, ctrl.FindAuditLog(ctx))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"action":"resend"`)
}

func TestFindAuditLogBadID(t *testing.T) {
	ctrl := NewAuditController(&fakeAuditService{}, zap.NewNop())

	ctx, rec := newAuditTestContext(http.MethodGet, "/api/audit/abc")
	ctx.SetParamNames("id")
	ctx.SetParamValues("abc")
	require.NoError(t, ctrl.FindAuditLog(ctx))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFindAuditLogNotFound(t *testing.T) {
	ctrl := NewAuditController(&fakeAuditService{findErr: apperrors.ErrNotFound}, zap.NewNop())

	ctx, rec := newAuditTestContext(http.MethodGet, "/api/audit/404")
	ctx.SetParamNames("id")
	ctx.SetParamValues("404")
	require.NoError(t, ctrl.FindAuditLog(ctx))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// Writes to the audit log get an explicit 403 regardless of HTTP method.
func TestRejectMutation(t *testing.T) {
	ctrl := NewAuditController(&fakeAuditService{}, zap.NewNop())

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			ctx, rec := newAuditTestContext(method, "/api/audit")
			require.NoError(t, ctrl.RejectMutation(ctx))

			assert.Equal(t, http.StatusForbidden, rec.Code)
			assert.Contains(t, rec.Body.String(), "audit log entries cannot be created, modified or deleted")
		})
	}
}
