package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"refill-system/internal/dto"
	"refill-system/internal/entities"
	"refill-system/pkg/contextkeys"
	"refill-system/pkg/types"
)

type fakeAuditRepo struct {
	inserted  []entities.AuditLog
	insertErr error
}

func (f *fakeAuditRepo) GetAuditLogs(ctx context.Context, filter types.Filter) ([]dto.AuditLogDTO, uint64, error) {
	return nil, 0, nil
}

func (f *fakeAuditRepo) FindAuditLog(ctx context.Context, id uint64) (*dto.AuditLogDTO, error) {
	return nil, nil
}

func (f *fakeAuditRepo) InsertAuditLog(ctx context.Context, entry entities.AuditLog) error {
	f.inserted = append(f.inserted, entry)
	return f.insertErr
}

func ctxWithClaims(userID uint64) context.Context {
	return context.WithValue(context.Background(), contextkeys.ClaimsKey, &dto.UserClaims{UserID: userID, RoleID: 1})
}

func TestRecordWritesEntryWithActor(t *testing.T) {
	repo := &fakeAuditRepo{}
	svc := NewAuditService(repo, zap.NewNop())

	svc.Record(ctxWithClaims(42), entities.AuditActionUpdate, "customers", 7, map[string]string{"name": "Acme"})

	require.Len(t, repo.inserted, 1)
	entry := repo.inserted[0]
	assert.Equal(t, entities.AuditActionUpdate, entry.Action)
	assert.Equal(t, "customers", entry.EntityType)
	assert.Equal(t, uint64(7), entry.EntityID)
	require.True(t, entry.UserID.Valid)
	assert.Equal(t, int64(42), entry.UserID.Int64)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(entry.Payload, &payload))
	assert.Equal(t, "Acme", payload["name"])
}

func TestRecordWithoutClaimsLeavesUserNull(t *testing.T) {
	repo := &fakeAuditRepo{}
	svc := NewAuditService(repo, zap.NewNop())

	svc.Record(context.Background(), entities.AuditActionDelete, "depots", 3, nil)

	require.Len(t, repo.inserted, 1)
	assert.False(t, repo.inserted[0].UserID.Valid)
	assert.Nil(t, repo.inserted[0].Payload)
}

func TestRecordSwallowsRepositoryFailure(t *testing.T) {
	repo := &fakeAuditRepo{insertErr: errors.New("db down")}
	svc := NewAuditService(repo, zap.NewNop())

	// Record has no error return by design of the call sites; it must not
	// panic when the insert fails.
	assert.NotPanics(t, func() {
		svc.Record(ctxWithClaims(1), entities.AuditActionCreate, "users", 1, nil)
	})
}
