package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"refill-system/internal/repositories"
)

const (
	rolePermissionsCacheKey = "role_permissions:%d"
	rolePermissionsCacheTTL = 10 * time.Minute
)

// AuthPermissionServiceInterface resolves the permission set of a role,
// backed by a short-lived Redis cache so the hot path of every request
// does not hit Postgres.
type AuthPermissionServiceInterface interface {
	GetPermissionsForRole(ctx context.Context, roleID uint64) (map[string]bool, error)
}

type authPermissionService struct {
	permissionRepo repositories.PermissionRepositoryInterface
	cacheRepo      repositories.CacheRepositoryInterface
	logger         *zap.Logger
}

func NewAuthPermissionService(
	permissionRepo repositories.PermissionRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	logger *zap.Logger,
) AuthPermissionServiceInterface {
	return &authPermissionService{
		permissionRepo: permissionRepo,
		cacheRepo:      cacheRepo,
		logger:         logger,
	}
}

func (s *authPermissionService) GetPermissionsForRole(ctx context.Context, roleID uint64) (map[string]bool, error) {
	key := fmt.Sprintf(rolePermissionsCacheKey, roleID)

	if cached, err := s.cacheRepo.Get(ctx, key); err == nil {
		var codes []string
		if err := json.Unmarshal([]byte(cached), &codes); err == nil {
			return toPermissionSet(codes), nil
		}
		s.logger.Warn("corrupt permission cache entry, reloading", zap.Uint64("role_id", roleID))
	}

	codes, err := s.permissionRepo.GetPermissionsForRole(ctx, roleID)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(codes); err == nil {
		if err := s.cacheRepo.Set(ctx, key, string(raw), rolePermissionsCacheTTL); err != nil {
			s.logger.Warn("permission cache write failed", zap.Uint64("role_id", roleID), zap.Error(err))
		}
	}
	return toPermissionSet(codes), nil
}

func toPermissionSet(codes []string) map[string]bool {
	set := make(map[string]bool, len(codes))
	for _, code := range codes {
		set[code] = true
	}
	return set
}
