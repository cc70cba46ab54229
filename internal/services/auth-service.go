package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"refill-system/internal/dto"
	"refill-system/internal/repositories"
	apperrors "refill-system/pkg/errors"
	"refill-system/pkg/service"
	"refill-system/pkg/utils"
)

const sessionCacheKey = "session:%s"

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.TokenPairDTO, error)
	Refresh(ctx context.Context, payload dto.RefreshDTO) (*dto.TokenPairDTO, error)
	Logout(ctx context.Context, sessionID string) error
}

type authService struct {
	userRepo   repositories.UserRepositoryInterface
	cacheRepo  repositories.CacheRepositoryInterface
	jwtService service.JWTService
	logger     *zap.Logger
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	jwtService service.JWTService,
	logger *zap.Logger,
) AuthServiceInterface {
	return &authService{
		userRepo:   userRepo,
		cacheRepo:  cacheRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login accepts a username or email. Unknown accounts and bad passwords
// produce the same error so the response does not leak which one it was.
func (s *authService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.TokenPairDTO, error) {
	user, err := s.userRepo.FindUserByLogin(ctx, payload.Login)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(user.Password, payload.Password); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user.ID, user.RoleID)
}

// Refresh rotates the whole pair: the presented refresh token must match
// the one stored for an open session, and the session is re-keyed on
// every use.
func (s *authService) Refresh(ctx context.Context, payload dto.RefreshDTO) (*dto.TokenPairDTO, error) {
	claims, err := s.jwtService.ValidateToken(payload.RefreshToken)
	if err != nil {
		return nil, err
	}
	if !claims.IsRefreshToken {
		return nil, apperrors.ErrTokenIsNotRefresh
	}

	sessionID := claims.ID
	if sessionID == "" {
		return nil, apperrors.ErrInvalidToken
	}

	stored, err := s.cacheRepo.Get(ctx, fmt.Sprintf(sessionCacheKey, sessionID))
	if err != nil || stored != payload.RefreshToken {
		return nil, apperrors.ErrInvalidToken
	}
	if err := s.cacheRepo.Del(ctx, fmt.Sprintf(sessionCacheKey, sessionID)); err != nil {
		s.logger.Warn("stale session cleanup failed", zap.String("session_id", sessionID), zap.Error(err))
	}

	return s.issueTokens(ctx, claims.UserID, claims.RoleID)
}

func (s *authService) Logout(ctx context.Context, sessionID string) error {
	return s.cacheRepo.Del(ctx, fmt.Sprintf(sessionCacheKey, sessionID))
}

func (s *authService) issueTokens(ctx context.Context, userID, roleID uint64) (*dto.TokenPairDTO, error) {
	sessionID := uuid.NewString()

	accessToken, refreshToken, err := s.jwtService.GenerateTokens(userID, roleID, sessionID)
	if err != nil {
		return nil, err
	}

	if err := s.cacheRepo.Set(ctx, fmt.Sprintf(sessionCacheKey, sessionID), refreshToken, s.jwtService.GetRefreshTokenTTL()); err != nil {
		return nil, err
	}

	return &dto.TokenPairDTO{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		SessionID:    sessionID,
	}, nil
}
