package services

import (
	"context"

	"refill-system/internal/admin"
	"refill-system/internal/dto"
	"refill-system/internal/entities"
	"refill-system/internal/repositories"
	"refill-system/pkg/types"
	"refill-system/pkg/utils"
)

type UserServiceInterface interface {
	GetUsers(ctx context.Context, filter types.Filter) ([]dto.UserDTO, uint64, error)
	FindUser(ctx context.Context, id uint64) (*dto.UserDTO, error)
	CreateUser(ctx context.Context, payload dto.CreateUserDTO) (*dto.UserDTO, error)
	UpdateUser(ctx context.Context, id uint64, payload dto.UpdateUserDTO) (*dto.UserDTO, error)
	DeleteUser(ctx context.Context, id uint64) error
}

type userService struct {
	userRepo repositories.UserRepositoryInterface
	audit    AuditServiceInterface
}

func NewUserService(userRepo repositories.UserRepositoryInterface, audit AuditServiceInterface) UserServiceInterface {
	return &userService{userRepo: userRepo, audit: audit}
}

func (s *userService) GetUsers(ctx context.Context, filter types.Filter) ([]dto.UserDTO, uint64, error) {
	return s.userRepo.GetUsers(ctx, filter)
}

func (s *userService) FindUser(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	return s.userRepo.FindUser(ctx, id)
}

func (s *userService) CreateUser(ctx context.Context, payload dto.CreateUserDTO) (*dto.UserDTO, error) {
	hashed, err := utils.HashPassword(payload.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.CreateUser(ctx, payload, hashed)
	if err != nil {
		return nil, err
	}

	// Audit payloads never carry credentials.
	payload.Password = ""
	s.audit.Record(ctx, entities.AuditActionCreate, admin.ResourceUsers, user.ID, payload)
	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, id uint64, payload dto.UpdateUserDTO) (*dto.UserDTO, error) {
	var hashed *string
	if payload.Password != nil {
		h, err := utils.HashPassword(*payload.Password)
		if err != nil {
			return nil, err
		}
		hashed = &h
	}

	user, err := s.userRepo.UpdateUser(ctx, id, payload, hashed)
	if err != nil {
		return nil, err
	}

	payload.Password = nil
	s.audit.Record(ctx, entities.AuditActionUpdate, admin.ResourceUsers, id, payload)
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id uint64) error {
	if err := s.userRepo.DeleteUser(ctx, id); err != nil {
		return err
	}
	s.audit.Record(ctx, entities.AuditActionDelete, admin.ResourceUsers, id, nil)
	return nil
}
