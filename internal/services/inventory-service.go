package services

import (
	"context"

	"refill-system/internal/admin"
	"refill-system/internal/dto"
	"refill-system/internal/entities"
	"refill-system/internal/repositories"
	"refill-system/pkg/types"
)

type InventoryServiceInterface interface {
	GetInventory(ctx context.Context, filter types.Filter) ([]dto.InventoryDTO, uint64, error)
	FindInventory(ctx context.Context, id uint64) (*dto.InventoryDTO, error)
	CreateInventory(ctx context.Context, payload dto.CreateInventoryDTO) (*dto.InventoryDTO, error)
	UpdateInventory(ctx context.Context, id uint64, payload dto.UpdateInventoryDTO) (*dto.InventoryDTO, error)
	DeleteInventory(ctx context.Context, id uint64) error
}

type inventoryService struct {
	inventoryRepo repositories.InventoryRepositoryInterface
	audit         AuditServiceInterface
}

func NewInventoryService(inventoryRepo repositories.InventoryRepositoryInterface, audit AuditServiceInterface) InventoryServiceInterface {
	return &inventoryService{inventoryRepo: inventoryRepo, audit: audit}
}

func (s *inventoryService) GetInventory(ctx context.Context, filter types.Filter) ([]dto.InventoryDTO, uint64, error) {
	return s.inventoryRepo.GetInventory(ctx, filter)
}

func (s *inventoryService) FindInventory(ctx context.Context, id uint64) (*dto.InventoryDTO, error) {
	return s.inventoryRepo.FindInventory(ctx, id)
}

func (s *inventoryService) CreateInventory(ctx context.Context, payload dto.CreateInventoryDTO) (*dto.InventoryDTO, error) {
	record, err := s.inventoryRepo.CreateInventory(ctx, payload)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, entities.AuditActionCreate, admin.ResourceInventory, record.ID, payload)
	return record, nil
}

func (s *inventoryService) UpdateInventory(ctx context.Context, id uint64, payload dto.UpdateInventoryDTO) (*dto.InventoryDTO, error) {
	record, err := s.inventoryRepo.UpdateInventory(ctx, id, payload)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, entities.AuditActionUpdate, admin.ResourceInventory, id, payload)
	return record, nil
}

func (s *inventoryService) DeleteInventory(ctx context.Context, id uint64) error {
	if err := s.inventoryRepo.DeleteInventory(ctx, id); err != nil {
		return err
	}
	s.audit.Record(ctx, entities.AuditActionDelete, admin.ResourceInventory, id, nil)
	return nil
}
