package services

import (
	"context"

	"refill-system/internal/admin"
	"refill-system/internal/dto"
	"refill-system/internal/entities"
	"refill-system/internal/repositories"
	"refill-system/pkg/types"
)

type EquipmentServiceInterface interface {
	GetEquipment(ctx context.Context, filter types.Filter) ([]dto.EquipmentDTO, uint64, error)
	FindEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error)
	UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error)
	DeleteEquipment(ctx context.Context, id uint64) error
}

type equipmentService struct {
	equipmentRepo repositories.EquipmentRepositoryInterface
	audit         AuditServiceInterface
}

func NewEquipmentService(equipmentRepo repositories.EquipmentRepositoryInterface, audit AuditServiceInterface) EquipmentServiceInterface {
	return &equipmentService{equipmentRepo: equipmentRepo, audit: audit}
}

func (s *equipmentService) GetEquipment(ctx context.Context, filter types.Filter) ([]dto.EquipmentDTO, uint64, error) {
	return s.equipmentRepo.GetEquipment(ctx, filter)
}

func (s *equipmentService) FindEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error) {
	return s.equipmentRepo.FindEquipment(ctx, id)
}

func (s *equipmentService) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error) {
	item, err := s.equipmentRepo.CreateEquipment(ctx, payload)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, entities.AuditActionCreate, admin.ResourceEquipment, item.ID, payload)
	return item, nil
}

func (s *equipmentService) UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error) {
	item, err := s.equipmentRepo.UpdateEquipment(ctx, id, payload)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, entities.AuditActionUpdate, admin.ResourceEquipment, id, payload)
	return item, nil
}

func (s *equipmentService) DeleteEquipment(ctx context.Context, id uint64) error {
	if err := s.equipmentRepo.DeleteEquipment(ctx, id); err != nil {
		return err
	}
	s.audit.Record(ctx, entities.AuditActionDelete, admin.ResourceEquipment, id, nil)
	return nil
}
