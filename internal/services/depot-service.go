package services

import (
	"context"

	"refill-system/internal/admin"
	"refill-system/internal/dto"
	"refill-system/internal/entities"
	"refill-system/internal/repositories"
	"refill-system/pkg/types"
)

type DepotServiceInterface interface {
	GetDepots(ctx context.Context, filter types.Filter) ([]dto.DepotDTO, uint64, error)
	FindDepot(ctx context.Context, id uint64) (*dto.DepotDTO, error)
	CreateDepot(ctx context.Context, payload dto.CreateDepotDTO) (*dto.DepotDTO, error)
	UpdateDepot(ctx context.Context, id uint64, payload dto.UpdateDepotDTO) (*dto.DepotDTO, error)
	DeleteDepot(ctx context.Context, id uint64) error
}

type depotService struct {
	depotRepo repositories.DepotRepositoryInterface
	audit     AuditServiceInterface
}

func NewDepotService(depotRepo repositories.DepotRepositoryInterface, audit AuditServiceInterface) DepotServiceInterface {
	return &depotService{depotRepo: depotRepo, audit: audit}
}

func (s *depotService) GetDepots(ctx context.Context, filter types.Filter) ([]dto.DepotDTO, uint64, error) {
	return s.depotRepo.GetDepots(ctx, filter)
}

func (s *depotService) FindDepot(ctx context.Context, id uint64) (*dto.DepotDTO, error) {
	return s.depotRepo.FindDepot(ctx, id)
}

func (s *depotService) CreateDepot(ctx context.Context, payload dto.CreateDepotDTO) (*dto.DepotDTO, error) {
	depot, err := s.depotRepo.CreateDepot(ctx, payload)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, entities.AuditActionCreate, admin.ResourceDepots, depot.ID, payload)
	return depot, nil
}

func (s *depotService) UpdateDepot(ctx context.Context, id uint64, payload dto.UpdateDepotDTO) (*dto.DepotDTO, error) {
	depot, err := s.depotRepo.UpdateDepot(ctx, id, payload)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, entities.AuditActionUpdate, admin.ResourceDepots, id, payload)
	return depot, nil
}

func (s *depotService) DeleteDepot(ctx context.Context, id uint64) error {
	if err := s.depotRepo.DeleteDepot(ctx, id); err != nil {
		return err
	}
	s.audit.Record(ctx, entities.AuditActionDelete, admin.ResourceDepots, id, nil)
	return nil
}
