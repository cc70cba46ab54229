package services

import (
	"context"

	"refill-system/internal/admin"
	"refill-system/internal/dto"
	"refill-system/internal/entities"
	"refill-system/internal/repositories"
	"refill-system/pkg/types"
)

type DistributionServiceInterface interface {
	GetDistributions(ctx context.Context, filter types.Filter) ([]dto.DistributionDTO, uint64, error)
	FindDistribution(ctx context.Context, id uint64) (*dto.DistributionDTO, error)
	CreateDistribution(ctx context.Context, payload dto.CreateDistributionDTO) (*dto.DistributionDTO, error)
	UpdateDistribution(ctx context.Context, id uint64, payload dto.UpdateDistributionDTO) (*dto.DistributionDTO, error)
	DeleteDistribution(ctx context.Context, id uint64) error
	ConfirmDistribution(ctx context.Context, id uint64) (*dto.DistributionDTO, error)
}

type distributionService struct {
	distributionRepo repositories.DistributionRepositoryInterface
	audit            AuditServiceInterface
}

func NewDistributionService(distributionRepo repositories.DistributionRepositoryInterface, audit AuditServiceInterface) DistributionServiceInterface {
	return &distributionService{distributionRepo: distributionRepo, audit: audit}
}

func (s *distributionService) GetDistributions(ctx context.Context, filter types.Filter) ([]dto.DistributionDTO, uint64, error) {
	return s.distributionRepo.GetDistributions(ctx, filter)
}

func (s *distributionService) FindDistribution(ctx context.Context, id uint64) (*dto.DistributionDTO, error) {
	return s.distributionRepo.FindDistribution(ctx, id)
}

func (s *distributionService) CreateDistribution(ctx context.Context, payload dto.CreateDistributionDTO) (*dto.DistributionDTO, error) {
	distribution, err := s.distributionRepo.CreateDistribution(ctx, payload)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, entities.AuditActionCreate, admin.ResourceDistributions, distribution.ID, payload)
	return distribution, nil
}

func (s *distributionService) UpdateDistribution(ctx context.Context, id uint64, payload dto.UpdateDistributionDTO) (*dto.DistributionDTO, error) {
	distribution, err := s.distributionRepo.UpdateDistribution(ctx, id, payload)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, entities.AuditActionUpdate, admin.ResourceDistributions, id, payload)
	return distribution, nil
}

func (s *distributionService) DeleteDistribution(ctx context.Context, id uint64) error {
	if err := s.distributionRepo.DeleteDistribution(ctx, id); err != nil {
		return err
	}
	s.audit.Record(ctx, entities.AuditActionDelete, admin.ResourceDistributions, id, nil)
	return nil
}

func (s *distributionService) ConfirmDistribution(ctx context.Context, id uint64) (*dto.DistributionDTO, error) {
	distribution, err := s.distributionRepo.ConfirmDistribution(ctx, id)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, entities.AuditActionConfirm, admin.ResourceDistributions, id, nil)
	return distribution, nil
}
