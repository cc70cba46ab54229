package services

import (
	"context"

	"refill-system/internal/admin"
	"refill-system/internal/dto"
	"refill-system/internal/entities"
	"refill-system/internal/repositories"
	"refill-system/pkg/types"
)

type CustomerServiceInterface interface {
	GetCustomers(ctx context.Context, filter types.Filter) ([]dto.CustomerDTO, uint64, error)
	FindCustomer(ctx context.Context, id uint64) (*dto.CustomerDTO, error)
	CreateCustomer(ctx context.Context, payload dto.CreateCustomerDTO) (*dto.CustomerDTO, error)
	UpdateCustomer(ctx context.Context, id uint64, payload dto.UpdateCustomerDTO) (*dto.CustomerDTO, error)
	DeleteCustomer(ctx context.Context, id uint64) error
}

type customerService struct {
	customerRepo repositories.CustomerRepositoryInterface
	audit        AuditServiceInterface
}

func NewCustomerService(customerRepo repositories.CustomerRepositoryInterface, audit AuditServiceInterface) CustomerServiceInterface {
	return &customerService{customerRepo: customerRepo, audit: audit}
}

func (s *customerService) GetCustomers(ctx context.Context, filter types.Filter) ([]dto.CustomerDTO, uint64, error) {
	return s.customerRepo.GetCustomers(ctx, filter)
}

func (s *customerService) FindCustomer(ctx context.Context, id uint64) (*dto.CustomerDTO, error) {
	return s.customerRepo.FindCustomer(ctx, id)
}

func (s *customerService) CreateCustomer(ctx context.Context, payload dto.CreateCustomerDTO) (*dto.CustomerDTO, error) {
	customer, err := s.customerRepo.CreateCustomer(ctx, payload)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, entities.AuditActionCreate, admin.ResourceCustomers, customer.ID, payload)
	return customer, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, id uint64, payload dto.UpdateCustomerDTO) (*dto.CustomerDTO, error) {
	customer, err := s.customerRepo.UpdateCustomer(ctx, id, payload)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, entities.AuditActionUpdate, admin.ResourceCustomers, id, payload)
	return customer, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, id uint64) error {
	if err := s.customerRepo.DeleteCustomer(ctx, id); err != nil {
		return err
	}
	s.audit.Record(ctx, entities.AuditActionDelete, admin.ResourceCustomers, id, nil)
	return nil
}
