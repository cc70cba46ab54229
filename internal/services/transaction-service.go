package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"refill-system/internal/admin"
	"refill-system/internal/dto"
	"refill-system/internal/entities"
	"refill-system/internal/repositories"
	"refill-system/pkg/types"
)

type TransactionServiceInterface interface {
	GetTransactions(ctx context.Context, filter types.Filter) ([]dto.TransactionDTO, uint64, error)
	FindTransaction(ctx context.Context, id uint64) (*dto.TransactionDTO, error)
	CreateTransaction(ctx context.Context, payload dto.CreateTransactionDTO) (*dto.TransactionDTO, error)
	UpdateTransaction(ctx context.Context, id uint64, payload dto.UpdateTransactionDTO) (*dto.TransactionDTO, error)
	DeleteTransaction(ctx context.Context, id uint64) error
	ExportTransactions(ctx context.Context, filter types.Filter) ([]byte, error)
}

type transactionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	audit           AuditServiceInterface
}

func NewTransactionService(transactionRepo repositories.TransactionRepositoryInterface, audit AuditServiceInterface) TransactionServiceInterface {
	return &transactionService{transactionRepo: transactionRepo, audit: audit}
}

func (s *transactionService) GetTransactions(ctx context.Context, filter types.Filter) ([]dto.TransactionDTO, uint64, error) {
	return s.transactionRepo.GetTransactions(ctx, filter)
}

func (s *transactionService) FindTransaction(ctx context.Context, id uint64) (*dto.TransactionDTO, error) {
	return s.transactionRepo.FindTransaction(ctx, id)
}

func (s *transactionService) CreateTransaction(ctx context.Context, payload dto.CreateTransactionDTO) (*dto.TransactionDTO, error) {
	transaction, err := s.transactionRepo.CreateTransaction(ctx, payload)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, entities.AuditActionCreate, admin.ResourceTransactions, transaction.ID, payload)
	return transaction, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, id uint64, payload dto.UpdateTransactionDTO) (*dto.TransactionDTO, error) {
	transaction, err := s.transactionRepo.UpdateTransaction(ctx, id, payload)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, entities.AuditActionUpdate, admin.ResourceTransactions, id, payload)
	return transaction, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, id uint64) error {
	if err := s.transactionRepo.DeleteTransaction(ctx, id); err != nil {
		return err
	}
	s.audit.Record(ctx, entities.AuditActionDelete, admin.ResourceTransactions, id, nil)
	return nil
}

var transactionExportHeader = []string{"Transaction Number", "Customer", "Total Amount", "Created At"}

// ExportTransactions renders the filtered transaction list as an XLSX
// workbook. The column set mirrors the admin list view.
func (s *transactionService) ExportTransactions(ctx context.Context, filter types.Filter) ([]byte, error) {
	transactions, _, err := s.transactionRepo.GetTransactions(ctx, filter)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Transactions"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	for col, title := range transactionExportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, err
		}
	}

	for i, t := range transactions {
		row := i + 2
		values := []interface{}{t.TransactionNumber, t.Customer.Name, t.TotalAmount, t.CreatedAt}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}
