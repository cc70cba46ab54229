package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"refill-system/internal/dto"
	"refill-system/internal/entities"
	apperrors "refill-system/pkg/errors"
	"refill-system/pkg/types"
	"refill-system/pkg/utils"
)

const (
	transactionTable      = "transactions"
	transactionNumberSeq  = "transaction_number_seq"
	transactionJoinFields = "t.id, t.transaction_number, t.customer_id, t.total_amount::text, t.payload, t.created_at, c.name AS customer_name"
	transactionNumberPfx  = "TXN"
)

var (
	transactionSearchColumns = []string{"t.transaction_number", "c.name"}
)

type TransactionRepositoryInterface interface {
	GetTransactions(ctx context.Context, filter types.Filter) ([]dto.TransactionDTO, uint64, error)
	FindTransaction(ctx context.Context, id uint64) (*dto.TransactionDTO, error)
	CreateTransaction(ctx context.Context, payload dto.CreateTransactionDTO) (*dto.TransactionDTO, error)
	UpdateTransaction(ctx context.Context, id uint64, payload dto.UpdateTransactionDTO) (*dto.TransactionDTO, error)
	DeleteTransaction(ctx context.Context, id uint64) error
}

type transactionRepository struct {
	storage *pgxpool.Pool
}

func NewTransactionRepository(storage *pgxpool.Pool) TransactionRepositoryInterface {
	return &transactionRepository{storage: storage}
}

func mapTransactionToDTO(e entities.Transaction) dto.TransactionDTO {
	return dto.TransactionDTO{
		ID:                e.ID,
		TransactionNumber: e.TransactionNumber,
		Customer: dto.ShortCustomerDTO{
			ID:   e.CustomerID,
			Name: utils.NullStringToString(e.CustomerName),
		},
		TotalAmount: e.TotalAmount,
		Payload:     e.Payload,
		CreatedAt:   e.CreatedAt.Local().Format(utils.TimeLayout),
	}
}

func scanTransaction(row pgx.Row) (entities.Transaction, error) {
	var e entities.Transaction
	err := row.Scan(
		&e.ID, &e.TransactionNumber, &e.CustomerID, &e.TotalAmount,
		&e.Payload, &e.CreatedAt, &e.CustomerName,
	)
	return e, err
}

func (r *transactionRepository) GetTransactions(ctx context.Context, filter types.Filter) ([]dto.TransactionDTO, uint64, error) {
	dataSQL, dataArgs, countSQL, countArgs, err := BuildListQuery(ListParams{
		Table:   transactionTable + " AS t",
		Columns: strings.Split(transactionJoinFields, ", "),
		Joins: []Join{
			{Table: "customers AS c", On: "c.id = t.customer_id"},
		},
		AllowedFilters: map[string]string{"customer": "t.customer_id"},
		AllowedSearch:  transactionSearchColumns,
		AllowedSort:    map[string]string{"created_at": "t.created_at", "total_amount": "t.total_amount"},
		DefaultOrder:   "t.created_at DESC",
	}, filter)
	if err != nil {
		return nil, 0, err
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, dataSQL, dataArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	transactions := make([]dto.TransactionDTO, 0)
	for rows.Next() {
		e, err := scanTransaction(rows)
		if err != nil {
			return nil, 0, err
		}
		transactions = append(transactions, mapTransactionToDTO(e))
	}
	return transactions, total, rows.Err()
}

func (r *transactionRepository) FindTransaction(ctx context.Context, id uint64) (*dto.TransactionDTO, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s AS t
			JOIN customers AS c ON c.id = t.customer_id
		WHERE t.id = $1`, transactionJoinFields, transactionTable)

	e, err := scanTransaction(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	out := mapTransactionToDTO(e)
	return &out, nil
}

// CreateTransaction assigns the transaction number from a dedicated
// database sequence; callers never supply it.
func (r *transactionRepository) CreateTransaction(ctx context.Context, payload dto.CreateTransactionDTO) (*dto.TransactionDTO, error) {
	var seq uint64
	if err := r.storage.QueryRow(ctx, fmt.Sprintf("SELECT nextval('%s')", transactionNumberSeq)).Scan(&seq); err != nil {
		return nil, err
	}
	number := utils.FormatSequenceNumber(transactionNumberPfx, seq)

	var id uint64
	query := fmt.Sprintf(`
		INSERT INTO %s (transaction_number, customer_id, total_amount, payload)
		VALUES ($1, $2, $3, $4)
		RETURNING id`, transactionTable)

	err := r.storage.QueryRow(ctx, query, number, payload.CustomerID, payload.TotalAmount, payload.Payload).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return nil, apperrors.ErrConflict
			case "23503":
				return nil, apperrors.ErrBadRequest
			}
		}
		return nil, err
	}
	return r.FindTransaction(ctx, id)
}

// UpdateTransaction never touches transaction_number or created_at.
func (r *transactionRepository) UpdateTransaction(ctx context.Context, id uint64, payload dto.UpdateTransactionDTO) (*dto.TransactionDTO, error) {
	var setClauses []string
	var args []interface{}
	argID := 1

	appendSet := func(col string, val interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, argID))
		args = append(args, val)
		argID++
	}

	if payload.CustomerID != nil {
		appendSet("customer_id", *payload.CustomerID)
	}
	if payload.TotalAmount != nil {
		appendSet("total_amount", *payload.TotalAmount)
	}
	if payload.Payload != nil {
		appendSet("payload", payload.Payload)
	}
	if len(setClauses) == 0 {
		return r.FindTransaction(ctx, id)
	}

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d",
		transactionTable, strings.Join(setClauses, ", "), argID)
	args = append(args, id)

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, apperrors.ErrBadRequest
		}
		return nil, err
	}
	if result.RowsAffected() == 0 {
		return nil, apperrors.ErrNotFound
	}
	return r.FindTransaction(ctx, id)
}

func (r *transactionRepository) DeleteTransaction(ctx context.Context, id uint64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", transactionTable)
	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.ErrRecordInUse
		}
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
