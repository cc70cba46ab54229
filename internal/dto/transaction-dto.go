package dto

import "encoding/json"

type TransactionDTO struct {
	ID                uint64           `json:"id"`
	TransactionNumber string           `json:"transaction_number"`
	Customer          ShortCustomerDTO `json:"customer"`
	TotalAmount       string           `json:"total_amount"`
	Payload           json.RawMessage  `json:"payload,omitempty"`
	CreatedAt         string           `json:"created_at"`
}

// CreateTransactionDTO deliberately has no transaction_number or
// created_at: both are system-generated and read-only.
type CreateTransactionDTO struct {
	CustomerID  uint64          `json:"customer_id" validate:"required"`
	TotalAmount string          `json:"total_amount" validate:"required"`
	Payload     json.RawMessage `json:"payload,omitempty"`
}

type UpdateTransactionDTO struct {
	CustomerID  *uint64         `json:"customer_id,omitempty"`
	TotalAmount *string         `json:"total_amount,omitempty"`
	Payload     json.RawMessage `json:"payload,omitempty"`
}
