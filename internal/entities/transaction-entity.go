package entities

import (
	"database/sql"
	"encoding/json"
	"time"
)

type Transaction struct {
	ID                uint64          `db:"id"`
	TransactionNumber string          `db:"transaction_number"`
	CustomerID        uint64          `db:"customer_id"`
	TotalAmount       string          `db:"total_amount"`
	Payload           json.RawMessage `db:"payload"`
	CreatedAt         time.Time       `db:"created_at"`

	CustomerName sql.NullString `db:"customer_name"`
}
