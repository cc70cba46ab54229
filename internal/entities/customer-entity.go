package entities

import (
	"database/sql"
	"time"
)

// Payment arrangements a customer can be on.
const (
	PaymentTypePrepaid  = "prepaid"
	PaymentTypePostpaid = "postpaid"
	PaymentTypeCash     = "cash"
)

type Customer struct {
	ID               uint64         `db:"id"`
	Name             string         `db:"name"`
	Email            string         `db:"email"`
	Phone            sql.NullString `db:"phone"`
	PaymentType      string         `db:"payment_type"`
	IsMeterInstalled bool           `db:"is_meter_installed"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        sql.NullTime   `db:"updated_at"`
}
