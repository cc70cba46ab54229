package entities

import (
	"database/sql"
	"time"
)

// CustomerSiteInventory tracks how many units of a piece of equipment sit
// at a customer site. One row per (customer, equipment) pair.
type CustomerSiteInventory struct {
	ID          uint64       `db:"id"`
	CustomerID  uint64       `db:"customer_id"`
	EquipmentID uint64       `db:"equipment_id"`
	Quantity    int64        `db:"quantity"`
	CreatedAt   time.Time    `db:"created_at"`
	UpdatedAt   sql.NullTime `db:"updated_at"`

	CustomerName  sql.NullString `db:"customer_name"`
	EquipmentName sql.NullString `db:"equipment_name"`
}
