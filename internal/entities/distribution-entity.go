package entities

import (
	"database/sql"
	"time"
)

// Distribution records a stock run from a depot, carried out by a driver.
// Items are edited inline with the parent record.
type Distribution struct {
	ID                 uint64       `db:"id"`
	DistributionNumber string       `db:"distribution_number"`
	DepotID            uint64       `db:"depot_id"`
	UserID             uint64       `db:"user_id"`
	ConfirmedAt        sql.NullTime `db:"confirmed_at"`
	CreatedAt          time.Time    `db:"created_at"`

	DepotName sql.NullString `db:"depot_name"`
	Username  sql.NullString `db:"username"`

	Items []DistributionItem `db:"-"`
}

type DistributionItem struct {
	ID             uint64 `db:"id"`
	DistributionID uint64 `db:"distribution_id"`
	EquipmentID    uint64 `db:"equipment_id"`
	Quantity       int64  `db:"quantity"`

	EquipmentName sql.NullString `db:"equipment_name"`
}
