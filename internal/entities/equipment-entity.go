package entities

import (
	"database/sql"
	"time"
)

// Equipment types stocked at customer sites.
const (
	EquipmentTypeCylinder  = "cylinder"
	EquipmentTypeMeter     = "meter"
	EquipmentTypeRegulator = "regulator"
	EquipmentTypeTank      = "tank"
)

type Equipment struct {
	ID            uint64       `db:"id"`
	SKU           string       `db:"sku"`
	Name          string       `db:"name"`
	EquipmentType string       `db:"equipment_type"`
	IsActive      bool         `db:"is_active"`
	CreatedAt     time.Time    `db:"created_at"`
	UpdatedAt     sql.NullTime `db:"updated_at"`
}
