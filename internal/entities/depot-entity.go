package entities

import (
	"database/sql"
	"time"
)

type Depot struct {
	ID        uint64       `db:"id"`
	Code      string       `db:"code"`
	Name      string       `db:"name"`
	CreatedAt time.Time    `db:"created_at"`
	UpdatedAt sql.NullTime `db:"updated_at"`
}
