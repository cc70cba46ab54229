package entities

import (
	"database/sql"
	"time"
)

type User struct {
	ID         uint64 `db:"id"`
	Username   string `db:"username"`
	Email      string `db:"email"`
	Password   string `db:"password"`
	EmployeeID string `db:"employee_id"`

	RoleID  uint64        `db:"role_id"`
	DepotID sql.NullInt64 `db:"depot_id"`

	IsStaff  bool `db:"is_staff"`
	IsActive bool `db:"is_active"`

	CreatedAt time.Time    `db:"created_at"`
	UpdatedAt sql.NullTime `db:"updated_at"`
}

type Role struct {
	ID   uint64 `db:"id"`
	Name string `db:"name"`
}

type Permission struct {
	ID   uint64 `db:"id"`
	Code string `db:"code"`
}
