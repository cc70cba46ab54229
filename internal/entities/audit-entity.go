package entities

import (
	"database/sql"
	"encoding/json"
	"time"
)

// Audit actions.
const (
	AuditActionCreate  = "create"
	AuditActionUpdate  = "update"
	AuditActionDelete  = "delete"
	AuditActionConfirm = "confirm"
	AuditActionResend  = "resend"
)

// AuditLog is append-only: rows are inserted by the service layer after
// every successful mutation and never touched again.
type AuditLog struct {
	ID         uint64          `db:"id"`
	UserID     sql.NullInt64   `db:"user_id"`
	Action     string          `db:"action"`
	EntityType string          `db:"entity_type"`
	EntityID   uint64          `db:"entity_id"`
	Payload    json.RawMessage `db:"payload"`
	CreatedAt  time.Time       `db:"created_at"`

	Username sql.NullString `db:"username"`
}
