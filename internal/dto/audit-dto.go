package dto

import "encoding/json"

// AuditLogDTO is browse-only: no create or update DTOs exist for the audit
// log on purpose.
type AuditLogDTO struct {
	ID         uint64          `json:"id"`
	User       *ShortUserDTO   `json:"user,omitempty"`
	Action     string          `json:"action"`
	EntityType string          `json:"entity_type"`
	EntityID   uint64          `json:"entity_id"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	CreatedAt  string          `json:"created_at"`
}
