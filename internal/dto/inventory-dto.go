package dto

type InventoryDTO struct {
	ID        uint64            `json:"id"`
	Customer  ShortCustomerDTO  `json:"customer"`
	Equipment ShortEquipmentDTO `json:"equipment"`
	Quantity  int64             `json:"quantity"`
	CreatedAt string            `json:"created_at"`
	UpdatedAt string            `json:"updated_at,omitempty"`
}

type CreateInventoryDTO struct {
	CustomerID  uint64 `json:"customer_id" validate:"required"`
	EquipmentID uint64 `json:"equipment_id" validate:"required"`
	Quantity    int64  `json:"quantity" validate:"gte=0"`
}

// UpdateInventoryDTO covers manual stock corrections when a physical count
// differs from the system.
type UpdateInventoryDTO struct {
	Quantity *int64 `json:"quantity,omitempty" validate:"omitempty,gte=0"`
}
