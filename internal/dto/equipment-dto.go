package dto

type EquipmentDTO struct {
	ID            uint64 `json:"id"`
	SKU           string `json:"sku"`
	Name          string `json:"name"`
	EquipmentType string `json:"equipment_type"`
	IsActive      bool   `json:"is_active"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at,omitempty"`
}

type CreateEquipmentDTO struct {
	SKU           string `json:"sku" validate:"required"`
	Name          string `json:"name" validate:"required"`
	EquipmentType string `json:"equipment_type" validate:"required,oneof=cylinder meter regulator tank"`
	IsActive      *bool  `json:"is_active,omitempty"`
}

type UpdateEquipmentDTO struct {
	SKU           *string `json:"sku,omitempty"`
	Name          *string `json:"name,omitempty" validate:"omitempty,min=1"`
	EquipmentType *string `json:"equipment_type,omitempty" validate:"omitempty,oneof=cylinder meter regulator tank"`
	IsActive      *bool   `json:"is_active,omitempty"`
}

type ShortEquipmentDTO struct {
	ID   uint64 `json:"id"`
	SKU  string `json:"sku"`
	Name string `json:"name"`
}
