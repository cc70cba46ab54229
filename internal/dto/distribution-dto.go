package dto

type DistributionItemDTO struct {
	ID        uint64            `json:"id"`
	Equipment ShortEquipmentDTO `json:"equipment"`
	Quantity  int64             `json:"quantity"`
}

type DistributionDTO struct {
	ID                 uint64                `json:"id"`
	DistributionNumber string                `json:"distribution_number"`
	Depot              ShortDepotDTO         `json:"depot"`
	User               ShortUserDTO          `json:"user"`
	ConfirmedAt        string                `json:"confirmed_at,omitempty"`
	CreatedAt          string                `json:"created_at"`
	Items              []DistributionItemDTO `json:"items"`
}

type CreateDistributionItemDTO struct {
	EquipmentID uint64 `json:"equipment_id" validate:"required"`
	Quantity    int64  `json:"quantity" validate:"required,gt=0"`
}

// CreateDistributionDTO edits the items inline with the parent record; the
// whole set is written in one transaction.
type CreateDistributionDTO struct {
	DepotID uint64                      `json:"depot_id" validate:"required"`
	UserID  uint64                      `json:"user_id" validate:"required"`
	Items   []CreateDistributionItemDTO `json:"items" validate:"required,min=1,dive"`
}

// UpdateDistributionDTO replaces the inline item set when present.
// distribution_number and created_at are read-only and absent here.
type UpdateDistributionDTO struct {
	DepotID *uint64                     `json:"depot_id,omitempty"`
	UserID  *uint64                     `json:"user_id,omitempty"`
	Items   []CreateDistributionItemDTO `json:"items,omitempty" validate:"omitempty,min=1,dive"`
}
