package dto

type DepotDTO struct {
	ID        uint64 `json:"id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

type CreateDepotDTO struct {
	Code string `json:"code" validate:"required,uppercase,min=2,max=10"`
	Name string `json:"name" validate:"required"`
}

type UpdateDepotDTO struct {
	Code *string `json:"code,omitempty" validate:"omitempty,uppercase,min=2,max=10"`
	Name *string `json:"name,omitempty" validate:"omitempty,min=1"`
}

type ShortDepotDTO struct {
	ID   uint64 `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}
