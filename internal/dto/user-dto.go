package dto

// UserDTO is what the admin list and detail views render for an account.
type UserDTO struct {
	ID         uint64  `json:"id"`
	Username   string  `json:"username"`
	Email      string  `json:"email"`
	EmployeeID string  `json:"employee_id"`
	Role       string  `json:"role"`
	RoleID     uint64  `json:"role_id"`
	Depot      *string `json:"depot"`
	DepotID    *int64  `json:"depot_id"`
	IsStaff    bool    `json:"is_staff"`
	IsActive   bool    `json:"is_active"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at,omitempty"`
}

type CreateUserDTO struct {
	Username   string  `json:"username" validate:"required,min=3"`
	Email      string  `json:"email" validate:"required,email"`
	Password   string  `json:"password" validate:"required,min=8"`
	EmployeeID string  `json:"employee_id" validate:"required"`
	RoleID     uint64  `json:"role_id" validate:"required"`
	DepotID    *uint64 `json:"depot_id,omitempty"`
	IsStaff    bool    `json:"is_staff"`
}

type UpdateUserDTO struct {
	Username   *string `json:"username,omitempty" validate:"omitempty,min=3"`
	Email      *string `json:"email,omitempty" validate:"omitempty,email"`
	Password   *string `json:"password,omitempty" validate:"omitempty,min=8"`
	EmployeeID *string `json:"employee_id,omitempty"`
	RoleID     *uint64 `json:"role_id,omitempty"`
	DepotID    *uint64 `json:"depot_id,omitempty"`
	IsStaff    *bool   `json:"is_staff,omitempty"`
	IsActive   *bool   `json:"is_active,omitempty"`
}

type ShortUserDTO struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
}
