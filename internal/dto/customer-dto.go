package dto

import "github.com/aarondl/null/v8"

type CustomerDTO struct {
	ID               uint64 `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone,omitempty"`
	PaymentType      string `json:"payment_type"`
	IsMeterInstalled bool   `json:"is_meter_installed"`
	CreatedAt        string `json:"created_at"`
	UpdatedAt        string `json:"updated_at,omitempty"`
}

type CreateCustomerDTO struct {
	Name             string      `json:"name" validate:"required"`
	Email            string      `json:"email" validate:"required,email"`
	Phone            null.String `json:"phone,omitempty"`
	PaymentType      string      `json:"payment_type" validate:"required,oneof=prepaid postpaid cash"`
	IsMeterInstalled bool        `json:"is_meter_installed"`
}

// UpdateCustomerDTO uses null types so a client can distinguish "leave the
// phone alone" from "clear the phone".
type UpdateCustomerDTO struct {
	Name             null.String `json:"name,omitempty"`
	Email            null.String `json:"email,omitempty" validate:"omitempty"`
	Phone            null.String `json:"phone,omitempty"`
	PaymentType      null.String `json:"payment_type,omitempty"`
	IsMeterInstalled null.Bool   `json:"is_meter_installed,omitempty"`
}

type ShortCustomerDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
