package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type createClientRequest struct {
	FirstName   string  `json:"first_name"   validate:"required,max=100"`
	LastName    string  `json:"last_name"    validate:"required,max=100"`
	Email       string  `json:"email"        validate:"required,email,max=150"`
	PhoneNumber string  `json:"phone_number" validate:"required,phone,max=20"`
	Address     string  `json:"address"      validate:"max=200"`
	AccountType string  `json:"account_type" validate:"required,max=50"`
	Balance     float64 `json:"balance"      validate:"gte=0"`
}

// updateClientRequest models a partial update. Pointer fields distinguish
// "omitted" (nil, keep the stored value) from "explicitly set" — including an
// explicit empty string, which replaces the stored value.
type updateClientRequest struct {
	FirstName   *string  `json:"first_name"   validate:"omitempty,max=100"`
	LastName    *string  `json:"last_name"    validate:"omitempty,max=100"`
	Email       *string  `json:"email"        validate:"omitempty,email,max=150"`
	PhoneNumber *string  `json:"phone_number" validate:"omitempty,phone,max=20"`
	Address     *string  `json:"address"      validate:"omitempty,max=200"`
	AccountType *string  `json:"account_type" validate:"omitempty,max=50"`
	Balance     *float64 `json:"balance"      validate:"omitempty,gte=0"`
	IsActive    *bool    `json:"is_active"`
}

// --- Response types ---
// Response-only types owned by the transport layer, intentionally separate
// from ports/domain types so the JSON contract is not coupled to internal
// service changes.

type clientResponse struct {
	ID          uint      `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	Address     string    `json:"address,omitempty"`
	AccountType string    `json:"account_type"`
	Balance     float64   `json:"balance"`
	CreatedAt   time.Time `json:"created_at"`
	IsActive    bool      `json:"is_active"`
}

type externalAddressResponse struct {
	Street string `json:"street"`
	City   string `json:"city"`
}

type externalUserResponse struct {
	ID      int                      `json:"id"`
	Name    string                   `json:"name"`
	Email   string                   `json:"email"`
	Phone   string                   `json:"phone"`
	Address *externalAddressResponse `json:"address,omitempty"`
}
