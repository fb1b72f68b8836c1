package ports

import (
	"context"
	"time"
)

// CreateClientInput carries all data needed to create a new client record.
// Structural validation (lengths, email/phone shape, balance >= 0) happens at
// the transport boundary before the service is invoked.
type CreateClientInput struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Address     string
	AccountType string
	Balance     float64
}

// UpdateClientInput carries the optional fields of a partial update. A nil
// pointer means "leave unchanged"; a non-nil pointer, even one pointing at
// the empty string, replaces the stored value.
type UpdateClientInput struct {
	FirstName   *string
	LastName    *string
	Email       *string
	PhoneNumber *string
	Address     *string
	AccountType *string
	Balance     *float64
	IsActive    *bool
}

// ClientView is the read projection of a client record, including the
// derived full name.
type ClientView struct {
	ID          uint
	FirstName   string
	LastName    string
	FullName    string
	Email       string
	PhoneNumber string
	Address     string
	AccountType string
	Balance     float64
	CreatedAt   time.Time
	IsActive    bool
}

// ClientService defines use-case operations for the client directory.
type ClientService interface {
	ListClients(ctx context.Context) ([]ClientView, error)
	GetClient(ctx context.Context, id uint) (*ClientView, error)
	CreateClient(ctx context.Context, input CreateClientInput) (*ClientView, error)
	UpdateClient(ctx context.Context, id uint, input UpdateClientInput) error
	DeleteClient(ctx context.Context, id uint) error
	SearchClients(ctx context.Context, term string) ([]ClientView, error)
}
