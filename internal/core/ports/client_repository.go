package ports

import (
	"context"

	"github.com/bankcore/bank-client-api/internal/core/domain"
)

// ClientRepository defines persistence operations for client records.
type ClientRepository interface {
	// Create inserts a new record and fills in the assigned ID.
	// A storage-level email collision is reported as domain.ErrDuplicateEmail.
	Create(ctx context.Context, c *domain.Client) error
	// FindByID retrieves a record by primary key regardless of active status.
	FindByID(ctx context.Context, id uint) (*domain.Client, error)
	// ListActive returns all active records in insertion order.
	ListActive(ctx context.Context) ([]domain.Client, error)
	// EmailTaken reports whether any record other than excludeID already holds
	// the given email. Pass excludeID=0 to check the whole table.
	EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error)
	// UpdateFields persists only the given column/value pairs on the record.
	// Returns domain.ErrClientNotFound when the row no longer exists.
	UpdateFields(ctx context.Context, id uint, fields map[string]any) error
	// Search returns active records whose first name, last name, or email
	// contains term, in insertion order.
	Search(ctx context.Context, term string) ([]domain.Client, error)
}
