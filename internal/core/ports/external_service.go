package ports

import (
	"context"

	"github.com/bankcore/bank-client-api/internal/core/domain"
)

// ExternalDirectory abstracts the outbound client for the third-party user
// directory. Implementations make exactly one call per invocation — no
// retries, no caching.
type ExternalDirectory interface {
	// ListUsers fetches every user from the directory. Transport failures,
	// non-2xx responses, and undecodable bodies are reported as
	// domain.ErrUpstreamUnavailable.
	ListUsers(ctx context.Context) ([]domain.ExternalUser, error)
	// GetUser fetches a single user by id. A non-2xx response maps to
	// domain.ErrExternalUserNotFound; transport and decode failures map to
	// domain.ErrUpstreamUnavailable.
	GetUser(ctx context.Context, id int) (*domain.ExternalUser, error)
}

// ExternalUserService defines the proxy use cases exposed to the transport
// layer.
type ExternalUserService interface {
	ListExternalUsers(ctx context.Context) ([]domain.ExternalUser, error)
	GetExternalUser(ctx context.Context, id int) (*domain.ExternalUser, error)
}
