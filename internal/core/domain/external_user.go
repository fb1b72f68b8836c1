package domain

import "errors"

var ErrExternalUserNotFound = errors.New("external user not found")
var ErrUpstreamUnavailable = errors.New("external directory unavailable")

// ExternalAddress is the structured address attached to an external user.
type ExternalAddress struct {
	Street string `json:"street"`
	City   string `json:"city"`
}

// ExternalUser is a record fetched from the third-party user directory.
// It is never persisted; each proxy call produces a fresh copy.
type ExternalUser struct {
	ID      int              `json:"id"`
	Name    string           `json:"name"`
	Email   string           `json:"email"`
	Phone   string           `json:"phone"`
	Address *ExternalAddress `json:"address,omitempty"`
}
