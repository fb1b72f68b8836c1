package domain

import (
	"errors"
	"time"
)

var ErrClientNotFound = errors.New("client not found")
var ErrDuplicateEmail = errors.New("email already registered")
var ErrSearchTermRequired = errors.New("search term is required")

// Client is the persisted bank-client record.
//
// Email is unique across the whole table, including soft-deleted rows: a
// deactivated client keeps its email reserved. CreatedAt is set once at
// insertion and never updated. "Deleting" a client only flips IsActive.
type Client struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	FirstName   string    `json:"first_name" gorm:"size:100;not null"`
	LastName    string    `json:"last_name" gorm:"size:100;not null"`
	Email       string    `json:"email" gorm:"size:150;not null;uniqueIndex"`
	PhoneNumber string    `json:"phone_number" gorm:"size:20;not null"`
	Address     string    `json:"address" gorm:"size:200"`
	AccountType string    `json:"account_type" gorm:"size:50;not null"`
	Balance     float64   `json:"balance" gorm:"type:decimal(18,2);not null"`
	CreatedAt   time.Time `json:"created_at"`
	IsActive    bool      `json:"is_active" gorm:"not null"`
}

// FullName returns the display name derived from first and last name.
func (c Client) FullName() string {
	return c.FirstName + " " + c.LastName
}
