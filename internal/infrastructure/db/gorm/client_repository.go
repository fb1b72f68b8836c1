package gormdb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/bankcore/bank-client-api/internal/core/domain"
)

// ClientRepository is the GORM-backed implementation of
// ports.ClientRepository. Each method is a single short statement against the
// clients table; atomicity per operation is delegated to the database.
type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

// Create inserts the record and fills in the assigned primary key. A
// unique-index collision on email (the create/create race) is reported as
// domain.ErrDuplicateEmail.
func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) error {
	err := r.db.WithContext(ctx).Create(c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// FindByID retrieves a record by primary key, soft-deleted rows included.
func (r *ClientRepository) FindByID(ctx context.Context, id uint) (*domain.Client, error) {
	var c domain.Client
	err := r.db.WithContext(ctx).First(&c, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("find client %d: %w", id, err)
	}
	return &c, nil
}

// ListActive returns active records ordered by primary key, which matches
// insertion order because ids are never reused.
func (r *ClientRepository) ListActive(ctx context.Context) ([]domain.Client, error) {
	var clients []domain.Client
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id").
		Find(&clients).Error
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return clients, nil
}

// EmailTaken checks the whole table, inactive rows included, since a
// soft-deleted record still reserves its email.
func (r *ClientRepository) EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error) {
	query := r.db.WithContext(ctx).Model(&domain.Client{}).Where("email = ?", email)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("check email: %w", err)
	}
	return count > 0, nil
}

// UpdateFields writes only the supplied column/value pairs. When the row
// vanished between the caller's read and this write, zero rows match and the
// result is domain.ErrClientNotFound instead of a lower-level conflict.
func (r *ClientRepository) UpdateFields(ctx context.Context, id uint, fields map[string]any) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Client{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("update client %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

// Search matches term case-insensitively as a substring of first name, last
// name, or email. LOWER-based matching keeps the policy identical across
// Postgres and the SQLite test store.
func (r *ClientRepository) Search(ctx context.Context, term string) ([]domain.Client, error) {
	pattern := "%" + strings.ToLower(term) + "%"

	var clients []domain.Client
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ?",
			pattern, pattern, pattern).
		Order("id").
		Find(&clients).Error
	if err != nil {
		return nil, fmt.Errorf("search clients: %w", err)
	}
	return clients, nil
}
