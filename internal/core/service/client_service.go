package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bankcore/bank-client-api/internal/core/domain"
	"github.com/bankcore/bank-client-api/internal/core/ports"
)

type ClientService struct {
	repo   ports.ClientRepository
	logger zerolog.Logger
}

func NewClientService(repo ports.ClientRepository, logger zerolog.Logger) *ClientService {
	return &ClientService{repo: repo, logger: logger}
}

// ListClients returns every active client in insertion order.
func (s *ClientService) ListClients(ctx context.Context) ([]ports.ClientView, error) {
	clients, err := s.repo.ListActive(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list clients")
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return toViews(clients), nil
}

// GetClient returns a client by id regardless of active status. Soft-deleted
// records are still retrievable here; deactivation only hides them from List.
func (s *ClientService) GetClient(ctx context.Context, id uint) (*ports.ClientView, error) {
	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get client %d: %w", id, err)
	}
	view := toView(*client)
	return &view, nil
}

// CreateClient checks email uniqueness across the whole table (active and
// inactive rows alike), stamps the creation time, and persists the record.
// Two concurrent creates with the same email may both pass the pre-check;
// the storage unique constraint catches the loser and the repository reports
// it as ErrDuplicateEmail.
func (s *ClientService) CreateClient(ctx context.Context, input ports.CreateClientInput) (*ports.ClientView, error) {
	taken, err := s.repo.EmailTaken(ctx, input.Email, 0)
	if err != nil {
		s.logger.Error().Err(err).Msg("email uniqueness check failed")
		return nil, fmt.Errorf("create client: %w", err)
	}
	if taken {
		return nil, domain.ErrDuplicateEmail
	}

	client := &domain.Client{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		Address:     input.Address,
		AccountType: input.AccountType,
		Balance:     input.Balance,
		CreatedAt:   time.Now().UTC(),
		IsActive:    true,
	}

	if err := s.repo.Create(ctx, client); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.ErrDuplicateEmail
		}
		s.logger.Error().Err(err).Msg("failed to create client")
		return nil, fmt.Errorf("create client: %w", err)
	}

	s.logger.Info().Uint("client_id", client.ID).Str("account_type", client.AccountType).Msg("client created")

	view := toView(*client)
	return &view, nil
}

// UpdateClient applies a partial update: only non-nil input fields are
// persisted, everything else (CreatedAt included) stays untouched. When the
// email changes, uniqueness is re-checked excluding the record itself.
func (s *ClientService) UpdateClient(ctx context.Context, id uint, input ports.UpdateClientInput) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("update client %d: %w", id, err)
	}

	if input.Email != nil {
		taken, err := s.repo.EmailTaken(ctx, *input.Email, id)
		if err != nil {
			s.logger.Error().Err(err).Msg("email uniqueness check failed")
			return fmt.Errorf("update client %d: %w", id, err)
		}
		if taken {
			return domain.ErrDuplicateEmail
		}
	}

	fields := updatedFields(input)
	if len(fields) == 0 {
		// Nothing supplied: the record is valid as-is.
		return nil
	}

	// The record may vanish between the read above and this write; the
	// repository reports that as ErrClientNotFound rather than a raw conflict.
	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		if errors.Is(err, domain.ErrClientNotFound) || errors.Is(err, domain.ErrDuplicateEmail) {
			return err
		}
		s.logger.Error().Err(err).Uint("client_id", id).Msg("failed to update client")
		return fmt.Errorf("update client %d: %w", id, err)
	}

	s.logger.Info().Uint("client_id", id).Int("fields", len(fields)).Msg("client updated")
	return nil
}

// DeleteClient soft-deletes: the row and its email reservation remain, only
// the active flag flips.
func (s *ClientService) DeleteClient(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("delete client %d: %w", id, err)
	}

	if err := s.repo.UpdateFields(ctx, id, map[string]any{"is_active": false}); err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			return err
		}
		s.logger.Error().Err(err).Uint("client_id", id).Msg("failed to deactivate client")
		return fmt.Errorf("delete client %d: %w", id, err)
	}

	s.logger.Info().Uint("client_id", id).Msg("client deactivated")
	return nil
}

// SearchClients matches term as a case-insensitive substring of first name,
// last name, or email among active records. An empty or whitespace-only term
// is a validation error; a term matching nothing is an empty result.
func (s *ClientService) SearchClients(ctx context.Context, term string) ([]ports.ClientView, error) {
	if strings.TrimSpace(term) == "" {
		return nil, domain.ErrSearchTermRequired
	}

	clients, err := s.repo.Search(ctx, term)
	if err != nil {
		s.logger.Error().Err(err).Str("term", term).Msg("client search failed")
		return nil, fmt.Errorf("search clients: %w", err)
	}

	return toViews(clients), nil
}

// updatedFields translates the supplied pointers into a column map. Explicit
// values, the empty string included, always win over the stored value;
// omitted fields never appear in the map.
func updatedFields(input ports.UpdateClientInput) map[string]any {
	fields := make(map[string]any)
	if input.FirstName != nil {
		fields["first_name"] = *input.FirstName
	}
	if input.LastName != nil {
		fields["last_name"] = *input.LastName
	}
	if input.Email != nil {
		fields["email"] = *input.Email
	}
	if input.PhoneNumber != nil {
		fields["phone_number"] = *input.PhoneNumber
	}
	if input.Address != nil {
		fields["address"] = *input.Address
	}
	if input.AccountType != nil {
		fields["account_type"] = *input.AccountType
	}
	if input.Balance != nil {
		fields["balance"] = *input.Balance
	}
	if input.IsActive != nil {
		fields["is_active"] = *input.IsActive
	}
	return fields
}

// toView is the pure projection from stored record to response shape.
func toView(c domain.Client) ports.ClientView {
	return ports.ClientView{
		ID:          c.ID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		FullName:    c.FullName(),
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
		Address:     c.Address,
		AccountType: c.AccountType,
		Balance:     c.Balance,
		CreatedAt:   c.CreatedAt,
		IsActive:    c.IsActive,
	}
}

func toViews(clients []domain.Client) []ports.ClientView {
	views := make([]ports.ClientView, 0, len(clients))
	for _, c := range clients {
		views = append(views, toView(c))
	}
	return views
}
