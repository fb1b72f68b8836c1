package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bankcore/bank-client-api/internal/core/domain"
	"github.com/bankcore/bank-client-api/internal/core/ports"
)

type externalUserService struct {
	directory ports.ExternalDirectory
	log       zerolog.Logger
}

// NewExternalUserService returns an ExternalUserService backed by the given
// upstream directory client. The service holds no state between calls.
func NewExternalUserService(directory ports.ExternalDirectory, log zerolog.Logger) ports.ExternalUserService {
	return &externalUserService{directory: directory, log: log}
}

// ListExternalUsers proxies the upstream user list verbatim. Failures are
// logged with their cause; callers only see the upstream-unavailable sentinel.
func (s *externalUserService) ListExternalUsers(ctx context.Context) ([]domain.ExternalUser, error) {
	users, err := s.directory.ListUsers(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("external user list failed")
		return nil, fmt.Errorf("list external users: %w", err)
	}

	s.log.Info().Int("count", len(users)).Msg("external users fetched")
	return users, nil
}

// GetExternalUser proxies a single user lookup. An upstream not-found is an
// expected outcome, distinct from the directory being unreachable.
func (s *externalUserService) GetExternalUser(ctx context.Context, id int) (*domain.ExternalUser, error) {
	user, err := s.directory.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrExternalUserNotFound) {
			s.log.Debug().Int("user_id", id).Msg("external user not found upstream")
			return nil, err
		}
		s.log.Error().Err(err).Int("user_id", id).Msg("external user fetch failed")
		return nil, fmt.Errorf("get external user %d: %w", id, err)
	}

	return user, nil
}
