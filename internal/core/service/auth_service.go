package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/carminelamberti/smoobu-cleaning-app/internal/core/domain"
	"github.com/carminelamberti/smoobu-cleaning-app/internal/core/ports"
)

// AuthService implements operator login.
type AuthService struct {
	repo   ports.OperatorRepository
	codec  ports.TokenCodec
	logger zerolog.Logger
}

func NewAuthService(repo ports.OperatorRepository, codec ports.TokenCodec, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, codec: codec, logger: logger}
}

// Login looks the operator up by exact username, verifies the password
// and issues a session token. An unknown username and a wrong password
// both fail with domain.ErrInvalidCredentials so the two cases cannot be
// told apart from outside. Store failures are kept distinct so they can
// be monitored separately from bad credentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.Operator, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	op, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrOperatorNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		s.logger.Error().Err(err).Msg("operator lookup failed")
		return "", nil, fmt.Errorf("operator lookup: %w", err)
	}

	if !VerifyPassword(password, op.PasswordHash) {
		s.logger.Info().Str("username", username).Msg("login rejected")
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.codec.Issue(op)
	if err != nil {
		s.logger.Error().Err(err).Msg("token issuance failed")
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info().Int64("operator_id", op.ID).Str("username", op.Username).Msg("login succeeded")

	sanitized := op.Sanitized()
	return token, &sanitized, nil
}
