package ports

import (
	"context"

	"github.com/carminelamberti/smoobu-cleaning-app/internal/core/domain"
)

type AuthService interface {
	// Login verifies the credentials and returns a signed session token
	// plus the sanitized operator profile. Unknown usernames and wrong
	// passwords both yield domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, *domain.Operator, error)
}
