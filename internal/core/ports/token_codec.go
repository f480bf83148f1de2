package ports

import (
	"time"

	"github.com/carminelamberti/smoobu-cleaning-app/internal/core/domain"
)

// SessionClaims is the identity payload carried by a session token.
// Claims are immutable once issued; the token is a self-contained
// credential and no server-side session state exists.
type SessionClaims struct {
	OperatorID int64
	Username   string
	Name       string
	IssuedAt   time.Time
	ExpiresAt  time.Time
}

// TokenCodec issues and verifies signed, time-bounded session tokens.
// Verification is kept behind this interface so a server-side denylist
// could be layered in later without touching any caller.
type TokenCodec interface {
	Issue(op *domain.Operator) (string, error)
	// Verify returns nil for any malformed, tampered or expired token;
	// callers get a single not-authenticated signal and nothing more.
	Verify(token string) *SessionClaims
}
