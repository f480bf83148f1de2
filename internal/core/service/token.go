package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/carminelamberti/smoobu-cleaning-app/internal/core/domain"
	"github.com/carminelamberti/smoobu-cleaning-app/internal/core/ports"
)

// sessionTTL is the fixed 24-hour session lifetime. Not configurable per
// token: every issued session expires exactly 24h after issuance.
const sessionTTL = 24 * time.Hour

type sessionClaims struct {
	OperatorID int64  `json:"operator_id"`
	Username   string `json:"username"`
	Name       string `json:"name"`
	jwt.RegisteredClaims
}

// JWTCodec issues and verifies HS256-signed session tokens. It
// implements ports.TokenCodec.
type JWTCodec struct {
	secret []byte
	now    func() time.Time
}

// NewJWTCodec builds a codec over the process-wide signing secret.
// An empty secret is a fatal misconfiguration: there is no fallback
// value, the constructor refuses to build the codec.
func NewJWTCodec(secret string) (*JWTCodec, error) {
	if secret == "" {
		return nil, errors.New("token: signing secret is required")
	}
	return &JWTCodec{secret: []byte(secret), now: time.Now}, nil
}

func (c *JWTCodec) Issue(op *domain.Operator) (string, error) {
	now := c.now().UTC()
	claims := sessionClaims{
		OperatorID: op.ID,
		Username:   op.Username,
		Name:       op.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Verify returns the session claims, or nil for any malformed, tampered
// or expired token. All failure modes collapse into the same nil result.
func (c *JWTCodec) Verify(token string) *ports.SessionClaims {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(c.now), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return nil
	}
	if claims.IssuedAt == nil || claims.ExpiresAt == nil {
		return nil
	}

	return &ports.SessionClaims{
		OperatorID: claims.OperatorID,
		Username:   claims.Username,
		Name:       claims.Name,
		IssuedAt:   claims.IssuedAt.Time,
		ExpiresAt:  claims.ExpiresAt.Time,
	}
}
