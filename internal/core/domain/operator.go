package domain

import (
	"errors"
	"time"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrOperatorNotFound = errors.New("operator not found")

// Operator models an authenticated cleaning operator.
type Operator struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Email        string    `json:"email,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Sanitized returns a copy safe to embed in API responses: the password
// hash never leaves the auth core.
func (o Operator) Sanitized() Operator {
	o.PasswordHash = ""
	return o
}
