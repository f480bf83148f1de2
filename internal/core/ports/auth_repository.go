package ports

import (
	"context"

	"github.com/carminelamberti/smoobu-cleaning-app/internal/core/domain"
)

// OperatorRepository defines the interface for operator credential lookup.
// Operators are provisioned out-of-band (seed data); this core only reads.
type OperatorRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.Operator, error)
}
