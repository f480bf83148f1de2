package ports

import (
	"context"

	"github.com/carminelamberti/smoobu-cleaning-app/internal/core/domain"
)

// PropertyRepository reads properties through the ownership relation.
type PropertyRepository interface {
	// ListByOperator returns the properties granted to operatorID,
	// ordered by name.
	ListByOperator(ctx context.Context, operatorID int64) ([]domain.Property, error)
}

type PropertyService interface {
	ListProperties(ctx context.Context, operatorID int64) ([]domain.Property, error)
}
