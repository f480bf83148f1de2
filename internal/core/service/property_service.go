package service

import (
	"context"

	"github.com/carminelamberti/smoobu-cleaning-app/internal/core/domain"
	"github.com/carminelamberti/smoobu-cleaning-app/internal/core/ports"
)

// PropertyService lists the properties an operator is granted access to.
type PropertyService struct {
	repo ports.PropertyRepository
}

func NewPropertyService(repo ports.PropertyRepository) *PropertyService {
	return &PropertyService{repo: repo}
}

func (s *PropertyService) ListProperties(ctx context.Context, operatorID int64) ([]domain.Property, error) {
	return s.repo.ListByOperator(ctx, operatorID)
}
