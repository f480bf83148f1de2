package postgres

import (
	"context"
	"fmt"

	"github.com/carminelamberti/smoobu-cleaning-app/internal/core/domain"
)

// PropertyRepository implements ports.PropertyRepository over PostgreSQL.
// Every query joins through operator_properties so only granted rows are
// ever visible.
type PropertyRepository struct {
	pool poolIface
}

func NewPropertyRepository(pool poolIface) *PropertyRepository {
	return &PropertyRepository{pool: pool}
}

func (r *PropertyRepository) ListByOperator(ctx context.Context, operatorID int64) ([]domain.Property, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT p.id, p.smoobu_id, p.name, p.address, p.type
		 FROM properties p
		 JOIN operator_properties op ON p.id = op.property_id
		 WHERE op.operator_id = $1
		 ORDER BY p.name`,
		operatorID,
	)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	defer rows.Close()

	properties := make([]domain.Property, 0)
	for rows.Next() {
		var p domain.Property
		if err := rows.Scan(&p.ID, &p.SmoobuID, &p.Name, &p.Address, &p.Type); err != nil {
			return nil, fmt.Errorf("scan property: %w", err)
		}
		properties = append(properties, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate properties: %w", err)
	}

	return properties, nil
}
