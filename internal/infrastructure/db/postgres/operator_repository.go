package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/carminelamberti/smoobu-cleaning-app/internal/core/domain"
)

// OperatorRepository implements ports.OperatorRepository over PostgreSQL.
type OperatorRepository struct {
	pool poolIface
}

func NewOperatorRepository(pool poolIface) *OperatorRepository {
	return &OperatorRepository{pool: pool}
}

// FindByUsername resolves an operator by exact, case-sensitive username.
func (r *OperatorRepository) FindByUsername(ctx context.Context, username string) (*domain.Operator, error) {
	var op domain.Operator
	err := r.pool.QueryRow(ctx,
		`SELECT id, username, password_hash, name, email, created_at, updated_at
		 FROM operators
		 WHERE username = $1`,
		username,
	).Scan(&op.ID, &op.Username, &op.PasswordHash, &op.Name, &op.Email, &op.CreatedAt, &op.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOperatorNotFound
		}
		return nil, fmt.Errorf("find operator: %w", err)
	}

	return &op, nil
}
