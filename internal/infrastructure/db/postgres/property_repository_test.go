package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carminelamberti/smoobu-cleaning-app/internal/core/domain"
)

func TestPropertyRepository_ListByOperator(t *testing.T) {
	t.Run("returns only granted rows", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		rows := pgxmock.NewRows([]string{"id", "smoobu_id", "name", "address", "type"}).
			AddRow(int64(1), int64(101), "Casa Marina", "Via Roma 1", domain.PropertyApartment).
			AddRow(int64(2), int64(102), "Villa Sole", "Via Napoli 9", domain.PropertyHouse)

		mock.ExpectQuery(`JOIN operator_properties op ON p\.id = op\.property_id\s+WHERE op\.operator_id = \$1`).
			WithArgs(int64(7)).
			WillReturnRows(rows)

		repo := NewPropertyRepository(mock)
		properties, err := repo.ListByOperator(context.Background(), 7)
		require.NoError(t, err)
		require.Len(t, properties, 2)
		assert.Equal(t, "Casa Marina", properties[0].Name)
		assert.Equal(t, domain.PropertyHouse, properties[1].Type)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no grants yields empty slice", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`WHERE op\.operator_id = \$1`).
			WithArgs(int64(99)).
			WillReturnRows(pgxmock.NewRows([]string{"id", "smoobu_id", "name", "address", "type"}))

		repo := NewPropertyRepository(mock)
		properties, err := repo.ListByOperator(context.Background(), 99)
		require.NoError(t, err)
		assert.NotNil(t, properties)
		assert.Empty(t, properties)
	})

	t.Run("database error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`FROM properties p`).
			WithArgs(int64(7)).
			WillReturnError(errors.New("connection reset"))

		repo := NewPropertyRepository(mock)
		_, err = repo.ListByOperator(context.Background(), 7)
		assert.Error(t, err)
	})
}
