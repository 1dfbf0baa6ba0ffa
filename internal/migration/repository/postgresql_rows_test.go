package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/verdantpay/onboarding/internal/errors"
	migrationUsecase "github.com/verdantpay/onboarding/internal/migration/usecase"
)

func newMockDB(t *testing.T) (*PostgreSQLRowRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewPostgreSQLRowRepository(db, TableMerchantApplications), mock
}

func TestPostgreSQLRowRepository_ListPending(t *testing.T) {
	repo, mock := newMockDB(t)

	rowID := uuid.Must(uuid.NewV7())
	columns := []string{"id", "record", "encrypted_fields", "has_encrypted_data", "encrypted_at"}

	mock.ExpectQuery(`SELECT .* FROM merchant_applications`).
		WithArgs(uuid.Nil, 100).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(
			rowID,
			[]byte(`{"federalTaxIdNumber":"12-3456789"}`),
			nil,
			false,
			nil,
		))

	rows, err := repo.ListPending(context.Background(), uuid.Nil, 100)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, rowID, rows[0].ID)
	assert.Equal(t, "12-3456789", rows[0].Record["federalTaxIdNumber"])
	assert.False(t, rows[0].HasEncryptedData)
	assert.Nil(t, rows[0].EncryptedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLRowRepository_Save(t *testing.T) {
	repo, mock := newMockDB(t)

	now := time.Now().UTC()
	row := &migrationUsecase.Row{
		ID:               uuid.Must(uuid.NewV7()),
		Record:           map[string]any{"federalTaxIdNumber": "**-****6789"},
		EncryptedFields:  map[string]string{"federalTaxIdNumber": "Y2lwaGVydGV4dA=="},
		HasEncryptedData: true,
		EncryptedAt:      &now,
	}

	t.Run("saved", func(t *testing.T) {
		mock.ExpectExec(`UPDATE merchant_applications`).
			WithArgs(
				sqlmock.AnyArg(),
				sqlmock.AnyArg(),
				true,
				now,
				sqlmock.AnyArg(),
				row.ID,
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Save(context.Background(), row)
		assert.NoError(t, err)
	})

	t.Run("row deleted underneath the migration", func(t *testing.T) {
		mock.ExpectExec(`UPDATE merchant_applications`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Save(context.Background(), row)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
