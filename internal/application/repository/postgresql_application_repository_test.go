package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	applicationDomain "github.com/verdantpay/onboarding/internal/application/domain"
	apperrors "github.com/verdantpay/onboarding/internal/errors"
)

func newMockDB(t *testing.T) (*PostgreSQLApplicationRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewPostgreSQLApplicationRepository(db), mock
}

func testApplication(t *testing.T) *applicationDomain.MerchantApplication {
	t.Helper()

	now := time.Now().UTC()
	return &applicationDomain.MerchantApplication{
		ID:                uuid.Must(uuid.NewV7()),
		TenantID:          uuid.Must(uuid.NewV7()),
		LegalBusinessName: "Green Fields LLC",
		DBAName:           "Green Fields",
		Status:            applicationDomain.StatusSubmitted,
		Record: map[string]any{
			"legalBusinessName":  "Green Fields LLC",
			"federalTaxIdNumber": "**-****6789",
		},
		EncryptedFields:  map[string]string{"federalTaxIdNumber": "Y2lwaGVydGV4dA=="},
		HasEncryptedData: true,
		EncryptedAt:      &now,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func TestPostgreSQLApplicationRepository_Create(t *testing.T) {
	repo, mock := newMockDB(t)
	application := testApplication(t)

	mock.ExpectExec(`INSERT INTO merchant_applications`).
		WithArgs(
			application.ID,
			application.TenantID,
			application.LegalBusinessName,
			application.DBAName,
			application.Status,
			sqlmock.AnyArg(),
			sqlmock.AnyArg(),
			application.HasEncryptedData,
			*application.EncryptedAt,
			application.CreatedAt,
			application.UpdatedAt,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), application)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLApplicationRepository_GetByID(t *testing.T) {
	repo, mock := newMockDB(t)
	application := testApplication(t)

	columns := []string{
		"id", "tenant_id", "legal_business_name", "dba_name", "status", "record",
		"encrypted_fields", "has_encrypted_data", "encrypted_at", "created_at", "updated_at",
	}

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM merchant_applications`).
			WithArgs(application.ID).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(
				application.ID,
				application.TenantID,
				application.LegalBusinessName,
				application.DBAName,
				string(application.Status),
				[]byte(`{"legalBusinessName":"Green Fields LLC","federalTaxIdNumber":"**-****6789"}`),
				[]byte(`{"federalTaxIdNumber":"Y2lwaGVydGV4dA=="}`),
				application.HasEncryptedData,
				*application.EncryptedAt,
				application.CreatedAt,
				application.UpdatedAt,
			))

		got, err := repo.GetByID(context.Background(), application.ID)
		require.NoError(t, err)
		assert.Equal(t, application.ID, got.ID)
		assert.Equal(t, application.LegalBusinessName, got.LegalBusinessName)
		assert.Equal(t, "**-****6789", got.Record["federalTaxIdNumber"])
		assert.Equal(t, "Y2lwaGVydGV4dA==", got.EncryptedFields["federalTaxIdNumber"])
		assert.True(t, got.HasEncryptedData)
	})

	t.Run("not found", func(t *testing.T) {
		missingID := uuid.Must(uuid.NewV7())
		mock.ExpectQuery(`SELECT .* FROM merchant_applications`).
			WithArgs(missingID).
			WillReturnRows(sqlmock.NewRows(columns))

		_, err := repo.GetByID(context.Background(), missingID)
		assert.ErrorIs(t, err, applicationDomain.ErrApplicationNotFound)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLApplicationRepository_Update(t *testing.T) {
	repo, mock := newMockDB(t)
	application := testApplication(t)

	t.Run("updated", func(t *testing.T) {
		mock.ExpectExec(`UPDATE merchant_applications`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(context.Background(), application)
		assert.NoError(t, err)
	})

	t.Run("missing row", func(t *testing.T) {
		mock.ExpectExec(`UPDATE merchant_applications`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(context.Background(), application)
		assert.ErrorIs(t, err, applicationDomain.ErrApplicationNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLApplicationRepository_UpdateStatus(t *testing.T) {
	repo, mock := newMockDB(t)
	applicationID := uuid.Must(uuid.NewV7())

	mock.ExpectExec(`UPDATE merchant_applications`).
		WithArgs(applicationDomain.StatusApproved, sqlmock.AnyArg(), applicationID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), applicationID, applicationDomain.StatusApproved)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLApplicationRepository_ListByTenant(t *testing.T) {
	repo, mock := newMockDB(t)
	application := testApplication(t)

	columns := []string{
		"id", "tenant_id", "legal_business_name", "dba_name", "status", "record",
		"encrypted_fields", "has_encrypted_data", "encrypted_at", "created_at", "updated_at",
	}

	mock.ExpectQuery(`SELECT .* FROM merchant_applications`).
		WithArgs(application.TenantID, 50, 0).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(
			application.ID,
			application.TenantID,
			application.LegalBusinessName,
			application.DBAName,
			string(application.Status),
			[]byte(`{}`),
			[]byte(`{}`),
			application.HasEncryptedData,
			*application.EncryptedAt,
			application.CreatedAt,
			application.UpdatedAt,
		))

	applications, err := repo.ListByTenant(context.Background(), application.TenantID, 0, 50)
	require.NoError(t, err)
	require.Len(t, applications, 1)
	assert.Equal(t, application.ID, applications[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
