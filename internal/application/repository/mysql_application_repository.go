package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	applicationDomain "github.com/verdantpay/onboarding/internal/application/domain"
	"github.com/verdantpay/onboarding/internal/database"
	apperrors "github.com/verdantpay/onboarding/internal/errors"
)

// MySQLApplicationRepository implements merchant application persistence for
// MySQL databases. Identical behavior to the PostgreSQL repository with MySQL
// placeholder syntax.
type MySQLApplicationRepository struct {
	db *sql.DB
}

// NewMySQLApplicationRepository creates a new MySQL-backed application
// repository.
func NewMySQLApplicationRepository(db *sql.DB) *MySQLApplicationRepository {
	return &MySQLApplicationRepository{db: db}
}

// Create inserts a new merchant application.
func (m *MySQLApplicationRepository) Create(
	ctx context.Context,
	application *applicationDomain.MerchantApplication,
) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO merchant_applications
			  (id, tenant_id, legal_business_name, dba_name, status, record, encrypted_fields,
			   has_encrypted_data, encrypted_at, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := querier.ExecContext(
		ctx,
		query,
		application.ID,
		application.TenantID,
		application.LegalBusinessName,
		application.DBAName,
		application.Status,
		application.Record,
		application.EncryptedFields,
		application.HasEncryptedData,
		application.EncryptedAt,
		application.CreatedAt,
		application.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create merchant application")
	}
	return nil
}

// GetByID retrieves a merchant application by its ID.
func (m *MySQLApplicationRepository) GetByID(
	ctx context.Context,
	applicationID uuid.UUID,
) (*applicationDomain.MerchantApplication, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, tenant_id, legal_business_name, dba_name, status, record,
			  encrypted_fields, has_encrypted_data, encrypted_at, created_at, updated_at
			  FROM merchant_applications
			  WHERE id = ?`

	application, err := scanApplication(querier.QueryRowContext(ctx, query, applicationID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, applicationDomain.ErrApplicationNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get merchant application")
	}
	return application, nil
}

// Update persists the full mutable state of a merchant application.
func (m *MySQLApplicationRepository) Update(
	ctx context.Context,
	application *applicationDomain.MerchantApplication,
) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE merchant_applications
			  SET legal_business_name = ?, dba_name = ?, status = ?, record = ?,
			      encrypted_fields = ?, has_encrypted_data = ?, encrypted_at = ?, updated_at = ?
			  WHERE id = ?`

	result, err := querier.ExecContext(
		ctx,
		query,
		application.LegalBusinessName,
		application.DBAName,
		application.Status,
		application.Record,
		application.EncryptedFields,
		application.HasEncryptedData,
		application.EncryptedAt,
		time.Now().UTC(),
		application.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update merchant application")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check update result")
	}
	if rows == 0 {
		return applicationDomain.ErrApplicationNotFound
	}
	return nil
}

// UpdateStatus moves a merchant application to a new review workflow status.
func (m *MySQLApplicationRepository) UpdateStatus(
	ctx context.Context,
	applicationID uuid.UUID,
	status applicationDomain.Status,
) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE merchant_applications
			  SET status = ?, updated_at = ?
			  WHERE id = ?`

	result, err := querier.ExecContext(ctx, query, status, time.Now().UTC(), applicationID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update application status")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check status update result")
	}
	if rows == 0 {
		return applicationDomain.ErrApplicationNotFound
	}
	return nil
}

// ListByTenant retrieves a tenant's applications ordered by creation time,
// newest first.
func (m *MySQLApplicationRepository) ListByTenant(
	ctx context.Context,
	tenantID uuid.UUID,
	offset, limit int,
) ([]*applicationDomain.MerchantApplication, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, tenant_id, legal_business_name, dba_name, status, record,
			  encrypted_fields, has_encrypted_data, encrypted_at, created_at, updated_at
			  FROM merchant_applications
			  WHERE tenant_id = ?
			  ORDER BY created_at DESC
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list merchant applications")
	}
	defer rows.Close()

	var applications []*applicationDomain.MerchantApplication
	for rows.Next() {
		application, err := scanApplication(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan merchant application")
		}
		applications = append(applications, application)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate merchant applications")
	}
	return applications, nil
}
