// Package repository implements data persistence for merchant applications.
// Repositories support both PostgreSQL and MySQL; the public record and the
// encrypted-field map are stored as two JSON columns on the same row.
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

// PostgreSQLApplicationRepository implements merchant application persistence
// for PostgreSQL databases.
type PostgreSQLApplicationRepository struct {
	db *sql.DB
}

// NewPostgreSQLApplicationRepository creates a new PostgreSQL-backed
// application repository.
func NewPostgreSQLApplicationRepository(db *sql.DB) *PostgreSQLApplicationRepository {
	return &PostgreSQLApplicationRepository{db: db}
}

// Create inserts a new merchant application.
func (p *PostgreSQLApplicationRepository) Create(
	ctx context.Context,
	application *applicationDomain.MerchantApplication,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO merchant_applications
			  (id, tenant_id, legal_business_name, dba_name, status, record, encrypted_fields,
			   has_encrypted_data, encrypted_at, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

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
func (p *PostgreSQLApplicationRepository) GetByID(
	ctx context.Context,
	applicationID uuid.UUID,
) (*applicationDomain.MerchantApplication, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, tenant_id, legal_business_name, dba_name, status, record,
			  encrypted_fields, has_encrypted_data, encrypted_at, created_at, updated_at
			  FROM merchant_applications
			  WHERE id = $1`

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
func (p *PostgreSQLApplicationRepository) Update(
	ctx context.Context,
	application *applicationDomain.MerchantApplication,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE merchant_applications
			  SET legal_business_name = $1, dba_name = $2, status = $3, record = $4,
			      encrypted_fields = $5, has_encrypted_data = $6, encrypted_at = $7, updated_at = $8
			  WHERE id = $9`

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
func (p *PostgreSQLApplicationRepository) UpdateStatus(
	ctx context.Context,
	applicationID uuid.UUID,
	status applicationDomain.Status,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE merchant_applications
			  SET status = $1, updated_at = $2
			  WHERE id = $3`

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
func (p *PostgreSQLApplicationRepository) ListByTenant(
	ctx context.Context,
	tenantID uuid.UUID,
	offset, limit int,
) ([]*applicationDomain.MerchantApplication, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, tenant_id, legal_business_name, dba_name, status, record,
			  encrypted_fields, has_encrypted_data, encrypted_at, created_at, updated_at
			  FROM merchant_applications
			  WHERE tenant_id = $1
			  ORDER BY created_at DESC
			  LIMIT $2 OFFSET $3`

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

// rowScanner abstracts *sql.Row and *sql.Rows for shared scanning.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanApplication scans one merchant application row.
func scanApplication(scanner rowScanner) (*applicationDomain.MerchantApplication, error) {
	var application applicationDomain.MerchantApplication
	err := scanner.Scan(
		&application.ID,
		&application.TenantID,
		&application.LegalBusinessName,
		&application.DBAName,
		&application.Status,
		&application.Record,
		&application.EncryptedFields,
		&application.HasEncryptedData,
		&application.EncryptedAt,
		&application.CreatedAt,
		&application.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &application, nil
}
