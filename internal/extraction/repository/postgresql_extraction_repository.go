// Package repository implements data persistence for document extractions.
// Like merchant applications, the public record and the encrypted-field map
// are stored as two JSON columns on the same row.
package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/verdantpay/onboarding/internal/database"
	apperrors "github.com/verdantpay/onboarding/internal/errors"
	extractionDomain "github.com/verdantpay/onboarding/internal/extraction/domain"
)

// PostgreSQLExtractionRepository implements document extraction persistence
// for PostgreSQL databases.
type PostgreSQLExtractionRepository struct {
	db *sql.DB
}

// NewPostgreSQLExtractionRepository creates a new PostgreSQL-backed
// extraction repository.
func NewPostgreSQLExtractionRepository(db *sql.DB) *PostgreSQLExtractionRepository {
	return &PostgreSQLExtractionRepository{db: db}
}

// Create inserts a new document extraction.
func (p *PostgreSQLExtractionRepository) Create(
	ctx context.Context,
	extraction *extractionDomain.DocumentExtraction,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO document_extractions
			  (id, application_id, tenant_id, document_type, record, encrypted_fields,
			   has_encrypted_data, encrypted_at, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := querier.ExecContext(
		ctx,
		query,
		extraction.ID,
		extraction.ApplicationID,
		extraction.TenantID,
		extraction.DocumentType,
		extraction.Record,
		extraction.EncryptedFields,
		extraction.HasEncryptedData,
		extraction.EncryptedAt,
		extraction.CreatedAt,
		extraction.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create document extraction")
	}
	return nil
}

// GetByID retrieves a document extraction by its ID.
func (p *PostgreSQLExtractionRepository) GetByID(
	ctx context.Context,
	extractionID uuid.UUID,
) (*extractionDomain.DocumentExtraction, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, application_id, tenant_id, document_type, record, encrypted_fields,
			  has_encrypted_data, encrypted_at, created_at, updated_at
			  FROM document_extractions
			  WHERE id = $1`

	extraction, err := scanExtraction(querier.QueryRowContext(ctx, query, extractionID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, extractionDomain.ErrExtractionNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get document extraction")
	}
	return extraction, nil
}

// Update persists the full mutable state of a document extraction.
func (p *PostgreSQLExtractionRepository) Update(
	ctx context.Context,
	extraction *extractionDomain.DocumentExtraction,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE document_extractions
			  SET record = $1, encrypted_fields = $2, has_encrypted_data = $3,
			      encrypted_at = $4, updated_at = $5
			  WHERE id = $6`

	result, err := querier.ExecContext(
		ctx,
		query,
		extraction.Record,
		extraction.EncryptedFields,
		extraction.HasEncryptedData,
		extraction.EncryptedAt,
		time.Now().UTC(),
		extraction.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update document extraction")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check update result")
	}
	if rows == 0 {
		return extractionDomain.ErrExtractionNotFound
	}
	return nil
}

// ListByApplication retrieves all extractions produced for one merchant
// application, newest first.
func (p *PostgreSQLExtractionRepository) ListByApplication(
	ctx context.Context,
	applicationID uuid.UUID,
) ([]*extractionDomain.DocumentExtraction, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, application_id, tenant_id, document_type, record, encrypted_fields,
			  has_encrypted_data, encrypted_at, created_at, updated_at
			  FROM document_extractions
			  WHERE application_id = $1
			  ORDER BY created_at DESC`

	rows, err := querier.QueryContext(ctx, query, applicationID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list document extractions")
	}
	defer rows.Close()

	var extractions []*extractionDomain.DocumentExtraction
	for rows.Next() {
		extraction, err := scanExtraction(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan document extraction")
		}
		extractions = append(extractions, extraction)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate document extractions")
	}
	return extractions, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scanning.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanExtraction scans one document extraction row.
func scanExtraction(scanner rowScanner) (*extractionDomain.DocumentExtraction, error) {
	var extraction extractionDomain.DocumentExtraction
	err := scanner.Scan(
		&extraction.ID,
		&extraction.ApplicationID,
		&extraction.TenantID,
		&extraction.DocumentType,
		&extraction.Record,
		&extraction.EncryptedFields,
		&extraction.HasEncryptedData,
		&extraction.EncryptedAt,
		&extraction.CreatedAt,
		&extraction.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &extraction, nil
}
