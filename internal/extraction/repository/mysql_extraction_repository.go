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

// MySQLExtractionRepository implements document extraction persistence for
// MySQL databases. Identical behavior to the PostgreSQL repository with
// MySQL placeholder syntax.
type MySQLExtractionRepository struct {
	db *sql.DB
}

// NewMySQLExtractionRepository creates a new MySQL-backed extraction
// repository.
func NewMySQLExtractionRepository(db *sql.DB) *MySQLExtractionRepository {
	return &MySQLExtractionRepository{db: db}
}

// Create inserts a new document extraction.
func (m *MySQLExtractionRepository) Create(
	ctx context.Context,
	extraction *extractionDomain.DocumentExtraction,
) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO document_extractions
			  (id, application_id, tenant_id, document_type, record, encrypted_fields,
			   has_encrypted_data, encrypted_at, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

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
func (m *MySQLExtractionRepository) GetByID(
	ctx context.Context,
	extractionID uuid.UUID,
) (*extractionDomain.DocumentExtraction, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, application_id, tenant_id, document_type, record, encrypted_fields,
			  has_encrypted_data, encrypted_at, created_at, updated_at
			  FROM document_extractions
			  WHERE id = ?`

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
func (m *MySQLExtractionRepository) Update(
	ctx context.Context,
	extraction *extractionDomain.DocumentExtraction,
) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE document_extractions
			  SET record = ?, encrypted_fields = ?, has_encrypted_data = ?,
			      encrypted_at = ?, updated_at = ?
			  WHERE id = ?`

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
func (m *MySQLExtractionRepository) ListByApplication(
	ctx context.Context,
	applicationID uuid.UUID,
) ([]*extractionDomain.DocumentExtraction, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, application_id, tenant_id, document_type, record, encrypted_fields,
			  has_encrypted_data, encrypted_at, created_at, updated_at
			  FROM document_extractions
			  WHERE application_id = ?
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
