// Package repository implements the migration runner's row access for the
// record-bearing tables. Both tables expose the same five columns to the
// migration, so one repository per database driver serves either table.
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/verdantpay/onboarding/internal/database"
	apperrors "github.com/verdantpay/onboarding/internal/errors"
	migrationUsecase "github.com/verdantpay/onboarding/internal/migration/usecase"
)

// Table names the migration runner can operate on.
const (
	TableMerchantApplications = "merchant_applications"
	TableDocumentExtractions  = "document_extractions"
)

// PostgreSQLRowRepository implements migration row access for PostgreSQL
// databases.
type PostgreSQLRowRepository struct {
	db    *sql.DB
	table string
}

// NewPostgreSQLRowRepository creates a migration row repository for the
// given table. The table name must be one of the Table constants; it is
// interpolated into SQL text.
func NewPostgreSQLRowRepository(db *sql.DB, table string) *PostgreSQLRowRepository {
	return &PostgreSQLRowRepository{db: db, table: table}
}

// ListPending returns up to limit unencrypted rows with IDs greater than
// afterID, in ascending ID order.
func (p *PostgreSQLRowRepository) ListPending(
	ctx context.Context,
	afterID uuid.UUID,
	limit int,
) ([]*migrationUsecase.Row, error) {
	querier := database.GetTx(ctx, p.db)

	query := fmt.Sprintf(`SELECT id, record, encrypted_fields, has_encrypted_data, encrypted_at
			  FROM %s
			  WHERE has_encrypted_data = false AND id > $1
			  ORDER BY id
			  LIMIT $2`, p.table)

	rows, err := querier.QueryContext(ctx, query, afterID, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list pending rows")
	}
	defer rows.Close()

	return collectRows(rows)
}

// Save persists a row's record, encrypted-field map, and encryption marker.
func (p *PostgreSQLRowRepository) Save(ctx context.Context, row *migrationUsecase.Row) error {
	querier := database.GetTx(ctx, p.db)

	query := fmt.Sprintf(`UPDATE %s
			  SET record = $1, encrypted_fields = $2, has_encrypted_data = $3,
			      encrypted_at = $4, updated_at = $5
			  WHERE id = $6`, p.table)

	result, err := querier.ExecContext(
		ctx,
		query,
		row.Record,
		row.EncryptedFields,
		row.HasEncryptedData,
		row.EncryptedAt,
		time.Now().UTC(),
		row.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to save migrated row")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check save result")
	}
	if affected == 0 {
		return apperrors.Wrap(apperrors.ErrNotFound, "migrated row no longer exists")
	}
	return nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scanning.
type rowScanner interface {
	Scan(dest ...any) error
}

// collectRows scans every row in the result set.
func collectRows(rows *sql.Rows) ([]*migrationUsecase.Row, error) {
	var collected []*migrationUsecase.Row
	for rows.Next() {
		row, err := scanRow(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan pending row")
		}
		collected = append(collected, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate pending rows")
	}
	return collected, nil
}

// scanRow scans one migration row.
func scanRow(scanner rowScanner) (*migrationUsecase.Row, error) {
	var row migrationUsecase.Row
	err := scanner.Scan(
		&row.ID,
		&row.Record,
		&row.EncryptedFields,
		&row.HasEncryptedData,
		&row.EncryptedAt,
	)
	if err != nil {
		return nil, err
	}
	return &row, nil
}
