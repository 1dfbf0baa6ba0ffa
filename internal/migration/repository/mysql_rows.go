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

// MySQLRowRepository implements migration row access for MySQL databases.
// Identical behavior to the PostgreSQL repository with MySQL placeholder
// syntax.
type MySQLRowRepository struct {
	db    *sql.DB
	table string
}

// NewMySQLRowRepository creates a migration row repository for the given
// table. The table name must be one of the Table constants; it is
// interpolated into SQL text.
func NewMySQLRowRepository(db *sql.DB, table string) *MySQLRowRepository {
	return &MySQLRowRepository{db: db, table: table}
}

// ListPending returns up to limit unencrypted rows with IDs greater than
// afterID, in ascending ID order.
func (m *MySQLRowRepository) ListPending(
	ctx context.Context,
	afterID uuid.UUID,
	limit int,
) ([]*migrationUsecase.Row, error) {
	querier := database.GetTx(ctx, m.db)

	query := fmt.Sprintf(`SELECT id, record, encrypted_fields, has_encrypted_data, encrypted_at
			  FROM %s
			  WHERE has_encrypted_data = false AND id > ?
			  ORDER BY id
			  LIMIT ?`, m.table)

	rows, err := querier.QueryContext(ctx, query, afterID, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list pending rows")
	}
	defer rows.Close()

	return collectRows(rows)
}

// Save persists a row's record, encrypted-field map, and encryption marker.
func (m *MySQLRowRepository) Save(ctx context.Context, row *migrationUsecase.Row) error {
	querier := database.GetTx(ctx, m.db)

	query := fmt.Sprintf(`UPDATE %s
			  SET record = ?, encrypted_fields = ?, has_encrypted_data = ?,
			      encrypted_at = ?, updated_at = ?
			  WHERE id = ?`, m.table)

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
