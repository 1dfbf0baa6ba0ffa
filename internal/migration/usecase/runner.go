// Package usecase implements the bulk encryption migration over existing
// plaintext rows. The runner walks a table in primary-key order, splits each
// record into its masked projection and encrypted-field map, verifies the
// result against a keyed checksum of the original plaintext, and persists
// each row in its own transaction. Runs are idempotent: rows already marked
// encrypted are never fetched again, and a re-run after a partial failure
// picks up exactly the rows that did not complete.
package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/verdantpay/onboarding/internal/database"
	apperrors "github.com/verdantpay/onboarding/internal/errors"
	migrationService "github.com/verdantpay/onboarding/internal/migration/service"
	piiDomain "github.com/verdantpay/onboarding/internal/pii/domain"
	piiService "github.com/verdantpay/onboarding/internal/pii/service"
)

// Row is the migration view of a record-bearing table row. Only the columns
// the migration touches are loaded.
type Row struct {
	ID               uuid.UUID
	Record           piiDomain.Record
	EncryptedFields  piiDomain.EncryptedFieldMap
	HasEncryptedData bool
	EncryptedAt      *time.Time
}

// RowRepository defines the persistence operations the migration runner
// needs. Implementations exist for the merchant application and document
// extraction tables on both supported databases.
type RowRepository interface {
	// ListPending returns up to limit rows that have not been encrypted yet,
	// with IDs greater than afterID, in ascending ID order. IDs are UUIDv7,
	// so this walks the table roughly in insertion order.
	ListPending(ctx context.Context, afterID uuid.UUID, limit int) ([]*Row, error)

	// Save persists a row's record, encrypted-field map, and encryption
	// marker.
	Save(ctx context.Context, row *Row) error
}

// Options controls a migration run.
type Options struct {
	// BatchSize is the number of rows fetched per page. Defaults to 100.
	BatchSize int

	// DryRun walks and verifies every pending row without writing anything.
	DryRun bool
}

// Result summarizes a migration run.
type Result struct {
	// Scanned counts every pending row fetched.
	Scanned int
	// Migrated counts rows whose sensitive fields were encrypted and saved
	// (or would have been, in a dry run).
	Migrated int
	// AlreadyEncrypted counts rows skipped because every sensitive value
	// already looks like ciphertext from an earlier interrupted run.
	AlreadyEncrypted int
	// NoSensitiveData counts rows with no catalog field present; they are
	// marked encrypted with an empty map so they are not refetched.
	NoSensitiveData int
	// Failed counts rows left untouched after an encryption or verification
	// failure.
	Failed int
}

const defaultBatchSize = 100

// Runner migrates one table's plaintext rows to field-level encryption.
type Runner struct {
	txManager   database.TxManager
	rows        RowRepository
	codec       piiService.RecordCodec
	cipher      piiService.FieldCipher
	checksummer migrationService.RecordChecksummer
	logger      *slog.Logger
}

// NewRunner creates a migration runner for one table.
func NewRunner(
	txManager database.TxManager,
	rows RowRepository,
	codec piiService.RecordCodec,
	cipher piiService.FieldCipher,
	checksummer migrationService.RecordChecksummer,
	logger *slog.Logger,
) *Runner {
	return &Runner{
		txManager:   txManager,
		rows:        rows,
		codec:       codec,
		cipher:      cipher,
		checksummer: checksummer,
		logger:      logger,
	}
}

// Run walks every pending row and encrypts its sensitive fields. Failed rows
// are left untouched and do not stop the run; the returned Result reports
// them. Run returns an error only when a page cannot be fetched or the
// context is canceled.
func (r *Runner) Run(ctx context.Context, opts Options) (Result, error) {
	batchSize := opts.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	var result Result
	afterID := uuid.Nil

	for {
		if err := ctx.Err(); err != nil {
			return result, apperrors.Wrap(err, "migration interrupted")
		}

		rows, err := r.rows.ListPending(ctx, afterID, batchSize)
		if err != nil {
			return result, apperrors.Wrap(err, "failed to fetch pending rows")
		}
		if len(rows) == 0 {
			break
		}

		for _, row := range rows {
			result.Scanned++
			r.migrateRow(ctx, row, opts.DryRun, &result)
		}

		// Keyset pagination: failed rows stay pending but are behind the
		// cursor, so they cannot be refetched within this run.
		afterID = rows[len(rows)-1].ID
	}

	r.logger.Info("migration run complete",
		"scanned", result.Scanned,
		"migrated", result.Migrated,
		"already_encrypted", result.AlreadyEncrypted,
		"no_sensitive_data", result.NoSensitiveData,
		"failed", result.Failed,
		"dry_run", opts.DryRun,
	)

	return result, nil
}

// migrateRow processes a single row, updating the result counters.
func (r *Runner) migrateRow(ctx context.Context, row *Row, dryRun bool, result *Result) {
	if row.HasEncryptedData {
		// ListPending filters these out; guard anyway.
		result.AlreadyEncrypted++
		return
	}

	values := r.codec.SensitiveValues(row.Record)

	if len(values) == 0 {
		// Mark the row so it is not refetched on the next run.
		result.NoSensitiveData++
		if dryRun {
			return
		}
		if err := r.saveRow(ctx, row, row.Record, piiDomain.EncryptedFieldMap{}); err != nil {
			result.NoSensitiveData--
			result.Failed++
			r.logger.Error("failed to mark row without sensitive data",
				"row_id", row.ID, "error", err)
		}
		return
	}

	if r.allLikelyCiphertext(values) {
		// An earlier run encrypted the values in place but died before
		// setting the marker. The heuristic can misfire on plaintext that
		// happens to be long base64, so log loudly instead of silently
		// re-encrypting ciphertext.
		result.AlreadyEncrypted++
		r.logger.Warn("row values already look encrypted, skipping",
			"row_id", row.ID, "fields", len(values))
		return
	}

	checksum := r.checksummer.Sum(values)

	publicRecord, encryptedFields, err := r.codec.Split(row.Record)
	if err != nil {
		result.Failed++
		r.logger.Error("failed to encrypt row", "row_id", row.ID, "error", err)
		return
	}

	// Trial merge: prove the encrypted row decrypts back to exactly the
	// plaintext we started from before anything is written.
	merged, fieldErrors := r.codec.Merge(publicRecord, encryptedFields)
	if len(fieldErrors) > 0 {
		result.Failed++
		r.logger.Error("row failed decryption verification",
			"row_id", row.ID, "field_errors", len(fieldErrors))
		return
	}
	if !r.checksummer.Verify(r.codec.SensitiveValues(merged), checksum) {
		result.Failed++
		r.logger.Error("row failed checksum verification", "row_id", row.ID)
		return
	}

	if dryRun {
		result.Migrated++
		return
	}

	if err := r.saveRow(ctx, row, publicRecord, encryptedFields); err != nil {
		result.Failed++
		r.logger.Error("failed to save encrypted row", "row_id", row.ID, "error", err)
		return
	}

	result.Migrated++
}

// saveRow persists the encrypted form of a row in its own transaction.
func (r *Runner) saveRow(
	ctx context.Context,
	row *Row,
	record piiDomain.Record,
	encryptedFields piiDomain.EncryptedFieldMap,
) error {
	now := time.Now().UTC()
	row.Record = record
	row.EncryptedFields = encryptedFields
	row.HasEncryptedData = true
	row.EncryptedAt = &now

	return r.txManager.WithTx(ctx, func(txCtx context.Context) error {
		return r.rows.Save(txCtx, row)
	})
}

// allLikelyCiphertext reports whether every sensitive value in the map looks
// like field cipher output.
func (r *Runner) allLikelyCiphertext(values map[string]string) bool {
	for _, value := range values {
		if !r.cipher.IsLikelyCiphertext(value) {
			return false
		}
	}
	return true
}
