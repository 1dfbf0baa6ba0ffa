package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	migrationUsecase "github.com/verdantpay/onboarding/internal/migration/usecase"
)

// RunEncryptRecords executes the bulk encryption migration for one table.
// It pages through rows that have not yet been encrypted, splits each record
// into its masked projection and encrypted-field map, and writes the result
// back. With dryRun the rows are scanned and verified but nothing is written.
func RunEncryptRecords(
	ctx context.Context,
	runner *migrationUsecase.Runner,
	logger *slog.Logger,
	writer io.Writer,
	table string,
	batchSize int,
	dryRun bool,
	format string,
) error {
	if batchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}

	logger.Info("starting bulk encryption",
		slog.String("table", table),
		slog.Int("batch_size", batchSize),
		slog.Bool("dry_run", dryRun),
	)

	result, err := runner.Run(ctx, migrationUsecase.Options{
		BatchSize: batchSize,
		DryRun:    dryRun,
	})
	if err != nil {
		return fmt.Errorf("bulk encryption failed: %w", err)
	}

	logger.Info("bulk encryption completed",
		slog.String("table", table),
		slog.Int("scanned", result.Scanned),
		slog.Int("migrated", result.Migrated),
		slog.Int("already_encrypted", result.AlreadyEncrypted),
		slog.Int("no_sensitive_data", result.NoSensitiveData),
		slog.Int("failed", result.Failed),
	)

	if format == "json" {
		output := map[string]any{
			"table":             table,
			"dry_run":           dryRun,
			"scanned":           result.Scanned,
			"migrated":          result.Migrated,
			"already_encrypted": result.AlreadyEncrypted,
			"no_sensitive_data": result.NoSensitiveData,
			"failed":            result.Failed,
		}
		encoder := json.NewEncoder(writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(output); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
	} else {
		if dryRun {
			fmt.Fprintf(writer, "Dry run: no rows were written.\n")
		}
		fmt.Fprintf(writer, "Table:              %s\n", table)
		fmt.Fprintf(writer, "Scanned:            %d\n", result.Scanned)
		fmt.Fprintf(writer, "Migrated:           %d\n", result.Migrated)
		fmt.Fprintf(writer, "Already encrypted:  %d\n", result.AlreadyEncrypted)
		fmt.Fprintf(writer, "No sensitive data:  %d\n", result.NoSensitiveData)
		fmt.Fprintf(writer, "Failed:             %d\n", result.Failed)
	}

	if result.Failed > 0 {
		return fmt.Errorf("%d rows failed to encrypt; rerun after investigating", result.Failed)
	}

	return nil
}
