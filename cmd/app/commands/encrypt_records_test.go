package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	databaseMocks "github.com/verdantpay/onboarding/internal/database/mocks"
	migrationService "github.com/verdantpay/onboarding/internal/migration/service"
	migrationUsecase "github.com/verdantpay/onboarding/internal/migration/usecase"
	piiDomain "github.com/verdantpay/onboarding/internal/pii/domain"
	piiService "github.com/verdantpay/onboarding/internal/pii/service"
)

// memoryRowRepository is a minimal in-memory RowRepository for command tests.
type memoryRowRepository struct {
	rows []*migrationUsecase.Row
}

func (m *memoryRowRepository) ListPending(
	_ context.Context,
	afterID uuid.UUID,
	limit int,
) ([]*migrationUsecase.Row, error) {
	var pending []*migrationUsecase.Row
	for _, row := range m.rows {
		if !row.HasEncryptedData && bytes.Compare(row.ID[:], afterID[:]) > 0 {
			pending = append(pending, row)
		}
	}
	sort.Slice(pending, func(i, j int) bool {
		return bytes.Compare(pending[i].ID[:], pending[j].ID[:]) < 0
	})
	if len(pending) > limit {
		pending = pending[:limit]
	}
	return pending, nil
}

func (m *memoryRowRepository) Save(_ context.Context, row *migrationUsecase.Row) error {
	for i, existing := range m.rows {
		if existing.ID == row.ID {
			m.rows[i] = row
			return nil
		}
	}
	m.rows = append(m.rows, row)
	return nil
}

func testEncryptionRunner(t *testing.T, rows migrationUsecase.RowRepository) *migrationUsecase.Runner {
	t.Helper()

	key, err := piiDomain.ParseFieldKey(
		"000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f",
	)
	require.NoError(t, err)

	cipher, err := piiService.NewAESFieldCipher(key)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	codec := piiService.NewRecordCodec(piiDomain.MerchantApplicationCatalog(), cipher, logger)

	checksummer, err := migrationService.NewRecordChecksummer(key)
	require.NoError(t, err)

	return migrationUsecase.NewRunner(
		databaseMocks.PassthroughTxManager{}, rows, codec, cipher, checksummer, logger,
	)
}

func TestRunEncryptRecords(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("text output", func(t *testing.T) {
		repo := &memoryRowRepository{rows: []*migrationUsecase.Row{
			{
				ID:     uuid.Must(uuid.NewV7()),
				Record: piiDomain.Record{"federalTaxIdNumber": "12-3456789"},
			},
		}}
		runner := testEncryptionRunner(t, repo)

		var out bytes.Buffer
		err := RunEncryptRecords(ctx, runner, logger, &out, "merchant_applications", 100, false, "text")
		require.NoError(t, err)

		assert.Contains(t, out.String(), "Migrated:           1")
		assert.True(t, repo.rows[0].HasEncryptedData)
	})

	t.Run("json output", func(t *testing.T) {
		repo := &memoryRowRepository{rows: []*migrationUsecase.Row{
			{
				ID:     uuid.Must(uuid.NewV7()),
				Record: piiDomain.Record{"federalTaxIdNumber": "12-3456789"},
			},
		}}
		runner := testEncryptionRunner(t, repo)

		var out bytes.Buffer
		err := RunEncryptRecords(ctx, runner, logger, &out, "merchant_applications", 100, false, "json")
		require.NoError(t, err)

		var result map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &result))
		assert.Equal(t, float64(1), result["migrated"])
		assert.Equal(t, "merchant_applications", result["table"])
	})

	t.Run("dry run leaves rows untouched", func(t *testing.T) {
		repo := &memoryRowRepository{rows: []*migrationUsecase.Row{
			{
				ID:     uuid.Must(uuid.NewV7()),
				Record: piiDomain.Record{"federalTaxIdNumber": "12-3456789"},
			},
		}}
		runner := testEncryptionRunner(t, repo)

		var out bytes.Buffer
		err := RunEncryptRecords(ctx, runner, logger, &out, "merchant_applications", 100, true, "text")
		require.NoError(t, err)

		assert.Contains(t, out.String(), "Dry run")
		assert.False(t, repo.rows[0].HasEncryptedData)
	})

	t.Run("invalid batch size", func(t *testing.T) {
		runner := testEncryptionRunner(t, &memoryRowRepository{})

		var out bytes.Buffer
		err := RunEncryptRecords(ctx, runner, logger, &out, "merchant_applications", 0, false, "text")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "batch-size")
	})
}
