package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/verdantpay/onboarding/cmd/app/commands"
	"github.com/verdantpay/onboarding/internal/app"
	"github.com/verdantpay/onboarding/internal/config"
	migrationRepository "github.com/verdantpay/onboarding/internal/migration/repository"
	migrationUsecase "github.com/verdantpay/onboarding/internal/migration/usecase"
)

func getEncryptionCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "encrypt-applications",
			Usage: "Encrypt sensitive fields of existing merchant applications",
			Flags: encryptFlags(),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return runEncrypt(ctx, cmd, migrationRepository.TableMerchantApplications,
					func(container *app.Container) (*migrationUsecase.Runner, error) {
						return container.ApplicationMigrationRunner()
					})
			},
		},
		{
			Name:  "encrypt-extractions",
			Usage: "Encrypt sensitive fields of existing document extractions",
			Flags: encryptFlags(),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return runEncrypt(ctx, cmd, migrationRepository.TableDocumentExtractions,
					func(container *app.Container) (*migrationUsecase.Runner, error) {
						return container.ExtractionMigrationRunner()
					})
			},
		},
		{
			Name:  "generate-field-key",
			Usage: "Generate a new 256-bit field encryption key",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunGenerateFieldKey(commands.DefaultIO().Writer)
			},
		},
	}
}

func encryptFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "batch-size",
			Aliases: []string{"b"},
			Value:   0,
			Usage:   "Rows per page (defaults to MIGRATION_BATCH_SIZE)",
		},
		&cli.BoolFlag{
			Name:    "dry-run",
			Aliases: []string{"n"},
			Value:   false,
			Usage:   "Scan and verify rows without writing",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Value:   "text",
			Usage:   "Output format: 'text' or 'json'",
		},
	}
}

func runEncrypt(
	ctx context.Context,
	cmd *cli.Command,
	table string,
	runnerFn func(*app.Container) (*migrationUsecase.Runner, error),
) error {
	cfg := config.Load()
	container := app.NewContainer(cfg)
	defer func() { _ = container.Shutdown(ctx) }()

	runner, err := runnerFn(container)
	if err != nil {
		return err
	}

	batchSize := int(cmd.Int("batch-size"))
	if batchSize <= 0 {
		batchSize = cfg.MigrationBatchSize
	}

	return commands.RunEncryptRecords(
		ctx,
		runner,
		container.Logger(),
		commands.DefaultIO().Writer,
		table,
		batchSize,
		cmd.Bool("dry-run"),
		cmd.String("format"),
	)
}
