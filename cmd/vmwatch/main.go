package main

import (
	"fmt"
	"os"

	"github.com/de-tools/vmwatch/pkg/runtime/terminal"
	"github.com/de-tools/vmwatch/pkg/runtime/terminal/export"
	"github.com/de-tools/vmwatch/pkg/services/audit"
	"github.com/de-tools/vmwatch/pkg/services/config"
	"github.com/de-tools/vmwatch/pkg/services/inventory"
	"github.com/de-tools/vmwatch/pkg/services/notify"
	"github.com/de-tools/vmwatch/pkg/services/secrets"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfgPath string
	verbose bool
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "vmwatch",
		Short: "Audit active VMs and report them to a chat channel",
		RunE:  runAudit,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "vmwatch.yaml",
		"Path to the vmwatch config file")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"Print the delivery outcome of every message")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runAudit(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().
		Timestamp().
		Str("run_id", uuid.NewString()).
		Logger()
	ctx := logger.WithContext(cmd.Context())

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	decrypter, err := secrets.NewKMSDecrypter(ctx, cfg.Region)
	if err != nil {
		return fmt.Errorf("failed to create KMS decrypter: %w", err)
	}

	job := audit.NewJob(
		secrets.NewResolver(decrypter, cfg.Encrypted),
		inventory.NewFetcher(cfg.InventoryEndpoint, cfg.HTTPTimeout),
		notify.WebhookFactory(cfg.HTTPTimeout),
		cfg,
	)

	report, err := job.Run(ctx)
	if err != nil {
		return err
	}

	if verbose {
		return export.NewReporter(os.Stdout).Handle(&report)
	}
	return terminal.NewReporter(os.Stdout).Handle(&report)
}
