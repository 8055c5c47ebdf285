package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/cabaworks/axsync/internal/axonaut"
	"github.com/cabaworks/axsync/internal/config"
	"github.com/cabaworks/axsync/internal/notion"
	"github.com/cabaworks/axsync/internal/sync"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("sync failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		dryRun bool
		limit  int
	)

	cmd := &cobra.Command{
		Use:           "axsync",
		Short:         "One-way sync of Axonaut invoices and payments into Notion",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_ = godotenv.Load()

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			setupLogger(cfg.LogLevel)

			if cmd.Flags().Changed("dry-run") {
				cfg.DryRun = dryRun
			}

			return run(cmd.Context(), cfg, limit)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "log what would be synced without touching Notion")
	cmd.Flags().IntVar(&limit, "limit", axonaut.DefaultLimit, "maximum number of invoices to fetch")

	return cmd
}

func run(ctx context.Context, cfg *config.Config, limit int) error {
	slog.Info("starting Axonaut to Notion sync")

	if cfg.DryRun {
		slog.Warn("dry run enabled, no changes will be made")
	}

	source := axonaut.NewClient(cfg.Axonaut.BaseURL, cfg.Axonaut.APIKey, cfg.Axonaut.Timeout)
	store := notion.NewClient(cfg.Notion.BaseURL, cfg.Notion.APIKey, cfg.Notion.Timeout)

	svc := sync.NewService(source, store, sync.Options{
		InvoicesDBID: cfg.Notion.InvoicesDBID,
		PaymentsDBID: cfg.Notion.PaymentsDBID,
		DryRun:       cfg.DryRun,
		InvoiceLimit: limit,
	})

	report := svc.Run(ctx)

	slog.Info("sync finished",
		"invoices_synced", report.InvoicesSynced,
		"invoices_failed", report.InvoicesFailed,
		"payments_synced", report.PaymentsSynced,
		"payments_failed", report.PaymentsFailed)

	if report.Failed() {
		return fmt.Errorf("%d invoices and %d payments failed to sync",
			report.InvoicesFailed, report.PaymentsFailed)
	}

	return nil
}

func setupLogger(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}
