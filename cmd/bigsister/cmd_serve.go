package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bigsister-lab/bigsister/internal/escalation"
	"github.com/bigsister-lab/bigsister/internal/ingestion"
	"github.com/bigsister-lab/bigsister/internal/projection"
	"github.com/bigsister-lab/bigsister/internal/server"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the ingestion and query HTTP server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		store, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		collab, err := collaborators(cfg)
		if err != nil {
			return err
		}

		trigger := escalation.NewTrigger(collab.Notifier, cfg.Escalation.Every, cfg.Escalation.LookbackMonths, cfg.Notify.Timeout)
		ingestionSvc := ingestion.NewService(store, trigger, collab.Identity, ingestion.Options{
			GuildID:       cfg.Ingestion.GuildID,
			DeriveModlogs: cfg.Ingestion.DeriveModlogs,
			MaxBodySizeMB: cfg.Server.MaxBodySizeMB,
		})
		projectionSvc := projection.NewService(store, collab, cfg.Privacy.DeniedChannels)

		srv := server.New(cfg.Server.Addr(), cfg.Server.Mode, store, ingestionSvc, projectionSvc)

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		slog.Info("Services initialized",
			"database", cfg.Database.Type,
			"notify", cfg.Notify.Type,
			"guild_id", cfg.Ingestion.GuildID,
			"derive_modlogs", cfg.Ingestion.DeriveModlogs,
			"escalation_every", cfg.Escalation.Every)

		if err := srv.Run(ctx); err != nil {
			return err
		}
		slog.Info("Shutdown complete")
		return nil
	},
}
