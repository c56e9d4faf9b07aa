package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/mood-village/server/internal/storage/postgres"
	"github.com/mood-village/server/internal/storage/seed"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load demo fixtures into the database",
	Long: `Insert demo events, lanterns, and replies into the configured postgres
database. The in-memory store seeds itself at startup and does not need
this command.

Fixture IDs are fixed, so running seed twice fails on duplicate keys
instead of doubling the data.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("config error: %w", err)
		}
		if cfg.Database.URL == "" {
			return fmt.Errorf("DATABASE_URL is required for seeding")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		store, err := postgres.Open(ctx, cfg.Database.URL, cfg.Database.MaxConnections)
		if err != nil {
			return fmt.Errorf("open storage: %w", err)
		}
		defer store.Close()

		if err := seed.Apply(ctx, store.Events(), store.Lanterns()); err != nil {
			return err
		}
		fmt.Println("seeded demo fixtures")
		return nil
	},
}
