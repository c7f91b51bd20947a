package main

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"coachmarket/internal/config"
	"coachmarket/internal/logging"
	"coachmarket/internal/repository/mongo"
)

var indexesTimeout time.Duration

var indexesCmd = &cobra.Command{
	Use:   "ensure-indexes",
	Short: "Create the MongoDB indexes and exit",
	RunE:  runEnsureIndexes,
}

func init() {
	indexesCmd.Flags().DurationVar(&indexesTimeout, "timeout", time.Minute, "time allowed for index creation")
}

func runEnsureIndexes(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logging.Setup(cfg.Log)

	client, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		return fmt.Errorf("connect mongo: %w", err)
	}
	defer func() {
		if err := mongo.DisconnectDB(client); err != nil {
			log.WithError(err).Error("Failed to disconnect MongoDB")
		}
	}()

	ctx, cancel := context.WithTimeout(cmd.Context(), indexesTimeout)
	defer cancel()
	if err := mongo.EnsureIndexes(ctx, client.Database(cfg.Database.Name)); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}
	log.WithField("database", cfg.Database.Name).Info("Indexes are up to date")
	return nil
}
