package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/daybalancer/findatime/cmd/cli/commands"
	"github.com/daybalancer/findatime/internal/config"
	"github.com/daybalancer/findatime/pkg/db"
	"github.com/daybalancer/findatime/pkg/filestore"
	"github.com/daybalancer/findatime/pkg/postgres"
	"github.com/daybalancer/findatime/pkg/utils/logging"
)

var (
	configPath string
	app        = &commands.AppContext{}
	cleanup    func()
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "daybalancer",
		Short: "DayBalancer - find a time that works for everyone",
		Long: `Create a scheduling session, share its code, and let your people
mark when they're free. The results view shows who is free when and
ranks the best common times.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if cleanup != nil {
				cleanup()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (defaults to daybalancer_config.yaml)")

	rootCmd.AddCommand(commands.CreateSessionCmd(app))
	rootCmd.AddCommand(commands.JoinSessionCmd(app))
	rootCmd.AddCommand(commands.SubmitAvailabilityCmd(app))
	rootCmd.AddCommand(commands.ViewResultsCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up the logger, config, storage backend, and session store
func initApp() error {
	ctx := context.Background()

	logger, err := logging.InitLogger("cli")
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Debug("Loading configuration")
	var cfg *config.Config
	if configPath != "" {
		cfg, err = config.LoadFromPath(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var backend db.Backend
	var closeBackend func()
	switch cfg.StorageBackend {
	case config.BackendPostgres:
		logger.Debug("Connecting to PostgreSQL backend")
		pg, err := postgres.NewBackend(ctx, cfg.PostgresURL)
		if err != nil {
			return fmt.Errorf("failed to connect to postgres backend: %w", err)
		}
		backend = pg
		closeBackend = pg.Close
	default:
		logger.Debug("Using file backend", zap.String("path", cfg.StorePath))
		backend = filestore.NewBackend(cfg.StorePath)
	}

	store := db.NewStore(ctx, backend, logger)

	app.Cfg = cfg
	app.Store = store
	app.Logger = logger
	app.Ctx = ctx

	cleanup = func() {
		store.Close()
		if closeBackend != nil {
			closeBackend()
		}
		logger.Sync()
	}

	return nil
}
