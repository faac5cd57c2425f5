package main

import (
	"context"
	"fmt"

	"github.com/ncobase/microservicio/config"
	"github.com/ncobase/microservicio/data"
	"github.com/ncobase/microservicio/logging/logger"
	"github.com/ncobase/microservicio/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:           "microservicio",
		Short:         "REST API for usuarios and productos",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), configFile)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configFile, "conf", "c", "", "config file path (optional, env vars take precedence)")

	rootCmd.AddCommand(
		newServeCommand(&configFile),
		newMigrateCommand(&configFile),
		newVersionCommand(),
	)

	return rootCmd
}

func newServeCommand(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Args:  cobra.NoArgs,
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), *configFile)
		},
	}
}

func newMigrateCommand(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:     "migrate",
		Args:    cobra.NoArgs,
		Aliases: []string{"m"},
		Short:   "Create missing tables and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(*configFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			return runMigrate(cmd.Context(), cfg)
		},
	}
}

func newVersionCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.GetVersionInfo()
			if !asJSON {
				fmt.Fprintln(cmd.OutOrStdout(), info.String())
				return nil
			}
			out, err := info.JSON()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}

func runServe(ctx context.Context, configFile string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	app, cleanup, err := InitializeApp(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}
	defer cleanup()

	cfg.Watch(func(next *config.Config) {
		logger.StdLogger().SetLevelFromConfig(next.Logger)
		logger.Info(ctx, "configuration reloaded", "file", next.Path(), "level", next.Logger.Level)
	})

	return app.Run(ctx)
}

// runMigrate opens the database, creates missing tables and closes it.
// Unlike startup, a failed migration is returned to the caller.
func runMigrate(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	_, closeLog, err := logger.ProvideLogger(cfg.Logger)
	if err != nil {
		return err
	}
	defer closeLog()

	d, cleanup, err := data.New(ctx, cfg.Data)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := d.Migrate(ctx); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	logger.Info(ctx, "database migrated", "driver", d.Driver.Name())
	return nil
}
