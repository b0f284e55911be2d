package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hms/hms/internal/cli"
	"github.com/hms/hms/internal/config"
	"github.com/hms/hms/internal/domain/appointment"
	"github.com/hms/hms/internal/domain/billing"
	"github.com/hms/hms/internal/domain/medicalrecord"
	"github.com/hms/hms/internal/domain/patient"
	"github.com/hms/hms/internal/domain/staff"
	"github.com/hms/hms/internal/platform/db"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hms",
		Short: "Hospital Management System",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu()
		},
	}

	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(initDBCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the interactive menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu()
		},
	}
}

func initDBCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init-db",
		Short: "Create the record tables if they do not exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			return db.EnsureSchema(ctx, pool)
		},
	}
}

func runMenu() error {
	// Logger
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Database
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	if err := db.EnsureSchema(ctx, pool); err != nil {
		logger.Fatal().Err(err).Msg("failed to ensure schema")
	}

	// Services
	patients := patient.NewService(patient.NewRepoPG(pool))
	staffSvc := staff.NewService(staff.NewRepoPG(pool))
	appointments := appointment.NewService(appointment.NewRepoPG(pool))
	records := medicalrecord.NewService(medicalrecord.NewRepoPG(pool))
	bills := billing.NewService(billing.NewRepoPG(pool))

	app := cli.New(os.Stdin, os.Stdout, logger, patients, staffSvc, appointments, records, bills)
	return app.Run(ctx)
}
