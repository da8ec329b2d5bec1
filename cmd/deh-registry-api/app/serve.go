package app

import (
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	registryapp "github.com/dataelementhub/dehub-registry/internal/app"
	"github.com/dataelementhub/dehub-registry/internal/config"
)

const (
	defaultGracefulTimeout = 30 * time.Second // Kubernetes-friendly shutdown time
)

func newServeCmd() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the registry API server",
		Long: `Start the registry API server to serve element relations and sources.

The server requires a configuration file (--config) that specifies:
- The PostgreSQL connection
- The authentication mode (anonymous or jwt)
- Optional telemetry settings

Run 'deh-registry-api migrate up' before the first start.`,
		RunE: runServe,
	}

	serveCmd.Flags().String("address", ":8080", "Address to listen on")
	serveCmd.Flags().String("config", "", "Path to configuration file (YAML format, required)")
	serveCmd.Flags().Duration("graceful-timeout", defaultGracefulTimeout, "Time allowed for in-flight requests on shutdown")

	for _, name := range []string{"address", "config", "graceful-timeout"} {
		if err := viper.BindPFlag(name, serveCmd.Flags().Lookup(name)); err != nil {
			slog.Error("Failed to bind flag", "flag", name, "error", err)
		}
	}

	if err := serveCmd.MarkFlagRequired("config"); err != nil {
		slog.Error("Failed to mark config flag as required", "error", err)
	}

	return serveCmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	configPath := viper.GetString("config")
	cfg, err := config.LoadConfig(config.WithConfigPath(configPath))
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	slog.Info("Loaded configuration",
		"path", configPath,
		"database_host", cfg.Database.Host,
		"database", cfg.Database.Database,
		"auth_mode", cfg.Auth.GetMode(),
		"authz_enabled", cfg.Authz.IsEnabled())

	registryApp, err := registryapp.NewRegistryApp(ctx,
		registryapp.WithConfig(cfg),
		registryapp.WithAddress(viper.GetString("address")),
		registryapp.WithGracefulTimeout(viper.GetDuration("graceful-timeout")),
	)
	if err != nil {
		return fmt.Errorf("failed to build application: %w", err)
	}

	return registryApp.Run(ctx)
}
