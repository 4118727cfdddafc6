package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"article-service/internal/config"
	"article-service/internal/infra/db"
	"article-service/internal/observability/logging"
	pkgconfig "article-service/pkg/config"
)

// @title           Article Service API
// @version         1.0
// @description     記事の作成と取得を提供する REST API

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// buildVersion is overridden at link time with -ldflags "-X main.buildVersion=...".
var buildVersion = "dev"

// flags holds command-line overrides. Empty values leave the loaded
// configuration untouched.
type flags struct {
	configPath  string
	addr        string
	driver      string
	databaseURL string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags

	root := &cobra.Command{
		Use:           "article-service",
		Short:         "Serve the article HTTP API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// .env は任意
			if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("load .env: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := setup(f)
			if err != nil {
				return err
			}
			if err := serve(cmd.Context(), cfg, logger); err != nil {
				logger.Error("server failed", slog.Any("error", err))
				return err
			}
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "path to a YAML config file (env: CONFIG_FILE)")
	pf.StringVar(&f.driver, "driver", "", "database driver: postgres or sqlite (env: DATABASE_DRIVER)")
	pf.StringVar(&f.databaseURL, "database-url", "", "database connection URL (env: DATABASE_URL)")
	root.Flags().StringVar(&f.addr, "addr", "", "listen address (env: HTTP_ADDR)")

	root.AddCommand(newMigrateCmd(&f), newVersionCmd())
	return root
}

func newMigrateCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the articles table if it does not exist",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := setup(*f)
			if err != nil {
				return err
			}

			database, err := db.Open(cmd.Context(), cfg.Database)
			if err != nil {
				logger.Error("failed to open database", slog.Any("error", err))
				return err
			}
			defer func() { _ = database.Close() }()

			if err := db.MigrateUp(cmd.Context(), database, cfg.Database.Driver); err != nil {
				logger.Error("failed to migrate database", slog.Any("error", err))
				return err
			}
			logger.Info("migration completed", slog.String("driver", cfg.Database.Driver))
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the service version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), pkgconfig.GetEnvString("VERSION", buildVersion))
		},
	}
}

// setup loads and validates configuration, then installs the default logger.
func setup(f flags) (*config.Config, *slog.Logger, error) {
	path := f.configPath
	if path == "" {
		path = pkgconfig.GetEnvString("CONFIG_FILE", "")
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Version == "dev" {
		cfg.Version = buildVersion
	}
	applyFlags(cfg, f)

	logger := logging.New(os.Stdout, cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", slog.Any("error", err))
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, logger, nil
}

func applyFlags(cfg *config.Config, f flags) {
	if f.addr != "" {
		cfg.HTTP.Addr = f.addr
	}
	if f.driver != "" {
		cfg.Database.Driver = f.driver
	}
	if f.databaseURL != "" {
		cfg.Database.DSN = f.databaseURL
	}
}
