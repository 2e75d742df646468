package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/at-ishikawa/kioku/internal/bootstrap"
	"github.com/at-ishikawa/kioku/internal/card"
	"github.com/at-ishikawa/kioku/internal/config"
	"github.com/at-ishikawa/kioku/internal/database"
	"github.com/at-ishikawa/kioku/internal/learning"
	"github.com/at-ishikawa/kioku/internal/schedule"
	"github.com/at-ishikawa/kioku/internal/server"
	"github.com/at-ishikawa/kioku/internal/study"
)

var configFile string

func main() {
	var debugMode bool
	rootCmd := &cobra.Command{
		Use:           "kioku-server",
		Short:         "Kioku study service HTTP server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(debugMode)
			return run(cmd.Context())
		},
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug mode")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	app := bootstrap.New()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}
	policy, err := study.PolicyFromConfig(cfg.Scheduler)
	if err != nil {
		return fmt.Errorf("study.PolicyFromConfig() > %w", err)
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("database.Open() > %w", err)
	}
	service := study.NewService(
		card.NewDBRepository(db),
		schedule.NewDBRepository(db),
		learning.NewDBRepository(db),
		policy,
	)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: server.WithCORS(h2c.NewHandler(newMux(service), &http2.Server{}), cfg.Server.CORS.AllowedOrigins),
	}
	// Hooks run in reverse order, so the database outlives in-flight requests.
	app.AddShutdownHook("db", func(context.Context) error {
		return db.Close()
	})
	app.AddShutdownHook("http", srv.Shutdown)

	return app.Run(ctx, func(ctx context.Context) error {
		slog.Info("starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
}

func newMux(service server.StudyService) *http.ServeMux {
	path, h := server.NewStudyHandler(service).Handler()
	mux := http.NewServeMux()
	mux.Handle(path, h)
	return mux
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}

func setupLogger(debugMode bool) {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})),
	)
}
