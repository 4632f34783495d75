// @title        Dough Proofing Planner API
// @version      1.0
// @description  Plans dough fermentation against a room temperature schedule.
// @host         localhost:8080
// @BasePath     /
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "controlling_fermentation/docs"
	"controlling_fermentation/internal/config"
	"controlling_fermentation/internal/handlers"
	"controlling_fermentation/internal/logger"
	"controlling_fermentation/internal/repository"
	"controlling_fermentation/internal/repository/db"
	"controlling_fermentation/internal/server"
	"controlling_fermentation/internal/service"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configDir string

	root := &cobra.Command{
		Use:           "proofing",
		Short:         "Dough proofing planner",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configDir, "config", "configs", "directory holding config.yml")

	root.AddCommand(newServeCmd(&configDir))
	root.AddCommand(newPlanCmd(&configDir))
	root.AddCommand(newSolveCmd(&configDir))
	return root
}

// app is what every command needs: config, logger, an open database and the services on top of it.
type app struct {
	cfg      config.Config
	log      *logger.Logger
	db       *sql.DB
	services *service.Service
}

func loadApp(configDir string) (*app, error) {
	cfg, err := config.Load(configDir)
	if err != nil {
		return nil, err
	}
	log := logger.Get(cfg.LogLevel)

	conn, err := db.InitDB(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("init sqlite: %w", err)
	}

	repos := repository.NewRepository(conn)
	return &app{
		cfg:      cfg,
		log:      log,
		db:       conn,
		services: service.NewService(repos, log),
	}, nil
}

func (a *app) close() {
	if err := a.db.Close(); err != nil {
		a.log.Errorw("failed to close sqlite", "err", err)
	}
}

func newServeCmd(configDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the live tracker",
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := loadApp(*configDir)
			if err != nil {
				return err
			}
			defer a.close()
			return serve(a)
		},
	}
}

func serve(a *app) error {
	apiHandler := handlers.NewHandler(a.services, a.log)

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if a.cfg.LiveEnabled {
		a.log.Infow("live tracker enabled", "tick", a.cfg.LiveTick.String())
		go a.services.Tracker.Run(ctx, a.cfg.LiveTick)
	}

	srv := &server.Server{}
	errCh := runHTTPServer(srv, a.cfg.Port, apiHandler, a.log)

	return waitForShutdown(cancel, srv, errCh, a.log)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		log.Infow("http server listening", "port", port)
		errCh <- srv.Run(port, handler.InitRoutes())
	}()
	return errCh
}

// waitForShutdown blocks until a termination signal or a server failure, then shuts down gracefully.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, errCh <-chan error, log *logger.Logger) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case <-quit:
	case err := <-errCh:
		cancel()
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	}

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}
