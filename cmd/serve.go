package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/secondopinion/internal/config"
	"github.com/ziadkadry99/secondopinion/internal/db"
	"github.com/ziadkadry99/secondopinion/internal/doctors"
	"github.com/ziadkadry99/secondopinion/internal/gate"
	"github.com/ziadkadry99/secondopinion/internal/initiative"
	"github.com/ziadkadry99/secondopinion/internal/legal"
	"github.com/ziadkadry99/secondopinion/internal/server"
	"github.com/ziadkadry99/secondopinion/internal/session"
	"github.com/ziadkadry99/secondopinion/internal/web"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site over HTTP",
	Long: `Starts the HTTP server. When gate.enforce is set every page is held behind
the preview password until the browser session has entered it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = servePort
		}

		database, err := openDatabase(cfg)
		if err != nil {
			return err
		}
		if database != nil {
			defer database.Close()
		} else {
			logger.Warn("server.data_dir is empty: initiative submissions will not be recorded")
		}

		backend := newSessionBackend(cfg.Session.Backend, database)
		sessions := session.NewManager(backend)

		site, err := newSite(cfg, database)
		if err != nil {
			return err
		}

		srv := server.New(server.Config{
			Port:     cfg.Server.Port,
			AllowAll: cfg.Server.AllowAllOrigins,
		}, logger)

		storage := func(w http.ResponseWriter, r *http.Request) gate.Storage {
			return sessions.Storage(w, r)
		}
		srv.Mount(site, gate.Middleware(gate.Config{
			Secret:  cfg.Gate.Secret,
			Enforce: cfg.Gate.Enforce,
		}, cfg.Site.Name, storage, logger))

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if maxIdle := cfg.SessionMaxIdle(); maxIdle > 0 {
			go pruneSessions(ctx, backend, maxIdle)
		}

		go func() {
			<-ctx.Done()
			logger.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("shutdown", zap.Error(err))
			}
		}()

		logger.Info("secondopinion starting",
			zap.String("version", Version),
			zap.Int("port", cfg.Server.Port),
			zap.Bool("gate", cfg.Gate.Enforce),
			zap.String("sessions", string(cfg.Session.Backend)),
		)

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "port to listen on (overrides server.port)")
	rootCmd.AddCommand(serveCmd)
}

// openDatabase opens the sqlite file under server.data_dir. It returns nil
// when no data directory is configured. Submission records use it whatever
// the session backend is.
func openDatabase(cfg *config.Config) (*db.DB, error) {
	if cfg.Server.DataDir == "" {
		return nil, nil
	}
	dbPath := filepath.Join(cfg.Server.DataDir, "secondopinion.db")
	database, err := db.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	logger.Debug("database opened", zap.String("path", dbPath))
	return database, nil
}

// newSessionBackend picks the configured backend. Validate guarantees a
// database for the sqlite backend.
func newSessionBackend(kind config.SessionBackend, database *db.DB) session.Backend {
	if kind == config.SessionSQLite && database != nil {
		return session.NewSQLBackend(database)
	}
	return session.NewMemoryBackend()
}

// newSite builds the page renderer. A nil database disables submission
// records; submissions are still relayed.
func newSite(cfg *config.Config, database *db.DB) (*web.Site, error) {
	lib, err := legal.Default()
	if err != nil {
		return nil, fmt.Errorf("loading legal documents: %w", err)
	}

	var store *initiative.Store
	if database != nil {
		store = initiative.NewStore(database)
	}
	client := initiative.NewClient(cfg.Initiative.Endpoint, cfg.InitiativeTimeout())
	logger.Debug("initiative relay",
		zap.String("endpoint", client.Endpoint()),
		zap.Bool("recorded", store != nil),
	)

	return web.New(web.Options{
		Name:       cfg.Site.Name,
		BaseURL:    cfg.Site.BaseURL,
		Legal:      lib,
		Doctors:    doctors.NewMockSource(),
		Initiative: initiative.NewService(client, store, logger),
		Logger:     logger,
	})
}

func pruneSessions(ctx context.Context, backend session.Backend, maxIdle time.Duration) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for {
		n, err := backend.Prune(ctx, time.Now().Add(-maxIdle))
		if err != nil && ctx.Err() == nil {
			logger.Warn("pruning sessions", zap.Error(err))
		} else if n > 0 {
			logger.Debug("pruned sessions", zap.Int64("count", n))
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
