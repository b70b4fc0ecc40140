package daemon

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/resolvehq/resolve/internal/api"
	"github.com/resolvehq/resolve/internal/app/tracker"
	"github.com/resolvehq/resolve/internal/engine"
	_ "github.com/resolvehq/resolve/internal/infra/metrics" // Register Prometheus metrics
	"github.com/resolvehq/resolve/internal/infra/sqlite"
)

// Daemon is the core Resolve runtime. It wires together all services.
type Daemon struct {
	Config  Config
	DB      *sqlite.DB
	Tracker *tracker.Service
	Server  *api.Server
	cancel  context.CancelFunc
}

// New creates and initializes a Daemon with all services wired.
func New(version string) (*Daemon, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return NewWithConfig(cfg, version)
}

// NewWithConfig creates a Daemon with the given configuration.
func NewWithConfig(cfg Config, version string) (*Daemon, error) {
	dir := cfg.Storage.Dir
	if dir == "" {
		dir = resolveHome()
	}
	db, err := sqlite.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	eng := engine.New(engine.Config{
		HonestyMinimum: cfg.Engine.HonestyMinimum,
		LockInDays:     cfg.Engine.LockInDays,
	})
	svc := tracker.New(db, db, db, eng)

	srv := api.NewServer(svc, db, version)
	if cfg.API.Metrics {
		srv.EnableMetrics()
	}

	return &Daemon{
		Config:  cfg,
		DB:      db,
		Tracker: svc,
		Server:  srv,
	}, nil
}

// Serve starts the HTTP server and blocks until shutdown.
func (d *Daemon) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	addr := fmt.Sprintf("%s:%d", d.Config.API.Host, d.Config.API.Port)

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      d.Server.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  2 * time.Minute,
	}

	// Graceful shutdown on signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigCh:
		case <-ctx.Done():
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		_ = httpServer.Shutdown(shutdownCtx)
		_ = d.DB.Close()
	}()

	fmt.Printf("Resolve serving on http://%s\n", addr)
	if d.Config.API.Metrics {
		fmt.Printf("  Metrics: http://%s/metrics\n", addr)
	}

	if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close shuts down all daemon resources.
func (d *Daemon) Close() {
	if d.cancel != nil {
		d.cancel()
	}
	if d.DB != nil {
		_ = d.DB.Close()
	}
}
