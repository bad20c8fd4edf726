package devserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/sitrack/internal/devserver/auth"
	"github.com/dmitrijs2005/sitrack/internal/devserver/config"
	"github.com/dmitrijs2005/sitrack/internal/devserver/records"
	"github.com/dmitrijs2005/sitrack/internal/devserver/users"
	"github.com/dmitrijs2005/sitrack/internal/logging"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	config config.Config
	logger logging.Logger
	server *http.Server
}

func NewApp(cfg config.Config) (*App, error) {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logging.ParseLevel(cfg.LogLevel)})
	logger := logging.NewSlogLogger(slog.New(handler))

	gin.SetMode(cfg.GinMode)

	us := users.NewService()
	if cfg.SeedUsers {
		if err := us.Seed(); err != nil {
			return nil, fmt.Errorf("seed users: %w", err)
		}
	}

	router := NewRouter(Deps{
		Store:       records.New(),
		Users:       us,
		TokenConfig: auth.TokenConfig{Secret: cfg.Secret, Expiry: cfg.TokenExpiry, Issuer: "sitrack-devserver"},
		Log:         logger,
	})

	return &App{
		config: cfg,
		logger: logger,
		server: &http.Server{Addr: cfg.Addr(), Handler: router, ReadHeaderTimeout: 10 * time.Second},
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until ctx is cancelled or a termination signal arrives, then
// shuts the server down gracefully.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.initSignalHandler(cancelFunc)
	app.logger.Info(ctx, "Starting dev server...", "addr", app.server.Addr)

	errc := make(chan error, 1)
	go func() {
		if err := app.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	app.logger.Info(ctx, "Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errc
}
