package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/janisto/solar-playground/internal/config"
	"github.com/janisto/solar-playground/internal/http/health"
	"github.com/janisto/solar-playground/internal/http/v1/routes"
	applog "github.com/janisto/solar-playground/internal/platform/logging"
	"github.com/janisto/solar-playground/internal/platform/metrics"
	appmiddleware "github.com/janisto/solar-playground/internal/platform/middleware"
	"github.com/janisto/solar-playground/internal/platform/respond"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

const apiTitle = "Solar Playground API"

func main() {
	code := run()
	if err := applog.Sync(); err != nil {
		applog.LogError(context.Background(), "logger sync error", err)
	}
	os.Exit(code)
}

func run() int {
	ctx := context.Background()
	if err := applog.Err(); err != nil {
		applog.LogError(ctx, "logger init error", err)
	}

	cfg, err := config.Load(".env")
	if err != nil {
		applog.LogError(ctx, "configuration error", err)
		return 1
	}
	if err := applog.SetLevel(cfg.LogLevel); err != nil {
		applog.LogError(ctx, "invalid log level", err)
		return 1
	}

	// A bind failure is fatal.
	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		applog.LogError(ctx, "listen failed", err, zap.String("addr", cfg.Addr()))
		return 1
	}

	var collector *metrics.Collector
	if cfg.MetricsEnabled {
		collector = metrics.NewCollector()
	}
	srv := newServer(newRouter(cfg, collector, time.Now()))

	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := serve(sigCtx, srv, ln, cfg.ShutdownTimeout); err != nil {
		applog.LogError(ctx, "server error", err, zap.String("addr", ln.Addr().String()))
		return 1
	}
	applog.LogInfo(ctx, "server exited")
	return 0
}

// newRouter assembles the middleware stack and every route. collector may be
// nil to disable metrics.
func newRouter(cfg *config.Config, collector *metrics.Collector, started time.Time) http.Handler {
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	stack := []func(http.Handler) http.Handler{
		appmiddleware.Security(cfg.DocsPath),
		appmiddleware.Vary(),
		appmiddleware.CORS(cfg.CORSAllowedOrigins...),
		appmiddleware.RequestID(),
		// RealIP trusts X-Forwarded-For; only deploy behind a proxy that sets it.
		chimiddleware.RealIP,
		chimiddleware.RequestSize(1 << 20),
		chimiddleware.GetHead,
		applog.RequestLogger(),
		applog.AccessLogger(),
	}
	if collector != nil {
		stack = append(stack, collector.Middleware())
	}
	stack = append(stack, respond.Recoverer())
	router.Use(stack...)

	api := humachi.New(router, routes.NewConfig(apiTitle, Version, cfg.DocsPath))
	api.OpenAPI().OnAddOperation = append(api.OpenAPI().OnAddOperation, routes.MirrorCBOR)
	routes.Register(api)

	router.Get("/health", health.Handler(Version, started))
	if collector != nil {
		router.Method(http.MethodGet, cfg.MetricsPath, collector.Handler())
	}
	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		respond.WriteRedirect(w, r, cfg.DocsPath, http.StatusFound)
	})
	return router
}

func newServer(handler http.Handler) *http.Server {
	return &http.Server{
		Handler:           handler,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}
}

// serve runs srv on ln until ctx is done, then shuts it down within timeout.
func serve(ctx context.Context, srv *http.Server, ln net.Listener, timeout time.Duration) error {
	serveErr := make(chan error, 1)
	go func() {
		applog.LogInfo(ctx, "server listening", zap.String("addr", ln.Addr().String()), zap.String("version", Version))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
		applog.LogInfo(context.Background(), "shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
