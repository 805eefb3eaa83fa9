package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xlog"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mark3labs/mcp-go/server"
	"yfmcp/internal/app"
	"yfmcp/internal/config"
	"yfmcp/internal/logging"
	"yfmcp/internal/mcpserver"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var logger = xlog.NewPackageLogger("yfmcp", "server")

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "yfmcp: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		return errors.Wrap(err, "config")
	}
	if err := logging.Setup(os.Stderr, cfg.Log.Level); err != nil {
		return err
	}

	router, err := app.NewRouter(cfg)
	if err != nil {
		return err
	}
	mcpSrv := mcpserver.New(router, version)

	if cfg.Server.Transport == config.TransportHTTP {
		return serveHTTP(cfg, mcpSrv)
	}
	logger.KV(xlog.INFO, "status", "serving", "transport", config.TransportStdio, "version", version)
	return server.ServeStdio(mcpSrv)
}

func serveHTTP(cfg config.Config, mcpSrv *server.MCPServer) error {
	timeout := time.Duration(cfg.Server.RequestTimeoutSec) * time.Second
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           newHandler(mcpSrv, timeout),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.KV(xlog.INFO, "status", "serving", "transport", config.TransportHTTP, "addr", srv.Addr, "version", version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	// graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	select {
	case err := <-errc:
		return errors.Wrap(err, "server")
	case <-ctx.Done():
	}
	logger.KV(xlog.INFO, "status", "shutting_down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newHandler(mcpSrv *server.MCPServer, timeout time.Duration) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(limitBody)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	// GET holds the server-sent event stream open, so only calls are bounded.
	mcpHandler := server.NewStreamableHTTPServer(mcpSrv)
	r.With(middleware.Timeout(timeout)).Post("/mcp", mcpHandler.ServeHTTP)
	r.Get("/mcp", mcpHandler.ServeHTTP)
	r.Delete("/mcp", mcpHandler.ServeHTTP)
	return r
}

// limitBody caps request body size to avoid memory abuse.
func limitBody(next http.Handler) http.Handler {
	const maxBody = 1 << 20 // 1MB
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, maxBody)
		}
		next.ServeHTTP(w, r)
	})
}
