package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.trai.ch/cookbook/internal/adapters/httpapi" //nolint:depguard // Wired in app layer
	"go.trai.ch/cookbook/internal/adapters/mcp"     //nolint:depguard // Wired in app layer
	"go.trai.ch/cookbook/internal/build"
	"go.trai.ch/cookbook/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// ServeOptions configures the HTTP server.
type ServeOptions struct {
	Options
	// Addr overrides the configured listen address when set.
	Addr string
}

// Serve prepares the cookbook and serves HTTP until ctx is cancelled.
func (a *App) Serve(ctx context.Context, opts ServeOptions) error {
	cfg, err := a.Prepare(opts.Options)
	if err != nil {
		return err
	}

	addr := cfg.Server.Addr
	if opts.Addr != "" {
		addr = opts.Addr
	}

	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to listen"), "addr", addr)
	}

	return a.serve(ctx, ln, cfg)
}

// serve runs the HTTP server on ln and shuts it down gracefully when ctx ends.
func (a *App) serve(ctx context.Context, ln net.Listener, cfg *domain.Config) error {
	srv := &http.Server{
		Handler:           httpapi.New(a, a.logger, httpapi.Options{AllowedOrigin: cfg.Server.AllowedOrigin}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info(fmt.Sprintf("listening on %s", ln.Addr()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return zerr.With(zerr.Wrap(err, "http server failed"), "addr", ln.Addr().String())
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return zerr.Wrap(err, "failed to shut down http server")
		}
		a.logger.Info("server stopped")
		return nil
	})

	return g.Wait()
}

// ServeMCP prepares the cookbook and serves MCP tools over stdio.
func (a *App) ServeMCP(ctx context.Context, opts Options) error {
	if _, err := a.Prepare(opts); err != nil {
		return err
	}
	return a.serveMCP(ctx, &sdk.StdioTransport{})
}

func (a *App) serveMCP(ctx context.Context, transport sdk.Transport) error {
	if err := mcp.NewServer(a, build.Version).Run(ctx, transport); err != nil {
		return zerr.Wrap(err, "mcp server failed")
	}
	return nil
}
