package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"hivemcp/pkg/logging"
)

const shutdownTimeout = 5 * time.Second

// ServeStreamableHTTP runs the MCP streamable HTTP transport on addr until
// ctx is cancelled.
func (d *Dispatcher) ServeStreamableHTTP(ctx context.Context, addr string) error {
	httpServer := server.NewStreamableHTTPServer(d.mcp)
	logging.Info("Dispatcher", "Starting streamable HTTP transport on %s", addr)
	return runUntilDone(ctx, func() error { return httpServer.Start(addr) }, httpServer.Shutdown)
}

// ServeSSE runs the MCP SSE transport on addr until ctx is cancelled.
func (d *Dispatcher) ServeSSE(ctx context.Context, addr string) error {
	baseURL := fmt.Sprintf("http://%s", addr)
	sseServer := server.NewSSEServer(
		d.mcp,
		server.WithBaseURL(baseURL),
		server.WithSSEEndpoint("/sse"),
		server.WithMessageEndpoint("/message"),
		server.WithKeepAlive(true),
		server.WithKeepAliveInterval(30*time.Second),
	)
	logging.Info("Dispatcher", "Starting SSE transport on %s", addr)
	return runUntilDone(ctx, func() error { return sseServer.Start(addr) }, sseServer.Shutdown)
}

// ServeHTTP runs handler on addr until ctx is cancelled.
func ServeHTTP(ctx context.Context, addr string, handler http.Handler) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	logging.Info("Dispatcher", "Starting HTTP bridge on %s", addr)
	return runUntilDone(ctx, httpServer.ListenAndServe, httpServer.Shutdown)
}

func runUntilDone(ctx context.Context, start func() error, shutdown func(context.Context) error) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- start()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down transport: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
