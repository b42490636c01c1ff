package app

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/coreos/go-systemd/v22/daemon"
	"golang.org/x/sync/errgroup"

	"hivemcp/internal/config"
	"hivemcp/internal/server"
	"hivemcp/pkg/logging"
)

// runServer runs the configured transport together with the background
// workers: websocket hub, optional executor and optional config watcher.
//
// Signal Handling:
//   - SIGINT (Ctrl+C): triggers graceful shutdown
//   - SIGTERM: triggers graceful shutdown (common in container environments)
//
// When running under systemd, READY=1 is sent once every worker has been
// started and STOPPING=1 when shutdown begins.
func runServer(ctx context.Context, cfg *Config, services *Services) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	hc := cfg.HiveConfig
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		services.Hub.Run(gctx)
		return nil
	})

	if services.Executor != nil {
		g.Go(func() error {
			return services.Executor.Run(gctx)
		})
	}

	if cfg.WatchConfig {
		watcher := config.NewWatcher(cfg.ConfigPath, services.ApplyReload)
		g.Go(func() error {
			return watcher.Run(gctx)
		})
	}

	g.Go(func() error {
		// The transport ending (stdin EOF) ends the whole run.
		defer cancel()
		return serveTransport(gctx, cfg, services)
	})

	notify(daemon.SdNotifyReady)
	logging.Info("Server", "Serving hive %s over %s", services.Orchestrator.HiveID(), hc.Server.Transport)

	<-gctx.Done()
	notify(daemon.SdNotifyStopping)
	logging.Info("Server", "Shutting down")

	return g.Wait()
}

func serveTransport(ctx context.Context, cfg *Config, services *Services) error {
	sc := cfg.HiveConfig.Server
	d := services.Dispatcher

	switch sc.Transport {
	case config.TransportStdio:
		// A blocked stdin read cannot be interrupted, so shutdown does not
		// wait for it.
		errCh := make(chan error, 1)
		go func() { errCh <- d.ServeLines(ctx, cfg.Stdin, cfg.Stdout) }()
		select {
		case err := <-errCh:
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		case <-ctx.Done():
			return nil
		}
	case config.TransportStreamableHTTP:
		return d.ServeStreamableHTTP(ctx, sc.Addr())
	case config.TransportSSE:
		return d.ServeSSE(ctx, sc.Addr())
	case config.TransportHTTP:
		bridge := server.NewBridge(d, services.Orchestrator, server.BridgeOptions{
			AllowOrigins: sc.AllowOrigins,
			Metrics:      services.Metrics,
			Hub:          services.Hub,
			Debug:        cfg.Debug,
		})
		return server.ServeHTTP(ctx, sc.Addr(), bridge.Handler())
	default:
		return fmt.Errorf("unsupported transport %q", sc.Transport)
	}
}

func notify(state string) {
	sent, err := daemon.SdNotify(false, state)
	if err != nil {
		logging.Warn("Server", "Failed to notify systemd (%s): %v", state, err)
		return
	}
	if sent {
		logging.Debug("Server", "Notified systemd: %s", state)
	}
}
