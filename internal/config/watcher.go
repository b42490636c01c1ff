package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"hivemcp/pkg/logging"
)

const defaultDebounce = 200 * time.Millisecond

// Watcher reloads config.yaml when it changes on disk and passes every
// valid result to a callback. Invalid files are logged and ignored.
type Watcher struct {
	configPath string
	onChange   func(Config)
	debounce   time.Duration
	ready      chan struct{}
}

// NewWatcher creates a watcher for the config.yaml in configPath.
func NewWatcher(configPath string, onChange func(Config)) *Watcher {
	return &Watcher{
		configPath: configPath,
		onChange:   onChange,
		debounce:   defaultDebounce,
		ready:      make(chan struct{}),
	}
}

// Ready is closed once the watch is established.
func (w *Watcher) Ready() <-chan struct{} {
	return w.ready
}

// Run watches until ctx is cancelled. The directory is watched rather than
// the file so that editors replacing the file are noticed.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create config watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.configPath); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.configPath, err)
	}
	close(w.ready)
	logging.Info("ConfigWatcher", "Watching %s for changes", FilePath(w.configPath))

	var (
		timer  *time.Timer
		reload <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != configFileName {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			reload = timer.C

		case <-reload:
			reload = nil
			w.reload()

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logging.Warn("ConfigWatcher", "Watch error: %v", err)
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := LoadConfig(w.configPath)
	if err != nil {
		logging.Warn("ConfigWatcher", "Ignoring unreadable configuration: %v", err)
		return
	}
	if err := Validate(cfg); err != nil {
		logging.Warn("ConfigWatcher", "Ignoring invalid configuration: %v", err)
		return
	}
	logging.Info("ConfigWatcher", "Configuration reloaded")
	w.onChange(cfg)
}
