package config

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startWatcher(t *testing.T, dir string) <-chan Config {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())

	changes := make(chan Config, 4)
	w := NewWatcher(dir, func(cfg Config) { changes <- cfg })
	w.debounce = 20 * time.Millisecond

	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		assert.NoError(t, <-done)
	})

	select {
	case <-w.Ready():
	case err := <-done:
		t.Fatalf("watcher exited early: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher not ready")
	}
	return changes
}

func TestWatcher_ReloadsValidChanges(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "logging:\n  level: info\n")
	changes := startWatcher(t, dir)

	writeConfig(t, dir, "logging:\n  level: debug\nnlp:\n  timeout: 5s\n")

	select {
	case cfg := <-changes:
		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, 5*time.Second, cfg.NLP.Timeout)
	case <-time.After(3 * time.Second):
		t.Fatal("no reload observed")
	}
}

func TestWatcher_IgnoresInvalidChanges(t *testing.T) {
	dir := t.TempDir()
	changes := startWatcher(t, dir)

	writeConfig(t, dir, "logging:\n  level: shouting\n")

	select {
	case cfg := <-changes:
		t.Fatalf("invalid configuration was applied: %+v", cfg.Logging)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w := NewWatcher(t.TempDir()+"/missing", func(Config) {})
	err := w.Run(context.Background())
	require.Error(t, err)
}
