package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte(content), 0o644))
}

func TestLoadConfig_DefaultOnly(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), cfg)
	assert.NoError(t, Validate(cfg))
}

func TestLoadConfig_Overrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
server:
  transport: stdio
hive:
  matchPolicy: energy
  execution:
    enabled: true
    interval: 250ms
nlp:
  timeout: 500ms
logging:
  level: debug
`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, TransportStdio, cfg.Server.Transport)
	assert.Equal(t, "localhost", cfg.Server.Host, "unset values keep their defaults")
	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, "energy", cfg.Hive.MatchPolicy)
	assert.Equal(t, DefaultMaxAgents, cfg.Hive.MaxAgents)
	assert.True(t, cfg.Hive.Execution.Enabled)
	assert.Equal(t, 250*time.Millisecond, cfg.Hive.Execution.Interval)
	assert.Equal(t, 3*time.Second, cfg.Hive.Execution.WorkDuration)
	assert.Equal(t, 500*time.Millisecond, cfg.NLP.Timeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoadConfig_Malformed(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "server: [unclosed")

	_, err := LoadConfig(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error loading config")
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	cfg := GetDefaultConfig()
	cfg.Server.Port = 4000
	cfg.NLP.Timeout = 750 * time.Millisecond
	cfg.Events.NATS.Enabled = true
	cfg.Events.NATS.Embedded = true

	require.NoError(t, SaveConfig(dir, cfg))

	loaded, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestServerConfig_Addr(t *testing.T) {
	assert.Equal(t, "localhost:3002", ServerConfig{Host: "localhost", Port: 3002}.Addr())
	assert.Equal(t, "[::1]:80", ServerConfig{Host: "::1", Port: 80}.Addr())
}
