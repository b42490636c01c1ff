package config

import "time"

// Config is the top-level configuration structure for hivemcp.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Hive    HiveConfig    `yaml:"hive"`
	NLP     NLPConfig     `yaml:"nlp"`
	Events  EventsConfig  `yaml:"events"`
	Logging LoggingConfig `yaml:"logging"`
}

const (
	// TransportHTTP is the gin bridge with plain JSON-RPC, health and metrics.
	TransportHTTP = "http"
	// TransportStreamableHTTP is the MCP streamable HTTP transport.
	TransportStreamableHTTP = "streamable-http"
	// TransportSSE is the Server-Sent Events transport.
	TransportSSE = "sse"
	// TransportStdio is the line-delimited standard I/O transport.
	TransportStdio = "stdio"
)

// Transports lists every supported transport.
var Transports = []string{TransportHTTP, TransportStreamableHTTP, TransportSSE, TransportStdio}

// ServerConfig defines how the MCP server is exposed.
type ServerConfig struct {
	Transport    string   `yaml:"transport,omitempty"`    // Transport to use (default: http)
	Host         string   `yaml:"host,omitempty"`         // Host to bind to (default: localhost)
	Port         int      `yaml:"port,omitempty"`         // Port to listen on (default: 3002)
	AllowOrigins []string `yaml:"allowOrigins,omitempty"` // CORS origins for the http transport (default: all)
}

// HiveConfig configures the orchestrator.
type HiveConfig struct {
	MaxAgents   int             `yaml:"maxAgents,omitempty"`
	MatchPolicy string          `yaml:"matchPolicy,omitempty"`
	Execution   ExecutionConfig `yaml:"execution"`
}

// ExecutionConfig configures the background task executor.
type ExecutionConfig struct {
	Enabled      bool          `yaml:"enabled"`
	Interval     time.Duration `yaml:"interval,omitempty"`
	WorkDuration time.Duration `yaml:"workDuration,omitempty"`
}

// NLPConfig configures the text analyzer.
type NLPConfig struct {
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

// EventsConfig configures where hive events are published.
type EventsConfig struct {
	NATS NATSConfig `yaml:"nats"`
}

// NATSConfig configures the NATS event sink.
type NATSConfig struct {
	Enabled       bool   `yaml:"enabled"`
	URL           string `yaml:"url,omitempty"`
	Embedded      bool   `yaml:"embedded"`
	Port          int    `yaml:"port,omitempty"`
	SubjectPrefix string `yaml:"subjectPrefix,omitempty"`
}

// LoggingConfig configures the process logger.
type LoggingConfig struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
}

// Addr returns host:port of the server.
func (s ServerConfig) Addr() string {
	return joinHostPort(s.Host, s.Port)
}
