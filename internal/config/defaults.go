package config

import (
	"net"
	"strconv"
	"time"
)

const (
	// DefaultPort is the port of the http transport.
	DefaultPort = 3002

	// DefaultMaxAgents caps the number of agents in the hive.
	DefaultMaxAgents = 1000

	// DefaultNLPTimeout bounds a single text analysis.
	DefaultNLPTimeout = 2 * time.Second

	// DefaultSubjectPrefix prefixes every NATS subject.
	DefaultSubjectPrefix = "hive"
)

// GetDefaultConfig returns the default configuration.
func GetDefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Transport: TransportHTTP,
			Host:      "localhost",
			Port:      DefaultPort,
		},
		Hive: HiveConfig{
			MaxAgents:   DefaultMaxAgents,
			MatchPolicy: "fifo",
			Execution: ExecutionConfig{
				Enabled:      false,
				Interval:     time.Second,
				WorkDuration: 3 * time.Second,
			},
		},
		NLP: NLPConfig{
			Timeout: DefaultNLPTimeout,
		},
		Events: EventsConfig{
			NATS: NATSConfig{
				Enabled:       false,
				Embedded:      false,
				Port:          -1,
				SubjectPrefix: DefaultSubjectPrefix,
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

func joinHostPort(host string, port int) string {
	return net.JoinHostPort(host, strconv.Itoa(port))
}
