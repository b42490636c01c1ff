package app

import (
	"fmt"

	"hivemcp/internal/config"
	"hivemcp/internal/events"
	"hivemcp/internal/hive"
	"hivemcp/internal/nlp"
	"hivemcp/internal/resources"
	"hivemcp/internal/server"
	"hivemcp/internal/sysinfo"
	"hivemcp/internal/tools"
	"hivemcp/pkg/logging"
)

// Services holds all initialized services used by the application.
//
// Initialization order:
//  1. Event sinks (websocket hub, optional NATS publisher)
//  2. Hive state and orchestrator
//  3. Collaborators (analyzer, host information)
//  4. Tool and resource providers
//  5. Metrics and the protocol dispatcher
//  6. Optional background executor
type Services struct {
	Orchestrator *hive.Orchestrator
	Analyzer     *nlp.Bounded
	Tools        *tools.Provider
	Resources    *resources.Provider
	Dispatcher   *server.Dispatcher
	Metrics      *server.Metrics
	Hub          *server.Hub

	// Executor is nil unless hive.execution.enabled is set.
	Executor *hive.Executor

	// Publisher is nil unless events.nats.enabled is set.
	Publisher *events.Publisher

	bus        *events.Bus
	natsClient *events.Client
}

// InitializeServices creates every service described by cfg.HiveConfig.
func InitializeServices(cfg *Config) (*Services, error) {
	hc := cfg.HiveConfig
	s := &Services{
		Hub: server.NewHub(),
	}

	sinks := hive.MultiSink{s.Hub}
	if hc.Events.NATS.Enabled {
		if err := s.startEvents(hc.Events.NATS); err != nil {
			s.Close()
			return nil, err
		}
		sinks = append(sinks, s.Publisher)
	}

	policy, err := hive.PolicyByName(hc.Hive.MatchPolicy)
	if err != nil {
		s.Close()
		return nil, err
	}

	s.Orchestrator = hive.New(hive.NewState(), hive.Config{
		MaxAgents: hc.Hive.MaxAgents,
		Policy:    policy,
		Sink:      sinks,
	})
	logging.Info("Services", "Hive %s created (policy %s, capacity %d)", s.Orchestrator.HiveID(), policy.Name(), hc.Hive.MaxAgents)

	s.Analyzer = nlp.NewBounded(nlp.NewKeywordAnalyzer(), hc.NLP.Timeout)
	s.Tools = tools.NewProvider(s.Orchestrator, s.Analyzer, sysinfo.Runtime{})
	s.Resources = resources.NewProvider(s.Orchestrator)
	s.Metrics = server.NewMetrics(s.Orchestrator)
	s.Dispatcher = server.NewDispatcher(s.Tools, s.Resources,
		server.WithMetrics(s.Metrics),
		server.WithVersion(cfg.Version),
	)

	if hc.Hive.Execution.Enabled {
		s.Executor = hive.NewExecutor(s.Orchestrator, hc.Hive.Execution.Interval, hc.Hive.Execution.WorkDuration)
	}

	return s, nil
}

func (s *Services) startEvents(cfg config.NATSConfig) error {
	url := cfg.URL
	if cfg.Embedded {
		bus, err := events.NewBus(events.BusConfig{Host: "127.0.0.1", Port: cfg.Port})
		if err != nil {
			return fmt.Errorf("failed to start embedded NATS server: %w", err)
		}
		s.bus = bus
		url = bus.ClientURL()
		logging.Info("Services", "Embedded NATS server listening on %s", url)
	}

	client, err := events.NewClientFromURL(url)
	if err != nil {
		return fmt.Errorf("failed to connect to NATS at %s: %w", url, err)
	}
	s.natsClient = client
	s.Publisher = events.NewPublisher(client, cfg.SubjectPrefix)
	logging.Info("Services", "Publishing hive events to %s", s.Publisher.Subject("*"))
	return nil
}

// NATSURL returns the URL of the NATS server events are published to, or
// an empty string when publishing is disabled.
func (s *Services) NATSURL() string {
	if s.bus != nil {
		return s.bus.ClientURL()
	}
	return ""
}

// ApplyReload applies the settings of cfg that can change at runtime.
func (s *Services) ApplyReload(cfg config.Config) {
	if level, err := logging.ParseLevel(cfg.Logging.Level); err == nil {
		logging.SetLevel(level)
	}
	if cfg.NLP.Timeout > 0 && cfg.NLP.Timeout != s.Analyzer.Timeout() {
		s.Analyzer.SetTimeout(cfg.NLP.Timeout)
		logging.Info("Services", "NLP timeout set to %s", cfg.NLP.Timeout)
	}
}

// Close releases the event bus connections.
func (s *Services) Close() {
	if s.natsClient != nil {
		s.natsClient.Close()
		s.natsClient = nil
	}
	if s.bus != nil {
		s.bus.Close()
		s.bus = nil
	}
}
