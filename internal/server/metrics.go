package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hivemcp/internal/api"
	"hivemcp/internal/hive"
)

const metricsNamespace = "hivemcp"

// Tool call outcomes used as the outcome label.
const (
	outcomeSuccess      = "success"
	outcomeValidation   = "validation_error"
	outcomeNotFound     = "not_found"
	outcomeCollaborator = "collaborator_error"
	outcomeError        = "error"
)

// StatusSource provides hive snapshots.
type StatusSource interface {
	Status() hive.HiveStatus
}

// Metrics holds the Prometheus instruments of one server. Each Metrics has
// its own registry so tests and multiple servers never collide. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	registry     *prometheus.Registry
	requests     *prometheus.CounterVec
	toolCalls    *prometheus.CounterVec
	toolDuration *prometheus.HistogramVec
}

// NewMetrics creates the instruments. When status is non-nil the hive
// gauges are collected from it at scrape time.
func NewMetrics(status StatusSource) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "rpc_requests_total",
			Help:      "JSON-RPC messages received, by method.",
		}, []string{"method"}),
		toolCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "tool_calls_total",
			Help:      "Tool invocations, by tool and outcome.",
		}, []string{"tool", "outcome"}),
		toolDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "tool_call_duration_seconds",
			Help:      "Tool invocation latency.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
		}, []string{"tool"}),
	}

	m.registry.MustRegister(
		m.requests,
		m.toolCalls,
		m.toolDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	if status != nil {
		m.registry.MustRegister(newHiveCollector(status))
	}
	return m
}

// Registry returns the registry backing m.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) observeRequest(method string) {
	if m == nil {
		return
	}
	if method == "" {
		method = "unknown"
	}
	m.requests.WithLabelValues(method).Inc()
}

func (m *Metrics) observeToolCall(tool string, err error, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.toolCalls.WithLabelValues(tool, outcomeOf(err)).Inc()
	m.toolDuration.WithLabelValues(tool).Observe(elapsed.Seconds())
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return outcomeSuccess
	case api.IsValidation(err):
		return outcomeValidation
	case api.IsNotFound(err):
		return outcomeNotFound
	case api.IsCollaborator(err):
		return outcomeCollaborator
	default:
		return outcomeError
	}
}

// hiveCollector turns a hive snapshot into gauges on every scrape.
type hiveCollector struct {
	status StatusSource

	agents     *prometheus.Desc
	tasks      *prometheus.Desc
	energy     *prometheus.Desc
	generation *prometheus.Desc
}

func newHiveCollector(status StatusSource) *hiveCollector {
	return &hiveCollector{
		status: status,
		agents: prometheus.NewDesc(
			prometheus.BuildFQName(metricsNamespace, "hive", "agents"),
			"Agents in the hive, by state.",
			[]string{"state"}, nil,
		),
		tasks: prometheus.NewDesc(
			prometheus.BuildFQName(metricsNamespace, "hive", "tasks"),
			"Tasks in the hive, by status.",
			[]string{"status"}, nil,
		),
		energy: prometheus.NewDesc(
			prometheus.BuildFQName(metricsNamespace, "hive", "total_energy"),
			"Sum of agent energy.",
			nil, nil,
		),
		generation: prometheus.NewDesc(
			prometheus.BuildFQName(metricsNamespace, "hive", "generation"),
			"Number of committed hive mutations.",
			nil, nil,
		),
	}
}

func (c *hiveCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.agents
	ch <- c.tasks
	ch <- c.energy
	ch <- c.generation
}

func (c *hiveCollector) Collect(ch chan<- prometheus.Metric) {
	st := c.status.Status()

	for _, state := range hive.AllAgentStates {
		ch <- prometheus.MustNewConstMetric(c.agents, prometheus.GaugeValue,
			float64(st.Metrics.AgentMetrics.ByState[state]), string(state))
	}

	tm := st.Metrics.TaskMetrics
	byStatus := map[hive.TaskStatus]int{
		hive.TaskPending:    tm.Pending,
		hive.TaskAssigned:   tm.Assigned,
		hive.TaskInProgress: tm.InProgress,
		hive.TaskCompleted:  tm.Completed,
		hive.TaskFailed:     tm.Failed,
	}
	for _, status := range hive.AllTaskStatuses {
		ch <- prometheus.MustNewConstMetric(c.tasks, prometheus.GaugeValue,
			float64(byStatus[status]), string(status))
	}

	ch <- prometheus.MustNewConstMetric(c.energy, prometheus.GaugeValue, st.TotalEnergy)
	ch <- prometheus.MustNewConstMetric(c.generation, prometheus.CounterValue, float64(st.Generation))
}
