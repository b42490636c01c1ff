package events

import (
	"encoding/json"
	"strings"
	"sync/atomic"

	"hivemcp/internal/hive"
	"hivemcp/pkg/logging"
)

// DefaultSubjectPrefix is used when no prefix is configured.
const DefaultSubjectPrefix = "hive"

// Transport delivers a payload on a subject.
type Transport interface {
	Publish(subject string, data []byte) error
}

// Publisher converts hive events to envelopes and publishes them. It
// implements hive.EventSink.
type Publisher struct {
	transport Transport
	prefix    string
	templates *MessageTemplateEngine

	published atomic.Uint64
	failed    atomic.Uint64
}

// NewPublisher creates a publisher that sends to transport under prefix.
func NewPublisher(transport Transport, prefix string) *Publisher {
	prefix = strings.Trim(prefix, ".")
	if prefix == "" {
		prefix = DefaultSubjectPrefix
	}
	return &Publisher{
		transport: transport,
		prefix:    prefix,
		templates: NewMessageTemplateEngine(),
	}
}

// Templates exposes the message templates for customisation.
func (p *Publisher) Templates() *MessageTemplateEngine {
	return p.templates
}

// Subject returns the subject an event with reason is published on.
func (p *Publisher) Subject(reason hive.EventReason) string {
	return p.prefix + ".events." + string(reason)
}

// Publish implements hive.EventSink. Failures are logged and counted.
func (p *Publisher) Publish(e hive.Event) {
	envelope := newEnvelope(e, p.templates.Render(e.Reason, eventData(e)))

	data, err := json.Marshal(envelope)
	if err != nil {
		p.failed.Add(1)
		logging.Error("events", err, "Failed to encode %s event", e.Reason)
		return
	}

	subject := p.Subject(e.Reason)
	if err := p.transport.Publish(subject, data); err != nil {
		p.failed.Add(1)
		logging.Warn("events", "Failed to publish %s: %v", subject, err)
		return
	}
	p.published.Add(1)
	logging.Debug("events", "Published %s: %s", subject, envelope.Message)
}

// Stats returns the number of published and failed events.
func (p *Publisher) Stats() (published, failed uint64) {
	return p.published.Load(), p.failed.Load()
}
