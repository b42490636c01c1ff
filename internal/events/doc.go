// Package events publishes hive events to NATS.
//
// The hive emits an event for every committed change (agent created, task
// assigned, task failed and so on). This package turns those events into
// JSON envelopes with a rendered human-readable message and an event type,
// and publishes them on the subject
//
//	<prefix>.events.<Reason>
//
// for example hive.events.TaskFailed. Subscribers can follow everything
// with hive.events.>.
//
// Architecture:
//
//   - Publisher: implements hive.EventSink and forwards envelopes to a Transport
//   - MessageTemplateEngine: per-reason message templates (text/template + sprig)
//   - Bus: an optional in-process NATS server for single-binary deployments
//   - Client: a thin nats.go connection wrapper implementing Transport
//
// Usage:
//
//	bus, _ := events.NewBus(events.BusConfig{Port: -1})
//	client, _ := events.NewClientFromURL(bus.ClientURL())
//	pub := events.NewPublisher(client, "hive")
//	orch := hive.New(hive.NewState(), hive.Config{Sink: pub})
//
// Publishing never blocks a hive mutation for long: nats.go buffers
// outgoing messages and failures are logged, not returned.
package events
