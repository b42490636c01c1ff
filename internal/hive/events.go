package hive

import (
	"time"
)

// EventReason is the reason code for a hive event.
type EventReason string

const (
	ReasonAgentCreated     EventReason = "AgentCreated"
	ReasonAgentRecycled    EventReason = "AgentRecycled"
	ReasonTaskCreated      EventReason = "TaskCreated"
	ReasonTaskAssigned     EventReason = "TaskAssigned"
	ReasonTaskStarted      EventReason = "TaskStarted"
	ReasonTaskCompleted    EventReason = "TaskCompleted"
	ReasonTaskFailed       EventReason = "TaskFailed"
	ReasonSwarmCoordinated EventReason = "SwarmCoordinated"
)

// Event describes one committed change to the hive.
type Event struct {
	Reason     EventReason `json:"reason"`
	HiveID     string      `json:"hive_id"`
	Generation uint64      `json:"generation"`
	AgentID    string      `json:"agent_id,omitempty"`
	TaskID     string      `json:"task_id,omitempty"`
	Message    string      `json:"message,omitempty"`
	Timestamp  time.Time   `json:"timestamp"`
}

// EventSink receives hive events after the state lock has been released.
// Implementations must not block for long; the caller's request waits on Publish.
type EventSink interface {
	Publish(Event)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(Event)

func (f EventSinkFunc) Publish(e Event) { f(e) }

// MultiSink fans events out to several sinks in order.
type MultiSink []EventSink

func (m MultiSink) Publish(e Event) {
	for _, s := range m {
		if s != nil {
			s.Publish(e)
		}
	}
}
