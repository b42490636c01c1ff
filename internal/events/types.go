package events

import (
	"time"

	"hivemcp/internal/hive"
)

// EventType represents the severity of an event.
type EventType string

const (
	// EventTypeNormal indicates normal, non-problematic events.
	EventTypeNormal EventType = "Normal"

	// EventTypeWarning indicates events that may require attention.
	EventTypeWarning EventType = "Warning"
)

// Envelope is the JSON document published for every hive event.
type Envelope struct {
	Type       EventType        `json:"type"`
	Reason     hive.EventReason `json:"reason"`
	HiveID     string           `json:"hive_id"`
	Generation uint64           `json:"generation"`
	AgentID    string           `json:"agent_id,omitempty"`
	TaskID     string           `json:"task_id,omitempty"`
	Message    string           `json:"message"`
	Detail     string           `json:"detail,omitempty"`
	Timestamp  time.Time        `json:"timestamp"`
}

// EventData contains the values available to message templates.
type EventData struct {
	HiveID  string
	AgentID string
	TaskID  string
	// Detail is the free-form message attached by the hive, such as a
	// failure reason or a coordination summary.
	Detail string
}

// getEventType returns the event type for a reason.
func getEventType(reason hive.EventReason) EventType {
	switch reason {
	case hive.ReasonTaskFailed:
		return EventTypeWarning
	default:
		return EventTypeNormal
	}
}

// newEnvelope builds the envelope for e with the rendered message.
func newEnvelope(e hive.Event, message string) Envelope {
	return Envelope{
		Type:       getEventType(e.Reason),
		Reason:     e.Reason,
		HiveID:     e.HiveID,
		Generation: e.Generation,
		AgentID:    e.AgentID,
		TaskID:     e.TaskID,
		Message:    message,
		Detail:     e.Message,
		Timestamp:  e.Timestamp,
	}
}

func eventData(e hive.Event) EventData {
	return EventData{
		HiveID:  e.HiveID,
		AgentID: e.AgentID,
		TaskID:  e.TaskID,
		Detail:  e.Message,
	}
}
