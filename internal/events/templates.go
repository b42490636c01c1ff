package events

import (
	"bytes"
	"fmt"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"hivemcp/internal/hive"
)

// MessageTemplateEngine renders event messages from per-reason templates.
type MessageTemplateEngine struct {
	mu        sync.RWMutex
	templates map[hive.EventReason]*template.Template
	sources   map[hive.EventReason]string
}

var defaultTemplates = map[hive.EventReason]string{
	hive.ReasonAgentCreated:     "Agent {{with .Detail}}{{.}} {{end}}({{.AgentID | trunc 8}}) joined hive {{.HiveID | trunc 8}}",
	hive.ReasonAgentRecycled:    "Agent {{.AgentID | trunc 8}} is idle again",
	hive.ReasonTaskCreated:      "Task {{.TaskID | trunc 8}} submitted{{with .Detail}} with {{. | lower}} priority{{end}}",
	hive.ReasonTaskAssigned:     "Task {{.TaskID | trunc 8}} assigned to agent {{.AgentID | trunc 8}}",
	hive.ReasonTaskStarted:      "Agent {{.AgentID | trunc 8}} started task {{.TaskID | trunc 8}}",
	hive.ReasonTaskCompleted:    "Agent {{.AgentID | trunc 8}} completed task {{.TaskID | trunc 8}}",
	hive.ReasonTaskFailed:       "Task {{.TaskID | trunc 8}} failed{{if .Detail}}: {{.Detail}}{{end}}",
	hive.ReasonSwarmCoordinated: "Swarm coordinated{{with .Detail}} with the {{.}} strategy{{end}}",
}

// NewMessageTemplateEngine creates an engine with the default templates.
func NewMessageTemplateEngine() *MessageTemplateEngine {
	e := &MessageTemplateEngine{
		templates: make(map[hive.EventReason]*template.Template, len(defaultTemplates)),
		sources:   make(map[hive.EventReason]string, len(defaultTemplates)),
	}
	for reason, src := range defaultTemplates {
		if err := e.SetTemplate(reason, src); err != nil {
			panic(fmt.Sprintf("invalid default template for %s: %v", reason, err))
		}
	}
	return e
}

// Render generates the message for reason. Unknown reasons and rendering
// failures fall back to a generic message.
func (e *MessageTemplateEngine) Render(reason hive.EventReason, data EventData) string {
	e.mu.RLock()
	tmpl, ok := e.templates[reason]
	e.mu.RUnlock()

	if !ok {
		return fmt.Sprintf("Event: %s in hive %s", reason, data.HiveID)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Sprintf("Event: %s in hive %s", reason, data.HiveID)
	}
	return buf.String()
}

// SetTemplate replaces the template for reason.
func (e *MessageTemplateEngine) SetTemplate(reason hive.EventReason, src string) error {
	tmpl, err := template.New(string(reason)).Funcs(sprig.TxtFuncMap()).Parse(src)
	if err != nil {
		return fmt.Errorf("failed to parse template for %s: %w", reason, err)
	}

	e.mu.Lock()
	e.templates[reason] = tmpl
	e.sources[reason] = src
	e.mu.Unlock()
	return nil
}

// GetTemplate returns the template source for reason.
func (e *MessageTemplateEngine) GetTemplate(reason hive.EventReason) (string, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	src, ok := e.sources[reason]
	return src, ok
}
