package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"hivemcp/internal/hive"
	"hivemcp/internal/server"
	"hivemcp/internal/tools"
)

func newTestPrinter(format OutputFormat) (*Printer, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewPrinter(&buf, ExecutorOptions{Format: format}), &buf
}

func statusBody(t *testing.T) string {
	t.Helper()
	st := hive.HiveStatus{HiveID: "0123456789abcdef", Generation: 4, TotalEnergy: 150}
	st.Metrics.TotalAgents = 2
	st.Metrics.ActiveAgents = 1
	st.Metrics.TaskMetrics.TotalTasks = 3
	raw, err := json.Marshal(st)
	require.NoError(t, err)
	return string(raw)
}

func TestValidateOutputFormat(t *testing.T) {
	assert.NoError(t, ValidateOutputFormat("table"))
	assert.NoError(t, ValidateOutputFormat("yaml"))
	assert.Error(t, ValidateOutputFormat("template"))
	assert.NoError(t, ValidateOutputFormat("template", OutputFormatTable, OutputFormatTemplate))

	err := ValidateOutputFormat("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "table, json, yaml")
}

func TestPrinter_DefaultsToTable(t *testing.T) {
	p := NewPrinter(nil, ExecutorOptions{})
	assert.Equal(t, OutputFormatTable, p.format)
}

func TestPrinter_PrintTools(t *testing.T) {
	catalog := server.MCPTools(tools.Catalog())

	t.Run("table", func(t *testing.T) {
		p, buf := newTestPrinter(OutputFormatTable)
		require.NoError(t, p.PrintTools(catalog))
		out := buf.String()
		assert.Contains(t, out, "NAME")
		assert.Contains(t, out, "create_swarm_agent")
		assert.Contains(t, out, "agent_type*")
	})

	t.Run("json", func(t *testing.T) {
		p, buf := newTestPrinter(OutputFormatJSON)
		require.NoError(t, p.PrintTools(catalog))
		var rows []map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
		require.Len(t, rows, len(catalog))
		assert.Equal(t, catalog[0].Name, rows[0]["name"])
	})

	t.Run("yaml", func(t *testing.T) {
		p, buf := newTestPrinter(OutputFormatYAML)
		require.NoError(t, p.PrintTools(catalog))
		var rows []map[string]interface{}
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &rows))
		assert.Len(t, rows, len(catalog))
	})

	t.Run("empty table", func(t *testing.T) {
		p, buf := newTestPrinter(OutputFormatTable)
		require.NoError(t, p.PrintTools(nil))
		assert.Equal(t, "No tools found\n", buf.String())
	})
}

func TestPrinter_PrintText(t *testing.T) {
	t.Run("plain text passes through", func(t *testing.T) {
		p, buf := newTestPrinter(OutputFormatYAML)
		require.NoError(t, p.PrintText("hello hive"))
		assert.Equal(t, "hello hive\n", buf.String())
	})

	t.Run("json is printed as returned", func(t *testing.T) {
		p, buf := newTestPrinter(OutputFormatJSON)
		require.NoError(t, p.PrintText(`{"a":1}`))
		assert.Equal(t, "{\"a\":1}\n", buf.String())
	})

	t.Run("yaml", func(t *testing.T) {
		p, buf := newTestPrinter(OutputFormatYAML)
		require.NoError(t, p.PrintText(`{"success":true,"created_count":2}`))
		assert.Contains(t, buf.String(), "created_count: 2")
	})

	t.Run("list wrapper renders rows", func(t *testing.T) {
		p, buf := newTestPrinter(OutputFormatTable)
		body := `{"agents":[{"id":"a1","name":"worker-1","agent_type":"Worker","state":"Idle","energy":100,"position":{"x":1,"y":2}}],"count":1}`
		require.NoError(t, p.PrintText(body))
		out := buf.String()
		assert.Contains(t, out, "AGENT_TYPE")
		assert.Contains(t, out, "worker-1")
		assert.NotContains(t, out, "POSITION")
	})

	t.Run("empty list", func(t *testing.T) {
		p, buf := newTestPrinter(OutputFormatTable)
		require.NoError(t, p.PrintText(`{"tasks":[],"count":0}`))
		assert.Equal(t, "No items found\n", buf.String())
	})

	t.Run("object renders key value", func(t *testing.T) {
		p, buf := newTestPrinter(OutputFormatTable)
		require.NoError(t, p.PrintText(`{"strategy":"balanced","tasks_assigned":2,"recommendations":["scale up"]}`))
		out := buf.String()
		assert.Contains(t, out, "balanced")
		assert.Contains(t, out, "scale up")
	})
}

func TestPrinter_PrintStatus(t *testing.T) {
	body := statusBody(t)

	t.Run("table", func(t *testing.T) {
		p, buf := newTestPrinter(OutputFormatTable)
		require.NoError(t, p.PrintStatus(body))
		out := buf.String()
		assert.Contains(t, out, "0123456789abcdef")
		assert.Contains(t, out, "2 (1 active, 0 idle)")
		assert.Contains(t, out, "150.0")
	})

	t.Run("default template", func(t *testing.T) {
		p, buf := newTestPrinter(OutputFormatTemplate)
		require.NoError(t, p.PrintStatus(body))
		assert.Equal(t, "hive 01234567 (generation 4): 2 agents, 1 active, 3 tasks, energy 150.0\n", buf.String())
	})

	t.Run("custom template with sprig", func(t *testing.T) {
		var buf bytes.Buffer
		p := NewPrinter(&buf, ExecutorOptions{Format: OutputFormatTemplate, Template: `{{.hive_id | upper | trunc 4}}`})
		require.NoError(t, p.PrintStatus(body))
		assert.Equal(t, "0123", buf.String())
	})

	t.Run("bad template", func(t *testing.T) {
		p := NewPrinter(&bytes.Buffer{}, ExecutorOptions{Format: OutputFormatTemplate, Template: `{{.hive_id`})
		err := p.PrintStatus(body)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse template")
	})

	t.Run("invalid body in table mode", func(t *testing.T) {
		p, _ := newTestPrinter(OutputFormatTable)
		assert.Error(t, p.PrintStatus("not json"))
	})
}

func TestPrinter_NoHeaders(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, ExecutorOptions{Format: OutputFormatTable, NoHeaders: true})
	require.NoError(t, p.PrintText(`{"tasks":[{"id":"t1","status":"Pending"}]}`))
	assert.False(t, strings.Contains(buf.String(), "STATUS"))
	assert.Contains(t, buf.String(), "Pending")
}

func TestFormatCell(t *testing.T) {
	assert.Equal(t, "-", formatCell(nil))
	assert.Equal(t, "-", formatCell(""))
	assert.Equal(t, "3", formatCell(float64(3)))
	assert.Equal(t, "0.25", formatCell(0.25))
	assert.Equal(t, "a, b", formatCell([]interface{}{"a", "b"}))
	assert.Equal(t, `{"x":1}`, formatCell(map[string]interface{}{"x": 1}))
	assert.Len(t, formatCell(strings.Repeat("x", 100)), maxCellWidth)
	assert.Equal(t, "multi line", formatCell("multi\n\n  line"))
	assert.Len(t, []rune(formatCell(strings.Repeat("é", 100))), maxCellWidth)
}
