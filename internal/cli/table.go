package cli

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mark3labs/mcp-go/mcp"

	"hivemcp/internal/hive"
)

const maxCellWidth = 60

// listKeys are the wrapper keys whose arrays are rendered as a table, in
// lookup order.
var listKeys = []string{"agents", "tasks"}

// preferredColumns are shown first when present.
var preferredColumns = []string{"id", "name", "agent_type", "state", "description", "status", "priority", "energy"}

func (p *Printer) newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(p.out)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatUpper
	return t
}

func (p *Printer) appendHeader(t table.Writer, row table.Row) {
	if !p.noHeaders {
		t.AppendHeader(row)
	}
}

func (p *Printer) renderTools(tools []mcp.Tool) error {
	if len(tools) == 0 {
		_, err := fmt.Fprintln(p.out, "No tools found")
		return err
	}

	t := p.newTable()
	p.appendHeader(t, table.Row{"Name", "Args", "Description"})
	for _, tool := range tools {
		t.AppendRow(table.Row{
			text.FgHiCyan.Sprint(tool.Name),
			formatArgs(tool.InputSchema),
			truncate(tool.Description),
		})
	}
	t.Render()
	return nil
}

// PrintStatus prints a hive status body read from hive://status.
func (p *Printer) PrintStatus(body string) error {
	if p.format != OutputFormatTable {
		return p.PrintText(body)
	}

	var st hive.HiveStatus
	if err := json.Unmarshal([]byte(body), &st); err != nil {
		return fmt.Errorf("failed to decode hive status: %w", err)
	}

	t := p.newTable()
	p.appendHeader(t, table.Row{"Field", "Value"})
	m := st.Metrics
	t.AppendRows([]table.Row{
		{"Hive", st.HiveID},
		{"Generation", st.Generation},
		{"Agents", fmt.Sprintf("%d (%d active, %d idle)", m.TotalAgents, m.ActiveAgents, m.AgentMetrics.IdleAgents)},
		{"Tasks", fmt.Sprintf("%d (%d pending, %d in progress, %d completed, %d failed)",
			m.TaskMetrics.TotalTasks, m.TaskMetrics.Pending, m.TaskMetrics.InProgress,
			m.TaskMetrics.Completed, m.TaskMetrics.Failed)},
		{"Success rate", fmt.Sprintf("%.1f%%", m.TaskMetrics.SuccessRate*100)},
		{"Total energy", fmt.Sprintf("%.1f", st.TotalEnergy)},
		{"Swarm center", fmt.Sprintf("(%.1f, %.1f)", st.SwarmCenter[0], st.SwarmCenter[1])},
	})
	t.Render()
	return nil
}

func (p *Printer) renderData(data interface{}) error {
	switch d := data.(type) {
	case map[string]interface{}:
		if key := findListKey(d); key != "" {
			if arr, ok := d[key].([]interface{}); ok {
				return p.renderArray(arr)
			}
		}
		return p.renderKeyValue(d)
	case []interface{}:
		return p.renderArray(d)
	default:
		_, err := fmt.Fprintf(p.out, "%v\n", d)
		return err
	}
}

func findListKey(data map[string]interface{}) string {
	for _, key := range listKeys {
		if _, ok := data[key].([]interface{}); ok {
			return key
		}
	}
	return ""
}

func (p *Printer) renderKeyValue(data map[string]interface{}) error {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	t := p.newTable()
	p.appendHeader(t, table.Row{"Key", "Value"})
	for _, k := range keys {
		t.AppendRow(table.Row{text.FgHiCyan.Sprint(k), formatCell(data[k])})
	}
	t.Render()
	return nil
}

func (p *Printer) renderArray(data []interface{}) error {
	if len(data) == 0 {
		_, err := fmt.Fprintln(p.out, "No items found")
		return err
	}

	first, ok := data[0].(map[string]interface{})
	if !ok {
		for i, item := range data {
			if _, err := fmt.Fprintf(p.out, "%d. %v\n", i+1, item); err != nil {
				return err
			}
		}
		return nil
	}

	columns := columnsOf(first)
	t := p.newTable()
	header := make(table.Row, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	p.appendHeader(t, header)

	for _, item := range data {
		obj, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		row := make(table.Row, len(columns))
		for i, c := range columns {
			row[i] = formatCell(obj[c])
		}
		t.AppendRow(row)
	}
	t.Render()
	return nil
}

// columnsOf returns the scalar keys of obj with preferred columns first and
// the rest sorted.
func columnsOf(obj map[string]interface{}) []string {
	seen := make(map[string]bool)
	var columns []string
	for _, c := range preferredColumns {
		if _, ok := obj[c]; ok {
			columns = append(columns, c)
			seen[c] = true
		}
	}

	var rest []string
	for k, v := range obj {
		if seen[k] {
			continue
		}
		switch v.(type) {
		case map[string]interface{}, []interface{}:
			continue
		}
		rest = append(rest, k)
	}
	sort.Strings(rest)
	return append(columns, rest...)
}

func formatCell(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "-"
	case string:
		if v == "" {
			return "-"
		}
		return truncate(v)
	case float64:
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%.2f", v)
	case []interface{}:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, fmt.Sprintf("%v", item))
		}
		return truncate(strings.Join(parts, ", "))
	case map[string]interface{}:
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return truncate(string(raw))
	default:
		return truncate(fmt.Sprintf("%v", v))
	}
}

func formatArgs(schema mcp.ToolInputSchema) string {
	if len(schema.Properties) == 0 {
		return "-"
	}
	required := make(map[string]bool, len(schema.Required))
	for _, r := range schema.Required {
		required[r] = true
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	for i, name := range names {
		if required[name] {
			names[i] = name + "*"
		}
	}
	return strings.Join(names, ", ")
}

// truncate collapses whitespace to single spaces and cuts s to
// maxCellWidth runes.
func truncate(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) > maxCellWidth {
		return string(runes[:maxCellWidth-3]) + "..."
	}
	return s
}
