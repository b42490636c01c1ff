package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/mark3labs/mcp-go/mcp"
	"gopkg.in/yaml.v3"
)

// OutputFormat represents the supported output formats for CLI commands
type OutputFormat string

const (
	// OutputFormatTable renders a table
	OutputFormatTable OutputFormat = "table"
	// OutputFormatJSON prints indented JSON
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatYAML prints YAML
	OutputFormatYAML OutputFormat = "yaml"
	// OutputFormatTemplate renders a Go template with sprig functions
	OutputFormatTemplate OutputFormat = "template"
)

// DefaultStatusTemplate is used by `status -o template` when no --template is given.
const DefaultStatusTemplate = `hive {{.hive_id | trunc 8}} (generation {{.generation}}): ` +
	`{{.metrics.total_agents}} agents, {{.metrics.active_agents}} active, ` +
	`{{.metrics.task_metrics.total_tasks}} tasks, energy {{.total_energy | printf "%.1f"}}
`

// ValidateOutputFormat checks that format is one of formats.
func ValidateOutputFormat(format string, formats ...OutputFormat) error {
	if len(formats) == 0 {
		formats = []OutputFormat{OutputFormatTable, OutputFormatJSON, OutputFormatYAML}
	}
	names := make([]string, 0, len(formats))
	for _, f := range formats {
		if OutputFormat(format) == f {
			return nil
		}
		names = append(names, string(f))
	}
	return fmt.Errorf("unsupported output format %q (valid: %s)", format, strings.Join(names, ", "))
}

// Printer writes command results in the configured format.
type Printer struct {
	out       io.Writer
	format    OutputFormat
	template  string
	noHeaders bool
}

// NewPrinter creates a printer. A nil writer prints to stdout.
func NewPrinter(out io.Writer, options ExecutorOptions) *Printer {
	if out == nil {
		out = os.Stdout
	}
	format := options.Format
	if format == "" {
		format = OutputFormatTable
	}
	return &Printer{
		out:       out,
		format:    format,
		template:  options.Template,
		noHeaders: options.NoHeaders,
	}
}

// PrintTools prints a tool listing.
func (p *Printer) PrintTools(tools []mcp.Tool) error {
	if p.format == OutputFormatTable {
		return p.renderTools(tools)
	}
	type toolRow struct {
		Name        string                 `json:"name" yaml:"name"`
		Description string                 `json:"description" yaml:"description"`
		InputSchema map[string]interface{} `json:"inputSchema,omitempty" yaml:"inputSchema,omitempty"`
	}
	rows := make([]toolRow, 0, len(tools))
	for _, t := range tools {
		row := toolRow{Name: t.Name, Description: t.Description}
		if len(t.InputSchema.Properties) > 0 {
			row.InputSchema = map[string]interface{}{
				"type":       t.InputSchema.Type,
				"properties": t.InputSchema.Properties,
			}
			if len(t.InputSchema.Required) > 0 {
				row.InputSchema["required"] = t.InputSchema.Required
			}
		}
		rows = append(rows, row)
	}
	return p.printStructured(rows)
}

// PrintText prints a tool or resource text body. JSON bodies are rendered in
// the configured format; anything else is printed as is.
func (p *Printer) PrintText(body string) error {
	var data interface{}
	if err := json.Unmarshal([]byte(body), &data); err != nil {
		_, err := fmt.Fprintln(p.out, body)
		return err
	}

	switch p.format {
	case OutputFormatJSON:
		_, err := fmt.Fprintln(p.out, body)
		return err
	case OutputFormatTable:
		return p.renderData(data)
	default:
		return p.printStructured(data)
	}
}

func (p *Printer) printStructured(data interface{}) error {
	switch p.format {
	case OutputFormatJSON:
		enc := json.NewEncoder(p.out)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	case OutputFormatYAML:
		return p.outputYAML(data)
	case OutputFormatTemplate:
		return p.outputTemplate(data)
	case OutputFormatTable:
		return p.renderData(data)
	default:
		return fmt.Errorf("unsupported output format: %s", p.format)
	}
}

func (p *Printer) outputYAML(data interface{}) error {
	yamlData, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to convert to YAML: %w", err)
	}
	_, err = p.out.Write(yamlData)
	return err
}

// outputTemplate executes the template against the JSON view of data so
// field names match the JSON output.
func (p *Printer) outputTemplate(data interface{}) error {
	source := p.template
	if source == "" {
		source = DefaultStatusTemplate
	}
	tmpl, err := template.New("output").Funcs(sprig.TxtFuncMap()).Parse(source)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	var view interface{}
	if err := json.Unmarshal(raw, &view); err != nil {
		return err
	}

	if err := tmpl.Execute(p.out, view); err != nil {
		return fmt.Errorf("failed to render template: %w", err)
	}
	return nil
}
