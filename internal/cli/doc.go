// Package cli provides the command-line plumbing shared by the hivemcp
// commands.
//
// # Core Components
//
// ToolExecutor connects to a running hive server through the MCP client,
// shows a progress spinner while connecting and prints results:
//   - Tool calls with arguments parsed from --arg key=value pairs and --args JSON
//   - Reads of the hive://status resource
//   - Tool listings from the server or from the offline catalog
//
// Printer renders results in one of four output formats:
//   - table: go-pretty tables; list results (agents, tasks) become one row per item
//   - json: indented JSON as returned by the server
//   - yaml: YAML converted from the JSON result
//   - template: a Go text/template with the sprig function map
//
// Connection failures are classified into ConnectionError values so commands
// can print a short hint instead of a raw transport error.
package cli
