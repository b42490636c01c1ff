// Package tools is the registry of the twelve hive tools.
//
// Each tool is one row of a static table binding its ToolName to a
// description, a validation schema and a handler. The Provider implements
// api.ToolProvider on top of that table: ExecuteTool validates the raw
// arguments, converts them into typed arguments and calls the orchestrator.
//
// Every tool except echo answers with a JSON document as its text content;
// echo returns its message verbatim.
package tools
