// Package api holds the contracts shared between hivemcp packages.
//
// Tool and resource providers implement ToolProvider and ResourceProvider;
// the protocol server only ever talks to these interfaces, so the hive,
// the tool registry and the transports never import each other directly.
//
// # Errors
//
// Three error types classify tool failures:
//   - ValidationError: arguments rejected by a tool schema
//   - NotFoundError: an agent, task, tool or resource does not exist
//   - CollaboratorError: an external capability (text analysis) failed or timed out
//
// Use IsValidation, IsNotFound and IsCollaborator instead of type assertions,
// since errors are usually wrapped on their way up.
package api
