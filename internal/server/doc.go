// Package server exposes the hive over the Model Context Protocol.
//
// The Dispatcher owns an MCP server with every hive tool and resource
// registered on it. All transports funnel into Dispatcher.HandleMessage:
//
//	stdio            one JSON-RPC message per line (ServeLines)
//	streamable-http  the MCP streamable HTTP transport
//	sse              the MCP server-sent events transport
//	http             the Bridge: plain JSON-RPC over POST, plus health,
//	                 Prometheus metrics and a websocket event feed
//
// # Error Mapping
//
// Validation, lookup and collaborator failures from the tool provider are
// returned to the client as JSON-RPC errors with code -32603 and the
// failure text as the message. Unparseable input yields -32700 and unknown
// methods yield -32601.
//
// # Events
//
// The Hub implements hive.EventSink and fans every hive event out to the
// connected websocket clients. Slow clients lose events rather than
// blocking the hive.
package server
