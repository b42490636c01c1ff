package cli

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
)

// ConnectionErrorType categorizes why a hive server could not be reached.
type ConnectionErrorType int

const (
	// ConnectionErrorUnknown is an unclassified failure.
	ConnectionErrorUnknown ConnectionErrorType = iota
	// ConnectionErrorRefused means nothing is listening on the endpoint.
	ConnectionErrorRefused
	// ConnectionErrorTimeout means the server did not answer in time.
	ConnectionErrorTimeout
	// ConnectionErrorDNS means the endpoint host could not be resolved.
	ConnectionErrorDNS
	// ConnectionErrorProtocol means something answered but did not speak MCP.
	ConnectionErrorProtocol
)

// String returns a human-readable name for the connection error type.
func (t ConnectionErrorType) String() string {
	switch t {
	case ConnectionErrorRefused:
		return "Connection refused"
	case ConnectionErrorTimeout:
		return "Connection timeout"
	case ConnectionErrorDNS:
		return "DNS resolution error"
	case ConnectionErrorProtocol:
		return "Protocol error"
	default:
		return "Connection error"
	}
}

// ConnectionError wraps a failure to connect to a hive server endpoint.
type ConnectionError struct {
	Endpoint string
	Type     ConnectionErrorType
	Reason   error
}

// Error returns the failure with a hint for the likely fix.
func (e *ConnectionError) Error() string {
	msg := fmt.Sprintf("%s: cannot reach hive server at %s: %v", e.Type, e.Endpoint, e.Reason)
	switch e.Type {
	case ConnectionErrorRefused:
		return msg + "\n\nStart a server with: hivemcp serve"
	case ConnectionErrorProtocol:
		return msg + "\n\nCheck that --endpoint points at the /mcp path of the http bridge or a streamable-http server"
	default:
		return msg
	}
}

// Unwrap returns the underlying error.
func (e *ConnectionError) Unwrap() error {
	return e.Reason
}

// ClassifyConnectionError wraps err in a ConnectionError. A nil err stays nil.
func ClassifyConnectionError(err error, endpoint string) *ConnectionError {
	if err == nil {
		return nil
	}

	ce := &ConnectionError{Endpoint: endpoint, Type: ConnectionErrorUnknown, Reason: err}

	var dnsErr *net.DNSError
	switch {
	case errors.As(err, &dnsErr):
		ce.Type = ConnectionErrorDNS
	case isTimeoutError(err):
		ce.Type = ConnectionErrorTimeout
	case containsAny(err.Error(), "connection refused", "connect:", "no route to host", "network is unreachable"):
		ce.Type = ConnectionErrorRefused
	case containsAny(err.Error(), "status 404", "404", "unexpected status", "invalid character"):
		ce.Type = ConnectionErrorProtocol
	}
	return ce
}

func isTimeoutError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return true
	}
	return containsAny(err.Error(), "timeout", "deadline exceeded")
}

func containsAny(s string, keywords ...string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
