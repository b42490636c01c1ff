package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyConnectionError(t *testing.T) {
	endpoint := "http://localhost:3002/mcp"

	assert.Nil(t, ClassifyConnectionError(nil, endpoint))

	tests := []struct {
		name string
		err  error
		want ConnectionErrorType
	}{
		{"refused", errors.New("dial tcp 127.0.0.1:3002: connect: connection refused"), ConnectionErrorRefused},
		{"dns", fmt.Errorf("wrapped: %w", &net.DNSError{Err: "no such host", Name: "hive.invalid"}), ConnectionErrorDNS},
		{"deadline", fmt.Errorf("initialize: %w", context.DeadlineExceeded), ConnectionErrorTimeout},
		{"not found", errors.New("request failed with status 404"), ConnectionErrorProtocol},
		{"other", errors.New("boom"), ConnectionErrorUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ce := ClassifyConnectionError(tt.err, endpoint)
			assert.Equal(t, tt.want, ce.Type)
			assert.Equal(t, endpoint, ce.Endpoint)
			assert.ErrorIs(t, ce, tt.err)
			assert.Contains(t, ce.Error(), endpoint)
		})
	}
}

func TestConnectionError_Hints(t *testing.T) {
	refused := &ConnectionError{Endpoint: "x", Type: ConnectionErrorRefused, Reason: errors.New("refused")}
	assert.Contains(t, refused.Error(), "hivemcp serve")

	protocol := &ConnectionError{Endpoint: "x", Type: ConnectionErrorProtocol, Reason: errors.New("404")}
	assert.Contains(t, protocol.Error(), "/mcp")

	assert.Equal(t, "Connection error", ConnectionErrorUnknown.String())
}
