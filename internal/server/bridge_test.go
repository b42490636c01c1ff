package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hivemcp/internal/hive"
)

func newTestBridge(t *testing.T) (*httptest.Server, *hive.Orchestrator) {
	t.Helper()
	d, orch := newTestDispatcher(t)
	b := NewBridge(d, orch, BridgeOptions{Metrics: NewMetrics(orch), Hub: NewHub()})
	srv := httptest.NewServer(b.Handler())
	t.Cleanup(srv.Close)
	return srv, orch
}

func postRPC(t *testing.T, url, body string) (*http.Response, map[string]interface{}) {
	t.Helper()
	resp, err := http.Post(url+"/", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(data) == 0 {
		return resp, nil
	}
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &out))
	return resp, out
}

func TestBridge_RPC(t *testing.T) {
	srv, orch := newTestBridge(t)

	resp, out := postRPC(t, srv.URL, `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"create_swarm_agent","arguments":{"agent_type":"Specialist","specialization":"nlp"}}}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), out["id"])
	assert.Contains(t, out, "result")
	assert.Equal(t, 1, orch.Status().Metrics.TotalAgents)

	resp, out = postRPC(t, srv.URL, `{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"create_swarm_agent","arguments":{"agent_type":"robot"}}}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	code, message := errorOf(t, out)
	assert.Equal(t, float64(codeInternalError), code)
	assert.Contains(t, message, "Invalid agent type")

	resp, out = postRPC(t, srv.URL, `{"jsonrpc":"2.0","method":"notifications/initialized"}`)
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.Nil(t, out)

	_, out = postRPC(t, srv.URL, `garbage`)
	code, _ = errorOf(t, out)
	assert.Equal(t, float64(codeParseError), code)
}

func TestBridge_Health(t *testing.T) {
	srv, orch := newTestBridge(t)
	_, err := orch.BatchCreateAgents(context.Background(), 2, hive.AgentSpec{Type: hive.AgentWorker})
	require.NoError(t, err)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "mcp-http", body["service"])
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, true, body["hive_connected"])
	assert.Equal(t, float64(2), body["total_agents"])
	assert.Equal(t, float64(0), body["active_agents"])
}

func TestBridge_Metrics(t *testing.T) {
	srv, _ := newTestBridge(t)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(data), "hivemcp_hive_generation")
}

func TestBridge_CORS(t *testing.T) {
	srv, _ := newTestBridge(t)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}
