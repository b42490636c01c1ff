package server

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hivemcp/internal/api"
	"hivemcp/internal/hive"
)

func TestMetrics_ToolCalls(t *testing.T) {
	orch := hive.New(hive.NewState(), hive.Config{})
	m := NewMetrics(orch)
	d, _ := newTestDispatcher(t, WithMetrics(m))

	roundTrip(t, d, `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"echo","arguments":{"message":"a"}}}`)
	roundTrip(t, d, `{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"echo","arguments":{"message":"b"}}}`)
	roundTrip(t, d, `{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"echo","arguments":{}}}`)
	d.HandleMessage(context.Background(), json.RawMessage(`nope`))

	assert.Equal(t, float64(2), testutil.ToFloat64(m.toolCalls.WithLabelValues("echo", outcomeSuccess)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.toolCalls.WithLabelValues("echo", outcomeValidation)))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.requests.WithLabelValues("tools/call")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.requests.WithLabelValues("parse_error")))
}

func TestMetrics_HiveCollector(t *testing.T) {
	ctx := context.Background()
	orch := hive.New(hive.NewState(), hive.Config{})
	_, err := orch.BatchCreateAgents(ctx, 3, hive.AgentSpec{Type: hive.AgentWorker})
	require.NoError(t, err)
	_, err = orch.AssignTask(ctx, hive.TaskSpec{Description: "t", Priority: hive.PriorityHigh})
	require.NoError(t, err)

	m := NewMetrics(orch)
	expected := `
# HELP hivemcp_hive_tasks Tasks in the hive, by status.
# TYPE hivemcp_hive_tasks gauge
hivemcp_hive_tasks{status="Assigned"} 1
hivemcp_hive_tasks{status="Completed"} 0
hivemcp_hive_tasks{status="Failed"} 0
hivemcp_hive_tasks{status="InProgress"} 0
hivemcp_hive_tasks{status="Pending"} 0
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "hivemcp_hive_tasks"))

	expected = `
# HELP hivemcp_hive_agents Agents in the hive, by state.
# TYPE hivemcp_hive_agents gauge
hivemcp_hive_agents{state="Assigned"} 1
hivemcp_hive_agents{state="Completed"} 0
hivemcp_hive_agents{state="Failed"} 0
hivemcp_hive_agents{state="Idle"} 2
hivemcp_hive_agents{state="Working"} 0
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "hivemcp_hive_agents"))
}

func TestOutcomeOf(t *testing.T) {
	assert.Equal(t, outcomeSuccess, outcomeOf(nil))
	assert.Equal(t, outcomeValidation, outcomeOf(&api.ValidationError{Message: "bad"}))
	assert.Equal(t, outcomeNotFound, outcomeOf(api.NewAgentNotFoundError("a")))
	assert.Equal(t, outcomeCollaborator, outcomeOf(&api.CollaboratorError{Collaborator: "nlp", Err: errors.New("x")}))
	assert.Equal(t, outcomeError, outcomeOf(errors.New("other")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.observeRequest("initialize")
		m.observeToolCall("echo", nil, 0)
	})
}
