package tools

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hivemcp/internal/api"
	"hivemcp/internal/hive"
	"hivemcp/internal/nlp"
	"hivemcp/internal/schema"
	"hivemcp/internal/sysinfo"
)

func newTestProvider(t *testing.T) (*Provider, *hive.Orchestrator) {
	t.Helper()
	orch := hive.New(hive.NewState(), hive.Config{})
	host := sysinfo.Static{Hostname: "test-host", Platform: "linux", Architecture: "amd64", CPUCount: 8, GoVersion: "go1.25"}
	return NewProvider(orch, nlp.NewKeywordAnalyzer(), host), orch
}

func call(t *testing.T, p *Provider, name ToolName, args map[string]interface{}) string {
	t.Helper()
	result, err := p.ExecuteTool(context.Background(), string(name), args)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError)
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(string)
	require.True(t, ok, "content should be text")
	return text
}

func callJSON(t *testing.T, p *Provider, name ToolName, args map[string]interface{}) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(call(t, p, name, args)), &out))
	return out
}

func TestExecuteTool_UnknownTool(t *testing.T) {
	p, _ := newTestProvider(t)
	_, err := p.ExecuteTool(context.Background(), "nonexistent_tool", nil)
	require.Error(t, err)
	assert.True(t, api.IsNotFound(err))
	assert.Equal(t, "Unknown tool: nonexistent_tool", err.Error())
}

func TestExecuteTool_ValidationPrecedesMutation(t *testing.T) {
	p, orch := newTestProvider(t)
	tests := []struct {
		tool    ToolName
		args    map[string]interface{}
		wantErr string
	}{
		{ToolCreateSwarmAgent, map[string]interface{}{"agent_type": nil}, "Agent type is required"},
		{ToolCreateSwarmAgent, map[string]interface{}{"agent_type": float64(123)}, "Agent type is required"},
		{ToolCreateSwarmAgent, map[string]interface{}{"agent_type": "invalid_type"}, "Invalid agent type"},
		{ToolBatchCreateAgents, map[string]interface{}{"count": float64(0), "agent_type": "worker"}, "Invalid count"},
		{ToolBatchCreateAgents, map[string]interface{}{"count": float64(11), "agent_type": "worker"}, "Invalid count"},
		{ToolBatchCreateAgents, map[string]interface{}{"count": "not_a_number", "agent_type": "worker"}, "Missing required parameter: count"},
		{ToolBatchCreateAgents, map[string]interface{}{"count": 3.5, "agent_type": "worker"}, "Missing required parameter: count"},
		{ToolAssignSwarmTask, map[string]interface{}{"priority": "High"}, "Missing required parameter: description"},
		{ToolAssignSwarmTask, map[string]interface{}{"description": "   ", "priority": "High"}, "Missing required parameter: description"},
		{ToolAssignSwarmTask, map[string]interface{}{"description": "x", "priority": "Urgent"}, "Invalid priority"},
		{ToolCoordinateAgents, map[string]interface{}{"strategy": "chaotic"}, "Invalid strategy"},
		{ToolAnalyzeWithNLP, nil, "Missing text to analyze"},
		{ToolEcho, map[string]interface{}{}, "Missing required parameter: message"},
		{ToolListAgents, map[string]interface{}{"agent_type": "robot"}, "Invalid agent type"},
		{ToolListTasks, map[string]interface{}{"status": "Done"}, "Invalid status"},
	}

	for _, tt := range tests {
		t.Run(string(tt.tool)+"/"+tt.wantErr, func(t *testing.T) {
			_, err := p.ExecuteTool(context.Background(), string(tt.tool), tt.args)
			require.Error(t, err)
			assert.True(t, api.IsValidation(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
	assert.Equal(t, uint64(0), orch.Status().Generation)
}

func TestCreateSwarmAgent(t *testing.T) {
	p, orch := newTestProvider(t)

	out := callJSON(t, p, ToolCreateSwarmAgent, map[string]interface{}{"agent_type": "worker"})
	assert.Equal(t, true, out["success"])
	id, _ := out["agent_id"].(string)
	require.NotEmpty(t, id)

	details, err := orch.Agent(id)
	require.NoError(t, err)
	assert.Equal(t, hive.AgentWorker, details.Agent.Type)
}

func TestBatchCreateAgents(t *testing.T) {
	p, _ := newTestProvider(t)

	var res hive.BatchResult
	text := call(t, p, ToolBatchCreateAgents, map[string]interface{}{"count": float64(5), "agent_type": "Coordinator"})
	require.NoError(t, json.Unmarshal([]byte(text), &res))

	assert.True(t, res.Success)
	assert.Equal(t, 5, res.CreatedCount)
	assert.Len(t, res.AgentIDs, 5)
}

func TestAssignSwarmTask(t *testing.T) {
	p, _ := newTestProvider(t)

	out := callJSON(t, p, ToolAssignSwarmTask, map[string]interface{}{"description": "Process <data> & report", "priority": "High"})
	assert.Equal(t, true, out["success"])
	assert.Equal(t, false, out["assigned"])
	task := out["task"].(map[string]interface{})
	assert.Equal(t, "Pending", task["status"])

	call(t, p, ToolCreateSwarmAgent, map[string]interface{}{"agent_type": "Worker"})
	out = callJSON(t, p, ToolAssignSwarmTask, map[string]interface{}{"description": "next", "priority": "Low"})
	assert.Equal(t, true, out["assigned"])
	assert.NotEmpty(t, out["agent_id"])
}

func TestAssignSwarmTask_NoHTMLEscaping(t *testing.T) {
	p, _ := newTestProvider(t)
	text := call(t, p, ToolAssignSwarmTask, map[string]interface{}{"description": "a <b> & c", "priority": "Medium"})
	assert.Contains(t, text, "a <b> & c")
}

func TestGetSwarmStatus_Idempotent(t *testing.T) {
	p, _ := newTestProvider(t)
	call(t, p, ToolBatchCreateAgents, map[string]interface{}{"count": float64(3), "agent_type": "worker"})

	first := call(t, p, ToolGetSwarmStatus, nil)
	second := call(t, p, ToolGetSwarmStatus, map[string]interface{}{})
	assert.Equal(t, first, second)

	var status map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(first), &status))
	assert.NotEmpty(t, status["hive_id"])
	assert.Contains(t, status, "swarm_center")
	assert.Contains(t, status, "total_energy")
	metrics := status["metrics"].(map[string]interface{})
	agentMetrics := metrics["agent_metrics"].(map[string]interface{})
	assert.Equal(t, float64(3), agentMetrics["total_agents"])
}

func TestAnalyzeWithNLP(t *testing.T) {
	p, _ := newTestProvider(t)
	out := callJSON(t, p, ToolAnalyzeWithNLP, map[string]interface{}{"text": "This is a great swarm"})
	assert.Equal(t, "This is a great swarm", out["text"])
	analysis := out["analysis"].(map[string]interface{})
	assert.Equal(t, "positive", analysis["sentiment"])
}

func TestAnalyzeWithNLP_CollaboratorFailure(t *testing.T) {
	orch := hive.New(hive.NewState(), hive.Config{})
	failing := nlp.NewBounded(nlp.AnalyzerFunc(func(context.Context, string) (nlp.Analysis, error) {
		return nlp.Analysis{}, errors.New("backend down")
	}), time.Second)
	p := NewProvider(orch, failing, nil)

	_, err := p.ExecuteTool(context.Background(), string(ToolAnalyzeWithNLP), map[string]interface{}{"text": "hello"})
	require.Error(t, err)
	assert.True(t, api.IsCollaborator(err))
	assert.Contains(t, err.Error(), "backend down")
}

func TestCoordinateAgents(t *testing.T) {
	p, _ := newTestProvider(t)
	out := callJSON(t, p, ToolCoordinateAgents, map[string]interface{}{"strategy": "balanced"})
	assert.Equal(t, true, out["success"])
	assert.Equal(t, "balanced", out["strategy"])
	assert.Contains(t, out, "recommendations")
}

func TestEcho(t *testing.T) {
	p, _ := newTestProvider(t)
	msg := "Hello from MCP test suite!"
	assert.Equal(t, msg, call(t, p, ToolEcho, map[string]interface{}{"message": msg}))
}

func TestSystemInfo(t *testing.T) {
	p, _ := newTestProvider(t)
	out := callJSON(t, p, ToolSystemInfo, nil)
	assert.Equal(t, "test-host", out["hostname"])
	assert.Equal(t, "linux", out["platform"])
	assert.Equal(t, "amd64", out["architecture"])
	assert.Equal(t, float64(8), out["cpu_count"])
}

func TestListAgentsAndTasks(t *testing.T) {
	p, _ := newTestProvider(t)
	call(t, p, ToolBatchCreateAgents, map[string]interface{}{"count": float64(2), "agent_type": "worker"})
	call(t, p, ToolCreateSwarmAgent, map[string]interface{}{"agent_type": "learner"})
	call(t, p, ToolAssignSwarmTask, map[string]interface{}{"description": "t1", "priority": "High"})

	out := callJSON(t, p, ToolListAgents, map[string]interface{}{"agent_type": "Learner"})
	assert.Equal(t, float64(1), out["count"])
	assert.Equal(t, float64(3), out["total_agents"])
	assert.Equal(t, float64(1), out["active_agents"])
	filter := out["filter_applied"].(map[string]interface{})
	assert.Equal(t, "Learner", filter["agent_type"])

	out = callJSON(t, p, ToolListAgents, map[string]interface{}{"agent_type": "Coordinator"})
	assert.Equal(t, float64(0), out["count"])
	assert.Equal(t, float64(3), out["total_agents"])
	assert.Contains(t, out, "filter_applied")

	out = callJSON(t, p, ToolListTasks, map[string]interface{}{"priority": "High"})
	assert.Equal(t, float64(1), out["count"])
	assert.Equal(t, float64(1), out["total_tasks"])
}

func TestFilterArgs(t *testing.T) {
	af, err := newAgentFilter(schema.Values{"agent_type": "learner", "state": "WORKING"})
	require.NoError(t, err)
	assert.Equal(t, hive.AgentFilter{Type: hive.AgentLearner, State: hive.AgentWorking}, af)

	af, err = newAgentFilter(schema.Values{})
	require.NoError(t, err)
	assert.True(t, af.Empty())

	_, err = newAgentFilter(schema.Values{"state": "Sleeping"})
	assert.Error(t, err)

	tf, err := newTaskFilter(schema.Values{"priority": "Low", "status": "InProgress"})
	require.NoError(t, err)
	assert.Equal(t, hive.TaskFilter{Priority: hive.PriorityLow, Status: hive.TaskInProgress}, tf)

	_, err = newTaskFilter(schema.Values{"status": "inprogress"})
	assert.Error(t, err)
	_, err = newTaskFilter(schema.Values{"priority": "Urgent"})
	assert.Error(t, err)
}

func TestGetDetails(t *testing.T) {
	p, _ := newTestProvider(t)
	created := callJSON(t, p, ToolCreateSwarmAgent, map[string]interface{}{"agent_type": "worker"})
	assigned := callJSON(t, p, ToolAssignSwarmTask, map[string]interface{}{"description": "x", "priority": "Low"})

	agent := callJSON(t, p, ToolGetAgentDetails, map[string]interface{}{"agent_id": created["agent_id"]})
	assert.Equal(t, created["agent_id"], agent["agent"].(map[string]interface{})["id"])
	assert.Equal(t, assigned["task_id"], agent["current_task"].(map[string]interface{})["id"])

	task := callJSON(t, p, ToolGetTaskDetails, map[string]interface{}{"task_id": assigned["task_id"]})
	assert.Equal(t, "Assigned", task["task"].(map[string]interface{})["status"])

	_, err := p.ExecuteTool(context.Background(), string(ToolGetAgentDetails), map[string]interface{}{"agent_id": "missing"})
	require.Error(t, err)
	assert.True(t, api.IsNotFound(err))
}
