package tools

import (
	"hivemcp/internal/hive"
	"hivemcp/internal/nlp"
)

// ToolName identifies one entry of the tool catalog.
type ToolName string

// Tool name constants, in catalog order.
const (
	// ToolCreateSwarmAgent creates a single agent.
	ToolCreateSwarmAgent ToolName = "create_swarm_agent"

	// ToolAssignSwarmTask submits a task and auto-assigns it when possible.
	ToolAssignSwarmTask ToolName = "assign_swarm_task"

	// ToolGetSwarmStatus returns the hive snapshot.
	ToolGetSwarmStatus ToolName = "get_swarm_status"

	// ToolAnalyzeWithNLP runs the text analyzer.
	ToolAnalyzeWithNLP ToolName = "analyze_with_nlp"

	// ToolCoordinateAgents runs a coordination pass.
	ToolCoordinateAgents ToolName = "coordinate_agents"

	// ToolEcho returns its message unchanged.
	ToolEcho ToolName = "echo"

	// ToolSystemInfo reports host information.
	ToolSystemInfo ToolName = "system_info"

	// ToolListAgents lists agents with optional filters.
	ToolListAgents ToolName = "list_agents"

	// ToolListTasks lists tasks with optional filters.
	ToolListTasks ToolName = "list_tasks"

	// ToolGetAgentDetails returns one agent.
	ToolGetAgentDetails ToolName = "get_agent_details"

	// ToolGetTaskDetails returns one task.
	ToolGetTaskDetails ToolName = "get_task_details"

	// ToolBatchCreateAgents creates up to ten agents at once.
	ToolBatchCreateAgents ToolName = "batch_create_agents"
)

// AllToolNames lists every tool in the order tools/list reports them.
var AllToolNames = []ToolName{
	ToolCreateSwarmAgent,
	ToolAssignSwarmTask,
	ToolGetSwarmStatus,
	ToolAnalyzeWithNLP,
	ToolCoordinateAgents,
	ToolEcho,
	ToolSystemInfo,
	ToolListAgents,
	ToolListTasks,
	ToolGetAgentDetails,
	ToolGetTaskDetails,
	ToolBatchCreateAgents,
}

// CreateAgentResponse is the payload of create_swarm_agent.
type CreateAgentResponse struct {
	Success bool       `json:"success"`
	AgentID string     `json:"agent_id"`
	Agent   hive.Agent `json:"agent"`
}

// AssignTaskResponse is the payload of assign_swarm_task.
type AssignTaskResponse struct {
	Success  bool      `json:"success"`
	TaskID   string    `json:"task_id"`
	Assigned bool      `json:"assigned"`
	AgentID  string    `json:"agent_id,omitempty"`
	Task     hive.Task `json:"task"`
}

// AnalyzeResponse is the payload of analyze_with_nlp.
type AnalyzeResponse struct {
	Analysis nlp.Analysis `json:"analysis"`
	Text     string       `json:"text"`
}
