package tools

import (
	"context"

	"hivemcp/internal/api"
	"hivemcp/internal/schema"
)

// handlerFunc runs a tool once its arguments have passed validation.
type handlerFunc func(p *Provider, ctx context.Context, v schema.Values) (*api.CallToolResult, error)

type entry struct {
	name        ToolName
	description string
	schema      schema.Schema
	handle      handlerFunc
}

// catalog is the static tool table. Its order is the order of tools/list.
var catalog = []entry{
	{
		name:        ToolCreateSwarmAgent,
		description: "Create a new agent in the swarm with specified type and capabilities",
		schema:      schema.CreateSwarmAgent,
		handle:      (*Provider).handleCreateSwarmAgent,
	},
	{
		name:        ToolAssignSwarmTask,
		description: "Assign a new task to the swarm with specified priority",
		schema:      schema.AssignSwarmTask,
		handle:      (*Provider).handleAssignSwarmTask,
	},
	{
		name:        ToolGetSwarmStatus,
		description: "Get the current status of the multiagent hive system",
		schema:      schema.GetSwarmStatus,
		handle:      (*Provider).handleGetSwarmStatus,
	},
	{
		name:        ToolAnalyzeWithNLP,
		description: "Analyze text using the hive's NLP capabilities",
		schema:      schema.AnalyzeWithNLP,
		handle:      (*Provider).handleAnalyzeWithNLP,
	},
	{
		name:        ToolCoordinateAgents,
		description: "Coordinate agents in the swarm using specified strategy",
		schema:      schema.CoordinateAgents,
		handle:      (*Provider).handleCoordinateAgents,
	},
	{
		name:        ToolEcho,
		description: "Echo a message back unchanged",
		schema:      schema.Echo,
		handle:      (*Provider).handleEcho,
	},
	{
		name:        ToolSystemInfo,
		description: "Get system information including platform, architecture, and CPU count",
		schema:      schema.SystemInfo,
		handle:      (*Provider).handleSystemInfo,
	},
	{
		name:        ToolListAgents,
		description: "List agents in the swarm, optionally filtered by type and state",
		schema:      schema.ListAgents,
		handle:      (*Provider).handleListAgents,
	},
	{
		name:        ToolListTasks,
		description: "List tasks in the swarm, optionally filtered by priority and status",
		schema:      schema.ListTasks,
		handle:      (*Provider).handleListTasks,
	},
	{
		name:        ToolGetAgentDetails,
		description: "Get details of a single agent including its current task",
		schema:      schema.GetAgentDetails,
		handle:      (*Provider).handleGetAgentDetails,
	},
	{
		name:        ToolGetTaskDetails,
		description: "Get details of a single task including its assigned agent",
		schema:      schema.GetTaskDetails,
		handle:      (*Provider).handleGetTaskDetails,
	},
	{
		name:        ToolBatchCreateAgents,
		description: "Create between 1 and 10 agents of the same type in one step",
		schema:      schema.BatchCreateAgents,
		handle:      (*Provider).handleBatchCreateAgents,
	},
}
