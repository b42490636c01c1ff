package tools

import (
	"context"
	"fmt"

	"hivemcp/internal/api"
	"hivemcp/internal/schema"
)

func (p *Provider) handleCreateSwarmAgent(ctx context.Context, v schema.Values) (*api.CallToolResult, error) {
	args := newCreateAgentArgs(v)
	agent, err := p.orch.CreateAgent(ctx, args.spec)
	if err != nil {
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}
	return jsonResult(CreateAgentResponse{
		Success: true,
		AgentID: agent.ID,
		Agent:   agent,
	})
}

func (p *Provider) handleBatchCreateAgents(ctx context.Context, v schema.Values) (*api.CallToolResult, error) {
	args := newBatchCreateArgs(v)
	result, err := p.orch.BatchCreateAgents(ctx, args.count, args.spec)
	if err != nil {
		return nil, fmt.Errorf("failed to create agents: %w", err)
	}
	return jsonResult(result)
}

func (p *Provider) handleAssignSwarmTask(ctx context.Context, v schema.Values) (*api.CallToolResult, error) {
	args := newAssignTaskArgs(v)
	task, err := p.orch.AssignTask(ctx, args.spec)
	if err != nil {
		return nil, fmt.Errorf("failed to assign task: %w", err)
	}
	return jsonResult(AssignTaskResponse{
		Success:  true,
		TaskID:   task.ID,
		Assigned: task.AgentID != "",
		AgentID:  task.AgentID,
		Task:     task,
	})
}

func (p *Provider) handleGetSwarmStatus(_ context.Context, _ schema.Values) (*api.CallToolResult, error) {
	return jsonResult(p.orch.Status())
}

func (p *Provider) handleAnalyzeWithNLP(ctx context.Context, v schema.Values) (*api.CallToolResult, error) {
	text := v.String("text")
	analysis, err := p.analyzer.Analyze(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("text analysis failed: %w", err)
	}
	return jsonResult(AnalyzeResponse{Analysis: analysis, Text: text})
}

func (p *Provider) handleCoordinateAgents(ctx context.Context, v schema.Values) (*api.CallToolResult, error) {
	args := newCoordinateArgs(v)
	result, err := p.orch.Coordinate(ctx, args.strategy)
	if err != nil {
		return nil, fmt.Errorf("coordination failed: %w", err)
	}
	return jsonResult(result)
}

func (p *Provider) handleEcho(_ context.Context, v schema.Values) (*api.CallToolResult, error) {
	return textResult(v.String("message")), nil
}

func (p *Provider) handleSystemInfo(_ context.Context, _ schema.Values) (*api.CallToolResult, error) {
	return jsonResult(p.host.Info())
}

func (p *Provider) handleListAgents(_ context.Context, v schema.Values) (*api.CallToolResult, error) {
	filter, err := newAgentFilter(v)
	if err != nil {
		return nil, err
	}
	return jsonResult(p.orch.ListAgents(filter))
}

func (p *Provider) handleListTasks(_ context.Context, v schema.Values) (*api.CallToolResult, error) {
	filter, err := newTaskFilter(v)
	if err != nil {
		return nil, err
	}
	return jsonResult(p.orch.ListTasks(filter))
}

func (p *Provider) handleGetAgentDetails(_ context.Context, v schema.Values) (*api.CallToolResult, error) {
	details, err := p.orch.Agent(v.String("agent_id"))
	if err != nil {
		return nil, err
	}
	return jsonResult(details)
}

func (p *Provider) handleGetTaskDetails(_ context.Context, v schema.Values) (*api.CallToolResult, error) {
	details, err := p.orch.Task(v.String("task_id"))
	if err != nil {
		return nil, err
	}
	return jsonResult(details)
}
