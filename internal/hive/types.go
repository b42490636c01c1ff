package hive

import (
	"fmt"
	"strings"
	"time"
)

// AgentType is the role of an agent in the swarm.
type AgentType string

const (
	AgentWorker      AgentType = "Worker"
	AgentCoordinator AgentType = "Coordinator"
	AgentSpecialist  AgentType = "Specialist"
	AgentLearner     AgentType = "Learner"
)

// AllAgentTypes lists agent types in canonical order.
var AllAgentTypes = []AgentType{AgentWorker, AgentCoordinator, AgentSpecialist, AgentLearner}

// ParseAgentType accepts any casing of a known agent type.
func ParseAgentType(s string) (AgentType, error) {
	for _, t := range AllAgentTypes {
		if strings.EqualFold(s, string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown agent type %q", s)
}

// AgentState is a position in the agent lifecycle:
// Idle -> Assigned -> Working -> {Completed, Failed} -> Idle.
type AgentState string

const (
	AgentIdle      AgentState = "Idle"
	AgentAssigned  AgentState = "Assigned"
	AgentWorking   AgentState = "Working"
	AgentCompleted AgentState = "Completed"
	AgentFailed    AgentState = "Failed"
)

var AllAgentStates = []AgentState{AgentIdle, AgentAssigned, AgentWorking, AgentCompleted, AgentFailed}

// ParseAgentState accepts any casing of a known agent state.
func ParseAgentState(s string) (AgentState, error) {
	for _, st := range AllAgentStates {
		if strings.EqualFold(s, string(st)) {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown agent state %q", s)
}

// Active reports whether the agent currently holds a task.
func (s AgentState) Active() bool {
	return s == AgentAssigned || s == AgentWorking
}

// Priority of a task. Values are case-significant.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

var AllPriorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// ParsePriority accepts only the exact spelling of a priority.
func ParsePriority(s string) (Priority, error) {
	for _, p := range AllPriorities {
		if s == string(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown priority %q", s)
}

// rank orders priorities from High (0) to Low (2).
func (p Priority) rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// TaskStatus is a position in the task lifecycle:
// Pending -> Assigned -> InProgress -> {Completed, Failed}.
type TaskStatus string

const (
	TaskPending    TaskStatus = "Pending"
	TaskAssigned   TaskStatus = "Assigned"
	TaskInProgress TaskStatus = "InProgress"
	TaskCompleted  TaskStatus = "Completed"
	TaskFailed     TaskStatus = "Failed"
)

var AllTaskStatuses = []TaskStatus{TaskPending, TaskAssigned, TaskInProgress, TaskCompleted, TaskFailed}

// ParseTaskStatus accepts only the exact spelling of a status.
func ParseTaskStatus(s string) (TaskStatus, error) {
	for _, st := range AllTaskStatuses {
		if s == string(st) {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown task status %q", s)
}

// Terminal reports whether the task can no longer change.
func (s TaskStatus) Terminal() bool {
	return s == TaskCompleted || s == TaskFailed
}

// Strategy names a coordination pass.
type Strategy string

const (
	StrategyDefault      Strategy = "default"
	StrategyBalanced     Strategy = "balanced"
	StrategyAggressive   Strategy = "aggressive"
	StrategyConservative Strategy = "conservative"
)

var AllStrategies = []Strategy{StrategyDefault, StrategyBalanced, StrategyAggressive, StrategyConservative}

// ParseStrategy accepts only the exact spelling of a strategy.
func ParseStrategy(s string) (Strategy, error) {
	for _, st := range AllStrategies {
		if s == string(st) {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown strategy %q", s)
}

// Position places an agent on the 10x10 swarm plane.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// AgentMetrics tracks the work history of one agent.
type AgentMetrics struct {
	TasksCompleted int     `json:"tasks_completed"`
	TasksFailed    int     `json:"tasks_failed"`
	SuccessRate    float64 `json:"success_rate"`
}

// Agent is a snapshot of one swarm member. Values returned by the
// orchestrator are copies; mutating them has no effect on the hive.
type Agent struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Type           AgentType    `json:"agent_type"`
	Specialization string       `json:"specialization,omitempty"`
	State          AgentState   `json:"state"`
	Position       Position     `json:"position"`
	Energy         float64      `json:"energy"`
	CurrentTaskID  string       `json:"current_task_id,omitempty"`
	Metrics        AgentMetrics `json:"metrics"`
	CreatedAt      time.Time    `json:"created_at"`
	LastActive     time.Time    `json:"last_active"`

	seq int
}

// Task is a snapshot of one unit of work.
type Task struct {
	ID          string     `json:"id"`
	Description string     `json:"description"`
	Priority    Priority   `json:"priority"`
	Status      TaskStatus `json:"status"`
	AgentID     string     `json:"agent_id,omitempty"`
	Error       string     `json:"error,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	AssignedAt  *time.Time `json:"assigned_at,omitempty"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	FinishedAt  *time.Time `json:"finished_at,omitempty"`

	seq int
}

// AgentSpec describes an agent to create.
type AgentSpec struct {
	Type           AgentType
	Specialization string
}

// TaskSpec describes a task to submit.
type TaskSpec struct {
	Description string
	Priority    Priority
}

// BatchResult reports the outcome of BatchCreateAgents.
type BatchResult struct {
	Success      bool     `json:"success"`
	CreatedCount int      `json:"created_count"`
	Requested    int      `json:"requested"`
	AgentIDs     []string `json:"agent_ids"`
	Error        string   `json:"error,omitempty"`
}

// CoordinationResult summarises a coordination pass.
type CoordinationResult struct {
	Success           bool     `json:"success"`
	Strategy          Strategy `json:"strategy"`
	AgentsCoordinated int      `json:"agents_coordinated"`
	TasksAssigned     int      `json:"tasks_assigned"`
	TasksStarted      int      `json:"tasks_started"`
	PendingTasks      int      `json:"pending_tasks"`
	Recommendations   []string `json:"recommendations"`
}

// AgentFilter narrows ListAgents. Zero values match everything.
type AgentFilter struct {
	Type  AgentType  `json:"agent_type,omitempty"`
	State AgentState `json:"state,omitempty"`
}

// Empty reports whether no filter field is set.
func (f AgentFilter) Empty() bool {
	return f.Type == "" && f.State == ""
}

func (f AgentFilter) matches(a *Agent) bool {
	return (f.Type == "" || a.Type == f.Type) && (f.State == "" || a.State == f.State)
}

// TaskFilter narrows ListTasks. Zero values match everything.
type TaskFilter struct {
	Priority Priority   `json:"priority,omitempty"`
	Status   TaskStatus `json:"status,omitempty"`
}

// Empty reports whether no filter field is set.
func (f TaskFilter) Empty() bool {
	return f.Priority == "" && f.Status == ""
}

func (f TaskFilter) matches(t *Task) bool {
	return (f.Priority == "" || t.Priority == f.Priority) && (f.Status == "" || t.Status == f.Status)
}

// AgentList is the result of ListAgents. The totals always describe the
// whole hive, not the filtered subset.
type AgentList struct {
	Agents        []Agent     `json:"agents"`
	Count         int         `json:"count"`
	TotalAgents   int         `json:"total_agents"`
	ActiveAgents  int         `json:"active_agents"`
	FilterApplied AgentFilter `json:"filter_applied"`
}

// TaskList is the result of ListTasks.
type TaskList struct {
	Tasks         []Task     `json:"tasks"`
	Count         int        `json:"count"`
	TotalTasks    int        `json:"total_tasks"`
	FilterApplied TaskFilter `json:"filter_applied"`
}

// AgentDetails is an agent plus the task it is working on, if any.
type AgentDetails struct {
	Agent       Agent `json:"agent"`
	CurrentTask *Task `json:"current_task,omitempty"`
}

// TaskDetails is a task plus the agent it is bound to, if any.
type TaskDetails struct {
	Task  Task   `json:"task"`
	Agent *Agent `json:"agent,omitempty"`
}
