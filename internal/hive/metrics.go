package hive

import (
	"time"
)

// AgentSummary aggregates agent counts and energy.
type AgentSummary struct {
	TotalAgents   int                `json:"total_agents"`
	ActiveAgents  int                `json:"active_agents"`
	IdleAgents    int                `json:"idle_agents"`
	ByType        map[AgentType]int  `json:"by_type"`
	ByState       map[AgentState]int `json:"by_state"`
	AverageEnergy float64            `json:"average_energy"`
}

// TaskSummary aggregates task counts by status.
type TaskSummary struct {
	TotalTasks  int     `json:"total_tasks"`
	Pending     int     `json:"pending"`
	Assigned    int     `json:"assigned"`
	InProgress  int     `json:"in_progress"`
	Completed   int     `json:"completed"`
	Failed      int     `json:"failed"`
	SuccessRate float64 `json:"success_rate"`
}

// SwarmMetrics is recomputed from the agents and tasks on every read.
type SwarmMetrics struct {
	TotalAgents  int          `json:"total_agents"`
	ActiveAgents int          `json:"active_agents"`
	AgentMetrics AgentSummary `json:"agent_metrics"`
	TaskMetrics  TaskSummary  `json:"task_metrics"`
	SwarmCenter  [2]float64   `json:"swarm_center"`
	TotalEnergy  float64      `json:"total_energy"`
}

// HiveStatus is the externally visible snapshot of the hive. It carries no
// wall-clock reading, so two snapshots of the same generation are equal.
type HiveStatus struct {
	HiveID      string       `json:"hive_id"`
	Generation  uint64       `json:"generation"`
	StartedAt   time.Time    `json:"started_at"`
	Metrics     SwarmMetrics `json:"metrics"`
	SwarmCenter [2]float64   `json:"swarm_center"`
	TotalEnergy float64      `json:"total_energy"`
}

// computeMetrics derives SwarmMetrics. Caller holds at least a read lock.
func (s *State) computeMetrics() SwarmMetrics {
	agents := AgentSummary{
		ByType:  make(map[AgentType]int, len(AllAgentTypes)),
		ByState: make(map[AgentState]int, len(AllAgentStates)),
	}
	for _, t := range AllAgentTypes {
		agents.ByType[t] = 0
	}
	for _, st := range AllAgentStates {
		agents.ByState[st] = 0
	}

	// Creation order keeps the float sums stable across reads.
	var sumX, sumY, energy float64
	for _, a := range s.sortedAgents() {
		agents.TotalAgents++
		agents.ByType[a.Type]++
		agents.ByState[a.State]++
		if a.State.Active() {
			agents.ActiveAgents++
		}
		if a.State == AgentIdle {
			agents.IdleAgents++
		}
		sumX += a.Position.X
		sumY += a.Position.Y
		energy += a.Energy
	}

	var center [2]float64
	if agents.TotalAgents > 0 {
		n := float64(agents.TotalAgents)
		center = [2]float64{sumX / n, sumY / n}
		agents.AverageEnergy = energy / n
	}

	var tasks TaskSummary
	for _, t := range s.tasks {
		tasks.TotalTasks++
		switch t.Status {
		case TaskPending:
			tasks.Pending++
		case TaskAssigned:
			tasks.Assigned++
		case TaskInProgress:
			tasks.InProgress++
		case TaskCompleted:
			tasks.Completed++
		case TaskFailed:
			tasks.Failed++
		}
	}
	if done := tasks.Completed + tasks.Failed; done > 0 {
		tasks.SuccessRate = float64(tasks.Completed) / float64(done)
	}

	return SwarmMetrics{
		TotalAgents:  agents.TotalAgents,
		ActiveAgents: agents.ActiveAgents,
		AgentMetrics: agents,
		TaskMetrics:  tasks,
		SwarmCenter:  center,
		TotalEnergy:  energy,
	}
}
