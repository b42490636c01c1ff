package hive

import (
	"context"
	"fmt"
	"sort"

	"hivemcp/pkg/logging"
)

const lowEnergyThreshold = 30.0

// Coordinate runs one coordination pass with the given strategy.
//
//   - default: recycle finished agents, then match pending tasks in creation
//     order using the configured match policy.
//   - balanced: recycle, then hand pending tasks (High first) to idle agents
//     ordered by fewest completed tasks, so work spreads evenly.
//   - aggressive: balanced, then start every assigned task.
//   - conservative: recycle, then match only High priority tasks.
func (o *Orchestrator) Coordinate(ctx context.Context, strategy Strategy) (CoordinationResult, error) {
	if _, err := ParseStrategy(string(strategy)); err != nil {
		return CoordinationResult{}, err
	}

	result := CoordinationResult{Strategy: strategy, Recommendations: []string{}}
	err := o.mutate(ctx, func(tx *txn) error {
		touched := make(map[string]struct{})
		agents := o.state.sortedAgents()
		tasks := o.state.sortedTasks()

		for _, a := range agents {
			if recycle(a) {
				touched[a.ID] = struct{}{}
				tx.emit(ReasonAgentRecycled, a.ID, "", "")
			}
		}

		var pending []*Task
		for _, t := range tasks {
			if t.Status != TaskPending {
				continue
			}
			if strategy == StrategyConservative && t.Priority != PriorityHigh {
				continue
			}
			pending = append(pending, t)
		}

		switch strategy {
		case StrategyBalanced, StrategyAggressive:
			result.TasksAssigned = o.distribute(tx, pending, agents, touched)
		default:
			result.TasksAssigned = o.matchInOrder(tx, pending, agents, touched)
		}

		if strategy == StrategyAggressive {
			for _, t := range tasks {
				if t.Status != TaskAssigned {
					continue
				}
				a := o.state.agents[t.AgentID]
				start(t, a, tx.now)
				touched[a.ID] = struct{}{}
				tx.emit(ReasonTaskStarted, a.ID, t.ID, "")
				result.TasksStarted++
			}
		}

		for _, t := range tasks {
			if t.Status == TaskPending {
				result.PendingTasks++
			}
		}
		result.AgentsCoordinated = len(touched)
		result.Recommendations = o.recommend(result)
		result.Success = true

		if len(tx.events) > 0 {
			tx.emit(ReasonSwarmCoordinated, "", "", string(strategy))
		}
		return nil
	})
	if err != nil {
		return CoordinationResult{}, err
	}

	logging.Debug("Hive", "Coordination %s: %d assigned, %d started, %d pending",
		strategy, result.TasksAssigned, result.TasksStarted, result.PendingTasks)
	return result, nil
}

// matchInOrder offers each pending task, oldest first, to the match policy.
func (o *Orchestrator) matchInOrder(tx *txn, pending []*Task, agents []*Agent, touched map[string]struct{}) int {
	assigned := 0
	for _, t := range pending {
		var pool []*Agent
		for _, a := range agents {
			if available(a) {
				pool = append(pool, a)
			}
		}
		a := o.match(t, pool)
		if a == nil {
			break
		}
		assign(t, a, tx.now)
		touched[a.ID] = struct{}{}
		tx.emit(ReasonTaskAssigned, a.ID, t.ID, "")
		assigned++
	}
	return assigned
}

// distribute pairs pending tasks by priority with idle agents by workload.
func (o *Orchestrator) distribute(tx *txn, pending []*Task, agents []*Agent, touched map[string]struct{}) int {
	byPriority := append([]*Task(nil), pending...)
	sort.SliceStable(byPriority, func(i, j int) bool {
		return byPriority[i].Priority.rank() < byPriority[j].Priority.rank()
	})

	var idle []*Agent
	for _, a := range agents {
		if available(a) {
			idle = append(idle, a)
		}
	}
	sort.SliceStable(idle, func(i, j int) bool {
		return idle[i].Metrics.TasksCompleted < idle[j].Metrics.TasksCompleted
	})

	n := min(len(byPriority), len(idle))
	for i := 0; i < n; i++ {
		t, a := byPriority[i], idle[i]
		assign(t, a, tx.now)
		touched[a.ID] = struct{}{}
		tx.emit(ReasonTaskAssigned, a.ID, t.ID, "")
	}
	return n
}

// recommend derives operator hints from the post-pass state. Caller holds mu.
func (o *Orchestrator) recommend(r CoordinationResult) []string {
	var recs []string
	m := o.state.computeMetrics()

	switch {
	case m.TotalAgents == 0:
		recs = append(recs, "No agents in the hive; create agents with create_swarm_agent or batch_create_agents")
	case r.PendingTasks > 0 && m.AgentMetrics.IdleAgents == 0:
		recs = append(recs, fmt.Sprintf("%d tasks are waiting for a free agent; consider creating more agents", r.PendingTasks))
	}
	if r.Strategy == StrategyConservative && m.TaskMetrics.Pending > 0 {
		recs = append(recs, "Lower priority tasks are held back by the conservative strategy")
	}
	if m.TotalAgents > 0 && m.AgentMetrics.AverageEnergy < lowEnergyThreshold {
		recs = append(recs, "Average agent energy is low; prefer the conservative strategy until agents recover")
	}
	if m.TaskMetrics.Assigned > 0 && r.Strategy != StrategyAggressive {
		recs = append(recs, "Assigned tasks are waiting to start; the aggressive strategy starts them immediately")
	}
	if recs == nil {
		recs = []string{}
	}
	return recs
}
