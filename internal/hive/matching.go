package hive

import (
	"fmt"
)

// MatchPolicy picks the agent that receives a task. Candidates are copies
// of every eligible agent in creation order; Select returns an index into
// candidates, or -1 to leave the task pending.
type MatchPolicy interface {
	Name() string
	Select(task Task, candidates []Agent) int
}

const (
	PolicyFIFO   = "fifo"
	PolicyEnergy = "energy"
)

// FIFOPolicy assigns to the earliest-created eligible agent.
type FIFOPolicy struct{}

func (FIFOPolicy) Name() string { return PolicyFIFO }

func (FIFOPolicy) Select(_ Task, candidates []Agent) int {
	if len(candidates) == 0 {
		return -1
	}
	return 0
}

// EnergyPolicy assigns to the agent with the most energy; ties go to the
// earliest-created agent.
type EnergyPolicy struct{}

func (EnergyPolicy) Name() string { return PolicyEnergy }

func (EnergyPolicy) Select(_ Task, candidates []Agent) int {
	best := -1
	for i, a := range candidates {
		if best == -1 || a.Energy > candidates[best].Energy {
			best = i
		}
	}
	return best
}

// PolicyByName resolves a configured policy name. The empty name selects fifo.
func PolicyByName(name string) (MatchPolicy, error) {
	switch name {
	case "", PolicyFIFO:
		return FIFOPolicy{}, nil
	case PolicyEnergy:
		return EnergyPolicy{}, nil
	default:
		return nil, fmt.Errorf("unknown match policy %q", name)
	}
}

// PolicyNames lists the accepted policy names.
func PolicyNames() []string {
	return []string{PolicyFIFO, PolicyEnergy}
}

// match runs policy over the eligible agents and returns the chosen live
// agent, or nil. Caller holds mu.
func (o *Orchestrator) match(t *Task, pool []*Agent) *Agent {
	if len(pool) == 0 {
		return nil
	}
	candidates := make([]Agent, len(pool))
	for i, a := range pool {
		candidates[i] = *a
	}
	idx := o.policy.Select(*t, candidates)
	if idx < 0 || idx >= len(pool) {
		return nil
	}
	return pool[idx]
}
