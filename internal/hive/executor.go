package hive

import (
	"context"
	"time"

	"hivemcp/pkg/logging"
)

// AdvanceResult summarises one simulated work step.
type AdvanceResult struct {
	Started   int `json:"started"`
	Completed int `json:"completed"`
	Failed    int `json:"failed"`
	Rested    int `json:"rested"`
}

// Advance simulates agents doing their work: agents that are not working
// regain RestRecovery energy, Assigned tasks are started, and InProgress
// tasks older than workDuration are finished. An agent that has run out of
// energy fails its task instead of completing it.
func (o *Orchestrator) Advance(ctx context.Context, workDuration time.Duration) (AdvanceResult, error) {
	var res AdvanceResult
	err := o.mutate(ctx, func(tx *txn) error {
		for _, a := range o.state.sortedAgents() {
			if rest(a) {
				res.Rested++
				tx.dirty = true
			}
		}
		for _, t := range o.state.sortedTasks() {
			a, ok := o.state.agents[t.AgentID]
			if !ok {
				continue
			}
			switch t.Status {
			case TaskAssigned:
				start(t, a, tx.now)
				tx.emit(ReasonTaskStarted, a.ID, t.ID, "")
				res.Started++
			case TaskInProgress:
				if t.StartedAt == nil || tx.now.Sub(*t.StartedAt) < workDuration {
					continue
				}
				if a.Energy <= 0 {
					finish(t, a, false, "agent exhausted", tx.now)
					tx.emit(ReasonTaskFailed, a.ID, t.ID, "agent exhausted")
					res.Failed++
					continue
				}
				finish(t, a, true, "", tx.now)
				tx.emit(ReasonTaskCompleted, a.ID, t.ID, "")
				res.Completed++
			}
		}
		return nil
	})
	return res, err
}

// Executor drives the hive in the background: on every tick it advances
// work and runs a default coordination pass.
type Executor struct {
	orch         *Orchestrator
	interval     time.Duration
	workDuration time.Duration
}

// NewExecutor creates an executor. Non-positive durations fall back to
// one second of interval and three seconds of work.
func NewExecutor(orch *Orchestrator, interval, workDuration time.Duration) *Executor {
	if interval <= 0 {
		interval = time.Second
	}
	if workDuration <= 0 {
		workDuration = 3 * time.Second
	}
	return &Executor{orch: orch, interval: interval, workDuration: workDuration}
}

// Run blocks until ctx is cancelled.
func (e *Executor) Run(ctx context.Context) error {
	logging.Info("Executor", "Starting task executor (interval %s, work duration %s)", e.interval, e.workDuration)
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logging.Info("Executor", "Task executor stopped")
			return nil
		case <-ticker.C:
			if err := e.Step(ctx); err != nil && ctx.Err() == nil {
				logging.Error("Executor", err, "Executor step failed")
			}
		}
	}
}

// Step performs a single executor iteration.
func (e *Executor) Step(ctx context.Context) error {
	res, err := e.orch.Advance(ctx, e.workDuration)
	if err != nil {
		return err
	}
	if res.Started+res.Completed+res.Failed+res.Rested > 0 {
		logging.Debug("Executor", "Advanced hive: %d started, %d completed, %d failed, %d rested",
			res.Started, res.Completed, res.Failed, res.Rested)
	}
	_, err = e.orch.Coordinate(ctx, StrategyDefault)
	return err
}
