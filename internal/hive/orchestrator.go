package hive

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hivemcp/internal/api"
	"hivemcp/pkg/logging"
)

// DefaultMaxAgents bounds the hive when no limit is configured.
const DefaultMaxAgents = 1000

var (
	// ErrCapacityExceeded is returned when creating agents would exceed MaxAgents.
	ErrCapacityExceeded = errors.New("hive is at capacity")

	// ErrInvalidTransition is returned for lifecycle moves the state machine
	// does not allow, including any attempt to reopen a finished task.
	ErrInvalidTransition = errors.New("invalid lifecycle transition")
)

// Config holds the configuration for the orchestrator.
type Config struct {
	MaxAgents int
	Policy    MatchPolicy // defaults to FIFOPolicy
	Sink      EventSink   // optional
}

// Orchestrator implements every hive operation on top of a single State.
// Mutations hold the state write lock for their full duration; queries copy
// what they need under the read lock.
type Orchestrator struct {
	state     *State
	maxAgents int
	policy    MatchPolicy
	sink      EventSink
}

// New creates an orchestrator that owns state.
func New(state *State, cfg Config) *Orchestrator {
	if cfg.MaxAgents <= 0 {
		cfg.MaxAgents = DefaultMaxAgents
	}
	if cfg.Policy == nil {
		cfg.Policy = FIFOPolicy{}
	}
	return &Orchestrator{
		state:     state,
		maxAgents: cfg.MaxAgents,
		policy:    cfg.Policy,
		sink:      cfg.Sink,
	}
}

// HiveID returns the ID of the underlying hive.
func (o *Orchestrator) HiveID() string {
	return o.state.HiveID()
}

// Policy returns the active match policy.
func (o *Orchestrator) Policy() MatchPolicy {
	return o.policy
}

// txn accumulates the events of one mutation. dirty marks a change that
// emits no event.
type txn struct {
	now    time.Time
	events []Event
	dirty  bool
}

func (tx *txn) emit(reason EventReason, agentID, taskID, message string) {
	tx.events = append(tx.events, Event{
		Reason:    reason,
		AgentID:   agentID,
		TaskID:    taskID,
		Message:   message,
		Timestamp: tx.now,
	})
}

// mutate runs fn under the write lock. A mutation that emitted events (or
// marked itself dirty) and returned no error bumps the generation; its
// events are published once the lock is released.
func (o *Orchestrator) mutate(ctx context.Context, fn func(tx *txn) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s := o.state
	s.mu.Lock()
	tx := &txn{now: s.now().UTC()}
	err := fn(tx)
	if err == nil && (len(tx.events) > 0 || tx.dirty) {
		s.generation++
		for i := range tx.events {
			tx.events[i].HiveID = s.hiveID
			tx.events[i].Generation = s.generation
		}
	}
	s.mu.Unlock()

	if err == nil {
		o.publish(tx.events)
	}
	return err
}

func (o *Orchestrator) publish(events []Event) {
	if o.sink == nil {
		return
	}
	for _, e := range events {
		o.sink.Publish(e)
	}
}

// CreateAgent adds a new Idle agent. The type may be given in any casing.
func (o *Orchestrator) CreateAgent(ctx context.Context, spec AgentSpec) (Agent, error) {
	t, err := ParseAgentType(string(spec.Type))
	if err != nil {
		return Agent{}, err
	}
	spec.Type = t

	var created Agent
	err = o.mutate(ctx, func(tx *txn) error {
		if len(o.state.agents) >= o.maxAgents {
			return fmt.Errorf("%w: limit of %d agents reached", ErrCapacityExceeded, o.maxAgents)
		}
		a := o.state.addAgent(spec, tx.now)
		tx.emit(ReasonAgentCreated, a.ID, "", a.Name)
		created = *a
		return nil
	})
	if err != nil {
		return Agent{}, err
	}

	logging.Debug("Hive", "Created agent %s (%s)", created.Name, created.ID)
	return created, nil
}

// BatchCreateAgents creates count agents as one unit: either all of them
// are created or none are. Running out of capacity is reported in the
// result rather than as an error.
func (o *Orchestrator) BatchCreateAgents(ctx context.Context, count int, spec AgentSpec) (BatchResult, error) {
	if count < 1 {
		return BatchResult{}, fmt.Errorf("invalid count %d", count)
	}
	t, err := ParseAgentType(string(spec.Type))
	if err != nil {
		return BatchResult{}, err
	}
	spec.Type = t

	result := BatchResult{Requested: count, AgentIDs: []string{}}
	err = o.mutate(ctx, func(tx *txn) error {
		if free := o.maxAgents - len(o.state.agents); count > free {
			result.Error = fmt.Sprintf("%v: requested %d agents, %d slots free", ErrCapacityExceeded, count, free)
			return nil
		}
		ids := make([]string, 0, count)
		for i := 0; i < count; i++ {
			a := o.state.addAgent(spec, tx.now)
			tx.emit(ReasonAgentCreated, a.ID, "", a.Name)
			ids = append(ids, a.ID)
		}
		result.Success = true
		result.CreatedCount = len(ids)
		result.AgentIDs = ids
		return nil
	})
	if err != nil {
		return BatchResult{}, err
	}

	if result.Success {
		logging.Debug("Hive", "Batch created %d %s agents", result.CreatedCount, spec.Type)
	} else {
		logging.Warn("Hive", "Batch creation rejected: %s", result.Error)
	}
	return result, nil
}

// AssignTask submits a new task. The task starts Pending; if the match
// policy picks an eligible agent, both move to Assigned.
func (o *Orchestrator) AssignTask(ctx context.Context, spec TaskSpec) (Task, error) {
	spec.Description = strings.TrimSpace(spec.Description)
	if spec.Description == "" {
		return Task{}, errors.New("task description is empty")
	}
	if _, err := ParsePriority(string(spec.Priority)); err != nil {
		return Task{}, err
	}

	var created Task
	err := o.mutate(ctx, func(tx *txn) error {
		t := o.state.addTask(spec, tx.now)
		tx.emit(ReasonTaskCreated, "", t.ID, string(t.Priority))

		var pool []*Agent
		for _, a := range o.state.sortedAgents() {
			if eligible(a) {
				pool = append(pool, a)
			}
		}
		if a := o.match(t, pool); a != nil {
			if recycle(a) {
				tx.emit(ReasonAgentRecycled, a.ID, "", "")
			}
			assign(t, a, tx.now)
			tx.emit(ReasonTaskAssigned, a.ID, t.ID, "")
		}
		created = *t
		return nil
	})
	if err != nil {
		return Task{}, err
	}

	logging.Debug("Hive", "Task %s submitted (priority %s, status %s)", created.ID, created.Priority, created.Status)
	return created, nil
}

// StartTask moves an Assigned task to InProgress and its agent to Working.
func (o *Orchestrator) StartTask(ctx context.Context, taskID string) (Task, error) {
	var out Task
	err := o.mutate(ctx, func(tx *txn) error {
		t, a, err := o.boundTask(taskID)
		if err != nil {
			return err
		}
		if t.Status != TaskAssigned {
			return fmt.Errorf("%w: cannot start task %s in status %s", ErrInvalidTransition, t.ID, t.Status)
		}
		start(t, a, tx.now)
		tx.emit(ReasonTaskStarted, a.ID, t.ID, "")
		out = *t
		return nil
	})
	return out, err
}

// CompleteTask finishes an InProgress task successfully.
func (o *Orchestrator) CompleteTask(ctx context.Context, taskID string) (Task, error) {
	return o.finishTask(ctx, taskID, true, "")
}

// FailTask finishes an InProgress task as failed.
func (o *Orchestrator) FailTask(ctx context.Context, taskID, reason string) (Task, error) {
	return o.finishTask(ctx, taskID, false, reason)
}

func (o *Orchestrator) finishTask(ctx context.Context, taskID string, ok bool, reason string) (Task, error) {
	var out Task
	err := o.mutate(ctx, func(tx *txn) error {
		t, a, err := o.boundTask(taskID)
		if err != nil {
			return err
		}
		if t.Status != TaskInProgress {
			return fmt.Errorf("%w: cannot finish task %s in status %s", ErrInvalidTransition, t.ID, t.Status)
		}
		finish(t, a, ok, reason, tx.now)
		if ok {
			tx.emit(ReasonTaskCompleted, a.ID, t.ID, "")
		} else {
			tx.emit(ReasonTaskFailed, a.ID, t.ID, reason)
		}
		out = *t
		return nil
	})
	return out, err
}

// boundTask looks up a task and the agent it is assigned to. Caller holds mu.
func (o *Orchestrator) boundTask(taskID string) (*Task, *Agent, error) {
	t, ok := o.state.tasks[taskID]
	if !ok {
		return nil, nil, api.NewTaskNotFoundError(taskID)
	}
	if t.Status.Terminal() {
		return nil, nil, fmt.Errorf("%w: task %s is already %s", ErrInvalidTransition, t.ID, t.Status)
	}
	a, ok := o.state.agents[t.AgentID]
	if !ok {
		return nil, nil, fmt.Errorf("%w: task %s has no agent", ErrInvalidTransition, t.ID)
	}
	return t, a, nil
}

// ListAgents returns the agents matching filter in creation order. The
// totals always cover the whole hive.
func (o *Orchestrator) ListAgents(filter AgentFilter) AgentList {
	s := o.state
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := AgentList{Agents: []Agent{}, FilterApplied: filter}
	for _, a := range s.sortedAgents() {
		list.TotalAgents++
		if a.State.Active() {
			list.ActiveAgents++
		}
		if filter.Empty() || filter.matches(a) {
			list.Agents = append(list.Agents, *a)
		}
	}
	list.Count = len(list.Agents)
	return list
}

// ListTasks returns the tasks matching filter in creation order.
func (o *Orchestrator) ListTasks(filter TaskFilter) TaskList {
	s := o.state
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := TaskList{Tasks: []Task{}, FilterApplied: filter, TotalTasks: len(s.tasks)}
	for _, t := range s.sortedTasks() {
		if filter.Empty() || filter.matches(t) {
			list.Tasks = append(list.Tasks, *t)
		}
	}
	list.Count = len(list.Tasks)
	return list
}

// Agent returns one agent and its current task.
func (o *Orchestrator) Agent(id string) (AgentDetails, error) {
	s := o.state
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.agents[id]
	if !ok {
		return AgentDetails{}, api.NewAgentNotFoundError(id)
	}
	details := AgentDetails{Agent: *a}
	if t, ok := s.tasks[a.CurrentTaskID]; ok {
		task := *t
		details.CurrentTask = &task
	}
	return details, nil
}

// Task returns one task and its agent.
func (o *Orchestrator) Task(id string) (TaskDetails, error) {
	s := o.state
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tasks[id]
	if !ok {
		return TaskDetails{}, api.NewTaskNotFoundError(id)
	}
	details := TaskDetails{Task: *t}
	if a, ok := s.agents[t.AgentID]; ok {
		agent := *a
		details.Agent = &agent
	}
	return details, nil
}

// Status returns the current hive snapshot. It backs both the
// get_swarm_status tool and the hive://status resource.
func (o *Orchestrator) Status() HiveStatus {
	s := o.state
	s.mu.RLock()
	defer s.mu.RUnlock()

	m := s.computeMetrics()
	return HiveStatus{
		HiveID:      s.hiveID,
		Generation:  s.generation,
		StartedAt:   s.startedAt,
		Metrics:     m,
		SwarmCenter: m.SwarmCenter,
		TotalEnergy: m.TotalEnergy,
	}
}

// Metrics returns the current swarm metrics.
func (o *Orchestrator) Metrics() SwarmMetrics {
	s := o.state
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.computeMetrics()
}
