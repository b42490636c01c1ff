package hive

import (
	"fmt"
	"hash/fnv"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	// InitialEnergy is the energy of a freshly created agent.
	InitialEnergy = 100.0
	// StartCost is the energy spent when an agent starts a task.
	StartCost = 10.0
	// CompletionBonus is the energy restored when an agent completes a task.
	CompletionBonus = 5.0
	// RestRecovery is the energy a non-working agent regains per executor step.
	RestRecovery = 5.0

	planeSize = 10.0
)

// State is the single mutable container for the hive. All access goes
// through the Orchestrator, which holds mu for the duration of every
// mutation and takes copies under the read lock for every query.
type State struct {
	mu sync.RWMutex

	hiveID     string
	startedAt  time.Time
	generation uint64

	agents map[string]*Agent
	tasks  map[string]*Task
	issued map[string]struct{}

	agentSeq int
	taskSeq  int

	newID func() string
	now   func() time.Time
}

// StateOption customises a State.
type StateOption func(*State)

// WithClock overrides the time source.
func WithClock(now func() time.Time) StateOption {
	return func(s *State) { s.now = now }
}

// WithIDGenerator overrides the ID source. Duplicate IDs are rejected and
// regenerated, so a generator that repeats itself only costs retries.
func WithIDGenerator(gen func() string) StateOption {
	return func(s *State) { s.newID = gen }
}

// NewState creates an empty hive with a fresh hive ID.
func NewState(opts ...StateOption) *State {
	s := &State{
		agents: make(map[string]*Agent),
		tasks:  make(map[string]*Task),
		issued: make(map[string]struct{}),
		newID:  uuid.NewString,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.startedAt = s.now().UTC()
	s.hiveID = s.uniqueID()
	return s
}

// HiveID returns the identifier of this hive, stable for the process lifetime.
func (s *State) HiveID() string {
	return s.hiveID
}

// Generation returns the number of committed mutations.
func (s *State) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

// uniqueID returns an ID never issued before by this state. Caller holds mu
// (or is the constructor).
func (s *State) uniqueID() string {
	for {
		id := s.newID()
		if _, dup := s.issued[id]; dup || id == "" {
			continue
		}
		s.issued[id] = struct{}{}
		return id
	}
}

func (s *State) addAgent(spec AgentSpec, now time.Time) *Agent {
	s.agentSeq++
	id := s.uniqueID()
	specialization := spec.Specialization
	if spec.Type == AgentSpecialist && specialization == "" {
		specialization = "general"
	}
	a := &Agent{
		ID:             id,
		Name:           fmt.Sprintf("%s-%d", spec.Type, s.agentSeq),
		Type:           spec.Type,
		Specialization: specialization,
		State:          AgentIdle,
		Position:       positionFor(id),
		Energy:         InitialEnergy,
		CreatedAt:      now,
		LastActive:     now,
		seq:            s.agentSeq,
	}
	s.agents[id] = a
	return a
}

func (s *State) addTask(spec TaskSpec, now time.Time) *Task {
	s.taskSeq++
	t := &Task{
		ID:          s.uniqueID(),
		Description: spec.Description,
		Priority:    spec.Priority,
		Status:      TaskPending,
		CreatedAt:   now,
		seq:         s.taskSeq,
	}
	s.tasks[t.ID] = t
	return t
}

// sortedAgents returns the live agents in creation order. Caller holds mu.
func (s *State) sortedAgents() []*Agent {
	out := make([]*Agent, 0, len(s.agents))
	for _, a := range s.agents {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })
	return out
}

// sortedTasks returns the tasks in creation order. Caller holds mu.
func (s *State) sortedTasks() []*Task {
	out := make([]*Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })
	return out
}

// positionFor spreads agents over the plane deterministically by ID.
func positionFor(id string) Position {
	h := fnv.New64a()
	_, _ = h.Write([]byte(id))
	sum := h.Sum64()
	x := float64(sum>>32) / float64(1<<32) * planeSize
	y := float64(sum&0xffffffff) / float64(1<<32) * planeSize
	return Position{X: x, Y: y}
}

func clampEnergy(e float64) float64 {
	switch {
	case e < 0:
		return 0
	case e > InitialEnergy:
		return InitialEnergy
	}
	return e
}

// Lifecycle transitions. Callers hold mu and have checked the source state.

func assign(t *Task, a *Agent, now time.Time) {
	ts := now
	t.Status = TaskAssigned
	t.AgentID = a.ID
	t.AssignedAt = &ts
	a.State = AgentAssigned
	a.CurrentTaskID = t.ID
	a.LastActive = now
}

func start(t *Task, a *Agent, now time.Time) {
	ts := now
	t.Status = TaskInProgress
	t.StartedAt = &ts
	a.State = AgentWorking
	a.Energy = clampEnergy(a.Energy - StartCost)
	a.LastActive = now
}

func finish(t *Task, a *Agent, ok bool, reason string, now time.Time) {
	ts := now
	t.FinishedAt = &ts
	if ok {
		t.Status = TaskCompleted
	} else {
		t.Status = TaskFailed
		t.Error = reason
	}
	if a == nil {
		return
	}
	if ok {
		a.State = AgentCompleted
		a.Metrics.TasksCompleted++
		a.Energy = clampEnergy(a.Energy + CompletionBonus)
	} else {
		a.State = AgentFailed
		a.Metrics.TasksFailed++
	}
	done := a.Metrics.TasksCompleted + a.Metrics.TasksFailed
	a.Metrics.SuccessRate = float64(a.Metrics.TasksCompleted) / float64(done)
	a.CurrentTaskID = ""
	a.LastActive = now
}

// recycle returns a finished agent to Idle. It reports whether anything changed.
func recycle(a *Agent) bool {
	if a.State == AgentCompleted || a.State == AgentFailed {
		a.State = AgentIdle
		return true
	}
	return false
}

// rested reports whether a has enough energy to start a task and still
// finish it.
func rested(a *Agent) bool {
	return a.Energy > StartCost
}

// eligible reports whether a can take a new task, possibly after recycling.
func eligible(a *Agent) bool {
	return (a.State == AgentIdle || a.State == AgentCompleted || a.State == AgentFailed) && rested(a)
}

// available reports whether an Idle agent can take a new task.
func available(a *Agent) bool {
	return a.State == AgentIdle && rested(a)
}

// rest restores energy to an agent that is not working. It reports whether
// anything changed.
func rest(a *Agent) bool {
	if a.State.Active() || a.Energy >= InitialEnergy {
		return false
	}
	a.Energy = clampEnergy(a.Energy + RestRecovery)
	return true
}
