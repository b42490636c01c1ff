package tools

import (
	"hivemcp/internal/hive"
	"hivemcp/internal/schema"
)

// Typed arguments, built only from values that passed validation. The
// filters still go through the hive parsers so the canonical spellings come
// from one place.

type createAgentArgs struct {
	spec hive.AgentSpec
}

func newCreateAgentArgs(v schema.Values) createAgentArgs {
	return createAgentArgs{spec: hive.AgentSpec{
		Type:           hive.AgentType(v.String("agent_type")),
		Specialization: v.String("specialization"),
	}}
}

type batchCreateArgs struct {
	count int
	spec  hive.AgentSpec
}

func newBatchCreateArgs(v schema.Values) batchCreateArgs {
	return batchCreateArgs{
		count: v.Int("count"),
		spec:  newCreateAgentArgs(v).spec,
	}
}

type assignTaskArgs struct {
	spec hive.TaskSpec
}

func newAssignTaskArgs(v schema.Values) assignTaskArgs {
	return assignTaskArgs{spec: hive.TaskSpec{
		Description: v.String("description"),
		Priority:    hive.Priority(v.String("priority")),
	}}
}

type coordinateArgs struct {
	strategy hive.Strategy
}

func newCoordinateArgs(v schema.Values) coordinateArgs {
	return coordinateArgs{strategy: hive.Strategy(v.String("strategy"))}
}

func newAgentFilter(v schema.Values) (hive.AgentFilter, error) {
	var f hive.AgentFilter
	if v.Has("agent_type") {
		t, err := hive.ParseAgentType(v.String("agent_type"))
		if err != nil {
			return f, err
		}
		f.Type = t
	}
	if v.Has("state") {
		st, err := hive.ParseAgentState(v.String("state"))
		if err != nil {
			return f, err
		}
		f.State = st
	}
	return f, nil
}

func newTaskFilter(v schema.Values) (hive.TaskFilter, error) {
	var f hive.TaskFilter
	if v.Has("priority") {
		pr, err := hive.ParsePriority(v.String("priority"))
		if err != nil {
			return f, err
		}
		f.Priority = pr
	}
	if v.Has("status") {
		st, err := hive.ParseTaskStatus(v.String("status"))
		if err != nil {
			return f, err
		}
		f.Status = st
	}
	return f, nil
}
