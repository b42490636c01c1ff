// Package hive implements the in-process swarm: agents, tasks, and the
// orchestrator that moves them through their lifecycles.
//
// A single State holds every agent and task. The Orchestrator is the only
// way to touch it; each mutating operation runs under the state's write
// lock, bumps the generation counter when it changes anything, and publishes
// its events to an optional EventSink after the lock is released. Queries
// return copies taken under the read lock, so callers can serialise them at
// leisure.
//
// Agent lifecycle:
//
//	Idle -> Assigned -> Working -> Completed|Failed -> Idle
//
// Task lifecycle (terminal states are final):
//
//	Pending -> Assigned -> InProgress -> Completed|Failed
//
// Which agent receives a task is decided by a MatchPolicy (fifo by default).
package hive
