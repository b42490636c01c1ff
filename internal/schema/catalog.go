package schema

// Vocabularies shared by the tool schemas and the hive.
var (
	AgentTypes     = []string{"Worker", "Coordinator", "Specialist", "Learner"}
	AgentStates    = []string{"Idle", "Assigned", "Working", "Completed", "Failed"}
	TaskPriorities = []string{"Low", "Medium", "High"}
	TaskStatuses   = []string{"Pending", "Assigned", "InProgress", "Completed", "Failed"}
	Strategies     = []string{"default", "balanced", "aggressive", "conservative"}
)

const (
	MinBatchCount = 1
	MaxBatchCount = 10
)

const (
	msgAgentTypeRequired = "Agent type is required"
	msgInvalidAgentType  = "Invalid agent type"
	msgInvalidPriority   = "Invalid priority"
)

func agentTypeField(required bool) Field {
	return Field{
		Name:           "agent_type",
		Kind:           KindString,
		Required:       required,
		Description:    "Type of agent (Worker, Coordinator, Specialist, Learner)",
		Enum:           AgentTypes,
		FoldCase:       true,
		MissingMessage: msgAgentTypeRequired,
		InvalidMessage: msgInvalidAgentType,
	}
}

var CreateSwarmAgent = Schema{
	Tool: "create_swarm_agent",
	Fields: []Field{
		agentTypeField(true),
		{
			Name:           "specialization",
			Kind:           KindString,
			Description:    "Optional specialization for Specialist agents",
			InvalidMessage: "Invalid specialization",
		},
	},
}

var BatchCreateAgents = Schema{
	Tool: "batch_create_agents",
	Fields: []Field{
		{
			Name:           "count",
			Kind:           KindInteger,
			Required:       true,
			Description:    "Number of agents to create (1-10)",
			Min:            intPtr(MinBatchCount),
			Max:            intPtr(MaxBatchCount),
			MissingMessage: "Missing required parameter: count",
			InvalidMessage: "Invalid count: must be between 1 and 10",
		},
		agentTypeField(true),
		{
			Name:           "specialization",
			Kind:           KindString,
			Description:    "Optional specialization applied to every created agent",
			InvalidMessage: "Invalid specialization",
		},
	},
}

var AssignSwarmTask = Schema{
	Tool: "assign_swarm_task",
	Fields: []Field{
		{
			Name:           "description",
			Kind:           KindString,
			Required:       true,
			Description:    "Task description",
			MissingMessage: "Missing required parameter: description",
		},
		{
			Name:           "priority",
			Kind:           KindString,
			Required:       true,
			Description:    "Task priority (Low, Medium, High)",
			Enum:           TaskPriorities,
			MissingMessage: "Missing required parameter: priority",
			InvalidMessage: msgInvalidPriority,
		},
	},
}

var GetSwarmStatus = Schema{Tool: "get_swarm_status"}

var AnalyzeWithNLP = Schema{
	Tool: "analyze_with_nlp",
	Fields: []Field{
		{
			Name:           "text",
			Kind:           KindString,
			Required:       true,
			Description:    "Text to analyze",
			MissingMessage: "Missing text to analyze",
		},
	},
}

var CoordinateAgents = Schema{
	Tool: "coordinate_agents",
	Fields: []Field{
		{
			Name:           "strategy",
			Kind:           KindString,
			Required:       true,
			Description:    "Coordination strategy (default, balanced, aggressive, conservative)",
			Enum:           Strategies,
			MissingMessage: "Missing required parameter: strategy",
			InvalidMessage: "Invalid strategy",
		},
	},
}

var Echo = Schema{
	Tool: "echo",
	Fields: []Field{
		{
			Name:           "message",
			Kind:           KindString,
			Required:       true,
			Description:    "Message to echo back",
			MissingMessage: "Missing required parameter: message",
		},
	},
}

var SystemInfo = Schema{Tool: "system_info"}

var ListAgents = Schema{
	Tool: "list_agents",
	Fields: []Field{
		agentTypeField(false),
		{
			Name:           "state",
			Kind:           KindString,
			Description:    "Filter by agent state (Idle, Assigned, Working, Completed, Failed)",
			Enum:           AgentStates,
			FoldCase:       true,
			InvalidMessage: "Invalid agent state",
		},
	},
}

var ListTasks = Schema{
	Tool: "list_tasks",
	Fields: []Field{
		{
			Name:           "priority",
			Kind:           KindString,
			Description:    "Filter by priority (Low, Medium, High)",
			Enum:           TaskPriorities,
			InvalidMessage: msgInvalidPriority,
		},
		{
			Name:           "status",
			Kind:           KindString,
			Description:    "Filter by status (Pending, Assigned, InProgress, Completed, Failed)",
			Enum:           TaskStatuses,
			InvalidMessage: "Invalid status",
		},
	},
}

var GetAgentDetails = Schema{
	Tool: "get_agent_details",
	Fields: []Field{
		{
			Name:           "agent_id",
			Kind:           KindString,
			Required:       true,
			Description:    "ID of the agent",
			MissingMessage: "Missing required parameter: agent_id",
		},
	},
}

var GetTaskDetails = Schema{
	Tool: "get_task_details",
	Fields: []Field{
		{
			Name:           "task_id",
			Kind:           KindString,
			Required:       true,
			Description:    "ID of the task",
			MissingMessage: "Missing required parameter: task_id",
		},
	},
}
