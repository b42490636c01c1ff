// Package resources publishes read-only views of the hive as MCP resources.
package resources

import (
	"context"

	"hivemcp/internal/api"
	"hivemcp/internal/hive"
)

const (
	URIStatus = "hive://status"
	URIAgents = "hive://agents"
	URITasks  = "hive://tasks"

	mimeJSON = "application/json"
)

type resource struct {
	meta api.ResourceMetadata
	read func(o *hive.Orchestrator) interface{}
}

var resources = []resource{
	{
		meta: api.ResourceMetadata{
			URI:         URIStatus,
			Name:        "Hive Status",
			Description: "Current status of the multiagent hive system",
			MIMEType:    mimeJSON,
		},
		read: func(o *hive.Orchestrator) interface{} { return o.Status() },
	},
	{
		meta: api.ResourceMetadata{
			URI:         URIAgents,
			Name:        "Hive Agents",
			Description: "Every agent in the hive",
			MIMEType:    mimeJSON,
		},
		read: func(o *hive.Orchestrator) interface{} { return o.ListAgents(hive.AgentFilter{}) },
	},
	{
		meta: api.ResourceMetadata{
			URI:         URITasks,
			Name:        "Hive Tasks",
			Description: "Every task submitted to the hive",
			MIMEType:    mimeJSON,
		},
		read: func(o *hive.Orchestrator) interface{} { return o.ListTasks(hive.TaskFilter{}) },
	},
}

// Provider implements api.ResourceProvider over one orchestrator.
type Provider struct {
	orch *hive.Orchestrator
}

// NewProvider creates a resource provider for orch.
func NewProvider(orch *hive.Orchestrator) *Provider {
	return &Provider{orch: orch}
}

// GetResources lists the published resources.
func (p *Provider) GetResources() []api.ResourceMetadata {
	out := make([]api.ResourceMetadata, len(resources))
	for i, r := range resources {
		out[i] = r.meta
	}
	return out
}

// ReadResource returns the JSON body of uri. hive://status is rendered from
// the same snapshot function and encoder as the get_swarm_status tool.
func (p *Provider) ReadResource(_ context.Context, uri string) (*api.ResourceContent, error) {
	for _, r := range resources {
		if r.meta.URI != uri {
			continue
		}
		text, err := api.EncodeJSON(r.read(p.orch))
		if err != nil {
			return nil, err
		}
		return &api.ResourceContent{URI: uri, MIMEType: r.meta.MIMEType, Text: text}, nil
	}
	return nil, api.NewResourceNotFoundError(uri)
}
