package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		fields []string
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name:   "unknown transport",
			mutate: func(c *Config) { c.Server.Transport = "carrier-pigeon" },
			fields: []string{"server.transport"},
		},
		{
			name:   "stdio ignores port",
			mutate: func(c *Config) { c.Server.Transport = TransportStdio; c.Server.Port = 0 },
		},
		{
			name:   "bad port",
			mutate: func(c *Config) { c.Server.Port = 70000 },
			fields: []string{"server.port"},
		},
		{
			name:   "unknown policy and zero capacity",
			mutate: func(c *Config) { c.Hive.MatchPolicy = "random"; c.Hive.MaxAgents = 0 },
			fields: []string{"hive.maxAgents", "hive.matchPolicy"},
		},
		{
			name: "executor needs an interval",
			mutate: func(c *Config) {
				c.Hive.Execution.Enabled = true
				c.Hive.Execution.Interval = 0
			},
			fields: []string{"hive.execution.interval"},
		},
		{
			name:   "nlp timeout",
			mutate: func(c *Config) { c.NLP.Timeout = 0 },
			fields: []string{"nlp.timeout"},
		},
		{
			name:   "external nats needs url",
			mutate: func(c *Config) { c.Events.NATS.Enabled = true },
			fields: []string{"events.nats.url"},
		},
		{
			name: "embedded nats needs no url",
			mutate: func(c *Config) {
				c.Events.NATS.Enabled = true
				c.Events.NATS.Embedded = true
			},
		},
		{
			name: "logging",
			mutate: func(c *Config) {
				c.Logging.Level = "loud"
				c.Logging.Format = "xml"
			},
			fields: []string{"logging.level", "logging.format"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := GetDefaultConfig()
			tt.mutate(&cfg)

			err := Validate(cfg)
			if len(tt.fields) == 0 {
				assert.NoError(t, err)
				return
			}

			var errs ValidationErrors
			require.True(t, errors.As(err, &errs), "expected ValidationErrors, got %v", err)
			var fields []string
			for _, e := range errs {
				fields = append(fields, e.Field)
			}
			assert.Equal(t, tt.fields, fields)
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	var errs ValidationErrors
	assert.Equal(t, "no validation errors", errs.Error())

	errs.Add("a", "is wrong")
	assert.Equal(t, "field 'a': is wrong", errs.Error())

	errs.Add("b", "is also wrong", 3)
	assert.Equal(t, "validation failed: field 'a': is wrong; field 'b': is also wrong", errs.Error())
	assert.Equal(t, 3, errs[1].Value)
}
