package config

import (
	"fmt"
	"strings"

	"hivemcp/internal/hive"
	"hivemcp/pkg/logging"
)

// ValidationError represents a validation error with context
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (ve ValidationError) Error() string {
	if ve.Field == "" {
		return ve.Message
	}
	return fmt.Sprintf("field '%s': %s", ve.Field, ve.Message)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for multiple validation errors
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}
	if len(ve) == 1 {
		return ve[0].Error()
	}

	var messages []string
	for _, err := range ve {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(messages, "; "))
}

// HasErrors returns true if there are any validation errors
func (ve ValidationErrors) HasErrors() bool {
	return len(ve) > 0
}

// Add adds a new validation error
func (ve *ValidationErrors) Add(field, message string, value ...interface{}) {
	var val interface{}
	if len(value) > 0 {
		val = value[0]
	}
	*ve = append(*ve, ValidationError{
		Field:   field,
		Value:   val,
		Message: message,
	})
}

// ValidateOneOf checks if a value is in a list of allowed values
func ValidateOneOf(field, value string, allowed []string) error {
	for _, allowedValue := range allowed {
		if value == allowedValue {
			return nil
		}
	}
	return ValidationError{
		Field:   field,
		Value:   value,
		Message: fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")),
	}
}

// Validate checks cfg and returns every problem found, or nil.
func Validate(cfg Config) error {
	var errs ValidationErrors

	addIf := func(err error) {
		if err == nil {
			return
		}
		if ve, ok := err.(ValidationError); ok {
			errs = append(errs, ve)
			return
		}
		errs.Add("", err.Error())
	}

	addIf(ValidateOneOf("server.transport", cfg.Server.Transport, Transports))
	if cfg.Server.Transport != TransportStdio {
		if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
			errs.Add("server.port", "must be between 1 and 65535", cfg.Server.Port)
		}
		if strings.TrimSpace(cfg.Server.Host) == "" {
			errs.Add("server.host", "is required for network transports")
		}
	}

	if cfg.Hive.MaxAgents < 1 {
		errs.Add("hive.maxAgents", "must be at least 1", cfg.Hive.MaxAgents)
	}
	addIf(ValidateOneOf("hive.matchPolicy", cfg.Hive.MatchPolicy, hive.PolicyNames()))
	if cfg.Hive.Execution.Enabled {
		if cfg.Hive.Execution.Interval <= 0 {
			errs.Add("hive.execution.interval", "must be positive", cfg.Hive.Execution.Interval)
		}
		if cfg.Hive.Execution.WorkDuration < 0 {
			errs.Add("hive.execution.workDuration", "must not be negative", cfg.Hive.Execution.WorkDuration)
		}
	}

	if cfg.NLP.Timeout <= 0 {
		errs.Add("nlp.timeout", "must be positive", cfg.NLP.Timeout)
	}

	nats := cfg.Events.NATS
	if nats.Enabled {
		if !nats.Embedded && strings.TrimSpace(nats.URL) == "" {
			errs.Add("events.nats.url", "is required unless events.nats.embedded is set")
		}
		if nats.Embedded && (nats.Port < -1 || nats.Port > 65535) {
			errs.Add("events.nats.port", "must be -1 or between 0 and 65535", nats.Port)
		}
	}

	if _, err := logging.ParseLevel(cfg.Logging.Level); err != nil {
		errs.Add("logging.level", err.Error(), cfg.Logging.Level)
	}
	addIf(ValidateOneOf("logging.format", cfg.Logging.Format, []string{string(logging.FormatText), string(logging.FormatJSON)}))

	if errs.HasErrors() {
		return errs
	}
	return nil
}
