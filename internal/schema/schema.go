package schema

import (
	"encoding/json"
	"math"
	"strings"

	"hivemcp/internal/api"
)

// Kind is the JSON type a field accepts.
type Kind string

const (
	KindString  Kind = "string"
	KindInteger Kind = "integer"
)

// Field declares one tool argument and the messages used when it fails.
type Field struct {
	Name        string
	Kind        Kind
	Required    bool
	Description string

	// Enum restricts string values. With FoldCase the comparison ignores case
	// and the canonical spelling from Enum is stored.
	Enum     []string
	FoldCase bool

	// Min and Max bound integer values inclusively when set.
	Min *int
	Max *int

	MissingMessage string
	InvalidMessage string
}

// Schema is the ordered list of fields for one tool.
type Schema struct {
	Tool   string
	Fields []Field
}

// Values holds arguments that passed validation, already coerced to
// string or int.
type Values map[string]interface{}

// String returns the string value of name, or "" when absent.
func (v Values) String(name string) string {
	s, _ := v[name].(string)
	return s
}

// Int returns the integer value of name, or 0 when absent.
func (v Values) Int(name string) int {
	i, _ := v[name].(int)
	return i
}

// Has reports whether name was supplied.
func (v Values) Has(name string) bool {
	_, ok := v[name]
	return ok
}

// Validate checks args against the schema. Presence and type of every field
// are checked first, in declared order; domain rules (enum, range) run only
// once all of those pass. The first failure is returned as an
// *api.ValidationError.
func (s Schema) Validate(args map[string]interface{}) (Values, error) {
	values := make(Values, len(s.Fields))

	for _, f := range s.Fields {
		raw, present := args[f.Name]
		if present && raw == nil {
			present = false
		}

		coerced, ok := f.coerce(raw)
		if present && f.Kind == KindString && ok && strings.TrimSpace(coerced.(string)) == "" {
			// A blank string counts as not supplied.
			present = false
		}

		switch {
		case !present && f.Required:
			return nil, s.fail(f, f.MissingMessage)
		case !present:
			continue
		case !ok && f.Required:
			return nil, s.fail(f, f.MissingMessage)
		case !ok:
			return nil, s.fail(f, f.InvalidMessage)
		}
		values[f.Name] = coerced
	}

	for _, f := range s.Fields {
		v, ok := values[f.Name]
		if !ok {
			continue
		}
		canonical, valid := f.checkDomain(v)
		if !valid {
			return nil, s.fail(f, f.InvalidMessage)
		}
		values[f.Name] = canonical
	}

	return values, nil
}

func (s Schema) fail(f Field, message string) error {
	if message == "" {
		message = "Invalid parameter: " + f.Name
	}
	return api.NewValidationError(s.Tool, f.Name, message)
}

func (f Field) coerce(raw interface{}) (interface{}, bool) {
	switch f.Kind {
	case KindInteger:
		return asInteger(raw)
	default:
		s, ok := raw.(string)
		return s, ok
	}
}

func (f Field) checkDomain(v interface{}) (interface{}, bool) {
	switch val := v.(type) {
	case string:
		if len(f.Enum) == 0 {
			return val, true
		}
		for _, allowed := range f.Enum {
			if val == allowed || (f.FoldCase && strings.EqualFold(val, allowed)) {
				return allowed, true
			}
		}
		return nil, false
	case int:
		if f.Min != nil && val < *f.Min {
			return nil, false
		}
		if f.Max != nil && val > *f.Max {
			return nil, false
		}
		return val, true
	}
	return v, true
}

// asInteger accepts JSON numbers that carry no fractional part.
func asInteger(raw interface{}) (interface{}, bool) {
	switch n := raw.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) || n != math.Trunc(n) {
			return nil, false
		}
		if n > math.MaxInt32 || n < math.MinInt32 {
			return nil, false
		}
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil || i > math.MaxInt32 || i < math.MinInt32 {
			return nil, false
		}
		return int(i), true
	}
	return nil, false
}

// Args renders the schema as tool argument metadata, including the JSON
// Schema keywords clients need to build valid calls.
func (s Schema) Args() []api.ArgMetadata {
	args := make([]api.ArgMetadata, 0, len(s.Fields))
	for _, f := range s.Fields {
		extra := map[string]interface{}{
			"type": string(f.Kind),
		}
		if len(f.Enum) > 0 {
			extra["enum"] = append([]string(nil), f.Enum...)
		}
		if f.Min != nil {
			extra["minimum"] = *f.Min
		}
		if f.Max != nil {
			extra["maximum"] = *f.Max
		}
		args = append(args, api.ArgMetadata{
			Name:        f.Name,
			Type:        string(f.Kind),
			Required:    f.Required,
			Description: f.Description,
			Schema:      extra,
		})
	}
	return args
}

func intPtr(i int) *int { return &i }
