package cli

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseToolArgs builds tool arguments from a JSON object and key=value
// pairs. Pairs are applied after the JSON object and win on conflicts.
// Pair values that parse as JSON keep their JSON type, so count=3 is a
// number and tags=["a"] an array; anything else is a string.
func ParseToolArgs(pairs []string, jsonArgs string) (map[string]interface{}, error) {
	args := make(map[string]interface{})

	if strings.TrimSpace(jsonArgs) != "" {
		if err := json.Unmarshal([]byte(jsonArgs), &args); err != nil {
			return nil, fmt.Errorf("--args must be a JSON object: %w", err)
		}
		if args == nil {
			args = make(map[string]interface{})
		}
	}

	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid argument %q: expected key=value", pair)
		}
		value = stripQuotes(value)

		var jsonValue interface{}
		if err := json.Unmarshal([]byte(value), &jsonValue); err == nil {
			args[key] = jsonValue
		} else {
			args[key] = value
		}
	}

	return args, nil
}

func stripQuotes(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
