package api

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// EncodeJSON renders a tool or resource payload as indented JSON text.
// HTML characters are left unescaped so that text round-trips verbatim.
// The tool and resource paths both use it, so equal values always produce
// equal text.
func EncodeJSON(v interface{}) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("failed to encode payload: %w", err)
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}
