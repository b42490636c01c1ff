package server

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"hivemcp/pkg/logging"
)

// maxLineSize bounds a single JSON-RPC message on the line transport.
const maxLineSize = 10 * 1024 * 1024

// ServeLines reads newline-delimited JSON-RPC messages from in and writes
// one response line per request to out. Blank lines are skipped and
// notifications produce no output. Messages are handled one at a time in
// arrival order. It returns nil when in reaches EOF.
func (d *Dispatcher) ServeLines(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	w := bufio.NewWriter(out)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		msg := make(json.RawMessage, len(line))
		copy(msg, line)

		resp := d.HandleMessage(ctx, msg)
		if resp == nil {
			continue
		}

		data, err := json.Marshal(resp)
		if err != nil {
			logging.Error("Dispatcher", err, "Failed to encode response")
			data, _ = json.Marshal(newErrorResponse(nil, codeInternalError, "Internal error"))
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("failed to write response: %w", err)
		}
		if err := w.Flush(); err != nil {
			return fmt.Errorf("failed to flush response: %w", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read request: %w", err)
	}
	return nil
}
