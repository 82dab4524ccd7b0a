// Package stdin reads the JSON payload an assistant hook pipes to the
// process, without ever blocking the caller for long.
package stdin

import (
	"encoding/json"
	"io"
	"time"

	"github.com/instinctlab/instinct/internal/logger"
)

// MaxPayloadBytes caps how much piped input is read. Hook payloads are
// small JSON objects; 1 MiB is generous headroom that prevents
// unbounded allocation.
const MaxPayloadBytes = 1 << 20

// DefaultTimeout bounds the wait for piped input. Interactive
// invocations have nothing on stdin and must not hang.
const DefaultTimeout = 100 * time.Millisecond

// Read drains r until EOF and returns the payload as raw JSON. ok is
// false when nothing arrives before the timeout, when the read fails,
// and when the bytes are not valid JSON.
func Read(r io.Reader, timeout time.Duration) (json.RawMessage, bool) {
	type result struct {
		data []byte
		err  error
	}

	ch := make(chan result, 1)
	go func() {
		data, err := io.ReadAll(io.LimitReader(r, MaxPayloadBytes))
		ch <- result{data, err}
	}()

	select {
	case res := <-ch:
		if res.err != nil {
			logger.Warn("stdin: read: %v", res.err)
			return nil, false
		}
		if len(res.data) == 0 {
			return nil, false
		}
		if !json.Valid(res.data) {
			logger.Warn("stdin: payload is not valid JSON (%d bytes)", len(res.data))
			return nil, false
		}
		return json.RawMessage(res.data), true
	case <-time.After(timeout):
		// No piped input. The reader goroutine is abandoned; the
		// process is short-lived so the leak is bounded.
		return nil, false
	}
}

// Decode reads the payload and unmarshals it into T. The zero T comes
// back with ok=false when there is no payload or it does not decode.
func Decode[T any](r io.Reader, timeout time.Duration) (T, bool) {
	var v T

	raw, ok := Read(r, timeout)
	if !ok {
		return v, false
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		logger.Warn("stdin: decode payload: %v", err)
		var zero T
		return zero, false
	}
	return v, true
}
