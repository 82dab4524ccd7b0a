// Package store reads and writes the JSON documents instinct keeps
// under its state tree.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/instinctlab/instinct/internal/logger"
)

// Read returns the JSON document at path decoded into T.
//
// A missing file is a normal branch and yields def. A file that exists
// but does not parse also yields def after logging a warning, so a
// corrupt document can never take a hook invocation down.
func Read[T any](path string, def T) T {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return def
	}
	if err != nil {
		logger.Warn("store: read %s: %v", path, err)
		return def
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		logger.Warn("store: parse %s: %v", path, err)
		return def
	}
	return v
}

// Write serializes v as indented JSON and writes it to path, creating
// parent directories as needed. Any existing content is replaced
// wholesale.
//
// This is the one operation in the subsystem that fails loudly:
// masking a failed write risks silent data loss.
func Write(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	return os.WriteFile(path, data, 0644)
}
