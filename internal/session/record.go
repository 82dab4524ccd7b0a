package session

import (
	"path/filepath"
	"time"

	"github.com/instinctlab/instinct/internal/paths"
	"github.com/instinctlab/instinct/internal/store"
)

// Record is the envelope persisted for one hook session. Hooks are
// free to extend it; housekeeping relies only on the file's existence
// and modification time.
type Record struct {
	ID          string     `json:"id"`
	StartedAt   time.Time  `json:"started_at"`
	EndedAt     *time.Time `json:"ended_at,omitempty"`
	Source      string     `json:"source,omitempty"`
	Branch      string     `json:"branch,omitempty"`
	RecentFiles []string   `json:"recent_files,omitempty"`
	Prompt      string     `json:"prompt,omitempty"`
}

// FilePath returns where the record for id lives.
func FilePath(dirs paths.Dirs, id string) string {
	return filepath.Join(dirs.Sessions, id+".json")
}

// Save writes the record to the sessions directory. Write failures
// propagate: losing session state silently is worse than surfacing
// the error.
func Save(dirs paths.Dirs, rec Record) error {
	return store.Write(FilePath(dirs, rec.ID), rec)
}

// Load returns the record for id. A missing or unreadable file yields
// a zero record carrying just the ID.
func Load(dirs paths.Dirs, id string) Record {
	return store.Read(FilePath(dirs, id), Record{ID: id})
}
