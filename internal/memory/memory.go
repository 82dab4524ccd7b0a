// Package memory maintains the single cross-session document at
// memory.json. The document is created lazily on first save and
// overwritten wholesale every time; concurrent hook processes are
// last-writer-wins.
package memory

import (
	"time"

	"github.com/instinctlab/instinct/internal/paths"
	"github.com/instinctlab/instinct/internal/store"
)

// Document accumulates state across sessions.
type Document struct {
	UpdatedAt     time.Time      `json:"updated_at"`
	SessionCount  int            `json:"session_count"`
	LastSessionID string         `json:"last_session_id,omitempty"`
	LastBranch    string         `json:"last_branch,omitempty"`
	Counters      map[string]int `json:"counters,omitempty"`
}

// Load reads the document. A missing or corrupt file yields the zero
// document.
func Load(dirs paths.Dirs) Document {
	return store.Read(dirs.MemoryFile, Document{})
}

// Save overwrites the document on disk, stamping the update time.
func Save(dirs paths.Dirs, doc Document) error {
	doc.UpdatedAt = time.Now()
	return store.Write(dirs.MemoryFile, doc)
}

// RecordSession folds a finished session into the document and saves
// it.
func RecordSession(dirs paths.Dirs, sessionID, branch string) error {
	doc := Load(dirs)
	doc.SessionCount++
	doc.LastSessionID = sessionID
	if branch != "" {
		doc.LastBranch = branch
	}
	return Save(dirs, doc)
}

// Bump increments a named counter and saves the document.
func Bump(dirs paths.Dirs, counter string) error {
	doc := Load(dirs)
	if doc.Counters == nil {
		doc.Counters = make(map[string]int)
	}
	doc.Counters[counter]++
	return Save(dirs, doc)
}
