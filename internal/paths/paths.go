// Package paths computes the on-disk layout for instinct state.
//
// Everything instinct persists lives under a single dot-directory in
// the invoking user's home. Components receive a Dirs value instead of
// computing paths themselves, so tests can point the whole subsystem
// at a temporary directory.
package paths

import (
	"os"
	"path/filepath"
)

// Dirs is the resolved state layout for one user.
type Dirs struct {
	// Root is the state directory, ~/.instinct.
	Root string
	// Sessions holds one JSON file per session.
	Sessions string
	// Instincts is created for learned-instinct documents. The
	// housekeeping core never reads it.
	Instincts string
	// MemoryFile is the single accumulated cross-session document.
	MemoryFile string
}

// ForHome derives the layout from a home directory. Pure function,
// no filesystem access.
func ForHome(home string) Dirs {
	root := filepath.Join(home, ".instinct")
	return Dirs{
		Root:       root,
		Sessions:   filepath.Join(root, "sessions"),
		Instincts:  filepath.Join(root, "instincts"),
		MemoryFile: filepath.Join(root, "memory.json"),
	}
}

// Default resolves the layout for the invoking user.
func Default() (Dirs, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Dirs{}, err
	}
	return ForHome(home), nil
}
