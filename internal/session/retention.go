package session

import (
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/instinctlab/instinct/internal/logger"
	"github.com/instinctlab/instinct/internal/paths"
)

// Retention defaults applied by hook invocations.
const (
	DefaultMaxSessions = 50
	DefaultMaxDays     = 7
)

type sessionFile struct {
	path    string
	modTime time.Time
}

// CleanOld enforces the retention policy over the sessions directory:
// keep at most maxSessions files ranked by modification time, newest
// first, then drop any survivor older than maxDays days. Rank is cut
// before age.
//
// It never fails. A missing directory is created empty, files that
// vanish mid-scan (another hook pruning concurrently) are skipped, and
// deletion errors are logged and swallowed. Returns the number of
// files removed.
func CleanOld(dirs paths.Dirs, maxSessions, maxDays int) int {
	entries, err := os.ReadDir(dirs.Sessions)
	if err != nil {
		if os.IsNotExist(err) {
			if mkErr := os.MkdirAll(dirs.Sessions, 0755); mkErr != nil {
				logger.Warn("session: create %s: %v", dirs.Sessions, mkErr)
			}
		} else {
			logger.Warn("session: scan %s: %v", dirs.Sessions, err)
		}
		return 0
	}

	var files []sessionFile
	for _, entry := range entries {
		if entry.IsDir() || !IsSessionFile(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			// Removed between ReadDir and Stat.
			continue
		}
		files = append(files, sessionFile{
			path:    filepath.Join(dirs.Sessions, entry.Name()),
			modTime: info.ModTime(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].modTime.After(files[j].modTime)
	})

	removed := 0

	// Rank cut: keep only the maxSessions most recent.
	keep := files
	if maxSessions >= 0 && len(files) > maxSessions {
		for _, f := range files[maxSessions:] {
			if removeQuiet(f.path) {
				removed++
			}
		}
		keep = files[:maxSessions]
	}

	// Age cut on the survivors.
	cutoff := time.Now().AddDate(0, 0, -maxDays)
	for _, f := range keep {
		if f.modTime.Before(cutoff) {
			if removeQuiet(f.path) {
				removed++
			}
		}
	}

	return removed
}

// Count returns how many files in the sessions directory follow the
// session naming convention.
func Count(dirs paths.Dirs) int {
	entries, err := os.ReadDir(dirs.Sessions)
	if err != nil {
		return 0
	}
	n := 0
	for _, entry := range entries {
		if !entry.IsDir() && IsSessionFile(entry.Name()) {
			n++
		}
	}
	return n
}

// removeQuiet deletes best-effort. A file already gone counts as
// removed; any other failure is logged and ignored.
func removeQuiet(path string) bool {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		logger.Warn("session: remove %s: %v", path, err)
		return false
	}
	return true
}
