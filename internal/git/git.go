// Package git answers best-effort questions about the repository a
// hook runs in. Every query degrades to an empty result when the
// directory is not a repository, git is unavailable, or the command
// fails; nothing here ever returns an error to the caller.
package git

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	iexec "github.com/instinctlab/instinct/internal/exec"
	"github.com/instinctlab/instinct/internal/logger"
)

// Introspector runs read-only git queries through the executor seam.
type Introspector struct {
	exec iexec.Executor
}

// New returns an Introspector backed by e.
func New(e iexec.Executor) *Introspector {
	return &Introspector{exec: e}
}

// CurrentBranch returns the checked-out branch name for dir. ok is
// false outside a repository and when the branch cannot be resolved,
// detached HEAD included.
func (g *Introspector) CurrentBranch(ctx context.Context, dir string) (string, bool) {
	out, err := g.exec.Output(ctx, dir, "git", "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		logger.Debug("git: branch query in %s: %v", dir, err)
		return "", false
	}

	branch := strings.TrimSpace(string(out))
	if branch == "" || branch == "HEAD" {
		return "", false
	}
	return branch, true
}

// RecentChanges returns the paths touched within the last commits
// commits in dir. The requested depth is clamped to the commits
// actually present, and an invalid range (shallow clone, depth equal
// to the full history) falls back to a working-tree diff. Any failure
// yields an empty, non-nil slice.
func (g *Introspector) RecentChanges(ctx context.Context, dir string, commits int) []string {
	changes := []string{}
	if commits <= 0 {
		return changes
	}

	out, err := g.exec.Output(ctx, dir, "git", "rev-list", "--count", "HEAD")
	if err != nil {
		logger.Debug("git: rev-list in %s: %v", dir, err)
		return changes
	}
	total, err := strconv.Atoi(strings.TrimSpace(string(out)))
	if err != nil || total <= 0 {
		return changes
	}

	depth := min(commits, total)

	out, err = g.exec.Output(ctx, dir, "git", "diff", "--name-only", fmt.Sprintf("HEAD~%d", depth), "HEAD")
	if err != nil {
		// HEAD~depth does not exist when depth spans the entire
		// history; fall back to the working-tree diff.
		out, err = g.exec.Output(ctx, dir, "git", "diff", "--name-only", "HEAD")
		if err != nil {
			logger.Debug("git: diff fallback in %s: %v", dir, err)
			return changes
		}
	}

	for _, line := range strings.Split(string(out), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			changes = append(changes, line)
		}
	}
	return changes
}
