package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/instinctlab/instinct/internal/console"
	iexec "github.com/instinctlab/instinct/internal/exec"
	"github.com/instinctlab/instinct/internal/git"
	"github.com/instinctlab/instinct/internal/memory"
	"github.com/instinctlab/instinct/internal/notify"
	"github.com/instinctlab/instinct/internal/paths"
	"github.com/instinctlab/instinct/internal/session"
	"github.com/instinctlab/instinct/internal/stdin"
)

// hookPayload is the JSON the assistant pipes to hooks on stdin.
// Every field is optional; unknown fields are ignored.
type hookPayload struct {
	SessionID     string `json:"session_id"`
	HookEventName string `json:"hook_event_name"`
	Prompt        string `json:"prompt"`
	CWD           string `json:"cwd"`
	Source        string `json:"source"`
}

var (
	recentCommits int
	notifyOnEnd   bool
)

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Hook handlers invoked by the assistant",
	Args:  cobra.NoArgs,
}

var sessionStartCmd = &cobra.Command{
	Use:   "session-start",
	Short: "Record the start of a session",
	Args:  cobra.NoArgs,
	RunE:  runSessionStart,
}

var sessionEndCmd = &cobra.Command{
	Use:   "session-end",
	Short: "Close out a session and fold it into memory",
	Args:  cobra.NoArgs,
	RunE:  runSessionEnd,
}

func init() {
	sessionStartCmd.Flags().IntVar(&recentCommits, "recent-commits", 5, "How many commits back to scan for recently changed files")
	sessionEndCmd.Flags().BoolVar(&notifyOnEnd, "notify", false, "Send a desktop notification when the session closes")

	// Handler subcommands are called by the hook system, not by
	// users. Hidden to keep help output small.
	for _, sub := range []*cobra.Command{sessionStartCmd, sessionEndCmd} {
		sub.Hidden = true
		hookCmd.AddCommand(sub)
	}
	rootCmd.AddCommand(hookCmd)
}

// payloadSessionID normalizes the assistant-issued session id. Empty
// when the payload carries none or the value is not usable as a file
// name.
func payloadSessionID(payload hookPayload) string {
	id := strings.ToLower(strings.TrimSpace(payload.SessionID))
	if !session.IsID(id) {
		return ""
	}
	return id
}

// payloadCWD resolves the working directory a hook should inspect.
func payloadCWD(payload hookPayload) string {
	if payload.CWD != "" {
		return payload.CWD
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return cwd
}

func runSessionStart(cmd *cobra.Command, args []string) error {
	dirs, err := paths.Default()
	if err != nil {
		// Hooks must not fail the assistant, so even this is a
		// degraded path rather than an error exit.
		console.Error("cannot resolve home directory: %v", err)
		return nil
	}

	payload, _ := stdin.Decode[hookPayload](cmd.InOrStdin(), stdin.DefaultTimeout)

	// Adopt the assistant's session id so the session-end hook closes
	// the same record. A payload without one gets a generated id.
	id := payloadSessionID(payload)
	if id == "" {
		id = session.NewID()
	}

	rec := session.Record{
		ID:        id,
		StartedAt: time.Now(),
		Source:    payload.Source,
		Prompt:    payload.Prompt,
	}

	ctx := cmd.Context()
	cwd := payloadCWD(payload)
	introspector := git.New(iexec.NewReal())
	if branch, ok := introspector.CurrentBranch(ctx, cwd); ok {
		rec.Branch = branch
	}
	rec.RecentFiles = introspector.RecentChanges(ctx, cwd, recentCommits)

	if err := session.Save(dirs, rec); err != nil {
		console.Error("save session %s: %v", rec.ID, err)
		return nil
	}

	if err := memory.Bump(dirs, "sessions_started"); err != nil {
		console.Warn("update memory: %v", err)
	}

	if n := session.CleanOld(dirs, session.DefaultMaxSessions, session.DefaultMaxDays); n > 0 {
		console.Info("pruned %d old session file(s)", n)
	}

	// The bare id goes to the command's stdout so downstream hooks can
	// consume it without parsing the status line.
	fmt.Fprintln(cmd.OutOrStdout(), rec.ID)
	console.OK("session %s started", rec.ID)
	return nil
}

func runSessionEnd(cmd *cobra.Command, args []string) error {
	dirs, err := paths.Default()
	if err != nil {
		console.Error("cannot resolve home directory: %v", err)
		return nil
	}

	payload, ok := stdin.Decode[hookPayload](cmd.InOrStdin(), stdin.DefaultTimeout)
	id := payloadSessionID(payload)
	if !ok || id == "" {
		console.Warn("no usable session id in hook payload; nothing to close")
		session.CleanOld(dirs, session.DefaultMaxSessions, session.DefaultMaxDays)
		return nil
	}

	rec := session.Load(dirs, id)
	now := time.Now()
	rec.EndedAt = &now
	if rec.StartedAt.IsZero() {
		rec.StartedAt = now
	}

	if err := session.Save(dirs, rec); err != nil {
		console.Error("save session %s: %v", rec.ID, err)
		return nil
	}

	if err := memory.RecordSession(dirs, rec.ID, rec.Branch); err != nil {
		console.Warn("update memory: %v", err)
	}
	if err := memory.Bump(dirs, "sessions_ended"); err != nil {
		console.Warn("update memory: %v", err)
	}

	if notifyOnEnd && notify.SessionCompleted(rec.ID) {
		console.Info("notification sent")
	}

	if n := session.CleanOld(dirs, session.DefaultMaxSessions, session.DefaultMaxDays); n > 0 {
		console.Info("pruned %d old session file(s)", n)
	}

	console.OK("session %s closed", rec.ID)
	return nil
}
