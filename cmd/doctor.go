package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/instinctlab/instinct/internal/console"
	"github.com/instinctlab/instinct/internal/detect"
	iexec "github.com/instinctlab/instinct/internal/exec"
	"github.com/instinctlab/instinct/internal/git"
	"github.com/instinctlab/instinct/internal/notify"
	"github.com/instinctlab/instinct/internal/paths"
	"github.com/instinctlab/instinct/internal/session"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Report on the instinct environment",
	Args:  cobra.NoArgs,
	RunE:  runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	dirs, err := paths.Default()
	if err != nil {
		console.Error("cannot resolve home directory: %v", err)
		return nil
	}

	console.Info("state root: %s", dirs.Root)
	console.Info("sessions: %d file(s)", session.Count(dirs))

	ctx := cmd.Context()
	executor := iexec.NewReal()

	if !executor.LookPath("git") {
		console.Warn("git not found on PATH")
	} else if cwd, err := os.Getwd(); err == nil {
		if branch, ok := git.New(executor).CurrentBranch(ctx, cwd); ok {
			console.OK("git branch: %s", branch)
		} else {
			console.Info("not inside a git repository")
		}
	}

	formatters := detect.AvailableFormatters(ctx, executor)
	if len(formatters) == 0 {
		console.Info("no external formatters detected")
	} else {
		console.OK("formatters: %s", strings.Join(formatters, ", "))
	}

	if mechanism := notify.Mechanism(); mechanism != "" {
		console.OK("notifications: %s", mechanism)
	} else {
		console.Warn("notifications unsupported on this platform")
	}

	return nil
}
