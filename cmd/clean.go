package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/instinctlab/instinct/internal/console"
	"github.com/instinctlab/instinct/internal/logger"
	"github.com/instinctlab/instinct/internal/paths"
	"github.com/instinctlab/instinct/internal/session"
)

var (
	skipConfirm bool
	maxSessions int
	maxDays     int
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Prune session files outside the retention window",
	Long: `Prune session files that fall outside the retention window and remove
instinct log files.

Retention keeps the --max-sessions most recent session files, then drops
any survivor older than --max-days days. The command prompts for
confirmation before proceeding unless the --yes flag is used.`,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	cleanCmd.Flags().IntVar(&maxSessions, "max-sessions", session.DefaultMaxSessions, "Most recent session files to keep")
	cleanCmd.Flags().IntVar(&maxDays, "max-days", session.DefaultMaxDays, "Maximum session file age in days")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	return runCleanWithReader(os.Stdin)
}

// runCleanWithReader allows injecting a reader for testing
func runCleanWithReader(input io.Reader) error {
	dirs, err := paths.Default()
	if err != nil {
		return fmt.Errorf("error resolving state directory: %w", err)
	}

	count := session.Count(dirs)

	fmt.Printf("This will prune %s\n", dirs.Sessions)
	fmt.Printf("  - %d session file(s) present; keeping at most %d, none older than %d day(s)\n", count, maxSessions, maxDays)
	fmt.Println("  - instinct log files under /tmp will be removed")

	if !skipConfirm {
		if !confirm(input, "Continue?") {
			fmt.Println("Aborted.")
			return nil
		}
	}

	pruned := session.CleanOld(dirs, maxSessions, maxDays)

	logsCleared, err := logger.ClearLogs()
	if err != nil {
		console.Warn("clearing logs: %v", err)
	}

	console.OK("pruned %d session file(s), removed %d log file(s)", pruned, logsCleared)
	return nil
}

// confirm prompts the user for y/n confirmation
func confirm(input io.Reader, prompt string) bool {
	reader := bufio.NewReader(input)
	fmt.Printf("%s [y/N]: ", prompt)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
