package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/instinctlab/instinct/internal/logger"
)

var (
	debugMode             bool
	quietMode             bool
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "instinct",
	Short: "Session state and housekeeping for AI assistant hooks",
	Long: `Instinct keeps per-session state for AI coding assistant hooks.
Hooks pipe a JSON payload on stdin; instinct records session files under
~/.instinct/sessions, folds results into memory.json, and prunes state
that falls outside the retention window.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initLogging)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
}

func initLogging() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())

	// Ensure the logger is closed on exit
	defer logger.Close()
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("instinct %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("instinct %s\n", version)
}
