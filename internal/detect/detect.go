// Package detect probes for optional external tooling by invoking
// each tool's version check. Absence is a normal result, never an
// error.
package detect

import (
	"context"

	iexec "github.com/instinctlab/instinct/internal/exec"
)

// Tool is an external helper instinct can take advantage of when
// present on the host.
type Tool struct {
	Name        string
	VersionArgs []string
}

// Formatters are the code formatters probed by `instinct doctor` and
// surfaced to hooks that want to format changed files.
var Formatters = []Tool{
	{Name: "prettier", VersionArgs: []string{"--version"}},
	{Name: "black", VersionArgs: []string{"--version"}},
	{Name: "rustfmt", VersionArgs: []string{"--version"}},
	{Name: "shfmt", VersionArgs: []string{"--version"}},
}

// Available reports whether the tool is on PATH and its version check
// runs cleanly.
func Available(ctx context.Context, e iexec.Executor, t Tool) bool {
	if !e.LookPath(t.Name) {
		return false
	}
	return e.Run(ctx, "", t.Name, t.VersionArgs...) == nil
}

// AvailableFormatters returns the names of the formatters present on
// the host, in Formatters order. The slice is empty, never nil.
func AvailableFormatters(ctx context.Context, e iexec.Executor) []string {
	found := []string{}
	for _, tool := range Formatters {
		if Available(ctx, e, tool) {
			found = append(found, tool.Name)
		}
	}
	return found
}
