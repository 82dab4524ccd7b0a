// Package exec is the single seam through which instinct invokes
// external commands. Everything that shells out (git queries, tool
// detection) goes through an Executor, so subprocess-dependent
// behavior can be tested with a recording fake.
package exec

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Executor runs external commands and captures their output.
type Executor interface {
	// Output runs the command in dir and returns its stdout.
	Output(ctx context.Context, dir, name string, args ...string) ([]byte, error)
	// Run runs the command in dir, discarding its output.
	Run(ctx context.Context, dir, name string, args ...string) error
	// LookPath reports whether the named tool is on PATH.
	LookPath(name string) bool
}

// Real invokes commands on the host.
type Real struct{}

// NewReal returns an Executor backed by os/exec.
func NewReal() Real { return Real{} }

func (Real) Output(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return nil, err
	}
	return stdout.Bytes(), nil
}

func (Real) Run(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	return cmd.Run()
}

func (Real) LookPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// MockResult is a canned outcome for one command line.
type MockResult struct {
	Output string
	Err    error
}

// Mock replays canned results and records every invocation.
// Command lines are keyed as "name arg1 arg2 ...".
type Mock struct {
	Calls   []string
	Results map[string]MockResult
	Missing map[string]bool // tools LookPath reports absent
}

// NewMock returns an empty Mock.
func NewMock() *Mock {
	return &Mock{
		Results: make(map[string]MockResult),
		Missing: make(map[string]bool),
	}
}

// Stub registers stdout for an exact command line.
func (m *Mock) Stub(cmdline, output string) {
	m.Results[cmdline] = MockResult{Output: output}
}

// StubErr registers a failure for an exact command line.
func (m *Mock) StubErr(cmdline string, err error) {
	m.Results[cmdline] = MockResult{Err: err}
}

func cmdline(name string, args []string) string {
	return strings.Join(append([]string{name}, args...), " ")
}

func (m *Mock) Output(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	key := cmdline(name, args)
	m.Calls = append(m.Calls, key)
	res, ok := m.Results[key]
	if !ok {
		return nil, fmt.Errorf("mock: no result stubbed for %q", key)
	}
	if res.Err != nil {
		return nil, res.Err
	}
	return []byte(res.Output), nil
}

func (m *Mock) Run(ctx context.Context, dir, name string, args ...string) error {
	_, err := m.Output(ctx, dir, name, args...)
	return err
}

func (m *Mock) LookPath(name string) bool {
	return !m.Missing[name]
}
