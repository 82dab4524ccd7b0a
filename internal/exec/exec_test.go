package exec

import (
	"context"
	"errors"
	"strings"
	"testing"
)

var ctx = context.Background()

func TestReal_Output(t *testing.T) {
	e := NewReal()
	if !e.LookPath("echo") {
		t.Skip("echo not on PATH")
	}

	out, err := e.Output(ctx, "", "echo", "hello")
	if err != nil {
		t.Fatalf("Output: %v", err)
	}
	if strings.TrimSpace(string(out)) != "hello" {
		t.Errorf("Output = %q", out)
	}
}

func TestReal_OutputError(t *testing.T) {
	e := NewReal()

	if _, err := e.Output(ctx, "", "definitely-not-a-real-tool-xyz"); err == nil {
		t.Error("expected error for missing command")
	}
}

func TestReal_LookPath(t *testing.T) {
	e := NewReal()
	if e.LookPath("definitely-not-a-real-tool-xyz") {
		t.Error("LookPath should report missing tools")
	}
}

func TestMock_ReplaysStubs(t *testing.T) {
	m := NewMock()
	m.Stub("git rev-parse --abbrev-ref HEAD", "main\n")

	out, err := m.Output(ctx, "/repo", "git", "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		t.Fatalf("Output: %v", err)
	}
	if string(out) != "main\n" {
		t.Errorf("Output = %q", out)
	}
	if len(m.Calls) != 1 || m.Calls[0] != "git rev-parse --abbrev-ref HEAD" {
		t.Errorf("Calls = %v", m.Calls)
	}
}

func TestMock_StubErr(t *testing.T) {
	m := NewMock()
	stubbed := errors.New("boom")
	m.StubErr("git status", stubbed)

	if _, err := m.Output(ctx, "", "git", "status"); !errors.Is(err, stubbed) {
		t.Errorf("err = %v, want %v", err, stubbed)
	}
}

func TestMock_UnstubbedFails(t *testing.T) {
	m := NewMock()
	if _, err := m.Output(ctx, "", "git", "log"); err == nil {
		t.Error("unstubbed command should fail")
	}
}

func TestMock_LookPath(t *testing.T) {
	m := NewMock()
	m.Missing["prettier"] = true

	if m.LookPath("prettier") {
		t.Error("prettier should be reported missing")
	}
	if !m.LookPath("git") {
		t.Error("git should be reported present by default")
	}
}
