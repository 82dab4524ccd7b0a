package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// setupTestLogger creates a temp log file and initializes the logger with it.
// Returns the path to the temp file and a cleanup function.
func setupTestLogger(t *testing.T) (string, func()) {
	t.Helper()
	Reset()

	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test-debug.log")
	if err := Init(logPath); err != nil {
		t.Fatalf("Failed to init logger: %v", err)
	}

	return logPath, func() {
		Reset()
	}
}

func TestInfo_WritesToFile(t *testing.T) {
	logPath, cleanup := setupTestLogger(t)
	defer cleanup()

	testMsg := "test-unique-string-12345"
	Info("%s", testMsg)

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(content), testMsg) {
		t.Error("log file should contain the logged message")
	}
}

func TestDebug_SuppressedByDefault(t *testing.T) {
	logPath, cleanup := setupTestLogger(t)
	defer cleanup()

	Debug("debug-suppressed-marker")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if strings.Contains(string(content), "debug-suppressed-marker") {
		t.Error("debug message should be suppressed at the default level")
	}
}

func TestSetDebug_EnablesDebug(t *testing.T) {
	logPath, cleanup := setupTestLogger(t)
	defer cleanup()

	SetDebug(true)
	defer SetDebug(false)

	Debug("debug-enabled-marker")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(content), "debug-enabled-marker") {
		t.Error("debug message should appear after SetDebug(true)")
	}
}

func TestWarn_Formatting(t *testing.T) {
	logPath, cleanup := setupTestLogger(t)
	defer cleanup()

	Warn("count=%d name=%s", 42, "session")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(content), "count=42 name=session") {
		t.Error("formatted message missing from log file")
	}
}

func TestClose(t *testing.T) {
	_, cleanup := setupTestLogger(t)
	defer cleanup()

	// Close should not panic, and logging after Close should not panic
	Close()
	Info("after close")
}
