package memory

import (
	"os"
	"testing"

	"github.com/instinctlab/instinct/internal/paths"
)

func testDirs(t *testing.T) paths.Dirs {
	t.Helper()
	return paths.ForHome(t.TempDir())
}

func TestLoad_Missing(t *testing.T) {
	dirs := testDirs(t)

	doc := Load(dirs)
	if doc.SessionCount != 0 || doc.LastSessionID != "" {
		t.Errorf("Load missing = %+v, want zero document", doc)
	}
}

func TestLoad_Corrupt(t *testing.T) {
	dirs := testDirs(t)
	if err := os.MkdirAll(dirs.Root, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(dirs.MemoryFile, []byte("{broken"), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	doc := Load(dirs)
	if doc.SessionCount != 0 {
		t.Errorf("Load corrupt = %+v, want zero document", doc)
	}
}

func TestRecordSession(t *testing.T) {
	dirs := testDirs(t)

	if err := RecordSession(dirs, "1714000000000-0123456789ab", "main"); err != nil {
		t.Fatalf("RecordSession: %v", err)
	}
	if err := RecordSession(dirs, "1714000000001-ba9876543210", ""); err != nil {
		t.Fatalf("RecordSession: %v", err)
	}

	doc := Load(dirs)
	if doc.SessionCount != 2 {
		t.Errorf("SessionCount = %d, want 2", doc.SessionCount)
	}
	if doc.LastSessionID != "1714000000001-ba9876543210" {
		t.Errorf("LastSessionID = %q", doc.LastSessionID)
	}
	// An empty branch must not clobber the remembered one.
	if doc.LastBranch != "main" {
		t.Errorf("LastBranch = %q, want main", doc.LastBranch)
	}
	if doc.UpdatedAt.IsZero() {
		t.Error("UpdatedAt not stamped")
	}
}

func TestSave_OverwritesWholesale(t *testing.T) {
	dirs := testDirs(t)

	if err := Save(dirs, Document{SessionCount: 5, LastBranch: "old"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := Save(dirs, Document{SessionCount: 1}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	doc := Load(dirs)
	if doc.SessionCount != 1 || doc.LastBranch != "" {
		t.Errorf("Save should overwrite wholesale, got %+v", doc)
	}
}

func TestBump(t *testing.T) {
	dirs := testDirs(t)

	for i := 0; i < 3; i++ {
		if err := Bump(dirs, "sessions_pruned"); err != nil {
			t.Fatalf("Bump: %v", err)
		}
	}

	doc := Load(dirs)
	if doc.Counters["sessions_pruned"] != 3 {
		t.Errorf("counter = %d, want 3", doc.Counters["sessions_pruned"])
	}
}
