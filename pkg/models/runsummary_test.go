package models

import (
	"path/filepath"
	"testing"
)

func TestSummaryFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	rs := &RunSummary{RunID: "abc", Score: 120, Level: 2, Crashed: true}

	if err := rs.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile failed: %v", err)
	}
	got, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}
	if got.RunID != "abc" || got.Score != 120 || got.Level != 2 || !got.Crashed {
		t.Errorf("Expected saved summary back, got %+v", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "none.json")); err == nil {
		t.Error("Expected error for a missing file")
	}
}
