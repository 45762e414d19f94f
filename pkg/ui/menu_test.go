package ui

import (
	"testing"

	"github.com/golangdaddy/highway/pkg/environment"
)

func TestMenuWrapsAndSelects(t *testing.T) {
	m := NewMenu([]environment.Preset{{ID: "ice", Name: "Ice Road"}, {ID: "dunes"}})

	labels := m.Labels()
	want := []string{FreeDrive, "Ice Road", "dunes"}
	if len(labels) != len(want) {
		t.Fatalf("Expected %d labels, got %v", len(want), labels)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("Label %d: expected %s, got %s", i, want[i], labels[i])
		}
	}

	if m.Selected() != nil {
		t.Error("Expected free drive selected first")
	}

	m.Move(-1)
	if m.Index() != 2 || m.Selected().ID != "dunes" {
		t.Errorf("Expected wrap to the last entry, got %d", m.Index())
	}

	m.Move(2)
	if m.Index() != 1 || m.Selected().ID != "ice" {
		t.Errorf("Expected ice after wrapping forward, got %d", m.Index())
	}
}

func TestMenuWithoutPresets(t *testing.T) {
	m := NewMenu(nil)
	m.Move(1)
	if m.Index() != 0 || m.Selected() != nil {
		t.Error("Expected only free drive")
	}
}
