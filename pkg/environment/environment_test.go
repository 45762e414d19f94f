package environment

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseAppliesDefaults(t *testing.T) {
	data := []byte(`[
		{"id": "ice", "name": "Ice Road", "seed": 7, "friction": 0.2, "visual": {"bgType": "snow"}},
		{"id": "bare"}
	]`)

	presets, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(presets) != 2 {
		t.Fatalf("Expected 2 presets, got %d", len(presets))
	}

	ice := presets[0]
	if ice.Friction != 0.2 || ice.Seed != 7 || ice.Visual.BgType != "snow" {
		t.Errorf("Unexpected ice preset %+v", ice)
	}
	if ice.SpeedMultiplier != DefaultSpeedMultiplier {
		t.Errorf("Expected default speed multiplier, got %f", ice.SpeedMultiplier)
	}

	bare := presets[1]
	if bare.Friction != DefaultFriction || bare.ObstacleDensity != DefaultObstacleDensity || bare.PowerupDensity != DefaultPowerupDensity {
		t.Errorf("Expected defaults on bare preset, got %+v", bare)
	}
}

func TestParseRejectsNonArray(t *testing.T) {
	tests := []string{`{"id": "x"}`, `null`, `not json`, `"str"`}
	for _, in := range tests {
		if _, err := Parse([]byte(in)); err == nil {
			t.Errorf("Expected error for %q", in)
		}
	}
}

func TestLoadOrEmpty(t *testing.T) {
	dir := t.TempDir()

	if got := LoadOrEmpty(filepath.Join(dir, "missing.json")); got == nil || len(got) != 0 {
		t.Errorf("Expected empty list for a missing file, got %v", got)
	}

	bad := filepath.Join(dir, "bad.json")
	os.WriteFile(bad, []byte("{"), 0644)
	if got := LoadOrEmpty(bad); len(got) != 0 {
		t.Errorf("Expected empty list for malformed file, got %v", got)
	}

	good := filepath.Join(dir, "good.json")
	os.WriteFile(good, []byte(`[{"id":"a"},{"id":"b"}]`), 0644)
	presets := LoadOrEmpty(good)
	if len(presets) != 2 {
		t.Fatalf("Expected 2 presets, got %d", len(presets))
	}

	if p, ok := Find(presets, "b"); !ok || p.ID != "b" {
		t.Errorf("Expected to find preset b")
	}
	if _, ok := Find(presets, "zzz"); ok {
		t.Error("Expected unknown id to be missing")
	}
}
