package environment

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// Default values for fields missing from a preset
const (
	DefaultFriction        = 1.0
	DefaultSpeedMultiplier = 1.0
	DefaultObstacleDensity = 0.04
	DefaultPowerupDensity  = 0.02
)

// Visual holds the presentation hints of a preset
type Visual struct {
	BgType string `json:"bgType"`
}

// Preset is one named driving environment
type Preset struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Seed            int64   `json:"seed"`
	Friction        float64 `json:"friction"`
	SpeedMultiplier float64 `json:"speedMultiplier"`
	ObstacleDensity float64 `json:"obstacleDensity"`
	PowerupDensity  float64 `json:"powerupDensity"`
	Visual          Visual  `json:"visual"`
}

// UnmarshalJSON fills in the defaults before decoding so absent keys keep them
func (p *Preset) UnmarshalJSON(data []byte) error {
	type plain Preset
	v := plain{
		Friction:        DefaultFriction,
		SpeedMultiplier: DefaultSpeedMultiplier,
		ObstacleDensity: DefaultObstacleDensity,
		PowerupDensity:  DefaultPowerupDensity,
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = Preset(v)
	return nil
}

// Parse decodes a JSON array of presets
func Parse(data []byte) ([]Preset, error) {
	var presets []Preset
	if err := json.Unmarshal(data, &presets); err != nil {
		return nil, fmt.Errorf("failed to parse environments: %w", err)
	}
	if presets == nil {
		return nil, fmt.Errorf("failed to parse environments: expected a JSON array")
	}
	return presets, nil
}

// Load reads the preset list at path
func Load(path string) ([]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read environments file: %w", err)
	}
	presets, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return presets, nil
}

// LoadOrEmpty is Load that logs a warning and returns an empty list on failure
func LoadOrEmpty(path string) []Preset {
	presets, err := Load(path)
	if err != nil {
		log.Printf("Warning: no environments loaded: %v", err)
		return []Preset{}
	}
	return presets
}

// Find returns the preset with the given id
func Find(presets []Preset, id string) (Preset, bool) {
	for _, p := range presets {
		if p.ID == id {
			return p, true
		}
	}
	return Preset{}, false
}
