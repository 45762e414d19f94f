package models

import (
	"encoding/json"
	"os"
	"time"
)

// RunSummary is the end-of-run record of a single session
type RunSummary struct {
	RunID       string    `json:"run_id"`
	Environment string    `json:"environment,omitempty"`
	Seed        int64     `json:"seed"`
	Score       int       `json:"score"`
	Distance    int       `json:"distance"`
	Level       int       `json:"level"`
	MaxSpeedKMH int       `json:"max_speed_kmh"`
	CarsPassed  int       `json:"cars_passed"`
	Pickups     int       `json:"pickups"`
	Ticks       int       `json:"ticks"`
	Crashed     bool      `json:"crashed"`
	StartedAt   time.Time `json:"started_at"`
	EndedAt     time.Time `json:"ended_at"`
}

// JSON returns the indented encoding of the summary
func (rs *RunSummary) JSON() ([]byte, error) {
	return json.MarshalIndent(rs, "", "  ")
}

// SaveToFile saves the summary to a JSON file
func (rs *RunSummary) SaveToFile(filename string) error {
	data, err := rs.JSON()
	if err != nil {
		return err
	}

	return os.WriteFile(filename, data, 0644)
}

// LoadFromFile loads a summary from a JSON file
func LoadFromFile(filename string) (*RunSummary, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var rs RunSummary
	if err := json.Unmarshal(data, &rs); err != nil {
		return nil, err
	}

	return &rs, nil
}
