package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/golangdaddy/highway/pkg/config"
	"github.com/golangdaddy/highway/pkg/models"
	"github.com/golangdaddy/highway/pkg/session"
	"github.com/golangdaddy/highway/pkg/vehicle"
)

func TestSimulateStopsAtTickLimit(t *testing.T) {
	cfg := config.Default()
	cfg.TrafficStartDelay = 1 << 30
	s, err := session.New(cfg, vehicle.DefaultCatalog(), session.Options{Seed: 1})
	if err != nil {
		t.Fatal(err)
	}

	sum := simulate(s, 500)
	if sum.Ticks != 500 || sum.Crashed {
		t.Errorf("Expected 500 clean ticks, got %+v", sum)
	}
	if sum.MaxSpeedKMH != int(cfg.PlayerMaxSpeed*10) {
		t.Errorf("Expected the autopilot to reach top speed, got %d", sum.MaxSpeedKMH)
	}
}

type half struct{}

func (half) Float64() float64 { return 0.5 }

func TestAutopilotSwerves(t *testing.T) {
	cfg := config.Default()
	cfg.TrafficStartDelay = 1 << 30
	s, err := session.New(cfg, vehicle.DefaultCatalog(), session.Options{Seed: 2})
	if err != nil {
		t.Fatal(err)
	}
	truck := vehicle.DefaultCatalog()[4]
	p := s.Player

	var pilot autopilot
	if c := pilot.controls(s); !c.Accelerate || c.Left || c.Right {
		t.Errorf("Expected plain acceleration on an empty road, got %+v", c)
	}

	s.Traffic = append(s.Traffic, vehicle.NewTrafficCar(truck, p.CurrentLane, p.Y-250, cfg, half{}))
	if c := pilot.controls(s); !c.Left {
		t.Errorf("Expected a swerve left, got %+v", c)
	}

	// Both neighbours alongside the player leave nowhere to go
	s.Traffic = append(s.Traffic,
		vehicle.NewTrafficCar(truck, 0, p.Y, cfg, half{}),
		vehicle.NewTrafficCar(truck, 2, p.Y, cfg, half{}),
	)
	if c := pilot.controls(s); !c.Brake || c.Accelerate {
		t.Errorf("Expected braking when boxed in, got %+v", c)
	}
}

func TestRunUnknownPreset(t *testing.T) {
	if _, err := run("", "does-not-exist.json", "ice", 1, 10); err == nil {
		t.Error("Expected error for a missing preset")
	}
}

func TestRecoverIntoConvertsPanic(t *testing.T) {
	simulateNil := func() (err error) {
		defer recoverInto(&err)
		var s *session.Session
		simulate(s, 1)
		return nil
	}

	err := simulateNil()
	if err == nil {
		t.Fatal("Expected a panic to surface as an error")
	}
	if !strings.HasPrefix(err.Error(), "panic: ") {
		t.Errorf("Expected panic prefix, got %q", err)
	}
}

func TestRecoverIntoKeepsError(t *testing.T) {
	fn := func() (err error) {
		defer recoverInto(&err)
		return config.ErrInvalidConfig
	}
	if err := fn(); err != config.ErrInvalidConfig {
		t.Errorf("Expected the original error, got %v", err)
	}
}

func TestCompareSavedSummary(t *testing.T) {
	prev := models.RunSummary{RunID: "0123456789abcdef", Score: 100, Distance: 50, Level: 2, Ticks: 600}
	path := filepath.Join(t.TempDir(), "prev.json")
	if err := prev.SaveToFile(path); err != nil {
		t.Fatal(err)
	}

	loaded, err := models.LoadFromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	cur := models.RunSummary{Score: 80, Distance: 70, Level: 2, Ticks: 900}

	want := "vs 01234567: score -20, distance +20, level +0, ticks +300"
	if got := compare(*loaded, cur); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
