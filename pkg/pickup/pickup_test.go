package pickup

import (
	"math/rand"
	"testing"

	"github.com/golangdaddy/highway/pkg/config"
	"github.com/golangdaddy/highway/pkg/vehicle"
)

type fixedSampler struct {
	f float64
	n int
}

func (s fixedSampler) Float64() float64 { return s.f }
func (s fixedSampler) Intn(int) int     { return s.n }

func TestRollThresholds(t *testing.T) {
	tests := []struct {
		draw float64
		want int
		kind Kind
	}{
		{0.01, 1, Pothole},
		{0.05, 1, Nitro},
		{0.07, 0, 0},
	}

	for _, tt := range tests {
		cfg := config.Default()
		m := NewManager(cfg, 0.04, 0.02, fixedSampler{f: tt.draw})
		m.roll()
		if len(m.Items) != tt.want {
			t.Errorf("Draw %f: expected %d items, got %d", tt.draw, tt.want, len(m.Items))
			continue
		}
		if tt.want == 1 && m.Items[0].Kind != tt.kind {
			t.Errorf("Draw %f: expected %s, got %s", tt.draw, tt.kind, m.Items[0].Kind)
		}
	}
}

func TestSpawnInterval(t *testing.T) {
	cfg := config.Default()
	player := vehicle.NewCar(cfg)
	player.X = -1000 // keep clear of items

	m := NewManager(cfg, 1, 0, rand.New(rand.NewSource(1)))
	for i := 1; i < cfg.PickupInterval; i++ {
		m.Update(0, player)
	}
	if len(m.Items) != 0 {
		t.Fatalf("Expected no items before the interval, got %d", len(m.Items))
	}
	m.Update(0, player)
	if len(m.Items) != 1 {
		t.Fatalf("Expected one item on tick %d, got %d", cfg.PickupInterval, len(m.Items))
	}
	it := m.Items[0]
	if it.Y >= 0 {
		t.Errorf("Expected item above the screen, got y %f", it.Y)
	}
}

func TestItemsScrollAndCull(t *testing.T) {
	cfg := config.Default()
	player := vehicle.NewCar(cfg)
	player.X = -1000

	m := NewManager(cfg, 0, 0, fixedSampler{f: 0.5, n: 0})
	it := m.Spawn(Pothole)
	startY := it.Y

	m.Update(8, player)
	if it.Y != startY+10 {
		t.Errorf("Expected y %f, got %f", startY+10, it.Y)
	}

	it.Y = float64(cfg.WindowHeight) + 195
	m.Update(8, player)
	if len(m.Items) != 0 {
		t.Error("Expected item culled past the bottom margin")
	}
}

func TestPotholeSlowsPlayer(t *testing.T) {
	cfg := config.Default()
	player := vehicle.NewCar(cfg)
	player.Speed = 10

	m := NewManager(cfg, 0, 0, fixedSampler{f: 0.5, n: player.CurrentLane})
	it := m.Spawn(Pothole)
	it.Y = player.Y + 10

	got := m.Update(0, player)
	if len(got) != 1 || got[0] != it {
		t.Fatalf("Expected the pothole collected, got %v", got)
	}
	if player.Speed != 6 {
		t.Errorf("Expected speed 6, got %f", player.Speed)
	}
	if len(m.Items) != 0 {
		t.Error("Expected collected item removed")
	}
}

func TestNitroBoostExpires(t *testing.T) {
	cfg := config.Default()
	player := vehicle.NewCar(cfg)

	m := NewManager(cfg, 0, 0, fixedSampler{f: 0.5, n: player.CurrentLane})
	it := m.Spawn(Nitro)
	it.Y = player.Y + 10
	m.Update(0, player)

	boosted := cfg.PlayerMaxSpeed * nitroFactor
	if player.MaxSpeed != boosted || !m.Boosting() {
		t.Fatalf("Expected max speed %f while boosting, got %f", boosted, player.MaxSpeed)
	}
	player.Speed = boosted

	for i := 0; i < cfg.NitroDuration; i++ {
		m.Update(0, player)
	}
	if m.Boosting() {
		t.Error("Expected boost to have expired")
	}
	if player.MaxSpeed != cfg.PlayerMaxSpeed || player.Speed != cfg.PlayerMaxSpeed {
		t.Errorf("Expected max speed and speed back at %f, got %f and %f", cfg.PlayerMaxSpeed, player.MaxSpeed, player.Speed)
	}
}

func TestReset(t *testing.T) {
	cfg := config.Default()
	m := NewManager(cfg, 0, 0, rand.New(rand.NewSource(2)))
	m.Spawn(Nitro)
	m.boost = 10
	m.Reset()
	if len(m.Items) != 0 || m.Boosting() {
		t.Error("Expected reset to clear items and boost")
	}
}
