package traffic

import (
	"github.com/golangdaddy/highway/pkg/config"
	"github.com/golangdaddy/highway/pkg/vehicle"
)

// emptyLaneGap stands in for an infinite gap when a lane has no traffic
const emptyLaneGap = 1e6

// Timer accumulates spawn pressure and fires once it reaches 1
type Timer struct {
	Value float64
	Rate  float64
}

// Tick adds one tick of pressure and reports whether a spawn is due
func (t *Timer) Tick() bool {
	t.Value += t.Rate
	if t.Value >= 1.0 {
		t.Value = 0
		return true
	}
	return false
}

// SpawnRate returns the per-tick spawn pressure for a level, clamped to the configured band
func SpawnRate(cfg config.Config, level int) float64 {
	rate := cfg.BaseSpawnRate + float64(level)*cfg.SpawnRateIncrease
	if rate < cfg.BaseSpawnRate {
		return cfg.BaseSpawnRate
	}
	if rate > cfg.MaxSpawnRate {
		return cfg.MaxSpawnRate
	}
	return rate
}

// Spawner decides where new traffic appears
type Spawner struct {
	cfg config.Config
	gen *Generator
}

// NewSpawner creates a spawner drawing types from gen
func NewSpawner(cfg config.Config, gen *Generator) *Spawner {
	return &Spawner{cfg: cfg, gen: gen}
}

// CandidateLanes lists every lane except the player's
func (s *Spawner) CandidateLanes(playerLane int) []int {
	lanes := make([]int, 0, s.cfg.Lanes)
	for i := 0; i < s.cfg.Lanes; i++ {
		if i != playerLane {
			lanes = append(lanes, i)
		}
	}
	return lanes
}

// Blocked reports whether any car in lane sits inside the safety window around playerY
func (s *Spawner) Blocked(cars []*vehicle.TrafficCar, lane int, playerY float64) bool {
	for _, tc := range cars {
		if tc.Lane == lane && tc.Y > playerY-s.cfg.SafeAhead && tc.Y < playerY+s.cfg.SafeBehind {
			return true
		}
	}
	return false
}

// Gap is the distance from the player to the topmost car in lane
func (s *Spawner) Gap(cars []*vehicle.TrafficCar, lane int, playerY float64) float64 {
	found := false
	nearest := 0.0
	for _, tc := range cars {
		if tc.Lane != lane {
			continue
		}
		if !found || tc.Y < nearest {
			nearest = tc.Y
			found = true
		}
	}
	if !found {
		return emptyLaneGap
	}
	return nearest - playerY
}

// ChooseLane picks the lane for the next spawn.
// The first unblocked candidate wins; if every candidate is blocked the one with the
// largest gap wins, ties going to the lowest index.
func (s *Spawner) ChooseLane(cars []*vehicle.TrafficCar, playerLane int, playerY float64) (int, bool) {
	candidates := s.CandidateLanes(playerLane)
	if len(candidates) == 0 {
		return -1, false
	}

	for _, lane := range candidates {
		if !s.Blocked(cars, lane, playerY) {
			return lane, true
		}
	}

	best := -1
	bestGap := 0.0
	for _, lane := range candidates {
		gap := s.Gap(cars, lane, playerY)
		if best == -1 || gap > bestGap {
			best, bestGap = lane, gap
		}
	}
	return best, true
}

// Overlaps reports whether candidate lands on top of an existing car
func (s *Spawner) Overlaps(cars []*vehicle.TrafficCar, candidate *vehicle.TrafficCar) bool {
	for _, other := range cars {
		if abs(other.X-candidate.X) < s.cfg.SpawnOverlapX && abs(other.Y-candidate.Y) < s.cfg.SpawnOverlapY {
			return true
		}
	}
	return false
}

// Spawn attempts to create one car above the visible area.
// Attempts that would stack on an existing car are dropped, not retried.
func (s *Spawner) Spawn(cars []*vehicle.TrafficCar, playerLane int, playerY float64) (*vehicle.TrafficCar, bool) {
	lane, ok := s.ChooseLane(cars, playerLane, playerY)
	if !ok {
		return nil, false
	}

	t := s.gen.Pick()
	y := -t.Height - s.gen.Float(0, 200)
	tc := vehicle.NewTrafficCar(t, lane, y, s.cfg, s.gen)

	if s.Overlaps(cars, tc) {
		return nil, false
	}
	return tc, true
}

// Seed places one car ahead in every lane except the player's
func (s *Spawner) Seed(playerLane int) []*vehicle.TrafficCar {
	var cars []*vehicle.TrafficCar
	for _, lane := range s.CandidateLanes(playerLane) {
		t := s.gen.Pick()
		y := -t.Height - s.gen.Float(50, 400) - float64(lane)*80
		cars = append(cars, vehicle.NewTrafficCar(t, lane, y, s.cfg, s.gen))
	}
	return cars
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
