package session

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/golangdaddy/highway/pkg/config"
	"github.com/golangdaddy/highway/pkg/environment"
	"github.com/golangdaddy/highway/pkg/models"
	"github.com/golangdaddy/highway/pkg/particles"
	"github.com/golangdaddy/highway/pkg/pickup"
	"github.com/golangdaddy/highway/pkg/road"
	"github.com/golangdaddy/highway/pkg/traffic"
	"github.com/golangdaddy/highway/pkg/vehicle"
)

const (
	explosionCount = 50
	roadSpeedShare = 0.5
	distanceScale  = 0.1
	scorePerSpeed  = 0.5
	// KMHPerSpeed converts pixels per tick into the displayed km/h
	KMHPerSpeed = 10
)

// Options selects the environment and seed of a session
type Options struct {
	Preset *environment.Preset // nil for free drive
	Seed   int64
}

// SeedFor picks the session seed: an explicit seed wins, then the preset's, then the clock
func SeedFor(explicit int64, preset *environment.Preset) int64 {
	if explicit != 0 {
		return explicit
	}
	if preset != nil && preset.Seed != 0 {
		return preset.Seed
	}
	return time.Now().UnixNano()
}

// Session owns the whole simulation state of one driving run.
// Frontends read the exported fields and only change them through Tick.
type Session struct {
	Status Status
	RunID  uuid.UUID

	Player    *vehicle.Car
	Traffic   []*vehicle.TrafficCar
	Particles *particles.System
	Road      *road.Road
	Pickups   *pickup.Manager // nil without a preset

	Score     float64
	Distance  float64
	Level     int
	MaxSpeed  float64 // highest speed reached this run
	RoadSpeed float64
	Ticks     int

	CarsPassed int
	Collected  int
	Controls   Controls // input of the last tick

	cfg        config.Config
	preset     *environment.Preset
	seed       int64
	rng        *rand.Rand
	spawner    *traffic.Spawner
	spawnTimer traffic.Timer
	friction   float64
	accelScale float64
	startedAt  time.Time
	endedAt    time.Time
}

// New creates a session in the Playing state
func New(cfg config.Config, catalog []vehicle.Type, opts Options) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	gen, err := traffic.NewGenerator(catalog, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to create traffic generator: %w", err)
	}

	s := &Session{
		cfg:        cfg,
		preset:     opts.Preset,
		seed:       opts.Seed,
		rng:        rng,
		spawner:    traffic.NewSpawner(cfg, gen),
		friction:   environment.DefaultFriction,
		accelScale: environment.DefaultSpeedMultiplier,
		Particles:  particles.NewSystem(0, rng),
	}
	if p := opts.Preset; p != nil {
		s.friction = p.Friction
		s.accelScale = p.SpeedMultiplier
		s.Pickups = pickup.NewManager(cfg, p.ObstacleDensity, p.PowerupDensity, rng)
	}

	s.Reset()
	return s, nil
}

// Config returns the configuration the session runs with
func (s *Session) Config() config.Config {
	return s.cfg
}

// Preset returns the active environment, nil for free drive
func (s *Session) Preset() *environment.Preset {
	return s.preset
}

// Reset starts a fresh run
func (s *Session) Reset() {
	s.Status = Playing
	s.RunID = uuid.New()

	s.Player = vehicle.NewCar(s.cfg)
	s.Road = road.NewRoad(s.cfg, s.rng)
	s.Particles.Clear()
	if s.Pickups != nil {
		s.Pickups.Reset()
	}

	clear(s.Traffic)
	s.Traffic = s.Traffic[:0]
	if s.cfg.InitialTraffic {
		s.Traffic = append(s.Traffic, s.spawner.Seed(s.Player.CurrentLane)...)
	}

	s.Score = 0
	s.Distance = 0
	s.Level = 1
	s.MaxSpeed = 0
	s.RoadSpeed = s.cfg.BaseRoadSpeed
	s.Ticks = 0
	s.CarsPassed = 0
	s.Collected = 0
	s.Controls = Controls{}
	s.spawnTimer = traffic.Timer{Rate: traffic.SpawnRate(s.cfg, s.Level)}
	s.startedAt = time.Now()
	s.endedAt = time.Time{}
}

// Tick advances the session by one fixed step and reports what happened
func (s *Session) Tick(in Controls) []Event {
	s.Controls = in
	var events []Event

	if in.TogglePause {
		switch s.Status {
		case Playing:
			s.Status = Paused
			events = append(events, Event{Kind: EventPause})
		case Paused:
			s.Status = Playing
			events = append(events, Event{Kind: EventResume})
		}
	}

	switch s.Status {
	case Paused:
		return events
	case GameOver:
		if in.Restart {
			s.Reset()
			return append(events, Event{Kind: EventRestart})
		}
		s.Particles.Update()
		return events
	}

	s.Ticks++
	events = s.steer(in, events)

	s.RoadSpeed = s.cfg.BaseRoadSpeed + s.Player.Speed*roadSpeedShare
	s.spawnTimer.Rate = traffic.SpawnRate(s.cfg, s.Level)

	s.Distance += (s.RoadSpeed + s.Player.Speed) * distanceScale
	s.Score += s.Player.Speed * scorePerSpeed
	if level := int(s.Distance/s.cfg.DistancePerLevel) + 1; level > s.Level {
		s.Level = level
		s.Particles.AddLevelUp(float64(s.cfg.WindowWidth)/2, float64(s.cfg.WindowHeight)/2)
		events = append(events, Event{Kind: EventLevelUp, Level: level})
	}

	if s.spawnTimer.Tick() && s.Ticks > s.cfg.TrafficStartDelay {
		if tc, ok := s.spawner.Spawn(s.Traffic, s.Player.CurrentLane, s.Player.Y); ok {
			s.Traffic = append(s.Traffic, tc)
		}
	}

	var res traffic.Result
	s.Traffic, res = traffic.Advance(s.Traffic, s.RoadSpeed, s.Player, float64(s.cfg.WindowHeight)+s.cfg.CullMargin)
	s.Score += float64(res.Points)
	s.CarsPassed += res.Passed
	if res.Crashed != nil {
		events = append(events, s.crash(res.Crashed))
	}

	s.Road.Update(s.RoadSpeed)

	if s.Pickups != nil && s.Status == Playing {
		for _, it := range s.Pickups.Update(s.RoadSpeed, s.Player) {
			s.Collected++
			events = append(events, Event{Kind: EventPickup, Item: it.Kind})
		}
	}

	s.Particles.Update()
	return events
}

// steer applies lane and throttle input and moves the player
func (s *Session) steer(in Controls, events []Event) []Event {
	if in.Left && s.Player.ChangeLane(-1) {
		events = append(events, Event{Kind: EventLaneChange})
	}
	if in.Right && s.Player.ChangeLane(1) {
		events = append(events, Event{Kind: EventLaneChange})
	}

	throttle := vehicle.ThrottleCoast
	switch {
	case in.Accelerate:
		throttle = vehicle.ThrottleAccelerate
	case in.Brake:
		throttle = vehicle.ThrottleBrake
	}
	s.Player.ApplyThrottle(throttle, s.accelScale, s.friction)
	s.MaxSpeed = max(s.MaxSpeed, s.Player.Speed)

	s.Player.Update()
	return events
}

func (s *Session) crash(tc *vehicle.TrafficCar) Event {
	s.Status = GameOver
	s.endedAt = time.Now()

	cx, cy := s.Player.Bounds().Center()
	s.Particles.AddExplosion(cx, cy, explosionCount)

	log.Printf("Run %s ended: hit %s at level %d, score %d", s.RunID, tc.Name, s.Level, int(s.Score))
	return Event{Kind: EventCrash, Label: tc.Name}
}

// SpeedKMH is the player's displayed speed
func (s *Session) SpeedKMH() int {
	return int(s.Player.Speed * KMHPerSpeed)
}

// Summary describes the run so far
func (s *Session) Summary() models.RunSummary {
	ended := s.endedAt
	if ended.IsZero() {
		ended = time.Now()
	}
	rs := models.RunSummary{
		RunID:       s.RunID.String(),
		Seed:        s.seed,
		Score:       int(s.Score),
		Distance:    int(s.Distance),
		Level:       s.Level,
		MaxSpeedKMH: int(s.MaxSpeed * KMHPerSpeed),
		CarsPassed:  s.CarsPassed,
		Pickups:     s.Collected,
		Ticks:       s.Ticks,
		Crashed:     s.Status == GameOver,
		StartedAt:   s.startedAt,
		EndedAt:     ended,
	}
	if s.preset != nil {
		rs.Environment = s.preset.ID
	}
	return rs
}
