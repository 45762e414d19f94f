package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrInvalidConfig is returned by Validate when a tunable is out of range
var ErrInvalidConfig = errors.New("invalid config")

// Config holds every tunable of the simulation.
// All speeds and rates are per tick; the values are tuned for TickRate ticks per second.
type Config struct {
	WindowWidth  int `json:"window_width"`
	WindowHeight int `json:"window_height"`
	Lanes        int `json:"lanes"`
	TickRate     int `json:"tick_rate"`

	// Player
	BaseRoadSpeed      float64 `json:"base_road_speed"`
	PlayerMaxSpeed     float64 `json:"player_max_speed"`
	PlayerAcceleration float64 `json:"player_acceleration"`
	PlayerDeceleration float64 `json:"player_deceleration"`
	LaneChangeSpeed    float64 `json:"lane_change_speed"`
	PlayerWidth        float64 `json:"player_width"`
	PlayerHeight       float64 `json:"player_height"`
	PlayerStartLane    int     `json:"player_start_lane"`
	PlayerBottomOffset float64 `json:"player_bottom_offset"`

	// Traffic
	BaseSpawnRate     float64 `json:"base_spawn_rate"`
	MaxSpawnRate      float64 `json:"max_spawn_rate"`
	SpawnRateIncrease float64 `json:"spawn_rate_increase"`
	SafeAhead         float64 `json:"safe_ahead"`
	SafeBehind        float64 `json:"safe_behind"`
	SpawnOverlapX     float64 `json:"spawn_overlap_x"`
	SpawnOverlapY     float64 `json:"spawn_overlap_y"`
	ReactionDistance  float64 `json:"reaction_distance"`
	CullMargin        float64 `json:"cull_margin"`
	InitialTraffic    bool    `json:"initial_traffic"`
	TrafficStartDelay int     `json:"traffic_start_delay"`

	// Scoring
	DistancePerLevel float64 `json:"distance_per_level"`

	// Pickups (only used when an environment preset is active)
	PickupInterval int `json:"pickup_interval"`
	NitroDuration  int `json:"nitro_duration"`
}

// Default returns the stock three-lane configuration
func Default() Config {
	return Config{
		WindowWidth:  800,
		WindowHeight: 600,
		Lanes:        3,
		TickRate:     60,

		BaseRoadSpeed:      8.0,
		PlayerMaxSpeed:     16.0,
		PlayerAcceleration: 0.45,
		PlayerDeceleration: 0.3,
		LaneChangeSpeed:    12.0,
		PlayerWidth:        50,
		PlayerHeight:       80,
		PlayerStartLane:    1,
		PlayerBottomOffset: 120,

		BaseSpawnRate:     0.02,
		MaxSpawnRate:      0.08,
		SpawnRateIncrease: 0.005,
		SafeAhead:         220,
		SafeBehind:        50,
		SpawnOverlapX:     80,
		SpawnOverlapY:     150,
		ReactionDistance:  220,
		CullMargin:        50,

		DistancePerLevel: 1000,

		PickupInterval: 150,
		NitroDuration:  120,
	}
}

// LaneWidth is the horizontal extent of a single lane
func (c Config) LaneWidth() float64 {
	return float64(c.WindowWidth) / float64(c.Lanes)
}

// LaneX returns the left edge x that centers an object of the given width in lane
func (c Config) LaneX(lane int, width float64) float64 {
	lw := c.LaneWidth()
	return lw*float64(lane) + lw/2 - width/2
}

// StartLane returns the player's start lane clamped to the lane range
func (c Config) StartLane() int {
	lane := c.PlayerStartLane
	if lane >= c.Lanes {
		lane = c.Lanes - 1
	}
	if lane < 0 {
		lane = 0
	}
	return lane
}

// Validate checks the configuration for values the simulation cannot run with
func (c Config) Validate() error {
	switch {
	case c.WindowWidth <= 0 || c.WindowHeight <= 0:
		return fmt.Errorf("%w: window must be positive, got %dx%d", ErrInvalidConfig, c.WindowWidth, c.WindowHeight)
	case c.Lanes < 1:
		return fmt.Errorf("%w: need at least one lane, got %d", ErrInvalidConfig, c.Lanes)
	case c.TickRate <= 0:
		return fmt.Errorf("%w: tick rate must be positive, got %d", ErrInvalidConfig, c.TickRate)
	case c.LaneChangeSpeed <= 0:
		return fmt.Errorf("%w: lane change speed must be positive", ErrInvalidConfig)
	case c.PlayerMaxSpeed < 0:
		return fmt.Errorf("%w: player max speed must not be negative", ErrInvalidConfig)
	case c.BaseSpawnRate < 0 || c.MaxSpawnRate < c.BaseSpawnRate:
		return fmt.Errorf("%w: spawn rate band [%g, %g] is invalid", ErrInvalidConfig, c.BaseSpawnRate, c.MaxSpawnRate)
	case c.DistancePerLevel <= 0:
		return fmt.Errorf("%w: distance per level must be positive", ErrInvalidConfig)
	}
	return nil
}

// Load reads a JSON file and overlays it on the defaults.
// Fields missing from the file keep their default values.
func Load(filename string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", filename, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}
