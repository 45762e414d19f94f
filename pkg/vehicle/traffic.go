package vehicle

import (
	"image/color"
	"math"

	"github.com/golangdaddy/highway/pkg/config"
)

const (
	// speedBlend is the fraction of the gap to the desired speed closed each tick
	speedBlend = 0.05
	// minSlowdown is applied as soon as the player is within reaction range
	minSlowdown    = 0.3
	minSpeed       = 0.5
	wiggleAmount   = 0.25
	laneTolerance  = 0.8
	reactBehindCap = -50.0
)

// Sampler is the random source a traffic car draws its personality from
type Sampler interface {
	Float64() float64
}

// TrafficCar is a single traffic vehicle in a fixed lane
type TrafficCar struct {
	X, Y          float64
	Width, Height float64
	Color         color.RGBA
	Name          string
	Lane          int
	Points        int

	Speed       float64 // current drift relative to the road, pixels per tick
	CruiseSpeed float64 // speed the car returns to once the player is out of range

	Oscillation      float64
	OscillationSpeed float64
	ReactionTime     float64
	Slowdown         float64 // last computed slowdown factor in [0,1]

	laneWidth        float64
	reactionDistance float64
}

// NewTrafficCar builds a car of type t resting in lane at height y
func NewTrafficCar(t Type, lane int, y float64, cfg config.Config, rng Sampler) *TrafficCar {
	speed := t.BaseSpeed + (rng.Float64()-0.5)*t.SpeedVariation
	return &TrafficCar{
		X:                cfg.LaneX(lane, t.Width),
		Y:                y,
		Width:            t.Width,
		Height:           t.Height,
		Color:            t.Color,
		Name:             t.Name,
		Lane:             lane,
		Points:           t.Points,
		Speed:            speed,
		CruiseSpeed:      speed,
		Oscillation:      rng.Float64() * 2 * math.Pi,
		OscillationSpeed: 0.01 + rng.Float64()*0.02,
		ReactionTime:     0.2 + rng.Float64()*0.5,
		laneWidth:        cfg.LaneWidth(),
		reactionDistance: cfg.ReactionDistance,
	}
}

// SlowdownFor returns how strongly the car reacts to a player at (px, py).
// Zero means the player is not close ahead in the same lane.
func (tc *TrafficCar) SlowdownFor(px, py float64) float64 {
	dy := tc.Y - py
	if dy <= reactBehindCap || dy >= tc.reactionDistance {
		return 0
	}
	if math.Abs(tc.X-px) >= tc.laneWidth*laneTolerance {
		return 0
	}

	urgency := math.Max(0, (tc.reactionDistance-dy)/tc.reactionDistance)
	reaction := math.Min(1, urgency/math.Max(0.01, tc.ReactionTime))
	return minSlowdown + (1-minSlowdown)*reaction
}

// Update advances the car one tick.
// roadSpeed is the world scroll toward the viewer, (px, py) the player's position.
func (tc *TrafficCar) Update(roadSpeed, px, py float64) {
	tc.Slowdown = tc.SlowdownFor(px, py)

	desired := math.Max(minSpeed, tc.CruiseSpeed*(1-tc.Slowdown))
	tc.Speed += (desired - tc.Speed) * speedBlend
	tc.Y += tc.Speed + roadSpeed

	tc.Oscillation += tc.OscillationSpeed
	tc.X += math.Sin(tc.Oscillation) * wiggleAmount * (1 - tc.Slowdown)
}

// Bounds implements Vehicle
func (tc *TrafficCar) Bounds() Rect {
	return Rect{X: tc.X, Y: tc.Y, W: tc.Width, H: tc.Height}
}
