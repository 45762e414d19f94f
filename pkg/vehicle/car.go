package vehicle

import (
	"image/color"

	"github.com/golangdaddy/highway/pkg/config"
)

// Throttle is the longitudinal input for a single tick
type Throttle int

const (
	ThrottleCoast Throttle = iota
	ThrottleAccelerate
	ThrottleBrake
)

// Car is the player's car.
// It is either idle in CurrentLane or moving toward TargetLane.
type Car struct {
	X, Y          float64
	Width, Height float64
	Color         color.RGBA

	CurrentLane    int
	TargetLane     int
	Speed          float64 // pixels per tick
	MaxSpeed       float64 // effective cap, raised temporarily by nitro
	IsChangingLane bool

	cfg config.Config
}

// NewCar places a stationary car at the start lane near the bottom of the window
func NewCar(cfg config.Config) *Car {
	lane := cfg.StartLane()
	return &Car{
		X:           cfg.LaneX(lane, cfg.PlayerWidth),
		Y:           float64(cfg.WindowHeight) - cfg.PlayerBottomOffset,
		Width:       cfg.PlayerWidth,
		Height:      cfg.PlayerHeight,
		Color:       color.RGBA{255, 68, 68, 255},
		CurrentLane: lane,
		TargetLane:  lane,
		MaxSpeed:    cfg.PlayerMaxSpeed,
		cfg:         cfg,
	}
}

// ChangeLane requests a move of one lane in direction dir (-1 left, +1 right).
// Requests that leave the road or arrive mid-change are dropped.
func (c *Car) ChangeLane(dir int) bool {
	newLane := c.CurrentLane + dir
	if c.IsChangingLane || newLane < 0 || newLane >= c.cfg.Lanes {
		return false
	}
	c.TargetLane = newLane
	c.IsChangingLane = true
	return true
}

// Update advances an in-progress lane change by one step
func (c *Car) Update() {
	if !c.IsChangingLane {
		return
	}

	targetX := c.cfg.LaneX(c.TargetLane, c.Width)
	diff := targetX - c.X
	step := c.cfg.LaneChangeSpeed

	if abs(diff) <= step {
		c.X = targetX
		c.CurrentLane = c.TargetLane
		c.IsChangingLane = false
		return
	}

	if diff > 0 {
		c.X += step
	} else {
		c.X -= step
	}
}

// ApplyThrottle integrates speed for one tick.
// accelScale multiplies acceleration and friction multiplies the coasting decay.
func (c *Car) ApplyThrottle(t Throttle, accelScale, friction float64) {
	switch t {
	case ThrottleAccelerate:
		c.Speed += c.cfg.PlayerAcceleration * accelScale
	case ThrottleBrake:
		c.Speed -= c.cfg.PlayerDeceleration * 2
	default:
		c.Speed -= c.cfg.PlayerDeceleration * 0.5 * friction
	}
	c.Speed = clamp(c.Speed, 0, c.MaxSpeed)
}

// Bounds implements Vehicle
func (c *Car) Bounds() Rect {
	return Rect{X: c.X, Y: c.Y, W: c.Width, H: c.Height}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
