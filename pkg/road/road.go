package road

import "github.com/golangdaddy/highway/pkg/config"

const (
	markingCount   = 20
	markingSpacing = 40.0
	markingLength  = 20.0
)

// Sampler supplies the jitter for markings wrapping back above the screen
type Sampler interface {
	Intn(n int) int
}

// Road holds the scroll state of the lane dividers
type Road struct {
	Offset   float64   // total distance scrolled
	Markings []float64 // y of each dash, shared by every divider
	height   float64
	lanes    int
	laneW    float64
	rng      Sampler
}

// NewRoad lays out the dashes from above the screen downward
func NewRoad(cfg config.Config, rng Sampler) *Road {
	r := &Road{
		Markings: make([]float64, markingCount),
		height:   float64(cfg.WindowHeight),
		lanes:    cfg.Lanes,
		laneW:    cfg.LaneWidth(),
		rng:      rng,
	}
	for i := range r.Markings {
		r.Markings[i] = float64(i)*markingSpacing - 400
	}
	return r
}

// Update scrolls the dashes by speed; dashes leaving the bottom reappear above the top
func (r *Road) Update(speed float64) {
	r.Offset += speed
	for i := range r.Markings {
		r.Markings[i] += speed
		if r.Markings[i] > r.height {
			r.Markings[i] = -markingLength - float64(r.rng.Intn(40))
		}
	}
}

// DividerX returns the x of the divider between lane i-1 and lane i, for i in [1, lanes)
func (r *Road) DividerX(i int) float64 {
	return float64(i) * r.laneW
}

// Dividers is the number of dashed lines drawn between lanes
func (r *Road) Dividers() int {
	return r.lanes - 1
}

// DashLength is the height of a single dash
func (r *Road) DashLength() float64 {
	return markingLength
}
