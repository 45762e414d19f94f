package particles

import (
	"image/color"
	"math"
)

// MaxParticles caps the live list; bursts beyond it overwrite the oldest slots
const MaxParticles = 2048

// Sampler is the random source for bursts
type Sampler interface {
	Float64() float64
	Intn(n int) int
}

// Particle is a single cosmetic dot
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Color   color.RGBA
	Life    float64 // ticks left
	MaxLife float64
	Size    float64
}

// System is the list of live particles
type System struct {
	Max    int
	P      []Particle
	rng    Sampler
	ovrIdx int
}

// NewSystem creates an empty particle system
func NewSystem(maxParticles int, rng Sampler) *System {
	if maxParticles <= 0 {
		maxParticles = MaxParticles
	}
	return &System{
		Max: maxParticles,
		P:   make([]Particle, 0, 64),
		rng: rng,
	}
}

// Clear drops every particle
func (s *System) Clear() {
	s.P = s.P[:0]
	s.ovrIdx = 0
}

// Len is the number of live particles
func (s *System) Len() int {
	return len(s.P)
}

// Add appends p, overwriting in a ring once the cap is reached
func (s *System) Add(p Particle) {
	if len(s.P) < s.Max {
		s.P = append(s.P, p)
		return
	}
	if s.ovrIdx >= s.Max {
		s.ovrIdx = 0
	}
	s.P[s.ovrIdx] = p
	s.ovrIdx++
}

var explosionColors = []color.RGBA{
	{255, 0, 0, 255},
	{255, 255, 0, 255},
	{255, 165, 0, 255},
}

// AddExplosion bursts count fiery particles outward from (x, y)
func (s *System) AddExplosion(x, y float64, count int) {
	for i := 0; i < count; i++ {
		speedX := 5 + s.rng.Float64()*10
		speedY := 5 + s.rng.Float64()*10
		life := 60 + s.signed()*60
		if life < 1 {
			life = 1
		}
		s.Add(Particle{
			X:       x,
			Y:       y,
			VX:      s.signed() * speedX,
			VY:      s.signed() * speedY,
			Color:   explosionColors[s.rng.Intn(len(explosionColors))],
			Life:    life,
			MaxLife: life,
			Size:    2 + s.rng.Float64()*3,
		})
	}
}

// AddLevelUp scatters twenty rainbow particles around (cx, cy)
func (s *System) AddLevelUp(cx, cy float64) {
	for i := 0; i < 20; i++ {
		hue := s.rng.Float64() * 360
		s.Add(Particle{
			X:       cx + s.signed()*100,
			Y:       cy + s.signed()*100,
			VX:      s.signed() * 10,
			VY:      s.signed() * 10,
			Color:   rainbow(hue),
			Life:    120,
			MaxLife: 120,
			Size:    3,
		})
	}
}

// Update moves every particle, fades it by remaining life and drops the expired ones.
// Order of the survivors is preserved.
func (s *System) Update() {
	kept := s.P[:0]
	for _, p := range s.P {
		p.X += p.VX
		p.Y += p.VY
		p.Life--
		if p.Life <= 0 {
			continue
		}
		p.Color.A = uint8(255 * (p.Life / p.MaxLife))
		kept = append(kept, p)
	}
	s.P = kept
	if s.ovrIdx > len(s.P) {
		s.ovrIdx = 0
	}
}

// signed returns a uniform value in [-1, 1)
func (s *System) signed() float64 {
	return s.rng.Float64()*2 - 1
}

func rainbow(hue float64) color.RGBA {
	channel := func(offset float64) uint8 {
		return uint8(127 * (1 + math.Sin((hue+offset)*math.Pi/180)))
	}
	return color.RGBA{channel(0), channel(120), channel(240), 255}
}
