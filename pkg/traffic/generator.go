package traffic

import (
	"errors"
	"fmt"

	"github.com/golangdaddy/highway/pkg/vehicle"
)

// ErrEmptyCatalog is returned when there is nothing to spawn
var ErrEmptyCatalog = errors.New("empty vehicle catalog")

// Generator picks vehicle types by spawn weight
type Generator struct {
	types []vehicle.Type
	total float64
	rng   vehicle.Sampler
}

// NewGenerator validates the catalog up front so Pick never has to guess
func NewGenerator(types []vehicle.Type, rng vehicle.Sampler) (*Generator, error) {
	if len(types) == 0 {
		return nil, ErrEmptyCatalog
	}

	total := 0.0
	for _, t := range types {
		if t.SpawnWeight < 0 {
			return nil, fmt.Errorf("vehicle type %q has negative spawn weight %g", t.Name, t.SpawnWeight)
		}
		total += t.SpawnWeight
	}
	if total <= 0 {
		return nil, fmt.Errorf("%w: total spawn weight is zero", ErrEmptyCatalog)
	}

	return &Generator{
		types: append([]vehicle.Type(nil), types...),
		total: total,
		rng:   rng,
	}, nil
}

// Pick returns a type with probability proportional to its spawn weight
func (g *Generator) Pick() vehicle.Type {
	draw := g.rng.Float64() * g.total
	cumulative := 0.0
	for _, t := range g.types {
		cumulative += t.SpawnWeight
		if draw <= cumulative {
			return t
		}
	}
	// Rounding can leave draw a hair above the final cumulative sum
	return g.types[0]
}

// Float returns a uniform value in [min, max)
func (g *Generator) Float(min, max float64) float64 {
	return min + g.rng.Float64()*(max-min)
}

// Int returns a uniform value in [min, max]
func (g *Generator) Int(min, max int) int {
	return min + int(g.rng.Float64()*float64(max-min+1))
}

// Float64 exposes the underlying source so cars can roll their own traits
func (g *Generator) Float64() float64 {
	return g.rng.Float64()
}

// Types returns a copy of the catalog
func (g *Generator) Types() []vehicle.Type {
	return append([]vehicle.Type(nil), g.types...)
}
