package vehicle

import "image/color"

// Type is an immutable traffic archetype
type Type struct {
	Name           string
	Color          color.RGBA
	Width, Height  float64
	BaseSpeed      float64 // pixels per tick relative to the road
	SpeedVariation float64
	Points         int
	SpawnWeight    float64
}

// DefaultCatalog returns the stock traffic mix
func DefaultCatalog() []Type {
	return []Type{
		{Name: "Compact", Color: color.RGBA{68, 68, 255, 255}, Width: 50, Height: 80, BaseSpeed: 3.0, SpeedVariation: 1.0, Points: 10, SpawnWeight: 30},
		{Name: "Sedan", Color: color.RGBA{68, 255, 68, 255}, Width: 55, Height: 90, BaseSpeed: 4.0, SpeedVariation: 1.0, Points: 15, SpawnWeight: 25},
		{Name: "SUV", Color: color.RGBA{255, 68, 255, 255}, Width: 60, Height: 100, BaseSpeed: 2.0, SpeedVariation: 0.5, Points: 20, SpawnWeight: 20},
		{Name: "Sports", Color: color.RGBA{255, 255, 68, 255}, Width: 45, Height: 70, BaseSpeed: 5.0, SpeedVariation: 2.0, Points: 8, SpawnWeight: 15},
		{Name: "Truck", Color: color.RGBA{68, 255, 255, 255}, Width: 65, Height: 120, BaseSpeed: 2.5, SpeedVariation: 0.3, Points: 25, SpawnWeight: 10},
	}
}
