package background

import (
	"image"
	"image/color"
	"math"
	"math/rand"
)

// Theme is the palette of an environment's scenery
type Theme struct {
	Name       string
	Ground     color.RGBA
	Speck      color.RGBA // brightest noise shade over the ground
	Asphalt    color.RGBA
	Vegetation bool
	Rocks      bool
}

var themes = map[string]Theme{
	"forest": {Name: "forest", Ground: color.RGBA{30, 100, 30, 255}, Speck: color.RGBA{30, 140, 30, 255}, Asphalt: color.RGBA{51, 51, 51, 255}, Vegetation: true},
	"desert": {Name: "desert", Ground: color.RGBA{194, 160, 100, 255}, Speck: color.RGBA{230, 200, 140, 255}, Asphalt: color.RGBA{70, 62, 55, 255}, Rocks: true},
	"snow":   {Name: "snow", Ground: color.RGBA{225, 230, 240, 255}, Speck: color.RGBA{255, 255, 255, 255}, Asphalt: color.RGBA{60, 64, 72, 255}, Vegetation: true},
	"night":  {Name: "night", Ground: color.RGBA{15, 20, 35, 255}, Speck: color.RGBA{40, 50, 80, 255}, Asphalt: color.RGBA{25, 25, 30, 255}},
}

// ThemeFor returns the theme for an environment bgType; unknown types get the plain highway
func ThemeFor(bgType string) Theme {
	if t, ok := themes[bgType]; ok {
		return t
	}
	return Theme{Name: "highway", Ground: color.RGBA{34, 139, 34, 255}, Speck: color.RGBA{50, 160, 50, 255}, Asphalt: color.RGBA{51, 51, 51, 255}}
}

// Generator renders procedural background textures
type Generator struct {
	Width  int
	Height int
}

// NewGenerator creates a new background generator
func NewGenerator(width, height int) *Generator {
	return &Generator{
		Width:  width,
		Height: height,
	}
}

// Surface renders a speckled asphalt texture for the road
func (g *Generator) Surface(seed int64, t Theme) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	rng := rand.New(rand.NewSource(seed))
	fill(img, t.Asphalt)

	for i := 0; i < g.Width*g.Height/12; i++ {
		x := rng.Intn(g.Width)
		y := rng.Intn(g.Height)
		d := rng.Intn(24) - 12
		img.SetRGBA(x, y, shift(t.Asphalt, d))
	}
	return img
}

// Scenery renders the landscape shown behind menus
func (g *Generator) Scenery(seed int64, t Theme) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	rng := rand.New(rand.NewSource(seed))
	fill(img, t.Ground)

	for i := 0; i < g.Width*g.Height/10; i++ {
		x := rng.Intn(g.Width)
		y := rng.Intn(g.Height)
		img.SetRGBA(x, y, lerp(t.Ground, t.Speck, rng.Float64()))
	}

	if !t.Vegetation && !t.Rocks {
		return img
	}

	// top to bottom so nearer objects overlap farther ones
	for y := 0; y < g.Height; y += 10 {
		density := 0.5 + 0.3*math.Sin(float64(y)*0.01)

		for x := 0; x < g.Width; x += 5 + rng.Intn(15) {
			if rng.Float64() > density {
				continue
			}

			drawX := x + rng.Intn(10) - 5
			drawY := y + rng.Intn(10) - 5

			switch {
			case t.Rocks:
				if rng.Float64() < 0.15 {
					g.drawBlob(img, drawX, drawY, 2+rng.Intn(5), shift(t.Ground, -50))
				}
			case rng.Float64() < 0.3:
				g.drawTree(img, drawX, drawY, rng, t)
			default:
				g.drawBlob(img, drawX, drawY, 5+rng.Intn(10), lerp(t.Ground, t.Speck, 0.3+0.5*rng.Float64()))
			}
		}
	}
	return img
}

// drawTree draws a three-layer pine
func (g *Generator) drawTree(img *image.RGBA, x, y int, rng *rand.Rand, t Theme) {
	height := 40 + rng.Intn(30)
	width := 20 + rng.Intn(15)

	trunkW := 4 + rng.Intn(4)
	for ty := 0; ty < height/3; ty++ {
		for tx := -trunkW / 2; tx < trunkW/2; tx++ {
			g.set(img, x+tx, y-ty, color.RGBA{60, 40, 20, 255})
		}
	}

	leaves := color.RGBA{
		uint8(20 + rng.Intn(30)),
		uint8(80 + rng.Intn(60)),
		uint8(20 + rng.Intn(30)),
		255,
	}
	if t.Name == "snow" {
		leaves = lerp(leaves, color.RGBA{255, 255, 255, 255}, 0.4)
	}

	for l := 0; l < 3; l++ {
		layerY := y - height/3 - l*height/4
		layerW := max(width-l*5, 5)

		for ly := 0; ly < height/3; ly++ {
			rowW := layerW * (height/3 - ly) / (height / 3)
			for lx := -rowW / 2; lx < rowW/2; lx++ {
				g.set(img, x+lx, layerY-ly, leaves)
			}
		}
	}
}

// drawBlob draws a filled circle, a bush or a rock
func (g *Generator) drawBlob(img *image.RGBA, x, y, radius int, c color.RGBA) {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				g.set(img, x+dx, y+dy, c)
			}
		}
	}
}

func (g *Generator) set(img *image.RGBA, x, y int, c color.RGBA) {
	if x >= 0 && x < g.Width && y >= 0 && y < g.Height {
		img.SetRGBA(x, y, c)
	}
}

func fill(img *image.RGBA, c color.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func lerp(a, b color.RGBA, f float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*f)
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), 255}
}

func shift(c color.RGBA, d int) color.RGBA {
	ch := func(v uint8) uint8 {
		return uint8(min(255, max(0, int(v)+d)))
	}
	return color.RGBA{ch(c.R), ch(c.G), ch(c.B), 255}
}
