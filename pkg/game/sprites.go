package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/golangdaddy/highway/pkg/vehicle"
)

var (
	colorOutline    = color.RGBA{20, 20, 20, 255}
	colorWindshield = color.RGBA{150, 200, 255, 200}
	colorWheel      = color.RGBA{30, 30, 30, 255}
)

type spriteKey struct {
	c    color.RGBA
	w, h int
}

// spriteCache renders each car body once per color and size
type spriteCache map[spriteKey]*ebiten.Image

// carSprite draws a top-down car facing up: outlined body, windshield and four wheels
func carSprite(c color.RGBA, w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	fw, fh := float32(w), float32(h)

	wheelW, wheelH := fw*0.16, fh*0.16
	for _, wy := range []float32{fh * 0.1, fh*0.9 - wheelH} {
		vector.DrawFilledRect(img, 0, wy, wheelW, wheelH, colorWheel, false)
		vector.DrawFilledRect(img, fw-wheelW, wy, wheelW, wheelH, colorWheel, false)
	}

	inset := wheelW * 0.5
	vector.DrawFilledRect(img, inset, 0, fw-2*inset, fh, c, false)
	vector.StrokeRect(img, inset+1, 1, fw-2*inset-2, fh-2, 2, colorOutline, false)

	vector.DrawFilledRect(img, fw*0.2, fh*0.18, fw*0.6, fh*0.18, colorWindshield, false)
	vector.DrawFilledRect(img, fw*0.25, fh*0.78, fw*0.5, fh*0.1, colorWindshield, false)
	return img
}

// draw blits the sprite for b, building it on first use
func (sc spriteCache) draw(screen *ebiten.Image, b vehicle.Rect, c color.RGBA) {
	key := spriteKey{c: c, w: int(b.W), h: int(b.H)}
	img, ok := sc[key]
	if !ok {
		img = carSprite(c, key.w, key.h)
		sc[key] = img
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(b.X, b.Y)
	screen.DrawImage(img, op)
}
