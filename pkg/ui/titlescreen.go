package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/golangdaddy/highway/pkg/background"
	"github.com/golangdaddy/highway/pkg/environment"
)

// TitleScreen lets the player pick an environment and start driving
type TitleScreen struct {
	startTime time.Time
	menu      *Menu
	backdrop  *ebiten.Image
	shade     *ebiten.Image
	face      text.Face
	onStart   func(preset *environment.Preset) // nil preset means free drive
}

// NewTitleScreen creates a title screen listing presets after "Free drive"
func NewTitleScreen(width, height int, presets []environment.Preset, onStart func(preset *environment.Preset)) *TitleScreen {
	scenery := background.NewGenerator(width, height).Scenery(time.Now().UnixNano(), background.ThemeFor("forest"))
	shade := ebiten.NewImage(width, height)
	shade.Fill(color.RGBA{15, 20, 35, 190})
	return &TitleScreen{
		startTime: time.Now(),
		menu:      NewMenu(presets),
		backdrop:  ebiten.NewImageFromImage(scenery),
		shade:     shade,
		face:      text.NewGoXFace(bitmapfont.Face),
		onStart:   onStart,
	}
}

// Update handles menu navigation and start
func (ts *TitleScreen) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp), inpututil.IsKeyJustPressed(ebiten.KeyW):
		ts.menu.Move(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown), inpututil.IsKeyJustPressed(ebiten.KeyS):
		ts.menu.Move(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		if ts.onStart != nil {
			ts.onStart(ts.menu.Selected())
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	}
	return nil
}

// Draw renders the title screen
func (ts *TitleScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.DrawImage(ts.backdrop, nil)

	screen.DrawImage(ts.shade, nil)

	elapsed := time.Since(ts.startTime).Seconds()
	centerX := float64(width) / 2

	// Pulsing title (scale 7.2 to 8.8)
	title := "HIGHWAY"
	titleScale := 8.0 * (1.0 + 0.1*math.Sin(elapsed*2.0))
	brightness := math.Min(1, 1.0+0.2*math.Sin(elapsed*1.5))
	ts.drawCentered(screen, title, centerX, float64(height)/5, titleScale, color.RGBA{
		uint8(255 * brightness),
		uint8(200 * brightness),
		uint8(50 * brightness),
		255,
	})
	ts.drawCentered(screen, "Three-lane arcade racing", centerX, float64(height)/5+90, 2, color.RGBA{180, 180, 200, 255})

	y := float64(height) / 2
	for i, label := range ts.menu.Labels() {
		c := color.RGBA{150, 150, 170, 255}
		if i == ts.menu.Index() {
			c = color.RGBA{255, 255, 255, 255}
			label = "> " + label + " <"
		}
		ts.drawCentered(screen, label, centerX, y, 2, c)
		y += 32
	}

	if int(elapsed*2)%2 == 0 {
		ts.drawCentered(screen, "Press ENTER or SPACE to Start", centerX, float64(height)-60, 1.5, color.RGBA{150, 200, 255, 255})
	}
}

func (ts *TitleScreen) drawCentered(screen *ebiten.Image, s string, cx, y, scale float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx-text.Advance(s, ts.face)*scale/2, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, ts.face, op)
}
