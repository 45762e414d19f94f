package game

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/golangdaddy/highway/pkg/background"
	"github.com/golangdaddy/highway/pkg/pickup"
	"github.com/golangdaddy/highway/pkg/session"
	"github.com/golangdaddy/highway/pkg/telemetry"
	"github.com/golangdaddy/highway/pkg/vehicle"
)

// speedLineThreshold is the player speed above which streaks are drawn
const speedLineThreshold = 8.0

var (
	colorDivider = color.RGBA{255, 255, 255, 255}
	colorPothole = color.RGBA{34, 34, 34, 255}
	colorNitro   = color.RGBA{255, 136, 0, 255}
	colorOverlay = color.RGBA{0, 0, 0, 170}
	colorHUD     = color.RGBA{255, 255, 255, 255}
	colorBanner  = color.RGBA{255, 200, 50, 255}
)

// GameplayScreen drives one session and draws it
type GameplayScreen struct {
	session   *session.Session
	sound     EventHandler
	telemetry *telemetry.Client
	surface   *ebiten.Image
	face      text.Face
	sprites   spriteCache
}

// NewGameplayScreen wraps a session for the desktop window
func NewGameplayScreen(s *session.Session, sound EventHandler, tc *telemetry.Client) *GameplayScreen {
	cfg := s.Config()
	theme := background.ThemeFor("")
	if p := s.Preset(); p != nil {
		theme = background.ThemeFor(p.Visual.BgType)
	}
	gen := background.NewGenerator(cfg.WindowWidth, cfg.WindowHeight)

	return &GameplayScreen{
		session:   s,
		sound:     sound,
		telemetry: tc,
		surface:   ebiten.NewImageFromImage(gen.Surface(1, theme)),
		face:      text.NewGoXFace(bitmapfont.Face),
		sprites:   spriteCache{},
	}
}

// Update runs one simulation tick; Escape ends the program
func (gs *GameplayScreen) Update() error {
	if justPressed(ebiten.KeyEscape) {
		sum := gs.session.Summary()
		log.Printf("Quit run %s at score %d", sum.RunID, sum.Score)
		return ebiten.Termination
	}

	events := gs.session.Tick(readControls())
	for _, e := range events {
		switch e.Kind {
		case session.EventCrash:
			sum := gs.session.Summary()
			log.Printf("Game over: score %d distance %dm level %d", sum.Score, sum.Distance, sum.Level)
		case session.EventLevelUp:
			log.Printf("Level %d", e.Level)
		}
	}
	if gs.sound != nil {
		gs.sound.HandleEvents(events)
	}
	if gs.telemetry != nil {
		gs.telemetry.Send(telemetry.FrameFrom(gs.session, ebiten.ActualTPS()))
	}
	return nil
}

// Draw renders road, traffic, effects and HUD
func (gs *GameplayScreen) Draw(screen *ebiten.Image) {
	s := gs.session
	gs.drawRoad(screen)

	if s.Player.Speed > speedLineThreshold && s.Status == session.Playing {
		gs.drawSpeedLines(screen)
	}

	if s.Pickups != nil {
		for _, it := range s.Pickups.Items {
			c := colorPothole
			if it.Kind == pickup.Nitro {
				c = colorNitro
			}
			fillRect(screen, it.Bounds(), c)
		}
	}

	for _, tc := range s.Traffic {
		gs.sprites.draw(screen, tc.Bounds(), tc.Color)
	}
	gs.sprites.draw(screen, s.Player.Bounds(), s.Player.Color)

	for _, p := range s.Particles.P {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Size), p.Color, true)
	}

	gs.drawHUD(screen)

	switch s.Status {
	case session.Paused:
		gs.drawBanner(screen, "PAUSED", "Press SPACE to resume")
	case session.GameOver:
		sum := s.Summary()
		gs.drawBanner(screen, "GAME OVER",
			fmt.Sprintf("Final score: %d", sum.Score),
			fmt.Sprintf("Distance: %dm", sum.Distance),
			fmt.Sprintf("Max speed: %d km/h", sum.MaxSpeedKMH),
			fmt.Sprintf("Level: %d", sum.Level),
			"Press R to restart")
	}
}

// drawRoad scrolls the asphalt with the road offset and paints the dashed dividers
func (gs *GameplayScreen) drawRoad(screen *ebiten.Image) {
	r := gs.session.Road
	h := float64(gs.surface.Bounds().Dy())
	off := math.Mod(r.Offset, h)

	for _, y := range []float64{off - h, off} {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(0, y)
		screen.DrawImage(gs.surface, op)
	}

	for i := 1; i <= r.Dividers(); i++ {
		x := float32(r.DividerX(i))
		for _, y := range r.Markings {
			vector.DrawFilledRect(screen, x-2, float32(y), 4, float32(r.DashLength()), colorDivider, false)
		}
	}
}

// drawSpeedLines draws faint streaks whose length and count grow with speed
func (gs *GameplayScreen) drawSpeedLines(screen *ebiten.Image) {
	s := gs.session
	cfg := s.Config()
	intensity := (s.Player.Speed - speedLineThreshold) / max(1, s.Player.MaxSpeed-speedLineThreshold)
	n := 6 + int(intensity*14)
	length := float32(30 + 60*intensity)
	alpha := uint8(40 + 80*intensity)
	c := color.RGBA{255, 255, 255, alpha}

	for i := 0; i < n; i++ {
		// spread evenly across the width and offset by the road scroll
		x := float32((float64(i) + 0.5) / float64(n) * float64(cfg.WindowWidth))
		y := float32(math.Mod(s.Road.Offset*1.5+float64(i)*97, float64(cfg.WindowHeight)))
		vector.StrokeLine(screen, x, y, x, y+length, 1, c, true)
	}
}

func (gs *GameplayScreen) drawHUD(screen *ebiten.Image) {
	s := gs.session
	lines := []string{
		fmt.Sprintf("Score: %d", int(s.Score)),
		fmt.Sprintf("Speed: %d km/h", s.SpeedKMH()),
		fmt.Sprintf("Distance: %dm", int(s.Distance)),
		fmt.Sprintf("Level: %d", s.Level),
	}
	if s.Pickups != nil && s.Pickups.Boosting() {
		lines = append(lines, "NITRO")
	}

	vector.DrawFilledRect(screen, 8, 8, 170, float32(14+len(lines)*20), colorOverlay, false)
	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Scale(1.5, 1.5)
		op.GeoM.Translate(16, 14+float64(i)*20)
		op.ColorScale.ScaleWithColor(colorHUD)
		text.Draw(screen, line, gs.face, op)
	}
}

// drawBanner dims the screen and centers a title with detail lines below it
func (gs *GameplayScreen) drawBanner(screen *ebiten.Image, title string, lines ...string) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), colorOverlay, false)

	centerX := float64(w) / 2
	y := float64(h)/3 - 20

	const titleScale = 4.0
	op := &text.DrawOptions{}
	op.GeoM.Scale(titleScale, titleScale)
	op.GeoM.Translate(centerX-text.Advance(title, gs.face)*titleScale/2, y)
	op.ColorScale.ScaleWithColor(colorBanner)
	text.Draw(screen, title, gs.face, op)

	y += 90
	for _, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Scale(2, 2)
		op.GeoM.Translate(centerX-text.Advance(line, gs.face), y)
		op.ColorScale.ScaleWithColor(colorHUD)
		text.Draw(screen, line, gs.face, op)
		y += 36
	}
}

func fillRect(screen *ebiten.Image, b vehicle.Rect, c color.Color) {
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), c, false)
}
