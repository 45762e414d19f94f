package tty

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/golangdaddy/highway/pkg/pickup"
	"github.com/golangdaddy/highway/pkg/session"
	"github.com/golangdaddy/highway/pkg/vehicle"
)

var (
	styleRoad    = tcell.StyleDefault.Background(tcell.NewRGBColor(51, 51, 51))
	styleDivider = styleRoad.Foreground(tcell.ColorWhite)
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	styleBanner  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlack).Bold(true)
)

// Renderer draws a session onto a terminal screen, scaling the world to the cell grid
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer creates a renderer for screen
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw renders one frame and shows it
func (r *Renderer) Draw(s *session.Session) {
	r.screen.Clear()
	cols, rows := r.screen.Size()
	if cols <= 0 || rows <= 1 {
		r.screen.Show()
		return
	}

	cfg := s.Config()
	sx := float64(cols) / float64(cfg.WindowWidth)
	// first row is the HUD
	sy := float64(rows-1) / float64(cfg.WindowHeight)
	cell := func(x, y float64) (int, int) {
		return int(x * sx), int(y*sy) + 1
	}

	for y := 1; y < rows; y++ {
		for x := 0; x < cols; x++ {
			r.screen.SetContent(x, y, ' ', nil, styleRoad)
		}
	}

	for i := 1; i <= s.Road.Dividers(); i++ {
		for _, my := range s.Road.Markings {
			x, y0 := cell(s.Road.DividerX(i), my)
			_, y1 := cell(s.Road.DividerX(i), my+s.Road.DashLength())
			for y := max(y0, 1); y <= y1 && y < rows; y++ {
				r.screen.SetContent(x, y, '┊', nil, styleDivider)
			}
		}
	}

	if s.Pickups != nil {
		for _, it := range s.Pickups.Items {
			ch, fg := 'o', tcell.NewRGBColor(34, 34, 34)
			if it.Kind == pickup.Nitro {
				ch, fg = 'N', tcell.NewRGBColor(255, 136, 0)
			}
			r.fill(it.Bounds(), cell, ch, styleRoad.Foreground(fg))
		}
	}

	for _, tc := range s.Traffic {
		r.fill(tc.Bounds(), cell, '█', styleRoad.Foreground(rgb(tc.Color)))
	}
	r.fill(s.Player.Bounds(), cell, '█', styleRoad.Foreground(rgb(s.Player.Color)))

	for _, p := range s.Particles.P {
		x, y := cell(p.X, p.Y)
		if x >= 0 && x < cols && y >= 1 && y < rows {
			r.screen.SetContent(x, y, '*', nil, styleRoad.Foreground(rgb(p.Color)))
		}
	}

	r.drawHUD(s, cols)

	switch s.Status {
	case session.Paused:
		r.banner(rows/2, cols, "PAUSED", "SPACE to resume")
	case session.GameOver:
		sum := s.Summary()
		r.banner(rows/2-1, cols, "GAME OVER",
			fmt.Sprintf("Score %d  Distance %dm", sum.Score, sum.Distance),
			fmt.Sprintf("Max speed %d km/h  Level %d", sum.MaxSpeedKMH, sum.Level),
			"R to restart  ESC to quit")
	}

	r.screen.Show()
}

func (r *Renderer) fill(b vehicle.Rect, cell func(x, y float64) (int, int), ch rune, style tcell.Style) {
	cols, rows := r.screen.Size()
	x0, y0 := cell(b.X, b.Y)
	x1, y1 := cell(b.X+b.W, b.Y+b.H)
	if x1 == x0 {
		x1++
	}
	if y1 == y0 {
		y1++
	}
	for y := max(y0, 1); y < y1 && y < rows; y++ {
		for x := max(x0, 0); x < x1 && x < cols; x++ {
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

func (r *Renderer) drawHUD(s *session.Session, cols int) {
	hud := fmt.Sprintf(" Score %d  Speed %d km/h  Distance %dm  Level %d", int(s.Score), s.SpeedKMH(), int(s.Distance), s.Level)
	if s.Pickups != nil && s.Pickups.Boosting() {
		hud += "  NITRO"
	}
	r.text(0, 0, cols, hud, styleHUD)
}

func (r *Renderer) banner(row, cols int, lines ...string) {
	for i, line := range lines {
		x := (cols - len([]rune(line))) / 2
		style := styleHUD
		if i == 0 {
			style = styleBanner
		}
		r.text(max(x, 0), row+i, cols, line, style)
	}
}

func (r *Renderer) text(x, y, cols int, s string, style tcell.Style) {
	for _, ch := range s {
		if x >= cols {
			return
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
