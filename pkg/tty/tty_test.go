package tty

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/golangdaddy/highway/pkg/config"
	"github.com/golangdaddy/highway/pkg/session"
	"github.com/golangdaddy/highway/pkg/vehicle"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	screen.SetSize(80, 30)
	t.Cleanup(screen.Fini)
	return screen
}

func newSession(t *testing.T) *session.Session {
	t.Helper()
	cfg := config.Default()
	cfg.TrafficStartDelay = 1 << 30
	s, err := session.New(cfg, vehicle.DefaultCatalog(), session.Options{Seed: 1})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func rowText(screen tcell.Screen, y int) string {
	cols, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < cols; x++ {
		ch, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(ch)
	}
	return sb.String()
}

func screenContains(screen tcell.Screen, text string) bool {
	_, rows := screen.Size()
	for y := 0; y < rows; y++ {
		if strings.Contains(rowText(screen, y), text) {
			return true
		}
	}
	return false
}

func TestInputEdgesAndHolds(t *testing.T) {
	var in Input

	in.HandleKey(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	in.HandleKey(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))

	c := in.Next()
	if !c.Left || !c.Accelerate {
		t.Fatalf("Expected left and accelerate, got %+v", c)
	}

	c = in.Next()
	if c.Left {
		t.Error("Expected lane change to fire only once")
	}
	if !c.Accelerate {
		t.Error("Expected throttle to stay held")
	}

	for i := 0; i < holdTicks; i++ {
		c = in.Next()
	}
	if c.Accelerate {
		t.Error("Expected throttle released after the hold window")
	}

	in.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone))
	in.HandleKey(tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone))
	c = in.Next()
	if c.Accelerate || !c.Brake {
		t.Errorf("Expected brake to replace accelerate, got %+v", c)
	}
}

func TestInputKeys(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		quit bool
		want session.Controls
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), false, session.Controls{Left: true}},
		{tcell.NewEventKey(tcell.KeyRune, 'D', tcell.ModNone), false, session.Controls{Right: true}},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), false, session.Controls{TogglePause: true}},
		{tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), false, session.Controls{Restart: true}},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), true, session.Controls{}},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), true, session.Controls{}},
	}

	for _, tt := range tests {
		var in Input
		if quit := in.HandleKey(tt.ev); quit != tt.quit {
			t.Errorf("Key %v: expected quit %v, got %v", tt.ev.Name(), tt.quit, quit)
		}
		if got := in.Next(); got != tt.want {
			t.Errorf("Key %v: expected %+v, got %+v", tt.ev.Name(), tt.want, got)
		}
	}
}

func TestDrawHUDAndPlayer(t *testing.T) {
	screen := newScreen(t)
	s := newSession(t)

	NewRenderer(screen).Draw(s)

	if hud := rowText(screen, 0); !strings.Contains(hud, "Score 0") || !strings.Contains(hud, "Level 1") {
		t.Errorf("Unexpected HUD %q", hud)
	}

	// Player sits in the middle third near the bottom
	cfg := s.Config()
	px := int((s.Player.X + s.Player.Width/2) * 80 / float64(cfg.WindowWidth))
	py := int((s.Player.Y+s.Player.Height/2)*29/float64(cfg.WindowHeight)) + 1
	if ch, _, _, _ := screen.GetContent(px, py); ch != '█' {
		t.Errorf("Expected player block at (%d,%d), got %q", px, py, ch)
	}
}

func TestDrawOverlays(t *testing.T) {
	screen := newScreen(t)
	s := newSession(t)
	app := &App{Screen: screen, Session: s}

	app.HandleKey(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	app.Step(60)
	if !screenContains(screen, "PAUSED") {
		t.Error("Expected pause overlay")
	}

	app.HandleKey(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	app.Step(60)
	if screenContains(screen, "PAUSED") {
		t.Error("Expected pause overlay gone after resume")
	}

	truck := vehicle.DefaultCatalog()[4]
	s.Traffic = append(s.Traffic, vehicle.NewTrafficCar(truck, s.Player.CurrentLane, s.Player.Y, s.Config(), fixed(0.5)))
	events := app.Step(60)
	if len(events) == 0 || s.Status != session.GameOver {
		t.Fatalf("Expected crash, status %s", s.Status)
	}
	if !screenContains(screen, "GAME OVER") || !screenContains(screen, "R to restart") {
		t.Error("Expected game over summary")
	}
}

type fixed float64

func (f fixed) Float64() float64 { return float64(f) }

type recorder struct{ events []session.Event }

func (r *recorder) HandleEvents(events []session.Event) { r.events = append(r.events, events...) }

func TestStepForwardsEvents(t *testing.T) {
	screen := newScreen(t)
	rec := &recorder{}
	app := &App{Screen: screen, Session: newSession(t), Sound: rec}

	app.HandleKey(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	app.Step(60)
	if len(rec.events) != 1 || rec.events[0].Kind != session.EventLaneChange {
		t.Errorf("Expected one lane change event, got %v", rec.events)
	}
}
