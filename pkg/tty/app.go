package tty

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/golangdaddy/highway/pkg/session"
	"github.com/golangdaddy/highway/pkg/telemetry"
)

// EventHandler receives the events of every tick, e.g. a sound manager
type EventHandler interface {
	HandleEvents(events []session.Event)
}

// App runs a session in the terminal
type App struct {
	Screen    tcell.Screen
	Session   *session.Session
	Sound     EventHandler      // optional
	Telemetry *telemetry.Client // optional

	input    Input
	renderer *Renderer
}

// Run polls keys and steps the session at the configured tick rate until the player quits
func (a *App) Run() error {
	a.renderer = NewRenderer(a.Screen)
	cfg := a.Session.Config()
	interval := time.Second / time.Duration(cfg.TickRate)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := a.Screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-quit:
				return
			}
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if a.input.HandleKey(ev) {
					log.Printf("Quit at tick %d", a.Session.Ticks)
					return nil
				}
			case *tcell.EventResize:
				a.Screen.Sync()
			}

		case now := <-ticker.C:
			fps := float64(time.Second) / float64(now.Sub(last))
			last = now
			a.Step(fps)
		}
	}
}

// Step runs one tick with the buffered input and redraws
func (a *App) Step(fps float64) []session.Event {
	if a.renderer == nil {
		a.renderer = NewRenderer(a.Screen)
	}

	events := a.Session.Tick(a.input.Next())
	for _, e := range events {
		if e.Kind == session.EventCrash {
			sum := a.Session.Summary()
			log.Printf("Game over: score %d distance %dm level %d", sum.Score, sum.Distance, sum.Level)
		}
	}
	if a.Sound != nil {
		a.Sound.HandleEvents(events)
	}
	if a.Telemetry != nil {
		a.Telemetry.Send(telemetry.FrameFrom(a.Session, fps))
	}

	a.renderer.Draw(a.Session)
	return events
}

// HandleKey forwards a key to the input buffer; it reports whether to quit
func (a *App) HandleKey(ev *tcell.EventKey) bool {
	return a.input.HandleKey(ev)
}
