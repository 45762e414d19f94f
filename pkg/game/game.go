package game

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/highway/pkg/config"
	"github.com/golangdaddy/highway/pkg/environment"
	"github.com/golangdaddy/highway/pkg/session"
	"github.com/golangdaddy/highway/pkg/telemetry"
	"github.com/golangdaddy/highway/pkg/ui"
	"github.com/golangdaddy/highway/pkg/vehicle"
)

// EventHandler receives the events of every tick, e.g. a sound manager
type EventHandler interface {
	HandleEvents(events []session.Event)
}

// Screen represents a UI screen interface
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// Options configures the desktop game
type Options struct {
	Config    config.Config
	Presets   []environment.Preset
	Preset    *environment.Preset // start directly with this preset, skipping the title
	Seed      int64               // 0 picks the preset seed or the clock
	Sound     EventHandler
	Telemetry *telemetry.Client
	SkipTitle bool
}

// Game implements the ebiten.Game interface and manages the overall game state
type Game struct {
	opts          Options
	currentScreen Screen
}

// NewGame creates a new game instance
func NewGame(opts Options) (*Game, error) {
	g := &Game{opts: opts}

	if opts.SkipTitle || opts.Preset != nil {
		if err := g.startGameplay(opts.Preset); err != nil {
			return nil, err
		}
		return g, nil
	}

	g.showTitle()
	return g, nil
}

func (g *Game) showTitle() {
	cfg := g.opts.Config
	g.currentScreen = ui.NewTitleScreen(cfg.WindowWidth, cfg.WindowHeight, g.opts.Presets, func(preset *environment.Preset) {
		if err := g.startGameplay(preset); err != nil {
			log.Printf("Failed to start session: %v", err)
		}
	})
}

// startGameplay creates a fresh session and switches to the gameplay screen
func (g *Game) startGameplay(preset *environment.Preset) error {
	seed := session.SeedFor(g.opts.Seed, preset)
	s, err := session.New(g.opts.Config, vehicle.DefaultCatalog(), session.Options{Preset: preset, Seed: seed})
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	name := ui.FreeDrive
	if preset != nil {
		name = preset.ID
	}
	log.Printf("Run %s started: %s, seed %d", s.RunID, name, seed)

	g.currentScreen = NewGameplayScreen(s, g.opts.Sound, g.opts.Telemetry)
	return nil
}

// Update handles game logic updates
func (g *Game) Update() error {
	if g.currentScreen != nil {
		return g.currentScreen.Update()
	}
	return nil
}

// Draw renders the current screen
func (g *Game) Draw(screen *ebiten.Image) {
	if g.currentScreen != nil {
		g.currentScreen.Draw(screen)
	}
}

// Layout returns the fixed logical screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.opts.Config.WindowWidth, g.opts.Config.WindowHeight
}
