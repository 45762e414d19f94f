package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/highway/pkg/config"
	"github.com/golangdaddy/highway/pkg/environment"
	"github.com/golangdaddy/highway/pkg/game"
	"github.com/golangdaddy/highway/pkg/sound"
	"github.com/golangdaddy/highway/pkg/telemetry"
)

func main() {
	configPath := flag.String("config", "", "path to a JSON config overlay")
	envPath := flag.String("env", "environments.json", "path to the environment presets")
	presetID := flag.String("preset", "", "start directly with this environment preset")
	seed := flag.Int64("seed", 0, "random seed (0 uses the preset seed or the clock)")
	telemetryURL := flag.String("telemetry", "", "websocket URL for debug telemetry")
	mute := flag.Bool("mute", false, "disable sound")
	skipTitle := flag.Bool("skip-title", false, "start a free drive without the title screen")
	flag.Parse()

	if err := run(*configPath, *envPath, *presetID, *seed, *telemetryURL, *mute, *skipTitle); err != nil {
		fmt.Fprintf(os.Stderr, "highway: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, envPath, presetID string, seed int64, telemetryURL string, mute, skipTitle bool) (err error) {
	defer recoverInto(&err)

	cfg := config.Default()
	if configPath != "" {
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}

	presets := environment.LoadOrEmpty(envPath)
	opts := game.Options{
		Config:    cfg,
		Presets:   presets,
		Seed:      seed,
		SkipTitle: skipTitle,
	}
	if presetID != "" {
		p, ok := environment.Find(presets, presetID)
		if !ok {
			return fmt.Errorf("unknown environment preset %q", presetID)
		}
		opts.Preset = &p
	}

	if !mute {
		sm := sound.NewManager()
		if err := sm.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v", err)
		} else {
			defer sm.Close()
			opts.Sound = sm
		}
	}

	if telemetryURL != "" {
		tc, err := telemetry.Dial(telemetryURL)
		if err != nil {
			log.Printf("Telemetry disabled: %v", err)
		} else {
			defer tc.Close()
			opts.Telemetry = tc
		}
	}

	g, err := game.NewGame(opts)
	if err != nil {
		return err
	}

	ebiten.SetTPS(cfg.TickRate)
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle("Highway")
	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}

// recoverInto turns a panic in the calling function into its returned error
func recoverInto(err *error) {
	if r := recover(); r != nil {
		log.Printf("Recovered from %v", r)
		*err = fmt.Errorf("panic: %v", r)
	}
}
