package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/golangdaddy/highway/pkg/config"
	"github.com/golangdaddy/highway/pkg/environment"
	"github.com/golangdaddy/highway/pkg/session"
	"github.com/golangdaddy/highway/pkg/sound"
	"github.com/golangdaddy/highway/pkg/telemetry"
	"github.com/golangdaddy/highway/pkg/tty"
	"github.com/golangdaddy/highway/pkg/vehicle"
)

func main() {
	configPath := flag.String("config", "", "path to a JSON config overlay")
	envPath := flag.String("env", "environments.json", "path to the environment presets")
	presetID := flag.String("preset", "", "environment preset id (empty for free drive)")
	seed := flag.Int64("seed", 0, "random seed (0 uses the preset seed or the clock)")
	telemetryURL := flag.String("telemetry", "", "websocket URL for debug telemetry")
	mute := flag.Bool("mute", false, "disable sound")
	logPath := flag.String("log", "highway-tty.log", "log file (the terminal is owned by the game)")
	flag.Parse()

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	log.SetOutput(logFile)

	code := exitCode(run(*configPath, *envPath, *presetID, *seed, *telemetryURL, *mute), os.Stderr)
	logFile.Close()
	os.Exit(code)
}

// exitCode reports err on w and maps it to the process status
func exitCode(err error, w io.Writer) int {
	if err == nil {
		return 0
	}
	log.Printf("Exiting: %v", err)
	fmt.Fprintf(w, "highway-tty: %v\n", err)
	return 1
}

func run(configPath, envPath, presetID string, seed int64, telemetryURL string, mute bool) (err error) {
	cfg := config.Default()
	if configPath != "" {
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}

	var preset *environment.Preset
	if presetID != "" {
		p, ok := environment.Find(environment.LoadOrEmpty(envPath), presetID)
		if !ok {
			return fmt.Errorf("unknown environment preset %q", presetID)
		}
		preset = &p
	}

	seed = session.SeedFor(seed, preset)
	sess, err := session.New(cfg, vehicle.DefaultCatalog(), session.Options{Preset: preset, Seed: seed})
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			err = fmt.Errorf("panic: %v", r)
			log.Printf("Recovered from %v", r)
			return
		}
		screen.Fini()
	}()

	app := &tty.App{Screen: screen, Session: sess}

	if !mute {
		sm := sound.NewManager()
		if err := sm.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v", err)
		} else {
			defer sm.Close()
			app.Sound = sm
		}
	}

	if telemetryURL != "" {
		tc, err := telemetry.Dial(telemetryURL)
		if err != nil {
			log.Printf("Telemetry disabled: %v", err)
		} else {
			defer tc.Close()
			app.Telemetry = tc
		}
	}

	log.Printf("Run %s started (seed %d)", sess.RunID, seed)
	return app.Run()
}
