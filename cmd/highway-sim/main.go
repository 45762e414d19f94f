package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/golangdaddy/highway/pkg/config"
	"github.com/golangdaddy/highway/pkg/environment"
	"github.com/golangdaddy/highway/pkg/models"
	"github.com/golangdaddy/highway/pkg/session"
	"github.com/golangdaddy/highway/pkg/vehicle"
)

func main() {
	configPath := flag.String("config", "", "path to a JSON config overlay")
	envPath := flag.String("env", "environments.json", "path to the environment presets")
	presetID := flag.String("preset", "", "environment preset id (empty for free drive)")
	seed := flag.Int64("seed", 0, "random seed (0 uses the preset seed or the clock)")
	ticks := flag.Int("ticks", 60*60*3, "maximum ticks to simulate")
	out := flag.String("out", "", "also write the summary to this file")
	comparePath := flag.String("compare", "", "report the difference against a summary saved with -out")
	flag.Parse()

	sum, err := run(*configPath, *envPath, *presetID, *seed, *ticks)
	if err != nil {
		fmt.Fprintf(os.Stderr, "highway-sim: %v\n", err)
		os.Exit(1)
	}

	data, err := sum.JSON()
	if err != nil {
		fmt.Fprintf(os.Stderr, "highway-sim: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(data))

	if *comparePath != "" {
		prev, err := models.LoadFromFile(*comparePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "highway-sim: failed to load %s: %v\n", *comparePath, err)
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, compare(*prev, sum))
	}

	if *out != "" {
		if err := sum.SaveToFile(*out); err != nil {
			fmt.Fprintf(os.Stderr, "highway-sim: failed to save summary: %v\n", err)
			os.Exit(1)
		}
	}
}

func run(configPath, envPath, presetID string, seed int64, ticks int) (sum models.RunSummary, err error) {
	defer recoverInto(&err)

	cfg := config.Default()
	if configPath != "" {
		if cfg, err = config.Load(configPath); err != nil {
			return models.RunSummary{}, err
		}
	}

	var preset *environment.Preset
	if presetID != "" {
		p, ok := environment.Find(environment.LoadOrEmpty(envPath), presetID)
		if !ok {
			return models.RunSummary{}, fmt.Errorf("unknown environment preset %q", presetID)
		}
		preset = &p
	}

	s, err := session.New(cfg, vehicle.DefaultCatalog(), session.Options{
		Preset: preset,
		Seed:   session.SeedFor(seed, preset),
	})
	if err != nil {
		return models.RunSummary{}, err
	}

	return simulate(s, ticks), nil
}

// simulate drives s with the autopilot until it crashes or ticks run out
func simulate(s *session.Session, ticks int) models.RunSummary {
	var pilot autopilot
	for i := 0; i < ticks && s.Status == session.Playing; i++ {
		for _, e := range s.Tick(pilot.controls(s)) {
			if e.Kind == session.EventLevelUp {
				log.Printf("Level %d at tick %d", e.Level, s.Ticks)
			}
		}
	}
	return s.Summary()
}

// recoverInto turns a panic in the calling function into its returned error
func recoverInto(err *error) {
	if r := recover(); r != nil {
		log.Printf("Recovered from %v", r)
		*err = fmt.Errorf("panic: %v", r)
	}
}

// compare describes how cur differs from a previously saved run
func compare(prev, cur models.RunSummary) string {
	return fmt.Sprintf("vs %s: score %+d, distance %+d, level %+d, ticks %+d",
		shortID(prev.RunID),
		cur.Score-prev.Score,
		cur.Distance-prev.Distance,
		cur.Level-prev.Level,
		cur.Ticks-prev.Ticks,
	)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
