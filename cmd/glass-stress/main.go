package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/glass/figures"
	"github.com/plus3/glass/internal/config"
	"github.com/plus3/glass/session"
)

// tickDelta is the simulated frame time handed to the scheduler.
const tickDelta = 1.0 / 60.0

var botActions = []session.Action{
	session.MoveLeft,
	session.MoveRight,
	session.SoftDrop,
	session.Rotate,
	session.HardDrop,
}

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	seed := flag.Uint64("seed", 1, "Seed for pieces and bot input.")
	games := flag.Int("games", 0, "Stop after this many finished games (0 runs for the whole duration).")
	actionsPerTick := flag.Int("actions", 2, "Maximum bot actions queued per tick.")
	configPath := flag.String("config", "", "Path to a YAML config file (defaults to $GLASS_CONFIG).")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	if err := validateFlags(*actionsPerTick, *games); err != nil {
		log.Fatalf("Invalid flags: %v", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Println("Starting glass stress test...")

	rng := rand.New(rand.NewPCG(*seed, *seed+1))
	bot := rand.New(rand.NewPCG(*seed+2, *seed+3))

	s := session.New(cfg.Session(), rng, nil)
	scheduler := session.NewDefaultScheduler(s)

	report := &Report{
		Duration:       *duration,
		Width:          cfg.Glass.Width,
		Height:         cfg.Glass.Height,
		Seed:           *seed,
		GCPauseMetrics: *gcPauseMetrics,
		Spawned:        make(map[string]int),
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			if s.GameOver() {
				report.collect(s, true)
				report.FinalGlass = s.Glass().String()
				s.Restart()
				if *games > 0 && report.Games >= *games {
					break Loop
				}
			}

			for n := bot.IntN(*actionsPerTick + 1); n > 0; n-- {
				s.Commands().Push(botActions[bot.IntN(len(botActions))])
			}

			updateStart := time.Now()
			scheduler.Once(tickDelta)
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
			report.TotalUpdates++
		}
	}

	if s.Stats().TotalSpawned() > 0 {
		report.collect(s, false)
		report.FinalGlass = s.Glass().String()
	}
	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	report.Systems = scheduler.GetStats().Systems
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

func validateFlags(actionsPerTick, games int) error {
	var errs []error
	if actionsPerTick < 0 {
		errs = append(errs, fmt.Errorf("-actions must not be negative, got %d", actionsPerTick))
	}
	if games < 0 {
		errs = append(errs, fmt.Errorf("-games must not be negative, got %d", games))
	}
	return errors.Join(errs...)
}

// collect folds the counters of the current game into the report. Only
// games that reached game over count as finished.
func (r *Report) collect(s *session.Session, finished bool) {
	stats := s.Stats()
	if stats.TotalSpawned() == 0 {
		return
	}
	if finished {
		r.Games++
	} else {
		r.Unfinished++
	}
	r.RowsCleared += stats.RowsCleared
	r.Pieces += stats.TotalSpawned()
	for _, shape := range figures.Shapes {
		r.Spawned[shape.String()] += stats.SpawnCount(shape)
	}
}
