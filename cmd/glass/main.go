package main

import (
	"errors"
	"flag"
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/glass/debugui"
	"github.com/plus3/glass/internal/config"
	"github.com/plus3/glass/session"
)

const (
	margin      = 32
	panelWidth  = 160
	debugWidth  = 1280
	debugHeight = 720
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file (defaults to $GLASS_CONFIG).")
	debug := flag.Bool("debug", false, "Show the ImGui stats overlay.")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	s := session.New(cfg.Session(), rng, log.Default())
	scheduler := session.NewDefaultScheduler(s)
	log.Printf("Starting session %s (%dx%d, seed %d)", s.ID, cfg.Glass.Width, cfg.Glass.Height, seed)

	game := &Game{
		cfg:       cfg,
		session:   s,
		scheduler: scheduler,
	}

	ebiten.SetTPS(cfg.Window.TPS)

	if *debug {
		game.imgui = debugui.NewBackend("Glass", debugWidth, debugHeight)
		scheduler.Register(&debugui.OverlaySystem{
			Panel:     debugui.NewStatsPanel(120),
			Scheduler: scheduler,
		})
	} else {
		w, h := game.screenSize()
		ebiten.SetWindowSize(w, h)
		ebiten.SetWindowTitle("Glass")
	}

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalf("Game exited with error: %v", err)
	}

	stats := s.Stats()
	log.Printf("Session %s finished: %d pieces, %d rows cleared", s.ID, stats.TotalSpawned(), stats.RowsCleared)
}
