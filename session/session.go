// Package session drives a glass the way a game front end does: queued
// player input, gravity on a fixed cadence, row clearing and spawning, run
// as an ordered list of systems by a Scheduler.
//
// A Session is single-threaded. Push commands and call Scheduler.Once from
// the same goroutine.
package session

import (
	"io"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/kamstrup/intmap"
	"github.com/plus3/glass/figures"
	"github.com/plus3/glass/glass"
)

// Config holds the per-session settings.
type Config struct {
	Width           int
	Height          int
	GravityInterval time.Duration
}

// DefaultConfig returns a 12x26 glass with one gravity step per second.
func DefaultConfig() Config {
	return Config{
		Width:           12,
		Height:          26,
		GravityInterval: time.Second,
	}
}

// Stats counts what happened during a session.
type Stats struct {
	spawned     *intmap.Map[figures.Shape, int]
	Frozen      int
	RowsCleared int
	Ticks       int64
}

func newStats() *Stats {
	return &Stats{spawned: intmap.New[figures.Shape, int](len(figures.Shapes))}
}

func (st *Stats) recordSpawn(shape figures.Shape) {
	n, _ := st.spawned.Get(shape)
	st.spawned.Put(shape, n+1)
}

// SpawnCount returns how many pieces of the shape entered the glass.
func (st *Stats) SpawnCount(shape figures.Shape) int {
	n, _ := st.spawned.Get(shape)
	return n
}

// TotalSpawned returns the number of pieces that entered the glass.
func (st *Stats) TotalSpawned() int {
	total := 0
	for _, shape := range figures.Shapes {
		total += st.SpawnCount(shape)
	}
	return total
}

// Session is one game: a glass, its random source, pending input and
// game-over state.
type Session struct {
	ID uuid.UUID

	cfg      Config
	glass    *glass.Glass
	commands *Commands
	stats    *Stats
	gameOver bool
	logger   *log.Logger
}

// New creates a session. Zero config fields fall back to DefaultConfig and a
// nil logger discards output.
func New(cfg Config, rng figures.Rand, logger *log.Logger) *Session {
	def := DefaultConfig()
	if cfg.Width <= 0 {
		cfg.Width = def.Width
	}
	if cfg.Height <= 0 {
		cfg.Height = def.Height
	}
	if cfg.GravityInterval <= 0 {
		cfg.GravityInterval = def.GravityInterval
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &Session{
		ID:       uuid.New(),
		cfg:      cfg,
		glass:    glass.New(cfg.Width, cfg.Height, rng),
		commands: newCommands(),
		stats:    newStats(),
		logger:   logger,
	}
}

func (s *Session) Config() Config      { return s.cfg }
func (s *Session) Glass() *glass.Glass { return s.glass }
func (s *Session) Commands() *Commands { return s.commands }
func (s *Session) Stats() *Stats       { return s.stats }
func (s *Session) GameOver() bool      { return s.gameOver }

// Restart clears the glass, pending input and statistics.
func (s *Session) Restart() {
	s.logger.Printf("session %s: restart after %d pieces, %d rows", s.ID, s.stats.TotalSpawned(), s.stats.RowsCleared)
	s.glass.Reset()
	s.commands.Reset()
	s.stats = newStats()
	s.gameOver = false
}

func (s *Session) lock() {
	s.glass.Freeze()
	s.stats.Frozen++
}

func (s *Session) spawn() {
	shape, blocked := s.glass.SpawnNext()
	if blocked {
		s.gameOver = true
		s.logger.Printf("session %s: game over, %s blocked after %d pieces, %d rows",
			s.ID, shape, s.stats.TotalSpawned(), s.stats.RowsCleared)
		return
	}
	s.stats.recordSpawn(shape)
}
