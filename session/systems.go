package session

import "github.com/plus3/glass/glass"

// InputSystem applies the actions queued since the previous tick. Input is
// discarded once the game is over.
type InputSystem struct{}

func (InputSystem) Execute(frame *Frame) {
	if frame.Session.gameOver {
		frame.Commands.Reset()
		return
	}
	frame.Commands.Flush(frame.Session)
}

// GravitySystem moves the active piece down one row every gravity interval
// and locks it when it can fall no further.
type GravitySystem struct {
	accumulator float64
}

func (g *GravitySystem) Execute(frame *Frame) {
	s := frame.Session
	if s.gameOver {
		return
	}
	if _, ok := s.glass.Active(); !ok {
		g.accumulator = 0
		return
	}

	interval := s.cfg.GravityInterval.Seconds()
	g.accumulator += frame.DeltaTime
	for g.accumulator >= interval {
		g.accumulator -= interval
		if !s.glass.Relocate(glass.Down) {
			s.lock()
			g.accumulator = 0
			return
		}
	}
}

// LineClearSystem removes completed rows once per tick.
type LineClearSystem struct{}

func (LineClearSystem) Execute(frame *Frame) {
	s := frame.Session
	if n := s.glass.ClearFilledRows(); n > 0 {
		s.stats.RowsCleared += n
	}
}

// SpawnSystem brings in a new piece whenever none is falling. A blocked
// spawn ends the game.
type SpawnSystem struct{}

func (SpawnSystem) Execute(frame *Frame) {
	s := frame.Session
	if s.gameOver {
		return
	}
	if _, ok := s.glass.Active(); ok {
		return
	}
	s.spawn()
}
