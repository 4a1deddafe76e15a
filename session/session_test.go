package session_test

import (
	"bytes"
	"log"
	"testing"
	"time"

	"github.com/plus3/glass/figures"
	"github.com/plus3/glass/glass"
	"github.com/plus3/glass/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedRand replays values in a loop; a spawn draws a shape index and
// then a rotation count.
type scriptedRand struct {
	values []int
	next   int
}

func (r *scriptedRand) IntN(n int) int {
	v := r.values[r.next%len(r.values)]
	r.next++
	return v % n
}

func squares() *scriptedRand { return &scriptedRand{values: []int{int(figures.Square), 0}} }
func lines() *scriptedRand   { return &scriptedRand{values: []int{int(figures.Line), 0}} }

func newTestSession(w, h int, rng figures.Rand) (*session.Session, *session.Scheduler) {
	s := session.New(session.Config{Width: w, Height: h, GravityInterval: time.Second}, rng, nil)
	return s, session.NewDefaultScheduler(s)
}

func activePosition(t *testing.T, s *session.Session) glass.Position {
	t.Helper()
	piece, ok := s.Glass().Active()
	require.True(t, ok, "expected an active piece")
	return piece.Position
}

func TestNewAppliesDefaults(t *testing.T) {
	s := session.New(session.Config{}, squares(), nil)
	assert.Equal(t, session.DefaultConfig(), s.Config())
	assert.Equal(t, 12, s.Glass().Width())
	assert.Equal(t, 26, s.Glass().Height())
	assert.NotEqual(t, [16]byte{}, [16]byte(s.ID))
}

func TestFirstTickSpawns(t *testing.T) {
	s, sched := newTestSession(10, 10, squares())
	_, ok := s.Glass().Active()
	require.False(t, ok)

	sched.Once(0)

	assert.Equal(t, glass.Position{Row: -1, Col: 3}, activePosition(t, s))
	assert.Equal(t, 1, s.Stats().SpawnCount(figures.Square))
	assert.Equal(t, 1, s.Stats().TotalSpawned())
	assert.Equal(t, int64(1), s.Stats().Ticks)
}

func TestSpawnUsesGlassDraw(t *testing.T) {
	s, sched := newTestSession(10, 20, &scriptedRand{values: []int{int(figures.RightZig), 3}})
	sched.Once(0)

	piece, ok := s.Glass().Active()
	require.True(t, ok)
	want := figures.New(figures.RightZig).Rotate().Rotate().Rotate()
	assert.Equal(t, want.Blocks, piece.Repr.Blocks)
	assert.Equal(t, 1, s.Stats().SpawnCount(figures.RightZig))
}

func TestGravityFollowsInterval(t *testing.T) {
	s, sched := newTestSession(10, 10, squares())
	sched.Once(0)

	sched.Once(0.5)
	assert.Equal(t, -1, activePosition(t, s).Row)

	sched.Once(0.5)
	assert.Equal(t, 0, activePosition(t, s).Row)

	sched.Once(2)
	assert.Equal(t, 2, activePosition(t, s).Row)
}

func TestGravityLocksAndRespawns(t *testing.T) {
	s, sched := newTestSession(10, 10, squares())
	sched.Once(0)

	// eight rows to the floor, the ninth step fails and locks
	sched.Once(100)

	g := s.Glass()
	for _, p := range []glass.Position{{Row: 8, Col: 4}, {Row: 8, Col: 5}, {Row: 9, Col: 4}, {Row: 9, Col: 5}} {
		assert.True(t, g.Filled(p.Row, p.Col), "%v", p)
	}
	assert.Equal(t, 1, s.Stats().Frozen)
	assert.Equal(t, 2, s.Stats().TotalSpawned())
	assert.Equal(t, -1, activePosition(t, s).Row)
}

func TestInputActions(t *testing.T) {
	s, sched := newTestSession(10, 10, lines())
	sched.Once(0)
	start := activePosition(t, s)

	s.Commands().Push(session.MoveLeft)
	s.Commands().Push(session.MoveLeft)
	s.Commands().Push(session.SoftDrop)
	require.Equal(t, 3, s.Commands().Len())
	sched.Once(0)

	assert.Equal(t, 0, s.Commands().Len())
	assert.Equal(t, glass.Position{Row: start.Row + 1, Col: start.Col - 2}, activePosition(t, s))

	s.Commands().Push(session.Rotate)
	sched.Once(0)
	piece, _ := s.Glass().Active()
	assert.Equal(t, figures.New(figures.Line).Rotate().Blocks, piece.Repr.Blocks)

	s.Commands().Push(session.MoveRight)
	sched.Once(0)
	assert.Equal(t, start.Col-1, activePosition(t, s).Col)
}

func TestHardDropLocksInSameTick(t *testing.T) {
	s, sched := newTestSession(10, 10, squares())
	sched.Once(0)

	s.Commands().Push(session.HardDrop)
	sched.Once(0)

	assert.True(t, s.Glass().Filled(9, 4))
	assert.Equal(t, 1, s.Stats().Frozen)
	assert.Equal(t, 2, s.Stats().TotalSpawned())
}

func TestLineClearThroughSession(t *testing.T) {
	s, sched := newTestSession(4, 4, lines())
	sched.Once(0)

	s.Commands().Push(session.HardDrop)
	sched.Once(0)

	assert.Equal(t, 1, s.Stats().RowsCleared)
	assert.Equal(t, make([]bool, 4), s.Glass().Row(3))
	assert.False(t, s.GameOver())
}

func TestGameOverAndRestart(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)
	s := session.New(session.Config{Width: 10, Height: 4, GravityInterval: time.Second}, squares(), logger)
	sched := session.NewDefaultScheduler(s)

	sched.Once(0)
	s.Commands().Push(session.HardDrop)
	sched.Once(0)
	require.False(t, s.GameOver())

	s.Commands().Push(session.HardDrop)
	sched.Once(0)

	assert.True(t, s.GameOver())
	assert.Equal(t, 2, s.Stats().Frozen)
	assert.Equal(t, 2, s.Stats().TotalSpawned())
	assert.Contains(t, buf.String(), "game over")
	_, ok := s.Glass().Active()
	assert.False(t, ok)

	// input is discarded once the game is over
	s.Commands().Push(session.MoveLeft)
	sched.Once(10)
	assert.Equal(t, 0, s.Commands().Len())
	assert.True(t, s.GameOver())

	s.Restart()
	assert.False(t, s.GameOver())
	assert.Equal(t, 0, s.Stats().TotalSpawned())
	assert.False(t, s.Glass().Filled(3, 4))
	assert.Contains(t, buf.String(), "restart")

	sched.Once(0)
	_, ok = s.Glass().Active()
	assert.True(t, ok)
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "HardDrop", session.HardDrop.String())
	assert.Equal(t, "Action(42)", session.Action(42).String())
}
