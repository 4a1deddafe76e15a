package main

import (
	"bytes"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/plus3/glass/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 5 * time.Millisecond}}
	s.Finalize()

	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 5*time.Millisecond, s.Max)
	assert.Equal(t, 3*time.Millisecond, s.Avg)

	empty := Stats{}
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestReportGenerate(t *testing.T) {
	s := session.New(session.Config{Width: 10, Height: 10}, rand.New(rand.NewPCG(1, 2)), nil)
	sched := session.NewDefaultScheduler(s)
	for i := 0; i < 5; i++ {
		s.Commands().Push(session.HardDrop)
		sched.Once(tickDelta)
	}

	r := &Report{
		Duration: time.Second,
		Width:    10,
		Height:   10,
		Spawned:  make(map[string]int),
	}
	r.collect(s, s.GameOver())
	r.FinalGlass = s.Glass().String()
	r.Systems = sched.GetStats().Systems

	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))

	out := buf.String()
	assert.Equal(t, 1, r.Games+r.Unfinished)
	assert.Equal(t, s.Stats().TotalSpawned(), r.Pieces)
	assert.Contains(t, out, "# Glass Stress Test Report")
	assert.Contains(t, out, "**Glass:** 10x10")
	assert.Contains(t, out, "GravitySystem")
	assert.Contains(t, out, r.FinalGlass)
}

func TestCollectSeparatesFinishedGames(t *testing.T) {
	s := session.New(session.Config{Width: 10, Height: 10}, rand.New(rand.NewPCG(3, 4)), nil)
	sched := session.NewDefaultScheduler(s)
	sched.Once(tickDelta)

	r := &Report{Spawned: make(map[string]int)}
	r.collect(s, false)
	assert.Equal(t, 0, r.Games)
	assert.Equal(t, 1, r.Unfinished)
	assert.Equal(t, 1, r.Pieces)

	r.collect(s, true)
	assert.Equal(t, 1, r.Games)
	assert.Equal(t, 1, r.Unfinished)

	s.Restart()
	r.collect(s, true)
	assert.Equal(t, 1, r.Games, "a game with no pieces is not counted")
}

func TestValidateFlags(t *testing.T) {
	assert.NoError(t, validateFlags(0, 0))
	assert.NoError(t, validateFlags(3, 10))

	err := validateFlags(-1, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-actions")

	err = validateFlags(-1, -2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-actions")
	assert.Contains(t, err.Error(), "-games")
}
