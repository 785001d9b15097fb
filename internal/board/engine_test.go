package board

import (
	"io"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedSource replays fixed values; the last value repeats once the
// script runs out.
type scriptedSource struct {
	floats []float64
	ints   []int
	intN   int
}

func (s *scriptedSource) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[0]
	if len(s.floats) > 1 {
		s.floats = s.floats[1:]
	}
	return v
}

func (s *scriptedSource) IntN(n int) int {
	s.intN++
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	if len(s.ints) > 1 {
		s.ints = s.ints[1:]
	}
	return v % n
}

func quietLogger() log.FieldLogger {
	l := log.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestEngine(t *testing.T, cfg Config, rng Source) *Engine {
	t.Helper()
	e := New(cfg, rng)
	e.SetLogger(quietLogger())
	return e
}

func TestNew_ClampsParameters(t *testing.T) {
	tests := []struct {
		name              string
		rows, balls       int
		wantRows, wantBal int
	}{
		{"defaults", DefaultRows, DefaultBalls, 10, 100},
		{"too few rows", 1, 100, MinRows, 100},
		{"too many rows", 40, 100, MaxRows, 100},
		{"too few balls", 10, 3, 10, MinBalls},
		{"too many balls", 10, 9000, 10, MaxBalls},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Rows, cfg.BallCount = tt.rows, tt.balls
			e := newTestEngine(t, cfg, NewSource(1))
			assert.Equal(t, tt.wantRows, e.Rows())
			assert.Equal(t, tt.wantBal, e.BallCount())
			assert.Len(t, e.Snapshot().Bins, tt.wantRows+1)
			assert.False(t, e.Dropping())
		})
	}
}

func TestTick_IdleBoardDoesNothing(t *testing.T) {
	e := newTestEngine(t, DefaultConfig(), NewSource(1))
	for i := 0; i < 100; i++ {
		assert.Zero(t, e.Tick())
	}
	assert.Zero(t, e.Dropped())
	assert.Zero(t, e.Active())
	assert.Equal(t, uint64(100), e.Ticks())
}

func TestTick_Conservation(t *testing.T) {
	e := newTestEngine(t, DefaultConfig(), NewSource(42))
	e.Start()

	for i := 0; i < 20000 && !e.Done(); i++ {
		e.Tick()
		s := e.Snapshot()
		require.Equal(t, s.Dropped, s.Settled()+len(s.Balls), "tick %d", i)
		require.LessOrEqual(t, s.Settled(), s.BallCount)
		require.LessOrEqual(t, s.Dropped, s.BallCount)
	}

	require.True(t, e.Done(), "run did not finish")
	s := e.Snapshot()
	assert.Len(t, s.Bins, 11)
	assert.Equal(t, 100, s.Settled())
	assert.Equal(t, 100, s.Dropped)
}

func TestTick_SpawnStopsAtBallCount(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BallCount = MinBalls
	cfg.Rates.SpawnProbability = 1
	e := newTestEngine(t, cfg, NewSource(3))
	e.Start()

	for i := 0; i < 2*MinBalls; i++ {
		e.Tick()
	}
	assert.Equal(t, MinBalls, e.Dropped())
	assert.True(t, e.Dropping())
}

func TestTick_SettleTakesPriority(t *testing.T) {
	rng := &scriptedSource{ints: []int{1}}
	e := newTestEngine(t, DefaultConfig(), rng)

	// Sits on the collection line directly over where a peg would be hit.
	e.balls = []Ball{{X: e.cfg.Geometry.CenterX(), Y: e.bottomY, Speed: 3, Falling: true}}
	e.dropped = 1

	assert.Equal(t, 1, e.Tick())
	assert.Zero(t, e.Active())
	assert.Equal(t, 1, e.Snapshot().Bins[5])
	assert.Zero(t, rng.intN, "settled ball must not be deflected")
}

func TestTick_BeyondRightEdgeLandsInLastBin(t *testing.T) {
	e := newTestEngine(t, DefaultConfig(), NewSource(1))
	g := e.cfg.Geometry
	x := g.LeftEdge(e.rows) + float64(e.rows+5)*g.BinWidth
	e.balls = []Ball{{X: x, Y: e.bottomY + 0.5, Speed: 3, Falling: true}}
	e.dropped = 1

	e.Tick()
	bins := e.Snapshot().Bins
	require.Len(t, bins, e.rows+1)
	assert.Equal(t, 1, bins[e.rows])
}

func TestTick_PegCollisionDeflects(t *testing.T) {
	tests := []struct {
		name  string
		roll  int
		wantX float64
	}{
		{"left", 0, 598},
		{"right", 1, 602},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := &scriptedSource{ints: []int{tt.roll}}
			e := newTestEngine(t, DefaultConfig(), rng)
			// One step lands exactly on the apex peg at (600, 150).
			e.balls = []Ball{{X: 600, Y: 147, Speed: 3, Falling: true}}
			e.dropped = 1

			e.Tick()
			b := e.Snapshot().Balls[0]
			assert.Equal(t, 150.0, b.Y)
			assert.Equal(t, tt.wantX, b.X)
			assert.Equal(t, 1, rng.intN)
		})
	}
}

func TestTick_DirectionPersistsBetweenPegs(t *testing.T) {
	rng := &scriptedSource{}
	e := newTestEngine(t, DefaultConfig(), rng)
	e.balls = []Ball{{X: 100, Y: 160, Direction: -1, Speed: 3, Falling: true}}
	e.dropped = 1

	e.Tick()
	e.Tick()
	b := e.Snapshot().Balls[0]
	assert.Equal(t, 96.0, b.X)
	assert.Equal(t, 166.0, b.Y)
	assert.Zero(t, rng.intN)
}

func TestTick_LastOverlapRollWins(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Geometry.BallRadius = 30
	rng := &scriptedSource{ints: []int{1, 0}}
	e := newTestEngine(t, cfg, rng)

	// Midway between the two row-1 pegs at (580, 190) and (620, 190), out of
	// reach of the apex peg.
	e.balls = []Ball{{X: 600, Y: 187, Speed: 3, Falling: true}}
	e.dropped = 1

	e.Tick()
	b := e.Snapshot().Balls[0]
	assert.Equal(t, 2, rng.intN)
	assert.Equal(t, -1, b.Direction)
	assert.Equal(t, 598.0, b.X)
}

func TestTick_NewBallAtSpawnPoint(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rates.SpawnProbability = 1
	e := newTestEngine(t, cfg, NewSource(9))
	e.Start()

	e.Tick()
	s := e.Snapshot()
	require.Len(t, s.Balls, 1)
	b := s.Balls[0]
	assert.Equal(t, cfg.Geometry.CenterX(), b.X)
	assert.Equal(t, cfg.Geometry.SpawnY+cfg.Rates.FallSpeed, b.Y)
	assert.Zero(t, b.Direction)
	assert.True(t, b.Falling)
	assert.Equal(t, 1, s.Dropped)
}

func TestSpawner_Release(t *testing.T) {
	always := NewSpawner(0.1, &scriptedSource{floats: []float64{0.05}})
	never := NewSpawner(0.1, &scriptedSource{floats: []float64{0.5}})

	assert.True(t, always.Release(true, 0, 10))
	assert.False(t, always.Release(false, 0, 10))
	assert.False(t, always.Release(true, 10, 10))
	assert.False(t, never.Release(true, 0, 10))
}
