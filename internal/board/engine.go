package board

import (
	log "github.com/sirupsen/logrus"
)

// Engine owns every piece of mutable board state: pegs, balls, bins and the
// run counters. It is not safe for concurrent use; one caller drives it tick
// by tick and applies commands between ticks.
type Engine struct {
	cfg     Config
	rng     Source
	spawner Spawner
	logger  log.FieldLogger

	rows      int
	ballCount int

	pegs     []Peg
	bottomY  float64
	balls    []Ball
	bins     []int
	dropped  int
	dropping bool
	tick     uint64
}

// New builds an idle board. Rows and ball count outside their bounds are
// clamped.
func New(cfg Config, rng Source) *Engine {
	e := &Engine{
		cfg:       cfg,
		rng:       rng,
		spawner:   NewSpawner(cfg.Rates.SpawnProbability, rng),
		logger:    log.StandardLogger(),
		rows:      clamp(cfg.Rows, MinRows, MaxRows),
		ballCount: clamp(cfg.BallCount, MinBalls, MaxBalls),
	}
	e.reset()
	return e
}

func (e *Engine) SetLogger(l log.FieldLogger) { e.logger = l }

func (e *Engine) Rows() int          { return e.rows }
func (e *Engine) BallCount() int     { return e.ballCount }
func (e *Engine) Dropped() int       { return e.dropped }
func (e *Engine) Dropping() bool     { return e.dropping }
func (e *Engine) Active() int        { return len(e.balls) }
func (e *Engine) BottomY() float64   { return e.bottomY }
func (e *Engine) Ticks() uint64      { return e.tick }
func (e *Engine) Geometry() Geometry { return e.cfg.Geometry }

// Done reports whether every ball of the run has been released and settled.
func (e *Engine) Done() bool {
	return e.dropped == e.ballCount && len(e.balls) == 0
}

// Tick advances the board one step: spawn decision, then every active ball.
// It returns how many balls settled during the step.
func (e *Engine) Tick() int {
	e.tick++

	if e.spawner.Release(e.dropping, e.dropped, e.ballCount) {
		e.balls = append(e.balls, e.newBall())
		e.dropped++
	}
	if len(e.balls) == 0 {
		return 0
	}

	falling := make([]Ball, 0, len(e.balls))
	var settled []int
	for _, b := range e.balls {
		next, bin, done := e.advance(b)
		if done {
			settled = append(settled, bin)
			continue
		}
		falling = append(falling, next)
	}

	e.balls = falling
	for _, bin := range settled {
		e.bins[bin]++
	}

	if len(settled) > 0 && e.Done() {
		e.logger.WithFields(log.Fields{
			"rows":  e.rows,
			"balls": e.ballCount,
			"ticks": e.tick,
		}).Info("all balls settled")
	}
	return len(settled)
}

// advance moves one ball. When the ball is already on the collection line it
// is settled instead and its bin is returned with done set.
func (e *Engine) advance(b Ball) (next Ball, bin int, done bool) {
	g := e.cfg.Geometry
	if b.Y >= e.bottomY {
		b.Falling = false
		return b, g.BinIndex(e.rows, b.X), true
	}

	b.Y += b.Speed

	// Every overlapping peg re-rolls the direction; the last roll sticks.
	r := g.CollisionRadius()
	r2 := r * r
	for _, p := range e.pegs {
		dx, dy := p.X-b.X, p.Y-b.Y
		if dx*dx+dy*dy < r2 {
			b.Direction = coin(e.rng)
		}
	}

	b.X += float64(b.Direction) * e.cfg.Rates.HorizontalStep
	return b, 0, false
}

func (e *Engine) newBall() Ball {
	return Ball{
		X:       e.cfg.Geometry.CenterX(),
		Y:       e.cfg.Geometry.SpawnY,
		Speed:   e.cfg.Rates.FallSpeed,
		Falling: true,
	}
}

func (e *Engine) reset() {
	e.balls = nil
	e.bins = make([]int, e.rows+1)
	e.dropped = 0
	e.dropping = false
	e.pegs, e.bottomY = Generate(e.rows, e.cfg.Geometry)
}
