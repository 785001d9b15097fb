package sim

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/san-kum/galton/internal/analysis"
	"github.com/san-kum/galton/internal/board"
)

const DefaultMaxTicks = 1_000_000

type Config struct {
	Board    board.Config
	Seed     int64
	MaxTicks int
}

func DefaultConfig() Config {
	return Config{
		Board:    board.DefaultConfig(),
		Seed:     1,
		MaxTicks: DefaultMaxTicks,
	}
}

// Observer is notified with a fresh snapshot after every tick.
type Observer interface {
	OnTick(s board.Snapshot)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(s board.Snapshot)

func (f ObserverFunc) OnTick(s board.Snapshot) { f(s) }

type Result struct {
	Seed     int64
	Rows     int
	Balls    int
	Ticks    int
	Bins     []int
	Expected []float64
	Fit      analysis.Fit
	Distance float64
	Elapsed  time.Duration
}

// Runner drives one board headlessly from start until every ball settles.
type Runner struct {
	cfg       Config
	engine    *board.Engine
	observers []Observer
	logger    log.FieldLogger
}

func New(cfg Config) (*Runner, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	r := &Runner{
		cfg:    cfg,
		engine: board.New(cfg.Board, board.NewSource(cfg.Seed)),
		logger: log.StandardLogger(),
	}
	return r, nil
}

func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }
func (r *Runner) Engine() *board.Engine  { return r.engine }

func (r *Runner) SetLogger(l log.FieldLogger) {
	r.logger = l
	r.engine.SetLogger(l)
}

// Run starts the board and ticks it until it is done, the context is
// cancelled or the tick budget runs out. The partial result is returned
// alongside any error.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	r.engine.Start()

	ticks := 0
	for !r.engine.Done() {
		select {
		case <-ctx.Done():
			return r.result(ticks, start), ctx.Err()
		default:
		}

		if ticks >= r.cfg.MaxTicks {
			return r.result(ticks, start), fmt.Errorf("%w (%d ticks, %d/%d dropped)",
				ErrTickLimit, ticks, r.engine.Dropped(), r.engine.BallCount())
		}

		r.engine.Tick()
		ticks++

		if len(r.observers) > 0 {
			snap := r.engine.Snapshot()
			for _, o := range r.observers {
				o.OnTick(snap)
			}
		}
	}

	res := r.result(ticks, start)
	r.logger.WithFields(log.Fields{
		"seed":    res.Seed,
		"ticks":   res.Ticks,
		"chi2":    res.Fit.Statistic,
		"p":       res.Fit.PValue,
		"elapsed": res.Elapsed,
	}).Debug("run finished")
	return res, nil
}

func (r *Runner) result(ticks int, start time.Time) *Result {
	snap := r.engine.Snapshot()
	return &Result{
		Seed:     r.cfg.Seed,
		Rows:     snap.Rows,
		Balls:    snap.BallCount,
		Ticks:    ticks,
		Bins:     snap.Bins,
		Expected: board.Expected(snap.Rows, snap.Settled()),
		Fit:      analysis.ChiSquare(snap.Bins, snap.Probabilities),
		Distance: analysis.TotalVariation(snap.Bins, snap.Probabilities),
		Elapsed:  time.Since(start),
	}
}

func validateConfig(cfg Config) error {
	if cfg.MaxTicks <= 0 {
		return fmt.Errorf("%w: max ticks must be positive, got %d", ErrInvalidConfig, cfg.MaxTicks)
	}
	if p := cfg.Board.Rates.SpawnProbability; p <= 0 || p > 1 {
		return fmt.Errorf("%w: spawn probability must be in (0, 1], got %f", ErrInvalidConfig, p)
	}
	if cfg.Board.Rates.FallSpeed <= 0 {
		return fmt.Errorf("%w: fall speed must be positive, got %f", ErrInvalidConfig, cfg.Board.Rates.FallSpeed)
	}
	return nil
}
