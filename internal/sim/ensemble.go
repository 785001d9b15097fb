package sim

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/san-kum/galton/internal/analysis"
	"github.com/san-kum/galton/internal/board"
)

// Ensemble runs independent boards in parallel, each with its own engine and
// seed cfg.Seed+i. No engine is shared between goroutines.
type Ensemble struct {
	cfg     Config
	numRuns int
	logger  log.FieldLogger
}

type Summary struct {
	Runs     []*Result
	Rows     int
	Bins     []int
	Ticks    int
	Fit      analysis.Fit
	Distance float64
	Elapsed  time.Duration
}

func NewEnsemble(cfg Config, numRuns int) *Ensemble {
	return &Ensemble{cfg: cfg, numRuns: numRuns, logger: log.StandardLogger()}
}

func (e *Ensemble) SetLogger(l log.FieldLogger) { e.logger = l }

func (e *Ensemble) Run(ctx context.Context) (*Summary, error) {
	if err := validateConfig(e.cfg); err != nil {
		return nil, err
	}
	start := time.Now()

	results := make([]*Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			cfgCopy := e.cfg
			cfgCopy.Seed = e.cfg.Seed + int64(idx)

			r, err := New(cfgCopy)
			if err != nil {
				errs[idx] = err
				return
			}
			r.SetLogger(e.logger.WithField("run", idx))
			results[idx], errs[idx] = r.Run(ctx)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return summarize(results, time.Since(start)), nil
}

func summarize(results []*Result, elapsed time.Duration) *Summary {
	rows := board.DefaultRows
	if len(results) > 0 {
		rows = results[0].Rows
	}
	s := &Summary{
		Runs:    results,
		Rows:    rows,
		Bins:    make([]int, rows+1),
		Elapsed: elapsed,
	}
	for _, r := range results {
		s.Ticks += r.Ticks
		for i, c := range r.Bins {
			s.Bins[i] += c
		}
	}
	probs := board.Distribution(rows)
	s.Fit = analysis.ChiSquare(s.Bins, probs)
	s.Distance = analysis.TotalVariation(s.Bins, probs)
	return s
}
