package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/galton/internal/board"
	"github.com/san-kum/galton/internal/sim"
)

const (
	DefaultSeed     = 1
	DefaultLogLevel = "info"
	DefaultTheme    = "classic"
)

var (
	ErrRowsBounds  = errors.New("config: rows out of bounds")
	ErrBallsBounds = errors.New("config: balls out of bounds")
	ErrProbability = errors.New("config: spawn probability must be in (0, 1]")
	ErrGeometry    = errors.New("config: geometry values must be positive")
	ErrRates       = errors.New("config: rates must be positive")
)

type Config struct {
	Rows     int            `yaml:"rows"`
	Balls    int            `yaml:"balls"`
	Seed     int64          `yaml:"seed"`
	MaxTicks int            `yaml:"max_ticks"`
	LogLevel string         `yaml:"log_level"`
	Theme    string         `yaml:"theme"`
	Geometry GeometryConfig `yaml:"geometry"`
	Rates    RatesConfig    `yaml:"rates"`
}

type GeometryConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	PegSpacing   float64 `yaml:"peg_spacing"`
	TopOffset    float64 `yaml:"top_offset"`
	BinWidth     float64 `yaml:"bin_width"`
	PegRadius    float64 `yaml:"peg_radius"`
	BallRadius   float64 `yaml:"ball_radius"`
	SpawnY       float64 `yaml:"spawn_y"`
	MaxBarHeight float64 `yaml:"max_bar_height"`
}

type RatesConfig struct {
	SpawnProbability float64 `yaml:"spawn_probability"`
	FallSpeed        float64 `yaml:"fall_speed"`
	HorizontalStep   float64 `yaml:"horizontal_step"`
	TickRate         int     `yaml:"tick_rate"`
}

func DefaultConfig() *Config {
	g := board.DefaultGeometry()
	r := board.DefaultRates()
	return &Config{
		Rows:     board.DefaultRows,
		Balls:    board.DefaultBalls,
		Seed:     DefaultSeed,
		MaxTicks: sim.DefaultMaxTicks,
		LogLevel: DefaultLogLevel,
		Theme:    DefaultTheme,
		Geometry: GeometryConfig{
			Width:        g.Width,
			Height:       g.Height,
			PegSpacing:   g.PegSpacing,
			TopOffset:    g.TopOffset,
			BinWidth:     g.BinWidth,
			PegRadius:    g.PegRadius,
			BallRadius:   g.BallRadius,
			SpawnY:       g.SpawnY,
			MaxBarHeight: g.MaxBarHeight,
		},
		Rates: RatesConfig{
			SpawnProbability: r.SpawnProbability,
			FallSpeed:        r.FallSpeed,
			HorizontalStep:   r.HorizontalStep,
			TickRate:         r.TickRate,
		},
	}
}

// Load reads a YAML file on top of the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Marshal() ([]byte, error) { return yaml.Marshal(c) }

func (c *Config) Validate() error {
	if c.Rows < board.MinRows || c.Rows > board.MaxRows {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrRowsBounds, c.Rows, board.MinRows, board.MaxRows)
	}
	if c.Balls < board.MinBalls || c.Balls > board.MaxBalls {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrBallsBounds, c.Balls, board.MinBalls, board.MaxBalls)
	}
	if p := c.Rates.SpawnProbability; p <= 0 || p > 1 {
		return fmt.Errorf("%w: got %g", ErrProbability, p)
	}
	if c.Rates.FallSpeed <= 0 || c.Rates.HorizontalStep < 0 || c.Rates.TickRate <= 0 {
		return fmt.Errorf("%w: fall_speed=%g horizontal_step=%g tick_rate=%d",
			ErrRates, c.Rates.FallSpeed, c.Rates.HorizontalStep, c.Rates.TickRate)
	}
	g := c.Geometry
	for name, v := range map[string]float64{
		"width":       g.Width,
		"height":      g.Height,
		"peg_spacing": g.PegSpacing,
		"bin_width":   g.BinWidth,
		"peg_radius":  g.PegRadius,
		"ball_radius": g.BallRadius,
	} {
		if v <= 0 {
			return fmt.Errorf("%w: %s=%g", ErrGeometry, name, v)
		}
	}
	if c.MaxTicks < 0 {
		return fmt.Errorf("%w: max_ticks=%d", ErrRates, c.MaxTicks)
	}
	return nil
}

func (c *Config) Board() board.Config {
	return board.Config{
		Rows:      c.Rows,
		BallCount: c.Balls,
		Geometry: board.Geometry{
			Width:        c.Geometry.Width,
			Height:       c.Geometry.Height,
			PegSpacing:   c.Geometry.PegSpacing,
			TopOffset:    c.Geometry.TopOffset,
			BinWidth:     c.Geometry.BinWidth,
			PegRadius:    c.Geometry.PegRadius,
			BallRadius:   c.Geometry.BallRadius,
			SpawnY:       c.Geometry.SpawnY,
			MaxBarHeight: c.Geometry.MaxBarHeight,
		},
		Rates: board.Rates{
			SpawnProbability: c.Rates.SpawnProbability,
			FallSpeed:        c.Rates.FallSpeed,
			HorizontalStep:   c.Rates.HorizontalStep,
			TickRate:         c.Rates.TickRate,
		},
	}
}

// Run returns the headless runner settings. A zero tick budget falls back to
// the default.
func (c *Config) Run() sim.Config {
	maxTicks := c.MaxTicks
	if maxTicks == 0 {
		maxTicks = sim.DefaultMaxTicks
	}
	return sim.Config{Board: c.Board(), Seed: c.Seed, MaxTicks: maxTicks}
}
