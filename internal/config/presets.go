package config

import "sort"

var Presets = map[string]func(*Config){
	"classic": func(c *Config) {},
	"quick": func(c *Config) {
		c.Rows, c.Balls = 5, 50
		c.Rates.SpawnProbability = 0.5
	},
	"tall": func(c *Config) {
		c.Rows, c.Balls = 15, 500
	},
	"trickle": func(c *Config) {
		c.Rows, c.Balls = 10, 200
		c.Rates.SpawnProbability = 0.03
	},
	"flood": func(c *Config) {
		c.Rows, c.Balls = 12, 500
		c.Rates.SpawnProbability = 1
	},
}

// GetPreset returns the defaults with the named preset applied, or nil when
// there is no such preset.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
