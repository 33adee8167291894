package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Width    int
	Height   int
	Density  float64
	Level    int // 0 means ask the player
	LogLevel string
	LogFile  string
}

// Preset is a named board size and mine density.
type Preset struct {
	Width   int
	Height  int
	Density float64
}

var presets = map[int]Preset{
	1: {Width: 10, Height: 10, Density: 0.10},
	2: {Width: 15, Height: 15, Density: 0.18},
	3: {Width: 20, Height: 20, Density: 0.20},
	4: {Width: 25, Height: 25, Density: 0.20},
	5: {Width: 30, Height: 30, Density: 0.20},
}

// PresetFor returns the board settings for a level between 1 and 5.
func PresetFor(level int) (Preset, bool) {
	p, ok := presets[level]
	return p, ok
}

// Load reads the environment, after a best-effort .env load.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Width:    10,
		Height:   10,
		Density:  0.2,
		LogLevel: "info",
		LogFile:  "minesweeper.log",
	}

	var err error
	if cfg.Width, err = intEnv("MINES_WIDTH", cfg.Width); err != nil {
		return nil, err
	}
	if cfg.Height, err = intEnv("MINES_HEIGHT", cfg.Height); err != nil {
		return nil, err
	}
	if cfg.Level, err = intEnv("MINES_LEVEL", cfg.Level); err != nil {
		return nil, err
	}
	if v := os.Getenv("MINES_DENSITY"); v != "" {
		if cfg.Density, err = strconv.ParseFloat(v, 64); err != nil {
			return nil, fmt.Errorf("MINES_DENSITY: %w", err)
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv("LOG_FILE"); ok {
		cfg.LogFile = v
	}

	if cfg.Level != 0 {
		if _, ok := PresetFor(cfg.Level); !ok {
			return nil, fmt.Errorf("MINES_LEVEL: unknown level %d", cfg.Level)
		}
	}
	return cfg, nil
}

// Board returns the board settings for the configured level, or the custom
// size and density when no level is set.
func (c *Config) Board() Preset {
	if p, ok := PresetFor(c.Level); ok {
		return p
	}
	return Preset{Width: c.Width, Height: c.Height, Density: c.Density}
}

func intEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
