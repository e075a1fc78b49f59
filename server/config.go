package server

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds the operational settings for the raider server. Game tuning
// lives in the game package as constants; this file is only the knobs an
// operator would turn.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Game    GameConfig    `toml:"game"`
	Logging LoggingConfig `toml:"logging"`
}

// ServerConfig holds the listener settings.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// GameConfig holds simulation driver settings.
type GameConfig struct {
	TickMs       int    `toml:"tick_ms"`       // simulation tick interval
	Seed         int64  `toml:"seed"`          // 0 seeds from the clock
	ScenarioPath string `toml:"scenario_path"` // YAML sector definitions; empty uses built-ins
	Sector       string `toml:"sector"`        // named sector to play; empty takes the first
}

// LoggingConfig selects log output style.
type LoggingConfig struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // console or json
}

func defaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Addr: ":8080",
		},
		Game: GameConfig{
			TickMs:       50,
			Seed:         0,
			ScenarioPath: "data/sectors.yaml",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig reads the TOML file at path over the defaults. A missing file
// is not an error; the defaults run a playable server on :8080.
func LoadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}
	if cfg.Game.TickMs <= 0 {
		return Config{}, fmt.Errorf("config %s: tick_ms must be positive, got %d", path, cfg.Game.TickMs)
	}
	return cfg, nil
}

// TickInterval returns the configured tick period.
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.Game.TickMs) * time.Millisecond
}
