// Package config loads punishboard settings from a TOML file.
//
// Every field has a default, so a missing file is not an error unless it was
// named explicitly. The file is looked up in this order:
//
//  1. the path passed to [Load] (the --config flag)
//  2. $PUNISHBOARD_CONFIG
//  3. $XDG_CONFIG_HOME/punishboard/config.toml (~/.config/punishboard/config.toml)
//
// Example file:
//
//	[store]
//	backend = "redis"
//
//	[store.redis]
//	addr = "localhost:6379"
//
//	[game]
//	announce_delay = "2s"
//	top_right = "Penalty Box"
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// EnvConfig names the environment variable holding a config path.
const EnvConfig = "PUNISHBOARD_CONFIG"

// Store backends.
const (
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
	BackendMemory = "memory"
)

// Config is the full application configuration.
type Config struct {
	Store  Store  `toml:"store"`
	Cache  Cache  `toml:"cache"`
	Server Server `toml:"server"`
	Game   Game   `toml:"game"`
	Log    Log    `toml:"log"`

	// Path is the file the config was read from, empty for defaults.
	Path string `toml:"-"`
}

// Store selects where the pre-game space list is persisted.
type Store struct {
	Backend string `toml:"backend"`
	// Path is the data directory of the file backend.
	Path  string `toml:"path"`
	Key   string `toml:"key"`
	Redis Redis  `toml:"redis"`
	Mongo Mongo  `toml:"mongo"`
}

type Redis struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type Mongo struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// Cache configures the rendered artifact cache.
type Cache struct {
	Dir      string `toml:"dir"`
	Disabled bool   `toml:"disabled"`
}

// Server configures the HTTP API.
type Server struct {
	Addr            string   `toml:"addr"`
	ReadTimeout     Duration `toml:"read_timeout"`
	WriteTimeout    Duration `toml:"write_timeout"`
	ShutdownTimeout Duration `toml:"shutdown_timeout"`
}

// Game configures board rendering and play.
type Game struct {
	TileSize      float64  `toml:"tile_size"`
	AnnounceDelay Duration `toml:"announce_delay"`
	// Seed makes rolls reproducible when non-zero.
	Seed        uint64 `toml:"seed"`
	TopRight    string `toml:"top_right"`
	BottomRight string `toml:"bottom_right"`
	BottomLeft  string `toml:"bottom_left"`
}

type Log struct {
	Level string `toml:"level"`
}

// Duration is a time.Duration read from strings like "3s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Store: Store{
			Backend: BackendFile,
			Key:     "allSpaces",
			Redis:   Redis{Addr: "localhost:6379"},
			Mongo: Mongo{
				URI:        "mongodb://localhost:27017",
				Database:   "punishboard",
				Collection: "space_lists",
			},
		},
		Server: Server{
			Addr:            ":8080",
			ReadTimeout:     Duration{10 * time.Second},
			WriteTimeout:    Duration{30 * time.Second},
			ShutdownTimeout: Duration{5 * time.Second},
		},
		Game: Game{
			TileSize:      150,
			AnnounceDelay: Duration{3 * time.Second},
		},
		Log: Log{Level: "info"},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/punishboard/config.toml.
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "punishboard", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".config", "punishboard", "config.toml"), nil
}

// Load reads the config file over the defaults. An explicit path (argument
// or environment) must exist; the default path may be absent.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := true
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		explicit = false
		var err error
		if path, err = DefaultPath(); err != nil {
			return cfg, nil
		}
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return cfg, fmt.Errorf("load config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	cfg.Path = path
	return cfg, cfg.Validate()
}

// Validate checks field values.
func (c Config) Validate() error {
	switch c.Store.Backend {
	case BackendFile, BackendRedis, BackendMongo, BackendMemory:
	default:
		return fmt.Errorf("store.backend: unknown backend %q", c.Store.Backend)
	}
	if c.Game.TileSize <= 0 {
		return fmt.Errorf("game.tile_size must be positive")
	}
	if c.Game.AnnounceDelay.Duration <= 0 {
		return fmt.Errorf("game.announce_delay must be positive")
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level: unknown level %q", c.Log.Level)
	}
	return nil
}
