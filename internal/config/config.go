package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Game    GameConfig    `mapstructure:"game"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// GameConfig holds rules and setup of a single game
type GameConfig struct {
	Rules RulesConfig `mapstructure:"rules"`
	Setup SetupConfig `mapstructure:"setup"`
}

// RulesConfig holds combat and movement limits
type RulesConfig struct {
	MaxDice              int    `mapstructure:"max_dice"`
	MaxMoveIn            int    `mapstructure:"max_move_in"`
	MaxOccupyMove        int    `mapstructure:"max_occupy_move"`
	Conqueror            string `mapstructure:"conqueror"`
	FixedMoveIn          int    `mapstructure:"fixed_move_in"`
	StrictReinforcements bool   `mapstructure:"strict_reinforcements"`
	HistorySize          int    `mapstructure:"history_size"`
}

// PlayerConfig describes one seat at the table
type PlayerConfig struct {
	Name  string `mapstructure:"name"`
	Color string `mapstructure:"color"`
	Goal  string `mapstructure:"goal"`
}

// SetupConfig holds how the board is built and dealt
type SetupConfig struct {
	Players []PlayerConfig `mapstructure:"players"`
	Deal    string         `mapstructure:"deal"`
	Seed    uint64         `mapstructure:"seed"`
	Map     string         `mapstructure:"map"`
}

// LoggingConfig holds log output settings
type LoggingConfig struct {
	Level  string        `mapstructure:"level"`
	Format string        `mapstructure:"format"`
	File   LogFileConfig `mapstructure:"file"`
}

// LogFileConfig holds rotating log file settings. An empty Path disables
// file output.
type LogFileConfig struct {
	Path       string `mapstructure:"path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// Conqueror strategies accepted by game.rules.conqueror.
const (
	ConquerorMinimum = "minimum"
	ConquerorMaximum = "maximum"
	ConquerorFixed   = "fixed"
)

// Deal modes accepted by game.setup.deal.
const (
	DealOrdered  = "ordered"
	DealShuffled = "shuffled"
)

// MapClassic is the standard 42 territory board.
const MapClassic = "classic"

// MoveCeiling bounds max_move_in and max_occupy_move.
const MoveCeiling = 3

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	// Rules
	v.SetDefault("game.rules.max_dice", 3)
	v.SetDefault("game.rules.max_move_in", MoveCeiling)
	v.SetDefault("game.rules.max_occupy_move", MoveCeiling)
	v.SetDefault("game.rules.conqueror", ConquerorMaximum)
	v.SetDefault("game.rules.fixed_move_in", 1)
	v.SetDefault("game.rules.strict_reinforcements", false)
	v.SetDefault("game.rules.history_size", 1000)

	// Setup
	v.SetDefault("game.setup.players", []map[string]any{
		{"name": "red", "color": "red", "goal": "world"},
		{"name": "blue", "color": "blue", "goal": "world"},
		{"name": "green", "color": "green", "goal": "world"},
	})
	v.SetDefault("game.setup.deal", DealShuffled)
	v.SetDefault("game.setup.seed", 0)
	v.SetDefault("game.setup.map", MapClassic)

	// Logging
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file.path", "")
	v.SetDefault("logging.file.max_size_mb", 10)
	v.SetDefault("logging.file.max_backups", 3)
	v.SetDefault("logging.file.max_age_days", 28)
	v.SetDefault("logging.file.compress", false)
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()

	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/conquest")
	}

	v.SetEnvPrefix("CONQ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing explicit file falls back to defaults; for the search
		// path only ConfigFileNotFoundError is tolerated.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && configPath == "" {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// GetViper returns the loaded viper instance. It panics before Init.
func GetViper() *viper.Viper {
	if v == nil {
		panic("config not initialized - call Init() first")
	}
	return v
}

// LoadEnvironmentConfig merges config.<env>.yaml over the loaded config
func LoadEnvironmentConfig(env string) error {
	if env == "" {
		return nil
	}

	vp := GetViper()
	envFile := fmt.Sprintf("config.%s.yaml", env)

	vp.SetConfigFile(envFile)
	if err := vp.MergeInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error merging environment config %s: %w", envFile, err)
		}
	}

	if err := vp.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode merged config into struct: %w", err)
	}

	return Validate(cfg)
}

// Set allows runtime config updates
func Set(key string, value any) {
	v.Set(key, value)
	_ = v.Unmarshal(cfg)
}

// GetString gets a string value from config
func GetString(key string) string {
	return v.GetString(key)
}

// GetInt gets an int value from config
func GetInt(key string) int {
	return v.GetInt(key)
}

// GetBool gets a bool value from config
func GetBool(key string) bool {
	return v.GetBool(key)
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// WatchConfig enables hot-reloading of config file. Reloaded values that
// fail validation are reported through onError and the previous config is
// kept.
func WatchConfig(onChange func(*Config), onError func(error)) {
	vp := GetViper()
	vp.OnConfigChange(func(e fsnotify.Event) {
		next := &Config{}
		if err := vp.Unmarshal(next); err != nil {
			if onError != nil {
				onError(fmt.Errorf("reload %s: %w", e.Name, err))
			}
			return
		}
		if err := Validate(next); err != nil {
			if onError != nil {
				onError(fmt.Errorf("reload %s: %w", e.Name, err))
			}
			return
		}
		cfg = next
		if onChange != nil {
			onChange(next)
		}
	})
	vp.WatchConfig()
}

// Validate validates the configuration values
func Validate(c *Config) error {
	r := c.Game.Rules
	if r.MaxDice < 1 {
		return fmt.Errorf("game.rules.max_dice must be at least 1")
	}
	if r.MaxMoveIn < 1 || r.MaxMoveIn > MoveCeiling {
		return fmt.Errorf("game.rules.max_move_in must be between 1 and %d", MoveCeiling)
	}
	if r.MaxOccupyMove < 1 || r.MaxOccupyMove > MoveCeiling {
		return fmt.Errorf("game.rules.max_occupy_move must be between 1 and %d", MoveCeiling)
	}
	switch r.Conqueror {
	case ConquerorMinimum, ConquerorMaximum:
	case ConquerorFixed:
		if r.FixedMoveIn < 1 || r.FixedMoveIn > r.MaxMoveIn {
			return fmt.Errorf("game.rules.fixed_move_in must be between 1 and %d", r.MaxMoveIn)
		}
	default:
		return fmt.Errorf("game.rules.conqueror must be one of minimum, maximum, fixed")
	}
	if r.HistorySize < 1 {
		return fmt.Errorf("game.rules.history_size must be positive")
	}

	s := c.Game.Setup
	if len(s.Players) < 2 {
		return fmt.Errorf("game.setup.players needs at least 2 players")
	}
	seen := make(map[string]bool, len(s.Players))
	for i, p := range s.Players {
		if p.Name == "" {
			return fmt.Errorf("game.setup.players[%d].name must be set", i)
		}
		if seen[p.Name] {
			return fmt.Errorf("game.setup.players[%d].name %q is duplicated", i, p.Name)
		}
		seen[p.Name] = true
	}
	if s.Deal != DealOrdered && s.Deal != DealShuffled {
		return fmt.Errorf("game.setup.deal must be ordered or shuffled")
	}
	if s.Map != MapClassic {
		return fmt.Errorf("game.setup.map %q is not supported", s.Map)
	}

	l := c.Logging
	if !slices.Contains([]string{"console", "json"}, l.Format) {
		return fmt.Errorf("logging.format must be console or json")
	}
	if l.File.Path != "" && l.File.MaxSizeMB < 1 {
		return fmt.Errorf("logging.file.max_size_mb must be positive")
	}
	if l.File.MaxBackups < 0 || l.File.MaxAgeDays < 0 {
		return fmt.Errorf("logging.file retention values must be non-negative")
	}

	return nil
}
