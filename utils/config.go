package utils

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"
)

const (
	// MinMapSize is the smallest grid edge the simulation accepts.
	MinMapSize     = 10
	DefaultMapSize = 25

	// MinInterval and DefaultInterval are in milliseconds.
	MinInterval     = 1
	DefaultInterval = 250

	DefaultProbability = 0.20

	DefaultScale = 16
)

// Config holds the configuration for a simulation run
type Config struct {
	MapSize        int     `json:"map_size"`
	Interval       int     `json:"interval"`
	Probability    float64 `json:"probability"`
	Seed           int64   `json:"seed"`
	MaxGenerations int     `json:"max_generations"`
	UseMemoryPool  bool    `json:"use_memory_pool"`
	ClearScreen    bool    `json:"clear_screen"`
	Window         bool    `json:"window"`
	Scale          int     `json:"scale"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		MapSize:       DefaultMapSize,
		Interval:      DefaultInterval,
		Probability:   DefaultProbability,
		UseMemoryPool: true,
		ClearScreen:   true,
		Scale:         DefaultScale,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.MapSize, "map-size", c.MapSize, "The dimensions of the map in grids (min. 10)")
	fs.IntVar(&c.Interval, "interval", c.Interval, "The animation delay interval (in milliseconds)")
	fs.Float64Var(&c.Probability, "probability", c.Probability, "probability that a cell starts alive, in (0, 1)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial grid (0 seeds from the clock)")
	fs.IntVar(&c.MaxGenerations, "max-generations", c.MaxGenerations, "stop after this many generations (0 runs until interrupted)")
	fs.BoolVar(&c.UseMemoryPool, "pool", c.UseMemoryPool, "recycle grids between generations")
	fs.BoolVar(&c.ClearScreen, "clear", c.ClearScreen, "clear the terminal before each frame")
	fs.BoolVar(&c.Window, "window", c.Window, "render in a window (requires the ebiten build tag)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "window pixels per cell")
}

// Normalize applies the fallback policy for out-of-range sizes and
// intervals: values below the minimum are ignored and the default is kept.
func (c *Config) Normalize() {
	if c.MapSize < MinMapSize {
		c.MapSize = DefaultMapSize
	}
	if c.Interval < MinInterval {
		c.Interval = DefaultInterval
	}
	if c.Scale < 1 {
		c.Scale = DefaultScale
	}
}

// Validate reports values that have no fallback.
func (c Config) Validate() error {
	if !(c.Probability > 0 && c.Probability < 1) {
		return &ConfigurationError{Field: "probability", Value: c.Probability, Reason: "must be within (0, 1)"}
	}
	if c.MaxGenerations < 0 {
		return &ConfigurationError{Field: "max_generations", Value: c.MaxGenerations, Reason: "must not be negative"}
	}
	return nil
}

// IntervalDuration returns the step interval as a time.Duration.
func (c Config) IntervalDuration() time.Duration {
	return time.Duration(c.Interval) * time.Millisecond
}

/*
ParseArgs builds a Config from command-line arguments.

When -config names a JSON file it is loaded first and any flags given
explicitly on the command line override the values from the file. The result
is normalized and validated before it is returned.
*/
func ParseArgs(name string, args []string) (Config, error) {
	var (
		config     = DefaultConfig()
		configPath string
		fs         = flag.NewFlagSet(name, flag.ContinueOnError)
	)
	config.Bind(fs)
	fs.StringVar(&configPath, "config", "", "optional JSON configuration file")

	if err := fs.Parse(args); err != nil {
		return config, errors.Wrap(err, "[ParseArgs] failed to parse flags")
	}

	if configPath != "" {
		fileConfig, err := LoadConfig(configPath)
		if err != nil {
			return config, err
		}

		overrides := flag.NewFlagSet(name, flag.ContinueOnError)
		fileConfig.Bind(overrides)

		var setErr error
		fs.Visit(func(f *flag.Flag) {
			if setErr != nil || f.Name == "config" {
				return
			}
			setErr = overrides.Set(f.Name, f.Value.String())
		})
		if setErr != nil {
			return config, errors.Wrap(setErr, "[ParseArgs] failed to apply flag overrides")
		}
		config = fileConfig
	}

	config.Normalize()
	if err := config.Validate(); err != nil {
		return config, errors.Wrap(err, "[ParseArgs] invalid configuration")
	}
	return config, nil
}
