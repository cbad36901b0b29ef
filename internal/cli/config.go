package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// StageConfig describes one pipeline stage in the config file.
type StageConfig struct {
	Op          string    `mapstructure:"op"`
	P           *float64  `mapstructure:"p"`
	PBatch      *float64  `mapstructure:"p_batch"`
	SameOnBatch bool      `mapstructure:"same_on_batch"`
	Height      int       `mapstructure:"height"`
	Width       int       `mapstructure:"width"`
	Scale       []float64 `mapstructure:"scale"`
	Ratio       []float64 `mapstructure:"ratio"`
	Value       float64   `mapstructure:"value"`
}

// Config holds the CLI configuration.
type Config struct {
	Seed     int64         `mapstructure:"seed"`
	OutDir   string        `mapstructure:"out_dir"`
	MaxDim   int           `mapstructure:"max_dim"`
	Pipeline []StageConfig `mapstructure:"pipeline"`
}

// LoadOptions configures Load.
type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

// DefaultConfig returns the built-in defaults: a horizontal flip pipeline
// writing next to the inputs.
func DefaultConfig() Config {
	return Config{
		Seed:   1,
		OutDir: "",
		MaxDim: 0,
		Pipeline: []StageConfig{
			{Op: "hflip"},
		},
	}
}

// RegisterFlags registers the config-backed flags.
func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.Int64("seed", defaults.Seed, "Random seed for parameter sampling")
	fs.String("out-dir", defaults.OutDir, "Output directory (default: next to each input)")
	fs.Int("max-dim", defaults.MaxDim, "Downscale inputs so the longest side is at most this (0 disables)")
}

// Load merges defaults, config file, environment and flags, in increasing
// order of precedence.
func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	v.SetDefault("seed", opts.Defaults.Seed)
	v.SetDefault("out_dir", opts.Defaults.OutDir)
	v.SetDefault("max_dim", opts.Defaults.MaxDim)
	v.SetDefault("pipeline", opts.Defaults.Pipeline)

	if opts.Cmd != nil {
		fs := opts.Cmd.Flags()
		for flag, key := range map[string]string{
			"seed":    "seed",
			"out-dir": "out_dir",
			"max-dim": "max_dim",
		} {
			f := fs.Lookup(flag)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, fmt.Errorf("bind flag %s: %w", flag, err)
			}
		}
	}

	v.SetEnvPrefix("AUGMENT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}
