package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/hypersurface/skeleton"
)

const envPrefix = "HYPERSURFACE"

// Config keys; flags use the same names with '-' instead of '_'.
const (
	keyAxes     = "axes"
	keySide     = "side"
	keyMaxDim   = "max_dim"
	keyFormat   = "format"
	keyVerbose  = "verbose"
	keySteps    = "steps"
	keyDT       = "dt"
	keySeed     = "seed"
	keyImpulse  = "impulse"
	keyLogEvery = "log_every"
)

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
	formatCSV  = "csv"
)

// ErrBadFormat indicates an unsupported --format value.
var ErrBadFormat = errors.New("hypersurface: unsupported output format")

// config is the resolved run configuration: defaults < config file < env < flags.
type config struct {
	Axes     int     `mapstructure:"axes"`
	Side     int     `mapstructure:"side"`
	MaxDim   int     `mapstructure:"max_dim"`
	Format   string  `mapstructure:"format"`
	Verbose  bool    `mapstructure:"verbose"`
	Steps    int     `mapstructure:"steps"`
	DT       float64 `mapstructure:"dt"`
	Seed     int64   `mapstructure:"seed"`
	Impulse  string  `mapstructure:"impulse"`
	LogEvery int     `mapstructure:"log_every"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(keyAxes, 3)
	v.SetDefault(keySide, 16)
	v.SetDefault(keyMaxDim, 2)
	v.SetDefault(keyFormat, formatText)
	v.SetDefault(keySteps, 100)
	v.SetDefault(keyDT, 0.01)
	v.SetDefault(keySeed, 1)
	v.SetDefault(keyLogEvery, 0)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// bindFlags binds every flag of fs under its config key.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Name == "config" {
			return
		}
		err = v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
	})

	return err
}

// loadConfig reads the optional config file and decodes the merged settings.
func loadConfig(v *viper.Viper, file string) (config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	}
	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return config{}, fmt.Errorf("decode config: %w", err)
	}
	switch cfg.Format {
	case formatText, formatJSON, formatYAML, formatCSV:
	default:
		return config{}, fmt.Errorf("%w: %q", ErrBadFormat, cfg.Format)
	}

	return cfg, nil
}

// meta builds the skeleton described by cfg.
func (cfg config) meta() (skeleton.Meta, error) {
	return skeleton.New(cfg.Axes, cfg.Side, cfg.MaxDim)
}
