package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	gdcs "github.com/yzigangirova/dcs-go"
	"github.com/yzigangirova/dcs-go/imgfile"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"
)

// Config is the on-disk configuration. Every field can also be set by a
// flag of the same name; flags win.
type Config struct {
	Velocity float64     `toml:"velocity"`
	Workers  int         `toml:"workers"`
	Quality  int         `toml:"quality"`
	Batch    BatchConfig `toml:"batch"`
	Model    ModelConfig `toml:"model"`
}

// BatchConfig drives the batch subcommand.
type BatchConfig struct {
	Steps  int     `toml:"steps"`
	Max    float64 `toml:"max"`
	Output string  `toml:"output"`
	Jobs   int     `toml:"jobs"`
}

// ModelConfig overrides the emitter set or the quadrature rule. Zero values
// keep the defaults.
type ModelConfig struct {
	Emitters []EmitterConfig `toml:"emitters"`
	FromNM   int             `toml:"from_nm"`
	ToNM     int             `toml:"to_nm"`
	PerNM    int             `toml:"per_nm"`
}

// EmitterConfig is one display band.
type EmitterConfig struct {
	Peak      float64 `toml:"peak"`
	Width     float64 `toml:"width"`
	Amplitude float64 `toml:"amplitude"`
}

// DefaultConfig renders eleven batch frames from -0.1c to 0.1c.
func DefaultConfig() Config {
	return Config{
		Quality: imgfile.DefaultQuality,
		Batch: BatchConfig{
			Steps:  10,
			Max:    0.1,
			Output: "result_%d.jpg",
		},
	}
}

// LoadConfig reads path over the defaults. An empty path returns the
// defaults. Unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	full, err := homedir.Expand(path)
	if err != nil {
		return cfg, fmt.Errorf("config path: %w", err)
	}
	data, err := os.ReadFile(full)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return cfg, fmt.Errorf("config %s: %s", full, strict.String())
		}
		return cfg, fmt.Errorf("config %s: %w", full, err)
	}
	return cfg, nil
}

// Build returns the model the configuration describes.
func (mc ModelConfig) Build() (gdcs.Model, error) {
	m := gdcs.DefaultModel()
	switch len(mc.Emitters) {
	case 0:
	case 3:
		for i, e := range mc.Emitters {
			a := e.Amplitude
			if a == 0 {
				a = 1
			}
			w := e.Width
			if w == 0 {
				w = gdcs.EmitterWidthNM
			}
			m.Emitters[i] = gdcs.Lobe{A: a, M: e.Peak, S1: w, S2: w}
		}
	default:
		return m, fmt.Errorf("model: need exactly 3 emitters, got %d", len(mc.Emitters))
	}
	if mc.FromNM != 0 {
		m.Quad.From = mc.FromNM
	}
	if mc.ToNM != 0 {
		m.Quad.To = mc.ToNM
	}
	if mc.PerNM != 0 {
		m.Quad.PerNM = mc.PerNM
	}
	return m, nil
}

func addCommonFlags(fs *pflag.FlagSet) {
	fs.Float64("velocity", 0, "observer velocity as a fraction of c, in (-1, 1)")
	fs.Int("workers", 0, "pixel workers per image (0: one per CPU)")
	fs.Int("quality", imgfile.DefaultQuality, "JPEG quality 1..100")
}

// applyFlags copies every flag the user set explicitly over cfg.
func applyFlags(fs *pflag.FlagSet, cfg *Config) error {
	var err error
	set := func(name string, fn func() error) {
		if err != nil {
			return
		}
		if f := fs.Lookup(name); f != nil && f.Changed {
			err = fn()
		}
	}
	set("velocity", func() (e error) { cfg.Velocity, e = fs.GetFloat64("velocity"); return })
	set("workers", func() (e error) { cfg.Workers, e = fs.GetInt("workers"); return })
	set("quality", func() (e error) { cfg.Quality, e = fs.GetInt("quality"); return })
	set("steps", func() (e error) { cfg.Batch.Steps, e = fs.GetInt("steps"); return })
	set("max", func() (e error) { cfg.Batch.Max, e = fs.GetFloat64("max"); return })
	set("out-pattern", func() (e error) { cfg.Batch.Output, e = fs.GetString("out-pattern"); return })
	set("jobs", func() (e error) { cfg.Batch.Jobs, e = fs.GetInt("jobs"); return })
	return err
}
