// Package config holds lvreduce's tunables, read from YAML and validated with
// struct tags.
package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvreduce/coloring"
	"github.com/katalvlaran/lvreduce/friends"
	"github.com/katalvlaran/lvreduce/perfect"
)

// ErrInvalidConfig wraps every parse or validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full set of analysis settings.
//
//	cutoff: 3            # friend-pair path cutoff, in edges
//	max_steps: 0         # contraction cap, 0 = run to fixpoint
//	vertex_count: 0      # declared vertex bound 1..n, 0 = none
//	odd_cycle_min: 5     # shortest odd hole/antihole considered
//	palette: ["#CA3C66", "#A7E0E0"]
//	color: auto          # auto | always | never
//	verbosity: 0
type Config struct {
	Cutoff      int      `yaml:"cutoff" validate:"min=1,max=8"`
	MaxSteps    int      `yaml:"max_steps" validate:"min=0"`
	VertexCount int      `yaml:"vertex_count" validate:"min=0"`
	OddCycleMin int      `yaml:"odd_cycle_min" validate:"min=3,odd"`
	Palette     []string `yaml:"palette" validate:"min=1,dive,hexcolor"`
	Color       string   `yaml:"color" validate:"oneof=auto always never"`
	Verbosity   int      `yaml:"verbosity" validate:"min=0,max=10"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("odd", func(fl validator.FieldLevel) bool {
		return fl.Field().Int()%2 == 1
	})
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Cutoff:      friends.DefaultCutoff,
		OddCycleMin: perfect.DefaultMinLength,
		Palette:     append([]string(nil), coloring.DefaultPalette...),
		Color:       "auto",
	}
}

// Validate checks c against its tags.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "%v", err)
	}

	return nil
}

// Parse overlays YAML data on Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(ErrInvalidConfig, "yaml: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "read config %s", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config %s", path)
	}

	return cfg, nil
}
