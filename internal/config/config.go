package config

import (
	"bfcore/pkg/interpreter"
	"bfcore/pkg/program"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the interpreter limits read from a YAML file
type Config struct {
	Path      string `yaml:"-"`
	TapeSize  int    `yaml:"tape_size"`  // capacity of the program and data tapes
	LoopLimit int    `yaml:"loop_limit"` // maximum loop nesting
	MaxSteps  int    `yaml:"max_steps"`  // 0 means unlimited
	DumpCells int    `yaml:"dump_cells"` // cells shown by the verbose state dump
}

// ValidationError lists every invalid field of a config file
type ValidationError struct {
	Path    string
	Details []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config %s: %s", e.Path, strings.Join(e.Details, "; "))
}

// Default returns the limits used when no config file is given
func Default() *Config {
	return &Config{
		TapeSize:  program.DefaultCapacity,
		LoopLimit: interpreter.DefaultLoopLimit,
		MaxSteps:  0,
		DumpCells: 16,
	}
}

// Load reads a YAML config file. Missing keys keep their defaults.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	cfg, err := Decode(file)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			verr.Path = path
			return nil, verr
		}
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.Path = path
	return cfg, nil
}

// Decode reads a YAML config from r on top of the defaults
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	var details []string

	if c.TapeSize < 1 {
		details = append(details, "tape_size must be positive")
	}
	if c.LoopLimit < 1 {
		details = append(details, "loop_limit must be positive")
	}
	if c.MaxSteps < 0 {
		details = append(details, "max_steps must not be negative")
	}
	if c.DumpCells < 0 {
		details = append(details, "dump_cells must not be negative")
	}

	if len(details) > 0 {
		return &ValidationError{Path: c.Path, Details: details}
	}

	return nil
}

// Options converts the config into interpreter options
func (c *Config) Options() []interpreter.Option {
	return []interpreter.Option{
		interpreter.WithTapeSize(c.TapeSize),
		interpreter.WithLoopLimit(c.LoopLimit),
		interpreter.WithMaxSteps(c.MaxSteps),
	}
}
