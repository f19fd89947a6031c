package config

import (
	"errors"
	"fmt"
	"github.com/fernandosanchezjr/sungod/xorwow"
)

const (
	FormatHex = "hex"
	FormatDec = "dec"
	FormatRaw = "raw"
)

var (
	ErrInvalidWidth  = errors.New("invalid width")
	ErrInvalidFormat = errors.New("invalid format")
	ErrInvalidCount  = errors.New("invalid count")
)

var widths = map[int]bool{1: true, 8: true, 16: true, 32: true, 64: true, 128: true}

type Config struct {
	Seed     *uint64 `yaml:"seed,omitempty"`
	Format   string  `yaml:"format,omitempty"`
	Width    int     `yaml:"width,omitempty"`
	Count    int     `yaml:"count,omitempty"`
	LogLevel string  `yaml:"logLevel,omitempty"`
	LogFile  bool    `yaml:"logFile,omitempty"`
	Bench    Bench   `yaml:"bench,omitempty"`
	Server   Server  `yaml:"server,omitempty"`
	Watch    Watch   `yaml:"watch,omitempty"`
}

func Default() *Config {
	return &Config{
		Format:   FormatHex,
		Width:    32,
		Count:    16,
		LogLevel: "info",
		Bench:    DefaultBench(),
		Server:   DefaultServer(),
		Watch:    DefaultWatch(),
	}
}

func (c *Config) Validate() error {
	if !widths[c.Width] {
		return fmt.Errorf("%w: %d", ErrInvalidWidth, c.Width)
	}
	switch c.Format {
	case FormatHex, FormatDec, FormatRaw:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Format)
	}
	if c.Count < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCount, c.Count)
	}
	return nil
}

// Generator is seeded from Seed when set and from crypto/rand otherwise.
func (c *Config) Generator() *xorwow.Generator {
	if c.Seed != nil {
		return xorwow.NewSeeded(*c.Seed)
	}
	return xorwow.New()
}
