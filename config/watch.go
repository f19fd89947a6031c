package config

import "time"

type Watch struct {
	Enabled  bool          `yaml:"enabled,omitempty"`
	Debounce time.Duration `yaml:"debounce,omitempty"`
}

func DefaultWatch() Watch {
	return Watch{Debounce: time.Second}
}
