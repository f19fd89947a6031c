package config

import "time"

type Server struct {
	Address  string        `yaml:"address,omitempty"`
	Samples  int           `yaml:"samples,omitempty"`
	CacheTTL time.Duration `yaml:"cacheTTL,omitempty"`
	MaxBytes int           `yaml:"maxBytes,omitempty"`
	TLS      bool          `yaml:"tls,omitempty"`
	Hosts    []string      `yaml:"hosts,omitempty"`
}

func DefaultServer() Server {
	return Server{
		Address:  ":8080",
		Samples:  1 << 20,
		CacheTTL: 5 * time.Minute,
		MaxBytes: 1 << 24,
		Hosts:    []string{"localhost", "127.0.0.1"},
	}
}
