package config

type Bench struct {
	Samples int      `yaml:"samples,omitempty"`
	Sources []string `yaml:"sources,omitempty"`
}

func DefaultBench() Bench {
	return Bench{Samples: 1 << 22}
}
