package bench

import (
	"fmt"
	"github.com/fernandosanchezjr/sungod/xorwow"
	"gonum.org/v1/gonum/mathext/prng"
	"math/rand"
	"sort"
)

type Source64 interface {
	Uint64() uint64
}

type SourceFactory func(seed uint64) Source64

const (
	Xorwow   = "xorwow"
	Xoshiro  = "xoshiro256**"
	MT19937  = "mt19937-64"
	MathRand = "math/rand"
)

var factories = map[string]SourceFactory{
	Xorwow: func(seed uint64) Source64 {
		return xorwow.NewSeeded(seed)
	},
	Xoshiro: func(seed uint64) Source64 {
		return prng.NewXoshiro256starstar(seed)
	},
	MT19937: func(seed uint64) Source64 {
		mt := prng.NewMT19937_64()
		mt.Seed(seed)
		return mt
	},
	MathRand: func(seed uint64) Source64 {
		return rand.New(rand.NewSource(int64(seed)))
	},
}

func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func NewSource(name string, seed uint64) (Source64, error) {
	factory, found := factories[name]
	if !found {
		return nil, fmt.Errorf("unknown source %q", name)
	}
	return factory(seed), nil
}
