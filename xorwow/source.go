package xorwow

import "math/rand"

var _ rand.Source64 = (*Generator)(nil)

// Int63 lets a Generator back a math/rand.Rand. It drops the top bit of Uint64.
func (g *Generator) Int63() int64 {
	return int64(g.Uint64() >> 1)
}
