// Package xorwow implements Marsaglia's xorwow pseudo-random generator: a five
// word xor-shift register combined with a Weyl counter.
//
// A Generator is a plain value with no internal locking. Use one per goroutine,
// or guard a shared one yourself. It is not suitable for cryptographic use.
package xorwow

import (
	"crypto/rand"
	"encoding/binary"
	log "github.com/sirupsen/logrus"
	"io"
	"sync/atomic"
)

// Increment is added to the counter word on every step.
const Increment uint32 = 362437

// FallbackSeed seeds New when no entropy can be read.
const FallbackSeed uint64 = 0x5eed5eed5eed5eed

// SeedSize is the number of seed bytes that map directly onto the state.
const SeedSize = 24

// marsaglia replaces an all-zero shift register.
var marsaglia = [5]uint32{123456789, 362436069, 521288629, 88675123, 5783321}

var fallbacks uint64

type Generator struct {
	x, y, z, w, v uint32
	d             uint32
}

// New returns a generator seeded from crypto/rand.
func New() *Generator {
	return NewWithEntropy(rand.Reader)
}

// NewWithEntropy seeds a generator with SeedSize bytes read from r. A failed or
// short read does not return an error: the generator is seeded from
// FallbackSeed mixed with a process-wide construction counter instead.
func NewWithEntropy(r io.Reader) *Generator {
	var seed [SeedSize]byte
	if r != nil {
		if _, err := io.ReadFull(r, seed[:]); err != nil {
			log.WithError(err).Warn("Entropy unavailable, using fallback seed")
		} else {
			return NewFromBytes(seed[:])
		}
	}
	return NewSeeded(FallbackSeed ^ atomic.AddUint64(&fallbacks, 1))
}

// NewSeeded returns a generator whose output depends only on seed.
func NewSeeded(seed uint64) *Generator {
	g := &Generator{}
	g.Seed(int64(seed))
	return g
}

// NewFromBytes loads seed as little-endian words in state order x, y, z, w, v, d.
// Short seeds are zero padded; bytes past SeedSize are xored back over the
// words from the start.
func NewFromBytes(seed []byte) *Generator {
	var words [6]uint32
	var buf [4]byte
	for i := 0; i < len(seed); i += 4 {
		buf = [4]byte{}
		copy(buf[:], seed[i:])
		words[(i/4)%len(words)] ^= binary.LittleEndian.Uint32(buf[:])
	}
	return NewFromWords(words)
}

// NewFromWords sets the exact state, in order x, y, z, w, v, d.
func NewFromWords(words [6]uint32) *Generator {
	g := &Generator{}
	g.load(words)
	return g
}

// Seed resets g to the state NewSeeded(uint64(seed)) would produce. The seed is
// expanded with three splitmix64 steps, low half of each output first.
func (g *Generator) Seed(seed int64) {
	var words [6]uint32
	state := uint64(seed)
	var out uint64
	for i := 0; i < len(words); i += 2 {
		state, out = splitmix64(state)
		words[i] = uint32(out)
		words[i+1] = uint32(out >> 32)
	}
	g.load(words)
}

func (g *Generator) load(words [6]uint32) {
	g.x, g.y, g.z, g.w, g.v, g.d = words[0], words[1], words[2], words[3], words[4], words[5]
	if g.x|g.y|g.z|g.w|g.v == 0 {
		g.x, g.y, g.z, g.w, g.v = marsaglia[0], marsaglia[1], marsaglia[2], marsaglia[3], marsaglia[4]
	}
}

// Next advances the state by one step and returns the output word.
func (g *Generator) Next() uint32 {
	t, s := g.x, g.v
	t ^= t >> 2
	t ^= t << 1
	t ^= s ^ (s << 4)
	g.x, g.y, g.z, g.w, g.v = g.y, g.z, g.w, g.v, t
	g.d += Increment
	return g.v + g.d
}

func splitmix64(state uint64) (uint64, uint64) {
	state += 0x9e3779b97f4a7c15
	z := state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return state, z ^ (z >> 31)
}

// State returns the current words in order x, y, z, w, v, d. Passing them to
// NewFromWords yields a generator that continues the same sequence.
func (g *Generator) State() [6]uint32 {
	return [6]uint32{g.x, g.y, g.z, g.w, g.v, g.d}
}
