package xorwow

import (
	"fmt"
	"strconv"
)

// Uint128 is assembled from four output words, least significant first.
type Uint128 struct {
	Lo uint64
	Hi uint64
}

func (u Uint128) String() string {
	return fmt.Sprintf("%016x%016x", u.Hi, u.Lo)
}

type Int128 struct {
	Lo uint64
	Hi int64
}

func (i Int128) String() string {
	return fmt.Sprintf("%016x%016x", uint64(i.Hi), i.Lo)
}

// Sampleable is the closed set of types Sample can produce.
type Sampleable interface {
	uint8 | int8 | uint16 | int16 | uint32 | int32 | uint64 | int64 | uint | int |
		bool | Uint128 | Int128 | [4]byte | [8]byte | [16]byte | [32]byte
}

// Sample draws a value of type T from g using the same rules as the matching
// method: widths up to 32 bits take the low bits of one word, wider types take
// successive words least significant first, byte arrays are filled as by Read.
func Sample[T Sampleable](g *Generator) T {
	var value T
	switch p := any(&value).(type) {
	case *uint8:
		*p = g.Uint8()
	case *int8:
		*p = g.Int8()
	case *uint16:
		*p = g.Uint16()
	case *int16:
		*p = g.Int16()
	case *uint32:
		*p = g.Uint32()
	case *int32:
		*p = g.Int32()
	case *uint64:
		*p = g.Uint64()
	case *int64:
		*p = g.Int64()
	case *uint:
		*p = g.Uint()
	case *int:
		*p = g.Int()
	case *bool:
		*p = g.Bool()
	case *Uint128:
		*p = g.Uint128()
	case *Int128:
		*p = g.Int128()
	case *[4]byte:
		g.Fill(p[:])
	case *[8]byte:
		g.Fill(p[:])
	case *[16]byte:
		g.Fill(p[:])
	case *[32]byte:
		g.Fill(p[:])
	}
	return value
}

func (g *Generator) Bool() bool {
	return g.Next()&1 == 1
}

func (g *Generator) Uint8() uint8 {
	return uint8(g.Next())
}

func (g *Generator) Int8() int8 {
	return int8(g.Next())
}

func (g *Generator) Uint16() uint16 {
	return uint16(g.Next())
}

func (g *Generator) Int16() int16 {
	return int16(g.Next())
}

func (g *Generator) Uint32() uint32 {
	return g.Next()
}

func (g *Generator) Int32() int32 {
	return int32(g.Next())
}

// Uint64 joins two words, the first drawn in the low half.
func (g *Generator) Uint64() uint64 {
	lo := uint64(g.Next())
	return lo | uint64(g.Next())<<32
}

func (g *Generator) Int64() int64 {
	return int64(g.Uint64())
}

// Uint draws one word on 32-bit platforms and two otherwise.
func (g *Generator) Uint() uint {
	if strconv.IntSize == 32 {
		return uint(g.Next())
	}
	return uint(g.Uint64())
}

func (g *Generator) Int() int {
	return int(g.Uint())
}

func (g *Generator) Uint128() Uint128 {
	lo := g.Uint64()
	return Uint128{Lo: lo, Hi: g.Uint64()}
}

func (g *Generator) Int128() Int128 {
	u := g.Uint128()
	return Int128{Lo: u.Lo, Hi: int64(u.Hi)}
}

// Fill writes one word per four bytes of p, low byte first. Bytes of the last
// word that do not fit are dropped, they are not carried into the next call.
func (g *Generator) Fill(p []byte) {
	var word uint32
	for i := 0; i < len(p); i += 4 {
		word = g.Next()
		for j := i; j < i+4 && j < len(p); j++ {
			p[j] = byte(word)
			word >>= 8
		}
	}
}

func (g *Generator) Bytes(n int) []byte {
	if n <= 0 {
		return nil
	}
	p := make([]byte, n)
	g.Fill(p)
	return p
}

// Read fills p and always returns len(p), nil.
func (g *Generator) Read(p []byte) (int, error) {
	g.Fill(p)
	return len(p), nil
}
