package analytics

import "github.com/fernandosanchezjr/sungod/xorwow"

// CycleCheck advances g up to steps times and returns the first step at which
// the five-word register repeats an earlier value. found is false when no
// repeat occurs within steps.
func CycleCheck(g *xorwow.Generator, steps int) (step int, found bool) {
	seen := make(map[[5]uint32]struct{}, steps)
	var register [5]uint32
	for step = 0; step < steps; step++ {
		state := g.State()
		copy(register[:], state[:5])
		if _, found = seen[register]; found {
			return step, true
		}
		seen[register] = struct{}{}
		g.Next()
	}
	return steps, false
}
