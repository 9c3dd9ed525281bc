package ssdeep

// rollingState is a 7-byte sliding-window hash. It exists only to decide
// where a block hash should cut its digest; it never contributes a
// character to a digest itself. Owned exclusively by one FuzzyState; never
// shared across goroutines.
type rollingState struct {
	window [rollingWindow]byte
	pos    uint32
	h1     uint32
	h2     uint32
	h3     uint32
}

// update folds one byte into the window. All arithmetic is 32-bit and
// wraps, matching the reference implementation's unsigned semantics.
func (r *rollingState) update(c byte) {
	u := uint32(c)

	r.h2 -= r.h1
	r.h2 += rollingWindow * u

	r.h1 += u
	r.h1 -= uint32(r.window[r.pos])

	r.window[r.pos] = c
	r.pos++
	if r.pos == rollingWindow {
		r.pos = 0
	}

	r.h3 <<= 5
	r.h3 ^= u
}

// sum returns h1+h2+h3, the value whose proximity to a multiple of a block
// size signals a trigger.
func (r *rollingState) sum() uint32 {
	return r.h1 + r.h2 + r.h3
}
