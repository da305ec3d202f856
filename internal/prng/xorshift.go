// Package prng provides a tiny deterministic pseudo-random generator used for
// weight initialization.
//
// It is not cryptographically secure and must not be used for anything but
// reproducible initialization.
package prng

// defaultSeed replaces a zero seed, which would lock xorshift at zero forever.
const defaultSeed uint32 = 0x6d2b79f5

// XorShift32 is Marsaglia's 32-bit xorshift generator.
type XorShift32 struct {
	state uint32
}

// New creates a generator. A zero seed is replaced with a fixed non-zero one.
func New(seed uint32) *XorShift32 {
	if seed == 0 {
		seed = defaultSeed
	}
	return &XorShift32{state: seed}
}

// Uint32 returns the next raw 32-bit value.
func (r *XorShift32) Uint32() uint32 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Float32 returns a uniform value in [0, 1) built from the top 24 bits.
func (r *XorShift32) Float32() float32 {
	v := r.Uint32() >> 8
	return float32(v) / float32(1<<24)
}

// Range returns a uniform value in [lo, hi).
func (r *XorShift32) Range(lo, hi float32) float32 {
	return lo + (hi-lo)*r.Float32()
}

// Fill overwrites dst with uniform values in [lo, hi).
func (r *XorShift32) Fill(dst []float32, lo, hi float32) {
	for i := range dst {
		dst[i] = r.Range(lo, hi)
	}
}
