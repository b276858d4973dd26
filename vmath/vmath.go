package vmath

// --- Scalars ---

// Clamp restricts v to [lo, hi]; lo <= hi is assumed and not checked
func Clamp(v, lo, hi float64) float64 {
	return min(hi, max(lo, v))
}

// Lerp interpolates linearly between a (t=0) and b (t=1)
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Saturate restricts a normalized fraction to [0, 1]
func Saturate(t float64) float64 {
	return Clamp(t, 0, 1)
}

// --- Randomness ---

// Rand is the random source consumed by spawning and cosmetic seeding
// FastRand satisfies it; tests may inject scripted sources
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// FastRand is a xorshift64 generator, deterministic for a given seed
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Intn returns a value in [0, n); 0 for n <= 0
func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0, 1) using the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}
