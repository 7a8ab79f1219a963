// Package shuffle permutes room footprints between interchangeable rooms and
// repairs doors so every room opens toward a corridor afterwards.
package shuffle

// Mulberry32 is a small 32-bit seeded generator. Sequences are identical for
// identical seeds on every platform
type Mulberry32 struct {
	state uint32
}

// NewMulberry32 seeds the generator. Zero is replaced by 1
func NewMulberry32(seed uint32) *Mulberry32 {
	if seed == 0 {
		seed = 1
	}
	return &Mulberry32{state: seed}
}

// Uint32 advances the state and returns the next raw output
func (m *Mulberry32) Uint32() uint32 {
	m.state += 0x6D2B79F5
	t := m.state
	r := (t ^ t>>15) * (1 | t)
	r ^= r + (r^r>>7)*(61|r)
	return r ^ r>>14
}

// Float64 returns the next value in [0,1)
func (m *Mulberry32) Float64() float64 {
	return float64(m.Uint32()) / 4294967296
}

// Intn returns a value in [0,n). n must be positive
func (m *Mulberry32) Intn(n int) int {
	return int(m.Float64() * float64(n))
}

// Perm returns a Fisher-Yates permutation of [0,n), walking i from n-1 down to 1
func (m *Mulberry32) Perm(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := m.Intn(i + 1)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx
}
