// Package randgen implements the seeded pseudo-random source used by the
// fixture generators. It is a Mulberry32 generator with 32-bit state, so the
// same seed yields the same stream on every host and every run. The fixture
// layout (page counts, suspicious-entry positions, clue placement) depends on
// this stream; changing the algorithm or the draw order invalidates every
// dataset already shipped to players.
package randgen

import "math"

// Source is a deterministic random source. Not safe for concurrent use.
type Source struct {
	state uint32
}

func New(seed uint32) *Source {
	return &Source{state: seed}
}

// Next returns the next value in [0, 1).
func (s *Source) Next() float64 {
	s.state += 0x6D2B79F5
	t := s.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296
}

// NextInt returns an integer in [min, max], inclusive on both ends.
func (s *Source) NextInt(min, max int) int {
	return int(math.Floor(s.Next()*float64(max-min+1))) + min
}

// Choice returns a uniformly drawn element of values.
func (s *Source) Choice(values []string) string {
	return values[s.NextInt(0, len(values)-1)]
}

// Shuffle returns a Fisher-Yates shuffled copy of values, built only from
// NextInt so the stream stays reproducible.
func (s *Source) Shuffle(values []string) []string {
	out := append([]string(nil), values...)
	for i := len(out) - 1; i > 0; i-- {
		j := s.NextInt(0, i)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
