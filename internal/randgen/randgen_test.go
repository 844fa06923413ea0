package randgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextKnownStream(t *testing.T) {
	// Reference values for seed 42, cross-checked against a known-good
	// Mulberry32 implementation.
	want := []float64{
		0.6011037519201636,
		0.44829055899754167,
		0.8524657934904099,
		0.6697340414393693,
		0.17481389874592423,
	}
	s := New(42)
	for i, w := range want {
		require.Equal(t, w, s.Next(), "draw %d", i)
	}
}

func TestDeterminism(t *testing.T) {
	a, b := New(1234), New(1234)
	for i := 0; i < 1000; i++ {
		require.Equal(t, a.Next(), b.Next(), "streams diverged at draw %d", i)
	}
}

func TestNextIntBounds(t *testing.T) {
	s := New(7)
	for i := 0; i < 10000; i++ {
		v := s.NextInt(10, 179)
		require.GreaterOrEqual(t, v, 10)
		require.LessOrEqual(t, v, 179)
	}
}

func TestNextIntSingleton(t *testing.T) {
	s := New(7)
	for i := 0; i < 100; i++ {
		require.Equal(t, 3, s.NextInt(3, 3))
	}
}

func TestChoiceCoversAll(t *testing.T) {
	values := []string{"a", "b", "c", "d"}
	seen := map[string]bool{}
	s := New(99)
	for i := 0; i < 1000; i++ {
		v := s.Choice(values)
		require.Contains(t, values, v)
		seen[v] = true
	}
	assert.Len(t, seen, len(values))
}

func TestShuffleIsPermutation(t *testing.T) {
	values := []string{"a", "b", "c", "d", "e", "f", "g"}
	s := New(5)
	got := s.Shuffle(values)
	assert.ElementsMatch(t, values, got)
	// input untouched
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f", "g"}, values)
}
