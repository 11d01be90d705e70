package localortho

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombine(t *testing.T) {
	tests := []struct {
		c      Combinator
		r1, r2 float64
		want   float64
	}{
		{Geometric, 0.25, 1, 0.5},
		{Geometric, -0.25, 1, 0.5},
		{Geometric, 2, 3, 1},
		{Arithmetic, 0.2, -0.4, 0.3},
		{Minimum, 0.2, -0.4, 0.2},
		{Minimum, 0, 5, 0},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, tt.c.Combine(tt.r1, tt.r2), 1e-15, "%v(%v, %v)", tt.c, tt.r1, tt.r2)
		assert.Equal(t, tt.c.Combine(tt.r1, tt.r2), tt.c.Combine(tt.r2, tt.r1))
	}
}

func TestParseCombinator(t *testing.T) {
	for _, c := range []Combinator{Geometric, Arithmetic, Minimum} {
		got, err := ParseCombinator(" " + c.String() + " ")
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	_, err := ParseCombinator("harmonic")
	require.ErrorIs(t, err, ErrCombinator)
	assert.Equal(t, "Combinator(9)", Combinator(9).String())
}
