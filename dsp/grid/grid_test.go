package grid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-localortho/dsp/core"
)

func TestNewLayout(t *testing.T) {
	g := New(2, 3, 4)

	assert.Equal(t, []int{2, 3, 4}, g.Shape())
	assert.Equal(t, 3, g.NDim())
	assert.Equal(t, 24, g.Len())
	assert.Equal(t, 12, g.Stride(0))
	assert.Equal(t, 4, g.Stride(1))
	assert.Equal(t, 1, g.Stride(2))

	g.Set(7, 1, 2, 3)
	assert.Equal(t, 7.0, g.Data[23])
	assert.Equal(t, 7.0, g.At(1, 2, 3))
}

func TestShapeIsImmutable(t *testing.T) {
	g := New(3, 3)
	s := g.Shape()
	s[0] = 99
	assert.Equal(t, 3, g.Dim(0))
}

func TestFromSlice(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}

	g, err := FromSlice(data, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 6.0, g.At(1, 2))

	_, err = FromSlice(data, 4, 2)
	require.ErrorIs(t, err, ErrDataLength)
	require.ErrorIs(t, err, core.ErrConfiguration)
}

func TestValidateShape(t *testing.T) {
	tests := []struct {
		name  string
		shape []int
		ok    bool
	}{
		{name: "1d", shape: []int{5}, ok: true},
		{name: "3d", shape: []int{2, 2, 1}, ok: true},
		{name: "empty", shape: nil},
		{name: "zero axis", shape: []int{3, 0}},
		{name: "negative axis", shape: []int{-1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateShape(tt.shape)
			if tt.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidShape)
		})
	}
}

func TestIndexPanics(t *testing.T) {
	g := New(2, 2)
	assert.Panics(t, func() { g.At(2, 0) })
	assert.Panics(t, func() { g.At(0) })
	assert.Panics(t, func() { New(0, 2) })
}

func TestCheckSameShape(t *testing.T) {
	a := New(10, 10)
	b := New(10, 11)

	require.NoError(t, CheckSameShape(a, New(10, 10), ZerosLike(a)))

	err := CheckSameShape(a, b)
	require.ErrorIs(t, err, ErrShapeMismatch)
	require.True(t, errors.Is(err, core.ErrConfiguration))

	err = CheckSameShape(a, nil)
	require.ErrorIs(t, err, ErrInvalidShape)
}

func TestArithmetic(t *testing.T) {
	a, err := FromSlice([]float64{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)
	b, err := FromSlice([]float64{4, 3, 2, 1}, 2, 2)
	require.NoError(t, err)

	sum, err := Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 5, 5, 5}, sum.Data)

	diff, err := Sub(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{-3, -1, 1, 3}, diff.Data)

	prod, err := Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 6, 6, 4}, prod.Data)

	// inputs untouched
	assert.Equal(t, []float64{1, 2, 3, 4}, a.Data)

	_, err = Add(a, New(4))
	require.ErrorIs(t, err, ErrShapeMismatch)
}

func TestClone(t *testing.T) {
	a := New(3)
	a.Data[0] = 1
	c := a.Clone()
	c.Data[0] = 2

	assert.Equal(t, 1.0, a.Data[0])
	assert.True(t, a.SameShape(c))
	assert.Equal(t, "Grid[3]", c.String())
}
