package domain

import (
	"testing"

	m "github.com/mouse-blink/breach/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCodeMatrix(t *testing.T) {
	matrix, err := NewCodeMatrix([][]m.Code{
		{"c9", "b2", "74"},
		{"a1", "65", "c9"},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, matrix.Rows())
	assert.Equal(t, 3, matrix.Cols())
	assert.Equal(t, m.Code("65"), matrix.Get(1, 1))
	assert.True(t, matrix.InBounds(m.Coord{Row: 1, Col: 2}))
	assert.False(t, matrix.InBounds(m.Coord{Row: 2, Col: 0}))
	assert.False(t, matrix.InBounds(m.Coord{Row: 0, Col: 3}))
}

func TestNewCodeMatrix_Errors(t *testing.T) {
	_, err := NewCodeMatrix(nil)
	require.ErrorIs(t, err, ErrEmptyMatrix)

	_, err = NewCodeMatrix([][]m.Code{{}})
	require.ErrorIs(t, err, ErrEmptyMatrix)

	_, err = NewCodeMatrix([][]m.Code{{"a1", "b2"}, {"c3"}})
	require.ErrorIs(t, err, ErrRaggedMatrix)
	assert.Contains(t, err.Error(), "row 1")
}

func TestCodeMatrix_IsImmutable(t *testing.T) {
	rows := [][]m.Code{{"a1", "b2"}}
	matrix := MustCodeMatrix(rows)

	rows[0][0] = "zz"
	assert.Equal(t, m.Code("a1"), matrix.Get(0, 0))

	table := matrix.Table()
	table[0][1] = "zz"
	assert.Equal(t, m.Code("b2"), matrix.Get(0, 1))
}

func TestCodeMatrix_GetOutOfBoundsPanics(t *testing.T) {
	matrix := sampleMatrix()

	assert.PanicsWithValue(t, "code matrix: coordinate (5, 0) outside 5x5 matrix", func() {
		matrix.Get(5, 0)
	})
}

func TestMustCodeMatrix_Panics(t *testing.T) {
	assert.Panics(t, func() { MustCodeMatrix(nil) })
}
