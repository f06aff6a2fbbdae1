package domain

import (
	"fmt"

	m "github.com/mouse-blink/breach/internal/model"
)

// CodeMatrix is an immutable rectangular grid of codes.
type CodeMatrix struct {
	rows [][]m.Code
	cols int
}

// NewCodeMatrix copies rows into a new matrix. Every row must have the width
// of the first one.
func NewCodeMatrix(rows [][]m.Code) (*CodeMatrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyMatrix
	}

	cols := len(rows[0])
	copied := make([][]m.Code, len(rows))

	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d codes, want %d", ErrRaggedMatrix, i, len(row), cols)
		}

		copied[i] = append([]m.Code(nil), row...)
	}

	return &CodeMatrix{rows: copied, cols: cols}, nil
}

// MustCodeMatrix is like NewCodeMatrix but panics on error.
func MustCodeMatrix(rows [][]m.Code) *CodeMatrix {
	matrix, err := NewCodeMatrix(rows)
	if err != nil {
		panic(err)
	}

	return matrix
}

// Rows returns the number of rows.
func (cm *CodeMatrix) Rows() int {
	return len(cm.rows)
}

// Cols returns the width shared by all rows.
func (cm *CodeMatrix) Cols() int {
	return cm.cols
}

// InBounds reports whether c addresses a cell of the matrix.
func (cm *CodeMatrix) InBounds(c m.Coord) bool {
	return c.Row < uint(len(cm.rows)) && c.Col < uint(cm.cols)
}

// Get returns the code at (row, col). Callers must only pass coordinates
// produced by a buffer whose indices were bounds-checked; anything else panics.
func (cm *CodeMatrix) Get(row, col uint) m.Code {
	if !cm.InBounds(m.Coord{Row: row, Col: col}) {
		panic(fmt.Sprintf("code matrix: coordinate (%d, %d) outside %dx%d matrix", row, col, len(cm.rows), cm.cols))
	}

	return cm.rows[row][col]
}

// Table returns a deep copy of the rows.
func (cm *CodeMatrix) Table() [][]m.Code {
	out := make([][]m.Code, len(cm.rows))
	for i, row := range cm.rows {
		out[i] = append([]m.Code(nil), row...)
	}

	return out
}
