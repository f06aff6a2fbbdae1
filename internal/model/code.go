// Package model defines the data structures shared by the puzzle engine,
// its document codec and the CLI.
package model

// Code is an opaque textual token occupying one matrix cell.
// Codes compare by exact string equality.
type Code string

// Sequence is an ordered target list of codes.
type Sequence []Code

// Coord is a resolved (row, col) pair into a code matrix.
type Coord struct {
	Row uint
	Col uint
}

// Axis tells how a buffer slot's raw index is interpreted.
type Axis string

const (
	// AxisColumn marks even slots: the index selects a column in the previous row.
	AxisColumn Axis = "column"
	// AxisRow marks odd slots: the index selects a row in the previous column.
	AxisRow Axis = "row"
)

// AxisAt returns the axis of the slot at position i.
func AxisAt(i int) Axis {
	if i%2 == 0 {
		return AxisColumn
	}

	return AxisRow
}

// Path represents a file system path.
type Path string
