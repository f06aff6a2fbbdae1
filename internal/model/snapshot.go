package model

// SlotView describes one buffer slot as resolved against the matrix.
type SlotView struct {
	Position int
	Axis     Axis
	Filled   bool
	Index    uint
	Coord    Coord
	Code     Code
}

// Snapshot is a read-only view of a puzzle for display.
type Snapshot struct {
	Matrix    [][]Code
	Slots     []SlotView
	Sequences []Sequence
	// NextAxis is meaningless when Full is set.
	NextAxis Axis
	Full     bool
}

// Selected reports whether the coordinate is held by a filled slot.
func (s Snapshot) Selected(c Coord) bool {
	for _, slot := range s.Slots {
		if slot.Filled && slot.Coord == c {
			return true
		}
	}

	return false
}

// SelectionOutcome records what happened to one requested push.
type SelectionOutcome struct {
	Index  uint
	Pushed bool // false when the buffer was already full
}

// ValidationReport is the result of validating one document file.
type ValidationReport struct {
	Path Path
	Part Part
	Err  error
}

// Valid reports whether the document passed validation.
func (r ValidationReport) Valid() bool {
	return r.Err == nil
}

// Evaluation is what an evaluator reports for a buffer's resolved codes.
type Evaluation struct {
	// Satisfied holds the positions of the targets the codes satisfy.
	Satisfied []int
}
