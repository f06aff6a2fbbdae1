package domain

import (
	"fmt"

	m "github.com/mouse-blink/breach/internal/model"
)

// Puzzle owns one code matrix, one selection buffer and the target sequences.
type Puzzle struct {
	Matrix    *CodeMatrix
	Buffer    *SelectionBuffer
	Sequences []m.Sequence
}

// NewPuzzle returns a puzzle with an empty buffer of the given capacity.
func NewPuzzle(matrix *CodeMatrix, capacity int, sequences []m.Sequence) *Puzzle {
	return &Puzzle{
		Matrix:    matrix,
		Buffer:    NewSelectionBuffer(capacity),
		Sequences: copySequences(sequences),
	}
}

// PuzzleFromDocument builds a puzzle from a validated document. Either the
// whole puzzle is built or an error is returned.
func PuzzleFromDocument(doc m.Document) (*Puzzle, error) {
	matrix, err := NewCodeMatrix(doc.CodeMatrix)
	if err != nil {
		return nil, err
	}

	buffer, err := RestoreSelectionBuffer(doc.Buffer)
	if err != nil {
		return nil, err
	}

	for i := 0; i < buffer.Len(); i++ {
		coord, _ := buffer.Coord(i)
		if !matrix.InBounds(coord) {
			return nil, fmt.Errorf("%w: slot %d resolves to (%d, %d) in a %dx%d matrix",
				ErrSelectionOutOfBounds, i, coord.Row, coord.Col, matrix.Rows(), matrix.Cols())
		}
	}

	return &Puzzle{
		Matrix:    matrix,
		Buffer:    buffer,
		Sequences: copySequences(doc.Sequences),
	}, nil
}

// Document serializes the puzzle.
func (p *Puzzle) Document() m.Document {
	return m.Document{
		Buffer:     p.Buffer.Slots(),
		Sequences:  copySequences(p.Sequences),
		CodeMatrix: p.Matrix.Table(),
	}
}

// Select pushes index after checking it addresses the matrix on the axis of
// the next slot. It returns false without error when the buffer is full.
func (p *Puzzle) Select(index uint) (bool, error) {
	axis, ok := p.Buffer.NextAxis()
	if !ok {
		return false, nil
	}

	limit := p.Matrix.Cols()
	if axis == m.AxisRow {
		limit = p.Matrix.Rows()
	}

	if index >= uint(limit) {
		return false, fmt.Errorf("%w: %s %d, matrix has %d", ErrIndexOutOfRange, axis, index, limit)
	}

	p.Buffer.Push(index)

	return true, nil
}

// Undo removes the most recent selection.
func (p *Puzzle) Undo() (uint, bool) {
	return p.Buffer.Pop()
}

// ResolvedCodes returns the codes selected so far, in order.
func (p *Puzzle) ResolvedCodes() []m.Code {
	return p.Buffer.Codes(p.Matrix)
}

// Evaluate hands the resolved codes and targets to e.
func (p *Puzzle) Evaluate(e Evaluator) (m.Evaluation, error) {
	if e == nil {
		return m.Evaluation{}, ErrNoEvaluator
	}

	return e.Evaluate(p.ResolvedCodes(), copySequences(p.Sequences))
}

// Snapshot returns a display view of the puzzle.
func (p *Puzzle) Snapshot() m.Snapshot {
	slots := make([]m.SlotView, p.Buffer.Capacity())

	for i := range slots {
		view := m.SlotView{Position: i, Axis: m.AxisAt(i)}

		if coord, ok := p.Buffer.Coord(i); ok {
			view.Filled = true
			view.Coord = coord
			view.Code = p.Matrix.Get(coord.Row, coord.Col)

			if view.Axis == m.AxisColumn {
				view.Index = coord.Col
			} else {
				view.Index = coord.Row
			}
		}

		slots[i] = view
	}

	next, ok := p.Buffer.NextAxis()

	return m.Snapshot{
		Matrix:    p.Matrix.Table(),
		Slots:     slots,
		Sequences: copySequences(p.Sequences),
		NextAxis:  next,
		Full:      !ok,
	}
}

func copySequences(in []m.Sequence) []m.Sequence {
	out := make([]m.Sequence, len(in))
	for i, seq := range in {
		out[i] = append(m.Sequence(nil), seq...)
	}

	return out
}
