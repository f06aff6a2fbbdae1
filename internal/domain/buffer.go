package domain

import (
	"fmt"

	m "github.com/mouse-blink/breach/internal/model"
)

// slot is one buffer position: empty, or holding a raw matrix index.
type slot struct {
	index  uint
	filled bool
}

// SelectionBuffer is a fixed-capacity list of raw matrix indices.
//
//	slots  = [col, row, col, row, ...]
//	i % 2  = [  0,   1,   0,   1, ...]
//
// An even slot selects a column in the row named by the previous slot (row 0
// for the first slot). An odd slot selects a row in the previous slot's column.
// Slots are filled left to right without gaps.
type SelectionBuffer struct {
	slots []slot
}

// NewSelectionBuffer returns an empty buffer. Negative capacities yield an
// empty, zero-capacity buffer.
func NewSelectionBuffer(capacity int) *SelectionBuffer {
	if capacity < 0 {
		capacity = 0
	}

	return &SelectionBuffer{slots: make([]slot, capacity)}
}

// RestoreSelectionBuffer rebuilds a buffer from stored slot values, nil being
// an empty slot.
func RestoreSelectionBuffer(values []*uint) (*SelectionBuffer, error) {
	b := NewSelectionBuffer(len(values))

	for i, v := range values {
		if v == nil {
			continue
		}

		if i > 0 && values[i-1] == nil {
			return nil, fmt.Errorf("%w: slot %d", ErrBufferGap, i)
		}

		b.slots[i] = slot{index: *v, filled: true}
	}

	return b, nil
}

// Capacity returns the fixed number of slots.
func (b *SelectionBuffer) Capacity() int {
	return len(b.slots)
}

// Len returns the number of filled slots.
func (b *SelectionBuffer) Len() int {
	for i, s := range b.slots {
		if !s.filled {
			return i
		}
	}

	return len(b.slots)
}

// Full reports whether every slot is filled.
func (b *SelectionBuffer) Full() bool {
	return b.Len() == len(b.slots)
}

// NextAxis returns the axis the next pushed index will be read on, or false
// when the buffer is full.
func (b *SelectionBuffer) NextAxis() (m.Axis, bool) {
	n := b.Len()
	if n == len(b.slots) {
		return "", false
	}

	return m.AxisAt(n), true
}

// Push fills the first empty slot with index. Pushing into a full buffer does
// nothing.
func (b *SelectionBuffer) Push(index uint) {
	for i := range b.slots {
		if !b.slots[i].filled {
			b.slots[i] = slot{index: index, filled: true}
			return
		}
	}
}

// Pop empties the last filled slot and returns its index.
func (b *SelectionBuffer) Pop() (uint, bool) {
	n := b.Len()
	if n == 0 {
		return 0, false
	}

	last := b.slots[n-1]
	b.slots[n-1] = slot{}

	return last.index, true
}

// Coord resolves slot i to a matrix coordinate. It returns false when i is
// out of range or the slot is empty.
func (b *SelectionBuffer) Coord(i int) (m.Coord, bool) {
	return resolveCoord(b.slots, i)
}

// Contains reports whether any slot up to the first empty one resolves to c.
// The scan stops at the first empty slot.
func (b *SelectionBuffer) Contains(c m.Coord) bool {
	for i := range b.slots {
		coord, ok := resolveCoord(b.slots, i)
		if !ok {
			return false
		}

		if coord == c {
			return true
		}
	}

	return false
}

// Code resolves slot i and looks its code up in matrix.
func (b *SelectionBuffer) Code(i int, matrix *CodeMatrix) (m.Code, bool) {
	coord, ok := resolveCoord(b.slots, i)
	if !ok {
		return "", false
	}

	return matrix.Get(coord.Row, coord.Col), true
}

// Codes returns the codes of all filled slots in order.
func (b *SelectionBuffer) Codes(matrix *CodeMatrix) []m.Code {
	codes := make([]m.Code, 0, len(b.slots))

	for i := range b.slots {
		code, ok := b.Code(i, matrix)
		if !ok {
			break
		}

		codes = append(codes, code)
	}

	return codes
}

// Slots returns the stored values, nil for empty slots.
func (b *SelectionBuffer) Slots() []*uint {
	out := make([]*uint, len(b.slots))

	for i, s := range b.slots {
		if s.filled {
			v := s.index
			out[i] = &v
		}
	}

	return out
}

// resolveCoord applies the alternating rule to slots[i]. The counterpart axis
// comes from slots[i-1], or is 0 for the first slot; a filled slot after an
// empty one breaks the buffer invariant and panics.
func resolveCoord(slots []slot, i int) (m.Coord, bool) {
	if i < 0 || i >= len(slots) || !slots[i].filled {
		return m.Coord{}, false
	}

	var prev uint

	if i > 0 {
		if !slots[i-1].filled {
			panic(fmt.Sprintf("selection buffer: slot %d is filled but slot %d is empty", i, i-1))
		}

		prev = slots[i-1].index
	}

	if i%2 == 0 {
		return m.Coord{Row: prev, Col: slots[i].index}, true
	}

	return m.Coord{Row: slots[i].index, Col: prev}, true
}
