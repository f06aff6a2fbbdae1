// Package controller renders puzzle state and command results for the CLI.
package controller

import (
	m "github.com/mouse-blink/breach/internal/model"
)

// UI defines how command results reach the user.
// Implementations can use different output methods.
type UI interface {
	// DisplaySnapshot shows the matrix, the buffer slots and the targets.
	DisplaySnapshot(snapshot m.Snapshot) error
	// DisplaySelection reports the outcome of each requested push.
	DisplaySelection(outcomes []m.SelectionOutcome) error
	// DisplayRemoval reports the indices popped, most recent first.
	DisplayRemoval(removed []uint, requested int) error
	// DisplayContains reports whether the buffer holds coord.
	DisplayContains(coord m.Coord, found bool) error
	// DisplayValidation prints one line per validated document.
	DisplayValidation(reports []m.ValidationReport) error
}
