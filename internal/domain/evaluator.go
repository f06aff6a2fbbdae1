package domain

import m "github.com/mouse-blink/breach/internal/model"

// Evaluator scores the codes assembled in a buffer against target sequences.
// What counts as satisfying a target is up to the implementation.
type Evaluator interface {
	Evaluate(codes []m.Code, targets []m.Sequence) (m.Evaluation, error)
}
