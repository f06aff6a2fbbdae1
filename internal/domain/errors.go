package domain

import "errors"

var (
	// ErrEmptyMatrix is returned when a matrix has no rows or no columns.
	ErrEmptyMatrix = errors.New("code matrix is empty")
	// ErrRaggedMatrix is returned when matrix rows differ in width.
	ErrRaggedMatrix = errors.New("code matrix rows differ in width")
	// ErrBufferGap is returned when a filled slot follows an empty one.
	ErrBufferGap = errors.New("buffer has a filled slot after an empty one")
	// ErrSelectionOutOfBounds is returned when a stored slot resolves outside the matrix.
	ErrSelectionOutOfBounds = errors.New("buffer selection is outside the code matrix")
	// ErrIndexOutOfRange is returned when a pushed index cannot address the matrix.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrNoEvaluator is returned when a puzzle is evaluated without an evaluator.
	ErrNoEvaluator = errors.New("no evaluator configured")
	// ErrInvalidDocuments is returned by Validate when at least one document failed.
	ErrInvalidDocuments = errors.New("invalid documents")
)
