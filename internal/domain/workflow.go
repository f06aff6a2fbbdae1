// Package domain implements the selection puzzle engine and the workflows the
// CLI drives it through.
package domain

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/breach/internal/adapter"
	"github.com/mouse-blink/breach/internal/controller"
	m "github.com/mouse-blink/breach/internal/model"
)

// NewArgs describes a puzzle to create.
type NewArgs struct {
	Matrix    m.Path // file holding a code matrix, standalone or in a document
	Sequences m.Path // optional file holding target sequences
	Capacity  int
	Puzzle    m.Path
}

// PushArgs lists indices to select, in order.
type PushArgs struct {
	Puzzle  m.Path
	Indices []uint
}

// PopArgs asks for the most recent Count selections to be undone.
type PopArgs struct {
	Puzzle m.Path
	Count  int
}

// InspectArgs selects a puzzle to show and an optional membership query.
type InspectArgs struct {
	Puzzle   m.Path
	Contains *m.Coord
}

// ValidateArgs lists documents to validate.
type ValidateArgs struct {
	Paths   []m.Path
	Part    m.Part
	Threads int
}

// Workflow defines the operations exposed by the CLI.
type Workflow interface {
	New(args NewArgs) error
	Push(args PushArgs) error
	Pop(args PopArgs) error
	Inspect(args InspectArgs) error
	Validate(ctx context.Context, args ValidateArgs) error
}

type workflow struct {
	store  adapter.PuzzleStore
	ui     controller.UI
	logger *slog.Logger
}

// NewWorkflow creates a Workflow over store, reporting through ui.
func NewWorkflow(store adapter.PuzzleStore, ui controller.UI, logger *slog.Logger) Workflow {
	if logger == nil {
		logger = slog.Default()
	}

	return &workflow{store: store, ui: ui, logger: logger}
}

// New builds an empty-buffer puzzle from a matrix file and saves it.
func (w *workflow) New(args NewArgs) error {
	matrixDoc, err := w.store.LoadPart(args.Matrix, m.PartMatrix)
	if err != nil {
		return err
	}

	matrix, err := NewCodeMatrix(matrixDoc.CodeMatrix)
	if err != nil {
		return fmt.Errorf("matrix %s: %w", args.Matrix, err)
	}

	var sequences []m.Sequence

	if args.Sequences != "" {
		seqDoc, err := w.store.LoadPart(args.Sequences, m.PartSequences)
		if err != nil {
			return err
		}

		sequences = seqDoc.Sequences
	}

	puzzle := NewPuzzle(matrix, args.Capacity, sequences)

	if err := w.store.Save(args.Puzzle, puzzle.Document()); err != nil {
		return err
	}

	w.logger.Debug("puzzle created",
		"path", args.Puzzle,
		"rows", matrix.Rows(),
		"cols", matrix.Cols(),
		"capacity", puzzle.Buffer.Capacity(),
		"sequences", len(sequences),
	)

	return w.ui.DisplaySnapshot(puzzle.Snapshot())
}

// Push selects every index in order. An index that cannot address the matrix
// aborts the command and nothing is saved.
func (w *workflow) Push(args PushArgs) error {
	puzzle, err := w.load(args.Puzzle)
	if err != nil {
		return err
	}

	outcomes := make([]m.SelectionOutcome, 0, len(args.Indices))

	for _, index := range args.Indices {
		pushed, err := puzzle.Select(index)
		if err != nil {
			return fmt.Errorf("select %d: %w", index, err)
		}

		if !pushed {
			w.logger.Debug("selection ignored, buffer full", "index", index)
		}

		outcomes = append(outcomes, m.SelectionOutcome{Index: index, Pushed: pushed})
	}

	if err := w.save(args.Puzzle, puzzle); err != nil {
		return err
	}

	if err := w.ui.DisplaySelection(outcomes); err != nil {
		return err
	}

	return w.ui.DisplaySnapshot(puzzle.Snapshot())
}

// Pop undoes up to Count selections.
func (w *workflow) Pop(args PopArgs) error {
	puzzle, err := w.load(args.Puzzle)
	if err != nil {
		return err
	}

	count := args.Count
	if count <= 0 {
		count = 1
	}

	removed := make([]uint, 0, count)

	for range count {
		index, ok := puzzle.Undo()
		if !ok {
			break
		}

		removed = append(removed, index)
	}

	if err := w.save(args.Puzzle, puzzle); err != nil {
		return err
	}

	if err := w.ui.DisplayRemoval(removed, count); err != nil {
		return err
	}

	return w.ui.DisplaySnapshot(puzzle.Snapshot())
}

// Inspect shows the puzzle and answers an optional membership query.
func (w *workflow) Inspect(args InspectArgs) error {
	puzzle, err := w.load(args.Puzzle)
	if err != nil {
		return err
	}

	if err := w.ui.DisplaySnapshot(puzzle.Snapshot()); err != nil {
		return err
	}

	if args.Contains == nil {
		return nil
	}

	return w.ui.DisplayContains(*args.Contains, puzzle.Buffer.Contains(*args.Contains))
}

// Validate checks every document concurrently and reports all of them.
// It returns ErrInvalidDocuments when any failed.
func (w *workflow) Validate(ctx context.Context, args ValidateArgs) error {
	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	part := args.Part
	if part == "" {
		part = m.PartDocument
	}

	paths, err := w.store.Find(args.Paths)
	if err != nil {
		return err
	}

	w.logger.Debug("validating documents", "count", len(paths), "part", part, "threads", threads)

	reports := make([]m.ValidationReport, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			reports[i] = m.ValidationReport{Path: path, Part: part, Err: w.check(path, part)}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	invalid := 0

	for _, report := range reports {
		if !report.Valid() {
			invalid++

			w.logger.Warn("invalid document", "path", report.Path, "part", report.Part, "err", report.Err)
		}
	}

	if err := w.ui.DisplayValidation(reports); err != nil {
		return err
	}

	if invalid > 0 {
		return fmt.Errorf("%w: %d of %d", ErrInvalidDocuments, invalid, len(reports))
	}

	return nil
}

// check validates one document; full documents must also build a puzzle.
func (w *workflow) check(path m.Path, part m.Part) error {
	doc, err := w.store.LoadPart(path, part)
	if err != nil {
		return err
	}

	if part != m.PartDocument {
		return nil
	}

	_, err = PuzzleFromDocument(doc)

	return err
}

func (w *workflow) load(path m.Path) (*Puzzle, error) {
	doc, err := w.store.Load(path)
	if err != nil {
		return nil, err
	}

	puzzle, err := PuzzleFromDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("puzzle %s: %w", path, err)
	}

	w.logger.Debug("puzzle loaded",
		"path", path,
		"capacity", puzzle.Buffer.Capacity(),
		"filled", puzzle.Buffer.Len(),
	)

	return puzzle, nil
}

func (w *workflow) save(path m.Path, puzzle *Puzzle) error {
	if err := w.store.Save(path, puzzle.Document()); err != nil {
		return err
	}

	w.logger.Debug("puzzle saved", "path", path, "filled", puzzle.Buffer.Len())

	return nil
}
