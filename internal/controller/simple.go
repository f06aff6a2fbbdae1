package controller

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	m "github.com/mouse-blink/breach/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

const emptyCell = "-"

// SimpleUI implements UI with plain-text tables on the command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplaySnapshot prints the matrix with selected cells bracketed, then the
// buffer and the target sequences.
func (s *SimpleUI) DisplaySnapshot(snapshot m.Snapshot) error {
	s.printf("%s\n", s.matrixTable(snapshot))
	s.printf("%s\n", s.bufferTable(snapshot))

	if snapshot.Full {
		s.printf("Buffer full\n")
	} else {
		s.printf("Next pick: %s\n", snapshot.NextAxis)
	}

	if len(snapshot.Sequences) == 0 {
		s.printf("No target sequences\n")
		return nil
	}

	s.printf("Target sequences:\n")

	for i, seq := range snapshot.Sequences {
		s.printf("  %d: %s\n", i+1, joinCodes(seq))
	}

	return nil
}

// DisplaySelection reports each push, including those a full buffer ignored.
func (s *SimpleUI) DisplaySelection(outcomes []m.SelectionOutcome) error {
	for _, outcome := range outcomes {
		if outcome.Pushed {
			s.printf("pushed %d\n", outcome.Index)
		} else {
			s.printf("ignored %d: buffer full\n", outcome.Index)
		}
	}

	return nil
}

// DisplayRemoval reports popped indices.
func (s *SimpleUI) DisplayRemoval(removed []uint, requested int) error {
	for _, index := range removed {
		s.printf("popped %d\n", index)
	}

	if len(removed) < requested {
		s.printf("buffer empty after %d of %d pops\n", len(removed), requested)
	}

	return nil
}

// DisplayContains reports a membership query.
func (s *SimpleUI) DisplayContains(coord m.Coord, found bool) error {
	verb := "does not contain"
	if found {
		verb = "contains"
	}

	s.printf("buffer %s (%d, %d)\n", verb, coord.Row, coord.Col)

	return nil
}

// DisplayValidation prints a status table for validated documents.
func (s *SimpleUI) DisplayValidation(reports []m.ValidationReport) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Part", "Status", "Problem"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	invalid := 0

	for _, report := range reports {
		status, problem := "ok", ""
		if !report.Valid() {
			status, problem = "invalid", report.Err.Error()
			invalid++
		}

		table.Append([]string{string(report.Path), string(report.Part), status, problem})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total %d", len(reports)),
		"",
		fmt.Sprintf("Invalid %d", invalid),
		"",
	})

	table.Render()
	s.printf("%s", tableBuffer.String())

	return nil
}

func (s *SimpleUI) matrixTable(snapshot m.Snapshot) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)

	if len(snapshot.Matrix) > 0 {
		header := []string{""}
		for col := range snapshot.Matrix[0] {
			header = append(header, strconv.Itoa(col))
		}

		table.SetHeader(header)
	}

	for row, codes := range snapshot.Matrix {
		line := []string{strconv.Itoa(row)}

		for col, code := range codes {
			cell := string(code)
			if snapshot.Selected(m.Coord{Row: uint(row), Col: uint(col)}) {
				cell = "[" + cell + "]"
			}

			line = append(line, cell)
		}

		table.Append(line)
	}

	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) bufferTable(snapshot m.Snapshot) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Slot", "Axis", "Index", "Coord", "Code"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, slot := range snapshot.Slots {
		index, coord, code := emptyCell, emptyCell, emptyCell
		if slot.Filled {
			index = strconv.FormatUint(uint64(slot.Index), 10)
			coord = fmt.Sprintf("(%d, %d)", slot.Coord.Row, slot.Coord.Col)
			code = string(slot.Code)
		}

		table.Append([]string{strconv.Itoa(slot.Position), string(slot.Axis), index, coord, code})
	}

	table.Render()

	return tableBuffer.String()
}

func joinCodes(seq m.Sequence) string {
	parts := make([]string, len(seq))
	for i, code := range seq {
		parts[i] = string(code)
	}

	return strings.Join(parts, " ")
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
