package controller

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	m "github.com/mouse-blink/breach/internal/model"
	"github.com/spf13/cobra"
)

func newTestUI() (*SimpleUI, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return NewSimpleUI(cmd), &buf
}

func sampleSnapshot() m.Snapshot {
	return m.Snapshot{
		Matrix: [][]m.Code{
			{"c9", "b2", "74"},
			{"a1", "65", "c9"},
		},
		Slots: []m.SlotView{
			{Position: 0, Axis: m.AxisColumn, Filled: true, Index: 1, Coord: m.Coord{Row: 0, Col: 1}, Code: "b2"},
			{Position: 1, Axis: m.AxisRow, Filled: true, Index: 1, Coord: m.Coord{Row: 1, Col: 1}, Code: "65"},
			{Position: 2, Axis: m.AxisColumn},
		},
		Sequences: []m.Sequence{{"b2", "65"}},
		NextAxis:  m.AxisColumn,
	}
}

func TestSimpleUI_DisplaySnapshot(t *testing.T) {
	ui, buf := newTestUI()

	if err := ui.DisplaySnapshot(sampleSnapshot()); err != nil {
		t.Fatalf("DisplaySnapshot() error = %v", err)
	}

	output := buf.String()

	for _, want := range []string{
		"[b2]",
		"[65]",
		"a1",
		"(0, 1)",
		"(1, 1)",
		"column",
		"row",
		"Next pick: column",
		"1: b2 65",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}

	if strings.Contains(output, "[c9]") {
		t.Fatalf("unselected cell rendered as selected\noutput:\n%s", output)
	}
}

func TestSimpleUI_DisplaySnapshot_FullWithoutSequences(t *testing.T) {
	ui, buf := newTestUI()

	snapshot := sampleSnapshot()
	snapshot.Full = true
	snapshot.Sequences = nil

	if err := ui.DisplaySnapshot(snapshot); err != nil {
		t.Fatalf("DisplaySnapshot() error = %v", err)
	}

	output := buf.String()

	for _, want := range []string{"Buffer full", "No target sequences"} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestSimpleUI_DisplaySelection(t *testing.T) {
	ui, buf := newTestUI()

	err := ui.DisplaySelection([]m.SelectionOutcome{{Index: 3, Pushed: true}, {Index: 4}})
	if err != nil {
		t.Fatalf("DisplaySelection() error = %v", err)
	}

	want := "pushed 3\nignored 4: buffer full\n"
	if buf.String() != want {
		t.Fatalf("output = %q, want %q", buf.String(), want)
	}
}

func TestSimpleUI_DisplayRemoval(t *testing.T) {
	ui, buf := newTestUI()

	if err := ui.DisplayRemoval([]uint{2}, 3); err != nil {
		t.Fatalf("DisplayRemoval() error = %v", err)
	}

	want := "popped 2\nbuffer empty after 1 of 3 pops\n"
	if buf.String() != want {
		t.Fatalf("output = %q, want %q", buf.String(), want)
	}
}

func TestSimpleUI_DisplayContains(t *testing.T) {
	ui, buf := newTestUI()

	_ = ui.DisplayContains(m.Coord{Row: 0, Col: 1}, true)
	_ = ui.DisplayContains(m.Coord{Row: 2, Col: 2}, false)

	want := "buffer contains (0, 1)\nbuffer does not contain (2, 2)\n"
	if buf.String() != want {
		t.Fatalf("output = %q, want %q", buf.String(), want)
	}
}

func TestSimpleUI_DisplayValidation(t *testing.T) {
	ui, buf := newTestUI()

	reports := []m.ValidationReport{
		{Path: "good.yaml", Part: m.PartDocument},
		{Path: "bad.json", Part: m.PartDocument, Err: errors.New("buffer[1]: must be a non-negative integer or null")},
	}

	if err := ui.DisplayValidation(reports); err != nil {
		t.Fatalf("DisplayValidation() error = %v", err)
	}

	output := buf.String()

	for _, want := range []string{
		"good.yaml",
		"bad.json",
		"ok",
		"invalid",
		"buffer[1]: must be a non-negative integer or null",
		"TOTAL 2",
		"INVALID 1",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}
