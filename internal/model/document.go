package model

// Part names one top-level section of a puzzle document.
type Part string

const (
	// PartDocument addresses the whole document.
	PartDocument Part = "document"
	// PartBuffer addresses the buffer slot list.
	PartBuffer Part = "buffer"
	// PartSequences addresses the target sequences.
	PartSequences Part = "sequences"
	// PartMatrix addresses the code matrix.
	PartMatrix Part = "code_matrix"
)

// Parts lists every addressable part, document first.
var Parts = []Part{PartDocument, PartBuffer, PartSequences, PartMatrix}

// Format is the encoding of a document on disk.
type Format string

const (
	// FormatYAML encodes documents as YAML.
	FormatYAML Format = "yaml"
	// FormatJSON encodes documents as JSON.
	FormatJSON Format = "json"
)

// Document is the serialized shape of a puzzle.
// A nil Buffer entry is an empty slot.
type Document struct {
	Buffer     []*uint    `yaml:"buffer" json:"buffer"`
	Sequences  []Sequence `yaml:"sequences" json:"sequences"`
	CodeMatrix [][]Code   `yaml:"code_matrix" json:"code_matrix" validate:"required,min=1,uniformrows,dive,min=1"`
}

// Normalized returns a copy whose nil lists are replaced by empty ones, so
// encoders emit empty arrays instead of null.
func (d Document) Normalized() Document {
	out := Document{
		Buffer:     make([]*uint, len(d.Buffer)),
		Sequences:  make([]Sequence, len(d.Sequences)),
		CodeMatrix: make([][]Code, len(d.CodeMatrix)),
	}

	for i, slot := range d.Buffer {
		if slot != nil {
			v := *slot
			out.Buffer[i] = &v
		}
	}

	for i, seq := range d.Sequences {
		out.Sequences[i] = append(Sequence{}, seq...)
	}

	for i, row := range d.CodeMatrix {
		out.CodeMatrix[i] = append([]Code{}, row...)
	}

	return out
}

// SlotIndex is a convenience for building buffer literals.
func SlotIndex(v uint) *uint {
	return &v
}
