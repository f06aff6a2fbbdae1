package adapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/breach/internal/model"
)

const (
	intTag  = "!!int"
	nullTag = "!!null"
	strTag  = "!!str"
)

var (
	// ErrEmptyDocument is returned when the input holds no document.
	ErrEmptyDocument = errors.New("document is empty")
	// ErrUnknownPart is returned for a part name the codec does not know.
	ErrUnknownPart = errors.New("unknown document part")
	// ErrUnknownFormat is returned for an encoding the codec cannot produce.
	ErrUnknownFormat = errors.New("unknown document format")
)

// DocumentCodec decodes validated puzzle documents and encodes them back.
type DocumentCodec interface {
	// Decode parses and validates a full document.
	Decode(data []byte) (m.Document, error)
	// DecodePart parses one part, given either standing alone or inside a
	// full document. Only that part of the result is populated.
	DecodePart(data []byte, part m.Part) (m.Document, error)
	// Encode serializes doc in the requested format.
	Encode(doc m.Document, format m.Format) ([]byte, error)
}

// YAMLDocumentCodec reads YAML, and JSON as its subset, through the yaml.v3
// node tree so that scalar types can be checked before decoding.
type YAMLDocumentCodec struct {
	validate *validator.Validate
}

// NewDocumentCodec constructs the default codec.
func NewDocumentCodec() *YAMLDocumentCodec {
	return &YAMLDocumentCodec{validate: newDocumentValidator()}
}

// Decode parses and validates a full document.
func (c *YAMLDocumentCodec) Decode(data []byte) (m.Document, error) {
	return c.DecodePart(data, m.PartDocument)
}

// DecodePart parses and validates the requested part of data.
func (c *YAMLDocumentCodec) DecodePart(data []byte, part m.Part) (m.Document, error) {
	switch part {
	case m.PartDocument, m.PartBuffer, m.PartSequences, m.PartMatrix:
	default:
		return m.Document{}, fmt.Errorf("%w: %q", ErrUnknownPart, part)
	}

	root, err := parseRoot(data)
	if err != nil {
		return m.Document{}, err
	}

	var doc m.Document

	if part == m.PartDocument {
		if errs := checkDocument(root); len(errs) > 0 {
			return m.Document{}, errs
		}

		if err := root.Decode(&doc); err != nil {
			return m.Document{}, fmt.Errorf("decode document: %w", err)
		}

		if err := translateValidation(c.validate.Struct(doc), ""); err != nil {
			return m.Document{}, err
		}

		return doc, nil
	}

	node, errs := selectPart(root, part)
	if len(errs) > 0 {
		return m.Document{}, errs
	}

	switch part {
	case m.PartBuffer:
		if errs := checkBuffer(node, string(part)); len(errs) > 0 {
			return m.Document{}, errs
		}

		err = node.Decode(&doc.Buffer)
	case m.PartSequences:
		if errs := checkTable(node, string(part)); len(errs) > 0 {
			return m.Document{}, errs
		}

		err = node.Decode(&doc.Sequences)
	case m.PartMatrix:
		if errs := checkTable(node, string(part)); len(errs) > 0 {
			return m.Document{}, errs
		}

		if err = node.Decode(&doc.CodeMatrix); err == nil {
			err = translateValidation(c.validate.Var(doc.CodeMatrix, matrixRules), string(part))
		}
	}

	if err != nil {
		return m.Document{}, fmt.Errorf("decode %s: %w", part, err)
	}

	return doc, nil
}

// Encode serializes doc as YAML or JSON.
func (c *YAMLDocumentCodec) Encode(doc m.Document, format m.Format) ([]byte, error) {
	doc = doc.Normalized()

	switch format {
	case m.FormatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}

		return append(data, '\n'), nil
	case m.FormatYAML:
		var node yaml.Node
		if err := node.Encode(doc); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}

		flowInnerLists(&node)

		var buf bytes.Buffer

		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)

		if err := enc.Encode(&node); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}

		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}

		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func parseRoot(data []byte) (*yaml.Node, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	if node.Kind == 0 || len(node.Content) == 0 {
		return nil, ErrEmptyDocument
	}

	return resolve(node.Content[0]), nil
}

// resolve follows aliases to the node they point at.
func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}

	return n
}

// checkDocument validates the shape of a full document mapping.
func checkDocument(root *yaml.Node) ValidationErrors {
	if root.Kind != yaml.MappingNode {
		return ValidationErrors{{Reason: "document must be a mapping"}}
	}

	var errs ValidationErrors

	seen := make(map[string]bool, 3)

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := resolve(root.Content[i]), root.Content[i+1]

		if seen[key.Value] {
			errs = append(errs, ValidationError{Path: key.Value, Reason: "duplicate key"})
			continue
		}

		seen[key.Value] = true

		switch m.Part(key.Value) {
		case m.PartBuffer:
			errs = append(errs, checkBuffer(value, key.Value)...)
		case m.PartSequences, m.PartMatrix:
			errs = append(errs, checkTable(value, key.Value)...)
		default:
			errs = append(errs, ValidationError{Path: key.Value, Reason: "unknown key"})
		}
	}

	for _, part := range []m.Part{m.PartBuffer, m.PartSequences, m.PartMatrix} {
		if !seen[string(part)] {
			errs = append(errs, ValidationError{Path: string(part), Reason: "is required"})
		}
	}

	return errs
}

// selectPart returns the node holding part: the root itself when it is a
// bare list, or the matching key of a document mapping.
func selectPart(root *yaml.Node, part m.Part) (*yaml.Node, ValidationErrors) {
	if root.Kind != yaml.MappingNode {
		return root, nil
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		if resolve(root.Content[i]).Value == string(part) {
			return resolve(root.Content[i+1]), nil
		}
	}

	return nil, ValidationErrors{{Path: string(part), Reason: "is required"}}
}

// checkBuffer requires a list of non-negative integers or nulls.
func checkBuffer(n *yaml.Node, path string) ValidationErrors {
	n = resolve(n)
	if n.Kind != yaml.SequenceNode {
		return ValidationErrors{{Path: path, Reason: "must be a list"}}
	}

	var errs ValidationErrors

	for i, item := range n.Content {
		item = resolve(item)
		if item.Kind == yaml.ScalarNode && item.ShortTag() == nullTag {
			continue
		}

		var v uint
		if item.Kind != yaml.ScalarNode || item.ShortTag() != intTag || item.Decode(&v) != nil {
			errs = append(errs, ValidationError{
				Path:   fmt.Sprintf("%s[%d]", path, i),
				Reason: "must be a non-negative integer or null",
			})
		}
	}

	return errs
}

// checkTable requires a list of lists of strings.
func checkTable(n *yaml.Node, path string) ValidationErrors {
	n = resolve(n)
	if n.Kind != yaml.SequenceNode {
		return ValidationErrors{{Path: path, Reason: "must be a list"}}
	}

	var errs ValidationErrors

	for i, row := range n.Content {
		row = resolve(row)
		rowPath := fmt.Sprintf("%s[%d]", path, i)

		if row.Kind != yaml.SequenceNode {
			errs = append(errs, ValidationError{Path: rowPath, Reason: "must be a list"})
			continue
		}

		for j, cell := range row.Content {
			cell = resolve(cell)
			if cell.Kind != yaml.ScalarNode || cell.ShortTag() != strTag {
				errs = append(errs, ValidationError{
					Path:   fmt.Sprintf("%s[%d]", rowPath, j),
					Reason: "must be a string",
				})
			}
		}
	}

	return errs
}

// flowInnerLists renders the buffer and every table row on a single line.
func flowInnerLists(doc *yaml.Node) {
	root := doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}

	if root.Kind != yaml.MappingNode {
		return
	}

	for i := 1; i < len(root.Content); i += 2 {
		value := root.Content[i]
		if value.Kind != yaml.SequenceNode {
			continue
		}

		if root.Content[i-1].Value == string(m.PartBuffer) {
			value.Style = yaml.FlowStyle
			continue
		}

		for _, row := range value.Content {
			if row.Kind == yaml.SequenceNode {
				row.Style = yaml.FlowStyle
			}
		}
	}
}
