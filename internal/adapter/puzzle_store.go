package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/breach/internal/model"
)

// PuzzleStore persists and retrieves puzzle documents.
type PuzzleStore interface {
	// Load reads and validates the full document at path.
	Load(path m.Path) (m.Document, error)
	// LoadPart reads and validates one part of the document at path.
	LoadPart(path m.Path, part m.Part) (m.Document, error)
	// Save writes doc to path, replacing any existing file.
	Save(path m.Path, doc m.Document) error
	// Find expands files and directories into document paths.
	Find(roots []m.Path) ([]m.Path, error)
}

// LocalPuzzleStore keeps documents on the local filesystem. The encoding is
// chosen from the file extension.
type LocalPuzzleStore struct {
	codec DocumentCodec
}

// NewLocalPuzzleStore constructs a LocalPuzzleStore backed by codec.
func NewLocalPuzzleStore(codec DocumentCodec) *LocalPuzzleStore {
	return &LocalPuzzleStore{codec: codec}
}

// FormatFromPath maps a file extension to a document format.
func FormatFromPath(path m.Path) (m.Format, error) {
	switch strings.ToLower(filepath.Ext(string(path))) {
	case ".yaml", ".yml":
		return m.FormatYAML, nil
	case ".json":
		return m.FormatJSON, nil
	default:
		return "", fmt.Errorf("%w for %s", ErrUnknownFormat, path)
	}
}

// Load reads and validates the full document at path.
func (s *LocalPuzzleStore) Load(path m.Path) (m.Document, error) {
	return s.LoadPart(path, m.PartDocument)
}

// LoadPart reads and validates one part of the document at path.
func (s *LocalPuzzleStore) LoadPart(path m.Path, part m.Part) (m.Document, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.Document{}, fmt.Errorf("read %s: %w", path, err)
	}

	doc, err := s.codec.DecodePart(data, part)
	if err != nil {
		return m.Document{}, fmt.Errorf("load %s: %w", path, err)
	}

	return doc, nil
}

// Save encodes doc and atomically replaces path with it.
func (s *LocalPuzzleStore) Save(path m.Path, doc m.Document) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	data, err := s.codec.Encode(doc, format)
	if err != nil {
		return err
	}

	target := string(path)
	dir := filepath.Dir(target)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".breach-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)

		return fmt.Errorf("write %s: %w", tmpPath, err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close %s: %w", tmpPath, err)
	}

	if err := os.Chmod(tmpPath, 0o644); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("chmod %s: %w", tmpPath, err)
	}

	if err := os.Rename(tmpPath, target); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename %s: %w", target, err)
	}

	return nil
}
