package adapter

import (
	"os"
	"path/filepath"
	"testing"

	m "github.com/mouse-blink/breach/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDoc() m.Document {
	return m.Document{
		Buffer:     []*uint{m.SlotIndex(2), nil, nil},
		Sequences:  []m.Sequence{{"a1", "b2"}},
		CodeMatrix: [][]m.Code{{"a1", "b2", "c3"}, {"d4", "e5", "f6"}},
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]m.Format{
		"p.yaml":        m.FormatYAML,
		"dir/p.YML":     m.FormatYAML,
		"p.json":        m.FormatJSON,
		"/abs/p.v.json": m.FormatJSON,
	}

	for path, want := range tests {
		got, err := FormatFromPath(m.Path(path))
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := FormatFromPath("p.toml")
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestLocalPuzzleStore_SaveAndLoad(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"puzzle.yaml", "puzzle.json"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			path := m.Path(filepath.Join(t.TempDir(), "nested", name))
			store := NewLocalPuzzleStore(NewDocumentCodec())

			require.NoError(t, store.Save(path, sampleDoc()))

			info, err := os.Stat(string(path))
			require.NoError(t, err)
			assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())

			doc, err := store.Load(path)
			require.NoError(t, err)
			assert.Equal(t, sampleDoc(), doc)
		})
	}
}

func TestLocalPuzzleStore_SaveReplacesAndLeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := m.Path(filepath.Join(dir, "puzzle.yaml"))
	store := NewLocalPuzzleStore(NewDocumentCodec())

	require.NoError(t, store.Save(path, sampleDoc()))

	updated := sampleDoc()
	updated.Buffer[1] = m.SlotIndex(1)
	require.NoError(t, store.Save(path, updated))

	doc, err := store.Load(path)
	require.NoError(t, err)
	assert.Equal(t, updated, doc)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "puzzle.yaml", entries[0].Name())
}

func TestLocalPuzzleStore_SaveUnknownFormat(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := NewLocalPuzzleStore(NewDocumentCodec())

	err := store.Save(m.Path(filepath.Join(dir, "puzzle.txt")), sampleDoc())
	require.ErrorIs(t, err, ErrUnknownFormat)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLocalPuzzleStore_LoadPart(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "matrix.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- [a1, b2]\n- [c3, d4]\n"), 0o600))

	doc, err := NewLocalPuzzleStore(NewDocumentCodec()).LoadPart(m.Path(path), m.PartMatrix)
	require.NoError(t, err)
	assert.Equal(t, [][]m.Code{{"a1", "b2"}, {"c3", "d4"}}, doc.CodeMatrix)
}

func TestLocalPuzzleStore_LoadErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := NewLocalPuzzleStore(NewDocumentCodec())

	_, err := store.Load(m.Path(filepath.Join(dir, "missing.yaml")))
	require.ErrorIs(t, err, os.ErrNotExist)

	invalid := filepath.Join(dir, "invalid.json")
	require.NoError(t, os.WriteFile(invalid, []byte(`{"buffer": ["x"], "sequences": [], "code_matrix": [["a1"]]}`), 0o600))

	_, err = store.Load(m.Path(invalid))
	requireValidationError(t, err, "buffer[0]")
	assert.Contains(t, err.Error(), invalid)
}
