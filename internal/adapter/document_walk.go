package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/breach/internal/model"
)

const recursiveSuffix = "/..."

// Find expands roots into document paths. A file root is kept as given. A
// directory root yields its YAML and JSON files, and a root ending in "/..."
// descends into subdirectories as well. Dot files are skipped inside
// directories. A root that does not exist is kept so that loading it reports
// the problem. Each path appears once, in the order first found.
func (s *LocalPuzzleStore) Find(roots []m.Path) ([]m.Path, error) {
	seen := make(map[string]struct{})
	paths := []m.Path{}

	add := func(path string) {
		key := filepath.Clean(path)
		if _, exists := seen[key]; exists {
			return
		}

		seen[key] = struct{}{}
		paths = append(paths, m.Path(path))
	}

	for _, root := range roots {
		rootPath, recursive := splitRoot(string(root))

		info, err := os.Stat(rootPath)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				add(string(root))
				continue
			}

			return nil, fmt.Errorf("root path error: %w", err)
		}

		if !info.IsDir() {
			add(rootPath)
			continue
		}

		err = walkDocuments(rootPath, recursive, add)
		if err != nil {
			return nil, err
		}
	}

	return paths, nil
}

func walkDocuments(root string, recursive bool, fn func(path string)) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if path == root {
			return nil
		}

		hidden := strings.HasPrefix(info.Name(), ".")

		if info.IsDir() {
			if !recursive || hidden {
				return filepath.SkipDir
			}

			return nil
		}

		if hidden {
			return nil
		}

		if _, err := FormatFromPath(m.Path(path)); err != nil {
			return nil
		}

		fn(path)

		return nil
	})
}

func splitRoot(root string) (string, bool) {
	if root == "..." {
		return ".", true
	}

	if trimmed, ok := strings.CutSuffix(root, recursiveSuffix); ok {
		if trimmed == "" {
			trimmed = "/"
		}

		return trimmed, true
	}

	return root, false
}
