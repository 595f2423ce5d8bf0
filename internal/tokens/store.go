package tokens

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// sourceExtensions are tried in order for every category.
var sourceExtensions = []string{".json", ".yaml", ".yml"}

// requiredSources must exist in every store; the rest are optional.
var requiredSources = map[string]bool{
	CategoryColors:     true,
	CategoryTypography: true,
	CategorySpacing:    true,
}

// Store reads category documents from a directory. Nothing is cached:
// every Load reads the files again.
type Store struct {
	Dir string
}

// NewStore returns a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{Dir: dir}
}

// LoadDir is shorthand for NewStore(dir).Load().
func LoadDir(dir string) ([]Document, error) {
	return NewStore(dir).Load()
}

// Load reads every known category present in the directory, in canonical
// order.
func (s *Store) Load() ([]Document, error) {
	info, err := os.Stat(s.Dir)
	if err != nil {
		return nil, &SourceReadError{Category: "*", Path: s.Dir, Err: err}
	}
	if !info.IsDir() {
		return nil, &SourceReadError{Category: "*", Path: s.Dir, Err: errors.New("not a directory")}
	}

	var docs []Document
	for _, category := range categoryOrder {
		path, err := s.locate(category)
		if err != nil {
			return nil, err
		}
		if path == "" {
			if requiredSources[category] {
				return nil, &SourceReadError{
					Category: category,
					Path:     filepath.Join(s.Dir, category+".json"),
					Err:      fs.ErrNotExist,
				}
			}
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, &SourceReadError{Category: category, Path: path, Err: err}
		}
		doc, err := ParseDocument(category, path, data)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// locate finds the single source file for a category. Two files for the same
// category is a configuration error.
func (s *Store) locate(category string) (string, error) {
	var found []string
	for _, ext := range sourceExtensions {
		p := filepath.Join(s.Dir, category+ext)
		info, err := os.Stat(p)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return "", &SourceReadError{Category: category, Path: p, Err: err}
		}
		if info.IsDir() {
			continue
		}
		found = append(found, p)
	}
	switch len(found) {
	case 0:
		return "", nil
	case 1:
		return found[0], nil
	default:
		return "", &DuplicateCategoryError{Category: category, Paths: found}
	}
}

// ParseDocument decodes source bytes into a Document. Files ending in .yaml
// or .yml are read as YAML, everything else as strict JSON. The root must be
// a mapping.
func ParseDocument(category, path string, data []byte) (Document, error) {
	var (
		root *Node
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		root, err = parseYAML(data)
	default:
		root, err = decodeJSON(data)
	}
	if err != nil {
		return Document{}, &SourceReadError{Category: category, Path: path, Err: err}
	}
	if root.Kind != MappingNode {
		return Document{}, &SourceReadError{
			Category: category,
			Path:     path,
			Err:      fmt.Errorf("root must be a mapping, got %s", root.Kind),
		}
	}
	return Document{Category: category, Path: path, Root: root}, nil
}
