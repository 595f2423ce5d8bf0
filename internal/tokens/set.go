package tokens

import (
	"bytes"
	"encoding/json"
	"sort"
)

// Set is the canonical token set of one compilation run. It is built by
// Merge and never modified afterwards.
type Set struct {
	categories []Category
}

// Merge composes validated documents into a Set keyed by category name.
// Values are not transformed. The serialized set is the union of the
// documents' top-level entries; a category declared twice, or a top-level key
// owned by two documents, is a configuration error.
func Merge(docs []Document) (*Set, error) {
	byName := make(map[string]Document, len(docs))
	owners := make(map[string]string)
	for _, doc := range docs {
		if !isKnownCategory(doc.Category) {
			return nil, &UnknownCategoryError{Category: doc.Category}
		}
		if prev, dup := byName[doc.Category]; dup {
			return nil, &DuplicateCategoryError{Category: doc.Category, Paths: []string{prev.Path, doc.Path}}
		}
		byName[doc.Category] = doc
		for _, key := range doc.Root.Keys() {
			if owner, taken := owners[key]; taken {
				return nil, &ConflictingKeyError{Key: key, Categories: []string{owner, doc.Category}}
			}
			owners[key] = doc.Category
		}
	}

	set := &Set{}
	for _, name := range categoryOrder {
		doc, ok := byName[name]
		if !ok {
			continue
		}
		c, err := decodeCategory(doc)
		if err != nil {
			return nil, err
		}
		set.categories = append(set.categories, c)
	}
	return set, nil
}

// Len reports the number of categories in the set.
func (s *Set) Len() int { return len(s.categories) }

// Names returns the category names in iteration order.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.categories))
	for _, c := range s.categories {
		names = append(names, c.Name())
	}
	return names
}

// Categories returns the categories in iteration order.
func (s *Set) Categories() []Category {
	return append([]Category(nil), s.categories...)
}

// Lookup returns the category stored under name.
func (s *Set) Lookup(name string) (Category, bool) {
	for _, c := range s.categories {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

func (s *Set) Colors() (*Colors, bool) {
	c, ok := s.Lookup(CategoryColors)
	if !ok {
		return nil, false
	}
	return c.(*Colors), true
}

func (s *Set) Typography() (*Typography, bool) {
	c, ok := s.Lookup(CategoryTypography)
	if !ok {
		return nil, false
	}
	return c.(*Typography), true
}

func (s *Set) Spacing() (*Spacing, bool) {
	c, ok := s.Lookup(CategorySpacing)
	if !ok {
		return nil, false
	}
	return c.(*Spacing), true
}

func (s *Set) Breakpoints() (*Breakpoints, bool) {
	c, ok := s.Lookup(CategoryBreakpoints)
	if !ok {
		return nil, false
	}
	return c.(*Breakpoints), true
}

func (s *Set) Shadows() (*Shadows, bool) {
	c, ok := s.Lookup(CategoryShadows)
	if !ok {
		return nil, false
	}
	return c.(*Shadows), true
}

// Sources maps each category to the file it was read from.
func (s *Set) Sources() map[string]string {
	out := make(map[string]string, len(s.categories))
	for _, c := range s.categories {
		out[c.Name()] = c.Document().Path
	}
	return out
}

// SourcePaths returns the distinct source paths, sorted.
func (s *Set) SourcePaths() []string {
	var paths []string
	for _, p := range s.Sources() {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Origin returns the category whose document owns the top-level key.
func (s *Set) Origin(key string) (string, bool) {
	for _, c := range s.categories {
		if _, ok := c.root().Get(key); ok {
			return c.Name(), true
		}
	}
	return "", false
}

// Keys returns every top-level key of the merged set in iteration order.
func (s *Set) Keys() []string {
	var keys []string
	for _, c := range s.categories {
		keys = append(keys, c.root().Keys()...)
	}
	return keys
}

// MarshalJSON emits the union of the documents' top-level entries, category
// by category, with every document's key order preserved.
func (s *Set) MarshalJSON() ([]byte, error) {
	merged := &Node{Kind: MappingNode}
	for _, c := range s.categories {
		merged.Entries = append(merged.Entries, c.root().Entries...)
	}
	return merged.MarshalJSON()
}

// IndentedJSON is MarshalJSON indented with the given prefix and indent.
func (s *Set) IndentedJSON(prefix, indent string) ([]byte, error) {
	raw, err := s.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, raw, prefix, indent); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
