package tokens

import "fmt"

// MissingKeyError reports a category document lacking a required top-level key.
type MissingKeyError struct {
	Category string
	Key      string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("tokens: %s is missing required key %q", e.Category, e.Key)
}

// SourceReadError reports a category source that is absent or cannot be parsed.
type SourceReadError struct {
	Category string
	Path     string
	Err      error
}

func (e *SourceReadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("tokens: read %s source: %v", e.Category, e.Err)
	}
	return fmt.Sprintf("tokens: read %s source %s: %v", e.Category, e.Path, e.Err)
}

func (e *SourceReadError) Unwrap() error { return e.Err }

// DuplicateCategoryError reports two source documents declaring the same category.
type DuplicateCategoryError struct {
	Category string
	Paths    []string
}

func (e *DuplicateCategoryError) Error() string {
	return fmt.Sprintf("tokens: category %s declared more than once %v", e.Category, e.Paths)
}

// UnknownCategoryError reports a document whose category is not one of the
// known token categories.
type UnknownCategoryError struct {
	Category string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("tokens: unknown category %q (known: %v)", e.Category, CategoryNames())
}

// ConflictingKeyError reports a top-level key declared by two category documents.
type ConflictingKeyError struct {
	Key        string
	Categories []string
}

func (e *ConflictingKeyError) Error() string {
	return fmt.Sprintf("tokens: top-level key %q declared by %v", e.Key, e.Categories)
}
