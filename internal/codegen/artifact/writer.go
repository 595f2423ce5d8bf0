package artifact

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// WriteError reports an output directory or file that could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("artifact: write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// EnsureDir creates dir and its parents.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &WriteError{Path: dir, Err: err}
	}
	return nil
}

// Write replaces every artifact under dir. It stops at the first failure;
// files already written stay in place.
func Write(logger *slog.Logger, dir string, arts []Artifact) error {
	for _, a := range arts {
		path := a.Location(dir)
		if err := EnsureDir(filepath.Dir(path)); err != nil {
			return err
		}
		if err := writeFile(path, a.Content); err != nil {
			return &WriteError{Path: path, Err: err}
		}
		logger.Debug("Wrote artifact", "platform", a.Platform, "path", path, "bytes", a.Size())
	}
	return nil
}

// writeFile writes through a temp file and renames it into place so readers
// never observe a half-written artifact.
func writeFile(path string, content []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	name := tmp.Name()
	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(name)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(name)
		return err
	}
	if err := os.Chmod(name, 0o644); err != nil {
		_ = os.Remove(name)
		return err
	}
	if err := os.Rename(name, path); err != nil {
		_ = os.Remove(name)
		return err
	}
	return nil
}

// Status is the on-disk state of an artifact relative to its rendering.
type Status int

const (
	StatusFresh Status = iota
	StatusStale
	StatusMissing
)

func (s Status) String() string {
	switch s {
	case StatusFresh:
		return "fresh"
	case StatusStale:
		return "stale"
	case StatusMissing:
		return "missing"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Compare checks the file for a under dir against a's digest.
func Compare(dir string, a Artifact) (Status, error) {
	data, err := os.ReadFile(a.Location(dir))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return StatusMissing, nil
		}
		return StatusMissing, err
	}
	if Digest(data) != a.Digest() {
		return StatusStale, nil
	}
	return StatusFresh, nil
}
