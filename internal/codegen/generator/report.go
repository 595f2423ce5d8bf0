package generator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Alia5/tokenforge/internal/codegen/artifact"
	"github.com/Alia5/tokenforge/internal/tokens"
)

// Entry describes one artifact of a run.
type Entry struct {
	Platform string
	Path     string
	Digest   string
	Size     int
	Status   artifact.Status
}

// Report summarizes a build or check run.
type Report struct {
	Platforms  []string
	Categories []string
	Sources    []string
	Entries    []Entry
}

func newReport(set *tokens.Set, platforms []string) *Report {
	return &Report{
		Platforms:  platforms,
		Categories: set.Names(),
		Sources:    set.SourcePaths(),
	}
}

func (r *Report) add(a artifact.Artifact, status artifact.Status) {
	r.Entries = append(r.Entries, Entry{
		Platform: a.Platform,
		Path:     a.Path,
		Digest:   a.Digest(),
		Size:     a.Size(),
		Status:   status,
	})
}

func (r *Report) sort() {
	sort.Slice(r.Entries, func(i, j int) bool {
		if r.Entries[i].Platform != r.Entries[j].Platform {
			return r.Entries[i].Platform < r.Entries[j].Platform
		}
		return r.Entries[i].Path < r.Entries[j].Path
	})
}

// Drifted returns the entries that are not fresh.
func (r *Report) Drifted() []Entry {
	var out []Entry
	for _, e := range r.Entries {
		if e.Status != artifact.StatusFresh {
			out = append(out, e)
		}
	}
	return out
}

// DriftError lists artifacts whose files differ from a fresh rendering.
type DriftError struct {
	Entries []Entry
}

func (e *DriftError) Error() string {
	parts := make([]string, 0, len(e.Entries))
	for _, en := range e.Entries {
		parts = append(parts, fmt.Sprintf("%s/%s (%s)", en.Platform, en.Path, en.Status))
	}
	return fmt.Sprintf("%d artifact(s) out of date: %s", len(e.Entries), strings.Join(parts, ", "))
}
