// Package artifact holds generated files in memory and writes them to, or
// compares them against, a platform output directory.
package artifact

import (
	"encoding/hex"
	"path/filepath"

	"golang.org/x/crypto/blake2b"
)

// Artifact is one generated file. Path is slash separated and relative to
// the platform's output directory.
type Artifact struct {
	Platform string
	Path     string
	Content  []byte
}

// New builds an artifact.
func New(platform, path string, content []byte) Artifact {
	return Artifact{Platform: platform, Path: path, Content: content}
}

// Digest is the hex BLAKE2b-256 of the content.
func (a Artifact) Digest() string {
	return Digest(a.Content)
}

// Size is the content length in bytes.
func (a Artifact) Size() int { return len(a.Content) }

// Location resolves the artifact path under dir.
func (a Artifact) Location(dir string) string {
	return filepath.Join(dir, filepath.FromSlash(a.Path))
}

// Digest hashes b with BLAKE2b-256.
func Digest(b []byte) string {
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:])
}
