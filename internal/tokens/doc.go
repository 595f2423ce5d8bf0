// Package tokens reads design-token category documents, validates their
// structure and merges them into the canonical Set consumed by the platform
// generators.
//
// Documents are decoded into an ordered tree so that every generator sees
// tokens in the insertion order of the source files.
package tokens
