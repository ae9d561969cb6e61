// Package rope provides an immutable, balanced tree-structured text
// container for efficient editing of large Unicode documents.
//
// A rope is a B-tree whose leaves hold bounded runs of text and whose
// internal nodes cache an additive summary (TextInfo) of their subtree:
// character count, UTF-16 code-unit count, and line-break count. Public
// operations are indexed by logical character position. Lookups and
// edits run in O(log N) of the total text length (plus the size of any
// inserted text); whole-text operations such as String, Equals and
// LenGraphemes are O(N).
//
// Key properties:
//   - Immutable: every edit returns a new Rope; the receiver is
//     unchanged and safe to keep using.
//   - Structural sharing: edits path-copy only the spine from root to
//     the edit site; untouched subtrees are shared across versions.
//   - Coordinate conversion between character, UTF-16 code-unit, and
//     line-number spaces is mutually consistent, including across a
//     CRLF pair split between two leaves.
//
// Basic usage:
//
//	r := rope.FromString("hello world")
//	r = r.Insert(5, ",")   // "hello, world"
//	r = r.Remove(0, 7)     // "world"
//	text := r.String()     // "world"
//
// Mutation, search, collation, and transcoding between encodings are out
// of scope; see the package-level operations for the exact surface.
package rope
