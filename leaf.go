package rope

import "unicode/utf8"

// Leaf bound constants (spec §3), ported from the teacher's chunk size
// constants and widened because this module puts exactly one string per
// leaf instead of grouping several chunks into a leaf node (see
// DESIGN.md).
const (
	// MinLeaf is the lower leaf-size bound in UTF-8 bytes; with MaxLeaf
	// it sets targetLeaf. No code enforces it: leaves are never merged
	// up to this size, so the last leaf of a chunked string and the
	// pieces left by Insert/Remove/SplitAt may hold fewer bytes.
	MinLeaf = 512

	// MaxLeaf is the maximum UTF-8 byte length of a leaf before it must
	// split.
	MaxLeaf = 1024

	// targetLeaf is the preferred size when chunking a long string into
	// leaves, matching the teacher's TargetChunkSize midpoint strategy.
	targetLeaf = (MinLeaf + MaxLeaf) / 2
)

// Leaf holds a bounded primitive string and its precomputed TextInfo.
// Leaves are immutable once constructed.
type Leaf struct {
	text string
	info TextInfo
}

// NewLeaf wraps s as a leaf, computing its TextInfo eagerly.
func NewLeaf(s string) Leaf {
	return Leaf{text: s, info: ComputeTextInfo(s)}
}

// String returns the leaf's text.
func (l Leaf) String() string { return l.text }

// Info returns the leaf's precomputed TextInfo.
func (l Leaf) Info() TextInfo { return l.info }

// Len returns the character count of the leaf.
func (l Leaf) Len() int { return l.info.Chars }

// ByteLen returns the UTF-8 byte length of the leaf.
func (l Leaf) ByteLen() int { return l.info.Bytes }

// IsEmpty reports whether the leaf holds no text.
func (l Leaf) IsEmpty() bool { return l.info.Chars == 0 }

// CharAt returns the rune at character index i within the leaf.
func (l Leaf) CharAt(i int) rune {
	b := charIndexToByteIndex(l.text, i)
	r, _ := utf8.DecodeRuneInString(l.text[b:])
	return r
}

// CharToUTF16 converts a char index local to this leaf to a local
// UTF-16 code-unit index.
func (l Leaf) CharToUTF16(i int) int { return CharToUTF16Index(l.text, i) }

// UTF16ToChar converts a local UTF-16 code-unit index to a local char
// index, snapping per SPEC_FULL.md if it lands inside a supplementary
// character's two-unit span.
func (l Leaf) UTF16ToChar(i int) int { return UTF16ToCharIndex(l.text, i) }

// Split splits the leaf at character index charIdx, exactly, with no
// CRLF avoidance: this is the mandatory-cut-point case (spec §4.3, first
// paragraph) used by Insert/Remove/SplitAt, where the caller's index is
// authoritative and any CRLF-adjacency correction is the cross-leaf
// TextInfo.Add's job, not the split's.
func (l Leaf) Split(charIdx int) (Leaf, Leaf) {
	if charIdx <= 0 {
		return Leaf{}, l
	}
	if charIdx >= l.info.Chars {
		return l, Leaf{}
	}
	b := charIndexToByteIndex(l.text, charIdx)
	return NewLeaf(l.text[:b]), NewLeaf(l.text[b:])
}

// Append concatenates this leaf with other, returning one leaf if the
// combined text still fits within MaxLeaf, or several balanced leaves
// otherwise.
func (l Leaf) Append(other Leaf) []Leaf {
	if l.IsEmpty() {
		if other.IsEmpty() {
			return nil
		}
		return []Leaf{other}
	}
	if other.IsEmpty() {
		return []Leaf{l}
	}

	combined := l.text + other.text
	if len(combined) <= MaxLeaf {
		return []Leaf{NewLeaf(combined)}
	}
	return splitIntoLeaves(combined)
}

// splitIntoLeaves chunks a long string into leaves around targetLeaf
// bytes each, the last leaf taking whatever remains. Ported from the
// teacher's splitIntoChunks/findUTF8Boundary.
func splitIntoLeaves(s string) []Leaf {
	if len(s) == 0 {
		return nil
	}
	if len(s) <= MaxLeaf {
		return []Leaf{NewLeaf(s)}
	}

	var leaves []Leaf
	remaining := s
	for len(remaining) > MaxLeaf {
		cut := findLeafSplitPoint(remaining, targetLeaf)
		if cut <= 0 {
			cut = targetLeaf
		}
		leaves = append(leaves, NewLeaf(remaining[:cut]))
		remaining = remaining[cut:]
	}
	if len(remaining) > 0 {
		leaves = append(leaves, NewLeaf(remaining))
	}
	return leaves
}

// findLeafSplitPoint finds a byte offset near target suitable for an
// automatic (non-user-directed) leaf boundary: always a valid rune
// boundary, and never between a CR and the LF that follows it (spec
// §4.3, second paragraph — this is "internal rebalancing", not a
// caller-specified mandatory index).
func findLeafSplitPoint(s string, target int) int {
	if target >= len(s) {
		target = len(s)
	}
	if target <= 0 {
		return 0
	}

	pos := target
	for pos < len(s) && !utf8.RuneStart(s[pos]) {
		pos++
	}
	if pos > len(s) {
		pos = len(s)
	}

	if isCRLFBoundary(s, pos) {
		pos++
		for pos < len(s) && !utf8.RuneStart(s[pos]) {
			pos++
		}
	}

	return pos
}
