package rope

import "strings"

// Rope is an immutable, balanced-tree text container. Every operation
// returns a new Rope; the receiver and any rope still referencing parts
// of its structure are unaffected. This makes snapshots free and reads
// safe for concurrent use.
type Rope struct {
	root *Node
}

// New returns an empty rope.
func New() Rope {
	return Rope{root: newLeafNode(Leaf{})}
}

// FromString builds a rope from s.
func FromString(s string) Rope {
	if len(s) == 0 {
		return New()
	}
	return Rope{root: nodeFromLeaves(splitIntoLeaves(s))}
}

// FromLines builds a rope by joining lines with LF.
func FromLines(lines []string) Rope {
	return FromString(strings.Join(lines, "\n"))
}

func (r Rope) rootOrEmpty() *Node {
	if r.root == nil {
		return newLeafNode(Leaf{})
	}
	return r.root
}

// IsEmpty reports whether the rope holds no text.
func (r Rope) IsEmpty() bool {
	return r.root == nil || r.root.info.Chars == 0
}

// LenChars returns the number of Unicode scalar values (Go runes) in
// the rope.
func (r Rope) LenChars() int {
	if r.root == nil {
		return 0
	}
	return r.root.info.Chars
}

// LenUTF16 returns the number of UTF-16 code units the rope's text
// would occupy.
func (r Rope) LenUTF16() int {
	if r.root == nil {
		return 0
	}
	return r.root.info.UTF16
}

// LenLines returns the number of lines: one more than the number of
// line breaks, so an empty rope and a rope with no line breaks both
// report 1.
func (r Rope) LenLines() int {
	if r.root == nil {
		return 1
	}
	return r.root.info.Lines + 1
}

// LenGraphemes returns the number of grapheme clusters (user-perceived
// characters) in the rope. This walks the full text and is O(N), unlike
// the other Len* accessors.
func (r Rope) LenGraphemes() int {
	return GraphemeCount(r.String())
}

// LenBytes returns the UTF-8 byte length of the rope's text.
func (r Rope) LenBytes() int {
	if r.root == nil {
		return 0
	}
	return r.root.info.Bytes
}

// String returns the rope's full text. For large ropes prefer Slice or
// an iterator over repeated calls to this method.
func (r Rope) String() string {
	if r.root == nil {
		return ""
	}
	var sb strings.Builder
	sb.Grow(r.root.info.Bytes)
	r.root.appendString(&sb)
	return sb.String()
}

// CharAt returns the rune at character index i. It panics with an
// *IndexOutOfBoundsError if i is not in [0, LenChars).
func (r Rope) CharAt(i int) rune {
	mustInBoundsStrict(i, r.LenChars(), BoundChars)
	return r.root.charAt(i)
}

// TryCharAt is the checked counterpart of CharAt.
func (r Rope) TryCharAt(i int) (rune, error) {
	n := r.LenChars()
	if i < 0 || i >= n {
		return 0, outOfBounds(i, n, BoundChars)
	}
	return r.root.charAt(i), nil
}

// CharToUTF16 converts character index i to the equivalent UTF-16
// code-unit index. i may be LenChars (the open-ended end position).
func (r Rope) CharToUTF16(i int) int {
	mustInBounds(i, r.LenChars(), BoundChars)
	if r.root == nil {
		return 0
	}
	return r.root.prefixInfo(i).UTF16
}

// UTF16ToChar converts a UTF-16 code-unit index to the equivalent
// character index, snapping down if i lands inside a supplementary
// character's two-unit span.
func (r Rope) UTF16ToChar(i int) int {
	mustInBounds(i, r.LenUTF16(), BoundUTF16)
	if r.root == nil {
		return 0
	}
	return r.root.utf16ToChar(i)
}

// CharToLine returns the 0-based line number containing character
// index i. i may be LenChars.
func (r Rope) CharToLine(i int) int {
	mustInBounds(i, r.LenChars(), BoundChars)
	if r.root == nil {
		return 0
	}
	p := r.root.prefixInfo(i)
	// i on the LF of a CRLF whose CR ends the prefix: that break has not
	// completed yet, so the LF is still on the CR's line.
	if p.EndsWithCR && i < r.LenChars() && r.root.charAt(i) == '\n' {
		return p.Lines - 1
	}
	return p.Lines
}

// LineToChar returns the character index of the start of line n.
// n may equal LenLines, in which case the result is LenChars (spec
// §4.5's open-ended case; this value does not round-trip through
// CharToLine).
func (r Rope) LineToChar(n int) int {
	lc := r.LenLines()
	mustInBounds(n, lc, BoundLines)
	if n == 0 {
		return 0
	}
	if n == lc {
		return r.LenChars()
	}
	if r.root == nil {
		return 0
	}
	return r.root.lineToCharWithin(n, false)
}

// Line returns the text of 0-based line n, including its trailing line
// terminator, except the final line which has none.
func (r Rope) Line(n int) string {
	lc := r.LenLines()
	mustInBoundsStrict(n, lc, BoundLines)
	start := r.LineToChar(n)
	end := r.LenChars()
	if n+1 < lc {
		end = r.LineToChar(n + 1)
	}
	return r.Slice(start, end)
}

// Slice returns the text in character range [start, end).
func (r Rope) Slice(start, end int) string {
	n := r.LenChars()
	mustInBounds(start, n, BoundChars)
	mustInBounds(end, n, BoundChars)
	if start >= end || r.root == nil {
		return ""
	}
	var sb strings.Builder
	sb.Grow(end - start)
	r.root.appendRange(&sb, start, end)
	return sb.String()
}

// TrySlice is the checked counterpart of Slice.
func (r Rope) TrySlice(start, end int) (string, error) {
	n := r.LenChars()
	if start < 0 || start > n {
		return "", outOfBounds(start, n, BoundChars)
	}
	if end < 0 || end > n {
		return "", outOfBounds(end, n, BoundChars)
	}
	return r.Slice(start, end), nil
}

// SplitAt splits the rope at character index i into two ropes whose
// concatenation reproduces the original text exactly.
func (r Rope) SplitAt(i int) (Rope, Rope) {
	mustInBounds(i, r.LenChars(), BoundChars)
	if r.root == nil || i == 0 {
		return New(), r
	}
	if i >= r.LenChars() {
		return r, New()
	}
	left, right := r.root.split(i)
	return Rope{root: left}, Rope{root: right}
}

// TrySplitAt is the checked counterpart of SplitAt.
func (r Rope) TrySplitAt(i int) (Rope, Rope, error) {
	n := r.LenChars()
	if i < 0 || i > n {
		return Rope{}, Rope{}, outOfBounds(i, n, BoundChars)
	}
	l, rr := r.SplitAt(i)
	return l, rr, nil
}

// Append concatenates r with other, returning a new rope.
func (r Rope) Append(other Rope) Rope {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	return Rope{root: concat(r.rootOrEmpty(), other.rootOrEmpty())}
}

// Join concatenates a sequence of ropes left to right.
func Join(ropes ...Rope) Rope {
	result := New()
	for _, rp := range ropes {
		result = result.Append(rp)
	}
	return result
}

// Repeat returns a rope holding r's text repeated n times.
func Repeat(r Rope, n int) Rope {
	if n <= 0 || r.IsEmpty() {
		return New()
	}
	result := New()
	for i := 0; i < n; i++ {
		result = result.Append(r)
	}
	return result
}

// Insert splices text into the rope at character index i.
func (r Rope) Insert(i int, text string) Rope {
	mustInBounds(i, r.LenChars(), BoundChars)
	if len(text) == 0 {
		return r
	}
	if r.IsEmpty() {
		return FromString(text)
	}
	if i == 0 {
		return FromString(text).Append(r)
	}
	if i >= r.LenChars() {
		return r.Append(FromString(text))
	}
	left, right := r.SplitAt(i)
	return left.Append(FromString(text)).Append(right)
}

// TryInsert is the checked counterpart of Insert.
func (r Rope) TryInsert(i int, text string) (Rope, error) {
	n := r.LenChars()
	if i < 0 || i > n {
		return Rope{}, outOfBounds(i, n, BoundChars)
	}
	return r.Insert(i, text), nil
}

// Remove deletes the character range [start, end) from the rope.
func (r Rope) Remove(start, end int) Rope {
	n := r.LenChars()
	mustInBounds(start, n, BoundChars)
	mustInBounds(end, n, BoundChars)
	if start >= end || r.IsEmpty() {
		return r
	}
	if start == 0 && end >= n {
		return New()
	}
	if start == 0 {
		_, right := r.SplitAt(end)
		return right
	}
	if end >= n {
		left, _ := r.SplitAt(start)
		return left
	}
	left, tmp := r.SplitAt(start)
	_, right := tmp.SplitAt(end - start)
	return left.Append(right)
}

// TryRemove is the checked counterpart of Remove.
func (r Rope) TryRemove(start, end int) (Rope, error) {
	n := r.LenChars()
	if start < 0 || start > n {
		return Rope{}, outOfBounds(start, n, BoundChars)
	}
	if end < 0 || end > n {
		return Rope{}, outOfBounds(end, n, BoundChars)
	}
	return r.Remove(start, end), nil
}

// Replace removes [start, end) and inserts text at start, in one call.
func (r Rope) Replace(start, end int, text string) Rope {
	if start >= end && len(text) == 0 {
		return r
	}
	if start >= end {
		return r.Insert(start, text)
	}
	if len(text) == 0 {
		return r.Remove(start, end)
	}
	return r.Remove(start, end).Insert(start, text)
}

// Height reports the tree height, for diagnostics and balance tests.
func (r Rope) Height() int {
	if r.root == nil {
		return 1
	}
	return int(r.root.height) + 1
}

// LeafCount reports the number of leaves in the tree, for diagnostics
// and balance tests.
func (r Rope) LeafCount() int {
	if r.root == nil {
		return 0
	}
	return len(r.root.leaves(nil))
}

// Equals reports whether r and other contain the same text. Two ropes
// holding identical text but built through different edits can have
// different leaf boundaries, so this compares runes rather than raw
// chunks.
func (r Rope) Equals(other Rope) bool {
	if r.LenChars() != other.LenChars() {
		return false
	}
	it1 := r.Runes()
	it2 := other.Runes()
	for it1.Next() {
		if !it2.Next() || it1.Rune() != it2.Rune() {
			return false
		}
	}
	return !it2.Next()
}
