package rope

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// This file is the LineBreakScanner (spec §4.2) plus the raw-string
// utilities (spec §6) that must agree exactly with their rope-level
// equivalents for any s. They never touch the tree; every function here
// takes a plain Go string and returns a plain result.

// CountChars returns the number of Unicode scalar values in s.
func CountChars(s string) int {
	return utf8.RuneCountInString(s)
}

// CountLineBreaks returns the number of line breaks in s. A CRLF pair
// counts once.
func CountLineBreaks(s string) int {
	return ComputeTextInfo(s).Lines
}

// GraphemeCount returns the number of grapheme clusters in s — the
// number of user-perceived characters, as opposed to CountChars' count
// of Unicode scalar values. A flag emoji or a letter with a combining
// accent is one grapheme cluster but may be several scalar values.
func GraphemeCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// CharToUTF16Index converts a character index into s to the equivalent
// UTF-16 code-unit index, counting every rune above the Basic
// Multilingual Plane as two units (what a surrogate pair would cost in
// an actual UTF-16 buffer).
func CharToUTF16Index(s string, i int) int {
	rs := []rune(s)
	if i < 0 {
		i = 0
	}
	if i > len(rs) {
		i = len(rs)
	}
	u := 0
	for _, r := range rs[:i] {
		u += runeUTF16Width(r)
	}
	return u
}

// UTF16ToCharIndex converts a UTF-16 code-unit index into s to the
// equivalent character index. Per SPEC_FULL.md, an index that lands
// inside the two-unit span of a supplementary-plane character snaps
// down to that character rather than failing.
func UTF16ToCharIndex(s string, i int) int {
	if i <= 0 {
		return 0
	}
	u := 0
	idx := 0
	for _, r := range s {
		w := runeUTF16Width(r)
		if u+w > i {
			return idx
		}
		u += w
		idx++
	}
	return idx
}

// CharToLineIndex returns the 0-based line number containing character
// index i: the number of line breaks that complete at or before
// position i. Characters before any break are on line 0. A break that
// is only partially consumed — i lands between the CR and LF of a CRLF
// pair — has not completed yet and does not advance the line number.
func CharToLineIndex(s string, i int) int {
	rs := []rune(s)
	if i < 0 {
		i = 0
	}
	if i > len(rs) {
		i = len(rs)
	}

	line := 0
	pos := 0
	for pos < i {
		switch rs[pos] {
		case '\r':
			if pos+1 < len(rs) && rs[pos+1] == '\n' {
				if pos+2 > i {
					pos = i
					continue
				}
				pos += 2
			} else {
				pos++
			}
			line++
		case '\n':
			pos++
			line++
		default:
			pos++
		}
	}
	return line
}

// LineToCharIndex returns the character index of the start of line n
// (0-based). Line 0 starts at 0. LineToCharIndex(s, CountLineBreaks(s)+1)
// equals CountChars(s), per spec §4.5's line_to_char(len_lines) case.
func LineToCharIndex(s string, n int) int {
	if n <= 0 {
		return 0
	}

	rs := []rune(s)
	line := 0
	pos := 0
	for pos < len(rs) {
		switch rs[pos] {
		case '\r':
			if pos+1 < len(rs) && rs[pos+1] == '\n' {
				pos += 2
			} else {
				pos++
			}
			line++
			if line == n {
				return pos
			}
		case '\n':
			pos++
			line++
			if line == n {
				return pos
			}
		default:
			pos++
		}
	}
	return len(rs)
}

// charIndexToByteIndex converts a character index within s to the
// corresponding byte offset. Callers only ever use this to locate a
// char-boundary cut point, so the result is always a valid UTF-8
// boundary by construction.
func charIndexToByteIndex(s string, charIdx int) int {
	if charIdx <= 0 {
		return 0
	}
	count := 0
	for i := range s {
		if count == charIdx {
			return i
		}
		count++
	}
	return len(s)
}

// isCRLFBoundary reports whether byte offset b of s sits strictly
// between a CR and the LF that immediately follows it — the one byte
// offset a split must never land on, since spec §4.3 forbids separating
// a CRLF pair within a single leaf.
func isCRLFBoundary(s string, b int) bool {
	if b <= 0 || b >= len(s) {
		return false
	}
	return s[b-1] == '\r' && s[b] == '\n'
}
