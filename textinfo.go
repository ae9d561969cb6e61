package rope

import "unicode/utf8"

// TextInfo is the additive summary cached at every node of the tree:
// character count, UTF-16 code-unit count, line-break count, and the
// UTF-8 byte count that bounds leaf size (spec §3's "byte-or-code-unit
// count", ported to a UTF-8 host per SPEC_FULL.md).
//
// TextInfo is a monoid: Zero is the identity, and Add is associative.
// The one subtlety (spec §4.1) is that Add is not pure pointwise
// addition for Lines: concatenating a piece ending in CR with a piece
// starting in LF must not double-count that CRLF as two line breaks.
// StartsWithLF and EndsWithCR exist solely so Add can detect and correct
// that case without rescanning any text.
type TextInfo struct {
	Chars        int
	UTF16        int
	Lines        int
	Bytes        int
	StartsWithLF bool
	EndsWithCR   bool
}

// Zero is the identity element of the TextInfo monoid.
func Zero() TextInfo { return TextInfo{} }

// IsZero reports whether this is the identity element.
func (t TextInfo) IsZero() bool { return t.Chars == 0 }

// Add combines two adjacent summaries, applying the CRLF correction at
// their boundary when the left piece ends in CR and the right piece
// starts with LF.
//
// Add is associative: the correction only ever fires at the single
// physical boundary between two non-empty operands, and StartsWithLF/
// EndsWithCR of a combined value always reflect the first/last non-empty
// operand, so grouping (a+b)+c and a+(b+c) apply the same corrections at
// the same positions regardless of how the sum is parenthesized.
func (a TextInfo) Add(b TextInfo) TextInfo {
	if a.Chars == 0 {
		return b
	}
	if b.Chars == 0 {
		return a
	}

	lines := a.Lines + b.Lines
	if a.EndsWithCR && b.StartsWithLF {
		lines--
	}

	return TextInfo{
		Chars:        a.Chars + b.Chars,
		UTF16:        a.UTF16 + b.UTF16,
		Lines:        lines,
		Bytes:        a.Bytes + b.Bytes,
		StartsWithLF: a.StartsWithLF,
		EndsWithCR:   b.EndsWithCR,
	}
}

// ComputeTextInfo scans s once and produces its TextInfo. Line breaks
// are LF, CR, or CRLF (counted once); CRLF-across-boundary correction is
// the caller's concern (via Add), not this function's — a single string
// has no boundary to correct.
func ComputeTextInfo(s string) TextInfo {
	if len(s) == 0 {
		return TextInfo{}
	}

	var info TextInfo
	info.Bytes = len(s)

	prevCR := false
	firstRune := true

	for _, r := range s {
		info.Chars++
		if r <= 0xFFFF {
			info.UTF16++
		} else {
			info.UTF16 += 2
		}

		if firstRune {
			info.StartsWithLF = r == '\n'
			firstRune = false
		}

		switch {
		case r == '\n':
			if prevCR {
				// CRLF: already counted when we saw the CR.
			} else {
				info.Lines++
			}
			prevCR = false
		case r == '\r':
			info.Lines++
			prevCR = true
		default:
			prevCR = false
		}
	}

	info.EndsWithCR = prevCR
	return info
}

// runeUTF16Width returns how many UTF-16 code units r occupies: 1 inside
// the Basic Multilingual Plane, 2 for a supplementary-plane character
// (what would be a surrogate pair in an actual UTF-16 buffer).
func runeUTF16Width(r rune) int {
	if r > 0xFFFF {
		return 2
	}
	return 1
}

// decodeRuneWidth reports the byte width of the rune starting at s[0].
func decodeRuneWidth(s string) int {
	_, size := utf8.DecodeRuneInString(s)
	return size
}
