package rope

import "strings"

// Node shape constants (spec §3), matching the teacher's B-tree fanout
// bounds in node.go.
const (
	// MinChildren is the lower fan-out bound of the tree. No code
	// enforces it: nodes are never merged or refilled, so an internal
	// node built from the last group of a MaxChildren-wide packing, or
	// left over from a split, may hold fewer children.
	MinChildren = 4
	// MaxChildren is the maximum number of children before a node must
	// split.
	MaxChildren = 16
)

// Node is one node of the tree: a leaf (height == 0, leaf populated) or
// an internal node (height > 0, children/childInfo populated). info is
// always the TextInfo of the node's whole subtree.
type Node struct {
	height    uint8
	info      TextInfo
	leaf      Leaf
	children  []*Node
	childInfo []TextInfo
}

func (n *Node) isLeaf() bool { return n.height == 0 }

func newLeafNode(l Leaf) *Node {
	return &Node{height: 0, info: l.info, leaf: l}
}

// newInternalNode builds a node directly over children, recomputing its
// own TextInfo and height. It does not check the child count; see
// buildNodeFromChildren, which keeps each node at MaxChildren or fewer.
func newInternalNode(children []*Node) *Node {
	n := &Node{height: children[0].height + 1}
	n.children = children
	n.childInfo = make([]TextInfo, len(children))
	info := TextInfo{}
	for i, c := range children {
		n.childInfo[i] = c.info
		info = info.Add(c.info)
	}
	n.info = info
	return n
}

// buildNodeFromChildren packs children into one or more nodes of at
// most MaxChildren each, then recurses until a single root node
// remains. Ported from the teacher's buildNodeFromChildren/mergeNodes.
func buildNodeFromChildren(children []*Node) *Node {
	if len(children) == 0 {
		return newLeafNode(Leaf{})
	}
	if len(children) == 1 {
		return children[0]
	}

	for len(children) > MaxChildren {
		var grouped []*Node
		for i := 0; i < len(children); i += MaxChildren {
			end := i + MaxChildren
			if end > len(children) {
				end = len(children)
			}
			grouped = append(grouped, newInternalNode(children[i:end]))
		}
		children = grouped
	}

	if len(children) == 1 {
		return children[0]
	}
	return newInternalNode(children)
}

// leaves appends every leaf of the subtree, in order, to dst.
func (n *Node) leaves(dst []Leaf) []Leaf {
	if n.isLeaf() {
		if !n.leaf.IsEmpty() {
			dst = append(dst, n.leaf)
		}
		return dst
	}
	for _, c := range n.children {
		dst = c.leaves(dst)
	}
	return dst
}

// appendString appends this subtree's text to sb.
func (n *Node) appendString(sb *strings.Builder) {
	if n.isLeaf() {
		sb.WriteString(n.leaf.text)
		return
	}
	for _, c := range n.children {
		c.appendString(sb)
	}
}

// appendRange appends the text of char range [start, end) of this
// subtree to sb. Ported from the teacher's appendRange, retargeted from
// byte offsets to char offsets.
func (n *Node) appendRange(sb *strings.Builder, start, end int) {
	if start >= end {
		return
	}
	if n.isLeaf() {
		b0 := charIndexToByteIndex(n.leaf.text, start)
		b1 := charIndexToByteIndex(n.leaf.text, end)
		sb.WriteString(n.leaf.text[b0:b1])
		return
	}

	offset := 0
	for i, c := range n.children {
		childLen := n.childInfo[i].Chars
		childEnd := offset + childLen
		if childEnd <= start {
			offset = childEnd
			continue
		}
		if offset >= end {
			break
		}

		childStart := 0
		if start > offset {
			childStart = start - offset
		}
		childEndAdj := childLen
		if end < childEnd {
			childEndAdj = end - offset
		}
		c.appendRange(sb, childStart, childEndAdj)
		offset = childEnd
	}
}

// charAt returns the rune at the given in-bounds char index.
func (n *Node) charAt(charIdx int) rune {
	if n.isLeaf() {
		return n.leaf.CharAt(charIdx)
	}
	for i, ci := range n.childInfo {
		if charIdx < ci.Chars {
			return n.children[i].charAt(charIdx)
		}
		charIdx -= ci.Chars
	}
	// Unreachable for an in-bounds call.
	return n.children[len(n.children)-1].charAt(0)
}

// prefixInfo returns the TextInfo of this subtree's text truncated to
// the first charIdx characters, computed by descending the tree rather
// than materializing the substring. Because TextInfo.Add already
// contains the CRLF correction, summing prefixes this way yields
// correct Lines/UTF16 counts even when a CRLF pair is split across two
// leaves of the subtree.
func (n *Node) prefixInfo(charIdx int) TextInfo {
	if charIdx <= 0 {
		return TextInfo{}
	}
	if charIdx >= n.info.Chars {
		return n.info
	}
	if n.isLeaf() {
		b := charIndexToByteIndex(n.leaf.text, charIdx)
		return ComputeTextInfo(n.leaf.text[:b])
	}

	acc := TextInfo{}
	for i, ci := range n.childInfo {
		if charIdx < acc.Chars+ci.Chars {
			residual := charIdx - acc.Chars
			return acc.Add(n.children[i].prefixInfo(residual))
		}
		acc = acc.Add(ci)
	}
	return acc
}

// utf16ToChar returns the char offset, within this subtree, that
// corresponds to UTF-16 code-unit offset utf16Idx, snapping down into a
// supplementary character's two-unit span per SPEC_FULL.md. utf16Idx is
// relative to this subtree's own start.
func (n *Node) utf16ToChar(utf16Idx int) int {
	if utf16Idx <= 0 {
		return 0
	}
	if utf16Idx >= n.info.UTF16 {
		return n.info.Chars
	}
	if n.isLeaf() {
		return n.leaf.UTF16ToChar(utf16Idx)
	}

	charsBefore := 0
	utf16Before := 0
	for i, ci := range n.childInfo {
		if utf16Idx < utf16Before+ci.UTF16 {
			return charsBefore + n.children[i].utf16ToChar(utf16Idx-utf16Before)
		}
		charsBefore += ci.Chars
		utf16Before += ci.UTF16
	}
	return charsBefore
}

// lineToCharWithin returns the char offset, within this subtree, of the
// start of local line `target` (the position right after `target` line
// breaks have completed), given that carryEndsWithCR describes whether
// the character immediately preceding this subtree's first character is
// a CR — the information needed to tell whether this subtree's own
// leading LF, if any, is the second half of a CRLF pair that already
// completed before this subtree began.
func (n *Node) lineToCharWithin(target int, carryEndsWithCR bool) int {
	if target <= 0 {
		return 0
	}
	if n.isLeaf() {
		return localLineToChar(n.leaf.text, target, carryEndsWithCR)
	}

	charsSoFar := 0
	linesSoFar := 0
	carry := carryEndsWithCR
	for i, ci := range n.childInfo {
		childLines := ci.Lines
		if carry && ci.StartsWithLF {
			childLines--
		}
		if linesSoFar+childLines >= target {
			localTarget := target - linesSoFar
			local := n.children[i].lineToCharWithin(localTarget, carry)
			// A break ending on this child's trailing CR continues into the
			// next child's leading LF; the line starts after that LF.
			if local == ci.Chars && ci.EndsWithCR && i+1 < len(n.children) && n.childInfo[i+1].StartsWithLF {
				local++
			}
			return charsSoFar + local
		}
		linesSoFar += childLines
		carry = ci.EndsWithCR
		charsSoFar += ci.Chars
	}
	return charsSoFar
}

// localLineToChar is the leaf-level base case of lineToCharWithin: a
// plain forward scan of s counting completed line breaks, skipping an
// uncounted leading LF when carryEndsWithCR says that LF already
// completed a break with a CR belonging to the previous leaf.
func localLineToChar(s string, target int, carryEndsWithCR bool) int {
	if target <= 0 {
		return 0
	}
	rs := []rune(s)
	pos := 0
	line := 0
	if carryEndsWithCR && len(rs) > 0 && rs[0] == '\n' {
		pos = 1
	}
	for pos < len(rs) {
		switch rs[pos] {
		case '\r':
			if pos+1 < len(rs) && rs[pos+1] == '\n' {
				pos += 2
			} else {
				pos++
			}
			line++
			if line == target {
				return pos
			}
		case '\n':
			pos++
			line++
			if line == target {
				return pos
			}
		default:
			pos++
		}
	}
	return len(rs)
}

// split divides the subtree into the text before and from charIdx,
// returning two (possibly empty-leaf) nodes whose concatenation
// reproduces the original text exactly. Ported from the teacher's
// split/splitLeaf/splitInternal, retargeted from byte to char offsets.
func (n *Node) split(charIdx int) (*Node, *Node) {
	if charIdx <= 0 {
		return newLeafNode(Leaf{}), n
	}
	if charIdx >= n.info.Chars {
		return n, newLeafNode(Leaf{})
	}
	if n.isLeaf() {
		l, r := n.leaf.Split(charIdx)
		return newLeafNode(l), newLeafNode(r)
	}

	acc := 0
	for i, ci := range n.childInfo {
		if charIdx < acc+ci.Chars {
			left, right := n.children[i].split(charIdx - acc)

			leftChildren := append([]*Node{}, n.children[:i]...)
			if left.info.Chars > 0 {
				leftChildren = append(leftChildren, left)
			}
			var rightChildren []*Node
			if right.info.Chars > 0 {
				rightChildren = append(rightChildren, right)
			}
			rightChildren = append(rightChildren, n.children[i+1:]...)

			return buildNodeFromChildren(leftChildren), buildNodeFromChildren(rightChildren)
		}
		if charIdx == acc+ci.Chars {
			leftChildren := append([]*Node{}, n.children[:i+1]...)
			rightChildren := append([]*Node{}, n.children[i+1:]...)
			return buildNodeFromChildren(leftChildren), buildNodeFromChildren(rightChildren)
		}
		acc += ci.Chars
	}
	// Unreachable for an in-bounds call.
	return n, newLeafNode(Leaf{})
}

// concat joins two subtrees into one. Ported from the teacher's
// concat/concatLeaves/mergeNodes: unequal-height subtrees are joined by
// descending the taller side's last (or shorter side's first) edge
// until the heights match, then splicing at that level and letting
// buildNodeFromChildren propagate any overflow upward. This only
// touches the O(height) nodes on the seam's path, never the full leaf
// sets of either operand.
func concat(a, b *Node) *Node {
	if a.info.Chars == 0 {
		return b
	}
	if b.info.Chars == 0 {
		return a
	}

	if a.isLeaf() && b.isLeaf() {
		return concatLeaves(a, b)
	}

	switch {
	case a.height == b.height:
		return concatSameHeight(a, b)
	case a.height > b.height:
		return concatIntoRightEdge(a, b)
	default:
		return concatIntoLeftEdge(a, b)
	}
}

// concatLeaves merges two leaves, producing one node spanning however
// many leaves a.leaf.Append(b.leaf) needed (one if they fit, a couple
// of rebalanced leaves otherwise). This is the base case every concat
// recursion eventually bottoms out at, which is where CRLF-boundary and
// leaf-size correctness at the seam actually gets enforced.
func concatLeaves(a, b *Node) *Node {
	merged := a.leaf.Append(b.leaf)
	children := make([]*Node, len(merged))
	for i, l := range merged {
		children[i] = newLeafNode(l)
	}
	return buildNodeFromChildren(children)
}

// spliceSeam folds a recursively-concatenated seam node back into a
// sibling list at the height those siblings expect. seam is usually
// either exactly at the expected height (use it as-is) or one level
// taller (unwrap its children, which are themselves at the expected
// height, instead of the wrapper). concat can also return a shorter
// node, when one-child nodes at the seam merge into a single child; that
// node is wrapped in one-child parents up to the expected height.
func spliceSeam(seam *Node, expected uint8) []*Node {
	if seam.height > expected {
		return seam.children
	}
	for seam.height < expected {
		seam = newInternalNode([]*Node{seam})
	}
	return []*Node{seam}
}

// concatSameHeight joins two internal nodes of equal height by
// recursively concatenating their adjacent boundary children and
// splicing the result back in, touching only that seam rather than
// every leaf of either subtree.
func concatSameHeight(a, b *Node) *Node {
	expected := a.height - 1
	seam := concat(a.children[len(a.children)-1], b.children[0])

	children := make([]*Node, 0, len(a.children)+len(b.children))
	children = append(children, a.children[:len(a.children)-1]...)
	children = append(children, spliceSeam(seam, expected)...)
	children = append(children, b.children[1:]...)
	return buildNodeFromChildren(children)
}

// concatIntoRightEdge handles append where a is taller than b: descend
// a's rightmost edge by concatenating its last child with all of b,
// then splice the result back as a's new last child (or children).
func concatIntoRightEdge(a, b *Node) *Node {
	expected := a.height - 1
	seam := concat(a.children[len(a.children)-1], b)

	children := make([]*Node, 0, len(a.children)+1)
	children = append(children, a.children[:len(a.children)-1]...)
	children = append(children, spliceSeam(seam, expected)...)
	return buildNodeFromChildren(children)
}

// concatIntoLeftEdge is concatIntoRightEdge's mirror image for b taller
// than a: descend b's leftmost edge.
func concatIntoLeftEdge(a, b *Node) *Node {
	expected := b.height - 1
	seam := concat(a, b.children[0])

	children := make([]*Node, 0, len(b.children)+1)
	children = append(children, spliceSeam(seam, expected)...)
	children = append(children, b.children[1:]...)
	return buildNodeFromChildren(children)
}

// nodeFromLeaves builds a balanced tree over an ordered slice of
// leaves.
func nodeFromLeaves(leaves []Leaf) *Node {
	if len(leaves) == 0 {
		return newLeafNode(Leaf{})
	}
	children := make([]*Node, len(leaves))
	for i, l := range leaves {
		children[i] = newLeafNode(l)
	}
	return buildNodeFromChildren(children)
}
