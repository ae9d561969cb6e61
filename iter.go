package rope

import "unicode/utf8"

// chunkIterFrame is one stack frame of a ChunkIterator's tree walk: the
// node being visited and the index of its next unvisited child.
type chunkIterFrame struct {
	node     *Node
	childIdx int
	visited  bool // for a leaf frame: whether its one chunk was already returned
	charAt   int  // char offset of the start of this node within the rope
}

// ChunkIterator iterates over a rope's leaves in order, each leaf's
// text surfacing as one "chunk". This is the cheapest way to walk a
// rope's text without materializing the whole string.
type ChunkIterator struct {
	stack   []chunkIterFrame
	started bool
	chunk   string
	charAt  int
}

// Chunks returns an iterator over the rope's leaves.
func (r Rope) Chunks() *ChunkIterator {
	it := &ChunkIterator{}
	if r.root != nil {
		it.stack = append(it.stack, chunkIterFrame{node: r.root})
	}
	return it
}

// Next advances to the next chunk, returning false once exhausted.
func (it *ChunkIterator) Next() bool {
	for len(it.stack) > 0 {
		frame := &it.stack[len(it.stack)-1]
		node := frame.node

		if node.isLeaf() {
			if frame.visited || node.leaf.IsEmpty() {
				it.stack = it.stack[:len(it.stack)-1]
				continue
			}
			frame.visited = true
			it.chunk = node.leaf.text
			it.charAt = frame.charAt
			return true
		}

		if frame.childIdx < len(node.children) {
			childCharAt := frame.charAt
			for i := 0; i < frame.childIdx; i++ {
				childCharAt += node.childInfo[i].Chars
			}
			child := node.children[frame.childIdx]
			frame.childIdx++
			it.stack = append(it.stack, chunkIterFrame{node: child, charAt: childCharAt})
			continue
		}

		it.stack = it.stack[:len(it.stack)-1]
	}
	return false
}

// Chunk returns the current chunk's text.
func (it *ChunkIterator) Chunk() string { return it.chunk }

// CharOffset returns the char offset of the start of the current chunk.
func (it *ChunkIterator) CharOffset() int { return it.charAt }

// RuneIterator iterates over a rope's runes in order, built on top of
// ChunkIterator so it never materializes the full text.
type RuneIterator struct {
	chunks  *ChunkIterator
	text    string
	pos     int // byte offset within the current chunk
	charAt  int
	current rune
	started bool
}

// Runes returns an iterator over the rope's runes.
func (r Rope) Runes() *RuneIterator {
	return &RuneIterator{chunks: r.Chunks()}
}

// Next advances to the next rune, returning false once exhausted.
func (it *RuneIterator) Next() bool {
	if !it.started {
		it.started = true
	} else {
		it.charAt++
	}

	for it.pos >= len(it.text) {
		if !it.chunks.Next() {
			return false
		}
		it.text = it.chunks.Chunk()
		it.pos = 0
	}

	r, size := utf8.DecodeRuneInString(it.text[it.pos:])
	it.current = r
	it.pos += size
	return true
}

// Rune returns the current rune.
func (it *RuneIterator) Rune() rune { return it.current }

// CharIndex returns the char index of the current rune within the
// rope.
func (it *RuneIterator) CharIndex() int { return it.charAt }

// LineIterator iterates over a rope's lines, each surfaced as Rope.Line
// returns it: with its terminator, except the final line, which has
// none.
type LineIterator struct {
	rope    Rope
	lineNum int
	started bool
	done    bool
	text    string
}

// Lines returns an iterator over the rope's lines.
func (r Rope) Lines() *LineIterator {
	return &LineIterator{rope: r, lineNum: -1}
}

// Next advances to the next line, returning false once exhausted.
func (it *LineIterator) Next() bool {
	if it.done {
		return false
	}
	it.lineNum++
	if it.lineNum >= it.rope.LenLines() {
		it.done = true
		return false
	}
	it.text = it.rope.Line(it.lineNum)
	return true
}

// Text returns the current line's text, including its terminator if it
// has one.
func (it *LineIterator) Text() string { return it.text }

// LineNumber returns the current 0-based line number.
func (it *LineIterator) LineNumber() int { return it.lineNum }
