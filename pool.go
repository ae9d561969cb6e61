package rope

import "sync"

// NodePool recycles *Node allocations via sync.Pool, cutting GC
// pressure for workloads that perform many small edits (interactive
// editing, bulk rebuilding). It is optional: every rope operation in
// this package works without it, and DefaultPool exists purely as a
// convenience for callers who build their own leaf/internal nodes
// directly instead of going through FromString/Insert/etc.
type NodePool struct {
	leafPool     sync.Pool
	internalPool sync.Pool
}

// DefaultPool is the package-level node pool.
var DefaultPool = NewNodePool()

// NewNodePool returns a new, empty NodePool.
func NewNodePool() *NodePool {
	return &NodePool{
		leafPool: sync.Pool{
			New: func() interface{} { return &Node{height: 0} },
		},
		internalPool: sync.Pool{
			New: func() interface{} {
				return &Node{
					height:    1,
					children:  make([]*Node, 0, MaxChildren),
					childInfo: make([]TextInfo, 0, MaxChildren),
				}
			},
		},
	}
}

// GetLeaf retrieves a zeroed leaf node from the pool.
func (p *NodePool) GetLeaf() *Node {
	n := p.leafPool.Get().(*Node)
	n.height = 0
	n.info = TextInfo{}
	n.leaf = Leaf{}
	n.children = nil
	n.childInfo = nil
	return n
}

// GetInternal retrieves a zeroed internal node from the pool.
func (p *NodePool) GetInternal(height uint8) *Node {
	n := p.internalPool.Get().(*Node)
	n.height = height
	n.info = TextInfo{}
	n.leaf = Leaf{}
	n.children = n.children[:0]
	n.childInfo = n.childInfo[:0]
	return n
}

// PutLeaf returns a leaf node to the pool. The node must not be used
// afterward.
func (p *NodePool) PutLeaf(n *Node) {
	if n == nil || !n.isLeaf() {
		return
	}
	n.leaf = Leaf{}
	p.leafPool.Put(n)
}

// PutInternal returns an internal node to the pool. The node must not
// be used afterward.
func (p *NodePool) PutInternal(n *Node) {
	if n == nil || n.isLeaf() {
		return
	}
	for i := range n.children {
		n.children[i] = nil
	}
	n.children = n.children[:0]
	n.childInfo = n.childInfo[:0]
	p.internalPool.Put(n)
}

// Put returns n to the appropriate pool based on its kind.
func (p *NodePool) Put(n *Node) {
	if n == nil {
		return
	}
	if n.isLeaf() {
		p.PutLeaf(n)
	} else {
		p.PutInternal(n)
	}
}
