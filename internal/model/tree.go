package model

// ParseNode is a node of a constituency parse tree. Internal nodes carry a
// constituent or part-of-speech label; leaves carry the token text. Begin/End
// token-index annotations are assigned once by IndexSpans.
type ParseNode struct {
	Label    string
	Children []*ParseNode

	Begin int
	End   int

	indexed bool
}

// IsLeaf reports whether the node has no children (a token leaf).
func (n *ParseNode) IsLeaf() bool {
	return len(n.Children) == 0
}

// Indexed reports whether begin/end token indices have been assigned.
func (n *ParseNode) Indexed() bool {
	return n.indexed
}

// IndexSpans assigns begin/end token indices to every node in the tree,
// starting the leaf count at from. Returns the index one past the last leaf.
// Safe to call once; the annotator calls it lazily before searching.
func (n *ParseNode) IndexSpans(from int) int {
	n.Begin = from
	if n.IsLeaf() {
		n.End = from + 1
	} else {
		next := from
		for _, child := range n.Children {
			next = child.IndexSpans(next)
		}
		n.End = next
	}
	n.indexed = true
	return n.End
}

// YieldLen returns the number of token leaves under the node.
func (n *ParseNode) YieldLen() int {
	if n.IsLeaf() {
		return 1
	}
	total := 0
	for _, child := range n.Children {
		total += child.YieldLen()
	}
	return total
}
