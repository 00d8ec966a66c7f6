// Package cst defines the concrete syntax tree consumed by the linter.
//
// Nodes live in a single arena per Tree; parent, previous-sibling, and
// next-sibling links are NodeID indices rather than pointers, so the
// tree cannot form reference cycles and does not outlive its arena.
package cst

// NodeID is an index into a Tree's node arena. The zero value is the ID
// of the first allocated node; use NoNode to mean "absent".
type NodeID int32

// NoNode is the sentinel value for an absent parent/sibling/child.
const NoNode NodeID = -1

// Kind distinguishes the CST's tagged-variant cases (spec §3).
type Kind uint8

const (
	// KindNode is an interior production application.
	KindNode Kind = iota
	// KindLexeme is a terminal occupying a slice of the source.
	KindLexeme
	// KindSeparator is a synthetic gap sibling inserted between sequence elements.
	KindSeparator
	// KindNull is an empty production with zero length.
	KindNull
)

// Node is one arena slot. Which fields are meaningful depends on Kind:
//
//   - KindNode: RuleID, Children are populated.
//   - KindLexeme, KindSeparator: SymbolID is populated.
//   - KindNull: SymbolID is populated; Length is always 0.
type Node struct {
	Kind Kind

	// RuleID identifies the production for KindNode; -1 otherwise.
	RuleID int32

	// SymbolID identifies the terminal/gap symbol for non-KindNode leaves; -1 for KindNode.
	SymbolID int32

	// Start is the byte offset where this node's span begins.
	Start int
	// Length is the span's byte length.
	Length int

	// Children lists this node's direct children in source order.
	// Empty for leaves.
	Children []NodeID

	Parent NodeID
	Prev   NodeID
	Next   NodeID
}

// End returns Start+Length.
func (n Node) End() int {
	return n.Start + n.Length
}

// Tree owns a single CST's node arena plus the position index over its
// source buffer.
type Tree struct {
	Source []byte
	Nodes  []Node
	Root   NodeID

	Index *PositionIndex
}

// NewTree creates a tree over source with an empty arena. The position
// index is built immediately since every component downstream needs it.
func NewTree(source []byte) *Tree {
	return &Tree{
		Source: source,
		Nodes:  nil,
		Root:   NoNode,
		Index:  NewPositionIndex(source),
	}
}

// Alloc appends a new node to the arena and returns its ID.
func (t *Tree) Alloc(n Node) NodeID {
	id := NodeID(len(t.Nodes))
	t.Nodes = append(t.Nodes, n)
	return id
}

// Node returns the node at id. Callers must not hold onto the returned
// pointer across further Alloc calls, since the backing array may move.
func (t *Tree) Node(id NodeID) *Node {
	if id == NoNode {
		return nil
	}
	return &t.Nodes[id]
}

// Children returns the direct children of id in source order.
func (t *Tree) Children(id NodeID) []NodeID {
	n := t.Node(id)
	if n == nil {
		return nil
	}
	return n.Children
}

// FirstChild returns the first child of id, or NoNode if childless.
func (t *Tree) FirstChild(id NodeID) NodeID {
	children := t.Children(id)
	if len(children) == 0 {
		return NoNode
	}
	return children[0]
}

// LastChild returns the last child of id, or NoNode if childless.
func (t *Tree) LastChild(id NodeID) NodeID {
	children := t.Children(id)
	if len(children) == 0 {
		return NoNode
	}
	return children[len(children)-1]
}

// Literal returns the raw bytes spanning [start, start+length) in source.
func (t *Tree) Literal(start, length int) []byte {
	if start < 0 || start+length > len(t.Source) || length < 0 {
		return nil
	}
	return t.Source[start : start+length]
}

// Text returns the literal text covered by a node's span.
func (t *Tree) Text(id NodeID) []byte {
	n := t.Node(id)
	if n == nil {
		return nil
	}
	return t.Literal(n.Start, n.Length)
}

// Link attaches child as the next child of parent, wiring prev/next
// sibling links and the parent back-reference. Children must be linked
// in source order.
func (t *Tree) Link(parent, child NodeID) {
	p := t.Node(parent)
	p.Children = append(p.Children, child)

	c := t.Node(child)
	c.Parent = parent

	if len(p.Children) > 1 {
		prevID := p.Children[len(p.Children)-2]
		prev := t.Node(prevID)
		prev.Next = child
		c.Prev = prevID
	} else {
		c.Prev = NoNode
	}
	c.Next = NoNode
}

// Recompute sets parent's Start/Length from its children's span, per the
// spec §3 invariant: start equals the first child's start (or the node's
// own start if childless), and start+length equals the last child's end.
func (t *Tree) Recompute(parent NodeID) {
	p := t.Node(parent)
	if len(p.Children) == 0 {
		return
	}
	first := t.Node(p.Children[0])
	last := t.Node(p.Children[len(p.Children)-1])
	p.Start = first.Start
	p.Length = last.End() - first.Start
}
