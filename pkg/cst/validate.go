package cst

import "fmt"

// InvariantError marks a violation of the tree-shape invariant spec §3
// and §8 require of every interior node: its span must equal the union
// of its children's spans, start to start and end to end. A tree that
// fails this check was built wrong; it is a parser bug, not a bad input.
type InvariantError struct {
	Node    NodeID
	Message string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("cst: node %d: %s", e.Node, e.Message)
}

// Validate walks the whole tree with Walk and checks, for every interior
// node, that Start equals its first child's Start and End equals its
// last child's End (the invariant Tree.Recompute maintains incrementally
// as nodes are linked). It exists to catch a parser that built or linked
// nodes without going through Recompute, a cheap one-shot sanity pass
// over a tree that is otherwise trusted completely by every downstream
// package.
func Validate(t *Tree) error {
	if t.Root == NoNode {
		return nil
	}

	var failure *InvariantError

	Walk(t, t.Root, func(tr *Tree, id NodeID) bool {
		if failure != nil {
			return false
		}
		n := tr.Node(id)
		if len(n.Children) == 0 {
			return true
		}

		first := tr.Node(n.Children[0])
		last := tr.Node(n.Children[len(n.Children)-1])

		if n.Start != first.Start {
			failure = &InvariantError{Node: id, Message: fmt.Sprintf("start %d does not match first child's start %d", n.Start, first.Start)}
			return false
		}
		if n.End() != last.End() {
			failure = &InvariantError{Node: id, Message: fmt.Sprintf("end %d does not match last child's end %d", n.End(), last.End())}
			return false
		}
		return true
	})

	if failure != nil {
		return failure
	}
	return nil
}
