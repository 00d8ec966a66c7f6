package cst

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSimpleTree() (*Tree, NodeID) {
	src := []byte("ab")
	t := NewTree(src)
	lexA := t.Alloc(Node{Kind: KindLexeme, RuleID: -1, SymbolID: 1, Start: 0, Length: 1, Parent: NoNode})
	lexB := t.Alloc(Node{Kind: KindLexeme, RuleID: -1, SymbolID: 1, Start: 1, Length: 1, Parent: NoNode})
	root := t.Alloc(Node{Kind: KindNode, RuleID: 0, SymbolID: -1, Parent: NoNode})
	t.Link(root, lexA)
	t.Link(root, lexB)
	t.Recompute(root)
	t.Root = root
	return t, root
}

func TestTreeInvariants(t *testing.T) {
	tree, root := buildSimpleTree()

	n := tree.Node(root)
	require.Len(t, n.Children, 2)
	assert.Equal(t, 0, n.Start)
	assert.Equal(t, 2, n.Length)

	first := tree.Node(n.Children[0])
	last := tree.Node(n.Children[len(n.Children)-1])
	assert.Equal(t, n.Start, first.Start)
	assert.Equal(t, n.End(), last.End())
}

func TestTreeSiblingLinks(t *testing.T) {
	tree, root := buildSimpleTree()
	children := tree.Children(root)

	a := tree.Node(children[0])
	b := tree.Node(children[1])

	assert.Equal(t, NoNode, a.Prev)
	assert.Equal(t, children[1], a.Next)
	assert.Equal(t, children[0], b.Prev)
	assert.Equal(t, NoNode, b.Next)
	assert.Equal(t, root, a.Parent)
	assert.Equal(t, root, b.Parent)
}

func TestWalkPreorder(t *testing.T) {
	tree, root := buildSimpleTree()

	var visited []NodeID
	Walk(tree, root, func(tr *Tree, id NodeID) bool {
		visited = append(visited, id)
		return true
	})

	require.Len(t, visited, 3)
	assert.Equal(t, root, visited[0])
}

func TestLiteralOutOfRange(t *testing.T) {
	tree, _ := buildSimpleTree()
	assert.Nil(t, tree.Literal(-1, 1))
	assert.Nil(t, tree.Literal(0, 10))
}
