/*
Package syntax implements the lossless concrete syntax tree: an
arena-allocated "green" tree addressed by index, and a "red" cursor
(Node) that is a stack-allocated (tree, index) pair rather than a pointer
with a parent link. There are no parent pointers anywhere in the arena, so
there are no cycles and no ownership questions — the whole tree is freed in
one step when the Tree value is dropped by its owner.

A Builder assembles a Tree from a flat stream of Start/Token/Trivia/Finish
calls, exactly the shape the parser's event stream takes per the recursive
descent design: Start(kind) opens a frame, Token/Trivia append a leaf to
the innermost open frame, and Finish closes the innermost frame into a node
and appends it to its parent's frame (or becomes the root, once the
outermost frame closes).
*/
package syntax

import "github.com/cybertec-postgresql/oraql/internal/token"

type nodeData struct {
	kind     token.SyntaxKind
	start    int
	end      int
	text     string // set only on leaves (tokens)
	children []int32
}

func (n *nodeData) isLeaf() bool { return n.children == nil }

// Diagnostic is a single parse error: an unexpected token where one of a
// known set was expected.
type Diagnostic struct {
	Pos      int
	Expected []token.SyntaxKind
	Msg      string
}

// Tree is an immutable, arena-backed lossless syntax tree plus the source
// text it was built from.
type Tree struct {
	src   string
	nodes []nodeData
	root  int32
	diags []Diagnostic
}

// Source returns the original source text the tree was parsed from.
func (t *Tree) Source() string { return t.src }

// Root returns a cursor to the tree's root node.
func (t *Tree) Root() Node { return Node{tree: t, idx: t.root} }

// Diagnostics returns the parse errors recorded while building the tree,
// in the order they were emitted.
func (t *Tree) Diagnostics() []Diagnostic { return t.diags }

// Node is a red cursor: a reference to one node of a Tree, addressed by
// arena index. Node values are cheap to copy and carry no ownership.
type Node struct {
	tree *Tree
	idx  int32
}

// IsZero reports whether n is the zero Node (no tree attached).
func (n Node) IsZero() bool { return n.tree == nil }

// Kind returns the node's syntax kind.
func (n Node) Kind() token.SyntaxKind { return n.tree.nodes[n.idx].kind }

// Span returns the node's byte range [start, end) in the source text.
func (n Node) Span() (start, end int) {
	d := n.tree.nodes[n.idx]
	return d.start, d.end
}

// IsLeaf reports whether n is a token (no children) rather than a
// non-terminal.
func (n Node) IsLeaf() bool { return n.tree.nodes[n.idx].isLeaf() }

// Text returns the exact source slice this node spans. For leaves this is
// the stored token text; for internal nodes it is sliced from the source
// on demand, which is always correct by the tree's span invariant.
func (n Node) Text() string {
	d := n.tree.nodes[n.idx]
	if d.isLeaf() {
		return d.text
	}
	return n.tree.src[d.start:d.end]
}

// Children returns n's direct children in source order, including trivia.
func (n Node) Children() []Node {
	ids := n.tree.nodes[n.idx].children
	out := make([]Node, len(ids))
	for i, id := range ids {
		out[i] = Node{tree: n.tree, idx: id}
	}
	return out
}

// NonTrivia returns n's direct children with trivia (whitespace, comments)
// filtered out. This is the view the typed AST overlay builds its
// accessors on top of.
func (n Node) NonTrivia() []Node {
	var out []Node
	for _, c := range n.Children() {
		if !c.Kind().IsTrivia() {
			out = append(out, c)
		}
	}
	return out
}

// FirstOfKind returns the first direct, non-trivia child with the given
// kind.
func (n Node) FirstOfKind(kind token.SyntaxKind) (Node, bool) {
	for _, c := range n.NonTrivia() {
		if c.Kind() == kind {
			return c, true
		}
	}
	return Node{}, false
}

// AllOfKind returns every direct, non-trivia child with the given kind, in
// source order.
func (n Node) AllOfKind(kind token.SyntaxKind) []Node {
	var out []Node
	for _, c := range n.NonTrivia() {
		if c.Kind() == kind {
			out = append(out, c)
		}
	}
	return out
}

// Walk visits n and every descendant, depth-first, pre-order, including
// trivia leaves.
func (n Node) Walk(visit func(Node)) {
	visit(n)
	for _, c := range n.Children() {
		c.Walk(visit)
	}
}
