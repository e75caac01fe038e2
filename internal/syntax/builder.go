package syntax

import "github.com/cybertec-postgresql/oraql/internal/token"

// Builder assembles a Tree from a flat event stream. It is the sole place
// that allocates nodeData values; everything downstream addresses them by
// arena index through a Node cursor, never by pointer.
type Builder struct {
	src   string
	nodes []nodeData
	stack []frame
	diags []Diagnostic
}

type frame struct {
	kind     token.SyntaxKind
	children []int32
	pos      int
}

// NewBuilder returns a Builder over the given source text.
func NewBuilder(src string) *Builder {
	return &Builder{src: src}
}

// Start opens a new frame of the given non-terminal kind. It must be
// matched by a later Finish.
func (b *Builder) Start(kind token.SyntaxKind) {
	b.stack = append(b.stack, frame{kind: kind})
}

// StartAt opens a new frame like Start, additionally recording pos as the
// span Finish falls back to if the frame closes with no children (a
// zero-width node gets pos as its start and end, instead of defaulting to
// offset 0 regardless of where in the source it actually sits).
func (b *Builder) StartAt(kind token.SyntaxKind, pos int) {
	b.stack = append(b.stack, frame{kind: kind, pos: pos})
}

// Token attaches a non-trivia leaf to the innermost open frame.
func (b *Builder) Token(kind token.SyntaxKind, text string, pos int) {
	b.leaf(kind, text, pos)
}

// Trivia attaches a trivia leaf (whitespace or comment) to the innermost
// open frame — the frame that is open at the moment the trivia is
// encountered is, by construction, the innermost enclosing non-terminal,
// which is exactly the placement the tree's trivia invariant requires.
func (b *Builder) Trivia(kind token.SyntaxKind, text string, pos int) {
	b.leaf(kind, text, pos)
}

func (b *Builder) leaf(kind token.SyntaxKind, text string, pos int) {
	idx := int32(len(b.nodes))
	b.nodes = append(b.nodes, nodeData{kind: kind, start: pos, end: pos + len(text), text: text})
	top := &b.stack[len(b.stack)-1]
	top.children = append(top.children, idx)
}

// Error records a parse diagnostic at pos. It does not by itself alter the
// tree; callers wrap the skipped tokens in a Start(token.ErrorNode)/Finish
// pair around the recovery region.
func (b *Builder) Error(pos int, expected []token.SyntaxKind, msg string) {
	b.diags = append(b.diags, Diagnostic{Pos: pos, Expected: expected, Msg: msg})
}

// Finish closes the innermost open frame, turning it into a node that is
// appended to its parent frame's children (or becomes the tree root, once
// the outermost frame closes). It returns the arena index of the new node.
func (b *Builder) Finish() int32 {
	top := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]

	start, end := top.pos, top.pos
	if len(top.children) > 0 {
		start = b.nodes[top.children[0]].start
		end = b.nodes[top.children[len(top.children)-1]].end
	}

	idx := int32(len(b.nodes))
	b.nodes = append(b.nodes, nodeData{kind: top.kind, start: start, end: end, children: top.children})

	if len(b.stack) > 0 {
		parent := &b.stack[len(b.stack)-1]
		parent.children = append(parent.children, idx)
	}
	return idx
}

// Depth returns the number of currently open frames. Used by the parser's
// error recovery to assert it closes exactly what it opened.
func (b *Builder) Depth() int { return len(b.stack) }

// Tree finalizes the builder into an immutable Tree. It panics if any
// frame is still open, which would indicate a parser bug (an unbalanced
// Start/Finish pair) rather than anything a caller can recover from.
func (b *Builder) Tree() *Tree {
	if len(b.stack) != 0 {
		panic("syntax: Tree called with unclosed frames")
	}
	return &Tree{
		src:   b.src,
		nodes: b.nodes,
		root:  int32(len(b.nodes) - 1),
		diags: b.diags,
	}
}
