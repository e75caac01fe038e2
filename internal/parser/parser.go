/*
Package parser implements the hand-written recursive descent parser. It
drives a token cursor with arbitrary lookahead and emits a flat event
stream (Start/Token/Trivia/Finish/Error) into a syntax.Builder, which
assembles the lossless tree. The grammar functions in this package never
touch the builder's arena directly — they only call cursor.bump and
builder.Start/Finish through the cursor, so the tree construction
discipline lives in one place (internal/syntax) and cannot be bypassed.

Error recovery follows the fixed algorithm this module requires: on a
mismatch, the parser records a diagnostic, opens an ERROR node, skips
tokens until one of a synchronizing set is seen, closes the ERROR node, and
resumes parsing at the enclosing production. The parser always consumes
the entire input, never aborting — a malformed or truncated object still
produces a tree, possibly with several ERROR regions in it.
*/
package parser

import (
	"github.com/cybertec-postgresql/oraql/internal/logger"
	"github.com/cybertec-postgresql/oraql/internal/syntax"
	"github.com/cybertec-postgresql/oraql/internal/token"
)

// Kind selects which top-level production to parse.
type Kind int

const (
	KindFunction Kind = iota
	KindProcedure
	KindTrigger
	KindView
	KindQuery
)

// String renders a Kind using the same spelling callers pass to Parse.
func (k Kind) String() string {
	switch k {
	case KindFunction:
		return "function"
	case KindProcedure:
		return "procedure"
	case KindTrigger:
		return "trigger"
	case KindView:
		return "view"
	case KindQuery:
		return "query"
	default:
		return "unknown"
	}
}

type parser struct {
	c *cursor
	b *syntax.Builder
}

// Parse parses src as the given object kind and returns the resulting
// lossless syntax tree. It never returns an error: malformed input yields
// ERROR nodes in the tree rather than a failed call, per the permissive
// lex/parse policy.
func Parse(kind Kind, src string) *syntax.Tree {
	b := syntax.NewBuilder(src)
	p := &parser{c: newCursor(src, b), b: b}

	b.Start(token.Root)
	switch kind {
	case KindFunction:
		p.parseSubprogram(token.Function, token.FunctionHeader, token.KFunction, true)
	case KindProcedure:
		p.parseSubprogram(token.Procedure, token.ProcedureHeader, token.KProcedure, false)
	case KindTrigger:
		p.parseTrigger()
	case KindView:
		p.parseView()
	case KindQuery:
		p.parseQueryTop()
	}
	// The parser always consumes the entire input: anything left over
	// (trailing garbage after a structurally complete object) is swept
	// into trailing ERROR nodes rather than silently dropped.
	for !p.c.atEOF() {
		p.errorUntil(nil, "unexpected trailing input")
	}
	p.c.drainTrailingTrivia()
	b.Finish() // Root
	return b.Tree()
}

// synchronizing set: the union of statement terminators used as the
// fallback recovery boundary at every decision point. Grammar functions
// that have a more specific first-set to recover to may pass additional
// kinds to errorUntil.
var syncSet = []token.SyntaxKind{
	token.Semicolon, token.KBegin, token.KEnd, token.KException, token.Slash,
}

func (p *parser) atSync(extra []token.SyntaxKind) bool {
	if p.c.atEOF() {
		return true
	}
	if p.c.atAny(syncSet...) {
		return true
	}
	if len(extra) > 0 && p.c.atAny(extra...) {
		return true
	}
	return false
}

// errorUntil records a diagnostic at the current position, opens an ERROR
// node, skips tokens until a member of the synchronizing set (extended by
// extra) is reached, and closes the node.
func (p *parser) errorUntil(extra []token.SyntaxKind, msg string) {
	pos := p.c.peek(0).Pos
	logger.Debug("parse recovery at offset %d: %s", pos, msg)
	p.b.Error(pos, append(append([]token.SyntaxKind{}, syncSet...), extra...), msg)
	p.b.StartAt(token.ErrorNode, pos)
	// Recovery must always make progress, even when the cursor is already
	// resting on a synchronizing token (e.g. a caller that loops on a
	// narrower terminator set than syncSet would otherwise re-dispatch on
	// the same token forever): consume one token unconditionally before
	// checking the sync set.
	if !p.c.atEOF() {
		p.c.bump()
	}
	for !p.atSync(extra) {
		p.c.bump()
	}
	p.b.Finish()
}

// expect consumes the next token if it has the given kind; otherwise it
// performs error recovery and reports failure.
func (p *parser) expect(kind token.SyntaxKind) bool {
	if p.c.at(kind) {
		p.c.bump()
		return true
	}
	p.errorUntil([]token.SyntaxKind{kind}, "expected "+kind.String())
	return false
}
