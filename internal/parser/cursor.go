package parser

import (
	"github.com/cybertec-postgresql/oraql/internal/lexer"
	"github.com/cybertec-postgresql/oraql/internal/syntax"
	"github.com/cybertec-postgresql/oraql/internal/token"
)

// cursor is the token cursor the grammar functions drive: peek(n) looks
// ahead skipping trivia by default, and bump consumes and records all
// intervening trivia before consuming the next real token, which is what
// gives the tree builder consistent trivia placement without the grammar
// ever having to think about whitespace or comments itself.
type cursor struct {
	toks []lexer.Token
	pos  int
	b    *syntax.Builder
	end  int // byte offset of end-of-input, for synthetic EOF tokens
}

func newCursor(src string, b *syntax.Builder) *cursor {
	return &cursor{toks: lexer.All(src), b: b, end: len(src)}
}

// peek returns the nth non-trivia token ahead without consuming anything
// (n == 0 is the next token to be bumped).
func (c *cursor) peek(n int) lexer.Token {
	i := c.pos
	seen := 0
	for i < len(c.toks) {
		t := c.toks[i]
		if t.Kind.IsTrivia() {
			i++
			continue
		}
		if t.Kind == token.EOF {
			return lexer.Token{Kind: token.EOF, Pos: c.end}
		}
		if seen == n {
			return t
		}
		seen++
		i++
	}
	return lexer.Token{Kind: token.EOF, Pos: c.end}
}

func (c *cursor) at(kind token.SyntaxKind) bool { return c.peek(0).Kind == kind }

func (c *cursor) atAny(kinds ...token.SyntaxKind) bool {
	k := c.peek(0).Kind
	for _, want := range kinds {
		if k == want {
			return true
		}
	}
	return false
}

func (c *cursor) atEOF() bool { return c.peek(0).Kind == token.EOF }

// bump attaches any pending trivia to the innermost currently open builder
// frame and then consumes and attaches the next non-trivia token, returning
// it. Calling bump at end of input is a no-op that returns the synthetic
// EOF token without attaching anything.
func (c *cursor) bump() lexer.Token {
	for c.pos < len(c.toks) && c.toks[c.pos].Kind.IsTrivia() {
		t := c.toks[c.pos]
		c.b.Trivia(t.Kind, t.Text, t.Pos)
		c.pos++
	}
	if c.pos >= len(c.toks) || c.toks[c.pos].Kind == token.EOF {
		return lexer.Token{Kind: token.EOF, Pos: c.end}
	}
	t := c.toks[c.pos]
	c.b.Token(t.Kind, t.Text, t.Pos)
	c.pos++
	return t
}

// eat consumes and returns true if the next token has the given kind,
// otherwise it consumes nothing and returns false.
func (c *cursor) eat(kind token.SyntaxKind) bool {
	if c.at(kind) {
		c.bump()
		return true
	}
	return false
}

// drainTrailingTrivia attaches any remaining trivia tokens (including a
// final trailing comment with no token after it) to the innermost open
// frame. Called once, at the very end of parsing, so losslessness holds
// even when the input ends in whitespace or a comment.
func (c *cursor) drainTrailingTrivia() {
	for c.pos < len(c.toks) && c.toks[c.pos].Kind.IsTrivia() {
		t := c.toks[c.pos]
		c.b.Trivia(t.Kind, t.Text, t.Pos)
		c.pos++
	}
}
