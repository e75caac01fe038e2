/*
Package lexer tokenizes Oracle PL/SQL source text into the token stream the
parser consumes. Its shape is a direct descendant of a PL/pgSQL scanner
that ports PostgreSQL's own flex lexer byte for byte: longest match wins,
ties are broken by rule order, and trivia is not silently discarded but
returned as ordinary tokens so the tree builder can interleave it without
losing a single byte of the input.

Retargeting from PL/pgSQL to Oracle PL/SQL changes three things: the
keyword table (internal/token), the set of multi-character operators
(Oracle's (+), %TYPE, %ROWTYPE, :=, ||, .., => and the :NEW/:OLD bind form
replace PL/pgSQL's << >> and the rest), and the comment/block-comment
handling (Oracle block comments do not nest; PostgreSQL's do).
*/
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cybertec-postgresql/oraql/internal/token"
)

// Token is a single lexical token, including trivia.
type Token struct {
	Kind token.SyntaxKind
	Text string
	Pos  int // byte offset of the first character, 0-based
}

// End returns the byte offset just past the token.
func (t Token) End() int { return t.Pos + len(t.Text) }

// Lexer tokenizes src one token at a time. All positions are 0-based byte
// offsets into src.
type Lexer struct {
	src string
	pos int
}

// New returns a Lexer reading from src.
func New(src string) *Lexer { return &Lexer{src: src} }

// Pos returns the byte offset of the next character to be read.
func (l *Lexer) Pos() int { return l.pos }

// Next returns the next token. Once the input is exhausted it returns a
// Token with Kind == token.EOF, empty Text and Pos == len(src), and keeps
// returning that same token on every later call.
func (l *Lexer) Next() Token {
	if l.pos >= len(l.src) {
		return Token{Kind: token.EOF, Pos: l.pos}
	}
	start := l.pos
	ch := l.src[l.pos]

	switch {
	case isSpace(ch):
		return l.whitespace(start)

	case ch == '-' && l.peek(1) == '-':
		return l.lineComment(start)

	case ch == '/' && l.peek(1) == '*':
		return l.blockComment(start)

	// (+) — legacy outer-join marker. Must be checked ahead of plain '('
	// so the three-character form is not split into LParen, Plus, RParen.
	case ch == '(' && l.peek(1) == '+' && l.peek(2) == ')':
		l.pos += 3
		return Token{Kind: token.OuterJoinMarker, Text: l.src[start:l.pos], Pos: start}

	// %TYPE / %ROWTYPE. A bare '%' that is not followed by one of these
	// spellings is returned by percentAttr as Percent (the arithmetic
	// modulo operator).
	case ch == '%':
		return l.percentAttr(start)

	case ch == ':' && l.peek(1) == '=':
		l.pos += 2
		return Token{Kind: token.Assign, Text: ":=", Pos: start}

	// :NEW, :OLD, and any other :identifier bind variable collapse to a
	// single BindIdent token, mirroring the source's treatment of :NEW/:OLD
	// while generalizing to the wider bind-variable family Oracle allows.
	case ch == ':' && isIdentStart(l.peek(1)):
		return l.bindIdent(start)

	case ch == ':':
		l.pos++
		return Token{Kind: token.Colon, Text: ":", Pos: start}

	case ch == '|' && l.peek(1) == '|':
		l.pos += 2
		return Token{Kind: token.Concat, Text: "||", Pos: start}

	case ch == '.' && l.peek(1) == '.':
		l.pos += 2
		return Token{Kind: token.DotDot, Text: "..", Pos: start}

	case ch == '=' && l.peek(1) == '>':
		l.pos += 2
		return Token{Kind: token.Arrow, Text: "=>", Pos: start}

	case ch == '<' && l.peek(1) == '=':
		l.pos += 2
		return Token{Kind: token.LtEq, Text: "<=", Pos: start}

	case ch == '>' && l.peek(1) == '=':
		l.pos += 2
		return Token{Kind: token.GtEq, Text: ">=", Pos: start}

	case ch == '<' && l.peek(1) == '>':
		l.pos += 2
		return Token{Kind: token.NotEq, Text: "<>", Pos: start}

	case ch == '!' && l.peek(1) == '=':
		l.pos += 2
		return Token{Kind: token.NotEq, Text: "!=", Pos: start}

	case ch == '\'':
		return l.quotedString(start)

	case ch == '"':
		return l.quotedIdent(start)

	case ch >= '0' && ch <= '9':
		return l.number(start)

	case ch == '.' && isDigit(l.peek(1)):
		return l.number(start)

	case isIdentStart(ch) || ch >= 0x80:
		return l.ident(start)

	default:
		return l.punct(start, ch)
	}
}

// All tokenizes the entire source and returns every token, including a
// trailing EOF token.
func All(src string) []Token {
	l := New(src)
	var toks []Token
	for {
		t := l.Next()
		toks = append(toks, t)
		if t.Kind == token.EOF {
			return toks
		}
	}
}

// ---------------------------------------------------------------------------

func (l *Lexer) peek(offset int) byte {
	if i := l.pos + offset; i < len(l.src) {
		return l.src[i]
	}
	return 0
}

func (l *Lexer) whitespace(start int) Token {
	for l.pos < len(l.src) && isSpace(l.src[l.pos]) {
		l.pos++
	}
	return Token{Kind: token.Whitespace, Text: l.src[start:l.pos], Pos: start}
}

// lineComment consumes from "--" to end of line, exclusive of the
// terminator, per the specified comment semantics.
func (l *Lexer) lineComment(start int) Token {
	l.pos += 2
	for l.pos < len(l.src) && l.src[l.pos] != '\n' && l.src[l.pos] != '\r' {
		l.pos++
	}
	return Token{Kind: token.LineComment, Text: l.src[start:l.pos], Pos: start}
}

// blockComment consumes /* ... */. Oracle block comments do not nest, so
// the first "*/" closes the comment regardless of intervening "/*".
func (l *Lexer) blockComment(start int) Token {
	l.pos += 2
	for l.pos < len(l.src) {
		if l.src[l.pos] == '*' && l.peek(1) == '/' {
			l.pos += 2
			break
		}
		l.pos++
	}
	return Token{Kind: token.BlockComment, Text: l.src[start:l.pos], Pos: start}
}

// percentAttr dispatches %TYPE, %ROWTYPE, or a bare modulo '%'.
func (l *Lexer) percentAttr(start int) Token {
	rest := l.src[l.pos+1:]
	switch {
	case hasFoldPrefix(rest, "rowtype") && !isIdentCont(byteAt(rest, len("rowtype"))):
		l.pos += 1 + len("rowtype")
		return Token{Kind: token.RowTypeAttr, Text: l.src[start:l.pos], Pos: start}
	case hasFoldPrefix(rest, "type") && !isIdentCont(byteAt(rest, len("type"))):
		l.pos += 1 + len("type")
		return Token{Kind: token.TypeAttr, Text: l.src[start:l.pos], Pos: start}
	default:
		l.pos++
		return Token{Kind: token.Percent, Text: "%", Pos: start}
	}
}

func hasFoldPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func byteAt(s string, i int) byte {
	if i < len(s) {
		return s[i]
	}
	return 0
}

// bindIdent consumes ':' followed by an identifier, as a single token.
// Covers :NEW, :OLD, and :name-style bind variables generally.
func (l *Lexer) bindIdent(start int) Token {
	l.pos++ // consume ':'
	for l.pos < len(l.src) && isIdentCont(l.src[l.pos]) {
		l.pos++
	}
	return Token{Kind: token.BindIdent, Text: l.src[start:l.pos], Pos: start}
}

// quotedString consumes a '...' string literal. A doubled '' is the escape
// for an embedded literal quote. If the string never closes, the whole
// remainder of the input is returned as an UnterminatedString token.
func (l *Lexer) quotedString(start int) Token {
	l.pos++
	for l.pos < len(l.src) {
		if l.src[l.pos] != '\'' {
			l.pos++
			continue
		}
		l.pos++
		if l.pos < len(l.src) && l.src[l.pos] == '\'' {
			l.pos++
			continue
		}
		return Token{Kind: token.StringLiteral, Text: l.src[start:l.pos], Pos: start}
	}
	return Token{Kind: token.UnterminatedString, Text: l.src[start:l.pos], Pos: start}
}

// quotedIdent consumes a "..." quoted identifier, preserving case and
// embedded spaces. A doubled "" is an escaped embedded quote.
func (l *Lexer) quotedIdent(start int) Token {
	l.pos++
	for l.pos < len(l.src) {
		if l.src[l.pos] != '"' {
			l.pos++
			continue
		}
		l.pos++
		if l.pos < len(l.src) && l.src[l.pos] == '"' {
			l.pos++
			continue
		}
		return Token{Kind: token.QuotedIdent, Text: l.src[start:l.pos], Pos: start}
	}
	return Token{Kind: token.UnterminatedString, Text: l.src[start:l.pos], Pos: start}
}

// number scans an integer or float literal: digits, an optional fractional
// part, and an optional Ee exponent.
func (l *Lexer) number(start int) Token {
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		l.pos++
	}
	kind := token.IntLiteral
	if l.pos < len(l.src) && l.src[l.pos] == '.' && l.peek(1) != '.' {
		kind = token.FloatLiteral
		l.pos++
		for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			l.pos++
		}
	}
	if l.pos < len(l.src) && (l.src[l.pos] == 'e' || l.src[l.pos] == 'E') {
		next := l.peek(1)
		digitsAhead := isDigit(next) || ((next == '+' || next == '-') && isDigit(l.peek(2)))
		if digitsAhead {
			kind = token.FloatLiteral
			l.pos++
			if l.src[l.pos] == '+' || l.src[l.pos] == '-' {
				l.pos++
			}
			for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
				l.pos++
			}
		}
	}
	return Token{Kind: kind, Text: l.src[start:l.pos], Pos: start}
}

// ident scans an unquoted identifier and resolves it against the keyword
// table, case-insensitively, preserving the original casing in Text.
func (l *Lexer) ident(start int) Token {
	for l.pos < len(l.src) {
		ch := l.src[l.pos]
		if ch < 0x80 {
			if !isIdentCont(ch) {
				break
			}
			l.pos++
			continue
		}
		r, size := utf8.DecodeRuneInString(l.src[l.pos:])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			l.pos += size
		} else {
			break
		}
	}
	if l.pos == start {
		// A non-ASCII rune that is neither a letter nor a digit.
		return l.punct(start, l.src[start])
	}
	text := l.src[start:l.pos]
	if kw, ok := token.LookupKeyword(text); ok {
		return Token{Kind: kw, Text: text, Pos: start}
	}
	return Token{Kind: token.Ident, Text: text, Pos: start}
}

func (l *Lexer) punct(start int, ch byte) Token {
	kind, ok := singleCharKinds[ch]
	if !ok {
		if ch >= 0x80 {
			_, size := utf8.DecodeRuneInString(l.src[l.pos:])
			if size < 1 {
				size = 1
			}
			l.pos += size
			return Token{Kind: token.Unknown, Text: l.src[start:l.pos], Pos: start}
		}
		l.pos++
		return Token{Kind: token.Unknown, Text: string(ch), Pos: start}
	}
	l.pos++
	return Token{Kind: kind, Text: string(ch), Pos: start}
}

var singleCharKinds = map[byte]token.SyntaxKind{
	'(': token.LParen, ')': token.RParen,
	'[': token.LBracket, ']': token.RBracket,
	',': token.Comma, ';': token.Semicolon, '.': token.Dot,
	'/': token.Slash, '@': token.At,
	'+': token.Plus, '-': token.Minus, '*': token.Star,
	'=': token.Eq, '<': token.Lt, '>': token.Gt,
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentCont(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch) || ch == '$' || ch == '#'
}
