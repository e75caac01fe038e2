package parser

import "github.com/cybertec-postgresql/oraql/internal/token"

// parseDeclareItems parses the zero or more declarations between a
// subprogram/trigger header and its BEGIN. There is no wrapping DECLARE
// keyword in function/procedure bodies (Oracle's DECLARE only introduces an
// anonymous block), so this just loops over declaration items until BEGIN.
func (p *parser) parseDeclareItems() {
	for !p.c.at(token.KBegin) && !p.c.atEOF() {
		switch {
		case p.c.at(token.KCursor):
			p.parseCursorDecl()
		case p.c.atAny(token.Ident, token.QuotedIdent):
			p.parseVarDecl()
		default:
			p.errorUntil([]token.SyntaxKind{token.KBegin}, "expected declaration")
		}
	}
}

func (p *parser) parseVarDecl() {
	p.b.Start(token.VarDecl)
	p.c.bump() // name
	p.c.eat(token.KConstant)
	p.parseDatatype()
	p.c.eat(token.KNotNull)
	if p.c.atAny(token.Assign, token.KDefault) {
		p.c.bump()
		p.parseExpression()
	}
	p.expect(token.Semicolon)
	p.b.Finish()
}

// parseCursorDecl parses "CURSOR name IS select_stmt;" — the minimal cursor
// declaration form this module supports (no explicit parameter list).
func (p *parser) parseCursorDecl() {
	p.b.Start(token.CursorDecl)
	p.expect(token.KCursor)
	p.c.bump() // cursor name
	p.expect(token.KIs)
	p.parseSelectStmt()
	p.expect(token.Semicolon)
	p.b.Finish()
}

// parseBlock parses "BEGIN statements [EXCEPTION handlers] END", without the
// optional trailing label/name that only the caller knows whether to expect.
func (p *parser) parseBlock() {
	p.b.Start(token.Block)
	p.expect(token.KBegin)
	for !p.c.atAny(token.KException, token.KEnd) && !p.c.atEOF() {
		p.parseStmt()
	}
	if p.c.at(token.KException) {
		p.parseExceptionSection()
	}
	p.expect(token.KEnd)
	p.b.Finish()
}

func (p *parser) parseExceptionSection() {
	p.b.Start(token.ExceptionSection)
	p.expect(token.KException)
	for p.c.at(token.KWhen) {
		p.parseExceptionHandler()
	}
	p.b.Finish()
}

func (p *parser) parseExceptionHandler() {
	p.b.Start(token.ExceptionHandler)
	p.expect(token.KWhen)
	p.c.bump() // exception name, e.g. OTHERS or a named exception
	for p.c.eat(token.KOr) {
		p.c.bump()
	}
	p.expect(token.KThen)
	for !p.c.atAny(token.KWhen, token.KEnd, token.KException) && !p.c.atEOF() {
		p.parseStmt()
	}
	p.b.Finish()
}
