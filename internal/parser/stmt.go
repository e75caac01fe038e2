package parser

import "github.com/cybertec-postgresql/oraql/internal/token"

// parseStmt dispatches on the leading token to one of the statement forms
// this module recognizes, per the statement list a block body is built
// from. An unrecognized leading token is swept into an ERROR node and
// parsing resumes at the next synchronizing token, same as everywhere else.
func (p *parser) parseStmt() {
	switch {
	case p.c.at(token.KNull):
		p.parseNullStmt()
	case p.c.at(token.KReturn):
		p.parseReturnStmt()
	case p.c.at(token.KIf):
		p.parseIfStmt()
	case p.c.atAny(token.KFor, token.KWhile, token.KLoop):
		p.parseLoopStmt()
	case p.c.at(token.KBegin):
		p.parseNestedBlock()
	case p.c.at(token.KSelect):
		p.parseSelectIntoStmt()
	case p.c.at(token.KInsert):
		p.parseInsertStmt()
	case p.c.at(token.KUpdate):
		p.parseUpdateStmt()
	case p.c.at(token.KDelete):
		p.parseDeleteStmt()
	case p.c.at(token.KOpen):
		p.parseOpenStmt()
	case p.c.at(token.KClose):
		p.parseCloseStmt()
	case p.c.at(token.KFetch):
		p.parseFetchStmt()
	case p.c.at(token.KCommit):
		p.parseCommitStmt()
	case p.c.at(token.KRollback):
		p.parseRollbackStmt()
	case p.c.at(token.KRaise):
		p.parseRaiseStmt()
	case p.c.atAny(token.Ident, token.QuotedIdent):
		p.parseAssignOrCall()
	default:
		p.errorUntil(nil, "expected statement")
	}
}

func (p *parser) parseNullStmt() {
	p.b.Start(token.NullStmt)
	p.expect(token.KNull)
	p.expect(token.Semicolon)
	p.b.Finish()
}

func (p *parser) parseReturnStmt() {
	p.b.Start(token.ReturnStmt)
	p.expect(token.KReturn)
	if !p.c.at(token.Semicolon) {
		p.parseExpression()
	}
	p.expect(token.Semicolon)
	p.b.Finish()
}

func (p *parser) atEndIf() bool   { return p.c.at(token.KEnd) && p.c.peek(1).Kind == token.KIf }
func (p *parser) atEndLoop() bool { return p.c.at(token.KEnd) && p.c.peek(1).Kind == token.KLoop }

func (p *parser) parseIfStmt() {
	p.b.Start(token.IfStmt)
	p.expect(token.KIf)
	p.parseExpression()
	p.expect(token.KThen)
	for !p.c.atAny(token.KElsif, token.KElse) && !p.atEndIf() && !p.c.atEOF() {
		p.parseStmt()
	}
	for p.c.eat(token.KElsif) {
		p.parseExpression()
		p.expect(token.KThen)
		for !p.c.atAny(token.KElsif, token.KElse) && !p.atEndIf() && !p.c.atEOF() {
			p.parseStmt()
		}
	}
	if p.c.eat(token.KElse) {
		for !p.atEndIf() && !p.c.atEOF() {
			p.parseStmt()
		}
	}
	p.expect(token.KEnd)
	p.expect(token.KIf)
	p.expect(token.Semicolon)
	p.b.Finish()
}

// parseLoopStmt covers the three Oracle loop headers (bare LOOP, WHILE
// condition LOOP, and FOR var IN cursor|query LOOP) with one node kind,
// since the rules this module ships only need to recognize the cursor
// FOR-loop shape, not distinguish it structurally from the others.
func (p *parser) parseLoopStmt() {
	p.b.Start(token.LoopStmt)
	switch {
	case p.c.eat(token.KFor):
		p.c.bump() // loop variable
		p.expect(token.KIn)
		if p.c.eat(token.LParen) {
			p.parseSelectStmt()
			p.expect(token.RParen)
		} else {
			p.parseQualifiedIdentifier()
		}
	case p.c.eat(token.KWhile):
		p.parseExpression()
	}
	p.expect(token.KLoop)
	for !p.atEndLoop() && !p.c.atEOF() {
		p.parseStmt()
	}
	p.expect(token.KEnd)
	p.expect(token.KLoop)
	p.expect(token.Semicolon)
	p.b.Finish()
}

func (p *parser) parseNestedBlock() {
	p.b.Start(token.NestedBlock)
	p.parseBlock()
	p.parseOptionalTrailingName()
	p.expect(token.Semicolon)
	p.b.Finish()
}

func (p *parser) parseOpenStmt() {
	p.b.Start(token.OpenStmt)
	p.expect(token.KOpen)
	p.c.bump() // cursor name
	if p.c.eat(token.LParen) {
		if !p.c.at(token.RParen) {
			p.parseExpression()
			for p.c.eat(token.Comma) {
				p.parseExpression()
			}
		}
		p.expect(token.RParen)
	}
	p.expect(token.Semicolon)
	p.b.Finish()
}

func (p *parser) parseCloseStmt() {
	p.b.Start(token.CloseStmt)
	p.expect(token.KClose)
	p.c.bump() // cursor name
	p.expect(token.Semicolon)
	p.b.Finish()
}

func (p *parser) parseFetchStmt() {
	p.b.Start(token.FetchStmt)
	p.expect(token.KFetch)
	p.c.bump() // cursor name
	p.expect(token.KInto)
	p.parseQualifiedIdentifier()
	for p.c.eat(token.Comma) {
		p.parseQualifiedIdentifier()
	}
	p.expect(token.Semicolon)
	p.b.Finish()
}

func (p *parser) parseCommitStmt() {
	p.b.Start(token.CommitStmt)
	p.expect(token.KCommit)
	p.expect(token.Semicolon)
	p.b.Finish()
}

func (p *parser) parseRollbackStmt() {
	p.b.Start(token.RollbackStmt)
	p.expect(token.KRollback)
	p.expect(token.Semicolon)
	p.b.Finish()
}

// parseRaiseStmt accepts a bare RAISE or RAISE exception_name with no
// further structure — nothing in the rule set inspects raised exceptions,
// so the tokens between RAISE and the terminating semicolon are consumed
// flatly rather than parsed as an expression.
func (p *parser) parseRaiseStmt() {
	p.b.Start(token.RaiseStmt)
	p.expect(token.KRaise)
	for !p.c.at(token.Semicolon) && !p.c.atEOF() {
		p.c.bump()
	}
	p.expect(token.Semicolon)
	p.b.Finish()
}

// parseAssignOrCall looks ahead past a dotted identifier chain to decide
// between an assignment target (followed by :=) and a procedure call
// (followed by an argument list or nothing at all).
func (p *parser) parseAssignOrCall() {
	if p.looksLikeAssign() {
		p.b.Start(token.AssignStmt)
		p.parseQualifiedIdentifier()
		p.expect(token.Assign)
		p.parseExpression()
		p.expect(token.Semicolon)
		p.b.Finish()
		return
	}
	p.b.Start(token.ProcedureCall)
	p.parseQualifiedIdentifier()
	if p.c.at(token.LParen) {
		p.parseArgList()
	}
	p.expect(token.Semicolon)
	p.b.Finish()
}

func (p *parser) looksLikeAssign() bool {
	n := 0
	if !(p.c.peek(n).Kind == token.Ident || p.c.peek(n).Kind == token.QuotedIdent) {
		return false
	}
	n++
	for p.c.peek(n).Kind == token.Dot {
		n += 2
	}
	return p.c.peek(n).Kind == token.Assign
}

func (p *parser) parseArgList() {
	p.b.Start(token.ArgList)
	p.expect(token.LParen)
	if !p.c.at(token.RParen) {
		p.parseExpression()
		for p.c.eat(token.Comma) {
			p.parseExpression()
		}
	}
	p.expect(token.RParen)
	p.b.Finish()
}
