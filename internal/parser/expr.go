package parser

import "github.com/cybertec-postgresql/oraql/internal/token"

/*
Expressions are parsed into a single flat Expression node rather than a
precedence-shaped tree of BinaryExpr nodes: every rule this module ships
locates what it needs (a SYSDATE keyword leaf, an NVL call, a bind
identifier, an outer-join marker) by walking an expression's subtree for a
specific leaf or composite shape, not by inspecting operator structure. A
flat expression is exactly as lossless and considerably simpler to build
and consume than a fully precedence-nested one, so that is what this parses.
Besides the small wrappers around single operands (Literal, BindExpr,
QualifiedIdentifier, OuterJoinOp), FunctionInvocation is the one composite
carved out of the flat stream, because CYAR-0006 needs the call/argument
nesting to find the innermost of several nested NVL calls.
*/

func (p *parser) parseExpression() {
	p.b.Start(token.Expression)
	p.parseTerm()
	for p.atBinaryOp() {
		op := p.c.peek(0).Kind
		p.c.bump()
		switch op {
		case token.KBetween:
			p.parseTerm()
			p.expect(token.KAnd)
			p.parseTerm()
		case token.KIn:
			p.expect(token.LParen)
			if !p.c.at(token.RParen) {
				p.parseExpression()
				for p.c.eat(token.Comma) {
					p.parseExpression()
				}
			}
			p.expect(token.RParen)
		case token.KNot:
			// "NOT IN" / "NOT LIKE" / "NOT BETWEEN": the real operator is
			// the next token, handled by the next loop iteration.
			continue
		case token.KIs:
			p.c.eat(token.KNot)
			p.expect(token.KNull)
		default:
			p.parseTerm()
		}
	}
	p.b.Finish()
}

func (p *parser) atBinaryOp() bool {
	return p.c.atAny(
		token.KOr, token.KAnd, token.KNot, token.KBetween, token.KLike, token.KIn, token.KIs,
		token.Concat, token.Plus, token.Minus, token.Star, token.Slash,
		token.Eq, token.NotEq, token.Lt, token.Gt, token.LtEq, token.GtEq,
	)
}

func (p *parser) parseTerm() {
	for p.c.atAny(token.KNot, token.Minus) {
		p.c.bump()
	}
	p.parsePrimary()
}

func (p *parser) parsePrimary() {
	switch {
	case p.c.at(token.LParen):
		p.c.bump()
		p.parseExpression()
		p.expect(token.RParen)
	case p.c.atAny(token.StringLiteral, token.IntLiteral, token.FloatLiteral, token.KNull):
		p.b.Start(token.Literal)
		p.c.bump()
		p.b.Finish()
	case p.c.at(token.BindIdent):
		p.b.Start(token.BindExpr)
		p.c.bump()
		if p.c.eat(token.Dot) {
			p.c.bump()
		}
		p.b.Finish()
	case p.c.at(token.KSysdate):
		// Left as a bare keyword leaf: CYAR-0005 scans for KSysdate tokens
		// directly rather than needing an Identifier wrapper around it.
		p.c.bump()
		p.maybeOuterJoin()
	case p.isFunctionCallAhead():
		p.parseFunctionInvocation()
	case p.c.atAny(token.Ident, token.QuotedIdent):
		p.parseQualifiedIdentifier()
		p.maybeOuterJoin()
	default:
		p.errorUntil(nil, "expected expression")
	}
}

func (p *parser) isFunctionCallAhead() bool {
	if !p.c.atAny(token.Ident, token.QuotedIdent, token.KNvl, token.KCoalesce) {
		return false
	}
	return p.c.peek(1).Kind == token.LParen
}

func (p *parser) parseFunctionInvocation() {
	p.b.Start(token.FunctionInvocation)
	p.c.bump() // function name, possibly KNvl/KCoalesce
	p.b.Start(token.ArgList)
	p.expect(token.LParen)
	if !p.c.at(token.RParen) {
		p.parseExpression()
		for p.c.eat(token.Comma) {
			p.parseExpression()
		}
	}
	p.expect(token.RParen)
	p.b.Finish() // ArgList
	p.b.Finish() // FunctionInvocation
}

// maybeOuterJoin wraps a trailing (+) legacy outer-join marker immediately
// following a column reference or SYSDATE leaf.
func (p *parser) maybeOuterJoin() {
	if p.c.at(token.OuterJoinMarker) {
		p.b.Start(token.OuterJoinOp)
		p.c.bump()
		p.b.Finish()
	}
}
