package parser

import "github.com/cybertec-postgresql/oraql/internal/token"

// parseSubprogram parses a CREATE FUNCTION or CREATE PROCEDURE object. The
// two share everything but the RETURN clause, so the caller tells us which
// node/header kinds to wrap with and whether a RETURN clause is expected.
func (p *parser) parseSubprogram(nodeKind, headerKind, objectKeyword token.SyntaxKind, hasReturn bool) {
	p.b.Start(nodeKind)
	p.parseSubprogramHeader(headerKind, objectKeyword, hasReturn)

	if !p.c.eat(token.KAs) {
		p.expect(token.KIs)
		p.c.eat(token.KAs) // tolerate a stray "IS AS" typo without failing
	}

	p.parseDeclareItems()
	p.parseBlock()
	p.parseOptionalTrailingName()
	p.expect(token.Semicolon)
	p.b.Finish()
}

func (p *parser) parseSubprogramHeader(headerKind, objectKeyword token.SyntaxKind, hasReturn bool) {
	p.b.Start(headerKind)
	p.expect(token.KCreate)
	if p.c.eat(token.KOr) {
		p.expect(token.KReplace)
	}
	if !p.c.eat(token.KEditionable) {
		p.c.eat(token.KNoneditionable)
	}
	p.expect(objectKeyword)
	p.parseQualifiedIdentifier()
	if p.c.at(token.LParen) {
		p.parseParamList()
	}
	if hasReturn {
		p.expect(token.KReturn)
		p.parseDatatype()
	}
	p.b.Finish()
}

// parseOptionalTrailingName consumes the optional repeated object name that
// may follow the closing END of a subprogram or trigger body (END add_job;).
// It is attached flatly to whichever frame is currently open rather than
// wrapped, since it carries no information the header's name doesn't already
// have.
func (p *parser) parseOptionalTrailingName() {
	if p.c.atAny(token.Ident, token.QuotedIdent) {
		p.c.bump()
	}
}

func (p *parser) parseParamList() {
	p.b.Start(token.ParamList)
	p.expect(token.LParen)
	if !p.c.at(token.RParen) {
		p.parseParam()
		for p.c.eat(token.Comma) {
			p.parseParam()
		}
	}
	p.expect(token.RParen)
	p.b.Finish()
}

func (p *parser) parseParam() {
	p.b.Start(token.Param)
	p.c.bump() // parameter name
	if p.c.atAny(token.KIn, token.KOut) {
		p.b.Start(token.ParamMode)
		p.c.eat(token.KIn)
		p.c.eat(token.KOut)
		p.b.Finish()
	}
	p.c.eat(token.KNoCopy)
	p.parseDatatype()
	if p.c.atAny(token.Assign, token.KDefault) {
		p.c.bump()
		p.parseExpression()
	}
	p.b.Finish()
}

// parseDatatype accepts both Oracle scalar type names and %TYPE/%ROWTYPE
// attribute references off a dotted column or table path. A parenthesized
// size/precision spec (VARCHAR2(100), NUMBER(9,2)) is consumed but not
// otherwise interpreted.
func (p *parser) parseDatatype() {
	p.b.Start(token.Datatype)
	p.c.bump()
	for p.c.at(token.Dot) {
		p.c.bump()
		p.c.bump()
	}
	switch {
	case p.c.atAny(token.TypeAttr, token.RowTypeAttr):
		p.c.bump()
	case p.c.at(token.LParen):
		p.c.bump()
		p.c.bump() // precision or length
		if p.c.eat(token.Comma) {
			p.c.bump() // scale
		}
		p.expect(token.RParen)
	}
	p.b.Finish()
}

// parseTrigger parses a CREATE TRIGGER object: a header naming the firing
// time, event list and table, followed by a PL/SQL block body.
func (p *parser) parseTrigger() {
	p.b.Start(token.Trigger)
	p.b.Start(token.TriggerHeader)
	p.expect(token.KCreate)
	if p.c.eat(token.KOr) {
		p.expect(token.KReplace)
	}
	if !p.c.eat(token.KEditionable) {
		p.c.eat(token.KNoneditionable)
	}
	p.expect(token.KTrigger)
	p.parseQualifiedIdentifier()

	switch {
	case p.c.eat(token.KBefore):
	case p.c.eat(token.KAfter):
	case p.c.eat(token.KInsteadOf):
		p.c.bump() // "OF", which has no dedicated keyword kind
	default:
		p.errorUntil([]token.SyntaxKind{token.KOn}, "expected BEFORE, AFTER or INSTEAD OF")
	}
	p.parseTriggerEventList()
	p.expect(token.KOn)
	p.parseQualifiedIdentifier()
	if p.c.eat(token.KFor) {
		p.c.bump() // EACH
		p.expect(token.KEachRow)
	}
	p.b.Finish() // TriggerHeader

	if p.c.eat(token.KWhen) {
		p.expect(token.LParen)
		p.parseExpression()
		p.expect(token.RParen)
	}

	p.b.Start(token.TriggerBody)
	p.parseDeclareItems()
	p.parseBlock()
	p.b.Finish() // TriggerBody

	p.parseOptionalTrailingName()
	p.expect(token.Semicolon)
	p.b.Finish() // Trigger
}

func (p *parser) parseTriggerEventList() {
	p.parseTriggerEvent()
	for p.c.eat(token.KOr) {
		p.parseTriggerEvent()
	}
}

func (p *parser) parseTriggerEvent() {
	if p.c.atAny(token.KInsert, token.KUpdate, token.KDelete) {
		p.c.bump()
		return
	}
	p.errorUntil([]token.SyntaxKind{token.KOn}, "expected INSERT, UPDATE or DELETE")
}

// parseView parses a CREATE VIEW object: a header naming the view and an
// optional column alias list, followed by the defining query.
func (p *parser) parseView() {
	p.b.Start(token.View)
	p.expect(token.KCreate)
	if p.c.eat(token.KOr) {
		p.expect(token.KReplace)
	}
	p.expect(token.KView)
	p.parseQualifiedIdentifier()
	if p.c.eat(token.LParen) {
		p.parseQualifiedIdentifier()
		for p.c.eat(token.Comma) {
			p.parseQualifiedIdentifier()
		}
		p.expect(token.RParen)
	}
	p.expect(token.KAs)
	p.parseSelectStmt()
	p.c.eat(token.Semicolon)
	p.b.Finish()
}

// parseQueryTop parses the bare-statement form used when analyzing a
// standalone query rather than a named object.
func (p *parser) parseQueryTop() {
	p.b.Start(token.Query)
	switch {
	case p.c.at(token.KUpdate):
		p.parseUpdateStmt()
	case p.c.at(token.KDelete):
		p.parseDeleteStmt()
	case p.c.at(token.KInsert):
		p.parseInsertStmt()
	default:
		p.parseSelectStmt()
		p.c.eat(token.Semicolon)
	}
	p.b.Finish()
}

func (p *parser) parseQualifiedIdentifier() {
	p.b.Start(token.QualifiedIdentifier)
	p.c.bump()
	for p.c.at(token.Dot) {
		p.c.bump()
		p.c.bump()
	}
	p.b.Finish()
}
