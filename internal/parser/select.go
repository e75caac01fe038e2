package parser

import "github.com/cybertec-postgresql/oraql/internal/token"

// parseSelectStmt parses a bare SELECT (no INTO), the form used inside
// cursor declarations, FOR-loop headers and parenthesized subqueries.
func (p *parser) parseSelectStmt() {
	p.b.Start(token.SelectStmt)
	p.expect(token.KSelect)
	p.parseSelectModifiers()
	p.parseSelectList()
	if p.c.eat(token.KFrom) {
		p.parseFromClause()
	}
	if p.c.at(token.KWhere) {
		p.parseWhereClause()
	}
	p.skipOptionalTrailingClauses()
	p.b.Finish()
}

// parseSelectIntoStmt parses the statement form of SELECT, which always
// carries an INTO target list and is always terminated by a semicolon.
func (p *parser) parseSelectIntoStmt() {
	p.b.Start(token.SelectIntoStmt)
	p.expect(token.KSelect)
	p.parseSelectModifiers()
	p.parseSelectList()
	p.expect(token.KInto)
	p.b.Start(token.ColumnList)
	p.parseQualifiedIdentifier()
	for p.c.eat(token.Comma) {
		p.parseQualifiedIdentifier()
	}
	p.b.Finish() // ColumnList (into targets)
	if p.c.eat(token.KFrom) {
		p.parseFromClause()
	}
	if p.c.at(token.KWhere) {
		p.parseWhereClause()
	}
	p.skipOptionalTrailingClauses()
	p.expect(token.Semicolon)
	p.b.Finish()
}

func (p *parser) parseSelectModifiers() {
	if !p.c.eat(token.KDistinct) {
		p.c.eat(token.KAll)
	}
}

func (p *parser) parseSelectList() {
	p.b.Start(token.ColumnList)
	if p.c.at(token.Star) {
		p.c.bump()
	} else {
		p.parseExpression()
		for p.c.eat(token.Comma) {
			p.parseExpression()
		}
	}
	p.b.Finish()
}

func (p *parser) parseFromClause() {
	p.b.Start(token.FromClause)
	p.parseTableRef()
	for p.c.eat(token.Comma) {
		p.parseTableRef()
	}
	p.b.Finish()
}

func (p *parser) parseTableRef() {
	p.parseQualifiedIdentifier()
	if p.c.atAny(token.Ident, token.QuotedIdent) {
		p.c.bump() // table alias
	}
}

func (p *parser) parseWhereClause() {
	p.b.Start(token.WhereClause)
	p.expect(token.KWhere)
	p.parseExpression()
	p.b.Finish()
}

// skipOptionalTrailingClauses consumes GROUP BY/HAVING/ORDER BY and any
// other trailing query clauses this module does not give dedicated
// structure to, stopping at the first token that could end the statement or
// close an enclosing construct. The tokens are still attached to the
// current frame via bump, so losslessness holds even though these clauses
// are not individually typed.
func (p *parser) skipOptionalTrailingClauses() {
	for !p.c.atAny(token.Semicolon, token.RParen, token.KUnion, token.EOF) {
		p.c.bump()
	}
}

// parseInsertStmt parses "INSERT INTO table [(cols)] VALUES (exprs);".
func (p *parser) parseInsertStmt() {
	p.b.Start(token.InsertStmt)
	p.expect(token.KInsert)
	p.expect(token.KInto)
	p.parseQualifiedIdentifier()
	if p.c.eat(token.LParen) {
		p.b.Start(token.ColumnList)
		p.parseQualifiedIdentifier()
		for p.c.eat(token.Comma) {
			p.parseQualifiedIdentifier()
		}
		p.b.Finish()
		p.expect(token.RParen)
	}
	p.expect(token.KValues)
	p.b.Start(token.ValuesClause)
	p.expect(token.LParen)
	p.parseExpression()
	for p.c.eat(token.Comma) {
		p.parseExpression()
	}
	p.expect(token.RParen)
	p.b.Finish()
	p.expect(token.Semicolon)
	p.b.Finish()
}

// parseUpdateStmt parses "UPDATE table SET col = expr, ... [WHERE ...];".
func (p *parser) parseUpdateStmt() {
	p.b.Start(token.UpdateStmt)
	p.expect(token.KUpdate)
	p.parseQualifiedIdentifier()
	p.expect(token.KSet)
	p.b.Start(token.SetClause)
	p.parseSetAssignment()
	for p.c.eat(token.Comma) {
		p.parseSetAssignment()
	}
	p.b.Finish()
	if p.c.at(token.KWhere) {
		p.parseWhereClause()
	}
	p.expect(token.Semicolon)
	p.b.Finish()
}

func (p *parser) parseSetAssignment() {
	p.parseQualifiedIdentifier()
	p.expect(token.Eq)
	p.parseExpression()
}

// parseDeleteStmt parses "DELETE FROM table [WHERE ...];".
func (p *parser) parseDeleteStmt() {
	p.b.Start(token.DeleteStmt)
	p.expect(token.KDelete)
	p.expect(token.KFrom)
	p.parseQualifiedIdentifier()
	if p.c.at(token.KWhere) {
		p.parseWhereClause()
	}
	p.expect(token.Semicolon)
	p.b.Finish()
}
