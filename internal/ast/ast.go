/*
Package ast is the typed overlay over the untyped lossless tree in
internal/syntax. It is kept thin on purpose: one node carries one
SyntaxKind tag, and every accessor here is a pure function
over a node's children rather than a distinct Go type per production. This
keeps the tree uniform (no information is dropped going from the parser's
output to what the analyzer and rule engine consume) while still giving
callers named, kind-filtered access instead of raw child-index arithmetic.
*/
package ast

import (
	"strings"

	"github.com/cybertec-postgresql/oraql/internal/syntax"
	"github.com/cybertec-postgresql/oraql/internal/token"
)

// Name returns the qualified identifier naming obj: the text between the
// object keyword and the following syntactic element. obj must be a
// Function, Procedure, Trigger or View node.
func Name(obj syntax.Node) string {
	header := headerOf(obj)
	if header.IsZero() {
		return ""
	}
	if q, ok := header.FirstOfKind(token.QualifiedIdentifier); ok {
		var sb strings.Builder
		for _, c := range q.NonTrivia() {
			sb.WriteString(c.Text())
		}
		return sb.String()
	}
	return ""
}

func headerOf(obj syntax.Node) syntax.Node {
	switch obj.Kind() {
	case token.Function:
		h, _ := obj.FirstOfKind(token.FunctionHeader)
		return h
	case token.Procedure:
		h, _ := obj.FirstOfKind(token.ProcedureHeader)
		return h
	case token.Trigger:
		h, _ := obj.FirstOfKind(token.TriggerHeader)
		return h
	case token.View:
		return obj
	}
	return syntax.Node{}
}

// Body returns the BEGIN...END block belonging to obj, if it parsed
// cleanly enough to have one.
func Body(obj syntax.Node) (syntax.Node, bool) {
	switch obj.Kind() {
	case token.Function, token.Procedure:
		return obj.FirstOfKind(token.Block)
	case token.Trigger:
		tb, ok := obj.FirstOfKind(token.TriggerBody)
		if !ok {
			return syntax.Node{}, false
		}
		return tb.FirstOfKind(token.Block)
	}
	return syntax.Node{}, false
}

// Params returns obj's parameter list, in declaration order. Functions and
// procedures only; trigger and view headers carry no parameter list.
func Params(obj syntax.Node) []syntax.Node {
	header := headerOf(obj)
	if header.IsZero() {
		return nil
	}
	list, ok := header.FirstOfKind(token.ParamList)
	if !ok {
		return nil
	}
	return list.AllOfKind(token.Param)
}

// ParamName returns a parameter's declared name.
func ParamName(p syntax.Node) string {
	nt := p.NonTrivia()
	if len(nt) == 0 {
		return ""
	}
	return nt[0].Text()
}

// ParamMode returns "IN", "OUT" or "INOUT" as spelled in the source,
// defaulting to Oracle's implicit "IN" when no mode clause is present.
func ParamMode(p syntax.Node) string {
	m, ok := p.FirstOfKind(token.ParamMode)
	if !ok {
		return "IN"
	}
	var sb strings.Builder
	for _, c := range m.NonTrivia() {
		sb.WriteString(strings.ToUpper(c.Text()))
	}
	return sb.String()
}

// ParamDatatype returns a parameter's declared datatype node.
func ParamDatatype(p syntax.Node) (syntax.Node, bool) {
	return p.FirstOfKind(token.Datatype)
}

// DatatypeAttr reports whether d is a %TYPE or %ROWTYPE reference, and
// which.
func DatatypeAttr(d syntax.Node) (attr token.SyntaxKind, ok bool) {
	for _, c := range d.NonTrivia() {
		if c.Kind() == token.TypeAttr || c.Kind() == token.RowTypeAttr {
			return c.Kind(), true
		}
	}
	return 0, false
}

// DatatypeColumnPath returns the dotted identifier path preceding a
// %TYPE/%ROWTYPE attribute, e.g. ["persons", "last_login"] for
// "persons.last_login%TYPE". For a plain scalar datatype it returns the
// type name as a single-element path.
func DatatypeColumnPath(d syntax.Node) []string {
	var parts []string
	for _, c := range d.NonTrivia() {
		if c.Kind() == token.TypeAttr || c.Kind() == token.RowTypeAttr {
			break
		}
		if c.Kind() == token.Dot {
			continue
		}
		parts = append(parts, c.Text())
	}
	return parts
}

// CursorDecls returns every CURSOR ... IS declaration in obj's declare
// section.
func CursorDecls(obj syntax.Node) []syntax.Node {
	switch obj.Kind() {
	case token.Function, token.Procedure:
		return obj.AllOfKind(token.CursorDecl)
	case token.Trigger:
		if tb, ok := obj.FirstOfKind(token.TriggerBody); ok {
			return tb.AllOfKind(token.CursorDecl)
		}
	}
	return nil
}

// DMLStatements returns every INSERT/UPDATE/DELETE/SELECT...INTO statement
// in obj's body, including those nested inside IF/LOOP/nested blocks — a
// coarse migration-effort proxy, not a precise reachability count.
func DMLStatements(obj syntax.Node) []syntax.Node {
	block, ok := Body(obj)
	if !ok {
		return nil
	}
	var out []syntax.Node
	block.Walk(func(n syntax.Node) {
		switch n.Kind() {
		case token.SelectIntoStmt, token.InsertStmt, token.UpdateStmt, token.DeleteStmt:
			out = append(out, n)
		}
	})
	return out
}

// OuterJoinCount counts (+) markers attached to column references inside
// any WHERE clause under root.
func OuterJoinCount(root syntax.Node) int {
	count := 0
	root.Walk(func(n syntax.Node) {
		if n.Kind() != token.WhereClause {
			return
		}
		n.Walk(func(m syntax.Node) {
			if m.Kind() == token.OuterJoinOp {
				count++
			}
		})
	})
	return count
}

// BodyLeaves returns every non-trivia leaf token in block's statement
// region, excluding the BEGIN and END keywords themselves — the set that
// linesOfCode counts distinct source lines over.
func BodyLeaves(block syntax.Node) []syntax.Node {
	var out []syntax.Node
	for _, c := range block.NonTrivia() {
		if c.Kind() == token.KBegin || c.Kind() == token.KEnd {
			continue
		}
		c.Walk(func(n syntax.Node) {
			if n.IsLeaf() && !n.Kind().IsTrivia() {
				out = append(out, n)
			}
		})
	}
	return out
}

// PostOrder returns every descendant of root with the given kind in
// post-order (children before parents). CYAR-0006 relies on this to find
// the innermost of several nested NVL calls first.
func PostOrder(root syntax.Node, kind token.SyntaxKind) []syntax.Node {
	var out []syntax.Node
	var visit func(n syntax.Node)
	visit = func(n syntax.Node) {
		for _, c := range n.Children() {
			visit(c)
		}
		if n.Kind() == kind {
			out = append(out, n)
		}
	}
	visit(root)
	return out
}

// RootObject returns the single object node a parsed tree wraps — the one
// non-trivia child of Root, whatever kind it turns out to be.
func RootObject(tree *syntax.Tree) (syntax.Node, bool) {
	nt := tree.Root().NonTrivia()
	if len(nt) == 0 {
		return syntax.Node{}, false
	}
	return nt[0], true
}

// AllOfKindDeep returns every descendant of root with the given kind, in
// source (pre-)order.
func AllOfKindDeep(root syntax.Node, kind token.SyntaxKind) []syntax.Node {
	var out []syntax.Node
	root.Walk(func(n syntax.Node) {
		if n.Kind() == kind {
			out = append(out, n)
		}
	})
	return out
}
