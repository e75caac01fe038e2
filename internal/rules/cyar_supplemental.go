package rules

import (
	"strings"

	"github.com/cybertec-postgresql/oraql/internal/ast"
	"github.com/cybertec-postgresql/oraql/internal/parser"
	"github.com/cybertec-postgresql/oraql/internal/syntax"
	"github.com/cybertec-postgresql/oraql/internal/token"
	"github.com/cybertec-postgresql/oraql/pkg/types"
)

// cyar0007 is report-only: PostgreSQL supports %ROWTYPE natively, so there
// is nothing to rewrite. Its match's replacement is the zero-width
// original text, so calling Apply on it is, correctly, a non-progress
// call — this rule exists to surface a migration note, not to be applied.
var cyar0007 = &Rule{
	Name:      "CYAR-0007",
	ShortDesc: "%ROWTYPE reference carries over to PostgreSQL unchanged; no action needed",
	AppliesTo: kinds(parser.KindProcedure, parser.KindFunction),
	Matches: func(tree *syntax.Tree, src string) []Match {
		obj, ok := rootObject(tree)
		if !ok || (obj.Kind() != token.Procedure && obj.Kind() != token.Function) {
			return nil
		}
		var out []Match
		for _, d := range ast.AllOfKindDeep(obj, token.Datatype) {
			attr, ok := ast.DatatypeAttr(d)
			if !ok || attr != token.RowTypeAttr {
				continue
			}
			_, end := d.Span()
			out = append(out, Match{Location: types.NewTextRange(src, end, end), Replacement: ""})
		}
		return out
	},
}

// cyar0008 rewrites the legacy comma-join "(+)" marker into an explicit
// LEFT JOIN when exactly one outer-joined table pair can be unambiguously
// identified (one WHERE predicate, exactly two FROM tables, the marker on
// one side of an equality). Any shape outside that narrow case is reported
// with an identity replacement rather than guessed at.
var cyar0008 = &Rule{
	Name:      "CYAR-0008",
	ShortDesc: "(+) outer-join marker should become an explicit LEFT JOIN",
	AppliesTo: kinds(parser.KindQuery, parser.KindProcedure, parser.KindFunction, parser.KindView),
	Matches: func(tree *syntax.Tree, src string) []Match {
		var out []Match
		selects := ast.AllOfKindDeep(tree.Root(), token.SelectStmt)
		selects = append(selects, ast.AllOfKindDeep(tree.Root(), token.SelectIntoStmt)...)
		for _, sel := range selects {
			where, ok := sel.FirstOfKind(token.WhereClause)
			if !ok {
				continue
			}
			markers := ast.AllOfKindDeep(where, token.OuterJoinOp)
			if len(markers) == 0 {
				continue
			}
			start, end := sel.Span()
			loc := types.NewTextRange(src, start, end)
			if rewrite, ok := rewriteExplicitJoin(src, sel, where); ok && len(markers) == 1 {
				out = append(out, Match{Location: loc, Replacement: rewrite})
				continue
			}
			out = append(out, Match{Location: loc, Replacement: src[start:end]})
		}
		return out
	},
}

// rewriteExplicitJoin handles the single-outer-pair case: a WHERE clause
// whose entire predicate is "a.col(+) = b.col" (or the mirror image) over a
// two-table FROM list.
func rewriteExplicitJoin(src string, sel, where syntax.Node) (string, bool) {
	from, ok := sel.FirstOfKind(token.FromClause)
	if !ok {
		return "", false
	}
	fromTables := from.AllOfKind(token.QualifiedIdentifier)
	if len(fromTables) != 2 {
		return "", false
	}
	expr, ok := where.FirstOfKind(token.Expression)
	if !ok {
		return "", false
	}
	parts := expr.NonTrivia()
	if len(parts) < 3 {
		return "", false
	}

	idx := 0
	if parts[idx].Kind() != token.QualifiedIdentifier {
		return "", false
	}
	left := parts[idx]
	idx++
	leftOuter := false
	if idx < len(parts) && parts[idx].Kind() == token.OuterJoinOp {
		leftOuter = true
		idx++
	}
	if idx >= len(parts) || parts[idx].Kind() != token.Eq {
		return "", false
	}
	idx++
	if idx >= len(parts) || parts[idx].Kind() != token.QualifiedIdentifier {
		return "", false
	}
	right := parts[idx]
	idx++
	rightOuter := false
	if idx < len(parts) && parts[idx].Kind() == token.OuterJoinOp {
		rightOuter = true
		idx++
	}
	if idx != len(parts) || leftOuter == rightOuter {
		return "", false
	}

	markedQual := qualifierOf(right)
	if leftOuter {
		markedQual = qualifierOf(left)
	}
	var outerTable, drivingTable string
	switch {
	case strings.EqualFold(fromTables[0].Text(), markedQual):
		outerTable, drivingTable = fromTables[0].Text(), fromTables[1].Text()
	case strings.EqualFold(fromTables[1].Text(), markedQual):
		outerTable, drivingTable = fromTables[1].Text(), fromTables[0].Text()
	default:
		return "", false
	}

	selectList, ok := sel.FirstOfKind(token.ColumnList)
	if !ok {
		return "", false
	}
	_, whereEnd := where.Span()
	_, selEnd := sel.Span()
	trailing := src[whereEnd:selEnd]

	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(selectList.Text())
	b.WriteString(" FROM ")
	b.WriteString(drivingTable)
	b.WriteString(" LEFT JOIN ")
	b.WriteString(outerTable)
	b.WriteString(" ON ")
	b.WriteString(left.Text())
	b.WriteString(" = ")
	b.WriteString(right.Text())
	b.WriteString(trailing)
	return b.String(), true
}

func qualifierOf(n syntax.Node) string {
	txt := n.Text()
	if i := strings.IndexByte(txt, '.'); i >= 0 {
		return txt[:i]
	}
	return txt
}

// cyar0009 positively confirms a CURSOR ... IS declaration used only as a
// FOR-loop iteration source needs no rewrite: PostgreSQL's FOR rec IN
// cursor LOOP syntax matches Oracle's directly. Like CYAR-0007 this is
// report-only.
var cyar0009 = &Rule{
	Name:      "CYAR-0009",
	ShortDesc: "cursor is only ever used as a FOR-loop source; no migration effort needed",
	AppliesTo: kinds(parser.KindProcedure, parser.KindFunction),
	Matches: func(tree *syntax.Tree, src string) []Match {
		obj, ok := rootObject(tree)
		if !ok || (obj.Kind() != token.Procedure && obj.Kind() != token.Function) {
			return nil
		}
		body, ok := ast.Body(obj)
		if !ok {
			return nil
		}
		loopSources := make(map[string]bool)
		for _, loop := range ast.AllOfKindDeep(body, token.LoopStmt) {
			nt := loop.NonTrivia()
			if len(nt) >= 2 && nt[0].Kind() == token.KFor {
				if q, ok := loop.FirstOfKind(token.QualifiedIdentifier); ok {
					loopSources[strings.ToLower(strings.TrimSpace(q.Text()))] = true
				}
			}
		}
		var out []Match
		for _, decl := range ast.CursorDecls(obj) {
			nt := decl.NonTrivia()
			if len(nt) < 2 {
				continue
			}
			name := nt[1]
			if !loopSources[strings.ToLower(name.Text())] {
				continue
			}
			openUses := 0
			for _, open := range ast.AllOfKindDeep(body, token.OpenStmt) {
				ont := open.NonTrivia()
				if len(ont) >= 2 && strings.EqualFold(ont[1].Text(), name.Text()) {
					openUses++
				}
			}
			if openUses > 0 {
				continue
			}
			out = append(out, Match{Location: spanRange(src, decl), Replacement: decl.Text()})
		}
		return out
	},
}
