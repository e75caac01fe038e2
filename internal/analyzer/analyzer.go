/*
Package analyzer runs the one pass per object kind that produces the
kind-specific subset of a Metadata record, then runs every registered rule
against the parsed tree and appends its hits. Every field is computed on a
best-effort basis: a malformed object still gets whatever fields the
surviving tree structure supports, rather than failing the whole analysis.
*/
package analyzer

import (
	"strings"

	"github.com/cybertec-postgresql/oraql/internal/ast"
	"github.com/cybertec-postgresql/oraql/internal/parser"
	"github.com/cybertec-postgresql/oraql/internal/pgtypes"
	"github.com/cybertec-postgresql/oraql/internal/rules"
	"github.com/cybertec-postgresql/oraql/internal/syntax"
	"github.com/cybertec-postgresql/oraql/internal/token"
	"github.com/cybertec-postgresql/oraql/pkg/types"
)

// Analyze runs the analyzer pass matching kind over tree and returns the
// populated Metadata record, including rule hits.
func Analyze(kind parser.Kind, tree *syntax.Tree, src string, ctx types.Context) types.Metadata {
	md := types.Metadata{Rules: rules.Run(kind, tree, src)}
	obj, ok := ast.RootObject(tree)

	switch kind {
	case parser.KindProcedure:
		md.Procedure = &types.ObjectMetadata{}
		if ok {
			fillObject(md.Procedure, obj, src, ctx)
		}
	case parser.KindFunction:
		md.Function = &types.ObjectMetadata{}
		if ok {
			fillObject(md.Function, obj, src, ctx)
		}
	case parser.KindTrigger:
		md.Trigger = &types.ObjectMetadata{}
		if ok {
			md.Trigger.Name = ast.Name(obj)
			if body, ok := ast.Body(obj); ok {
				md.Trigger.LinesOfCode = linesOfCode(src, body)
			}
		}
	case parser.KindView:
		md.View = &types.ViewMetadata{}
		if ok {
			md.View.Name = ast.Name(obj)
			md.View.OuterJoins = ast.OuterJoinCount(obj)
		}
	case parser.KindQuery:
		md.Query = &types.QueryMetadata{}
		if ok {
			md.Query.OuterJoins = ast.OuterJoinCount(obj)
		}
	}
	return md
}

// fillObject populates the fields shared by procedure and function
// metadata: name, LOC, cursor/DML counts, and %TYPE/%ROWTYPE resolution
// against ctx.
func fillObject(om *types.ObjectMetadata, obj syntax.Node, src string, ctx types.Context) {
	om.Name = ast.Name(obj)
	if body, ok := ast.Body(obj); ok {
		om.LinesOfCode = linesOfCode(src, body)
	}
	om.CursorCount = len(ast.CursorDecls(obj))
	om.DMLStatementCount = len(ast.DMLStatements(obj))
	om.ResolvedParameterTypes = resolveParameterTypes(obj, ctx)
}

// linesOfCode counts the distinct source lines on which at least one
// non-trivia body token appears — the BEGIN and END keyword lines do not
// count on their own, only via a statement token sharing their line.
func linesOfCode(src string, block syntax.Node) int {
	seen := make(map[int]bool)
	for _, leaf := range ast.BodyLeaves(block) {
		start, _ := leaf.Span()
		line := types.NewTextRange(src, start, start).Start.Line
		seen[line] = true
	}
	return len(seen)
}

// resolveParameterTypes maps each %TYPE/%ROWTYPE parameter to the
// PostgreSQL type name ctx resolves it to, omitting parameters ctx cannot
// resolve (unknown table, unknown column, or no context supplied at all).
func resolveParameterTypes(obj syntax.Node, ctx types.Context) map[string]string {
	out := map[string]string{}
	for _, p := range ast.Params(obj) {
		dt, ok := ast.ParamDatatype(p)
		if !ok {
			continue
		}
		attr, ok := ast.DatatypeAttr(dt)
		if !ok {
			continue
		}
		path := ast.DatatypeColumnPath(dt)
		name := ast.ParamName(p)
		switch attr {
		case token.TypeAttr:
			if pg, ok := pgtypes.ResolveColumn(ctx, path); ok {
				out[name] = pg
			}
		case token.RowTypeAttr:
			if len(path) != 1 {
				continue
			}
			if cols, ok := pgtypes.ResolveRowType(ctx, path[0]); ok {
				var names []string
				for _, c := range cols {
					names = append(names, c.Column+" "+c.PgType)
				}
				out[name] = strings.Join(names, ", ")
			}
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
