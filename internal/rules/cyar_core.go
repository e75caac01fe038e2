package rules

import (
	"strings"

	"github.com/cybertec-postgresql/oraql/internal/ast"
	"github.com/cybertec-postgresql/oraql/internal/parser"
	"github.com/cybertec-postgresql/oraql/internal/syntax"
	"github.com/cybertec-postgresql/oraql/internal/token"
	"github.com/cybertec-postgresql/oraql/pkg/types"
)

var cyar0001 = &Rule{
	Name:      "CYAR-0001",
	ShortDesc: "procedure header has no parameter list; PostgreSQL requires the empty parens",
	AppliesTo: kinds(parser.KindProcedure),
	Matches: func(tree *syntax.Tree, src string) []Match {
		obj, ok := rootObject(tree)
		if !ok || obj.Kind() != token.Procedure {
			return nil
		}
		header, ok := obj.FirstOfKind(token.ProcedureHeader)
		if !ok {
			return nil
		}
		if _, ok := header.FirstOfKind(token.ParamList); ok {
			return nil
		}
		name, ok := header.FirstOfKind(token.QualifiedIdentifier)
		if !ok {
			return nil
		}
		_, end := name.Span()
		return []Match{{Location: types.NewTextRange(src, end, end), Replacement: "()"}}
	},
}

var cyar0002 = &Rule{
	Name:      "CYAR-0002",
	ShortDesc: "IS/AS introducing the body must become AS $$ for a PostgreSQL dollar-quoted body",
	AppliesTo: kinds(parser.KindProcedure, parser.KindFunction),
	Matches: func(tree *syntax.Tree, src string) []Match {
		obj, ok := rootObject(tree)
		if !ok || (obj.Kind() != token.Procedure && obj.Kind() != token.Function) {
			return nil
		}
		nt := obj.NonTrivia()
		if len(nt) < 2 {
			return nil
		}
		bodyKw := nt[1]
		if bodyKw.Kind() != token.KIs && bodyKw.Kind() != token.KAs {
			return nil
		}
		// An "AS" already followed by a dollar-quote opener is this rule's
		// own prior output, not an Oracle "AS"-for-"IS" spelling — matching
		// it again would never make progress.
		_, end := bodyKw.Span()
		if bodyKw.Kind() == token.KAs && strings.HasPrefix(strings.TrimLeft(src[end:], " \t\r\n"), "$$") {
			return nil
		}
		return []Match{{Location: spanRange(src, bodyKw), Replacement: "AS $$"}}
	},
}

var cyar0003 = &Rule{
	Name:      "CYAR-0003",
	ShortDesc: "trailing END <name> must become END; followed by the LANGUAGE clause",
	AppliesTo: kinds(parser.KindProcedure, parser.KindFunction),
	Matches: func(tree *syntax.Tree, src string) []Match {
		obj, ok := rootObject(tree)
		if !ok || (obj.Kind() != token.Procedure && obj.Kind() != token.Function) {
			return nil
		}
		block, ok := obj.FirstOfKind(token.Block)
		if !ok {
			return nil
		}
		endTok, ok := block.FirstOfKind(token.KEnd)
		if !ok {
			return nil
		}
		start, _ := endTok.Span()
		_, end := block.Span()

		nt := obj.NonTrivia()
		for i, c := range nt {
			if c.Kind() != token.Block {
				continue
			}
			if i+1 < len(nt) && (nt[i+1].Kind() == token.Ident || nt[i+1].Kind() == token.QuotedIdent) {
				_, end = nt[i+1].Span()
			}
			break
		}
		// A trailing END already followed by a dollar-quote close and a
		// LANGUAGE clause is this rule's own prior output, not an
		// un-transpiled "END <name>" — matching it again would never make
		// progress.
		if looksAlreadyTranspiled(src[end:]) {
			return nil
		}
		return []Match{{Location: types.NewTextRange(src, start, end), Replacement: "END;\n$$ LANGUAGE plpgsql"}}
	},
}

var cyar0005 = &Rule{
	Name:      "CYAR-0005",
	ShortDesc: "bareword SYSDATE must become clock_timestamp()",
	AppliesTo: kinds(parser.KindProcedure, parser.KindFunction),
	Matches: func(tree *syntax.Tree, src string) []Match {
		obj, ok := rootObject(tree)
		if !ok || (obj.Kind() != token.Procedure && obj.Kind() != token.Function) {
			return nil
		}
		var out []Match
		for _, n := range ast.AllOfKindDeep(obj, token.KSysdate) {
			out = append(out, Match{Location: spanRange(src, n), Replacement: "clock_timestamp()"})
		}
		return out
	},
}

var cyar0006 = &Rule{
	Name:      "CYAR-0006",
	ShortDesc: "NVL(a, b) must become COALESCE(a, b)",
	AppliesTo: kinds(parser.KindProcedure, parser.KindFunction, parser.KindTrigger, parser.KindView, parser.KindQuery),
	Matches: func(tree *syntax.Tree, src string) []Match {
		var out []Match
		// Post-order: an inner NVL(NVL(x,y),z) call is visited before its
		// enclosing one, so a single apply at the first match always
		// rewrites the innermost call first, leaving outer calls to be
		// re-matched on the next analysis pass.
		for _, fi := range ast.PostOrder(tree.Root(), token.FunctionInvocation) {
			nt := fi.NonTrivia()
			if len(nt) == 0 {
				continue
			}
			name := nt[0]
			if !strings.EqualFold(name.Text(), "nvl") {
				continue
			}
			out = append(out, Match{Location: spanRange(src, name), Replacement: "COALESCE"})
		}
		return out
	},
}
