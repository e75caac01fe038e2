package lexer

import (
	"testing"

	"github.com/cybertec-postgresql/oraql/internal/token"
)

func TestNext_SingleTokens(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind token.SyntaxKind
		text string
	}{
		{"outer join marker", "(+)", token.OuterJoinMarker, "(+)"},
		{"type attr", "%TYPE", token.TypeAttr, "%TYPE"},
		{"type attr lowercase", "%type", token.TypeAttr, "%type"},
		{"rowtype attr", "%ROWTYPE", token.RowTypeAttr, "%ROWTYPE"},
		{"bare percent", "% x", token.Percent, "%"},
		{"assign", ":=", token.Assign, ":="},
		{"bind new", ":NEW", token.BindIdent, ":NEW"},
		{"bind old", ":old", token.BindIdent, ":old"},
		{"bare colon", ": ", token.Colon, ":"},
		{"concat", "||", token.Concat, "||"},
		{"dotdot", "..", token.DotDot, ".."},
		{"arrow", "=>", token.Arrow, "=>"},
		{"lteq", "<=", token.LtEq, "<="},
		{"gteq", ">=", token.GtEq, ">="},
		{"ltgt not-eq", "<>", token.NotEq, "<>"},
		{"bang-eq not-eq", "!=", token.NotEq, "!="},
		{"string literal", "'hi'", token.StringLiteral, "'hi'"},
		{"string with doubled quote", "'it''s'", token.StringLiteral, "'it''s'"},
		{"quoted ident", `"MyTable"`, token.QuotedIdent, `"MyTable"`},
		{"int literal", "123", token.IntLiteral, "123"},
		{"float literal", "1.5", token.FloatLiteral, "1.5"},
		{"float with exponent", "1e10", token.FloatLiteral, "1e10"},
		{"leading-dot float", ".5", token.FloatLiteral, ".5"},
		{"keyword begin", "BEGIN", token.KBegin, "BEGIN"},
		{"keyword begin lowercase", "begin", token.KBegin, "begin"},
		{"identifier", "add_job_history", token.Ident, "add_job_history"},
		{"line comment", "-- hi\n", token.LineComment, "-- hi"},
		{"block comment", "/* hi */", token.BlockComment, "/* hi */"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.src)
			got := l.Next()
			if got.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", got.Kind, tt.kind)
			}
			if got.Text != tt.text {
				t.Errorf("Text = %q, want %q", got.Text, tt.text)
			}
			if got.Pos != 0 {
				t.Errorf("Pos = %d, want 0", got.Pos)
			}
		})
	}
}

func TestNext_NumberVsDotDot(t *testing.T) {
	// "1..2" must scan as IntLiteral(1), DotDot, IntLiteral(2) — not as a float
	// "1." followed by ".2".
	toks := All("1..2")
	want := []token.SyntaxKind{token.IntLiteral, token.DotDot, token.IntLiteral, token.EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: Kind = %v, want %v", i, toks[i].Kind, k)
		}
	}
}

func TestNext_OuterJoinNotConfusedWithParens(t *testing.T) {
	toks := All("(a)")
	if toks[0].Kind != token.LParen {
		t.Errorf("first token Kind = %v, want LParen", toks[0].Kind)
	}
}

func TestNext_UnterminatedString(t *testing.T) {
	l := New("'abc")
	got := l.Next()
	if got.Kind != token.UnterminatedString {
		t.Errorf("Kind = %v, want UnterminatedString", got.Kind)
	}
	if got.Text != "'abc" {
		t.Errorf("Text = %q, want %q", got.Text, "'abc")
	}
}

// A bare '$' has no meaning in Oracle PL/SQL and none of its rewrite
// targets introduce one standalone; it lexes as an Unknown single
// character so a transpiled intermediate text (e.g. "AS $$" mid-rewrite)
// never gets swallowed into a run-on token that hides the statements
// around it.
func TestNext_DollarIsUnknownSingleChar(t *testing.T) {
	l := New("$$ select 1; $$")
	got := l.Next()
	if got.Kind != token.Unknown {
		t.Errorf("Kind = %v, want Unknown", got.Kind)
	}
	if got.Text != "$" {
		t.Errorf("Text = %q, want %q", got.Text, "$")
	}
}

func TestAll_LosslessConcatenation(t *testing.T) {
	src := "CREATE OR REPLACE PROCEDURE p IS\nBEGIN\n  NULL;\nEND p;\n"
	toks := All(src)
	var got string
	for _, tk := range toks {
		if tk.Kind == token.EOF {
			continue
		}
		got += tk.Text
	}
	if got != src {
		t.Errorf("concatenation mismatch:\n got: %q\nwant: %q", got, src)
	}
}

func TestAll_CoversEntireInput(t *testing.T) {
	src := "SELECT * FROM persons, places WHERE places.person_id(+) = persons.id;"
	toks := All(src)
	if len(toks) == 0 || toks[len(toks)-1].Kind != token.EOF {
		t.Fatalf("expected trailing EOF token")
	}
	var sawOuterJoin bool
	for _, tk := range toks {
		if tk.Kind == token.OuterJoinMarker {
			sawOuterJoin = true
		}
	}
	if !sawOuterJoin {
		t.Errorf("expected an OuterJoinMarker token")
	}
}
