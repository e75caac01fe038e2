package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybertec-postgresql/oraql/internal/parser"
	"github.com/cybertec-postgresql/oraql/pkg/types"
)

func TestLookup(t *testing.T) {
	r, ok := Lookup("CYAR-0002")
	require.True(t, ok)
	assert.Equal(t, "CYAR-0002", r.Name)

	_, ok = Lookup("CYAR-9999")
	assert.False(t, ok)
}

func TestRegistry_OrderIsCanonical(t *testing.T) {
	var names []string
	for _, r := range Registry {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{
		"CYAR-0001", "CYAR-0002", "CYAR-0003", "CYAR-0005",
		"CYAR-0006", "CYAR-0007", "CYAR-0008", "CYAR-0009",
	}, names)
}

func TestSubstitute(t *testing.T) {
	src := "abcdef"
	m := Match{Location: types.NewTextRange(src, 1, 3), Replacement: "XY"}
	assert.Equal(t, "aXYdef", Substitute(src, m))
}

func TestCyar0002_SkipsOwnPriorOutput(t *testing.T) {
	src := "CREATE OR REPLACE PROCEDURE p AS $$ BEGIN NULL; END p;"
	tree := parser.Parse(parser.KindProcedure, src)
	matches := cyar0002.Matches(tree, src)
	assert.Empty(t, matches, "should not re-match a body already introduced by AS $$")
}

func TestCyar0003_SkipsOwnPriorOutput(t *testing.T) {
	src := "CREATE OR REPLACE PROCEDURE p IS BEGIN NULL; END;\n$$ LANGUAGE plpgsql;"
	tree := parser.Parse(parser.KindProcedure, src)
	matches := cyar0003.Matches(tree, src)
	assert.Empty(t, matches, "should not re-match an END already followed by a LANGUAGE clause")
}

func TestCyar0003_MatchesPlainTrailingName(t *testing.T) {
	src := "CREATE OR REPLACE PROCEDURE p IS BEGIN NULL; END p;"
	tree := parser.Parse(parser.KindProcedure, src)
	matches := cyar0003.Matches(tree, src)
	require.Len(t, matches, 1)
	loc := matches[0].Location
	assert.Equal(t, "END p", src[loc.Offset.Start:loc.Offset.End])
}
