package ast

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybertec-postgresql/oraql/internal/parser"
	"github.com/cybertec-postgresql/oraql/internal/token"
)

func fixture(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile("../../testdata/" + name)
	require.NoError(t, err)
	return string(b)
}

func TestName_Procedure(t *testing.T) {
	src := fixture(t, "add_job_history.ora.sql")
	tree := parser.Parse(parser.KindProcedure, src)
	obj, ok := RootObject(tree)
	require.True(t, ok)
	assert.Equal(t, "add_job_history", Name(obj))
}

func TestParams_TypeAttrResolution(t *testing.T) {
	src := fixture(t, "log_last_login_fuzzy.ora.sql")
	tree := parser.Parse(parser.KindProcedure, src)
	obj, ok := RootObject(tree)
	require.True(t, ok)

	params := Params(obj)
	require.Len(t, params, 1)
	assert.Equal(t, "p_person_id", ParamName(params[0]))
	assert.Equal(t, "IN", ParamMode(params[0]))

	dt, ok := ParamDatatype(params[0])
	require.True(t, ok)
	attr, ok := DatatypeAttr(dt)
	require.True(t, ok)
	assert.Equal(t, token.TypeAttr, attr)
	assert.Equal(t, []string{"persons", "id"}, DatatypeColumnPath(dt))
}

func TestOuterJoinCount(t *testing.T) {
	src := "SELECT * FROM persons, places WHERE places.person_id(+) = persons.id;"
	tree := parser.Parse(parser.KindQuery, src)
	assert.Equal(t, 1, OuterJoinCount(tree.Root()))
}

func TestBodyLeaves_ExcludesBeginEnd(t *testing.T) {
	src := fixture(t, "add_job_history.ora.sql")
	tree := parser.Parse(parser.KindProcedure, src)
	obj, ok := RootObject(tree)
	require.True(t, ok)
	body, ok := Body(obj)
	require.True(t, ok)

	for _, leaf := range BodyLeaves(body) {
		assert.NotEqual(t, token.KBegin, leaf.Kind())
		assert.NotEqual(t, token.KEnd, leaf.Kind())
	}
}

func TestAllOfKindDeep_FindsBareSysdate(t *testing.T) {
	src := fixture(t, "secure_dml.ora.sql")
	tree := parser.Parse(parser.KindProcedure, src)
	obj, ok := RootObject(tree)
	require.True(t, ok)
	assert.Len(t, AllOfKindDeep(obj, token.KSysdate), 2)
}

func TestPostOrder_InnerBeforeOuter(t *testing.T) {
	src := "CREATE OR REPLACE FUNCTION f (a NUMBER, b NUMBER, c NUMBER) RETURN NUMBER " +
		"IS BEGIN RETURN NVL(NVL(a, b), c); END f;"
	tree := parser.Parse(parser.KindFunction, src)
	calls := PostOrder(tree.Root(), token.FunctionInvocation)
	require.Len(t, calls, 2)
	// The inner NVL(a, b) call starts later in the source than the outer one.
	innerStart, _ := calls[0].Span()
	outerStart, _ := calls[1].Span()
	assert.Greater(t, innerStart, outerStart)
}
