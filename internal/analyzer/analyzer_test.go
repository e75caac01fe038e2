package analyzer

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybertec-postgresql/oraql/internal/parser"
	"github.com/cybertec-postgresql/oraql/pkg/types"
)

func fixture(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile("../../testdata/" + name)
	require.NoError(t, err)
	return string(b)
}

func TestAnalyze_Procedure_NameAndLOC(t *testing.T) {
	src := fixture(t, "add_job_history.ora.sql")
	tree := parser.Parse(parser.KindProcedure, src)
	md := Analyze(parser.KindProcedure, tree, src, types.Context{})

	require.NotNil(t, md.Procedure)
	assert.Equal(t, "add_job_history", md.Procedure.Name)
	assert.Equal(t, 5, md.Procedure.LinesOfCode)
	assert.Nil(t, md.Function)
}

func TestAnalyze_View_NameAndOuterJoins(t *testing.T) {
	src := "CREATE OR REPLACE VIEW emp_depts AS SELECT * FROM employees, departments WHERE departments.dept_id(+) = employees.dept_id;"
	tree := parser.Parse(parser.KindView, src)
	md := Analyze(parser.KindView, tree, src, types.Context{})

	require.NotNil(t, md.View)
	assert.Equal(t, "emp_depts", md.View.Name)
	assert.Equal(t, 1, md.View.OuterJoins)
	assert.Nil(t, md.Query)
}

func TestAnalyze_Query_OuterJoins(t *testing.T) {
	src := "SELECT * FROM persons, places WHERE places.person_id(+) = persons.id;"
	tree := parser.Parse(parser.KindQuery, src)
	md := Analyze(parser.KindQuery, tree, src, types.Context{})

	require.NotNil(t, md.Query)
	assert.Equal(t, 1, md.Query.OuterJoins)
}

func TestAnalyze_RuleHitsIncludedInRegistryOrder(t *testing.T) {
	src := fixture(t, "secure_dml.ora.sql")
	tree := parser.Parse(parser.KindProcedure, src)
	md := Analyze(parser.KindProcedure, tree, src, types.Context{})

	var names []string
	for _, r := range md.Rules {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"CYAR-0001", "CYAR-0002", "CYAR-0003", "CYAR-0005"}, names)
}

func TestAnalyze_ResolvesTypeAttrAgainstContext(t *testing.T) {
	src := fixture(t, "log_last_login_fuzzy.ora.sql")
	ctx := types.Context{Tables: map[string]types.Table{
		"persons": {Columns: map[string]types.Column{
			"id": {Type: types.ColumnInteger},
		}},
	}}
	tree := parser.Parse(parser.KindProcedure, src)
	md := Analyze(parser.KindProcedure, tree, src, ctx)

	require.NotNil(t, md.Procedure)
	assert.Equal(t, "int4", md.Procedure.ResolvedParameterTypes["p_person_id"])
}
