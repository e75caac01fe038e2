package oraql

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybertec-postgresql/oraql/pkg/types"
)

func fixture(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile("testdata/" + name)
	require.NoError(t, err)
	return string(b)
}

func ruleNames(md types.Metadata) []string {
	var out []string
	for _, r := range md.Rules {
		out = append(out, r.Name)
	}
	return out
}

func TestAnalyze_AddJobHistory(t *testing.T) {
	src := fixture(t, "add_job_history.ora.sql")
	md, err := Analyze("procedure", src, types.Context{})
	require.NoError(t, err)
	require.NotNil(t, md.Procedure)
	assert.Equal(t, "add_job_history", md.Procedure.Name)
	assert.Equal(t, 5, md.Procedure.LinesOfCode)
}

func TestAnalyze_FunctionHeadingExample(t *testing.T) {
	src := fixture(t, "function_heading_example.ora.sql")
	md, err := Analyze("function", src, types.Context{})
	require.NoError(t, err)
	require.NotNil(t, md.Function)
	assert.Equal(t, "function_heading_example", md.Function.Name)
	assert.Equal(t, 3, md.Function.LinesOfCode)
	assert.Contains(t, ruleNames(md), "CYAR-0002")
	assert.Contains(t, ruleNames(md), "CYAR-0003")
}

func TestAnalyze_LogLastLoginFuzzy_RuleSetIsExact(t *testing.T) {
	src := fixture(t, "log_last_login_fuzzy.ora.sql")
	ctx := types.Context{Tables: map[string]types.Table{
		"persons": {Columns: map[string]types.Column{
			"id":               {Type: types.ColumnInteger},
			"name":             {Type: types.ColumnText},
			"number_of_logins": {Type: types.ColumnInteger},
			"last_login":       {Type: types.ColumnDate},
		}},
	}}
	md, err := Analyze("procedure", src, ctx)
	require.NoError(t, err)
	assert.Equal(t, "log_last_login_fuzzy", md.Procedure.Name)
	assert.Equal(t, 5, md.Procedure.LinesOfCode)
	require.Len(t, md.Rules, 2)
	for _, hit := range md.Rules {
		require.Len(t, hit.Locations, 1)
		loc := hit.Locations[0]
		slice := src[loc.Offset.Start:loc.Offset.End]
		switch hit.Name {
		case "CYAR-0002":
			assert.Equal(t, "IS", slice)
		case "CYAR-0003":
			assert.Equal(t, "END log_last_login_fuzzy", slice)
		default:
			t.Fatalf("unexpected rule hit %s", hit.Name)
		}
	}
}

func TestAnalyze_OuterJoinCount(t *testing.T) {
	src := "SELECT * FROM persons, places WHERE places.person_id(+) = persons.id;"
	md, err := Analyze("query", src, types.Context{})
	require.NoError(t, err)
	require.NotNil(t, md.Query)
	assert.Equal(t, 1, md.Query.OuterJoins)
}

func TestAnalyze_SecureDml_InitialRuleSet(t *testing.T) {
	src := fixture(t, "secure_dml.ora.sql")
	md, err := Analyze("procedure", src, types.Context{})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"CYAR-0001", "CYAR-0002", "CYAR-0003", "CYAR-0005"}, ruleNames(md))
}

// TestApplyRule_SecureDml_ConvergesToEmpty drives the full migration chain
// for secure_dml by repeatedly applying whatever rule Analyze reports first,
// until none remain, confirming the process terminates and produces the
// expected PostgreSQL-shaped text.
func TestApplyRule_SecureDml_ConvergesToEmpty(t *testing.T) {
	text := fixture(t, "secure_dml.ora.sql")
	ctx := types.Context{}

	for i := 0; i < 10; i++ {
		md, err := Analyze("procedure", text, ctx)
		require.NoError(t, err)
		if len(md.Rules) == 0 {
			break
		}
		result, err := ApplyRule("procedure", text, md.Rules[0].Name, nil, ctx)
		require.NoError(t, err, "applying %s on iteration %d", md.Rules[0].Name, i)
		text = result.EditedText
	}

	md, err := Analyze("procedure", text, ctx)
	require.NoError(t, err)
	assert.Empty(t, md.Rules, "rules should be empty once the chain converges:\n%s", text)

	assert.Contains(t, text, "secure_dml()")
	assert.Contains(t, text, "AS $$")
	assert.Contains(t, text, "END;\n$$ LANGUAGE plpgsql")
	assert.False(t, strings.Contains(text, "SYSDATE"), "no bareword SYSDATE should survive: %s", text)
	assert.Equal(t, 2, strings.Count(text, "clock_timestamp()"))
}

// TestApplyRule_Cyar0002_DoesNotReapplyAfterRewrite guards specifically
// against the IS/AS rewrite matching its own prior output.
func TestApplyRule_Cyar0002_DoesNotReapplyAfterRewrite(t *testing.T) {
	text := fixture(t, "function_heading_example.ora.sql")
	ctx := types.Context{}

	result, err := ApplyRule("function", text, "CYAR-0002", nil, ctx)
	require.NoError(t, err)

	md, err := Analyze("function", result.EditedText, ctx)
	require.NoError(t, err)
	assert.NotContains(t, ruleNames(md), "CYAR-0002")
}

// TestApplyRule_Cyar0003_DoesNotReapplyAfterRewrite guards against the
// trailing END rewrite matching its own prior output.
func TestApplyRule_Cyar0003_DoesNotReapplyAfterRewrite(t *testing.T) {
	text := fixture(t, "function_heading_example.ora.sql")
	ctx := types.Context{}

	result, err := ApplyRule("function", text, "CYAR-0003", nil, ctx)
	require.NoError(t, err)

	md, err := Analyze("function", result.EditedText, ctx)
	require.NoError(t, err)
	assert.NotContains(t, ruleNames(md), "CYAR-0003")
}

func TestApplyRule_NestedNvlCollapsesOneLevelAtATime(t *testing.T) {
	text := "CREATE OR REPLACE FUNCTION f (a NUMBER, b NUMBER, c NUMBER) RETURN NUMBER " +
		"IS BEGIN RETURN NVL(NVL(a, b), c); END f;"
	ctx := types.Context{}

	// Post-order visits the inner NVL before the outer one, so the first
	// apply (matches[0], no explicit location) rewrites the innermost call.
	result, err := ApplyRule("function", text, "CYAR-0006", nil, ctx)
	require.NoError(t, err)
	assert.Contains(t, result.EditedText, "NVL(COALESCE(a, b), c)")

	result, err = ApplyRule("function", result.EditedText, "CYAR-0006", nil, ctx)
	require.NoError(t, err)
	assert.Contains(t, result.EditedText, "COALESCE(COALESCE(a, b), c)")

	md, err := Analyze("function", result.EditedText, ctx)
	require.NoError(t, err)
	assert.NotContains(t, ruleNames(md), "CYAR-0006")
}

func TestAnalyze_InvalidKind(t *testing.T) {
	_, err := Analyze("bogus", "whatever", types.Context{})
	require.Error(t, err)
	var invalidKind *InvalidKindError
	assert.ErrorAs(t, err, &invalidKind)
}

func TestApplyRule_UnknownRule(t *testing.T) {
	_, err := ApplyRule("procedure", fixture(t, "add_job_history.ora.sql"), "CYAR-9999", nil, types.Context{})
	require.Error(t, err)
	var unknown *UnknownRuleError
	assert.ErrorAs(t, err, &unknown)
}

func TestApplyRule_NoSuchMatch(t *testing.T) {
	_, err := ApplyRule("procedure", fixture(t, "add_job_history.ora.sql"), "CYAR-0006", nil, types.Context{})
	require.Error(t, err)
	var noMatch *NoSuchMatchError
	assert.ErrorAs(t, err, &noMatch)
}

func TestApplyRule_LocationNotFound(t *testing.T) {
	src := fixture(t, "add_job_history.ora.sql")
	bogus := types.NewTextRange(src, 0, 1)
	_, err := ApplyRule("procedure", src, "CYAR-0002", &bogus, types.Context{})
	require.Error(t, err)
	var notFound *LocationNotFoundError
	assert.ErrorAs(t, err, &notFound)
}
