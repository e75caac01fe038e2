package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybertec-postgresql/oraql/pkg/types"
)

func TestValidFormat(t *testing.T) {
	assert.True(t, ValidFormat("json"))
	assert.True(t, ValidFormat("html"))
	assert.False(t, ValidFormat("xml"))
}

func TestGetFormatter(t *testing.T) {
	_, err := GetFormatter(FormatJSON)
	require.NoError(t, err)
	_, err = GetFormatter(FormatHTML)
	require.NoError(t, err)
	_, err = GetFormatter(FormatType("xml"))
	assert.Error(t, err)
}

func sampleMetadata() types.Metadata {
	src := "CREATE OR REPLACE PROCEDURE p IS BEGIN NULL; END p;"
	start := strings.Index(src, "IS")
	loc := types.NewTextRange(src, start, start+2)
	return types.Metadata{
		Procedure: &types.ObjectMetadata{Name: "p", LinesOfCode: 1},
		Rules: []types.RuleHit{
			{Name: "CYAR-0002", Locations: []types.TextRange{loc}, ShortDesc: "IS/AS becomes AS $$"},
		},
	}
}

func TestJSONReporter_Format(t *testing.T) {
	r := NewJSONReporter()
	out, err := r.FormatString(sampleMetadata())
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "p"`)
	assert.Contains(t, out, `"CYAR-0002"`)
}

func TestHTMLReporter_Format(t *testing.T) {
	r := NewHTMLReporter()
	src := "CREATE OR REPLACE PROCEDURE p IS BEGIN NULL; END p;"
	out, err := r.FormatString(sampleMetadata(), src)
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, "<mark class=\"hit\""))
	assert.True(t, strings.Contains(out, "oraql analysis: p"))
}

func TestHTMLReporter_NoHits(t *testing.T) {
	r := NewHTMLReporter()
	md := types.Metadata{Procedure: &types.ObjectMetadata{Name: "p"}}
	out, err := r.FormatString(md, "BEGIN NULL; END;")
	require.NoError(t, err)
	assert.Contains(t, out, "No rule hits")
}
