package pgtypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybertec-postgresql/oraql/pkg/types"
)

func TestName(t *testing.T) {
	cases := []struct {
		ct   types.ColumnType
		want string
	}{
		{types.ColumnInteger, "int4"},
		{types.ColumnText, "text"},
		{types.ColumnDate, "date"},
	}
	for _, c := range cases {
		got, ok := Name(c.ct)
		require.True(t, ok)
		assert.Equal(t, c.want, got)
	}

	_, ok := Name(types.ColumnType("bogus"))
	assert.False(t, ok)
}

func ctxWithPersons() types.Context {
	return types.Context{Tables: map[string]types.Table{
		"persons": {Columns: map[string]types.Column{
			"id":               {Type: types.ColumnInteger},
			"name":             {Type: types.ColumnText},
			"number_of_logins": {Type: types.ColumnInteger},
			"last_login":       {Type: types.ColumnDate},
		}},
	}}
}

func TestResolveColumn(t *testing.T) {
	ctx := ctxWithPersons()

	pg, ok := ResolveColumn(ctx, []string{"persons", "id"})
	require.True(t, ok)
	assert.Equal(t, "int4", pg)

	_, ok = ResolveColumn(ctx, []string{"persons", "nosuch"})
	assert.False(t, ok)

	_, ok = ResolveColumn(ctx, []string{"nosuch", "id"})
	assert.False(t, ok)

	_, ok = ResolveColumn(ctx, []string{"persons"})
	assert.False(t, ok)
}

func TestResolveRowType_StableOrder(t *testing.T) {
	ctx := ctxWithPersons()

	cols, ok := ResolveRowType(ctx, "persons")
	require.True(t, ok)
	require.Len(t, cols, 4)

	var names []string
	for _, c := range cols {
		names = append(names, c.Column)
	}
	assert.Equal(t, []string{"id", "last_login", "name", "number_of_logins"}, names)

	_, ok = ResolveRowType(ctx, "nosuch")
	assert.False(t, ok)
}
