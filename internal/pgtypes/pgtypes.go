/*
Package pgtypes backs %TYPE/%ROWTYPE resolution against real PostgreSQL
type OIDs rather than a hand-maintained string table. No connection is ever
opened — jackc/pgx/v5/pgtype ships the same OID-to-type registry a live
driver would use, and that registry is all this package borrows.
*/
package pgtypes

import (
	"sort"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/cybertec-postgresql/oraql/pkg/types"
)

// OID returns the PostgreSQL type OID backing the public three-way
// ColumnType enum from pkg/types.
func OID(ct types.ColumnType) (uint32, bool) {
	switch ct {
	case types.ColumnInteger:
		return pgtype.Int4OID, true
	case types.ColumnText:
		return pgtype.TextOID, true
	case types.ColumnDate:
		return pgtype.DateOID, true
	}
	return 0, false
}

// Name returns the PostgreSQL type name pgtype's registry assigns to ct's
// OID.
func Name(ct types.ColumnType) (string, bool) {
	oid, ok := OID(ct)
	if !ok {
		return "", false
	}
	t, ok := pgtype.NewMap().TypeForOID(oid)
	if !ok {
		return "", false
	}
	return t.Name, true
}

// ResolveColumn resolves a dotted column path — ["table", "column"], as
// extracted from a %TYPE reference by ast.DatatypeColumnPath — against ctx
// and returns the PostgreSQL type name for that column's declared type.
func ResolveColumn(ctx types.Context, path []string) (string, bool) {
	if len(path) != 2 {
		return "", false
	}
	table, ok := ctx.Tables[path[0]]
	if !ok {
		return "", false
	}
	col, ok := table.Columns[path[1]]
	if !ok {
		return "", false
	}
	return Name(col.Type)
}

// ColumnResolution is one column of a resolved %ROWTYPE reference.
type ColumnResolution struct {
	Column string
	PgType string
}

// ResolveRowType resolves a %ROWTYPE reference (a single table name) to the
// PostgreSQL type of every column the context describes for that table, in
// a stable column-name order — map iteration order is not stable, and
// identical inputs must produce byte-identical output.
func ResolveRowType(ctx types.Context, tableName string) ([]ColumnResolution, bool) {
	table, ok := ctx.Tables[tableName]
	if !ok {
		return nil, false
	}
	out := make([]ColumnResolution, 0, len(table.Columns))
	for name, col := range table.Columns {
		pgName, ok := Name(col.Type)
		if !ok {
			continue
		}
		out = append(out, ColumnResolution{Column: name, PgType: pgName})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Column < out[j].Column })
	return out, true
}
