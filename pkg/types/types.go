// Package types holds the data shapes shared across package boundaries:
// the inputs and outputs of Analyze and ApplyRule, independent of how the
// core builds or walks its syntax tree.
package types

// ColumnType is the declared type of a table column supplied via Context,
// used to resolve %TYPE references in parameter lists.
type ColumnType string

const (
	ColumnInteger ColumnType = "integer"
	ColumnText    ColumnType = "text"
	ColumnDate    ColumnType = "date"
)

// Column describes one column of a table named in a Context.
type Column struct {
	Type ColumnType `json:"type"`
}

// Table describes one table named in a Context.
type Table struct {
	Columns map[string]Column `json:"columns"`
}

// Context supplies the table/column metadata used to resolve %TYPE and
// %ROWTYPE references. An empty Context is valid; unresolved references
// are simply left unresolved.
type Context struct {
	Tables map[string]Table `json:"tables"`
}

// Position is a 1-based line and byte-counted column.
type Position struct {
	Line int `json:"line"`
	Col  int `json:"col"`
}

// Offset is a half-open byte range [Start, End) into the source text.
type Offset struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// TextRange locates a span of source text both by byte offset and by the
// (line, col) pair that offset maps to.
type TextRange struct {
	Offset Offset   `json:"offset"`
	Start  Position `json:"start"`
	End    Position `json:"end"`
}

// NewTextRange builds a TextRange for the half-open byte span [start, end)
// of src, computing both ends' (line, col) by a byte-by-byte walk. col
// counts bytes since the last newline, 1-based; line is 1-based. offset
// and (line,col) are therefore always consistent by construction.
func NewTextRange(src string, start, end int) TextRange {
	return TextRange{
		Offset: Offset{Start: start, End: end},
		Start:  positionAt(src, start),
		End:    positionAt(src, end),
	}
}

func positionAt(src string, offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(src) {
		offset = len(src)
	}
	line, col := 1, 1
	for i := 0; i < offset; i++ {
		if src[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return Position{Line: line, Col: col}
}

// RuleHit is one match of a migration rule at a specific TextRange.
type RuleHit struct {
	Name      string      `json:"name"`
	Locations []TextRange `json:"locations"`
	ShortDesc string      `json:"short_desc"`
}

// ObjectMetadata is the kind-specific subset of a Metadata record for a
// function, procedure, or trigger.
type ObjectMetadata struct {
	Name        string `json:"name"`
	LinesOfCode int    `json:"linesOfCode"`

	// Supplemental facts beyond name/LOC.
	CursorCount            int               `json:"cursorCount"`
	DMLStatementCount      int               `json:"dmlStatementCount"`
	ResolvedParameterTypes map[string]string `json:"resolvedParameterTypes,omitempty"`
}

// ViewMetadata is the kind-specific subset of a Metadata record for a view.
type ViewMetadata struct {
	Name       string `json:"name"`
	OuterJoins int    `json:"outerJoins"`
}

// QueryMetadata is the kind-specific subset of a Metadata record for a
// bare query: outer-join counting is the only fact a standalone query
// carries, since it has no name or independently meaningful body length.
type QueryMetadata struct {
	OuterJoins int `json:"outerJoins"`
}

// Metadata is the result of Analyze. Exactly one of Function, Procedure,
// Trigger, View, or Query is populated, matching the requested kind.
type Metadata struct {
	Function  *ObjectMetadata `json:"function,omitempty"`
	Procedure *ObjectMetadata `json:"procedure,omitempty"`
	Trigger   *ObjectMetadata `json:"trigger,omitempty"`
	View      *ViewMetadata   `json:"view,omitempty"`
	Query     *QueryMetadata  `json:"query,omitempty"`
	Rules     []RuleHit       `json:"rules"`
}

// EditResult is the result of ApplyRule.
type EditResult struct {
	EditedText string    `json:"editedText"`
	Location   TextRange `json:"location"`
}
