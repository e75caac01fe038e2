/*
Package pgvalidate is the opt-in sanity check exposed as ValidatePostgres
at the module root: run already-transpiled text through PostgreSQL's own
grammar via pg_query_go to confirm it parses. It does not check which
kind of statement the text holds. Nothing in Analyze or ApplyRule
calls this package; it exists purely for a caller that has already applied
every rule it cares about and wants a real-grammar check before shipping.
*/
package pgvalidate

import (
	"fmt"

	pgquery "github.com/pganalyze/pg_query_go/v6"
)

// Validate parses text with PostgreSQL's real grammar and returns a single
// error if the text fails to parse (reporting the first syntax error) or
// contains no statement at all. A nil/empty result means every
// top-level statement in text is valid PostgreSQL syntax; it says nothing
// about semantic correctness (unknown tables, type mismatches, and the
// like are out of scope for a syntax-only check).
func Validate(text string) []error {
	result, err := pgquery.Parse(text)
	if err != nil {
		return []error{fmt.Errorf("postgres syntax: %w", err)}
	}
	if len(result.GetStmts()) == 0 {
		return []error{fmt.Errorf("postgres syntax: no statements parsed")}
	}
	return nil
}
