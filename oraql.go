/*
Package oraql is the module root: two pure operations, Analyze and
ApplyRule, implemented over the internal pipeline (lex → parse → CST →
typed overlay → analyze → rules) and the public types in pkg/types. Every
other package in this module is implementation detail reachable only
through Analyze, ApplyRule and the additive ValidatePostgres boundary
helper.
*/
package oraql

import (
	"github.com/cybertec-postgresql/oraql/internal/analyzer"
	oraqlerrors "github.com/cybertec-postgresql/oraql/internal/errors"
	"github.com/cybertec-postgresql/oraql/internal/parser"
	"github.com/cybertec-postgresql/oraql/internal/pgvalidate"
	"github.com/cybertec-postgresql/oraql/internal/rules"
	"github.com/cybertec-postgresql/oraql/internal/syntax"
	"github.com/cybertec-postgresql/oraql/pkg/types"
)

// Re-exported error types, aliased at the root so callers outside this
// module can type-switch on them without importing an internal path.
type (
	InvalidKindError      = oraqlerrors.InvalidKindError
	InvalidContextError   = oraqlerrors.InvalidContextError
	UnknownRuleError      = oraqlerrors.UnknownRuleError
	NoSuchMatchError      = oraqlerrors.NoSuchMatchError
	LocationNotFoundError = oraqlerrors.LocationNotFoundError
	RuleNonProgressError  = oraqlerrors.RuleNonProgressError
	InternalError         = oraqlerrors.InternalError
)

func parseKind(kind string) (parser.Kind, error) {
	switch kind {
	case "function":
		return parser.KindFunction, nil
	case "procedure":
		return parser.KindProcedure, nil
	case "trigger":
		return parser.KindTrigger, nil
	case "view":
		return parser.KindView, nil
	case "query":
		return parser.KindQuery, nil
	default:
		return 0, oraqlerrors.NewInvalidKindError(kind)
	}
}

func validateContext(ctx types.Context) error {
	for tableName, table := range ctx.Tables {
		for colName, col := range table.Columns {
			switch col.Type {
			case types.ColumnInteger, types.ColumnText, types.ColumnDate:
			default:
				return oraqlerrors.NewInvalidContextError(
					"table " + tableName + " column " + colName + " has unknown type " + string(col.Type))
			}
		}
	}
	return nil
}

// Analyze parses text as the given object kind and returns its metadata,
// including every registered rule's hits against it.
func Analyze(kind string, text string, ctx types.Context) (types.Metadata, error) {
	k, err := parseKind(kind)
	if err != nil {
		return types.Metadata{}, err
	}
	if err := validateContext(ctx); err != nil {
		return types.Metadata{}, err
	}
	tree := parser.Parse(k, text)
	return analyzer.Analyze(k, tree, text, ctx), nil
}

// ApplyRule applies ruleName to text at the given location (or, if loc is
// nil, at the first match the rule reports, which is the first in source
// order except for CYAR-0006, whose innermost nested NVL call comes first)
// and returns the rewritten text plus the exact location that was edited.
func ApplyRule(kind string, text string, ruleName string, loc *types.TextRange, ctx types.Context) (types.EditResult, error) {
	k, err := parseKind(kind)
	if err != nil {
		return types.EditResult{}, err
	}
	if err := validateContext(ctx); err != nil {
		return types.EditResult{}, err
	}
	rule, ok := rules.Lookup(ruleName)
	if !ok {
		return types.EditResult{}, oraqlerrors.NewUnknownRuleError(ruleName)
	}

	tree := parser.Parse(k, text)
	matches := rule.Matches(tree, text)
	if len(matches) == 0 {
		return types.EditResult{}, oraqlerrors.NewNoSuchMatchError(ruleName)
	}

	match := matches[0]
	if loc != nil {
		found := false
		for _, m := range matches {
			if m.Location == *loc {
				match = m
				found = true
				break
			}
		}
		if !found {
			return types.EditResult{}, oraqlerrors.NewLocationNotFoundError(ruleName)
		}
	}

	before := countMatches(rule, tree, text)
	edited := rules.Substitute(text, match)

	after := countMatches(rule, parser.Parse(k, edited), edited)
	if after >= before {
		return types.EditResult{}, oraqlerrors.NewRuleNonProgressError(ruleName)
	}

	return types.EditResult{EditedText: edited, Location: match.Location}, nil
}

func countMatches(rule *rules.Rule, tree *syntax.Tree, src string) int {
	return len(rule.Matches(tree, src))
}

// ValidatePostgres runs the transpiled text's CREATE FUNCTION/PROCEDURE
// header and body through PostgreSQL's real grammar and reports syntax
// errors. It is never called by Analyze or ApplyRule; it is a separate,
// explicitly opt-in boundary helper for callers that have already applied
// every rule they intend to and want a sanity check before shipping the
// result.
func ValidatePostgres(text string) []error {
	return pgvalidate.Validate(text)
}
