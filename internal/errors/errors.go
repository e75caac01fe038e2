// Package errors defines the boundary failure taxonomy: the small set of
// error conditions that abort an Analyze or ApplyRule call outright, as
// opposed to lex/parse/analyze problems, which are represented as data in
// the tree or the metadata and never abort anything.
package errors

import "fmt"

// InvalidKindError is returned when the caller-supplied object kind is not
// one of "function", "procedure", "trigger", "view", "query".
type InvalidKindError struct {
	Kind string
}

func NewInvalidKindError(kind string) *InvalidKindError {
	return &InvalidKindError{Kind: kind}
}

func (e *InvalidKindError) Error() string {
	return fmt.Sprintf("invalid kind %q", e.Kind)
}

// InvalidContextError is returned when the supplied Context cannot be
// interpreted (e.g. an unknown ColumnType value).
type InvalidContextError struct {
	Reason string
}

func NewInvalidContextError(reason string) *InvalidContextError {
	return &InvalidContextError{Reason: reason}
}

func (e *InvalidContextError) Error() string {
	return fmt.Sprintf("invalid context: %s", e.Reason)
}

// UnknownRuleError is returned when ApplyRule is called with a rule name
// that is not in the registry.
type UnknownRuleError struct {
	RuleName string
}

func NewUnknownRuleError(name string) *UnknownRuleError {
	return &UnknownRuleError{RuleName: name}
}

func (e *UnknownRuleError) Error() string {
	return fmt.Sprintf("unknown rule %q", e.RuleName)
}

// NoSuchMatchError is returned when ApplyRule's rule does not match the
// input text at all.
type NoSuchMatchError struct {
	RuleName string
}

func NewNoSuchMatchError(name string) *NoSuchMatchError {
	return &NoSuchMatchError{RuleName: name}
}

func (e *NoSuchMatchError) Error() string {
	return fmt.Sprintf("rule %q has no match in the given text", e.RuleName)
}

// LocationNotFoundError is returned when ApplyRule is given a location that
// is not among the rule's current matches.
type LocationNotFoundError struct {
	RuleName string
}

func NewLocationNotFoundError(name string) *LocationNotFoundError {
	return &LocationNotFoundError{RuleName: name}
}

func (e *LocationNotFoundError) Error() string {
	return fmt.Sprintf("location is not a current match of rule %q", e.RuleName)
}

// RuleNonProgressError is returned when a rule's apply fails to reduce its
// own match count, violating the progress guarantee.
type RuleNonProgressError struct {
	RuleName string
}

func NewRuleNonProgressError(name string) *RuleNonProgressError {
	return &RuleNonProgressError{RuleName: name}
}

func (e *RuleNonProgressError) Error() string {
	return fmt.Sprintf("rule %q made no progress", e.RuleName)
}

// InternalError signals an invariant violation inside the core itself.
// It should never occur; its presence is a test-fail condition.
type InternalError struct {
	Reason string
}

func NewInternalError(reason string) *InternalError {
	return &InternalError{Reason: reason}
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error: %s", e.Reason)
}
