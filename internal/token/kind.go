// Package token is the single declarative source of truth for every
// lexical and syntactic kind the rest of the module speaks of: the lexer
// emits token kinds from this package, the tree builder tags nodes with
// them, and the typed AST overlay filters children by them. Adding a new
// construct to the language is, as far as this package is concerned, a
// single-location change: add one constant and, if it is a keyword, one
// entry in the keywords table.
package token

import (
	"strconv"
	"strings"
)

// SyntaxKind is used for both terminals (tokens) and non-terminals (tree
// nodes); the tree represents both uniformly, so callers walking the tree
// never need to special-case "is this a token or a node" — they ask a node
// for its Kind and compare against this one enumeration.
type SyntaxKind int

const (
	// EOF marks the end of input. It is never attached to the tree.
	EOF SyntaxKind = iota

	// --- trivia -------------------------------------------------------
	Whitespace
	LineComment
	BlockComment

	// --- lexer failure kinds (never abort; see internal/errors for the
	// boundary taxonomy, which is unrelated to these) ------------------
	Unknown
	UnterminatedString

	// --- literals and identifiers --------------------------------------
	Ident          // unquoted identifier or keyword spelling used as a name
	QuotedIdent    // "quoted identifier"
	IntLiteral     // 123
	FloatLiteral   // 1.5, 1e10
	StringLiteral  // 'text', including doubled-quote escapes
	BindIdent      // :NEW, :OLD, :name bind variables (colon plus identifier only)

	// --- punctuation ----------------------------------------------------
	LParen    // (
	RParen    // )
	LBracket  // [
	RBracket  // ]
	Comma     // ,
	Semicolon // ;
	Dot       // .
	Slash     // / (statement terminator in SQL*Plus scripts, also division)
	At        // @

	// --- operators --------------------------------------------------------
	Plus     // +
	Minus    // -
	Star     // *
	Eq       // =
	NotEq    // != or <>
	Lt       // <
	Gt       // >
	LtEq     // <=
	GtEq     // >=
	Assign   // :=
	Concat   // ||
	DotDot   // ..
	Arrow    // =>
	Colon    // :
	Percent  // %

	// --- Oracle-specific multi-character tokens --------------------------
	OuterJoinMarker // (+)
	TypeAttr        // %TYPE
	RowTypeAttr     // %ROWTYPE

	// --- the error catch-all ------------------------------------------
	ErrorTok // reserved; tokens skipped into an ERROR node keep their own kinds

	firstKeyword
)

// Keyword constants. Every spelling in the keywords table below maps to one
// of these. The split between "reserved" and everything else mirrors how
// Oracle itself treats PL/SQL keywords, but this module does not enforce
// reservation — a keyword found where an identifier is expected is simply
// treated as the identifier's spelling by the parser's callers.
const (
	KCreate SyntaxKind = firstKeyword + iota
	KOr
	KReplace
	KEditionable
	KNoneditionable
	KFunction
	KProcedure
	KTrigger
	KView
	KReturn
	KReturning
	KIs
	KAs
	KBegin
	KEnd
	KDeclare
	KException
	KWhen
	KThen
	KElse
	KElsif
	KIf
	KLoop
	KWhile
	KFor
	KIn
	KOut
	KNoCopy
	KDefault
	KNull
	KNotNull
	KNot
	KAnd
	KBetween
	KLike
	KExists
	KSelect
	KInto
	KFrom
	KWhere
	KInsert
	KUpdate
	KDelete
	KValues
	KSet
	KOrderBy
	KGroupBy
	KHaving
	KUnion
	KAll
	KDistinct
	KCursor
	KOpen
	KClose
	KFetch
	KSysdate
	KNvl
	KCoalesce
	KNew
	KOld
	KBefore
	KAfter
	KInsteadOf
	KOn
	KEachRow
	KRaise
	KCommit
	KRollback
	KConstant
	KType
	KRowType
	KTable
	KPackage
	KBody
	KLanguage
	KPlpgsql
	KJoin
	KLeft
	KRight
	KOuter
	KInner
)

// lastKeyword marks the end of the keyword block for IsKeyword.
const lastKeyword = KInner

// IsKeyword reports whether k is an Oracle PL/SQL keyword.
func (k SyntaxKind) IsKeyword() bool { return k >= firstKeyword && k <= lastKeyword }

// IsTrivia reports whether k is whitespace or a comment.
func (k SyntaxKind) IsTrivia() bool {
	switch k {
	case Whitespace, LineComment, BlockComment:
		return true
	}
	return false
}

// IsLiteral reports whether k is a literal token kind.
func (k SyntaxKind) IsLiteral() bool {
	switch k {
	case IntLiteral, FloatLiteral, StringLiteral:
		return true
	}
	return false
}

/*
keywords maps the lowercase canonical spelling of every recognized Oracle
PL/SQL keyword to its SyntaxKind. Lookup is case-insensitive:
LookupKeyword calls strings.ToLower before probing this map, the same discipline the
PL/pgSQL scanner this module descends from uses for its own keyword table.
*/
var keywords = map[string]SyntaxKind{
	"create": KCreate, "or": KOr, "replace": KReplace,
	"editionable": KEditionable, "noneditionable": KNoneditionable,
	"function": KFunction, "procedure": KProcedure, "trigger": KTrigger,
	"view": KView, "return": KReturn, "returning": KReturning,
	"is": KIs, "as": KAs, "begin": KBegin, "end": KEnd,
	"declare": KDeclare, "exception": KException, "when": KWhen,
	"then": KThen, "else": KElse, "elsif": KElsif, "if": KIf,
	"loop": KLoop, "while": KWhile, "for": KFor, "in": KIn, "out": KOut,
	"nocopy": KNoCopy, "default": KDefault, "null": KNull, "not": KNot,
	"and": KAnd, "between": KBetween, "like": KLike, "exists": KExists,
	"select": KSelect, "into": KInto, "from": KFrom, "where": KWhere,
	"insert": KInsert, "update": KUpdate, "delete": KDelete,
	"values": KValues, "set": KSet,
	"order": KOrderBy, "group": KGroupBy, "having": KHaving,
	"union": KUnion, "all": KAll, "distinct": KDistinct,
	"cursor": KCursor, "open": KOpen, "close": KClose, "fetch": KFetch,
	"sysdate": KSysdate, "nvl": KNvl, "coalesce": KCoalesce,
	"before": KBefore, "after": KAfter, "instead": KInsteadOf, "on": KOn, "row": KEachRow,
	"raise": KRaise, "commit": KCommit, "rollback": KRollback,
	"constant": KConstant, "type": KType, "rowtype": KRowType,
	"table": KTable, "package": KPackage, "body": KBody,
	"language": KLanguage, "plpgsql": KPlpgsql,
	"join": KJoin, "left": KLeft, "right": KRight, "outer": KOuter,
	"inner": KInner,
}

// LookupKeyword returns the SyntaxKind for spelling (case-insensitive) and
// reports whether it is a recognized keyword.
func LookupKeyword(spelling string) (SyntaxKind, bool) {
	k, ok := keywords[strings.ToLower(spelling)]
	return k, ok
}

// --- non-terminal (tree node) kinds -------------------------------------

const (
	Root SyntaxKind = lastKeyword + 1 + iota

	Procedure
	ProcedureHeader
	Function
	FunctionHeader
	Trigger
	TriggerHeader
	TriggerBody
	View
	ParamList
	Param
	ParamMode
	Datatype
	Block
	VarDecl
	CursorDecl
	ExceptionSection
	ExceptionHandler

	IfStmt
	LoopStmt
	NullStmt
	ReturnStmt
	AssignStmt
	ProcedureCall
	RaiseStmt
	OpenStmt
	CloseStmt
	FetchStmt
	CommitStmt
	RollbackStmt
	NestedBlock

	SelectStmt
	SelectIntoStmt
	InsertStmt
	UpdateStmt
	DeleteStmt
	FromClause
	WhereClause
	SetClause
	ValuesClause
	ColumnList

	Expression
	OuterJoinOp
	FunctionInvocation
	ArgList
	QualifiedIdentifier
	Literal
	BindExpr

	Query

	ErrorNode
)

// String renders a human-readable name for diagnostics and tests. Only the
// kinds that show up in error messages and test fixtures are named
// individually; everything else falls back to a numeric form.
func (k SyntaxKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "SyntaxKind(" + strconv.Itoa(int(k)) + ")"
}

var kindNames = map[SyntaxKind]string{
	EOF: "EOF", Whitespace: "Whitespace", LineComment: "LineComment",
	BlockComment: "BlockComment", Unknown: "Unknown",
	UnterminatedString: "UnterminatedString", Ident: "Ident",
	QuotedIdent: "QuotedIdent", IntLiteral: "IntLiteral",
	FloatLiteral: "FloatLiteral", StringLiteral: "StringLiteral",
	BindIdent: "BindIdent", LParen: "LParen", RParen: "RParen",
	LBracket: "LBracket", RBracket: "RBracket", Comma: "Comma",
	Semicolon: "Semicolon", Dot: "Dot", Slash: "Slash", At: "At",
	Plus: "Plus", Minus: "Minus", Star: "Star", Eq: "Eq",
	NotEq: "NotEq", Lt: "Lt", Gt: "Gt", LtEq: "LtEq", GtEq: "GtEq",
	Assign: "Assign", Concat: "Concat", DotDot: "DotDot", Arrow: "Arrow",
	Colon: "Colon", Percent: "Percent", OuterJoinMarker: "OuterJoinMarker",
	TypeAttr: "TypeAttr", RowTypeAttr: "RowTypeAttr", ErrorTok: "ErrorTok",
	Root: "Root", Procedure: "Procedure", ProcedureHeader: "ProcedureHeader",
	Function: "Function", FunctionHeader: "FunctionHeader",
	Trigger: "Trigger", TriggerHeader: "TriggerHeader",
	TriggerBody: "TriggerBody", View: "View", ParamList: "ParamList",
	Param: "Param", ParamMode: "ParamMode", Datatype: "Datatype",
	Block: "Block", VarDecl: "VarDecl",
	CursorDecl: "CursorDecl", ExceptionSection: "ExceptionSection",
	ExceptionHandler: "ExceptionHandler", IfStmt: "IfStmt",
	LoopStmt: "LoopStmt", NullStmt: "NullStmt", ReturnStmt: "ReturnStmt",
	AssignStmt: "AssignStmt", ProcedureCall: "ProcedureCall",
	RaiseStmt: "RaiseStmt", OpenStmt: "OpenStmt", CloseStmt: "CloseStmt",
	FetchStmt: "FetchStmt", CommitStmt: "CommitStmt",
	RollbackStmt: "RollbackStmt", NestedBlock: "NestedBlock",
	SelectStmt: "SelectStmt", SelectIntoStmt: "SelectIntoStmt",
	InsertStmt: "InsertStmt", UpdateStmt: "UpdateStmt",
	DeleteStmt: "DeleteStmt", FromClause: "FromClause",
	WhereClause: "WhereClause", SetClause: "SetClause",
	ValuesClause: "ValuesClause", ColumnList: "ColumnList",
	Expression: "Expression", OuterJoinOp: "OuterJoinOp",
	FunctionInvocation: "FunctionInvocation", ArgList: "ArgList",
	QualifiedIdentifier: "QualifiedIdentifier",
	Literal: "Literal", BindExpr: "BindExpr", Query: "Query",
	ErrorNode: "ErrorNode",
}
