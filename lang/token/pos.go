package token

import (
	goscanner "go/scanner"
	gotoken "go/token"
)

// Error and ErrorList are reused from the standard library's go/scanner
// package: a Position+Msg diagnostic and a sortable, deduplicating list of
// them that implements error. Every stage of the
// pipeline (scanner, parser, resolver) accumulates into one of these lists
// instead of writing diagnostics directly to an output stream; only the CLI
// layer formats and writes them.
type (
	Error     = goscanner.Error
	ErrorList = goscanner.ErrorList

	// Position identifies a diagnostic's source location. Lox only tracks a
	// 1-based line number (per the token model, §3), so only Line (and
	// optionally Filename) is ever populated.
	Position = gotoken.Position
)

// PrintError writes err to w, one diagnostic per line, exactly as
// go/scanner.PrintError does: if err is an ErrorList each contained error is
// printed on its own line, otherwise err is printed as-is.
var PrintError = goscanner.PrintError

// NewErrorList returns an empty ErrorList ready to accumulate diagnostics.
func NewErrorList() *ErrorList {
	return &ErrorList{}
}
