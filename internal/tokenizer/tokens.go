// Package tokenizer provides a character-level structural lexer built on
// Shape's tokenizer framework.
//
// It splits input into the structural bytes the csvn scanner reacts to and the
// content runs between them. The scanner itself never uses it; it exists for
// diagnostics (cmd/csvn -lex) and as an independent reference in tests.
package tokenizer

// Token kinds emitted by the structural lexer.
const (
	// Structural tokens
	TokenDelimiter = "Delimiter" // csvn.Delimiter
	TokenQuote     = "Quote"     // csvn.Quote
	TokenNewline   = "Newline"   // csvn.Newline
	TokenSpace     = "Space"     // run of ' ' (skipped after a delimiter with SkipSpace)

	// Content token
	TokenContent = "Content" // run of non-structural bytes
)
