package csvn

import "fmt"

// EmptyFieldPolicy decides what happens to an empty field between two
// adjacent delimiters.
type EmptyFieldPolicy uint8

const (
	// EmptyEmit produces an EmptyField token and counts it (default).
	EmptyEmit EmptyFieldPolicy = iota
	// EmptySkip drops the empty field silently.
	EmptySkip
	// EmptyReject fails with ErrInvalidCharacter at the second delimiter.
	EmptyReject
)

// String returns the string representation of EmptyFieldPolicy.
func (p EmptyFieldPolicy) String() string {
	switch p {
	case EmptyEmit:
		return "emit"
	case EmptySkip:
		return "skip"
	case EmptyReject:
		return "reject"
	default:
		return fmt.Sprintf("EmptyFieldPolicy(%d)", p)
	}
}

// ParseEmptyFieldPolicy parses the names returned by EmptyFieldPolicy.String.
func ParseEmptyFieldPolicy(s string) (EmptyFieldPolicy, error) {
	switch s {
	case "emit", "":
		return EmptyEmit, nil
	case "skip":
		return EmptySkip, nil
	case "reject":
		return EmptyReject, nil
	default:
		return EmptyEmit, fmt.Errorf("csvn: unknown empty field policy %q", s)
	}
}

// Options configures scanner behavior. The zero value is the default.
type Options struct {
	// Strict rejects a quote inside an unquoted field and requires a closing
	// quote to be followed by a delimiter, a newline or the end of input.
	// Default: false (quotes in unquoted fields are content)
	Strict bool

	// SkipSpace skips a run of ' ' directly after a delimiter.
	// Default: false
	SkipSpace bool

	// EmptyFields selects how adjacent delimiters are handled.
	// Default: EmptyEmit
	EmptyFields EmptyFieldPolicy

	// QuotedLineAtEnd makes a quoted field report the line its closing quote
	// is on instead of the line it started on.
	// Default: false
	QuotedLineAtEnd bool

	// RejectUnterminatedQuote fails with ErrUnterminatedQuote when a quoted
	// field runs to the end of input. Otherwise the field ends there.
	// Default: false
	RejectUnterminatedQuote bool
}

// DefaultOptions returns the default scanner configuration.
func DefaultOptions() Options {
	return Options{
		Strict:                  false,
		SkipSpace:               false,
		EmptyFields:             EmptyEmit,
		QuotedLineAtEnd:         false,
		RejectUnterminatedQuote: false,
	}
}

// StrictOptions returns the default configuration with Strict enabled.
func StrictOptions() Options {
	opts := DefaultOptions()
	opts.Strict = true
	return opts
}
