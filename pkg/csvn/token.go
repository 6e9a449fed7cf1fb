package csvn

import "fmt"

// Kind classifies a parsed field.
type Kind uint8

const (
	// Unassigned marks a slot that has been allocated but not filled.
	// It is never visible after a successful Parse.
	Unassigned Kind = iota
	// QuotedField is a field enclosed in quotes. The span excludes the quotes.
	QuotedField
	// TextField is an unquoted field.
	TextField
	// EmptyField is the empty field between two adjacent delimiters.
	EmptyField
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case Unassigned:
		return "unassigned"
	case QuotedField:
		return "quoted"
	case TextField:
		return "text"
	case EmptyField:
		return "empty"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Token describes one field as a span of the parsed buffer.
//
// Start and End are inclusive byte offsets. For a quoted field they cover the
// bytes between the quotes, with doubled quotes left as they are in the buffer.
// An EmptyField spans the two delimiters that enclose it.
type Token struct {
	Start int
	End   int
	// Line is the line the field began on.
	Line int
	Kind Kind
}

// Size returns End - Start. It is 0 for an EmptyField and never negative.
func (t Token) Size() int {
	if t.Kind == EmptyField || t.End < t.Start {
		return 0
	}
	return t.End - t.Start
}

// Len returns the number of field bytes covered by the span.
func (t Token) Len() int {
	switch t.Kind {
	case QuotedField, TextField:
		if t.End < t.Start {
			return 0
		}
		return t.End - t.Start + 1
	default:
		return 0
	}
}

// Bytes returns the raw field bytes from buf, the buffer the token was parsed
// from. The result aliases buf. Nil is returned if the span does not fit buf.
func (t Token) Bytes(buf []byte) []byte {
	n := t.Len()
	if t.Start < 0 || t.Start+n > len(buf) {
		return nil
	}
	return buf[t.Start : t.Start+n : t.Start+n]
}

// fill stamps a freshly allocated token.
func (t *Token) fill(start, end, line int, kind Kind) {
	t.Start = start
	t.End = end
	t.Line = line
	t.Kind = kind
}
