// Package csvn implements an allocation-free tokenizer for delimiter-separated text.
//
// The scanner walks a byte buffer once and reports where each field starts and
// ends, which line it began on, and whether it was quoted, unquoted or empty.
// Field bytes are never copied or decoded: a Token is a span into the caller's
// buffer, and unescaping doubled quotes, trimming or type conversion are left
// to the caller.
//
// # Two-pass usage
//
// Parse writes tokens into a fixed slice supplied by the caller and never grows
// it. When the number of fields is unknown, run Parse once in counting mode
// (nil or empty token slice), size a slice from the result, then run it again:
//
//	var pos csvn.Position
//	n, err := csvn.Parse(data, len(data), &pos, nil, csvn.DefaultOptions())
//	if err != nil {
//	    // handle error
//	}
//	tokens := make([]csvn.Token, n)
//	pos.Reset()
//	if _, err := csvn.Parse(data, len(data), &pos, tokens, csvn.DefaultOptions()); err != nil {
//	    // handle error
//	}
//	for _, tok := range tokens {
//	    fmt.Printf("%s line %d: %q\n", tok.Kind, tok.Line, tok.Bytes(data))
//	}
//
// Tokenize wraps both passes and draws the token slice from a pool.
//
// # Thread Safety
//
// Parse keeps no package state. Concurrent parses are safe as long as each one
// uses its own Position and token slice; the input buffer is only read and may
// be shared.
package csvn

// Structural bytes recognised by the scanner.
//
// The delimiter is fixed at build time. Changing it to another single byte such
// as '\t' or ';' is enough to scan other separated formats.
const (
	Delimiter byte = ','
	Newline   byte = '\n'
	Quote     byte = '"'
)

// Count reports how many fields buf holds without producing tokens.
func Count(buf []byte, opts Options) (int, error) {
	var pos Position
	return Parse(buf, len(buf), &pos, nil, opts)
}
