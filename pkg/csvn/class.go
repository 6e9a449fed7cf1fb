package csvn

// charClass groups bytes by their meaning to the grammar.
type charClass uint8

const (
	classOther   charClass = iota // field content
	classDelim                    // Delimiter
	classNewline                  // Newline
	classQuote                    // Quote
	classEnd                      // NUL terminator
)

// charClassTable maps every byte to its class so the scan loops branch on a
// single lookup.
var charClassTable [256]charClass

func init() {
	charClassTable[Delimiter] = classDelim
	charClassTable[Newline] = classNewline
	charClassTable[Quote] = classQuote
	charClassTable[0] = classEnd
}

// endsField reports whether c terminates an unquoted field.
func endsField(c byte) bool {
	switch charClassTable[c] {
	case classDelim, classNewline, classEnd:
		return true
	}
	return false
}
