package csvn

// Position is the cursor threaded through a parse.
//
// It is owned by the caller and passed by reference into every Parse call.
// Offset and Next only move forward until Reset is called. The zero value is
// ready to use: a Line of 0 is treated as line 1.
type Position struct {
	// Offset is the index of the next byte to examine.
	Offset int
	// Next is the index of the next free slot in the token slice.
	Next int
	// Line is the current 1-based line number.
	Line int
}

// NewPosition returns a Position at the start of a buffer.
func NewPosition() Position {
	return Position{Line: 1}
}

// Reset rewinds p to the start of a buffer. Call it before parsing a new
// buffer or before the token pass that follows a counting pass.
func (p *Position) Reset() {
	p.Offset = 0
	p.Next = 0
	p.Line = 1
}
