package csvn

// scanner holds the inputs of a single Parse call. It lives on the stack of
// Parse; all state that survives the call is in pos.
type scanner struct {
	buf    []byte // input, already cut to the length limit
	pos    *Position
	tokens []Token // nil or empty in counting mode
	opts   Options
}

// at returns the byte at i, or 0 past the end so that the length limit and a
// NUL terminator end a scan the same way.
func (s *scanner) at(i int) byte {
	if i < 0 || i >= len(s.buf) {
		return 0
	}
	return s.buf[i]
}

// counting reports whether tokens are being produced.
func (s *scanner) counting() bool {
	return len(s.tokens) == 0
}

// emit allocates and fills one token. In counting mode it does nothing.
func (s *scanner) emit(start, end, line int, kind Kind) error {
	if s.counting() {
		return nil
	}
	tok, err := allocToken(s.pos, s.tokens)
	if err != nil {
		return s.fail(s.pos.Offset, s.pos.Line, err)
	}
	tok.fill(start, end, line, kind)
	return nil
}

// fail wraps err with the position of the offending byte.
func (s *scanner) fail(offset, startLine int, err error) error {
	return &ParseError{
		Offset:    offset,
		StartLine: startLine,
		Line:      s.pos.Line,
		Column:    column(s.buf, offset),
		Err:       err,
	}
}

// scanQuoted consumes a quoted field. On entry pos.Offset is just past the
// opening quote; on return it is on the closing quote, or at the end of input
// for an unterminated field.
//
// A doubled quote is content and is left in the span as two bytes. Newlines
// are content too but still advance pos.Line.
func (s *scanner) scanQuoted() (terminated bool, err error) {
	start := s.pos.Offset
	startLine := s.pos.Line
	line := startLine

	for s.pos.Offset < len(s.buf) {
		c := s.buf[s.pos.Offset]
		if c == 0 {
			break
		}
		if c == Quote {
			if s.at(s.pos.Offset+1) == Quote {
				s.pos.Offset += 2
				continue
			}
			terminated = true
			break
		}
		if c == Newline {
			s.pos.Line++
			if s.opts.QuotedLineAtEnd {
				line++
			}
		}
		s.pos.Offset++
	}

	if !terminated && s.opts.RejectUnterminatedQuote {
		return false, s.fail(start-1, startLine, ErrUnterminatedQuote)
	}

	if err := s.emit(start, s.pos.Offset-1, line, QuotedField); err != nil {
		return terminated, err
	}
	return terminated, nil
}

// scanUnquoted consumes an unquoted field that starts at pos.Offset. It stops
// at a delimiter, a newline or the end of input and leaves pos.Offset on the
// last byte of the field, so the dispatch loop handles the byte that ended it.
func (s *scanner) scanUnquoted() error {
	start := s.pos.Offset
	line := s.pos.Line

	i := start
	for i < len(s.buf) {
		c := s.buf[i]
		if endsField(c) {
			break
		}
		if c == Quote && s.opts.Strict {
			s.pos.Offset = i
			return s.fail(i, line, ErrInvalidCharacter)
		}
		i++
	}

	s.pos.Offset = i - 1
	return s.emit(start, i-1, line, TextField)
}
