package csvn

// Parse scans buf[:n] starting at pos and returns the number of fields found.
//
// Tokens are written to tokens starting at pos.Next. With a nil or empty
// tokens slice Parse runs in counting mode: it returns the same count and
// errors but writes nothing and leaves pos.Next alone.
//
// Scanning stops at n, at the end of buf, or at the first NUL byte, whichever
// comes first. n is clamped to [0, len(buf)].
//
// On failure Parse returns 0 and a *ParseError wrapping ErrOutOfTokenCapacity,
// ErrInvalidCharacter or ErrUnterminatedQuote. For ErrInvalidCharacter
// pos.Offset is the index of the offending byte. Tokens written before the
// failure stay in place, but the parse cannot be resumed; reset pos and start
// again.
func Parse(buf []byte, n int, pos *Position, tokens []Token, opts Options) (int, error) {
	if n < 0 {
		n = 0
	}
	if n > len(buf) {
		n = len(buf)
	}
	if pos.Line == 0 {
		pos.Line = 1
	}

	s := scanner{
		buf:    buf[:n],
		pos:    pos,
		tokens: tokens,
		opts:   opts,
	}

	parsed, err := s.run()
	if err != nil {
		return 0, err
	}
	return parsed, nil
}

// run is the dispatch loop. It branches on the byte under the cursor and
// hands field content to the field scanners.
func (s *scanner) run() (int, error) {
	parsed := 0

	for s.pos.Offset < len(s.buf) {
		switch charClassTable[s.buf[s.pos.Offset]] {
		case classEnd:
			return parsed, nil

		case classNewline:
			s.pos.Line++
			s.pos.Offset++

		case classDelim:
			emitted, err := s.delimiter()
			if err != nil {
				return parsed, err
			}
			if emitted {
				parsed++
			}

		case classQuote:
			if err := s.quoted(); err != nil {
				return parsed, err
			}
			parsed++

		default:
			if err := s.scanUnquoted(); err != nil {
				return parsed, err
			}
			s.pos.Offset++
			parsed++
		}
	}

	return parsed, nil
}

// delimiter consumes a delimiter and, when the next byte is another
// delimiter, applies the empty field policy. It reports whether an empty field
// was counted. pos.Offset is left on the second delimiter so the loop sees it.
func (s *scanner) delimiter() (bool, error) {
	s.pos.Offset++

	if s.opts.SkipSpace {
		for s.at(s.pos.Offset) == ' ' {
			s.pos.Offset++
		}
	}

	if s.pos.Offset >= len(s.buf) || s.buf[s.pos.Offset] != Delimiter {
		return false, nil
	}

	switch s.opts.EmptyFields {
	case EmptyReject:
		return false, s.fail(s.pos.Offset, s.pos.Line, ErrInvalidCharacter)
	case EmptySkip:
		return false, nil
	}

	if err := s.emit(s.pos.Offset-1, s.pos.Offset, s.pos.Line, EmptyField); err != nil {
		return false, err
	}
	return true, nil
}

// quoted handles a field that opens with a quote at pos.Offset. It leaves
// pos.Offset just past the closing quote.
func (s *scanner) quoted() error {
	s.pos.Offset++ // opening quote

	terminated, err := s.scanQuoted()
	if err != nil {
		return err
	}
	if !terminated {
		return nil
	}

	s.pos.Offset++ // closing quote

	if s.opts.Strict && !endsField(s.at(s.pos.Offset)) {
		return s.fail(s.pos.Offset, s.pos.Line, ErrInvalidCharacter)
	}
	return nil
}
