package csvn

// allocToken hands out the next free slot of tokens, reset to its zero value
// with Kind Unassigned, and advances pos.Next. It only touches pos.Next.
func allocToken(pos *Position, tokens []Token) (*Token, error) {
	if pos.Next < 0 || pos.Next >= len(tokens) {
		return nil, ErrOutOfTokenCapacity
	}
	tok := &tokens[pos.Next]
	pos.Next++
	*tok = Token{}
	return tok, nil
}
