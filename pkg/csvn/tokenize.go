package csvn

// Tokenize parses all of buf and returns its tokens.
//
// It runs Parse twice: a counting pass to size the token slice and a second
// pass to fill it. The slice comes from an internal pool; pass it to Release
// once the tokens are no longer needed. Not calling Release is safe.
func Tokenize(buf []byte, opts Options) ([]Token, error) {
	n, err := Count(buf, opts)
	if err != nil {
		return nil, err
	}

	tokens := getTokens(n)
	if n == 0 {
		return tokens, nil
	}

	pos := NewPosition()
	if _, err := Parse(buf, len(buf), &pos, tokens, opts); err != nil {
		putTokens(tokens)
		return nil, err
	}
	return tokens[:pos.Next], nil
}

// Release hands a slice returned by Tokenize back to the pool. The slice must
// not be used afterwards.
func Release(tokens []Token) {
	putTokens(tokens)
}
