package csvn

import "sync"

// tokenPool is a sync.Pool for the token slices handed out by Tokenize.
var tokenPool = sync.Pool{
	New: func() interface{} {
		s := make([]Token, 0, 64)
		return &s
	},
}

// maxPooledTokens caps the slices kept in the pool so one huge input does not
// pin its token slice for the life of the process.
const maxPooledTokens = 1 << 16

// getTokens returns a slice of length n from the pool, growing it if needed.
func getTokens(n int) []Token {
	p := tokenPool.Get().(*[]Token)
	tokens := *p
	if cap(tokens) < n {
		tokens = make([]Token, n)
	}
	return tokens[:n]
}

// putTokens returns a slice to the pool.
func putTokens(tokens []Token) {
	if tokens == nil || cap(tokens) > maxPooledTokens {
		return
	}
	tokens = tokens[:0]
	tokenPool.Put(&tokens)
}
