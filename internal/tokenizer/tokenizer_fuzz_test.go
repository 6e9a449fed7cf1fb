package tokenizer

import (
	"strings"
	"testing"
)

// FuzzLexer checks that lexing never panics and that, up to the first NUL,
// the lexemes reassemble the input.
// Run with: go test -fuzz=FuzzLexer -fuzztime=30s ./internal/tokenizer
func FuzzLexer(f *testing.F) {
	seeds := []string{
		"",
		"a",
		",",
		"\n",
		"\"",
		"\"\"",
		"a,b,c",
		"a,  b",
		"\"with,comma\"",
		"\"with\"\"quote\"",
		"a\nb\nc",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		if strings.ContainsRune(input, 0) || !isASCII(input) {
			t.Skip()
		}
		var sb strings.Builder
		for _, l := range Lex(input) {
			sb.WriteString(l.Value)
		}
		if sb.String() != input {
			t.Fatalf("lexemes reassemble to %q, want %q", sb.String(), input)
		}
	})
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
