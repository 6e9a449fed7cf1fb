package tokenizer

import (
	"github.com/shapestone/shape-core/pkg/tokenizer"

	"github.com/shapestone/shape-csvn/pkg/csvn"
)

// Lexeme is one structural token with its source position.
type Lexeme struct {
	Kind   string
	Value  string
	Row    int
	Column int
}

// NewLexer creates a structural lexer using the csvn structural bytes.
//
// Matchers are tried in order:
// 1. Newline
// 2. Delimiter
// 3. Quote
// 4. Space runs
// 5. Content (any other bytes)
func NewLexer() tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		tokenizer.StringMatcherFunc(TokenNewline, string(csvn.Newline)),
		tokenizer.StringMatcherFunc(TokenDelimiter, string(csvn.Delimiter)),
		tokenizer.StringMatcherFunc(TokenQuote, string(csvn.Quote)),
		SpaceMatcher(),
		ContentMatcher(),
	)
}

// NewLexerWithStream creates a structural lexer reading from stream.
func NewLexerWithStream(stream tokenizer.Stream) tokenizer.Tokenizer {
	tok := NewLexer()
	tok.InitializeFromStream(stream)
	return tok
}

// Lex runs the lexer over input and collects every lexeme.
func Lex(input string) []Lexeme {
	tok := NewLexer()
	tok.Initialize(input)

	var out []Lexeme
	for {
		t, ok := tok.NextToken()
		if !ok {
			return out
		}
		out = append(out, Lexeme{
			Kind:   t.Kind(),
			Value:  t.ValueString(),
			Row:    t.Row(),
			Column: t.Column(),
		})
	}
}

// Stats counts lexemes by kind.
func Stats(lexemes []Lexeme) map[string]int {
	counts := make(map[string]int, 5)
	for _, l := range lexemes {
		counts[l.Kind]++
	}
	return counts
}

// isStructural reports whether b ends a content run.
func isStructural(b byte) bool {
	return b == csvn.Delimiter || b == csvn.Quote || b == csvn.Newline || b == ' ' || b == 0
}

// SpaceMatcher matches a run of ' '.
func SpaceMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune
		for {
			r, ok := stream.PeekChar()
			if !ok || r != ' ' {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}
		if len(value) == 0 {
			return nil
		}
		return tokenizer.NewToken(TokenSpace, value)
	}
}

// ContentMatcher matches runs of bytes that are not structural.
//
// Grammar:
//
//	Content = Character+ ;
//	Character = <any byte except Delimiter, Quote, Newline, ' ', NUL> ;
//
// Performance: Uses ByteStream for fast ASCII scanning when available.
func ContentMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		if byteStream, ok := stream.(tokenizer.ByteStream); ok {
			return contentMatcherByte(byteStream)
		}
		return contentMatcherRune(stream)
	}
}

// contentMatcherByte uses ByteStream for optimal performance.
func contentMatcherByte(stream tokenizer.ByteStream) *tokenizer.Token {
	startPos := stream.BytePosition()

	for {
		b, ok := stream.PeekByte()
		if !ok || isStructural(b) {
			break
		}
		stream.NextByte()
	}

	if stream.BytePosition() == startPos {
		return nil
	}

	value := stream.SliceFrom(startPos)
	return tokenizer.NewToken(TokenContent, []rune(string(value)))
}

// contentMatcherRune is the fallback rune-based implementation.
func contentMatcherRune(stream tokenizer.Stream) *tokenizer.Token {
	var value []rune

	for {
		r, ok := stream.PeekChar()
		if !ok {
			break
		}
		if r < 0x80 && isStructural(byte(r)) {
			break
		}
		stream.NextChar()
		value = append(value, r)
	}

	if len(value) == 0 {
		return nil
	}

	return tokenizer.NewToken(TokenContent, value)
}
