// Command csvn tokenizes delimiter-separated text and prints the field spans.
//
// Input is the first argument, or the file named by -f (memory-mapped, or
// decompressed when it ends in .lz4):
//
//	csvn 'a,"b ""c""",,d'
//	csvn -f data.csv -strict
//	csvn -f data.csv.lz4 -empty skip
//	csvn -lex 'a, "b"'
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/shapestone/shape-csvn/internal/input"
	"github.com/shapestone/shape-csvn/internal/tokenizer"
	"github.com/shapestone/shape-csvn/pkg/csvn"
)

func envInt(name string, def int) int {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envBool(name string, def bool) bool {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		switch strings.ToLower(v) {
		case "1", "true", "yes", "on":
			return true
		case "0", "false", "no", "off":
			return false
		}
	}
	return def
}

type config struct {
	file     string
	capacity int
	lex      bool
	compress string
	opts     csvn.Options
}

func main() {
	log.SetFlags(0)

	var (
		cfg   config
		empty string
	)

	flag.StringVar(&cfg.file, "f", "", "read input from this file instead of the first argument (.lz4 is decompressed)")
	flag.IntVar(&cfg.capacity, "cap", envInt("CSVN_CAPACITY", 0), "fixed token capacity; 0 counts first and sizes the token slice")
	flag.BoolVar(&cfg.lex, "lex", false, "print the structural lexeme stream instead of field spans")
	flag.StringVar(&cfg.compress, "compress", "", "write the input as an lz4 frame to this path and exit")
	flag.BoolVar(&cfg.opts.Strict, "strict", envBool("CSVN_STRICT", false), "reject quotes in unquoted fields and content after closing quotes")
	flag.BoolVar(&cfg.opts.SkipSpace, "skip-space", false, "skip spaces directly after a delimiter")
	flag.StringVar(&empty, "empty", "emit", "empty field policy: emit, skip or reject")
	flag.BoolVar(&cfg.opts.QuotedLineAtEnd, "line-at-end", false, "report quoted fields on the line their closing quote is on")
	flag.BoolVar(&cfg.opts.RejectUnterminatedQuote, "reject-unterminated", false, "fail on a quoted field that is never closed")
	flag.Parse()

	policy, err := csvn.ParseEmptyFieldPolicy(empty)
	if err != nil {
		log.Fatalf("csvn: %v", err)
	}
	cfg.opts.EmptyFields = policy

	data, cleanup, err := load(cfg.file, flag.Args())
	if err != nil {
		log.Fatalf("csvn: %v", err)
	}
	defer cleanup()

	out := bufio.NewWriter(os.Stdout)
	if err := run(out, data, cfg); err != nil {
		_ = out.Flush()
		cleanup()
		log.Fatalf("csvn: %v", err)
	}
	if err := out.Flush(); err != nil {
		log.Fatalf("csvn: %v", err)
	}
}

// load returns the input buffer from a file or the first argument.
func load(file string, args []string) ([]byte, func(), error) {
	if file != "" {
		return input.Load(file)
	}
	if len(args) == 0 {
		return nil, nil, errors.New("usage: csvn [flags] <text> | csvn [flags] -f <file>")
	}
	return []byte(args[0]), func() {}, nil
}

func run(w io.Writer, data []byte, cfg config) error {
	switch {
	case cfg.compress != "":
		return compress(cfg.compress, data)
	case cfg.lex:
		return printLexemes(w, data)
	case cfg.capacity > 0:
		return printFixed(w, data, cfg.capacity, cfg.opts)
	default:
		return printTokens(w, data, cfg.opts)
	}
}

func compress(path string, data []byte) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return input.Compress(f, data)
}

func printLexemes(w io.Writer, data []byte) error {
	lexemes := tokenizer.Lex(string(data))
	for _, l := range lexemes {
		if _, err := fmt.Fprintf(w, "%-9s %q (row: %d, column: %d)\n", l.Kind, l.Value, l.Row, l.Column); err != nil {
			return err
		}
	}
	stats := tokenizer.Stats(lexemes)
	_, err := fmt.Fprintf(w, "Lexed %d lexemes: %d content, %d delimiters, %d quotes, %d newlines\n",
		len(lexemes), stats[tokenizer.TokenContent], stats[tokenizer.TokenDelimiter],
		stats[tokenizer.TokenQuote], stats[tokenizer.TokenNewline])
	return err
}

func printTokens(w io.Writer, data []byte, opts csvn.Options) error {
	tokens, err := csvn.Tokenize(data, opts)
	if err != nil {
		return err
	}
	defer csvn.Release(tokens)
	return writeTokens(w, data, tokens)
}

// printFixed parses into a slice of exactly capacity tokens, the way an
// embedding program with a fixed pool would.
func printFixed(w io.Writer, data []byte, capacity int, opts csvn.Options) error {
	tokens := make([]csvn.Token, capacity)
	pos := csvn.NewPosition()
	n, err := csvn.Parse(data, len(data), &pos, tokens, opts)
	if errors.Is(err, csvn.ErrOutOfTokenCapacity) {
		need, cerr := csvn.Count(data, opts)
		if cerr != nil {
			return cerr
		}
		return fmt.Errorf("%w: input has %d fields, capacity is %d", err, need, capacity)
	}
	if err != nil {
		return err
	}
	return writeTokens(w, data, tokens[:n])
}

func writeTokens(w io.Writer, data []byte, tokens []csvn.Token) error {
	for _, tok := range tokens {
		if _, err := fmt.Fprintf(w, "Parsed token: %q (kind: %s, start: %d, end: %d, line: %d)\n",
			tok.Bytes(data), tok.Kind, tok.Start, tok.End, tok.Line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Parsed %d tokens.\n", len(tokens))
	return err
}
