package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/wordproblem/stephen/internal/config"
	"github.com/wordproblem/stephen/letters"
	"github.com/wordproblem/stephen/report"
	"github.com/wordproblem/stephen/stephen"
)

// splitWord breaks a --word flag value into symbol tokens: comma or
// whitespace separated, e.g. "a,a,b" or "a a b". A bare string with no
// separators is read one rune per symbol, so single-character alphabets
// (the common case) can be typed as plain "aab".
func splitWord(raw string) []string {
	if raw == "" {
		return nil
	}
	if strings.ContainsAny(raw, ", \t") {
		fields := strings.FieldsFunc(raw, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		return fields
	}
	runes := []rune(raw)
	out := make([]string, len(runes))
	for i, r := range runes {
		out[i] = string(r)
	}

	return out
}

// codeWord translates a --word flag value into a letters.Word using
// coder, failing with a wrapped letters.ErrUnknownSymbol if a token was
// never declared in the presentation's alphabet.
func codeWord(coder *letters.Coder, raw string) (letters.Word, error) {
	tokens := splitWord(raw)
	w := make(letters.Word, len(tokens))
	for i, tok := range tokens {
		l, err := coder.Lookup(tok)
		if err != nil {
			return nil, fmt.Errorf("stephen: %w", err)
		}
		w[i] = l
	}

	return w, nil
}

// loadAndComplete loads the presentation at path, seeds a Stephen
// instance with word, and runs it to completion (or to timeout if > 0).
// Returns the instance, its coder (for translating --other symbols and
// rendering enumerated words), and any error.
func loadAndComplete(path, word string, timeout time.Duration, reportInterval int) (*stephen.Stephen, *letters.Coder, error) {
	pres, coder, err := config.LoadWithCoder(path)
	if err != nil {
		return nil, nil, err
	}

	var opts []stephen.Option
	if reportInterval > 0 {
		opts = append(opts, stephen.WithReportSink(report.LogrusSink(newLogger()), reportInterval))
	}

	s, err := stephen.Init(pres, opts...)
	if err != nil {
		return nil, nil, err
	}

	w, err := codeWord(coder, word)
	if err != nil {
		return nil, nil, err
	}
	if err := s.SetWord(w); err != nil {
		return nil, nil, err
	}

	ctx := context.Background()
	if timeout > 0 {
		if err := s.RunFor(ctx, timeout); err != nil {
			return nil, nil, err
		}
	} else {
		if err := s.Run(ctx); err != nil {
			return nil, nil, err
		}
	}

	return s, coder, nil
}
