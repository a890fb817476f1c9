// Package tokenizer normalizes raw sentence text into token sequences.
package tokenizer

import (
	"iter"
	"slices"
	"strings"
	"unicode"

	"github.com/aretw0/dicetale/pkg/domain"
)

// Tokenize splits raw sentence text into a lazy sequence of lowercase word
// tokens plus explicit END markers. The sequence is finite and restartable
// (a pure function of the input).
//
// Words are runs of letters and digits; every other character is a silent
// separator, except the sentence terminators '.', '!' and '?', which emit
// the END marker. Consecutive whitespace collapses; empty input produces an
// empty sequence. Tokenization never fails.
func Tokenize(text string) iter.Seq[domain.Token] {
	return func(yield func(domain.Token) bool) {
		var word strings.Builder

		flush := func() bool {
			if word.Len() == 0 {
				return true
			}
			tok := domain.Token(strings.ToLower(word.String()))
			word.Reset()
			return yield(tok)
		}

		for _, r := range text {
			switch {
			case unicode.IsLetter(r) || unicode.IsDigit(r):
				word.WriteRune(r)
			case r == '.' || r == '!' || r == '?':
				if !flush() {
					return
				}
				if !yield(domain.End) {
					return
				}
			default:
				if !flush() {
					return
				}
			}
		}
		flush()
	}
}

// Collect materializes the token sequence. Convenience for small corpora and tests.
func Collect(text string) []domain.Token {
	return slices.Collect(Tokenize(text))
}
