package tokenizer

import (
	"testing"

	"github.com/aretw0/dicetale/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	toks := func(ss ...string) []domain.Token {
		out := make([]domain.Token, 0, len(ss))
		for _, s := range ss {
			out = append(out, domain.Token(s))
		}
		return out
	}

	t.Run("Simple sentence", func(t *testing.T) {
		assert.Equal(t, toks("the", "cat", "sat", "."), Collect("the cat sat."))
	})

	t.Run("Lowercases words", func(t *testing.T) {
		assert.Equal(t, toks("the", "cat", "."), Collect("The CAT."))
	})

	t.Run("Exclamation and question mark terminate", func(t *testing.T) {
		assert.Equal(t, toks("wow", ".", "really", "."), Collect("wow! really?"))
	})

	t.Run("Punctuation separates without emitting tokens", func(t *testing.T) {
		assert.Equal(t, toks("well", "yes", "."), Collect("well, yes."))
	})

	t.Run("Collapses whitespace", func(t *testing.T) {
		assert.Equal(t, toks("a", "b", "."), Collect("a \t\n  b ."))
	})

	t.Run("Digits stay inside words", func(t *testing.T) {
		assert.Equal(t, toks("route66", "."), Collect("Route66."))
	})

	t.Run("Unterminated text yields no end marker", func(t *testing.T) {
		assert.Equal(t, toks("no", "period"), Collect("no period"))
	})

	t.Run("Empty input", func(t *testing.T) {
		assert.Empty(t, Collect(""))
	})

	t.Run("Only terminators", func(t *testing.T) {
		assert.Equal(t, toks(".", ".", "."), Collect("..."))
	})

	t.Run("Sequence is restartable", func(t *testing.T) {
		seq := Tokenize("a b.")
		first := []domain.Token{}
		for tok := range seq {
			first = append(first, tok)
		}
		second := []domain.Token{}
		for tok := range seq {
			second = append(second, tok)
		}
		assert.Equal(t, first, second)
	})
}
