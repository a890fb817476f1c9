// Package markov builds the dice-driven word transition model: it counts
// word successors over a corpus and apportions the six die faces among them.
package markov

import (
	"github.com/aretw0/dicetale/internal/tokenizer"
	"github.com/aretw0/dicetale/pkg/domain"
)

// SuccessorCount pairs an observed successor with its occurrence count.
type SuccessorCount struct {
	Next  domain.Token
	Count int
}

// successorCounts accumulates the successor frequencies for one source word,
// preserving first-seen order for deterministic tie-breaking.
type successorCounts struct {
	counts map[domain.Token]int
	order  []domain.Token
}

// Counts is the transition frequency table derived from a corpus.
// It is rebuilt from scratch per corpus and discarded after allocation.
type Counts struct {
	words     []domain.Token
	table     map[domain.Token]*successorCounts
	starts    []domain.Token
	startSeen map[domain.Token]bool
	tokens    int
}

// Accumulate tokenizes every corpus entry and counts each adjacent
// (current, next) pair, END included. The first word of every sentence is
// registered as a legal start word. Accumulation never fails; an empty
// corpus simply yields zero tokens.
//
// END is a sink, never a source: pairs do not cross sentence boundaries.
// A corpus entry whose last sentence lacks a terminator still closes with an
// implicit END, so final words keep a transition to END with count >= 1.
func Accumulate(corpus []string) *Counts {
	c := &Counts{
		table:     make(map[domain.Token]*successorCounts),
		startSeen: make(map[domain.Token]bool),
	}

	for _, text := range corpus {
		var prev domain.Token
		havePrev := false
		atStart := true

		for tok := range tokenizer.Tokenize(text) {
			c.tokens++

			if tok.IsEnd() {
				if havePrev {
					c.bump(prev, domain.End)
				}
				havePrev = false
				atStart = true
				continue
			}

			if atStart {
				c.addStart(tok)
				atStart = false
			}
			if havePrev {
				c.bump(prev, tok)
			}
			prev = tok
			havePrev = true
		}

		// Implicit END for a trailing unterminated sentence.
		if havePrev {
			c.bump(prev, domain.End)
		}
	}

	return c
}

func (c *Counts) bump(word, next domain.Token) {
	succ, ok := c.table[word]
	if !ok {
		succ = &successorCounts{counts: make(map[domain.Token]int)}
		c.table[word] = succ
		c.words = append(c.words, word)
	}
	if _, seen := succ.counts[next]; !seen {
		succ.order = append(succ.order, next)
	}
	succ.counts[next]++
}

func (c *Counts) addStart(word domain.Token) {
	if c.startSeen[word] {
		return
	}
	c.startSeen[word] = true
	c.starts = append(c.starts, word)
}

// Words returns every observed source word in first-seen corpus order.
func (c *Counts) Words() []domain.Token {
	return append([]domain.Token(nil), c.words...)
}

// Successors returns the successor counts for a word in first-seen order.
// A word that was never a source returns nil.
func (c *Counts) Successors(word domain.Token) []SuccessorCount {
	succ, ok := c.table[word]
	if !ok {
		return nil
	}

	out := make([]SuccessorCount, 0, len(succ.order))
	for _, next := range succ.order {
		out = append(out, SuccessorCount{Next: next, Count: succ.counts[next]})
	}
	return out
}

// StartWords returns the legal sentence entry points in first-seen order.
func (c *Counts) StartWords() []domain.Token {
	return append([]domain.Token(nil), c.starts...)
}

// TokenCount returns the total number of tokens the corpus produced.
func (c *Counts) TokenCount() int {
	return c.tokens
}
