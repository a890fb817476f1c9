/*
Package dicetale turns a small corpus of example sentences into a first-order
Markov word-transition model whose outgoing probabilities are expressed as
ranges over the faces of a six-sided die, so a human can generate novel
sentences by physically rolling dice.

The model is deliberately not statistically faithful language: pedagogical
clarity (small, enumerable outcome sets; visible probabilities) outranks
linguistic fidelity. Every pipeline stage is deterministic, so the same
corpus always yields a byte-identical printable table.

# Concept

Dicetale treats each observed word as a row on a printed table. The six die
faces are apportioned among the word's observed successors proportionally to
frequency (largest-remainder method), so every observed transition stays
reachable by some roll. Rolling a die and looking up the current word's row
yields the next word, until the END marker closes the sentence.

# Usage

Initialize the engine against a corpus directory (a Loam repository of
markdown documents) or inject a custom loader.

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/dicetale"
		"github.com/aretw0/dicetale/pkg/adapters/dice"
	)

	func main() {
		eng, err := dicetale.New("./my-corpus")
		if err != nil {
			log.Fatal(err)
		}

		// Preview a story with a reproducible seed.
		story, err := eng.Preview("the", dice.NewPseudoSource(42))
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(story.Sentence())
	}

For classroom mode, drive the same engine with dice.NewScriptedSource and
faces transcribed from physical dice.
*/
package dicetale
