package domain

import "fmt"

// Warning is a non-fatal signal raised during model construction.
// The model remains valid; callers and renderers should surface warnings
// to the corpus author.
type Warning struct {
	// Word is the transition source the warning applies to.
	Word Token
	// Dropped lists successors that lost their face because the word had
	// more than six distinct successors.
	Dropped []Token
}

func (w Warning) String() string {
	return fmt.Sprintf("word %q has more than %d successors; dropped %v from the table", w.Word, Faces, w.Dropped)
}
