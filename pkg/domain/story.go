package domain

import "strings"

// StoryStatus defines the current mode of a dice-driven generation.
type StoryStatus string

const (
	// StatusAwaitingRoll means the story needs another die roll to continue.
	StatusAwaitingRoll StoryStatus = "awaiting_roll"
	// StatusComplete means the sentence ended (or the length guard fired).
	StatusComplete StoryStatus = "complete"
)

// StopReason records why a completed story stopped.
type StopReason string

const (
	// StopEndReached means the END marker was rolled.
	StopEndReached StopReason = "END_REACHED"
	// StopMaxLength means the maximum token guard fired before END.
	StopMaxLength StopReason = "MAX_LENGTH_REACHED"
)

// Story represents the current snapshot of one generation session.
// It is plain data so stores can serialize it as-is.
type Story struct {
	// Current is the word awaiting the next roll.
	Current Token `json:"current"`

	// Words is the token sequence produced so far, start word included.
	// END is never appended; it flips Status instead.
	Words []Token `json:"words"`

	// Rolls tracks the die faces consumed, in order.
	Rolls []int `json:"rolls"`

	Status StoryStatus `json:"status"`

	// Stop is set once Status == StatusComplete.
	Stop StopReason `json:"stop,omitempty"`
}

// NewStory creates a clean story starting at a specific word.
func NewStory(start Token) *Story {
	return &Story{
		Current: start,
		Words:   []Token{start},
		Rolls:   []int{},
		Status:  StatusAwaitingRoll,
	}
}

// Sentence renders the story as prose: words joined by spaces, first letter
// capitalized, closed with a period.
func (s *Story) Sentence() string {
	if len(s.Words) == 0 {
		return ""
	}

	parts := make([]string, 0, len(s.Words))
	for _, w := range s.Words {
		parts = append(parts, string(w))
	}

	text := strings.Join(parts, " ")
	text = strings.ToUpper(text[:1]) + text[1:]
	return text + "."
}
