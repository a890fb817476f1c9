package domain

import "errors"

// ErrUnknownWord is returned when a word was never observed as a transition source.
var ErrUnknownWord = errors.New("word not in model")

// ErrEmptyCorpus is returned when the corpus produces zero tokens.
var ErrEmptyCorpus = errors.New("corpus produced no tokens")

// ErrInvalidRoll is returned when a die roll is outside the 1..6 range.
var ErrInvalidRoll = errors.New("roll must be between 1 and 6")

// ErrStoryComplete is returned when advancing a story that already ended.
var ErrStoryComplete = errors.New("story already complete")

// ErrStoryNotFound is returned when a story ID cannot be found in the store.
var ErrStoryNotFound = errors.New("story not found")

// ErrMalformedModel is returned when a model fails its coverage invariants.
var ErrMalformedModel = errors.New("malformed model")
