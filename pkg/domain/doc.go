/*
Package domain contains the core domain models for the Dicetale engine.

It defines the fundamental entities of the dice-driven Markov model, such as
Tokens, FaceRanges, the TransitionModel and the Story state. This package is
kept pure and free of external dependencies like I/O or persistence,
following Hexagonal Architecture principles.

# Key Entities

  - Token: A normalized word, or the distinguished END marker.
  - FaceRange: A contiguous block of die faces (1-6) assigned to one successor.
  - Model: The full word -> (face range, successor) transition table.
  - Story: The runtime snapshot of one dice-driven generation.
*/
package domain
