// Package dice implements the roll sources that drive story generation.
package dice

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand"

	"github.com/aretw0/dicetale/pkg/domain"
)

// ErrExhausted indicates a scripted roll source ran out of faces.
var ErrExhausted = errors.New("scripted roll source exhausted")

// PseudoSource produces pseudo-random die faces from a seed.
//
// # Determinism
//
// PseudoSource is deterministic with respect to its seed: the same seed
// always yields the same face sequence, so previews are reproducible.
type PseudoSource struct {
	rng *rand.Rand
}

// NewPseudoSource creates a seeded pseudo-random roll source.
func NewPseudoSource(seed int64) *PseudoSource {
	return &PseudoSource{rng: rand.New(rand.NewSource(seed))}
}

// Roll returns a face in 1..6. It never fails.
func (s *PseudoSource) Roll() (int, error) {
	return s.rng.Intn(domain.Faces) + 1, nil
}

// ScriptedSource replays a fixed sequence of faces. This is the classroom
// mode source (faces transcribed from physical dice) and the test source.
type ScriptedSource struct {
	faces []int
	pos   int
}

// NewScriptedSource creates a source that yields the given faces in order.
func NewScriptedSource(faces ...int) *ScriptedSource {
	return &ScriptedSource{faces: append([]int(nil), faces...)}
}

// Roll returns the next scripted face, or ErrExhausted once the sequence is
// spent. Face validity (1..6) is the sampler's concern, not the source's.
func (s *ScriptedSource) Roll() (int, error) {
	if s.pos >= len(s.faces) {
		return 0, fmt.Errorf("%w after %d rolls", ErrExhausted, s.pos)
	}
	face := s.faces[s.pos]
	s.pos++
	return face, nil
}

// Remaining reports how many scripted faces are left.
func (s *ScriptedSource) Remaining() int {
	return len(s.faces) - s.pos
}

// NewSeed generates a random seed using crypto/rand, for previews where the
// caller did not pin one.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
