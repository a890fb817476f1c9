package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(word string, entries ...Entry) WordTransitions {
	return WordTransitions{Word: Token(word), Entries: entries}
}

func TestNewModel(t *testing.T) {
	fullRow := row("the", Entry{Faces: FaceRange{Start: 1, End: 6}, Next: "cat", Count: 1})

	t.Run("Accepts full coverage", func(t *testing.T) {
		m, err := NewModel([]WordTransitions{fullRow}, []Token{"the"})
		require.NoError(t, err)
		assert.Equal(t, 1, m.Len())
		assert.Equal(t, []Token{"the"}, m.StartWords())
	})

	t.Run("Rejects gaps", func(t *testing.T) {
		_, err := NewModel([]WordTransitions{row("the",
			Entry{Faces: FaceRange{Start: 1, End: 3}, Next: "cat"},
			Entry{Faces: FaceRange{Start: 5, End: 6}, Next: "dog"},
		)}, nil)
		assert.ErrorIs(t, err, ErrMalformedModel)
	})

	t.Run("Rejects overlap", func(t *testing.T) {
		_, err := NewModel([]WordTransitions{row("the",
			Entry{Faces: FaceRange{Start: 1, End: 4}, Next: "cat"},
			Entry{Faces: FaceRange{Start: 4, End: 6}, Next: "dog"},
		)}, nil)
		assert.ErrorIs(t, err, ErrMalformedModel)
	})

	t.Run("Rejects short coverage", func(t *testing.T) {
		_, err := NewModel([]WordTransitions{row("the",
			Entry{Faces: FaceRange{Start: 1, End: 5}, Next: "cat"},
		)}, nil)
		assert.ErrorIs(t, err, ErrMalformedModel)
	})

	t.Run("Rejects empty rows", func(t *testing.T) {
		_, err := NewModel([]WordTransitions{row("the")}, nil)
		assert.ErrorIs(t, err, ErrMalformedModel)
	})

	t.Run("Rejects duplicate words", func(t *testing.T) {
		_, err := NewModel([]WordTransitions{fullRow, fullRow}, nil)
		assert.ErrorIs(t, err, ErrMalformedModel)
	})
}

func TestModel_Get(t *testing.T) {
	m, err := NewModel([]WordTransitions{
		row("the", Entry{Faces: FaceRange{Start: 1, End: 6}, Next: "cat", Count: 2}),
	}, []Token{"the"})
	require.NoError(t, err)

	t.Run("Known word", func(t *testing.T) {
		entries, err := m.Get("the")
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("Unknown word", func(t *testing.T) {
		_, err := m.Get("zebra")
		assert.ErrorIs(t, err, ErrUnknownWord)
	})

	t.Run("Returned slice is a copy", func(t *testing.T) {
		entries, err := m.Get("the")
		require.NoError(t, err)
		entries[0].Next = "mutated"

		again, err := m.Get("the")
		require.NoError(t, err)
		assert.Equal(t, Token("cat"), again[0].Next)
	})
}

func TestModel_JSON(t *testing.T) {
	m, err := NewModel([]WordTransitions{
		row("the",
			Entry{Faces: FaceRange{Start: 1, End: 4}, Next: "cat", Count: 2},
			Entry{Faces: FaceRange{Start: 5, End: 6}, Next: "dog", Count: 1},
		),
		row("cat", Entry{Faces: FaceRange{Start: 1, End: 6}, Next: End, Count: 1}),
		row("dog", Entry{Faces: FaceRange{Start: 1, End: 6}, Next: End, Count: 1}),
	}, []Token{"the"})
	require.NoError(t, err)

	t.Run("Entries serialize as flat die ranges", func(t *testing.T) {
		data, err := json.Marshal(Entry{Faces: FaceRange{Start: 1, End: 3}, Next: "cat", Count: 2})
		require.NoError(t, err)
		assert.JSONEq(t, `{"dieStart":1,"dieEnd":3,"successorWord":"cat","count":2}`, string(data))
	})

	t.Run("Round trip preserves order and coverage", func(t *testing.T) {
		data, err := json.Marshal(m)
		require.NoError(t, err)

		var back Model
		require.NoError(t, json.Unmarshal(data, &back))
		assert.Equal(t, m.Words(), back.Words())
		assert.Equal(t, m.StartWords(), back.StartWords())
		assert.Equal(t, m.Export(), back.Export())
	})

	t.Run("Rejects a malformed document", func(t *testing.T) {
		var back Model
		err := json.Unmarshal([]byte(`{"startWords":[],"words":[{"word":"x","transitions":[{"dieStart":1,"dieEnd":4,"successorWord":"y","count":1}]}]}`), &back)
		assert.ErrorIs(t, err, ErrMalformedModel)
	})
}

func TestFaceRange(t *testing.T) {
	r := FaceRange{Start: 2, End: 4}

	assert.True(t, r.Contains(2))
	assert.True(t, r.Contains(4))
	assert.False(t, r.Contains(5))
	assert.Equal(t, 3, r.Width())
	assert.Equal(t, "2-4", r.String())
	assert.Equal(t, "6", FaceRange{Start: 6, End: 6}.String())
}
