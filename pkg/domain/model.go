package domain

import (
	"encoding/json"
	"fmt"
)

// Faces is the number of faces on the die the table is printed for.
const Faces = 6

// FaceRange is a contiguous inclusive block of die faces within [1,6]
// assigned to exactly one successor.
type FaceRange struct {
	Start int
	End   int
}

// Contains reports whether the given face falls inside the range.
func (r FaceRange) Contains(face int) bool {
	return face >= r.Start && face <= r.End
}

// Width returns the number of faces covered by the range.
func (r FaceRange) Width() int {
	return r.End - r.Start + 1
}

// String renders the range the way it appears on the printed table ("1-3" or "4").
func (r FaceRange) String() string {
	if r.Start == r.End {
		return fmt.Sprintf("%d", r.Start)
	}
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// Entry maps one face range to a successor token. Count preserves the
// original observation count so renderers can surface the underlying
// frequencies to students.
type Entry struct {
	Faces FaceRange
	Next  Token
	Count int
}

// entryRecord is the flat serialized shape of an Entry. This is the handoff
// format consumed by external renderers.
type entryRecord struct {
	DieStart int    `json:"dieStart" yaml:"dieStart"`
	DieEnd   int    `json:"dieEnd" yaml:"dieEnd"`
	Next     string `json:"successorWord" yaml:"successorWord"`
	Count    int    `json:"count" yaml:"count"`
}

// MarshalJSON serializes the entry as a flat {dieStart, dieEnd, next, count} record.
func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(entryRecord{
		DieStart: e.Faces.Start,
		DieEnd:   e.Faces.End,
		Next:     string(e.Next),
		Count:    e.Count,
	})
}

// UnmarshalJSON deserializes the flat record back into an Entry.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var rec entryRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	e.Faces = FaceRange{Start: rec.DieStart, End: rec.DieEnd}
	e.Next = Token(rec.Next)
	e.Count = rec.Count
	return nil
}

// MarshalYAML mirrors the JSON record shape for YAML exports.
func (e Entry) MarshalYAML() (any, error) {
	return entryRecord{
		DieStart: e.Faces.Start,
		DieEnd:   e.Faces.End,
		Next:     string(e.Next),
		Count:    e.Count,
	}, nil
}

// UnmarshalYAML mirrors UnmarshalJSON.
func (e *Entry) UnmarshalYAML(unmarshal func(any) error) error {
	var rec entryRecord
	if err := unmarshal(&rec); err != nil {
		return err
	}
	e.Faces = FaceRange{Start: rec.DieStart, End: rec.DieEnd}
	e.Next = Token(rec.Next)
	e.Count = rec.Count
	return nil
}

// WordTransitions pairs a source word with its ordered dice table entries.
// Entries are ordered by descending original count (first-seen breaks ties),
// which is also ascending face order by construction.
type WordTransitions struct {
	Word    Token   `json:"word" yaml:"word"`
	Entries []Entry `json:"transitions" yaml:"transitions"`
}

// Model is the immutable word -> ordered (FaceRange, successor) mapping.
// It is the only entity persisted after a build; counts and start words are
// carried along for rendering and sampling.
type Model struct {
	words   []Token
	entries map[Token][]Entry
	starts  []Token
}

// NewModel assembles a model from per-word transition rows and the set of
// legal start words. Rows and starts keep their order (first-seen in the
// corpus) so serialization stays deterministic.
//
// Every row must partition the faces {1..6} with no gaps and no overlap;
// a row that does not is a construction bug and yields ErrMalformedModel.
func NewModel(rows []WordTransitions, starts []Token) (*Model, error) {
	m := &Model{
		words:   make([]Token, 0, len(rows)),
		entries: make(map[Token][]Entry, len(rows)),
		starts:  append([]Token(nil), starts...),
	}

	for _, row := range rows {
		if _, dup := m.entries[row.Word]; dup {
			return nil, fmt.Errorf("%w: duplicate word %q", ErrMalformedModel, row.Word)
		}
		if err := validateCoverage(row); err != nil {
			return nil, err
		}
		m.words = append(m.words, row.Word)
		m.entries[row.Word] = append([]Entry(nil), row.Entries...)
	}

	return m, nil
}

// validateCoverage enforces the allocator invariant: contiguous ranges
// starting at face 1 and ending at face 6, in list order.
func validateCoverage(row WordTransitions) error {
	if len(row.Entries) == 0 {
		return fmt.Errorf("%w: word %q has no transitions", ErrMalformedModel, row.Word)
	}

	next := 1
	for _, e := range row.Entries {
		if e.Faces.Start != next || e.Faces.End < e.Faces.Start {
			return fmt.Errorf("%w: word %q has gap or overlap at face %d", ErrMalformedModel, row.Word, next)
		}
		next = e.Faces.End + 1
	}
	if next != Faces+1 {
		return fmt.Errorf("%w: word %q covers faces up to %d, want %d", ErrMalformedModel, row.Word, next-1, Faces)
	}
	return nil
}

// Get returns the ordered dice table entries for a word.
// It returns ErrUnknownWord if the word was never observed as a source.
func (m *Model) Get(word Token) ([]Entry, error) {
	entries, ok := m.entries[word]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWord, word)
	}
	return append([]Entry(nil), entries...), nil
}

// Words returns every source word in first-seen corpus order.
func (m *Model) Words() []Token {
	return append([]Token(nil), m.words...)
}

// StartWords returns the legal entry points for a story, in first-seen order.
func (m *Model) StartWords() []Token {
	return append([]Token(nil), m.starts...)
}

// Len returns the number of source words in the model.
func (m *Model) Len() int {
	return len(m.words)
}

// Export returns the full table as ordered rows, for serialization and
// external renderers.
func (m *Model) Export() []WordTransitions {
	rows := make([]WordTransitions, 0, len(m.words))
	for _, w := range m.words {
		rows = append(rows, WordTransitions{
			Word:    w,
			Entries: append([]Entry(nil), m.entries[w]...),
		})
	}
	return rows
}

// modelDocument is the serialized form. Rows are an ordered array, not a
// JSON object, so identical corpora serialize byte-identically.
type modelDocument struct {
	StartWords []Token           `json:"startWords" yaml:"startWords"`
	Words      []WordTransitions `json:"words" yaml:"words"`
}

// MarshalJSON serializes the model as the external handoff artifact.
func (m *Model) MarshalJSON() ([]byte, error) {
	return json.Marshal(modelDocument{
		StartWords: m.StartWords(),
		Words:      m.Export(),
	})
}

// UnmarshalJSON rebuilds a model from its serialized form, re-validating
// the coverage invariants.
func (m *Model) UnmarshalJSON(data []byte) error {
	var doc modelDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	rebuilt, err := NewModel(doc.Words, doc.StartWords)
	if err != nil {
		return err
	}
	*m = *rebuilt
	return nil
}

// MarshalYAML mirrors MarshalJSON for YAML exports.
func (m *Model) MarshalYAML() (any, error) {
	return modelDocument{
		StartWords: m.StartWords(),
		Words:      m.Export(),
	}, nil
}
