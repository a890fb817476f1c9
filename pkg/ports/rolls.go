package ports

// RollSource produces die faces in 1..6. Implementations may be seeded
// pseudo-random generators, scripted sequences (classroom mode, tests) or a
// prompt for a physical die.
//
// Roll returns an error when the source is exhausted (e.g. a scripted
// sequence ran out of faces).
type RollSource interface {
	Roll() (int, error)
}
