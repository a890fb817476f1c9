package markov

import (
	"sort"

	"github.com/aretw0/dicetale/pkg/domain"
)

// share is the working allocation state for one successor.
type share struct {
	next  domain.Token
	count int
	seen  int // first-seen index, lowest wins ties
	faces int
	frac  float64
}

// Allocate partitions the six die faces among the successors proportional to
// their counts, using largest-remainder apportionment: floor shares first,
// then leftover faces to the largest fractional remainders. The result is
// deterministic, covers exactly {1..6} with no gaps or overlaps, and never
// starves an observed successor while six or fewer exist.
//
// More than six distinct successors is an expected degenerate case: only the
// six highest-count successors (first-seen breaks ties) keep a face, and the
// rest are returned as dropped so callers can surface a warning.
//
// Entries are ordered by descending original count (ties by first-seen),
// with contiguous ranges assigned from face 1 in that order.
func Allocate(successors []SuccessorCount) ([]domain.Entry, []domain.Token) {
	if len(successors) == 0 {
		return nil, nil
	}

	ranked := make([]*share, 0, len(successors))
	for i, s := range successors {
		ranked = append(ranked, &share{next: s.Next, count: s.Count, seen: i})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].seen < ranked[j].seen
	})

	var dropped []domain.Token
	if len(ranked) > domain.Faces {
		for _, s := range ranked[domain.Faces:] {
			dropped = append(dropped, s.next)
		}
		ranked = ranked[:domain.Faces]
	}

	total := 0
	for _, s := range ranked {
		total += s.count
	}

	// Floor shares, with every observed successor bumped to at least one
	// face before the remainder pass so no transition is pruned to zero.
	allocated := 0
	for _, s := range ranked {
		ideal := float64(domain.Faces) * float64(s.count) / float64(total)
		s.faces = int(ideal)
		s.frac = ideal - float64(s.faces)
		if s.faces == 0 {
			s.faces = 1
		}
		allocated += s.faces
	}

	switch {
	case allocated < domain.Faces:
		distribute(ranked, domain.Faces-allocated)
	case allocated > domain.Faces:
		reclaim(ranked, allocated-domain.Faces)
	}

	entries := make([]domain.Entry, 0, len(ranked))
	face := 1
	for _, s := range ranked {
		entries = append(entries, domain.Entry{
			Faces: domain.FaceRange{Start: face, End: face + s.faces - 1},
			Next:  s.next,
			Count: s.count,
		})
		face += s.faces
	}

	return entries, dropped
}

// distribute hands the remaining faces one at a time to the successors with
// the largest fractional remainder, ties broken by descending count, then by
// first-seen order.
func distribute(ranked []*share, remainder int) {
	order := append([]*share(nil), ranked...)
	sort.SliceStable(order, func(i, j int) bool {
		if order[i].frac != order[j].frac {
			return order[i].frac > order[j].frac
		}
		if order[i].count != order[j].count {
			return order[i].count > order[j].count
		}
		return order[i].seen < order[j].seen
	})

	for i := 0; i < remainder; i++ {
		order[i%len(order)].faces++
	}
}

// reclaim takes faces back when the zero-floor bumps oversubscribed the die.
// Faces come off the successors with the smallest fractional remainder that
// still hold more than one face, ties broken by ascending count, then by
// last-seen order, so the minimum-one guarantee is preserved.
func reclaim(ranked []*share, excess int) {
	order := append([]*share(nil), ranked...)
	sort.SliceStable(order, func(i, j int) bool {
		if order[i].frac != order[j].frac {
			return order[i].frac < order[j].frac
		}
		if order[i].count != order[j].count {
			return order[i].count < order[j].count
		}
		return order[i].seen > order[j].seen
	})

	for excess > 0 {
		for _, s := range order {
			if s.faces > 1 {
				s.faces--
				excess--
				break
			}
		}
	}
}
