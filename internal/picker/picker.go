package picker

import (
	"math/rand"
	"time"

	"meowvie/internal/catalog"
)

// Picker selects one movie from a candidate list, uniformly at random.
type Picker struct {
	rnd *rand.Rand
}

func New() *Picker {
	return NewWithSource(rand.NewSource(time.Now().UnixNano()))
}

func NewWithSource(src rand.Source) *Picker {
	return &Picker{rnd: rand.New(src)}
}

// Pick filters candidates to those rated at or above minRating and picks
// one uniformly. When the filter leaves nothing and minRating is positive,
// it deliberately falls back to the unfiltered list instead of failing, so
// a strict threshold never leaves the user empty-handed. Returns false only
// when candidates itself is empty. Repeats across calls are expected.
func (p *Picker) Pick(candidates []catalog.Movie, minRating float64) (catalog.Movie, bool) {
	if len(candidates) == 0 {
		return catalog.Movie{}, false
	}
	pool := candidates
	if minRating > 0 {
		var filtered []catalog.Movie
		for _, m := range candidates {
			if m.Rating >= minRating {
				filtered = append(filtered, m)
			}
		}
		if len(filtered) > 0 {
			pool = filtered
		}
	}
	return pool[p.rnd.Intn(len(pool))], true
}
