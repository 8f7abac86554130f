package picker

import (
	"math/rand"
	"testing"

	"meowvie/internal/catalog"
)

func newTestPicker() *Picker {
	return NewWithSource(rand.NewSource(1))
}

func TestPick_EmptyCandidates(t *testing.T) {
	p := newTestPicker()
	if _, ok := p.Pick(nil, 0); ok {
		t.Fatalf("picked from empty list")
	}
	if _, ok := p.Pick(nil, 7); ok {
		t.Fatalf("picked from empty list with threshold")
	}
}

func TestPick_NoThresholdReturnsAnyCandidate(t *testing.T) {
	p := newTestPicker()
	candidates := []catalog.Movie{
		{Title: "A", Rating: 2},
		{Title: "B", Rating: 5},
	}
	for i := 0; i < 50; i++ {
		m, ok := p.Pick(candidates, 0)
		if !ok {
			t.Fatalf("no pick from non-empty list")
		}
		if m.Title != "A" && m.Title != "B" {
			t.Fatalf("picked movie not in candidates: %+v", m)
		}
	}
}

func TestPick_ThresholdFiltersCandidates(t *testing.T) {
	p := newTestPicker()
	candidates := []catalog.Movie{
		{Title: "Low", Rating: 5},
		{Title: "Mid", Rating: 8},
		{Title: "High", Rating: 9},
	}
	for i := 0; i < 50; i++ {
		m, ok := p.Pick(candidates, 7)
		if !ok {
			t.Fatalf("no pick despite qualifying candidates")
		}
		if m.Title == "Low" {
			t.Fatalf("picked movie below threshold: %+v", m)
		}
	}
}

func TestPick_FallbackWhenNothingQualifies(t *testing.T) {
	p := newTestPicker()
	candidates := []catalog.Movie{
		{Title: "A", Rating: 4},
		{Title: "B", Rating: 5},
	}
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		m, ok := p.Pick(candidates, 9)
		if !ok {
			t.Fatalf("threshold fallback must not fail on non-empty list")
		}
		seen[m.Title] = true
	}
	if !seen["A"] || !seen["B"] {
		t.Fatalf("fallback should draw from the whole list, saw %v", seen)
	}
}

func TestPick_BothQualifyingCandidatesReachable(t *testing.T) {
	p := newTestPicker()
	candidates := []catalog.Movie{
		{Title: "Skip", Rating: 5},
		{Title: "X", Rating: 8},
		{Title: "Y", Rating: 9},
	}
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		m, _ := p.Pick(candidates, 7)
		seen[m.Title] = true
	}
	if !seen["X"] || !seen["Y"] {
		t.Fatalf("uniform pick should reach every qualifying candidate, saw %v", seen)
	}
	if seen["Skip"] {
		t.Fatalf("sub-threshold candidate picked while others qualify")
	}
}
