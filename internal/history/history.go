package history

import "time"

// Entry records one recommendation together with the menu answers that
// produced it. Entries for a user are insertion-ordered and never
// deduplicated; the same movie can appear any number of times.
type Entry struct {
	Timestamp  time.Time `json:"timestamp"`
	Title      string    `json:"title"`
	Year       int       `json:"year"`
	URL        string    `json:"url"`
	Companions string    `json:"companions"`
	Genre      string    `json:"genre"`
	Time       string    `json:"time"`
	MinRating  float64   `json:"min_rating,omitempty"`
}

// Store persists per-user recommendation history.
// Recent must never surface read failures: a broken or missing store
// reads as empty history. Implementations must be safe for concurrent use.
type Store interface {
	Append(userID int64, e Entry) error
	Recent(userID int64, n int) []Entry
}
