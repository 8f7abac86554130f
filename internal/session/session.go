package session

import (
	"sync"

	"meowvie/internal/catalog"
)

// State is the conversation position for one user.
type State int

const (
	StateLanguageSelect State = iota
	StateCompanionSelect
	StateGenreSelect
	StateTimeSelect
	StateRatingSelect
	StateResultLoop
	StateAwaitingQuestion
)

func (s State) String() string {
	switch s {
	case StateLanguageSelect:
		return "language_select"
	case StateCompanionSelect:
		return "companion_select"
	case StateGenreSelect:
		return "genre_select"
	case StateTimeSelect:
		return "time_select"
	case StateRatingSelect:
		return "rating_select"
	case StateResultLoop:
		return "result_loop"
	case StateAwaitingQuestion:
		return "awaiting_question"
	}
	return "unknown"
}

// Session holds everything collected from one user so far.
// Lives in memory only; a process restart discards it.
type Session struct {
	State      State
	Lang       string
	Companions string
	Genre      catalog.Genre
	TimeOfDay  string
	MinRating  float64
	LastMovie  *catalog.Movie
}

// Store owns all live sessions, keyed by Telegram user ID.
type Store struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[int64]*Session)}
}

// Get returns the user's session, creating one in the given initial
// state if none exists.
func (st *Store) Get(userID int64, initial State) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[userID]
	if !ok {
		s = &Session{State: initial}
		st.sessions[userID] = s
	}
	return s
}

// Peek returns the user's session or nil without creating one.
func (st *Store) Peek(userID int64) *Session {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.sessions[userID]
}

// Reset discards the user's session entirely.
func (st *Store) Reset(userID int64) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, userID)
}

// Restart keeps the chosen language but clears everything else,
// returning the session positioned at CompanionSelect.
func (st *Store) Restart(userID int64) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	lang := ""
	if old, ok := st.sessions[userID]; ok {
		lang = old.Lang
	}
	s := &Session{State: StateCompanionSelect, Lang: lang}
	st.sessions[userID] = s
	return s
}
