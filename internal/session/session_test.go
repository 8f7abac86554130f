package session

import "testing"

func TestStoreGetCreatesOnce(t *testing.T) {
	st := NewStore()
	a := st.Get(1, StateCompanionSelect)
	a.Companions = "together"

	b := st.Get(1, StateLanguageSelect)
	if b.Companions != "together" {
		t.Fatalf("second Get created a new session: %+v", b)
	}
	if b.State != StateCompanionSelect {
		t.Fatalf("initial state must not overwrite an existing session")
	}
}

func TestStorePeekDoesNotCreate(t *testing.T) {
	st := NewStore()
	if st.Peek(5) != nil {
		t.Fatalf("peek created a session")
	}
	st.Get(5, StateCompanionSelect)
	if st.Peek(5) == nil {
		t.Fatalf("peek missed an existing session")
	}
}

func TestStoreResetDiscards(t *testing.T) {
	st := NewStore()
	st.Get(1, StateGenreSelect)
	st.Reset(1)
	if st.Peek(1) != nil {
		t.Fatalf("reset did not discard session")
	}
}

func TestStoreRestartKeepsLanguage(t *testing.T) {
	st := NewStore()
	s := st.Get(1, StateResultLoop)
	s.Lang = "en"
	s.Companions = "alone"
	s.MinRating = 7

	fresh := st.Restart(1)
	if fresh.Lang != "en" {
		t.Fatalf("restart dropped the language: %+v", fresh)
	}
	if fresh.State != StateCompanionSelect {
		t.Fatalf("restart should enter companion select, got %v", fresh.State)
	}
	if fresh.Companions != "" || fresh.MinRating != 0 || fresh.LastMovie != nil {
		t.Fatalf("restart kept stale fields: %+v", fresh)
	}
}
