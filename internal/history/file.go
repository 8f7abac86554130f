package history

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"sync"
)

// FileStore keeps the whole history as one JSON object mapping user ID
// (decimal string) to an ordered list of entries. Every append rewrites
// the file through a temp-file rename so a crash mid-write cannot leave
// a truncated store. The mutex serializes read-modify-write cycles
// across users.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure dir: %w", err)
	}
	return &FileStore{path: path}, nil
}

func (s *FileStore) Append(userID int64, e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.loadUnlocked()
	key := strconv.FormatInt(userID, 10)
	all[key] = append(all[key], e)
	return s.saveUnlocked(all)
}

func (s *FileStore) Recent(userID int64, n int) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.loadUnlocked()[strconv.FormatInt(userID, 10)]
	if n <= 0 || len(entries) == 0 {
		return nil
	}
	if len(entries) > n {
		entries = entries[len(entries)-n:]
	}
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// All returns the full store contents. Used by the digest reporter.
func (s *FileStore) All() map[string][]Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadUnlocked()
}

func (s *FileStore) loadUnlocked() map[string][]Entry {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("history: read %s: %v", s.path, err)
		}
		return map[string][]Entry{}
	}
	var all map[string][]Entry
	if err := json.Unmarshal(data, &all); err != nil {
		log.Printf("history: decode %s: %v", s.path, err)
		return map[string][]Entry{}
	}
	if all == nil {
		all = map[string][]Entry{}
	}
	return all
}

func (s *FileStore) saveUnlocked(all map[string][]Entry) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".history-*.json")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(all); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("encode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("close temp: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("replace: %w", err)
	}
	return nil
}
