package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/mbolis/quick-form/log"
	"github.com/mbolis/quick-form/model"
)

// CorruptPolicy decides what Append does with an existing store file whose
// content does not parse as a submission list.
type CorruptPolicy int

const (
	// DiscardCorrupt logs a warning and starts over from an empty list,
	// favoring acceptance of the new submission over preserving content
	// that is already unreadable.
	DiscardCorrupt CorruptPolicy = iota
	// FailOnCorrupt rejects the append and leaves the file untouched.
	FailOnCorrupt
)

// Store owns one answers file. All access goes through its mutex, so opening
// a single Store per path (as main does) serializes every append in the
// process: two concurrent submissions end up in the file in some order, never
// interleaved.
type Store struct {
	mu        sync.Mutex
	path      string
	onCorrupt CorruptPolicy
}

func New(path string, onCorrupt CorruptPolicy) *Store {
	return &Store{path: path, onCorrupt: onCorrupt}
}

func (s *Store) Path() string {
	return s.path
}

// Append adds one submission to the end of the stored list. The whole
// read-modify-write runs under the store lock and the file is replaced
// atomically, so a failed write leaves the previous content intact.
func (s *Store) Append(sub model.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.readLocked()
	if err != nil {
		return err
	}
	entries = append(entries, sub)

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("store.encode: %w", err)
	}
	if err := replaceFile(s.path, data); err != nil {
		return fmt.Errorf("store.write: %w", err)
	}
	return nil
}

// All returns every stored submission in append order.
func (s *Store) All() ([]model.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readLocked()
}

func (s *Store) readLocked() ([]model.Submission, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []model.Submission{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store.read: %w", err)
	}

	var entries []model.Submission
	if err := json.Unmarshal(raw, &entries); err != nil {
		if s.onCorrupt == FailOnCorrupt {
			return nil, fmt.Errorf("store.parse: %w", err)
		}
		log.Warnf("store: discarding unreadable content of %s: %s", s.path, err)
		return []model.Submission{}, nil
	}
	return entries, nil
}

// replaceFile writes data to a temp file in the target's directory, then
// renames it over the target. Rename is atomic on POSIX filesystems, so
// readers see either the old content or the new, never a partial write.
func replaceFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}

	_, err = tmp.Write(data)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(tmp.Name(), path)
	}
	if err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}
