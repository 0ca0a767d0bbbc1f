// Package highscore persists the best score as a single integer.
package highscore

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// Store loads and saves the high score.
type Store interface {
	// Load returns the saved high score, or 0 if none can be read.
	Load() int
	// Save records score if it beats the saved value.
	Save(score int) error
}

// FileStore keeps the score as decimal text in a single file.
// It is safe for use by several game sessions in one process.
type FileStore struct {
	path string
	log  *log.Logger
	mu   sync.Mutex
}

// NewFileStore creates a store backed by path. A nil logger discards output.
func NewFileStore(path string, logger *log.Logger) *FileStore {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &FileStore{path: path, log: logger}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load implements Store. Missing or unreadable files yield 0.
func (s *FileStore) Load() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *FileStore) load() int {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.log.Debug("high score unreadable", "path", s.path, "err", err)
		}
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || n < 0 {
		s.log.Debug("high score corrupt", "path", s.path, "content", strings.TrimSpace(string(data)))
		return 0
	}
	return n
}

// Save implements Store. The file is only rewritten when score is higher than
// what it currently holds, so concurrent sessions cannot lower the record.
func (s *FileStore) Save(score int) error {
	if score < 0 {
		return fmt.Errorf("save high score: negative score %d", score)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if score <= s.load() {
		return nil
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".highscore-*")
	if err != nil {
		return fmt.Errorf("save high score: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.WriteString(strconv.Itoa(score) + "\n"); err != nil {
		tmp.Close()
		return fmt.Errorf("save high score: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save high score: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("save high score: %w", err)
	}
	s.log.Debug("high score saved", "path", s.path, "score", score)
	return nil
}

// MemoryStore is an in-process Store, used when nothing should touch disk.
type MemoryStore struct {
	mu    sync.Mutex
	score int
	saves int
	err   error
}

// NewMemoryStore creates a store holding score.
func NewMemoryStore(score int) *MemoryStore {
	return &MemoryStore{score: max(score, 0)}
}

// FailWith makes every following Save return err without storing anything.
func (m *MemoryStore) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Load implements Store.
func (m *MemoryStore) Load() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.score
}

// Save implements Store.
func (m *MemoryStore) Save(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.saves++
	if score > m.score {
		m.score = score
	}
	return nil
}

// Saves returns how many successful Save calls were made.
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
