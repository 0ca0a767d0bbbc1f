package highscore

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestFileStoreLoadDefaults(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content *string
		want    int
	}{
		{"missing file", nil, 0},
		{"plain integer", ptr("1200"), 1200},
		{"trailing newline", ptr("350\n"), 350},
		{"garbage", ptr("not a number"), 0},
		{"negative", ptr("-5"), 0},
		{"empty", ptr(""), 0},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "score"+string(rune('a'+i)))
			if tt.content != nil {
				if err := os.WriteFile(path, []byte(*tt.content), 0o644); err != nil {
					t.Fatal(err)
				}
			}
			if got := NewFileStore(path, nil).Load(); got != tt.want {
				t.Errorf("Load() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFileStoreSaveIsMonotonic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.txt")
	s := NewFileStore(path, nil)

	for _, score := range []int{100, 50, 300, 299} {
		if err := s.Save(score); err != nil {
			t.Fatalf("Save(%d): %v", score, err)
		}
	}
	if got := s.Load(); got != 300 {
		t.Errorf("Load() = %d, want 300", got)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "300\n" {
		t.Errorf("file content = %q, want %q", data, "300\n")
	}
}

func TestFileStoreSaveRejectsNegative(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "hs"), nil)
	if err := s.Save(-1); err == nil {
		t.Error("expected an error for a negative score")
	}
}

func TestFileStoreSaveFailure(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "missing-dir", "hs"), nil)
	if err := s.Save(10); err == nil {
		t.Error("expected an error writing into a missing directory")
	}
	if got := s.Load(); got != 0 {
		t.Errorf("Load() after failed save = %d, want 0", got)
	}
}

func TestFileStoreConcurrentSaves(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "hs"), nil)
	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			_ = s.Save(score * 10)
		}(i)
	}
	wg.Wait()
	if got := s.Load(); got != 200 {
		t.Errorf("Load() = %d, want 200", got)
	}
}

func TestMemoryStore(t *testing.T) {
	m := NewMemoryStore(40)
	if err := m.Save(30); err != nil {
		t.Fatal(err)
	}
	if m.Load() != 40 {
		t.Errorf("lower score replaced the record: %d", m.Load())
	}
	if err := m.Save(90); err != nil {
		t.Fatal(err)
	}
	if m.Load() != 90 || m.Saves() != 2 {
		t.Errorf("Load() = %d, Saves() = %d", m.Load(), m.Saves())
	}

	boom := errors.New("disk full")
	m.FailWith(boom)
	if err := m.Save(500); !errors.Is(err, boom) {
		t.Errorf("Save error = %v, want %v", err, boom)
	}
	if m.Load() != 90 {
		t.Errorf("failed save changed the record: %d", m.Load())
	}
}

func ptr(s string) *string { return &s }
