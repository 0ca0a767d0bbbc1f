package lobby

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func TestJoinLeave(t *testing.T) {
	l := New(0, nil)
	now := time.Unix(0, 0)

	a, err := l.Join("alice", now)
	if err != nil {
		t.Fatal(err)
	}
	b, err := l.Join("bob", now)
	if err != nil {
		t.Fatal(err)
	}
	if a.ID == b.ID {
		t.Error("session IDs must be unique")
	}

	infos := l.Sessions()
	if len(infos) != 2 || infos[0].User != "alice" || infos[1].User != "bob" {
		t.Errorf("Sessions() = %+v", infos)
	}

	l.Leave(a.ID)
	l.Leave(a.ID) // Already gone
	if l.Count() != 1 {
		t.Errorf("Count() = %d, want 1", l.Count())
	}
	select {
	case <-a.Done():
	default:
		t.Error("leaving should stop the session")
	}
}

func TestJoinLimit(t *testing.T) {
	l := New(1, nil)
	now := time.Unix(0, 0)
	s, err := l.Join("alice", now)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := l.Join("bob", now); !errors.Is(err, ErrFull) {
		t.Errorf("Join() error = %v, want ErrFull", err)
	}
	l.Leave(s.ID)
	if _, err := l.Join("bob", now); err != nil {
		t.Errorf("Join() after leave: %v", err)
	}
}

func TestShutdownSignalsAndWaits(t *testing.T) {
	l := New(0, nil)
	var wg sync.WaitGroup
	for _, user := range []string{"alice", "bob", "carol"} {
		s, err := l.Join(user, time.Now())
		if err != nil {
			t.Fatal(err)
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-s.Done()
			l.Leave(s.ID)
		}()
	}

	if !l.Shutdown(time.Second) {
		t.Fatal("sessions did not leave in time")
	}
	wg.Wait()
	if _, err := l.Join("late", time.Now()); !errors.Is(err, ErrFull) {
		t.Errorf("Join() during shutdown error = %v, want ErrFull", err)
	}
}

func TestShutdownTimeout(t *testing.T) {
	l := New(0, nil)
	if _, err := l.Join("stuck", time.Now()); err != nil {
		t.Fatal(err)
	}
	if l.Shutdown(60 * time.Millisecond) {
		t.Error("Shutdown reported success with a session still active")
	}
}
