// Package lobby tracks the game sessions served by one host process.
// Every session plays its own game; the lobby only admits, lists and stops them.
package lobby

import (
	"errors"
	"io"
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// ErrFull is returned by Join when the session limit is reached.
var ErrFull = errors.New("lobby is full")

// Session is one connected player.
type Session struct {
	ID      int
	User    string
	Started time.Time

	done      chan struct{}
	closeOnce sync.Once
}

// Done is closed when the host wants the session to end.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

func (s *Session) stop() {
	s.closeOnce.Do(func() { close(s.done) })
}

// Info is a read-only view of a session.
type Info struct {
	ID      int
	User    string
	Started time.Time
}

// Lobby admits sessions up to a limit.
type Lobby struct {
	mu       sync.RWMutex
	sessions map[int]*Session
	nextID   int
	limit    int
	closing  bool
	log      *log.Logger
}

// New creates a lobby admitting at most limit sessions; limit <= 0 means no
// limit. A nil logger discards output.
func New(limit int, logger *log.Logger) *Lobby {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Lobby{
		sessions: make(map[int]*Session),
		nextID:   1,
		limit:    limit,
		log:      logger,
	}
}

// Join registers a session for user.
func (l *Lobby) Join(user string, now time.Time) (*Session, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closing || (l.limit > 0 && len(l.sessions) >= l.limit) {
		l.log.Warn("session refused", "user", user, "sessions", len(l.sessions))
		return nil, ErrFull
	}
	s := &Session{
		ID:      l.nextID,
		User:    user,
		Started: now,
		done:    make(chan struct{}),
	}
	l.nextID++
	l.sessions[s.ID] = s
	l.log.Info("session joined", "id", s.ID, "user", user, "sessions", len(l.sessions))
	return s, nil
}

// Leave removes a session. Unknown IDs are ignored.
func (l *Lobby) Leave(id int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	s, ok := l.sessions[id]
	if !ok {
		return
	}
	s.stop()
	delete(l.sessions, id)
	l.log.Info("session left", "id", id, "user", s.User, "sessions", len(l.sessions))
}

// Count returns the number of active sessions.
func (l *Lobby) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.sessions)
}

// Sessions lists active sessions ordered by ID.
func (l *Lobby) Sessions() []Info {
	l.mu.RLock()
	infos := make([]Info, 0, len(l.sessions))
	for _, s := range l.sessions {
		infos = append(infos, Info{ID: s.ID, User: s.User, Started: s.Started})
	}
	l.mu.RUnlock()

	slices.SortFunc(infos, func(a, b Info) int { return a.ID - b.ID })
	return infos
}

// Shutdown refuses new sessions, signals every active one to stop and waits
// up to timeout for them to leave. It reports whether all of them did.
func (l *Lobby) Shutdown(timeout time.Duration) bool {
	l.mu.Lock()
	l.closing = true
	for _, s := range l.sessions {
		s.stop()
	}
	l.mu.Unlock()

	deadline := time.After(timeout)
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		if l.Count() == 0 {
			return true
		}
		select {
		case <-deadline:
			l.log.Warn("sessions still active at shutdown", "sessions", l.Count())
			return false
		case <-ticker.C:
		}
	}
}
