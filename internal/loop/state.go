package loop

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/invaders/internal/highscore"
	"github.com/tomz197/invaders/internal/input"
	"github.com/tomz197/invaders/internal/object"
)

// GameState represents the current game phase.
type GameState int

const (
	GameStateTitle   GameState = iota // Title screen
	GameStatePlaying                  // Active gameplay
	GameStatePause                    // Gameplay frozen
	GameStateLost                     // Lives exhausted, show final score
)

// String returns the state name for logs.
func (g GameState) String() string {
	switch g {
	case GameStateTitle:
		return "title"
	case GameStatePlaying:
		return "playing"
	case GameStatePause:
		return "pause"
	case GameStateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Options configures a State. Zero values select sensible defaults.
type Options struct {
	Store      highscore.Store   // Defaults to an in-memory store
	Logger     *log.Logger       // Defaults to a discarding logger
	Rand       *rand.Rand        // Defaults to a time-seeded source
	FirePolicy object.FirePolicy // Defaults to object.SingleShot
	Screen     object.Screen     // Defaults to object.DefaultScreen
	Sprites    *object.Registry  // Defaults to object.Sprites
}

// State is the whole simulation: one owner, advanced one frame at a time by
// Step. Nothing in it is shared with other games.
type State struct {
	GameState GameState
	Running   bool

	Screen      object.Screen
	Player      *object.Player
	Fleet       *object.Fleet
	Bonus       *object.Bonus
	PlayerShots []*object.Projectile
	EnemyShots  []*object.Projectile
	Debris      []*object.Particle
	FirePolicy  object.FirePolicy

	Score     int
	HighScore int // Best score seen, including the current game
	Wave      int

	persisted     int // Value last confirmed in the store
	newRecord     bool
	nextEnemyShot time.Time
	pausedAt      time.Time

	events  []Event
	sprites *object.Registry
	store   highscore.Store
	rng     *rand.Rand
	log     *log.Logger
}

// NewState creates a game sitting on the title screen.
func NewState(opts Options, now time.Time) *State {
	if opts.Store == nil {
		opts.Store = highscore.NewMemoryStore(0)
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(now.UnixNano()))
	}
	if opts.FirePolicy == nil {
		opts.FirePolicy = object.SingleShot{}
	}
	if opts.Screen == (object.Screen{}) {
		opts.Screen = object.DefaultScreen()
	}
	if opts.Sprites == nil {
		opts.Sprites = object.Sprites()
	}

	high := opts.Store.Load()
	s := &State{
		GameState:  GameStateTitle,
		Running:    true,
		Screen:     opts.Screen,
		FirePolicy: opts.FirePolicy,
		HighScore:  high,
		persisted:  high,
		sprites:    opts.Sprites,
		store:      opts.Store,
		rng:        opts.Rand,
		log:        opts.Logger,
	}
	s.Player = object.NewPlayer(s.sprites.Ship, s.Screen)
	s.Fleet = object.NewFleet(s.sprites, now)
	s.Bonus = object.NewBonus(s.sprites, s.Screen, now)
	s.log.Debug("state created", "highScore", high)
	return s
}

// Events returns what happened during the last Step. The slice is reused by
// the next Step.
func (s *State) Events() []Event {
	return s.events
}

// NewRecord reports whether the last finished game set a new high score.
func (s *State) NewRecord() bool {
	return s.newRecord
}

// Step runs one frame: it dispatches the frame's intents according to the
// current state and, while playing, advances the simulation.
func (s *State) Step(now time.Time, in input.Input) {
	s.events = s.events[:0]

	if in.Quit {
		s.quit()
		return
	}

	switch s.GameState {
	case GameStateTitle:
		if in.Confirm {
			s.fire(TriggerConfirm, now)
		}
	case GameStatePlaying:
		if in.Pause {
			s.fire(TriggerPause, now)
			return
		}
		s.updatePlaying(now, in)
	case GameStatePause:
		switch {
		case in.Pause:
			s.fire(TriggerPause, now)
		case in.Confirm:
			s.fire(TriggerConfirm, now)
		}
	case GameStateLost:
		if in.Confirm {
			s.fire(TriggerConfirm, now)
		}
	}
}

// emit records an event for this frame.
func (s *State) emit(t EventType, score int) {
	s.events = append(s.events, Event{Type: t, Score: score})
}

// quit stops the game, saving an unsaved record first.
func (s *State) quit() {
	if s.GameState == GameStatePlaying || s.GameState == GameStatePause {
		s.persistHighScore()
	}
	s.Running = false
	s.log.Debug("quit", "state", s.GameState)
}

// persistHighScore saves the current score if it beats the stored record.
// The store is re-read first, since other sessions may share it. Failures are
// logged and otherwise ignored.
func (s *State) persistHighScore() bool {
	s.persisted = max(s.persisted, s.store.Load())
	s.HighScore = max(s.HighScore, s.persisted)
	if s.Score <= s.persisted {
		return false
	}
	if err := s.store.Save(s.Score); err != nil {
		s.log.Warn("saving high score failed", "score", s.Score, "err", err)
		return true
	}
	s.persisted = s.Score
	s.log.Info("new high score", "score", s.Score)
	return true
}
