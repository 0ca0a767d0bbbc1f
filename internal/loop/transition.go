package loop

import (
	"time"

	"github.com/tomz197/invaders/internal/object"
)

// Trigger is a condition that can move the game to another state.
type Trigger int

const (
	TriggerConfirm        Trigger = iota // Confirm intent
	TriggerPause                         // Pause toggle intent
	TriggerLivesExhausted                // Player has no lives left
)

// next is the transition table. It returns the target state and whether the
// trigger applies in state from at all.
func next(from GameState, t Trigger) (GameState, bool) {
	switch from {
	case GameStateTitle:
		if t == TriggerConfirm {
			return GameStatePlaying, true
		}
	case GameStatePlaying:
		switch t {
		case TriggerPause:
			return GameStatePause, true
		case TriggerLivesExhausted:
			return GameStateLost, true
		}
	case GameStatePause:
		switch t {
		case TriggerPause:
			return GameStatePlaying, true
		case TriggerConfirm:
			return GameStateTitle, true
		}
	case GameStateLost:
		if t == TriggerConfirm {
			return GameStateTitle, true
		}
	}
	return from, false
}

// fire applies trigger t and runs the entry action of the new state.
// It reports whether a transition happened.
func (s *State) fire(t Trigger, now time.Time) bool {
	to, ok := next(s.GameState, t)
	if !ok {
		return false
	}
	from := s.GameState
	s.GameState = to
	s.enter(from, to, now)
	s.log.Debug("state transition", "from", from, "to", to)
	return true
}

// enter performs the side effects of arriving in state to.
func (s *State) enter(from, to GameState, now time.Time) {
	switch to {
	case GameStatePlaying:
		if from == GameStatePause {
			s.resume(now)
			return
		}
		s.newGame(now)
	case GameStatePause:
		s.pausedAt = now
	case GameStateLost:
		s.endGame()
		s.emit(EventGameLost, s.Score)
	case GameStateTitle:
		if from == GameStatePause {
			s.endGame()
		}
	}
}

// newGame resets everything a fresh game starts with.
func (s *State) newGame(now time.Time) {
	s.Score = 0
	s.Wave = 1
	s.newRecord = false
	s.Player.Reset(s.Screen)
	s.Fleet.Spawn(now)
	s.Bonus.Reset(now)
	s.PlayerShots = s.PlayerShots[:0]
	s.EnemyShots = s.EnemyShots[:0]
	for _, p := range s.Debris {
		p.Release()
	}
	clear(s.Debris)
	s.Debris = s.Debris[:0]
	s.FirePolicy.Reset()
	s.nextEnemyShot = now.Add(EnemyFireInterval)
	s.log.Info("game started", "highScore", s.HighScore)
}

// resume shifts every pending timer by the time spent paused.
func (s *State) resume(now time.Time) {
	paused := now.Sub(s.pausedAt)
	if paused <= 0 {
		return
	}
	s.Fleet.Shift(paused)
	s.Bonus.Shift(paused)
	s.FirePolicy.Shift(paused)
	s.nextEnemyShot = s.nextEnemyShot.Add(paused)
	object.ShiftParticles(s.Debris, paused)
}

// endGame records the outcome of the game that just finished.
func (s *State) endGame() {
	s.HighScore = max(s.HighScore, s.Score)
	if s.persistHighScore() {
		s.newRecord = true
		s.emit(EventNewHighScore, s.Score)
	}
	s.log.Info("game over", "score", s.Score, "wave", s.Wave, "record", s.newRecord)
}
