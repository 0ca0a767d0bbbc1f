package loop

// EventType identifies something that happened during a frame.
type EventType int

const (
	EventShotFired      EventType = iota // Player fired
	EventEnemyShot                       // A fleet unit fired
	EventUnitDestroyed                   // Fleet unit destroyed; Score holds the points
	EventBonusLaunched                   // Bonus unit started a trip
	EventBonusDestroyed                  // Bonus unit destroyed; Score holds the points
	EventPlayerHit                       // Player lost a life
	EventWaveCleared                     // Whole fleet destroyed, new wave spawned
	EventGameLost                        // Lives exhausted
	EventNewHighScore                    // A game ended with a new record
)

// Event is one gameplay occurrence, reported to frontends after each frame.
type Event struct {
	Type  EventType
	Score int
}

// Listener receives the events produced by a frame, e.g. to play sounds.
type Listener interface {
	Handle(events []Event)
}

// String returns a short name for logs.
func (t EventType) String() string {
	switch t {
	case EventShotFired:
		return "shot"
	case EventEnemyShot:
		return "enemy-shot"
	case EventUnitDestroyed:
		return "unit-destroyed"
	case EventBonusLaunched:
		return "bonus-launched"
	case EventBonusDestroyed:
		return "bonus-destroyed"
	case EventPlayerHit:
		return "player-hit"
	case EventWaveCleared:
		return "wave-cleared"
	case EventGameLost:
		return "game-lost"
	case EventNewHighScore:
		return "new-high-score"
	default:
		return "unknown"
	}
}
