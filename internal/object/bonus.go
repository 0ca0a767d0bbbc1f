package object

import "time"

// Bonus unit tuning.
const (
	BonusPoints        = 175
	BonusCooldown      = 15 * time.Second // Dormant time between trips
	BonusStepInterval  = 20 * time.Millisecond
	BonusSpeed         = 4 // Pixels per step
	BonusY             = 30
	BonusFrameInterval = 150 * time.Millisecond
)

// Bonus is the high-value unit that crosses the top of the screen on its own
// timer, independently of the fleet.
type Bonus struct {
	Unit         *Entity
	Cooldown     time.Duration
	StepInterval time.Duration
	screen       Screen
	active       bool
	heading      int
	lastTrip     time.Time
	nextStep     time.Time
	anim         *Animator
}

// NewBonus creates a dormant bonus unit whose first trip starts one cooldown
// after now.
func NewBonus(sprites *Registry, screen Screen, now time.Time) *Bonus {
	b := &Bonus{
		Unit:         NewEntity(sprites.Saucer, 0, BonusY, BonusPoints),
		Cooldown:     BonusCooldown,
		StepInterval: BonusStepInterval,
		screen:       screen,
		anim:         NewAnimator(BonusFrameInterval, now),
	}
	b.Reset(now)
	return b
}

// Reset makes the unit dormant and restarts the cooldown at now.
// The first trip after a reset enters from the left.
func (b *Bonus) Reset(now time.Time) {
	b.active = false
	b.heading = -1
	b.lastTrip = now
	b.Unit.X = -b.Unit.Bounds().W
	b.Unit.Y = BonusY
	b.Unit.Alive = true
	b.Unit.SetFrame(0)
}

// Active reports whether the unit is currently crossing the screen.
func (b *Bonus) Active() bool {
	return b.active
}

// Heading returns +1 when moving right and -1 when moving left.
func (b *Bonus) Heading() int {
	return b.heading
}

// Target returns the unit if it can currently be hit, nil otherwise.
func (b *Bonus) Target() *Entity {
	if b.active && b.Unit.Alive {
		return b.Unit
	}
	return nil
}

// Step launches, moves, or retires the unit as its timers dictate and reports
// whether its position changed.
func (b *Bonus) Step(now time.Time) bool {
	if !b.active {
		if now.Sub(b.lastTrip) < b.Cooldown {
			return false
		}
		b.launch(now)
		return true
	}

	if !b.Unit.Alive {
		// Destroyed during the trip; start the cooldown from now.
		b.retire(now)
		return false
	}

	if now.Before(b.nextStep) {
		return false
	}
	b.Unit.Move(b.heading*BonusSpeed, 0)
	b.nextStep = now.Add(b.StepInterval)

	if !b.screen.Contains(b.Unit.Bounds()) {
		b.retire(now)
	}
	return true
}

// Animate cycles the unit's frames while it is in flight.
func (b *Bonus) Animate(now time.Time) bool {
	if !b.active {
		return false
	}
	return b.anim.Advance(b.Unit, now)
}

// Shift moves every timer forward by d.
func (b *Bonus) Shift(d time.Duration) {
	b.lastTrip = b.lastTrip.Add(d)
	b.nextStep = b.nextStep.Add(d)
	b.anim.Shift(d)
}

// launch places the unit just off-screen and starts a trip, alternating the
// entry side each time.
func (b *Bonus) launch(now time.Time) {
	b.heading = -b.heading
	w := b.Unit.Bounds().W
	if b.heading > 0 {
		b.Unit.X = -w
	} else {
		b.Unit.X = b.screen.Width
	}
	b.Unit.Y = BonusY
	b.Unit.Alive = true
	b.Unit.SetFrame(0)
	b.active = true
	b.nextStep = now.Add(b.StepInterval)
	b.anim.Reset(now)
}

// retire ends the current trip.
func (b *Bonus) retire(now time.Time) {
	b.active = false
	b.lastTrip = now
}
