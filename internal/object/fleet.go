package object

import (
	"time"

	"github.com/tomz197/invaders/internal/physics"
)

// Fleet layout and movement tuning.
const (
	FleetColumns   = 8
	FleetRows      = 3
	FleetOriginX   = 100
	FleetOriginY   = 80
	FleetColumnGap = 60
	FleetRowGap    = 50

	StepSize   = 10 // Lateral movement per step
	DropAmount = 20 // Descent on a reversal step
	LeftBound  = 0
	RightBound = ScreenWidth

	// The step interval shrinks linearly from BaseStepFloor+StepScale with a
	// full fleet down to BaseStepFloor as the last units die.
	BaseStepFloor = 60 * time.Millisecond
	StepScale     = 740 * time.Millisecond

	FleetFrameInterval = 500 * time.Millisecond

	SquidPoints = 10
	CrabPoints  = 20
)

// StepIntervalFor returns the step cadence for a fleet with alive of total
// units remaining. A zero total is treated as one.
func StepIntervalFor(alive, total int) time.Duration {
	total = max(total, 1)
	alive = min(max(alive, 0), total)
	return BaseStepFloor + StepScale*time.Duration(alive)/time.Duration(total)
}

// Fleet is the marching grid of enemy units.
type Fleet struct {
	Units        []*Entity // Registration order; dead units are kept until the next wave
	Direction    int       // +1 right, -1 left
	StepInterval time.Duration
	sprites      *Registry
	total        int
	nextStep     time.Time
	anim         *Animator
}

// NewFleet creates a fleet and spawns its first wave.
func NewFleet(sprites *Registry, now time.Time) *Fleet {
	f := &Fleet{sprites: sprites}
	f.Spawn(now)
	return f
}

// Spawn replaces all units with a fresh wave and resets direction and
// cadence to their starting values.
func (f *Fleet) Spawn(now time.Time) {
	units := make([]*Entity, 0, FleetColumns*FleetRows)
	for row := 0; row < FleetRows; row++ {
		sprite, points := f.sprites.Squid, SquidPoints
		if row == 0 {
			sprite, points = f.sprites.Crab, CrabPoints
		}
		for col := 0; col < FleetColumns; col++ {
			x := FleetOriginX + col*FleetColumnGap
			// Centre narrower sprites in their column.
			x += (f.sprites.Crab.Frame(0).Width() - sprite.Frame(0).Width()) * PixelSize / 2
			y := FleetOriginY + row*FleetRowGap
			units = append(units, NewEntity(sprite, x, y, points))
		}
	}
	f.reset(units, now)
}

// reset installs units as a new wave.
func (f *Fleet) reset(units []*Entity, now time.Time) {
	f.Units = units
	f.total = len(units)
	f.Direction = 1
	f.StepInterval = StepIntervalFor(f.total, f.total)
	f.nextStep = now.Add(f.StepInterval)
	if f.anim == nil {
		f.anim = NewAnimator(FleetFrameInterval, now)
	} else {
		f.anim.Reset(now)
	}
}

// Total returns the number of units the wave started with.
func (f *Fleet) Total() int {
	return f.total
}

// Alive returns the number of live units.
func (f *Fleet) Alive() int {
	n := 0
	for _, u := range f.Units {
		if u.Alive {
			n++
		}
	}
	return n
}

// Cleared reports whether every unit of the wave is dead.
func (f *Fleet) Cleared() bool {
	return f.Alive() == 0
}

// NextStep returns when the next step is due.
func (f *Fleet) NextStep() time.Time {
	return f.nextStep
}

// Envelope returns the rectangle covering all live units.
func (f *Fleet) Envelope() (physics.Rect, bool) {
	var env physics.Rect
	found := false
	for _, u := range f.Units {
		if !u.Alive {
			continue
		}
		env = physics.Union(env, u.Bounds())
		found = true
	}
	return env, found
}

// Step advances the fleet if a step is due at now and reports whether any
// unit moved.
func (f *Fleet) Step(now time.Time) bool {
	if now.Before(f.nextStep) {
		return false
	}
	moved := f.advance()
	f.nextStep = now.Add(f.StepInterval)
	return moved
}

// advance performs one step: lateral, or a pure descent when the pre-move
// envelope would cross a bound. The cadence is recomputed afterwards.
func (f *Fleet) advance() bool {
	env, ok := f.Envelope()
	if !ok {
		return false
	}

	dx, dy := f.Direction*StepSize, 0
	switch {
	case f.Direction > 0 && env.Right()+StepSize >= RightBound,
		f.Direction < 0 && env.X-StepSize <= LeftBound:
		f.Direction = -f.Direction
		dx, dy = 0, DropAmount
	}

	alive := 0
	for _, u := range f.Units {
		if !u.Alive {
			continue
		}
		u.Move(dx, dy)
		alive++
	}

	f.StepInterval = StepIntervalFor(alive, f.total)
	return true
}

// Animate cycles the frames of live units on the fleet's shared timer.
func (f *Fleet) Animate(now time.Time) bool {
	return f.anim.AdvanceAll(f.Units, now)
}

// Shift moves the fleet's timers forward by d.
func (f *Fleet) Shift(d time.Duration) {
	f.nextStep = f.nextStep.Add(d)
	f.anim.Shift(d)
}

// BottomShooters returns the indices of live units that have no other live
// unit below them in an overlapping column band. Indices are ascending.
func (f *Fleet) BottomShooters() []int {
	var shooters []int
	for i, u := range f.Units {
		if !u.Alive {
			continue
		}
		ub := u.Bounds()
		blocked := false
		for j, o := range f.Units {
			if i == j || !o.Alive {
				continue
			}
			if o.Y > u.Y && physics.OverlapsX(ub, o.Bounds()) {
				blocked = true
				break
			}
		}
		if !blocked {
			shooters = append(shooters, i)
		}
	}
	return shooters
}
