package object

import (
	"testing"
	"time"
)

func newTestFleet(t *testing.T) (*Fleet, time.Time) {
	t.Helper()
	start := time.Unix(1000, 0)
	return NewFleet(Sprites(), start), start
}

func TestFleetSpawn(t *testing.T) {
	f, start := newTestFleet(t)

	if f.Total() != FleetRows*FleetColumns || f.Alive() != 24 {
		t.Fatalf("total=%d alive=%d, want 24", f.Total(), f.Alive())
	}
	if f.Direction != 1 {
		t.Errorf("Direction = %d, want 1", f.Direction)
	}
	if f.StepInterval != BaseStepFloor+StepScale {
		t.Errorf("StepInterval = %v, want the slow cadence", f.StepInterval)
	}
	if !f.NextStep().Equal(start.Add(f.StepInterval)) {
		t.Errorf("NextStep = %v", f.NextStep())
	}
	for i, u := range f.Units {
		want := SquidPoints
		if i < FleetColumns {
			want = CrabPoints
		}
		if u.Points != want {
			t.Errorf("unit %d points = %d, want %d", i, u.Points, want)
		}
	}
}

func TestFleetStepWaitsForInterval(t *testing.T) {
	f, start := newTestFleet(t)
	x := f.Units[0].X

	if f.Step(start.Add(f.StepInterval - time.Millisecond)) {
		t.Error("stepped before the interval elapsed")
	}
	if !f.Step(start.Add(f.StepInterval)) {
		t.Fatal("expected a step")
	}
	if got := f.Units[0].X; got != x+StepSize {
		t.Errorf("X = %d, want %d", got, x+StepSize)
	}
}

func TestFleetReversalIsPureDescent(t *testing.T) {
	f, start := newTestFleet(t)
	env, _ := f.Envelope()
	shift := RightBound - env.Right()
	for _, u := range f.Units {
		u.Move(shift, 0)
	}

	type pos struct{ x, y int }
	before := make([]pos, len(f.Units))
	for i, u := range f.Units {
		before[i] = pos{u.X, u.Y}
	}

	if !f.Step(start.Add(f.StepInterval)) {
		t.Fatal("expected a step")
	}
	if f.Direction != -1 {
		t.Errorf("Direction = %d, want -1", f.Direction)
	}
	for i, u := range f.Units {
		if u.X != before[i].x {
			t.Errorf("unit %d moved horizontally on reversal: %d -> %d", i, before[i].x, u.X)
		}
		if u.Y != before[i].y+DropAmount {
			t.Errorf("unit %d Y = %d, want %d", i, u.Y, before[i].y+DropAmount)
		}
	}
}

func TestFleetReversesAtLeftBound(t *testing.T) {
	f, start := newTestFleet(t)
	f.Direction = -1
	env, _ := f.Envelope()
	for _, u := range f.Units {
		u.Move(LeftBound+StepSize-env.X, 0)
	}
	f.Step(start.Add(f.StepInterval))
	if f.Direction != 1 {
		t.Errorf("Direction = %d, want 1", f.Direction)
	}
}

func TestStepIntervalShrinksAsUnitsDie(t *testing.T) {
	f, start := newTestFleet(t)
	now := start
	prev := f.StepInterval
	for i := range f.Units {
		f.Units[i].Kill()
		now = now.Add(f.StepInterval)
		f.Step(now)
		if f.Alive() > 0 && f.StepInterval > prev {
			t.Fatalf("interval grew from %v to %v with %d alive", prev, f.StepInterval, f.Alive())
		}
		prev = f.StepInterval
	}
	if StepIntervalFor(1, 24) >= StepIntervalFor(24, 24) {
		t.Error("lone survivor should be faster than a full fleet")
	}
	if StepIntervalFor(0, 0) != BaseStepFloor {
		t.Errorf("StepIntervalFor(0, 0) = %v", StepIntervalFor(0, 0))
	}
}

func TestFleetEmptyIsNoop(t *testing.T) {
	f, start := newTestFleet(t)
	for _, u := range f.Units {
		u.Kill()
	}
	if _, ok := f.Envelope(); ok {
		t.Error("empty fleet has an envelope")
	}
	if f.Step(start.Add(time.Hour)) {
		t.Error("empty fleet moved")
	}
	if len(f.BottomShooters()) != 0 {
		t.Error("empty fleet has shooters")
	}
	if !f.Cleared() {
		t.Error("expected Cleared")
	}
}

func TestBottomShooters(t *testing.T) {
	f, _ := newTestFleet(t)

	shooters := f.BottomShooters()
	if len(shooters) != FleetColumns {
		t.Fatalf("got %d shooters, want %d", len(shooters), FleetColumns)
	}
	for _, i := range shooters {
		if i < (FleetRows-1)*FleetColumns {
			t.Errorf("unit %d is not in the bottom row", i)
		}
	}

	// Clearing column 0 below the top row exposes its crab.
	f.Units[FleetColumns].Kill()
	f.Units[2*FleetColumns].Kill()
	shooters = f.BottomShooters()
	if shooters[0] != 0 {
		t.Errorf("first shooter = %d, want 0", shooters[0])
	}
}

func TestFleetRespawnResets(t *testing.T) {
	f, start := newTestFleet(t)
	f.Direction = -1
	for _, u := range f.Units {
		u.Kill()
	}
	later := start.Add(time.Minute)
	f.Spawn(later)
	if f.Alive() != 24 || f.Direction != 1 || f.StepInterval != BaseStepFloor+StepScale {
		t.Errorf("respawned fleet: alive=%d dir=%d interval=%v", f.Alive(), f.Direction, f.StepInterval)
	}
	if !f.NextStep().Equal(later.Add(f.StepInterval)) {
		t.Error("next step not rescheduled from the spawn time")
	}
}
