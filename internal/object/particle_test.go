package object

import (
	"math/rand"
	"testing"
	"time"

	"github.com/tomz197/invaders/internal/physics"
)

func TestExplodeAndExpire(t *testing.T) {
	now := time.Unix(0, 0)
	rng := rand.New(rand.NewSource(7))
	r := physics.Rect{X: 100, Y: 100, W: 40, H: 30}

	ps := Explode(nil, r, ExplosionCount, now, rng)
	if len(ps) != ExplosionCount {
		t.Fatalf("got %d particles, want %d", len(ps), ExplosionCount)
	}
	for _, p := range ps {
		if p.X != 120 || p.Y != 115 {
			t.Fatalf("particle starts at (%v, %v), want the centre", p.X, p.Y)
		}
	}

	ps = UpdateParticles(ps, now.Add(time.Millisecond))
	if len(ps) != ExplosionCount {
		t.Errorf("particles expired early: %d left", len(ps))
	}
	moved := false
	for _, p := range ps {
		if p.X != 120 || p.Y != 115 {
			moved = true
		}
	}
	if !moved {
		t.Error("no particle moved")
	}

	ps = UpdateParticles(ps, now.Add(ExplosionLife))
	if len(ps) != 0 {
		t.Errorf("%d particles outlived their lifetime", len(ps))
	}
}

func TestShiftParticles(t *testing.T) {
	now := time.Unix(0, 0)
	ps := []*Particle{NewParticle(0, 0, 1, 1, now.Add(time.Millisecond))}
	ShiftParticles(ps, time.Second)
	if ps = UpdateParticles(ps, now.Add(500*time.Millisecond)); len(ps) != 1 {
		t.Error("shifted particle expired during the shift")
	}
}
