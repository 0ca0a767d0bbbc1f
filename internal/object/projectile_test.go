package object

import (
	"testing"
	"time"
)

func TestProjectileLeavesScreen(t *testing.T) {
	screen := DefaultScreen()

	up := NewPlayerShot(100, 20)
	for i := 0; i < 10 && up.Alive; i++ {
		up.Update(screen)
	}
	if up.Alive {
		t.Errorf("player shot still alive at y=%d", up.Y)
	}

	down := NewEnemyShot(100, screen.Height-ShotHeight)
	down.Update(screen)
	if !down.Alive {
		t.Error("enemy shot died while still on screen")
	}
	for i := 0; i < 10 && down.Alive; i++ {
		down.Update(screen)
	}
	if down.Alive {
		t.Errorf("enemy shot still alive at y=%d", down.Y)
	}
}

func TestProjectileSpawnPosition(t *testing.T) {
	p := NewPlayerShot(50, 550)
	b := p.Bounds()
	if b.X+b.W/2 != 50 || b.Bottom() != 550 {
		t.Errorf("player shot bounds = %+v", b)
	}
	e := NewEnemyShot(50, 100)
	if e.Y != 100 || e.VY <= 0 {
		t.Errorf("enemy shot = %+v", e)
	}
}

func TestCompact(t *testing.T) {
	a, b, c := NewPlayerShot(0, 100), NewPlayerShot(0, 100), NewPlayerShot(0, 100)
	b.MarkDestroyed()
	shots := Compact([]*Projectile{a, b, c})
	if len(shots) != 2 || shots[0] != a || shots[1] != c {
		t.Errorf("Compact kept %v", shots)
	}
	if CountAlive(shots) != 2 {
		t.Errorf("CountAlive = %d, want 2", CountAlive(shots))
	}
}

func TestSingleShotBlocksUntilFirstDies(t *testing.T) {
	now := time.Unix(0, 0)
	var policy FirePolicy = SingleShot{}
	var shots []*Projectile

	if !policy.CanFire(now, shots) {
		t.Fatal("first shot should be allowed")
	}
	first := NewPlayerShot(100, 550)
	shots = append(shots, first)
	policy.Fired(now)

	if policy.CanFire(now.Add(time.Second), shots) {
		t.Error("second shot allowed while the first is alive")
	}
	first.MarkDestroyed()
	if !policy.CanFire(now.Add(time.Second), shots) {
		t.Error("shot refused after the first died")
	}
}

func TestCooldown(t *testing.T) {
	now := time.Unix(0, 0)
	c := NewCooldown(250 * time.Millisecond)
	live := []*Projectile{NewPlayerShot(0, 100)}

	if !c.CanFire(now, live) {
		t.Fatal("first shot should be allowed")
	}
	c.Fired(now)
	if c.CanFire(now.Add(200*time.Millisecond), nil) {
		t.Error("fired within the cooldown")
	}
	if !c.CanFire(now.Add(250*time.Millisecond), live) {
		t.Error("cooldown ignores live shots once elapsed")
	}

	c.Shift(time.Second)
	if c.CanFire(now.Add(time.Second), nil) {
		t.Error("shifted cooldown allowed an early shot")
	}
	c.Reset()
	if !c.CanFire(now, nil) {
		t.Error("reset cooldown should allow firing")
	}
}
