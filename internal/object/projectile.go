package object

import (
	"time"

	"github.com/tomz197/invaders/internal/physics"
)

// Projectile sizes and speeds (pixels per tick). Negative travels up.
const (
	ShotWidth       = 4
	ShotHeight      = 12
	PlayerShotSpeed = -10
	EnemyShotSpeed  = 6
)

// Projectile is a shot travelling straight up or down.
type Projectile struct {
	X, Y  int // Top-left corner
	W, H  int
	VY    int // Signed vertical speed per tick
	Alive bool
}

// NewPlayerShot creates an upward shot whose bottom centre is at (cx, y).
func NewPlayerShot(cx, y int) *Projectile {
	return &Projectile{
		X:     cx - ShotWidth/2,
		Y:     y - ShotHeight,
		W:     ShotWidth,
		H:     ShotHeight,
		VY:    PlayerShotSpeed,
		Alive: true,
	}
}

// NewEnemyShot creates a downward shot whose top centre is at (cx, y).
func NewEnemyShot(cx, y int) *Projectile {
	return &Projectile{
		X:     cx - ShotWidth/2,
		Y:     y,
		W:     ShotWidth,
		H:     ShotHeight,
		VY:    EnemyShotSpeed,
		Alive: true,
	}
}

// Update moves the projectile one tick and kills it once it has fully left
// the screen in its direction of travel.
func (p *Projectile) Update(screen Screen) {
	if !p.Alive {
		return
	}
	p.Y += p.VY
	switch {
	case p.VY < 0 && p.Y+p.H <= 0:
		p.Alive = false
	case p.VY > 0 && p.Y >= screen.Height:
		p.Alive = false
	}
}

// Bounds returns the collision box.
func (p *Projectile) Bounds() physics.Rect {
	return physics.Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// MarkDestroyed implements Destructible.
func (p *Projectile) MarkDestroyed() {
	p.Alive = false
}

// IsDestroyed implements Destructible.
func (p *Projectile) IsDestroyed() bool {
	return !p.Alive
}

// CountAlive returns how many projectiles in ps are still alive.
func CountAlive(ps []*Projectile) int {
	n := 0
	for _, p := range ps {
		if p.Alive {
			n++
		}
	}
	return n
}

// Compact drops dead projectiles, reusing the backing array.
func Compact(ps []*Projectile) []*Projectile {
	kept := ps[:0]
	for _, p := range ps {
		if p.Alive {
			kept = append(kept, p)
		}
	}
	clear(ps[len(kept):])
	return kept
}

// FirePolicy decides when the player may fire.
type FirePolicy interface {
	// CanFire reports whether a new shot is allowed given the player's shots.
	CanFire(now time.Time, shots []*Projectile) bool
	// Fired records that a shot was spawned at now.
	Fired(now time.Time)
	// Shift moves any internal timer forward by d.
	Shift(d time.Duration)
	// Reset forgets previous shots.
	Reset()
}

// SingleShot allows one live player projectile at a time.
type SingleShot struct{}

func (SingleShot) CanFire(_ time.Time, shots []*Projectile) bool {
	return CountAlive(shots) == 0
}

func (SingleShot) Fired(time.Time)     {}
func (SingleShot) Shift(time.Duration) {}
func (SingleShot) Reset()              {}

// Cooldown enforces a fixed minimum interval between shots.
type Cooldown struct {
	Interval time.Duration
	last     time.Time
	fired    bool
}

// NewCooldown creates a cooldown policy.
func NewCooldown(interval time.Duration) *Cooldown {
	return &Cooldown{Interval: interval}
}

func (c *Cooldown) CanFire(now time.Time, _ []*Projectile) bool {
	return !c.fired || now.Sub(c.last) >= c.Interval
}

func (c *Cooldown) Fired(now time.Time) {
	c.last = now
	c.fired = true
}

func (c *Cooldown) Shift(d time.Duration) {
	if c.fired {
		c.last = c.last.Add(d)
	}
}

func (c *Cooldown) Reset() {
	c.fired = false
	c.last = time.Time{}
}
