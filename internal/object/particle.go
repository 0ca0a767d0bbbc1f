package object

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/tomz197/invaders/internal/physics"
)

// Debris tuning. Particles are cosmetic and never collide.
const (
	ParticleSize     = 4
	ParticleDrag     = 0.92 // Velocity kept per tick
	ExplosionCount   = 10
	ExplosionSpeed   = 4.0 // Pixels per tick
	ExplosionLife    = 400 * time.Millisecond
	PlayerBurstCount = 24
)

// particlePool is a sync.Pool for reusing Particle objects to reduce allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle is a short-lived square of debris.
type Particle struct {
	X, Y   float64 // Centre
	VX, VY float64 // Pixels per tick
	Expiry time.Time
}

// NewParticle takes a particle from the pool.
func NewParticle(x, y, vx, vy float64, expiry time.Time) *Particle {
	p := particlePool.Get().(*Particle)
	*p = Particle{X: x, Y: y, VX: vx, VY: vy, Expiry: expiry}
	return p
}

// Release returns the particle to the pool. It must not be used afterwards.
func (p *Particle) Release() {
	particlePool.Put(p)
}

// Update moves the particle one tick and reports whether it has expired.
func (p *Particle) Update(now time.Time) bool {
	if !now.Before(p.Expiry) {
		return true
	}
	p.VX *= ParticleDrag
	p.VY *= ParticleDrag
	p.X += p.VX
	p.Y += p.VY
	return false
}

// Bounds returns the square drawn for the particle.
func (p *Particle) Bounds() physics.Rect {
	return physics.Rect{
		X: int(math.Round(p.X)) - ParticleSize/2,
		Y: int(math.Round(p.Y)) - ParticleSize/2,
		W: ParticleSize,
		H: ParticleSize,
	}
}

// Explode adds count particles bursting from the centre of r to ps.
func Explode(ps []*Particle, r physics.Rect, count int, now time.Time, rng *rand.Rand) []*Particle {
	cx := float64(r.X) + float64(r.W)/2
	cy := float64(r.Y) + float64(r.H)/2
	for i := 0; i < count; i++ {
		// Random direction, speed 50% to 150%, lifetime 50% to 100%
		angle := rng.Float64() * 2 * math.Pi
		spd := ExplosionSpeed * (0.5 + rng.Float64())
		life := time.Duration(float64(ExplosionLife) * (0.5 + rng.Float64()*0.5))
		ps = append(ps, NewParticle(cx, cy, math.Cos(angle)*spd, math.Sin(angle)*spd, now.Add(life)))
	}
	return ps
}

// UpdateParticles advances every particle and drops expired ones, returning
// them to the pool.
func UpdateParticles(ps []*Particle, now time.Time) []*Particle {
	kept := ps[:0]
	for _, p := range ps {
		if p.Update(now) {
			p.Release()
			continue
		}
		kept = append(kept, p)
	}
	clear(ps[len(kept):])
	return kept
}

// ShiftParticles moves every expiry forward by d.
func ShiftParticles(ps []*Particle, d time.Duration) {
	for _, p := range ps {
		p.Expiry = p.Expiry.Add(d)
	}
}
