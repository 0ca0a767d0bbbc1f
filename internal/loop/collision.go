package loop

import (
	"time"

	"github.com/tomz197/invaders/internal/object"
	"github.com/tomz197/invaders/internal/physics"
)

// Hit is one projectile striking one target.
type Hit struct {
	Target *object.Entity
	Score  int
}

// checkCollisions resolves this frame's hits and reports whether the game
// was lost.
func (s *State) checkCollisions(now time.Time) bool {
	for _, h := range resolveShots(s.PlayerShots, s.targets()) {
		s.Score += h.Score
		s.Debris = object.Explode(s.Debris, h.Target.Bounds(), object.ExplosionCount, now, s.rng)
		if h.Target == s.Bonus.Unit {
			s.emit(EventBonusDestroyed, h.Score)
		} else {
			s.emit(EventUnitDestroyed, h.Score)
		}
	}

	lost := resolvePlayerHits(s.EnemyShots, s.Player)
	for i := 0; i < lost; i++ {
		s.emit(EventPlayerHit, 0)
	}
	if lost > 0 {
		s.Debris = object.Explode(s.Debris, s.Player.Bounds(), object.PlayerBurstCount, now, s.rng)
	}
	if lost > 0 && s.Player.Lives == 0 {
		return s.fire(TriggerLivesExhausted, now)
	}
	return false
}

// targets lists what player shots can hit, in priority order: the bonus unit
// first, then fleet units in registration order.
func (s *State) targets() []*object.Entity {
	targets := make([]*object.Entity, 0, len(s.Fleet.Units)+1)
	if b := s.Bonus.Target(); b != nil {
		targets = append(targets, b)
	}
	return append(targets, s.Fleet.Units...)
}

// collide reports whether two live objects overlap.
func collide(a, b object.Destructible) bool {
	return !a.IsDestroyed() && !b.IsDestroyed() && physics.Intersects(a.Bounds(), b.Bounds())
}

// resolveShots intersects live shots with live targets. Each shot destroys at
// most the first target it overlaps, and both are marked dead.
func resolveShots(shots []*object.Projectile, targets []*object.Entity) []Hit {
	var hits []Hit
	for _, p := range shots {
		for _, t := range targets {
			if !collide(p, t) {
				continue
			}
			p.MarkDestroyed()
			t.MarkDestroyed()
			hits = append(hits, Hit{Target: t, Score: t.Points})
			break
		}
	}
	return hits
}

// resolvePlayerHits applies enemy shots to the player. Every overlapping shot
// dies and costs exactly one life. It returns the number of lives lost and
// stops once none are left.
func resolvePlayerHits(shots []*object.Projectile, player *object.Player) int {
	lost := 0
	for _, p := range shots {
		if player.Lives == 0 {
			break
		}
		if !collide(p, player) {
			continue
		}
		p.MarkDestroyed()
		player.Hit()
		lost++
	}
	return lost
}
