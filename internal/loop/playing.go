package loop

import (
	"time"

	"github.com/tomz197/invaders/internal/input"
	"github.com/tomz197/invaders/internal/object"
)

// updatePlaying advances the simulation by one frame.
func (s *State) updatePlaying(now time.Time, in input.Input) {
	s.Debris = object.UpdateParticles(s.Debris, now)
	s.updatePlayer(now, in)

	s.Fleet.Animate(now)
	s.Bonus.Animate(now)

	if s.Fleet.Step(now) && s.invaded() {
		s.Player.Lives = 0
		s.log.Debug("fleet reached the player", "wave", s.Wave)
		s.fire(TriggerLivesExhausted, now)
		return
	}

	wasActive := s.Bonus.Active()
	s.Bonus.Step(now)
	if !wasActive && s.Bonus.Active() {
		s.emit(EventBonusLaunched, 0)
	}

	s.updateEnemyFire(now)
	s.updateProjectiles()

	if s.checkCollisions(now) {
		return // Game lost
	}

	if s.Fleet.Cleared() {
		s.nextWave(now)
	}

	s.PlayerShots = object.Compact(s.PlayerShots)
	s.EnemyShots = object.Compact(s.EnemyShots)

	if s.Score > s.HighScore {
		s.HighScore = s.Score
	}
}

// updatePlayer moves the ship and fires when the policy allows it.
func (s *State) updatePlayer(now time.Time, in input.Input) {
	s.Player.Update(in, s.Screen)

	if !in.Fire || !s.FirePolicy.CanFire(now, s.PlayerShots) {
		return
	}
	x, y := s.Player.Muzzle()
	s.PlayerShots = append(s.PlayerShots, object.NewPlayerShot(x, y))
	s.FirePolicy.Fired(now)
	s.emit(EventShotFired, 0)
}

// updateEnemyFire lets one random front-line unit fire once per interval.
func (s *State) updateEnemyFire(now time.Time) {
	if now.Before(s.nextEnemyShot) {
		return
	}
	s.nextEnemyShot = now.Add(EnemyFireInterval)

	shooters := s.Fleet.BottomShooters()
	if len(shooters) == 0 {
		return
	}
	u := s.Fleet.Units[shooters[s.rng.Intn(len(shooters))]]
	b := u.Bounds()
	s.EnemyShots = append(s.EnemyShots, object.NewEnemyShot(b.X+b.W/2, b.Bottom()))
	s.emit(EventEnemyShot, 0)
}

// updateProjectiles moves every live shot one tick.
func (s *State) updateProjectiles() {
	for _, p := range s.PlayerShots {
		p.Update(s.Screen)
	}
	for _, p := range s.EnemyShots {
		p.Update(s.Screen)
	}
}

// invaded reports whether the fleet has descended onto the player's row.
func (s *State) invaded() bool {
	env, ok := s.Fleet.Envelope()
	return ok && env.Bottom() >= s.Player.Y
}

// nextWave replaces a cleared fleet. Score, lives, the bonus unit and shots
// in flight carry over.
func (s *State) nextWave(now time.Time) {
	s.Wave++
	s.Fleet.Spawn(now)
	s.emit(EventWaveCleared, 0)
	s.log.Info("wave cleared", "wave", s.Wave, "score", s.Score)
}
