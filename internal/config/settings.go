package config

import (
	"math/rand"
	"time"

	"github.com/tomz197/invaders/internal/object"
)

// DefaultHighScorePath is used when INVADERS_HIGHSCORE_PATH is unset.
const DefaultHighScorePath = "highscore.txt"

// Settings are the game options shared by every frontend.
type Settings struct {
	HighScorePath string
	Audio         bool
	FireCooldown  time.Duration // Zero selects the one-shot-at-a-time rule
	Seed          int64         // Zero seeds from the clock
}

// LoadSettings reads Settings from the environment.
func LoadSettings() Settings {
	return Settings{
		HighScorePath: GetEnv("INVADERS_HIGHSCORE_PATH", DefaultHighScorePath),
		Audio:         GetEnvBool("INVADERS_AUDIO", true),
		FireCooldown:  GetEnvDuration("INVADERS_FIRE_COOLDOWN", 0),
		Seed:          int64(GetEnvInt("INVADERS_SEED", 0)),
	}
}

// FirePolicy returns the configured fire rule. Each game needs its own.
func (s Settings) FirePolicy() object.FirePolicy {
	if s.FireCooldown > 0 {
		return object.NewCooldown(s.FireCooldown)
	}
	return object.SingleShot{}
}

// Rand returns a random source for one game.
func (s Settings) Rand() *rand.Rand {
	seed := s.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
