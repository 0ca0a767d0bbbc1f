// Package audio plays synthesized sound cues for gameplay events.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/tomz197/invaders/internal/loop"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager turns frame events into sounds. It is safe to use without a
// successful Initialize; every call is then a no-op.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	played      int
}

var _ loop.Listener = (*SoundManager)(nil)

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the audio device.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Handle plays one cue per distinct event type in events.
func (sm *SoundManager) Handle(events []loop.Event) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	var seen [loop.EventNewHighScore + 1]bool
	for _, e := range events {
		if e.Type < 0 || int(e.Type) >= len(seen) || seen[e.Type] {
			continue
		}
		seen[e.Type] = true
		if s := Cue(e.Type, sampleRate); s != nil {
			speaker.Lock()
			sm.mixer.Add(s)
			speaker.Unlock()
			sm.played++
		}
	}
}

// Played returns how many cues have been queued.
func (sm *SoundManager) Played() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}
