package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/tomz197/invaders/internal/loop"
)

// drain streams s to the end and returns the number of samples, failing if
// it runs longer than limit.
func drain(t *testing.T, s beep.Streamer, limit int) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if buf[i][0] < -1 || buf[i][0] > 1 {
				t.Fatalf("sample %d out of range: %f", total+i, buf[i][0])
			}
		}
		total += n
		if !ok {
			return total
		}
		if total > limit {
			t.Fatalf("streamer did not end after %d samples", total)
		}
	}
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, rate)
	if got, want := drain(t, osc, rate.N(time.Second)), rate.N(100*time.Millisecond); got != want {
		t.Errorf("streamed %d samples, want %d", got, want)
	}
	if osc.Err() != nil {
		t.Errorf("unexpected error: %v", osc.Err())
	}
}

func TestOscillatorSquare(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, rate)
	samples := make([][2]float64, 50)
	n, ok := osc.Stream(samples)
	if !ok || n != 50 {
		t.Fatalf("Stream() = %d, %v", n, ok)
	}
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != -1 && v != 1 {
			t.Errorf("square sample %d = %f", i, v)
		}
	}
}

func TestEnvelopeFadesOut(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, time.Second, WaveSquare, rate) // Constant 1.0
	env := NewEnvelope(osc, time.Second, 100*time.Millisecond, 100*time.Millisecond, rate)

	samples := make([][2]float64, 1000)
	n, _ := env.Stream(samples)
	if n != 1000 {
		t.Fatalf("streamed %d samples", n)
	}
	if samples[0][0] != 0 {
		t.Errorf("attack should start silent, got %f", samples[0][0])
	}
	if samples[500][0] != 1 {
		t.Errorf("sustain = %f, want 1", samples[500][0])
	}
	if samples[999][0] >= samples[900][0] {
		t.Error("release should fade out")
	}
}

func TestCueForEveryEvent(t *testing.T) {
	events := []loop.EventType{
		loop.EventShotFired, loop.EventEnemyShot, loop.EventUnitDestroyed,
		loop.EventBonusLaunched, loop.EventBonusDestroyed, loop.EventPlayerHit,
		loop.EventWaveCleared, loop.EventGameLost, loop.EventNewHighScore,
	}
	for _, typ := range events {
		t.Run(typ.String(), func(t *testing.T) {
			s := Cue(typ, sampleRate)
			if s == nil {
				t.Fatal("no cue")
			}
			if drain(t, s, sampleRate.N(2*time.Second)) == 0 {
				t.Error("cue is empty")
			}
		})
	}
	if Cue(loop.EventType(99), sampleRate) != nil {
		t.Error("unknown event should have no cue")
	}
}

// Audio devices are usually missing in CI, so nothing here calls Initialize.
func TestSoundManagerWithoutDevice(t *testing.T) {
	sm := NewSoundManager()
	sm.Handle([]loop.Event{{Type: loop.EventShotFired}})
	if sm.Played() != 0 {
		t.Error("uninitialized manager queued a sound")
	}
	sm.Cleanup()
	sm.Cleanup()
}
