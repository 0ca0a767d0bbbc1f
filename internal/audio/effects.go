package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/tomz197/invaders/internal/loop"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a wave whose frequency glides linearly from freq to
// endFreq over its duration.
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *rand.Rand
}

// NewOscillator creates a fixed-frequency oscillator.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from startFreq to endFreq.
func NewSweep(startFreq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     startFreq,
		endFreq:  endFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    rand.New(rand.NewSource(int64(startFreq*1000) + int64(duration))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(max(o.duration, 1))
		freq := o.freq + (o.endFreq-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s with attack and release ramps over duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly by vol. Zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is an enveloped oscillator.
func tone(startFreq, endFreq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(startFreq, endFreq, d, wave, rate)
	return NewEnvelope(osc, d, 5*time.Millisecond, d/2, rate)
}

// notes plays fixed-pitch notes one after another.
func notes(d time.Duration, wave WaveType, rate beep.SampleRate, freqs ...float64) beep.Streamer {
	seq := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		seq = append(seq, tone(f, f, d, wave, rate))
	}
	return beep.Seq(seq...)
}

// Cue returns the sound for an event type, or nil if it has none.
func Cue(t loop.EventType, rate beep.SampleRate) beep.Streamer {
	switch t {
	case loop.EventShotFired:
		return newVolume(tone(1200, 600, 70*time.Millisecond, WaveSquare, rate), 0.15)
	case loop.EventEnemyShot:
		return newVolume(tone(300, 200, 60*time.Millisecond, WaveSaw, rate), 0.08)
	case loop.EventUnitDestroyed:
		return newVolume(tone(0, 0, 120*time.Millisecond, WaveNoise, rate), 0.25)
	case loop.EventBonusLaunched:
		return newVolume(tone(500, 900, 400*time.Millisecond, WaveSine, rate), 0.15)
	case loop.EventBonusDestroyed:
		return newVolume(notes(80*time.Millisecond, WaveSquare, rate, 987.77, 1318.51), 0.2)
	case loop.EventPlayerHit:
		return newVolume(beep.Mix(
			tone(0, 0, 400*time.Millisecond, WaveNoise, rate),
			tone(160, 60, 400*time.Millisecond, WaveSaw, rate),
		), 0.25)
	case loop.EventWaveCleared:
		return newVolume(notes(90*time.Millisecond, WaveSine, rate, 523.25, 659.25, 783.99), 0.25)
	case loop.EventGameLost:
		return newVolume(tone(400, 80, 900*time.Millisecond, WaveSaw, rate), 0.25)
	case loop.EventNewHighScore:
		return newVolume(notes(110*time.Millisecond, WaveSquare, rate, 523.25, 659.25, 783.99, 1046.5), 0.2)
	default:
		return nil
	}
}
