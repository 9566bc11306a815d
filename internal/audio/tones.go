// Package audio synthesizes the wallbreaker sound effects and plays them
// through the system speaker.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/wallbreaker/internal/core"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	seed     uint32 // noise state, fixed so every effect sounds the same
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		seed:     2463534242,
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
			o.seed ^= o.seed << 13
			o.seed ^= o.seed >> 17
			o.seed ^= o.seed << 5
			val = float64(o.seed)/float64(math.MaxUint32)*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // keep in [0, 1)
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

// NewEnvelope shapes s with a linear fade in over attack and a linear fade
// out over the last release of duration.
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
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if left := e.totalSamples - e.position; left < e.releaseSamples {
			vol = math.Min(vol, float64(left)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly. math.Log2(0) is -Inf, so zero is silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// note is one shaped oscillator of an effect.
type note struct {
	freq     float64
	wave     WaveType
	duration time.Duration
}

// effectNotes lists the notes of every effect, played in sequence.
var effectNotes = map[core.Sound][]note{
	core.SoundBrickBump:       {{660, WaveSquare, 40 * time.Millisecond}},
	core.SoundUnbreakableBump: {{220, WaveSquare, 50 * time.Millisecond}},
	core.SoundPoisonBump:      {{140, WaveSaw, 80 * time.Millisecond}},
	core.SoundBrickDestroyed:  {{880, WaveSquare, 40 * time.Millisecond}, {1320, WaveSquare, 60 * time.Millisecond}},
	core.SoundPoisonDestroyed: {{0, WaveNoise, 180 * time.Millisecond}},
	core.SoundPaddleBump:      {{440, WaveSine, 50 * time.Millisecond}},
	core.SoundBallMissed:      {{330, WaveSaw, 120 * time.Millisecond}, {196, WaveSaw, 200 * time.Millisecond}},
	core.SoundBallLaunch:      {{523.25, WaveSine, 60 * time.Millisecond}, {783.99, WaveSine, 80 * time.Millisecond}},
	core.SoundNextLevel: {
		{523.25, WaveSquare, 90 * time.Millisecond},
		{659.25, WaveSquare, 90 * time.Millisecond},
		{783.99, WaveSquare, 90 * time.Millisecond},
		{1046.5, WaveSquare, 180 * time.Millisecond},
	},
	core.SoundGameLost: {
		{392, WaveSaw, 150 * time.Millisecond},
		{311.13, WaveSaw, 150 * time.Millisecond},
		{261.63, WaveSaw, 300 * time.Millisecond},
	},
	core.SoundWallOfFame: {
		{783.99, WaveSine, 100 * time.Millisecond},
		{987.77, WaveSine, 100 * time.Millisecond},
		{1174.66, WaveSine, 100 * time.Millisecond},
		{1567.98, WaveSine, 250 * time.Millisecond},
	},
}

// attack and release of every note
const (
	noteAttack  = 5 * time.Millisecond
	noteRelease = 20 * time.Millisecond
)

// Effect builds the streamer of one sound at the given linear volume. It
// returns nil for SoundNone and unknown sounds.
func Effect(snd core.Sound, rate beep.SampleRate, vol float64) beep.Streamer {
	notes, ok := effectNotes[snd]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		osc := NewOscillator(n.freq, n.duration, n.wave, rate)
		parts = append(parts, NewEnvelope(osc, n.duration, noteAttack, min(noteRelease, n.duration/2), rate))
	}
	return newVolume(beep.Seq(parts...), vol)
}
