// Package sfx turns gameplay cues into short synthesized tones played
// through the system speaker.
package sfx

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

// Tone is one note of a cue.
type Tone struct {
	Freq      float64       // Hz
	Duration  time.Duration // audible length
	Delay     time.Duration // silence before the note starts
	Wave      WaveType
	Volume    float64 // linear gain before the master volume
	Resonance float64 // pitch wobble depth, 0 = steady
}

const attackTime = 3 * time.Millisecond

// oscillator generates a raw wave with an optional pitch glide:
// up by 5% of resonance over the first third, then down to -2%.
type oscillator struct {
	freq      float64
	resonance float64
	phase     float64
	duration  int
	position  int
	wave      WaveType
	rate      beep.SampleRate
}

func newOscillator(t Tone, rate beep.SampleRate) *oscillator {
	return &oscillator{
		freq:      t.Freq,
		resonance: t.Resonance,
		duration:  rate.N(t.Duration),
		wave:      t.Wave,
		rate:      rate,
	}
}

// frequency returns the instantaneous pitch at the current sample.
func (o *oscillator) frequency() float64 {
	if o.resonance == 0 || o.duration == 0 {
		return o.freq
	}
	peak := o.freq * (1 + o.resonance*0.05)
	end := o.freq * (1 - o.resonance*0.02)
	third := o.duration / 3
	if o.position < third {
		return o.freq + (peak-o.freq)*float64(o.position)/float64(third)
	}
	return peak + (end-peak)*float64(o.position-third)/float64(o.duration-third)
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
		case WaveTriangle:
			val = 1 - 4*math.Abs(o.phase-0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.frequency() / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack samples and linearly out to silence
// over the rest.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	total    int
}

func newEnvelope(s beep.Streamer, duration time.Duration, rate beep.SampleRate) *envelope {
	return &envelope{
		streamer: s,
		attack:   rate.N(attackTime),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		} else if rest := e.total - e.attack; rest > 0 {
			vol = float64(e.total-e.position) / float64(rest)
		}
		if vol < 0 {
			vol = 0
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume applies a linear gain; log2(0) is -Inf so zero is made silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Streamer renders the tone, including its leading delay, at the given rate.
func (t Tone) Streamer(rate beep.SampleRate, master float64) beep.Streamer {
	note := newVolume(newEnvelope(newOscillator(t, rate), t.Duration, rate), t.Volume*master)
	if t.Delay <= 0 {
		return note
	}
	return beep.Seq(beep.Silence(rate.N(t.Delay)), note)
}

// End returns when the tone finishes, measured from the start of the cue.
func (t Tone) End() time.Duration {
	return t.Delay + t.Duration
}
