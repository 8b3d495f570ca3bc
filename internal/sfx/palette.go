package sfx

import (
	"time"

	"github.com/tommynicol/hexflap/internal/core"
)

// Palette maps each cue to the notes played for it.
type Palette map[core.Cue][]Tone

const ms = time.Millisecond

// DefaultPalette returns the retro beeps used by both games:
// a soft blip on jump, a rising arpeggio on score, a fanfare on game over
// and a bright button tone on start.
func DefaultPalette() Palette {
	return Palette{
		core.CueJump: {
			{Freq: 440, Duration: 90 * ms, Wave: WaveTriangle, Volume: 0.018, Resonance: 0.3},
		},
		core.CueScore: arpeggio([]float64{440, 554, 659, 880}, 50*ms),
		core.CueGameOver: {
			{Freq: 523, Duration: 120 * ms, Wave: WaveTriangle, Volume: 0.025, Resonance: 0.6},
			{Freq: 659, Delay: 80 * ms, Duration: 120 * ms, Wave: WaveSine, Volume: 0.028, Resonance: 0.6},
			{Freq: 784, Delay: 160 * ms, Duration: 160 * ms, Wave: WaveTriangle, Volume: 0.032, Resonance: 0.6},
			{Freq: 1047, Delay: 280 * ms, Duration: 200 * ms, Wave: WaveSine, Volume: 0.035, Resonance: 0.6},
			{Freq: 1047, Delay: 480 * ms, Duration: 250 * ms, Wave: WaveTriangle, Volume: 0.04, Resonance: 0.8},
			{Freq: 1319, Delay: 480 * ms, Duration: 200 * ms, Wave: WaveSine, Volume: 0.03, Resonance: 0.7},
		},
		core.CueStart: {
			{Freq: 880, Duration: 110 * ms, Wave: WaveSine, Volume: 0.02, Resonance: 0.6},
		},
	}
}

func arpeggio(notes []float64, spacing time.Duration) []Tone {
	tones := make([]Tone, len(notes))
	for i, f := range notes {
		tones[i] = Tone{
			Freq:      f,
			Delay:     time.Duration(i) * spacing,
			Duration:  80 * ms,
			Wave:      WaveSine,
			Volume:    0.015,
			Resonance: 0.4,
		}
	}
	return tones
}

// Length returns how long the cue's notes take to finish.
func (p Palette) Length(c core.Cue) time.Duration {
	var end time.Duration
	for _, t := range p[c] {
		end = max(end, t.End())
	}
	return end
}
