package sfx

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/tommynicol/hexflap/internal/core"
)

const (
	sampleRate = beep.SampleRate(48000)

	// maxVoices caps concurrently playing cues.
	maxVoices = 8

	// defaultMaster lifts the palette's quiet gains to a comfortable level.
	defaultMaster = 10.0
)

// Player renders cues through the speaker. A Player that was never
// initialized, or whose initialization failed, drops every cue.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	palette     Palette
	master      float64
	muted       bool
	initialized bool
}

// NewPlayer creates a player with the default palette.
func NewPlayer() *Player {
	return &Player{
		mixer:   &beep.Mixer{},
		palette: DefaultPalette(),
		master:  defaultMaster,
	}
}

// Init opens the audio device. On error the player stays silent.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// SetMuted turns playback off or on without closing the device.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
}

// Muted reports whether playback is off.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Play starts the notes for c. It never blocks on audio output.
func (p *Player) Play(c core.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}

	voice := p.voice(c)
	if voice == nil {
		return
	}

	speaker.Lock()
	if p.mixer.Len() < maxVoices {
		p.mixer.Add(voice)
	}
	speaker.Unlock()
}

// voice mixes all notes of a cue into one streamer, or nil if the cue has none.
func (p *Player) voice(c core.Cue) beep.Streamer {
	tones := p.palette[c]
	if len(tones) == 0 {
		return nil
	}
	streams := make([]beep.Streamer, len(tones))
	for i, t := range tones {
		streams[i] = t.Streamer(sampleRate, p.master)
	}
	return beep.Take(sampleRate.N(p.palette.Length(c)), beep.Mix(streams...))
}

// Close stops every sound and releases the audio device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	p.mixer.Clear()
	p.initialized = false
}
