// Package sound plays short cues for finished and missed words.
package sound

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

const (
	hitFreq      = 880.0
	hitDuration  = 90 * time.Millisecond
	missFreq     = 140.0
	missDuration = 220 * time.Millisecond
)

// Player mixes cues into the speaker. A player that failed to initialize, or
// was created disabled, ignores every call.
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	enabled bool
}

// New opens the speaker when enabled is true. Failure to open the audio
// device returns a silent player together with the error.
func New(enabled bool) (*Player, error) {
	p := &Player{mixer: &beep.Mixer{}}
	if !enabled {
		return p, nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return p, err
	}
	speaker.Play(p.mixer)
	p.enabled = true
	return p, nil
}

// Enabled reports whether cues reach the speaker.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Hit plays the completed-word chime.
func (p *Player) Hit() {
	p.play(beep.Take(sampleRate.N(hitDuration), newTone(sampleRate, hitFreq, hitDuration, false)))
}

// Miss plays the low buzz for a word that reached the bottom.
func (p *Player) Miss() {
	p.play(beep.Take(sampleRate.N(missDuration), newTone(sampleRate, missFreq, missDuration, true)))
}

func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close stops playback and releases the audio device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.enabled = false
}

// tone is a sine with a short attack and linear release. Harmonics make it a buzz.
type tone struct {
	sr       beep.SampleRate
	freq     float64
	length   int
	pos      int
	harmonic bool
}

func newTone(sr beep.SampleRate, freq float64, d time.Duration, harmonic bool) *tone {
	return &tone{sr: sr, freq: freq, length: sr.N(d), harmonic: harmonic}
}

func (g *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.length {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.length {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)
		sample := math.Sin(2 * math.Pi * g.freq * t)
		if g.harmonic {
			sample = 0.6*sample + 0.3*math.Sin(4*math.Pi*g.freq*t) + 0.1*math.Sin(6*math.Pi*g.freq*t)
		}
		attack := math.Min(t/0.005, 1)
		release := 1 - float64(g.pos)/float64(g.length)
		sample *= 0.25 * attack * release
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *tone) Err() error {
	return nil
}
