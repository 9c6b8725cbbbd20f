// Package chime plays the short cue that accompanies a notification.
package chime

import (
	"log"
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
)

const (
	SampleRate = beep.SampleRate(44100)

	SuccessFreq = 880.0
	FailureFreq = 220.0
	Length      = 120 * time.Millisecond

	meterSize   = 4096
	meterWindow = 512
)

// Tone returns a sine burst of length d at freq Hz that fades out linearly
// so it ends without a click.
func Tone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	total := sr.N(d)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for i := range samples {
			if pos >= total {
				break
			}
			env := 1 - float64(pos)/float64(total)
			v := math.Sin(2*math.Pi*freq*float64(pos)/float64(sr)) * env
			samples[i][0], samples[i][1] = v, v
			pos++
			n++
		}
		return n, true
	})
}

// Player lazily opens the speaker on first use. When audio is unavailable
// it logs once and stays silent.
type Player struct {
	Muted  bool
	Volume float64 // in beep's log2 units, 0 is unchanged

	once   sync.Once
	ready  bool
	initFn func(beep.SampleRate, int) error
	playFn func(...beep.Streamer)

	mu   sync.Mutex
	last *Tap
}

func NewPlayer(muted bool) *Player {
	return &Player{
		Muted:  muted,
		Volume: -2,
		initFn: speaker.Init,
		playFn: speaker.Play,
	}
}

// Play queues a tone at freq Hz.
func (p *Player) Play(freq float64) {
	if p.Muted {
		return
	}
	p.once.Do(func() {
		if err := p.initFn(SampleRate, SampleRate.N(time.Second/10)); err != nil {
			log.Printf("chime: audio unavailable: %v", err)
			return
		}
		p.ready = true
	})
	if !p.ready {
		return
	}
	tap := NewTap(Tone(SampleRate, freq, Length), meterSize)
	p.mu.Lock()
	p.last = tap
	p.mu.Unlock()
	p.playFn(beep.Seq(&effects.Volume{
		Streamer: tap,
		Base:     2,
		Volume:   p.Volume,
	}, beep.Callback(tap.Reset)))
}

// Level is the current output level of the most recent tone in [0,1].
func (p *Player) Level() float64 {
	p.mu.Lock()
	tap := p.last
	p.mu.Unlock()
	if tap == nil {
		return 0
	}
	return tap.Level(meterWindow)
}
