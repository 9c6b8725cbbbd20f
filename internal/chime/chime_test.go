package chime

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/faiface/beep"
)

func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestToneLengthAndEnvelope(t *testing.T) {
	sr := beep.SampleRate(8000)
	samples := drain(Tone(sr, 440, 100*time.Millisecond))
	if len(samples) != 800 {
		t.Fatalf("expected 800 samples, got %d", len(samples))
	}
	if samples[0][0] != 0 {
		t.Fatalf("expected tone to start at zero, got %v", samples[0][0])
	}
	for i, s := range samples {
		if s[0] != s[1] {
			t.Fatalf("sample %d: expected mono, got %v", i, s)
		}
		env := 1 - float64(i)/800
		if math.Abs(s[0]) > env+1e-9 {
			t.Fatalf("sample %d exceeds envelope: %v > %v", i, s[0], env)
		}
	}
}

func TestPlayerMuted(t *testing.T) {
	p := NewPlayer(true)
	p.initFn = func(beep.SampleRate, int) error {
		t.Fatal("muted player must not open the speaker")
		return nil
	}
	p.Play(SuccessFreq)
}

func TestPlayerInitOnce(t *testing.T) {
	inits, plays := 0, 0
	p := NewPlayer(false)
	p.initFn = func(beep.SampleRate, int) error { inits++; return nil }
	p.playFn = func(s ...beep.Streamer) { plays += len(s) }

	p.Play(SuccessFreq)
	p.Play(FailureFreq)
	if inits != 1 || plays != 2 {
		t.Fatalf("expected 1 init and 2 plays, got %d and %d", inits, plays)
	}
}

func TestPlayerWithoutAudio(t *testing.T) {
	inits, plays := 0, 0
	p := NewPlayer(false)
	p.initFn = func(beep.SampleRate, int) error { inits++; return errors.New("no device") }
	p.playFn = func(s ...beep.Streamer) { plays++ }

	p.Play(SuccessFreq)
	p.Play(SuccessFreq)
	if inits != 1 || plays != 0 {
		t.Fatalf("expected one failed init and no plays, got %d and %d", inits, plays)
	}
}

func TestTapSnapshotOrder(t *testing.T) {
	i := 0
	src := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for j := range samples {
			samples[j] = [2]float64{float64(i), float64(i)}
			i++
		}
		return len(samples), true
	})
	tap := NewTap(src, 4)
	if got := tap.Snapshot(4); len(got) != 0 {
		t.Fatalf("expected empty snapshot, got %v", got)
	}

	tap.Stream(make([][2]float64, 6))
	got := tap.Snapshot(10)
	if len(got) != 4 {
		t.Fatalf("expected 4 samples, got %d", len(got))
	}
	for k, want := range []float64{2, 3, 4, 5} {
		if got[k][0] != want {
			t.Fatalf("sample %d: expected %v, got %v", k, want, got[k][0])
		}
	}
}

func TestPlayerLevel(t *testing.T) {
	var played []beep.Streamer
	p := NewPlayer(false)
	p.initFn = func(beep.SampleRate, int) error { return nil }
	p.playFn = func(s ...beep.Streamer) { played = append(played, s...) }

	if p.Level() != 0 {
		t.Fatal("expected silence before any tone")
	}
	p.Play(SuccessFreq)
	played[0].Stream(make([][2]float64, 1024))
	if p.Level() <= 0 {
		t.Fatal("expected a level while the tone plays")
	}

	drain(played[0])
	if p.Level() != 0 {
		t.Fatalf("expected silence after the tone, got %v", p.Level())
	}
}
