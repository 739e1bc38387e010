// Package audio synthesizes the game's sound effects with beep.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// SampleRate is the rate every generator renders at.
const SampleRate = beep.SampleRate(44100)

// Wave selects an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
)

// Sweep is an oscillator whose pitch slides linearly from one frequency to
// another while its volume decays to zero.
type Sweep struct {
	sr     beep.SampleRate
	wave   Wave
	from   float64
	to     float64
	volume float64
	total  int
	pos    int
	phase  float64
}

// NewSweep creates a sweep lasting d.
func NewSweep(sr beep.SampleRate, wave Wave, from, to float64, d time.Duration, volume float64) *Sweep {
	return &Sweep{
		sr:     sr,
		wave:   wave,
		from:   from,
		to:     to,
		volume: volume,
		total:  sr.N(d),
	}
}

// Stream fills samples with the sweep. It reports false once the sweep ended.
func (s *Sweep) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= s.total {
		return 0, false
	}
	for i := range samples {
		if s.pos >= s.total {
			return i, true
		}
		progress := float64(s.pos) / float64(s.total)
		freq := s.from + (s.to-s.from)*progress
		s.phase += freq / float64(s.sr)
		s.phase -= math.Floor(s.phase)

		var v float64
		switch s.wave {
		case WaveSquare:
			v = 1
			if s.phase >= 0.5 {
				v = -1
			}
		default:
			v = math.Sin(2 * math.Pi * s.phase)
		}
		v *= s.volume * (1 - progress)

		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

// Err always returns nil; sweeps cannot fail.
func (s *Sweep) Err() error {
	return nil
}

// Len returns the sweep length in samples.
func (s *Sweep) Len() int {
	return s.total
}

// NewShotEffect is a short falling square blip.
func NewShotEffect(sr beep.SampleRate) beep.Streamer {
	return NewSweep(sr, WaveSquare, 880, 220, 70*time.Millisecond, 0.15)
}

// NewSpawnEffect is a low rising sine.
func NewSpawnEffect(sr beep.SampleRate) beep.Streamer {
	return NewSweep(sr, WaveSine, 110, 220, 200*time.Millisecond, 0.25)
}

// NewLevelUpEffect plays two rising chirps back to back.
func NewLevelUpEffect(sr beep.SampleRate) beep.Streamer {
	return beep.Seq(
		NewSweep(sr, WaveSine, 440, 660, 120*time.Millisecond, 0.3),
		NewSweep(sr, WaveSine, 660, 990, 160*time.Millisecond, 0.3),
	)
}
