package main

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

const chimeSampleRate beep.SampleRate = 44100

// chime generates a decaying sine tone, so the demo needs no bundled audio
// assets.
type chime struct {
	freq     float64
	phase    float64
	duration int
	position int
}

// NewChime creates a short activation chime streamer at the given frequency.
func NewChime(freq float64, d time.Duration) beep.Streamer {
	return &chime{freq: freq, duration: chimeSampleRate.N(d)}
}

func (c *chime) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if c.position >= c.duration {
			return i, false
		}

		val := math.Sin(2 * math.Pi * c.phase)
		// linear fade-out over the whole tone
		val *= 1 - float64(c.position)/float64(c.duration)

		samples[i][0] = val
		samples[i][1] = val

		c.phase += c.freq / float64(chimeSampleRate)
		c.phase -= math.Floor(c.phase)
		c.position++
	}
	return len(samples), true
}

func (c *chime) Err() error { return nil }
