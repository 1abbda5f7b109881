package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// ambientNotes is the looping arpeggio (Hz) of the background track.
var ambientNotes = []float64{220.00, 277.18, 329.63, 440.00, 329.63, 277.18}

// AmbientGenerator plays an endless soft arpeggio. It never ends on its own;
// the speaker pauses or replaces it.
type AmbientGenerator struct {
	sr        beep.SampleRate
	pos       int
	noteLen   int
	notes     []float64
	amplitude float64
}

// NewAmbientGenerator creates the background track generator.
func NewAmbientGenerator(sr beep.SampleRate) *AmbientGenerator {
	return &AmbientGenerator{
		sr:        sr,
		noteLen:   sr.N(250 * time.Millisecond),
		notes:     ambientNotes,
		amplitude: 0.12,
	}
}

func (g *AmbientGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		note := g.notes[(g.pos/g.noteLen)%len(g.notes)]
		inNote := float64(g.pos%g.noteLen) / float64(g.noteLen)
		t := float64(g.pos) / float64(g.sr)

		// Pluck envelope per note keeps transitions click-free
		envelope := math.Sin(inNote * math.Pi)
		sample := g.amplitude * envelope * math.Sin(2*math.Pi*note*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *AmbientGenerator) Err() error {
	return nil
}

// FailGenerator generates a falling buzz for the collision cue.
// It stops after its duration.
type FailGenerator struct {
	sr       beep.SampleRate
	pos      int
	duration int
	from, to float64
}

// NewFailGenerator creates a fail cue lasting d.
func NewFailGenerator(sr beep.SampleRate, d time.Duration) *FailGenerator {
	return &FailGenerator{
		sr:       sr,
		duration: sr.N(d),
		from:     440,
		to:       110,
	}
}

func (g *FailGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.duration {
			return i, i > 0
		}
		progress := float64(g.pos) / float64(g.duration)
		freq := g.from + (g.to-g.from)*progress
		t := float64(g.pos) / float64(g.sr)

		// Square-ish wave from odd harmonics, fading out
		sample := 0.3*math.Sin(2*math.Pi*freq*t) + 0.1*math.Sin(2*math.Pi*freq*3*t)
		sample *= 1 - progress

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *FailGenerator) Err() error {
	return nil
}
