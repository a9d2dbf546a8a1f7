package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// Tone is a stereo sine wave at freq lasting d, scaled by gain.
func Tone(sr beep.SampleRate, freq float64, d time.Duration, gain float64) beep.Streamer {
	step := 2 * math.Pi * freq / float64(sr)
	phase := 0.0
	sine := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := gain * math.Sin(phase)
			samples[i][0], samples[i][1] = v, v
			phase += step
			if phase >= 2*math.Pi {
				phase -= 2 * math.Pi
			}
		}
		return len(samples), true
	})
	return beep.Take(sr.N(d), sine)
}
