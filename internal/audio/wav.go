package audio

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
)

type tone struct {
	freq float64
	d    time.Duration
}

// WAVRecorder keeps every tone played, in order, so the sequence can be
// written to a wav file.
type WAVRecorder struct {
	SampleRate beep.SampleRate
	Gain       float64

	tones []tone
}

func NewWAVRecorder(sr beep.SampleRate) *WAVRecorder {
	return &WAVRecorder{SampleRate: sr, Gain: DefaultGain}
}

func (r *WAVRecorder) Play(freq float64, d time.Duration) error {
	if freq <= 0 {
		return ErrFrequency
	}
	r.tones = append(r.tones, tone{freq: freq, d: d})
	return nil
}

// Len is the total number of samples recorded.
func (r *WAVRecorder) Len() int {
	n := 0
	for _, t := range r.tones {
		n += r.SampleRate.N(t.d)
	}
	return n
}

func (r *WAVRecorder) Reset() {
	r.tones = r.tones[:0]
}

func (r *WAVRecorder) Write(w io.WriteSeeker) error {
	streamers := make([]beep.Streamer, len(r.tones))
	for i, t := range r.tones {
		streamers[i] = Tone(r.SampleRate, t.freq, t.d, r.Gain)
	}
	format := beep.Format{SampleRate: r.SampleRate, NumChannels: 2, Precision: 2}
	return wav.Encode(w, beep.Seq(streamers...), format)
}

func (r *WAVRecorder) Save(path string) error {
	f, err := os.Create(path)
	if nil != err {
		return fmt.Errorf("unable to create %v: %w", path, err)
	}
	if err := r.Write(f); nil != err {
		f.Close()
		return fmt.Errorf("unable to encode %v: %w", path, err)
	}
	return f.Close()
}
