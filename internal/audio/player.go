package audio

import (
	"errors"
	"time"

	"go.uber.org/multierr"
)

const (
	DefaultSampleRate = 44100
	DefaultGain       = 0.2
	DefaultDuration   = 500 * time.Millisecond
)

var ErrFrequency = errors.New("frequency must be positive")

// Player sounds a tone of the given pitch in Hz.
type Player interface {
	Play(freq float64, d time.Duration) error
}

// Nop discards every tone.
type Nop struct{}

func (Nop) Play(freq float64, d time.Duration) error {
	if freq <= 0 {
		return ErrFrequency
	}
	return nil
}

// Multi sounds every tone on each player, one after another.
type Multi []Player

func (m Multi) Play(freq float64, d time.Duration) error {
	var err error
	for _, p := range m {
		err = multierr.Append(err, p.Play(freq, d))
	}
	return err
}
