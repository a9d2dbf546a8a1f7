package audio

import (
	"fmt"
	"sync"
	"time"

	"git.lost.host/meutraa/notecanvas/internal/logger"
	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"go.uber.org/zap"
)

// SpeakerPlayer plays tones on the default output device. The device is
// opened on the first Play.
type SpeakerPlayer struct {
	SampleRate beep.SampleRate
	Gain       float64
	// Async returns from Play as soon as the tone is queued.
	Async bool
	Log   *zap.Logger

	once    sync.Once
	initErr error
}

func NewSpeakerPlayer(sr beep.SampleRate, log *zap.Logger) *SpeakerPlayer {
	return &SpeakerPlayer{SampleRate: sr, Gain: DefaultGain, Log: logger.OrNop(log)}
}

func (p *SpeakerPlayer) init() error {
	p.once.Do(func() {
		p.initErr = speaker.Init(p.SampleRate, p.SampleRate.N(time.Second/10))
		if nil == p.initErr {
			p.Log.Debug("speaker ready", zap.Int("sampleRate", int(p.SampleRate)))
		}
	})
	return p.initErr
}

func (p *SpeakerPlayer) Play(freq float64, d time.Duration) error {
	if freq <= 0 {
		return ErrFrequency
	}
	if err := p.init(); nil != err {
		return fmt.Errorf("unable to open speaker: %w", err)
	}
	done := make(chan struct{})
	speaker.Play(beep.Seq(
		Tone(p.SampleRate, freq, d, p.Gain),
		beep.Callback(func() { close(done) }),
	))
	p.Log.Debug("tone", zap.Float64("hz", freq), zap.Duration("duration", d))
	if !p.Async {
		<-done
	}
	return nil
}
