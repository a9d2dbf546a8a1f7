package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"git.lost.host/meutraa/notecanvas/internal/audio"
	"git.lost.host/meutraa/notecanvas/internal/config"
	"git.lost.host/meutraa/notecanvas/internal/input"
	"git.lost.host/meutraa/notecanvas/internal/parser"
	"git.lost.host/meutraa/notecanvas/internal/render"
	"git.lost.host/meutraa/notecanvas/internal/session"
	"git.lost.host/meutraa/notecanvas/internal/theme"
	"github.com/faiface/beep"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// Raw mode terminals do not return the carriage on \n.
const eol = "\r\n"

const help = "c d e f g a b  play    #  sharp    space  clear    s  save    q  quit"

type Program struct {
	Config  *config.Config
	Parser  parser.Parser
	Theme   theme.Theme
	Session *session.Session
	Out     io.Writer

	canvas   *render.DefaultRenderer
	vector   *render.SVGRenderer
	recorder *audio.WAVRecorder
	speaker  *audio.SpeakerPlayer
	log      *zap.Logger

	sharp bool
}

func NewProgram(cfg *config.Config, log *zap.Logger) (*Program, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Debug("starting", zap.Int64("seed", seed), zap.Int("width", cfg.Width), zap.Int("height", cfg.Height))

	p := &Program{
		Config: cfg,
		Parser: &parser.DefaultParser{},
		Theme:  &theme.DefaultTheme{},
		Out:    io.Discard,
		canvas: render.NewDefaultRenderer(cfg.Width, cfg.Height),
		log:    log,
		sharp:  cfg.Sharp,
	}

	renderers := render.Multi{p.canvas}
	if cfg.SVG != "" {
		p.vector = render.NewSVGRenderer(cfg.Width, cfg.Height)
		renderers = append(renderers, p.vector)
	}

	sr := beep.SampleRate(cfg.SampleRate)
	players := audio.Multi{}
	if !cfg.Mute {
		p.speaker = audio.NewSpeakerPlayer(sr, log)
		players = append(players, p.speaker)
	}
	if cfg.WAV != "" {
		p.recorder = audio.NewWAVRecorder(sr)
		players = append(players, p.recorder)
	}

	p.Session = session.New(renderers, players, rand.New(rand.NewSource(seed)), log)
	p.Session.ShapesPerNote = cfg.Shapes
	p.Session.ToneDuration = cfg.Duration
	return p, nil
}

// Batch draws every note given on the command line or in the notes file,
// reports the bad ones and saves the result.
func (p *Program) Batch() error {
	tokens := append([]string{}, p.Config.Notes...)
	if p.Config.File != "" {
		fromFile, err := p.Parser.Parse(p.Config.File)
		if nil != err {
			return fmt.Errorf("unable to read notes: %w", err)
		}
		tokens = append(tokens, fromFile...)
	}

	res := p.Session.Play(tokens)
	notes := make([]string, len(res.Strokes))
	for i, s := range res.Strokes {
		notes[i] = p.Theme.RenderNote(s.Note)
	}
	if len(notes) > 0 {
		fmt.Fprintln(p.Out, strings.Join(notes, " "))
	}
	for _, err := range res.Errors {
		fmt.Fprintln(p.Out, p.Theme.RenderError(err))
	}
	return p.Save()
}

// Save writes the canvas, and the svg and wav copies when they were asked for.
func (p *Program) Save() error {
	if err := p.canvas.SavePNG(p.Config.Out); nil != err {
		return err
	}
	p.log.Info("saved canvas", zap.String("path", p.Config.Out))
	if nil != p.vector {
		if err := p.vector.SaveSVG(p.Config.SVG); nil != err {
			return err
		}
		p.log.Info("saved svg", zap.String("path", p.Config.SVG))
	}
	if nil != p.recorder {
		if err := p.recorder.Save(p.Config.WAV); nil != err {
			return err
		}
		p.log.Info("saved wav", zap.String("path", p.Config.WAV))
	}
	return nil
}

// Handle applies one keyboard action and reports whether to stop.
func (p *Program) Handle(a input.Action) (bool, error) {
	switch a.Kind {
	case input.Quit:
		return true, nil
	case input.ToggleSharp:
		p.sharp = !p.sharp
		fmt.Fprint(p.Out, eol, p.Theme.RenderKeys(p.sharp), eol)
	case input.Clear:
		p.Session.Clear()
		if nil != p.recorder {
			p.recorder.Reset()
		}
		fmt.Fprint(p.Out, eol, "cleared", eol)
	case input.Save:
		if err := p.Save(); nil != err {
			return false, err
		}
		fmt.Fprint(p.Out, eol, "saved ", p.Config.Out, eol)
	case input.PlayNote:
		_, err := p.Session.PlayNote(a.Note)
		fmt.Fprint(p.Out, p.Theme.RenderNote(a.Note), " ")
		if nil != err {
			fmt.Fprint(p.Out, eol, p.Theme.RenderError(err), eol)
		}
	}
	return false, nil
}

// Interactive turns the terminal into a small note keyboard.
func (p *Program) Interactive() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("interactive mode needs a terminal, pass notes as arguments instead")
	}
	if nil != p.speaker {
		p.speaker.Async = true
	}

	events := make(chan input.Event, 16)
	closeInput, err := input.ReadInput(events, p.log)
	if nil != err {
		return fmt.Errorf("unable to open keyboard: %w", err)
	}
	defer func() {
		if err := closeInput(); nil != err {
			p.log.Warn("unable to close keyboard", zap.Error(err))
		}
	}()

	fmt.Fprint(p.Out, help, eol, p.Theme.RenderKeys(p.sharp), eol)
	for ev := range events {
		quit, err := p.Handle(input.Map(ev, p.sharp))
		if nil != err {
			fmt.Fprint(p.Out, eol, p.Theme.RenderError(err), eol)
		}
		if quit {
			break
		}
	}
	fmt.Fprint(p.Out, eol, p.Session.Display(), eol)
	return nil
}
