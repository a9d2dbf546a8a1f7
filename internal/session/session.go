package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"git.lost.host/meutraa/notecanvas/internal/audio"
	"git.lost.host/meutraa/notecanvas/internal/logger"
	"git.lost.host/meutraa/notecanvas/internal/note"
	"git.lost.host/meutraa/notecanvas/internal/render"
	"git.lost.host/meutraa/notecanvas/internal/shape"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const DefaultShapesPerNote = 3

// Stroke is everything drawn for one note.
type Stroke struct {
	Note     note.Note
	Polygons []shape.Polygon
}

type Result struct {
	Strokes []Stroke
	// Invalid notes and tone failures, in input order.
	Errors []error
}

// Err combines every error of the batch, nil when all notes went through.
func (r Result) Err() error {
	return multierr.Combine(r.Errors...)
}

// Invalid lists the tokens that were not notes.
func (r Result) Invalid() []string {
	tokens := []string{}
	for _, err := range r.Errors {
		var inv *note.InvalidNoteError
		if errors.As(err, &inv) {
			tokens = append(tokens, inv.Token)
		}
	}
	return tokens
}

// Line is the notes of the batch as they would be typed back.
func (r Result) Line() string {
	names := make([]string, len(r.Strokes))
	for i, s := range r.Strokes {
		names[i] = s.Note.String()
	}
	return strings.Join(names, " ")
}

// Session paints notes onto a canvas and sounds them. Every draw is
// synchronous; a Session is not safe for concurrent use.
type Session struct {
	Renderer      render.Renderer
	Player        audio.Player
	Rand          shape.Source
	ShapesPerNote int
	ToneDuration  time.Duration
	Log           *zap.Logger

	played []string
}

func New(r render.Renderer, p audio.Player, rng shape.Source, log *zap.Logger) *Session {
	if nil == p {
		p = audio.Nop{}
	}
	return &Session{
		Renderer:      r,
		Player:        p,
		Rand:          rng,
		ShapesPerNote: DefaultShapesPerNote,
		ToneDuration:  audio.DefaultDuration,
		Log:           logger.OrNop(log),
	}
}

// Play handles each token in order. A bad token is reported in the result
// and skipped; it never stops the tokens after it.
func (s *Session) Play(tokens []string) Result {
	var res Result
	for _, token := range tokens {
		n, err := note.Parse(token)
		if nil != err {
			s.Log.Info("skipping token", zap.String("token", token), zap.Error(err))
			res.Errors = append(res.Errors, err)
			continue
		}
		stroke, err := s.PlayNote(n)
		res.Strokes = append(res.Strokes, stroke)
		if nil != err {
			res.Errors = append(res.Errors, err)
		}
	}
	return res
}

// PlayNote draws the note's shapes and then sounds it. The shapes stay on
// the canvas even when the tone fails.
func (s *Session) PlayNote(n note.Note) (Stroke, error) {
	stroke := Stroke{Note: n, Polygons: make([]shape.Polygon, 0, s.ShapesPerNote)}
	bounds := s.Renderer.Bounds()
	c := n.Color()
	for i := 0; i < s.ShapesPerNote; i++ {
		center := shape.Center(bounds.Dx(), bounds.Dy(), s.Rand)
		center.X += float64(bounds.Min.X)
		center.Y += float64(bounds.Min.Y)
		p := shape.Generate(center, c, s.Rand)
		p.Opacity = shape.Opacity(s.Rand)
		s.Renderer.Fill(p)
		stroke.Polygons = append(stroke.Polygons, p)
	}
	s.played = append(s.played, n.String())
	s.Log.Debug("drew note",
		zap.Stringer("note", n),
		zap.String("color", c.Hex()),
		zap.Int("shapes", len(stroke.Polygons)),
	)

	if err := s.Player.Play(n.Frequency(), s.ToneDuration); nil != err {
		s.Log.Warn("unable to play note", zap.Stringer("note", n), zap.Error(err))
		return stroke, fmt.Errorf("unable to play %v: %w", n, err)
	}
	return stroke, nil
}

// Clear wipes the canvas and forgets the notes played so far.
func (s *Session) Clear() {
	s.Renderer.Clear()
	s.played = s.played[:0]
}

// Display is every note played since the last Clear, space separated.
func (s *Session) Display() string {
	return strings.Join(s.played, " ")
}
