package session

import (
	"errors"
	"image"
	"strings"
	"testing"
	"time"

	"git.lost.host/meutraa/notecanvas/internal/graphics"
	"git.lost.host/meutraa/notecanvas/internal/note"
	"git.lost.host/meutraa/notecanvas/internal/shape"
	"git.lost.host/meutraa/notecanvas/internal/testdata"
)

type canvas struct {
	bounds image.Rectangle
	fills  []shape.Polygon
	clears int
}

func (c *canvas) Bounds() image.Rectangle { return c.bounds }
func (c *canvas) Clear()                  { c.clears++; c.fills = nil }
func (c *canvas) Fill(p shape.Polygon)    { c.fills = append(c.fills, p) }

type speaker struct {
	freqs []float64
	err   error
}

func (s *speaker) Play(freq float64, d time.Duration) error {
	s.freqs = append(s.freqs, freq)
	return s.err
}

func newSession(seed int64) (*Session, *canvas, *speaker) {
	c := &canvas{bounds: image.Rect(0, 0, 800, 600)}
	sp := &speaker{}
	return New(c, sp, testdata.Source(seed), nil), c, sp
}

func TestPlayBatches(t *testing.T) {
	batches, err := testdata.GetBatches()
	if nil != err {
		t.Fatal("unable to parse batches", err)
	}
	for _, b := range batches {
		s, c, sp := newSession(1)
		res := s.Play(b.Tokens)
		if len(res.Strokes) != b.Drawn ||
			res.Line() != b.Display ||
			strings.Join(res.Invalid(), "|") != strings.Join(b.Invalid, "|") ||
			len(res.Errors) != len(b.Invalid) ||
			len(c.fills) != b.Drawn*DefaultShapesPerNote ||
			len(sp.freqs) != b.Drawn ||
			s.Display() != b.Display {
			t.Log("tokens  ", b.Tokens)
			t.Log("strokes ", len(res.Strokes), "fills", len(c.fills), "tones", len(sp.freqs))
			t.Log("line    ", res.Line(), "display", s.Display())
			t.Log("invalid ", res.Invalid(), res.Errors)
			t.Log("expected", b)
			t.Fail()
		}
		if (nil == res.Err()) != (len(b.Invalid) == 0) {
			t.Errorf("%v: combined error %v", b.Tokens, res.Err())
		}
	}
}

func TestPlayScenario(t *testing.T) {
	s, c, sp := newSession(42)
	res := s.Play([]string{"C", "C#", "Z"})

	if len(res.Strokes) != 2 {
		t.Fatalf("%v strokes", len(res.Strokes))
	}
	red := graphics.Color{R: 255}
	lightRed := graphics.Color{R: 255, G: 127, B: 127}
	for i, expected := range []graphics.Color{red, lightRed} {
		for _, p := range res.Strokes[i].Polygons {
			if p.Color != expected {
				t.Errorf("stroke %v color %v, want %v", i, p.Color, expected)
			}
			if p.Opacity < shape.MinOpacity || p.Opacity > shape.MaxOpacity {
				t.Errorf("stroke %v opacity %v", i, p.Opacity)
			}
		}
	}
	if len(c.fills) != 6 {
		t.Errorf("%v fills", len(c.fills))
	}

	if len(res.Errors) != 1 {
		t.Fatalf("errors %v", res.Errors)
	}
	var inv *note.InvalidNoteError
	if !errors.As(res.Errors[0], &inv) || inv.Token != "Z" {
		t.Errorf("error %v", res.Errors[0])
	}

	if len(sp.freqs) != 2 || sp.freqs[0] != 261.63 || sp.freqs[1] <= sp.freqs[0] {
		t.Errorf("tones %v", sp.freqs)
	}
}

func TestPlayDeterministic(t *testing.T) {
	tokens := []string{"a", "b#", "e", "nope", "g"}
	a, _, _ := newSession(9)
	b, _, _ := newSession(9)
	ra, rb := a.Play(tokens), b.Play(tokens)
	for i := range ra.Strokes {
		pa, pb := ra.Strokes[i].Polygons, rb.Strokes[i].Polygons
		for j := range pa {
			if pa[j].Opacity != pb[j].Opacity || len(pa[j].Points) != len(pb[j].Points) {
				t.Fatalf("stroke %v polygon %v differs", i, j)
			}
			for k := range pa[j].Points {
				if pa[j].Points[k] != pb[j].Points[k] {
					t.Fatalf("stroke %v polygon %v vertex %v differs", i, j, k)
				}
			}
		}
	}
}

func TestPlayToneFailure(t *testing.T) {
	s, c, sp := newSession(3)
	sp.err = errors.New("no device")
	res := s.Play([]string{"C", "D"})
	if len(res.Strokes) != 2 || len(c.fills) != 6 {
		t.Errorf("strokes %v fills %v", len(res.Strokes), len(c.fills))
	}
	if len(res.Errors) != 2 || len(res.Invalid()) != 0 {
		t.Errorf("errors %v", res.Errors)
	}
	if !errors.Is(res.Errors[0], sp.err) {
		t.Errorf("error %v does not wrap the device error", res.Errors[0])
	}
}

func TestShapesPerNote(t *testing.T) {
	c := &canvas{bounds: image.Rect(100, 50, 300, 150)}
	s := New(c, nil, testdata.Source(11), nil)
	s.ShapesPerNote = 5
	s.Play([]string{"F", "G#"})
	if len(c.fills) != 10 {
		t.Fatalf("%v fills", len(c.fills))
	}
}

func TestClear(t *testing.T) {
	s, c, _ := newSession(5)
	s.Play([]string{"E", "f#"})
	if s.Display() != "E F#" {
		t.Errorf("display %q", s.Display())
	}
	s.Clear()
	if s.Display() != "" || c.clears != 1 || len(c.fills) != 0 {
		t.Errorf("after clear display %q clears %v fills %v", s.Display(), c.clears, len(c.fills))
	}
	s.Play([]string{"a"})
	if s.Display() != "A" {
		t.Errorf("display %q", s.Display())
	}
}
