package note

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"git.lost.host/meutraa/notecanvas/internal/graphics"
)

// SharpFactor is how far a sharp note's color is blended toward white.
const SharpFactor = 0.5

const sharpMarker = "#"

// ErrInvalidNote is matched by every *InvalidNoteError.
var ErrInvalidNote = errors.New("invalid note")

type InvalidNoteError struct {
	Token string
}

func (e *InvalidNoteError) Error() string {
	return fmt.Sprintf("invalid note %q, valid notes are %v", e.Token, strings.Join(Letters(), ", "))
}

func (e *InvalidNoteError) Is(target error) bool {
	return target == ErrInvalidNote
}

type Note struct {
	Letter byte // One of C D E F G A B
	Sharp  bool
}

var (
	letters     = [...]byte{'C', 'D', 'E', 'F', 'G', 'A', 'B'}
	semitone    = math.Pow(2, 1.0/12)
	baseColors  = map[byte]graphics.Color{
		'C': {R: 0xFF, G: 0x00, B: 0x00}, // red
		'D': {R: 0xFF, G: 0x7F, B: 0x00}, // orange
		'E': {R: 0xFF, G: 0xFF, B: 0x00}, // yellow
		'F': {R: 0x00, G: 0xFF, B: 0x00}, // green
		'G': {R: 0x00, G: 0x00, B: 0xFF}, // blue
		'A': {R: 0x4B, G: 0x00, B: 0x82}, // indigo
		'B': {R: 0x8B, G: 0x00, B: 0xFF}, // violet
	}
	frequencies = map[byte]float64{
		'C': 261.63,
		'D': 293.66,
		'E': 329.63,
		'F': 349.23,
		'G': 392.0,
		'A': 440.0,
		'B': 493.88,
	}
)

// Letters returns the valid note letters in scale order.
func Letters() []string {
	ls := make([]string, len(letters))
	for i, l := range letters {
		ls[i] = string(l)
	}
	return ls
}

// Parse reads a token such as "c", " D# " or "A".
func Parse(token string) (Note, error) {
	t := strings.ToUpper(strings.TrimSpace(token))
	sharp := strings.HasSuffix(t, sharpMarker)
	letter := strings.TrimSuffix(t, sharpMarker)
	if len(letter) != 1 {
		return Note{}, &InvalidNoteError{Token: token}
	}
	if _, ok := baseColors[letter[0]]; !ok {
		return Note{}, &InvalidNoteError{Token: token}
	}
	return Note{Letter: letter[0], Sharp: sharp}, nil
}

func (n Note) String() string {
	if n.Sharp {
		return string(n.Letter) + sharpMarker
	}
	return string(n.Letter)
}

func (n Note) Color() graphics.Color {
	c := baseColors[n.Letter]
	if n.Sharp {
		return c.Lighten(SharpFactor)
	}
	return c
}

func (n Note) Frequency() float64 {
	f := frequencies[n.Letter]
	if n.Sharp {
		f *= semitone
	}
	return f
}

// ColorFor resolves a raw token to its color, lightened when sharp.
func ColorFor(token string) (graphics.Color, error) {
	n, err := Parse(token)
	if nil != err {
		return graphics.Color{}, err
	}
	return n.Color(), nil
}

// FrequencyFor returns the pitch in Hz of letter, one semitone up when sharp.
func FrequencyFor(letter string, sharp bool) (float64, error) {
	l := strings.ToUpper(strings.TrimSpace(letter))
	if len(l) != 1 {
		return 0, &InvalidNoteError{Token: letter}
	}
	if _, ok := frequencies[l[0]]; !ok {
		return 0, &InvalidNoteError{Token: letter}
	}
	return Note{Letter: l[0], Sharp: sharp}.Frequency(), nil
}
