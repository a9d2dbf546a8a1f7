package render

import (
	"image"

	"git.lost.host/meutraa/notecanvas/internal/shape"
)

type Renderer interface {
	Bounds() image.Rectangle
	// Clear wipes every polygon and repaints the background.
	Clear()
	Fill(p shape.Polygon)
}

// Multi paints onto every renderer it holds. Bounds come from the first.
type Multi []Renderer

func (m Multi) Bounds() image.Rectangle {
	if len(m) == 0 {
		return image.Rectangle{}
	}
	return m[0].Bounds()
}

func (m Multi) Clear() {
	for _, r := range m {
		r.Clear()
	}
}

func (m Multi) Fill(p shape.Polygon) {
	for _, r := range m {
		r.Fill(p)
	}
}
