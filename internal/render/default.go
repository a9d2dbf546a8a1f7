package render

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"git.lost.host/meutraa/notecanvas/internal/graphics"
	"git.lost.host/meutraa/notecanvas/internal/shape"
	"golang.org/x/image/vector"
)

var (
	GradientInner = graphics.White
	GradientOuter = graphics.Color{R: 0xDD, G: 0xDD, B: 0xDD}
)

// gradientSpread is the ratio of canvas width to gradient radius.
const gradientSpread = 1.3

// DefaultRenderer rasterizes polygons onto an in-memory RGBA canvas.
type DefaultRenderer struct {
	img        *image.RGBA
	background *image.RGBA
	rast       *vector.Rasterizer
}

func NewDefaultRenderer(width, height int) *DefaultRenderer {
	r := &DefaultRenderer{
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		background: radialGradient(width, height),
		rast:       vector.NewRasterizer(width, height),
	}
	r.Clear()
	return r
}

func radialGradient(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	cx, cy := float64(width)/2, float64(height)/2
	radius := float64(width) / gradientSpread
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			t := 1.0
			if radius > 0 {
				t = math.Min(math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy)/radius, 1)
			}
			img.SetRGBA(x, y, GradientInner.Blend(GradientOuter, t).Opaque())
		}
	}
	return img
}

func (r *DefaultRenderer) Bounds() image.Rectangle {
	return r.img.Bounds()
}

func (r *DefaultRenderer) Clear() {
	draw.Draw(r.img, r.img.Bounds(), r.background, image.Point{}, draw.Src)
}

func (r *DefaultRenderer) Fill(p shape.Polygon) {
	if len(p.Points) < 3 {
		return
	}
	size := r.img.Bounds().Size()
	r.rast.Reset(size.X, size.Y)
	r.rast.DrawOp = draw.Over
	r.rast.MoveTo(float32(p.Points[0].X), float32(p.Points[0].Y))
	for _, pt := range p.Points[1:] {
		r.rast.LineTo(float32(pt.X), float32(pt.Y))
	}
	r.rast.ClosePath()
	r.rast.Draw(r.img, r.img.Bounds(), image.NewUniform(p.Color.NRGBA(p.Opacity)), image.Point{})
}

// Image exposes the canvas. It is overwritten by later draws.
func (r *DefaultRenderer) Image() *image.RGBA {
	return r.img
}

func (r *DefaultRenderer) WritePNG(w io.Writer) error {
	return png.Encode(w, r.img)
}

func (r *DefaultRenderer) SavePNG(path string) error {
	f, err := os.Create(path)
	if nil != err {
		return fmt.Errorf("unable to create %v: %w", path, err)
	}
	if err := r.WritePNG(f); nil != err {
		f.Close()
		return fmt.Errorf("unable to encode %v: %w", path, err)
	}
	return f.Close()
}
