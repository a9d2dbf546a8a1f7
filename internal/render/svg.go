package render

import (
	"fmt"
	"image"
	"io"
	"math"
	"os"

	"git.lost.host/meutraa/notecanvas/internal/shape"
	svg "github.com/ajstarks/svgo"
)

const gradientID = "background"

// SVGRenderer remembers the polygons filled since the last Clear and
// writes them out as a vector image.
type SVGRenderer struct {
	width, height int
	polygons      []shape.Polygon
}

func NewSVGRenderer(width, height int) *SVGRenderer {
	return &SVGRenderer{width: width, height: height}
}

func (r *SVGRenderer) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.width, r.height)
}

func (r *SVGRenderer) Clear() {
	r.polygons = r.polygons[:0]
}

func (r *SVGRenderer) Fill(p shape.Polygon) {
	if len(p.Points) < 3 {
		return
	}
	r.polygons = append(r.polygons, p)
}

func (r *SVGRenderer) Polygons() []shape.Polygon {
	return r.polygons
}

func (r *SVGRenderer) WriteSVG(w io.Writer) {
	canvas := svg.New(w)
	canvas.Start(r.width, r.height)
	canvas.Def()
	canvas.RadialGradient(gradientID, 50, 50, uint8(math.Round(100/gradientSpread)), 50, 50, []svg.Offcolor{
		{Offset: 0, Color: GradientInner.Hex(), Opacity: 1},
		{Offset: 100, Color: GradientOuter.Hex(), Opacity: 1},
	})
	canvas.DefEnd()
	canvas.Rect(0, 0, r.width, r.height, fmt.Sprintf("fill:url(#%v)", gradientID))
	for _, p := range r.polygons {
		xs := make([]int, len(p.Points))
		ys := make([]int, len(p.Points))
		for i, pt := range p.Points {
			xs[i] = int(math.Round(pt.X))
			ys[i] = int(math.Round(pt.Y))
		}
		canvas.Polygon(xs, ys, fmt.Sprintf("fill:%v;fill-opacity:%.3f", p.Color.Hex(), p.Opacity))
	}
	canvas.End()
}

func (r *SVGRenderer) SaveSVG(path string) error {
	f, err := os.Create(path)
	if nil != err {
		return fmt.Errorf("unable to create %v: %w", path, err)
	}
	r.WriteSVG(f)
	return f.Close()
}
