package shape

import (
	"math"

	"git.lost.host/meutraa/notecanvas/internal/graphics"
)

const (
	MinVertices = 4
	MaxVertices = 8
	MinRadius   = 50.0
	MaxRadius   = 200.0
	MinOpacity  = 0.5
	MaxOpacity  = 1.0
)

// Source supplies every random number used here. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Float64() float64
}

type Polygon struct {
	Points  []graphics.Point
	Color   graphics.Color
	Opacity float64 // 1 unless the caller picks one with Opacity
}

// Generate builds a fan of 4 to 8 vertices around center. Each vertex sits
// in its own angular slice with a random radius, so the loop may cross itself.
func Generate(center graphics.Point, c graphics.Color, rng Source) Polygon {
	n := MinVertices + rng.Intn(MaxVertices-MinVertices+1)
	step := 2 * math.Pi / float64(n)
	points := make([]graphics.Point, n)
	for i := range points {
		radius := MinRadius + rng.Float64()*(MaxRadius-MinRadius)
		angle := float64(i)*step + rng.Float64()*(step/2)
		points[i] = graphics.Point{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		}
	}
	return Polygon{Points: points, Color: c, Opacity: 1}
}

// Opacity draws a fill opacity in [0.5, 1.0).
func Opacity(rng Source) float64 {
	return MinOpacity + rng.Float64()*(MaxOpacity-MinOpacity)
}

// Center picks a point uniformly inside a width x height area.
func Center(width, height int, rng Source) graphics.Point {
	return graphics.Point{
		X: rng.Float64() * float64(width),
		Y: rng.Float64() * float64(height),
	}
}
