package chroma

import (
	"fmt"
	"math"
	"sort"

	"github.com/gogpu/chroma/internal/colorconv"
)

// Easing returns steps positions from 0 to 1 inclusive. steps is at
// least 2.
type Easing func(steps int) []float64

func ease(steps int, f func(t float64) float64) []float64 {
	ts := make([]float64, steps)
	for i := range ts {
		ts[i] = f(float64(i) / float64(steps-1))
	}
	return ts
}

// Linear spaces positions evenly.
func Linear(steps int) []float64 {
	return ease(steps, func(t float64) float64 { return t })
}

// EaseIn starts slowly and accelerates.
func EaseIn(steps int) []float64 {
	return ease(steps, func(t float64) float64 { return t * t })
}

// EaseOut starts quickly and decelerates.
func EaseOut(steps int) []float64 {
	return ease(steps, func(t float64) float64 { return -t * (t - 2) })
}

// EaseInOut accelerates to the midpoint and decelerates after it.
func EaseInOut(steps int) []float64 {
	return ease(steps, func(t float64) float64 {
		if t < 0.5 {
			return 2 * t * t
		}
		return -2*t*t + 4*t - 1
	})
}

// Lerp interpolates between a and b in sRGB. t is clamped to [0, 1].
func Lerp(a, b Color, t float64) Color {
	t = colorconv.ClampUnit(t)
	return FromRGB(
		a.r+(b.r-a.r)*t,
		a.g+(b.g-a.g)*t,
		a.b+(b.b-a.b)*t,
	)
}

// LerpLinear interpolates between a and b in linear light, which keeps
// the midpoint of complementary colors from turning muddy.
func LerpLinear(a, b Color, t float64) Color {
	t = colorconv.ClampUnit(t)
	mix := func(x, y float64) float64 {
		lx, ly := colorconv.SRGBToLinear(x), colorconv.SRGBToLinear(y)
		return colorconv.LinearToSRGB(lx + (ly-lx)*t)
	}
	return FromRGB(mix(a.r, b.r), mix(a.g, b.g), mix(a.b, b.b))
}

// Gradient returns steps colors from c to other, both included, spaced by
// easing. A nil easing means Linear.
func (c Color) Gradient(other Color, steps int, easing Easing) ([]Color, error) {
	if steps < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrGradientSteps, steps)
	}
	if easing == nil {
		easing = Linear
	}
	ts := easing(steps)
	colors := make([]Color, len(ts))
	for i, t := range ts {
		colors[i] = Lerp(c, other, t)
	}
	return colors, nil
}

// ExtendMode defines how ColorAt treats positions outside [0, 1].
type ExtendMode int

const (
	// ExtendPad extends edge colors beyond bounds (default behavior).
	ExtendPad ExtendMode = iota
	// ExtendRepeat repeats the gradient.
	ExtendRepeat
	// ExtendReflect mirrors the gradient.
	ExtendReflect
)

// ColorStop is a color at a position of a multi-stop gradient.
type ColorStop struct {
	Offset float64 // 0 to 1
	Color  Color
}

func sortStops(stops []ColorStop) []ColorStop {
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	return sorted
}

func applyExtendMode(t float64, mode ExtendMode) float64 {
	switch mode {
	case ExtendRepeat:
		t -= math.Floor(t)
	case ExtendReflect:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if int(period)%2 == 1 {
			t = 1 - t
		}
	default:
		t = colorconv.ClampUnit(t)
	}
	return t
}

// ColorAt returns the color at position t of the gradient through stops,
// interpolating in linear light. Stops need not be sorted. With no stops
// the result is black.
func ColorAt(stops []ColorStop, t float64, mode ExtendMode) Color {
	switch len(stops) {
	case 0:
		return Black
	case 1:
		return stops[0].Color
	}

	sorted := sortStops(stops)
	t = applyExtendMode(t, mode)

	idx := sort.Search(len(sorted), func(i int) bool {
		return sorted[i].Offset >= t
	})
	if idx == 0 {
		return sorted[0].Color
	}
	if idx >= len(sorted) {
		return sorted[len(sorted)-1].Color
	}

	s1, s2 := sorted[idx-1], sorted[idx]
	if s2.Offset == s1.Offset {
		return s1.Color
	}
	return LerpLinear(s1.Color, s2.Color, (t-s1.Offset)/(s2.Offset-s1.Offset))
}
