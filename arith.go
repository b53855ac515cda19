package chroma

import (
	"github.com/gogpu/chroma/graph"
	"github.com/gogpu/chroma/internal/colorconv"
)

type op uint8

const (
	opAdd op = iota
	opSub
	opMul
	opSubFrom
)

// Add returns c with d added to the matching component. Hue wraps around
// the wheel; RGB components of the result are clamped to [0, 1].
//
// Addition is commutative, so c.Add(d) also serves for d + c.
func (c Color) Add(d Delta) Color { return c.apply(d.delta(), opAdd) }

// Sub returns c with d subtracted from the matching component.
func (c Color) Sub(d Delta) Color { return c.apply(d.delta(), opSub) }

// Mul returns c with the matching component multiplied by d. Hue is not
// wrapped after multiplication.
func (c Color) Mul(d Delta) Color { return c.apply(d.delta(), opMul) }

// SubFrom returns d - c. The delta is treated as a full tuple in its space
// with zeros in the other components, so
//
//	c.SubFrom(chroma.Green(1))
//
// keeps only the green that c lacks.
func (c Color) SubFrom(d Delta) Color { return c.apply(d.delta(), opSubFrom) }

func (c Color) apply(d delta, o op) Color {
	var x [3]float64
	if d.space == SpaceRGB {
		x = [3]float64{c.r, c.g, c.b}
	} else {
		x[0], x[1], x[2] = c.floats3(d.space)
	}

	for i := range x {
		if d.index >= 0 && i != d.index {
			if o == opSubFrom {
				x[i] = -x[i]
			}
			continue
		}
		switch o {
		case opAdd:
			x[i] += d.value[i]
		case opSub:
			x[i] -= d.value[i]
		case opMul:
			x[i] *= d.value[i]
		case opSubFrom:
			x[i] = d.value[i] - x[i]
		}
	}

	// Lightness and saturation are left to the HLS formula.
	if d.space == SpaceHLS && o != opMul {
		x[0] = colorconv.Wrap(x[0])
	}
	if d.space == SpaceRGB {
		return FromRGB(x[0], x[1], x[2])
	}
	return mustFrom(d.space, graph.Floats(x[:]...))
}
