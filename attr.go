package chroma

import (
	"math"
	"strconv"

	"github.com/gogpu/chroma/graph"
	"github.com/gogpu/chroma/internal/colorconv"
)

// Delta is a color component used with Color.Add, Sub, Mul and SubFrom.
// Implementations are Red, Green, Blue, Hue, Lightness, Saturation, Luma
// and Color itself, which acts on all three RGB components.
type Delta interface {
	delta() delta
}

// delta locates a component: index in the tuple of space, or all
// components when index is -1.
type delta struct {
	space graph.Space
	index int
	value [3]float64
}

func single(space graph.Space, index int, v float64) delta {
	d := delta{space: space, index: index}
	d.value[index] = v
	return d
}

// Red is the red component of a color.
type Red float64

// Green is the green component of a color.
type Green float64

// Blue is the blue component of a color.
type Blue float64

// Lightness is the HLS lightness of a color.
type Lightness float64

// Saturation is the HLS saturation of a color.
type Saturation float64

// Luma is the Y' component of a color in Y'UV.
type Luma float64

func (r Red) delta() delta        { return single(SpaceRGB, 0, float64(r)) }
func (g Green) delta() delta      { return single(SpaceRGB, 1, float64(g)) }
func (b Blue) delta() delta       { return single(SpaceRGB, 2, float64(b)) }
func (l Lightness) delta() delta  { return single(SpaceHLS, 1, float64(l)) }
func (s Saturation) delta() delta { return single(SpaceHLS, 2, float64(s)) }
func (y Luma) delta() delta       { return single(SpaceYUV, 0, float64(y)) }
func (h Hue) delta() delta        { return single(SpaceHLS, 0, h.turns) }
func (c Color) delta() delta {
	return delta{space: SpaceRGB, index: -1, value: [3]float64{c.r, c.g, c.b}}
}

func (r Red) String() string        { return "Red(" + formatG(float64(r)) + ")" }
func (g Green) String() string      { return "Green(" + formatG(float64(g)) + ")" }
func (b Blue) String() string       { return "Blue(" + formatG(float64(b)) + ")" }
func (l Lightness) String() string  { return "Lightness(" + formatG(float64(l)) + ")" }
func (s Saturation) String() string { return "Saturation(" + formatG(float64(s)) + ")" }
func (y Luma) String() string       { return "Luma(" + formatG(float64(y)) + ")" }

// Hue is an angle on the color wheel, stored as a fraction of a full turn
// in [0, 1). Out of range angles are wrapped.
type Hue struct {
	turns float64
}

// NewHue returns the hue n turns around the wheel.
func NewHue(n float64) Hue { return Hue{colorconv.Wrap(n)} }

// HueDeg returns the hue at deg degrees.
func HueDeg(deg float64) Hue { return NewHue(deg / 360) }

// HueRad returns the hue at rad radians.
func HueRad(rad float64) Hue { return NewHue(rad / (2 * math.Pi)) }

// Turns returns the hue as a fraction of a turn in [0, 1).
func (h Hue) Turns() float64 { return h.turns }

// Deg returns the hue in degrees in [0, 360).
func (h Hue) Deg() float64 { return h.turns * 360 }

// Rad returns the hue in radians in [0, 2π).
func (h Hue) Rad() float64 { return h.turns * 2 * math.Pi }

// String returns the hue in degrees, e.g. "Hue(deg=120)".
func (h Hue) String() string {
	return "Hue(deg=" + strconv.FormatFloat(h.Deg(), 'g', 12, 64) + ")"
}

// Red returns the red component of c.
func (c Color) Red() Red { return Red(c.r) }

// Green returns the green component of c.
func (c Color) Green() Green { return Green(c.g) }

// Blue returns the blue component of c.
func (c Color) Blue() Blue { return Blue(c.b) }

// Hue returns the HLS hue of c.
func (c Color) Hue() Hue { return NewHue(c.HLS().H) }

// Lightness returns the HLS lightness of c.
func (c Color) Lightness() Lightness { return Lightness(c.HLS().L) }

// Saturation returns the HLS saturation of c.
func (c Color) Saturation() Saturation { return Saturation(c.HLS().S) }

// Luma returns the Y'UV luma of c.
func (c Color) Luma() Luma { return Luma(c.YUV().Y) }
