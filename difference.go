package chroma

import (
	"fmt"
	"math"

	"github.com/gogpu/chroma/internal/deltae"
)

// Method selects the formula used by Color.Difference.
type Method string

// Difference methods. Euclid works on RGB and is the cheapest; the others
// are delta-E formulas over CIE L*a*b*, where about 2.3 is a just
// noticeable difference.
const (
	Euclid    Method = "euclid"
	CIE1976   Method = "cie1976"
	CIE1994G  Method = "cie1994g" // graphic arts weights
	CIE1994T  Method = "cie1994t" // textile weights
	CIEDE2000 Method = "ciede2000"
)

// Methods lists the supported difference methods.
func Methods() []Method {
	return []Method{Euclid, CIE1976, CIE1994G, CIE1994T, CIEDE2000}
}

// ParseMethod returns the method named s. "cie2000" is accepted for
// CIEDE2000.
func ParseMethod(s string) (Method, error) {
	if s == "cie2000" {
		return CIEDE2000, nil
	}
	for _, m := range Methods() {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// Difference returns the distance between c and other. The CIE1994
// methods are not symmetric: c is the reference color. The zero Method
// means Euclid.
func (c Color) Difference(other Color, m Method) (float64, error) {
	var f func(a, b deltae.Lab) float64
	switch m {
	case Euclid, "":
		dr, dg, db := c.r-other.r, c.g-other.g, c.b-other.b
		return math.Sqrt(dr*dr + dg*dg + db*db), nil
	case CIE1976:
		f = deltae.CIE1976
	case CIE1994G:
		f = deltae.CIE1994G
	case CIE1994T:
		f = deltae.CIE1994T
	case CIEDE2000:
		f = deltae.CIEDE2000
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, string(m))
	}
	return f(c.lab(), other.lab()), nil
}

func (c Color) lab() deltae.Lab {
	l := c.Lab()
	return deltae.Lab{L: l.L, A: l.A, B: l.B}
}
