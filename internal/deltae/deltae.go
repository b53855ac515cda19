// Package deltae computes perceptual color differences between CIE Lab
// colors.
//
// A difference of about 2.3 is a just-noticeable difference for
// [CIE1976]. The later formulas correct its over-weighting of saturated
// colors.
package deltae

import "math"

// Lab is a CIE L*a*b* color.
type Lab struct {
	L, A, B float64
}

// CIE1976 returns the Euclidean distance between a and b.
func CIE1976(a, b Lab) float64 {
	dL := a.L - b.L
	da := a.A - b.A
	db := a.B - b.B
	return math.Sqrt(dL*dL + da*da + db*db)
}

// CIE1994G returns the CIE94 difference with graphic arts weights.
// The formula is not symmetric: a is the reference color.
func CIE1994G(a, b Lab) float64 {
	return cie1994(a, b, 1, 0.045, 0.015)
}

// CIE1994T returns the CIE94 difference with textile weights.
func CIE1994T(a, b Lab) float64 {
	return cie1994(a, b, 2, 0.048, 0.014)
}

func cie1994(a, b Lab, kL, k1, k2 float64) float64 {
	dL := a.L - b.L
	c1 := math.Hypot(a.A, a.B)
	c2 := math.Hypot(b.A, b.B)
	dC := c1 - c2
	da := a.A - b.A
	db := a.B - b.B
	// Kept squared: rounding can make dH² slightly negative.
	dH2 := da*da + db*db - dC*dC
	sC := 1 + k1*c1
	sH := 1 + k2*c1
	return math.Sqrt(sq(dL/kL) + sq(dC/sC) + dH2/sq(sH))
}

// CIEDE2000 returns the CIEDE2000 difference between a and b, following
// Sharma, Wu and Dalal (2005).
func CIEDE2000(a, b Lab) float64 {
	const pow25_7 = 6103515625.0 // 25^7

	c1 := math.Hypot(a.A, a.B)
	c2 := math.Hypot(b.A, b.B)
	cBar7 := math.Pow((c1+c2)/2, 7)
	g := 0.5 * (1 - math.Sqrt(cBar7/(cBar7+pow25_7)))

	a1 := (1 + g) * a.A
	a2 := (1 + g) * b.A
	c1p := math.Hypot(a1, a.B)
	c2p := math.Hypot(a2, b.B)
	h1p := hueAngle(a.B, a1)
	h2p := hueAngle(b.B, a2)

	dLp := b.L - a.L
	dCp := c2p - c1p

	var dhp, hBarP float64
	switch {
	case c1p*c2p == 0:
		dhp = 0
		hBarP = h1p + h2p
	case math.Abs(h2p-h1p) <= 180:
		dhp = h2p - h1p
		hBarP = (h1p + h2p) / 2
	default:
		if h2p-h1p > 180 {
			dhp = h2p - h1p - 360
		} else {
			dhp = h2p - h1p + 360
		}
		if h1p+h2p < 360 {
			hBarP = (h1p + h2p + 360) / 2
		} else {
			hBarP = (h1p + h2p - 360) / 2
		}
	}
	dHp := 2 * math.Sqrt(c1p*c2p) * math.Sin(rad(dhp/2))

	lBarP := (a.L + b.L) / 2
	cBarP := (c1p + c2p) / 2
	cBarP7 := math.Pow(cBarP, 7)

	t := 1 -
		0.17*math.Cos(rad(hBarP-30)) +
		0.24*math.Cos(rad(2*hBarP)) +
		0.32*math.Cos(rad(3*hBarP+6)) -
		0.20*math.Cos(rad(4*hBarP-63))
	dTheta := 30 * math.Exp(-sq((hBarP-275)/25))
	rC := 2 * math.Sqrt(cBarP7/(cBarP7+pow25_7))

	sL := 1 + 0.015*sq(lBarP-50)/math.Sqrt(20+sq(lBarP-50))
	sC := 1 + 0.045*cBarP
	sH := 1 + 0.015*cBarP*t
	rT := -math.Sin(rad(2*dTheta)) * rC

	l := dLp / sL
	c := dCp / sC
	h := dHp / sH
	return math.Sqrt(l*l + c*c + h*h + rT*c*h)
}

// hueAngle returns atan2(y, x) in degrees in [0, 360), with 0 for the
// achromatic axis.
func hueAngle(y, x float64) float64 {
	if x == 0 && y == 0 {
		return 0
	}
	h := math.Atan2(y, x) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return h
}

func rad(deg float64) float64 { return deg * math.Pi / 180 }

func sq(x float64) float64 { return x * x }
