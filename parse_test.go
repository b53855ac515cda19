package chroma

import (
	"errors"
	"math"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		args []any
		want Color
	}{
		{"hex", []any{"#f00"}, red},
		{"name", []any{"Magenta"}, magenta},
		{"color", []any{blue}, blue},
		{"array", []any{[3]float64{1, 0, 1}}, magenta},
		{"slice", []any{[]float64{0, 0, 1}}, blue},
		{"rgb24 zero", []any{0}, Black},
		{"rgb24 red", []any{0xff}, red},
		{"rgb24 blue", []any{0xff0000}, blue},
		{"rgb24 uint32", []any{uint32(0xff00ff)}, magenta},
		{"floats", []any{1.0, 0.0, 1.0}, magenta},
		{"ints in float range", []any{0, 0, 1}, blue},
		{"bytes", []any{255, 0, 0}, red},
		{"mixed bytes", []any{255.0, uint8(0), 255}, magenta},
		{"bytes clamped", []any{300, -10, 128}, FromRGBBytes(255, 0, 128)},
		{"negative clamped", []any{-1, 0, 0}, Black},
		{"huge clamped", []any{1e300, 0, 255}, magenta},
		{"hls record", []any{HLS{0, 0.5, 1}}, red},
		{"hsv record", []any{HSV{0, 1, 1}}, red},
		{"cmyk record", []any{CMYK{0, 0, 0, 1}}, Black},
		{"bytes record", []any{RGBBytes{0, 0, 255}}, blue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.args...)
			if err != nil {
				t.Fatalf("New(%v): %v", tt.args, err)
			}
			if got != tt.want {
				t.Errorf("New(%v) = %+v, want %+v", tt.args, got.RGB(), tt.want.RGB())
			}
		})
	}
}

func TestNewRecordApproximate(t *testing.T) {
	c, err := New(Lab{53.24079, 80.09246, 67.2032})
	if err != nil {
		t.Fatal(err)
	}
	if !colorNear(c, red, 1e-5) {
		t.Errorf("New(Lab) = %+v, want red", c.RGB())
	}
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name string
		args []any
	}{
		{"none", nil},
		{"two", []any{1, 2}},
		{"four", []any{1, 2, 3, 4}},
		{"single float", []any{0.1}},
		{"short slice", []any{[]float64{1, 2}}},
		{"long slice", []any{[]float64{1, 2, 3, 4}}},
		{"bool", []any{true}},
		{"string component", []any{"1", 0, 0}},
		{"nan", []any{math.NaN(), 0, 0}},
		{"inf", []any{0, math.Inf(1), 0}},
		{"negative inf", []any{0, 0, math.Inf(-1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.args...); !errors.Is(err, ErrInvalidArgs) {
				t.Errorf("New(%v) error = %v, want ErrInvalidArgs", tt.args, err)
			}
		})
	}
}

func TestFromKeywords(t *testing.T) {
	tests := []struct {
		name string
		kw   map[string]float64
		want Color
		tol  float64
	}{
		{"rgb", map[string]float64{"r": 1, "g": 0, "b": 1}, magenta, 0},
		{"rgb bytes", map[string]float64{"red": 0, "green": 0, "blue": 255}, blue, 0},
		{"yuv", map[string]float64{"y": 1, "u": 0, "v": 0}, White, 1e-5},
		{"yuv bytes", map[string]float64{"y": 16, "u": 128, "v": 128}, Black, 1e-7},
		{"yiq", map[string]float64{"y": 0.3, "i": 0.599, "q": 0.213}, red, 1e-7},
		{"hls", map[string]float64{"h": 0, "l": 0.5, "s": 1}, red, 0},
		{"hls long", map[string]float64{"hue": 0, "lightness": 0.5, "saturation": 1}, red, 0},
		{"hsv", map[string]float64{"h": 0, "s": 1, "v": 1}, red, 0},
		{"hsv long", map[string]float64{"hue": 0, "saturation": 1, "value": 1}, red, 0},
		{"xyz", map[string]float64{"x": 0, "y": 0, "z": 0}, Black, 1e-7},
		{"lab", map[string]float64{"l": 100, "a": 0, "b": 0}, White, 1e-5},
		{"luv", map[string]float64{"l": 100, "u": 0, "v": 0}, White, 1e-5},
		{"cmy", map[string]float64{"c": 0, "m": 1, "y": 1}, red, 0},
		{"cmy long", map[string]float64{"cyan": 1, "magenta": 1, "yellow": 1}, Black, 0},
		{"cmyk", map[string]float64{"c": 0, "m": 0, "y": 0, "k": 1}, Black, 0},
		{"cmyk long", map[string]float64{"cyan": 0, "magenta": 0, "yellow": 0, "black": 0}, White, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromKeywords(tt.kw)
			if err != nil {
				t.Fatalf("FromKeywords(%v): %v", tt.kw, err)
			}
			if !colorNear(got, tt.want, tt.tol) {
				t.Errorf("FromKeywords(%v) = %+v, want %+v", tt.kw, got.RGB(), tt.want.RGB())
			}
		})
	}
}

func TestFromKeywordsErrors(t *testing.T) {
	tests := []map[string]float64{
		nil,
		{"r": 1, "g": 0},
		{"r": 1, "g": 0, "x": 0},
		{"h": 0, "l": 0, "s": 0, "v": 0},
	}
	for _, kw := range tests {
		if _, err := FromKeywords(kw); !errors.Is(err, ErrInvalidArgs) {
			t.Errorf("FromKeywords(%v) error = %v, want ErrInvalidArgs", kw, err)
		}
	}
}
