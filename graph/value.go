package graph

import (
	"fmt"
	"strconv"
	"strings"
)

// Space names a color space. Spaces are nodes of the conversion graph.
type Space string

// Kind is the component type of a value.
type Kind uint8

const (
	// KindFloat values hold float64 components.
	KindFloat Kind = iota + 1
	// KindInt values hold int components.
	KindInt
	// KindString values hold a single string.
	KindString
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindFloat:
		return "float"
	case KindInt:
		return "int"
	case KindString:
		return "string"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Shape describes the components of a space: their kind and count.
// String shapes always have arity 1.
type Shape struct {
	Kind  Kind
	Arity int
}

// Common shapes.
var (
	Float3 = Shape{Kind: KindFloat, Arity: 3}
	Float4 = Shape{Kind: KindFloat, Arity: 4}
	Int1   = Shape{Kind: KindInt, Arity: 1}
	Int3   = Shape{Kind: KindInt, Arity: 3}
	Str    = Shape{Kind: KindString, Arity: 1}
)

// Valid reports whether s describes a usable shape.
func (s Shape) Valid() bool {
	switch s.Kind {
	case KindFloat, KindInt:
		return s.Arity > 0
	case KindString:
		return s.Arity == 1
	}
	return false
}

// String returns s in the form "float×3".
func (s Shape) String() string {
	return fmt.Sprintf("%s×%d", s.Kind, s.Arity)
}

// Value holds the components of a color in some space.
//
// A Value is immutable: constructors copy their arguments and accessors
// return copies. The zero Value has no shape and matches nothing.
type Value struct {
	kind   Kind
	floats []float64
	ints   []int
	str    string
}

// Floats returns a float value. Components may be spread,
// Floats(r, g, b), or packed, Floats(tuple[:]...).
func Floats(xs ...float64) Value {
	return Value{kind: KindFloat, floats: append([]float64(nil), xs...)}
}

// Ints returns an int value. Components may be spread or packed.
func Ints(xs ...int) Value {
	return Value{kind: KindInt, ints: append([]int(nil), xs...)}
}

// Text returns a string value.
func Text(s string) Value {
	return Value{kind: KindString, str: s}
}

// Shape returns the shape of v.
func (v Value) Shape() Shape {
	switch v.kind {
	case KindFloat:
		return Shape{Kind: KindFloat, Arity: len(v.floats)}
	case KindInt:
		return Shape{Kind: KindInt, Arity: len(v.ints)}
	case KindString:
		return Str
	}
	return Shape{}
}

// Float returns float component i. It panics if v is not a float value
// or i is out of range.
func (v Value) Float(i int) float64 {
	if v.kind != KindFloat {
		panic("graph: Float called on " + v.kind.String() + " value")
	}
	return v.floats[i]
}

// Int returns int component i. It panics if v is not an int value or i is
// out of range.
func (v Value) Int(i int) int {
	if v.kind != KindInt {
		panic("graph: Int called on " + v.kind.String() + " value")
	}
	return v.ints[i]
}

// FloatSlice returns a copy of the float components, or nil.
func (v Value) FloatSlice() []float64 {
	return append([]float64(nil), v.floats...)
}

// IntSlice returns a copy of the int components, or nil.
func (v Value) IntSlice() []int {
	return append([]int(nil), v.ints...)
}

// Text returns the string component, or "" for non-string values.
func (v Value) Text() string {
	return v.str
}

// Equal reports whether v and w have the same shape and components.
func (v Value) Equal(w Value) bool {
	if v.Shape() != w.Shape() {
		return false
	}
	switch v.kind {
	case KindFloat:
		for i := range v.floats {
			if v.floats[i] != w.floats[i] {
				return false
			}
		}
	case KindInt:
		for i := range v.ints {
			if v.ints[i] != w.ints[i] {
				return false
			}
		}
	case KindString:
		return v.str == w.str
	}
	return true
}

// String formats v as a tuple, e.g. "(1, 0, 0)" or "#ff0000".
func (v Value) String() string {
	var parts []string
	switch v.kind {
	case KindFloat:
		for _, f := range v.floats {
			parts = append(parts, strconv.FormatFloat(f, 'g', 6, 64))
		}
	case KindInt:
		for _, n := range v.ints {
			parts = append(parts, strconv.Itoa(n))
		}
	case KindString:
		return v.str
	default:
		return "()"
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Func converts a value of the edge's input shape into a value of its
// output shape. Errors are domain errors of the formula and are passed to
// the caller of Converter.Apply unchanged.
type Func func(Value) (Value, error)
