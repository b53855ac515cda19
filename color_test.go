package chroma

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/chroma/graph"
	"github.com/gogpu/chroma/internal/colorconv"
)

var (
	red     = Color{1, 0, 0}
	blue    = Color{0, 0, 1}
	magenta = Color{1, 0, 1}
)

func floatNear(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}

func colorNear(a, b Color, epsilon float64) bool {
	return floatNear(a.r, b.r, epsilon) && floatNear(a.g, b.g, epsilon) && floatNear(a.b, b.b, epsilon)
}

func slicesNear(a, b []float64, epsilon float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !floatNear(a[i], b[i], epsilon) {
			return false
		}
	}
	return true
}

// grid returns colors on a 0.2 step lattice of the RGB cube.
func grid() []Color {
	var cs []Color
	for r := 0; r <= 5; r++ {
		for g := 0; g <= 5; g++ {
			for b := 0; b <= 5; b++ {
				cs = append(cs, FromRGB(float64(r)/5, float64(g)/5, float64(b)/5))
			}
		}
	}
	return cs
}

func TestScenarios(t *testing.T) {
	t.Run("hex", func(t *testing.T) {
		c, err := FromString("#f00")
		if err != nil {
			t.Fatal(err)
		}
		if c != red {
			t.Errorf("FromString(#f00) = %v, want red", c.RGB())
		}
	})
	t.Run("name", func(t *testing.T) {
		c, err := FromString("red")
		if err != nil {
			t.Fatal(err)
		}
		if c != red {
			t.Errorf("FromString(red) = %v, want red", c.RGB())
		}
	})
	t.Run("hls", func(t *testing.T) {
		if c := FromHLS(0, 0.5, 1); c != red {
			t.Errorf("FromHLS(0, 0.5, 1) = %v, want red", c.RGB())
		}
	})
	t.Run("lightness", func(t *testing.T) {
		c := Black.Add(Lightness(0.1))
		if got := c.HTML(); got != "#191919" {
			t.Errorf("black + Lightness(0.1) = %s, want #191919", got)
		}
	})
	t.Run("yuv", func(t *testing.T) {
		got := FromRGBBytes(0, 0, 255).YUV()
		want := YUV{0.114, 0.436, -0.100}
		if !floatNear(got.Y, want.Y, 1e-3) || !floatNear(got.U, want.U, 1e-3) || !floatNear(got.V, want.V, 1e-3) {
			t.Errorf("blue.YUV() = %+v, want about %+v", got, want)
		}
	})
	t.Run("no path", func(t *testing.T) {
		r := graph.NewRegistry()
		ident := func(v graph.Value) (graph.Value, error) { return v, nil }
		if err := r.Register(graph.Edge{Source: "rgb", Target: "hls", In: graph.Float3, Out: graph.Float3, Fn: ident}); err != nil {
			t.Fatal(err)
		}
		if err := r.Register(graph.Edge{Source: "island", Target: "island", In: graph.Float3, Out: graph.Float3, Fn: ident}); !errors.Is(err, graph.ErrSelfEdge) {
			t.Fatalf("self edge registered: %v", err)
		}
		if _, err := r.Converter("rgb", "island"); !errors.Is(err, graph.ErrUnknownSpace) {
			t.Errorf("Converter(rgb, island) error = %v, want ErrUnknownSpace", err)
		}
		if _, err := Convert(SpaceRGB, SpaceName, red.value()); !errors.Is(err, graph.ErrNoPath) {
			t.Errorf("Convert(rgb, name) error = %v, want ErrNoPath", err)
		}
	})
}

func TestConstructors(t *testing.T) {
	fromLuv := func(l, u, v float64) Color {
		c, err := FromLuv(l, u, v)
		if err != nil {
			t.Fatalf("FromLuv(%v, %v, %v): %v", l, u, v, err)
		}
		return c
	}

	tests := []struct {
		name string
		got  Color
		want RGB
		tol  float64
	}{
		{"rgb", FromRGB(1, 1, 1), RGB{1, 1, 1}, 0},
		{"rgb clamps high", FromRGB(2, 1, 1), RGB{1, 1, 1}, 0},
		{"rgb clamps low", FromRGB(1, -1, 1), RGB{1, 0, 1}, 0},
		{"rgb565 zero", FromRGB565(0), RGB{0, 0, 0}, 0},
		{"rgb565 full", FromRGB565(0xffff), RGB{1, 1, 1}, 1e-12},
		{"rgb bytes", FromRGBBytes(255, 255, 255), RGB{1, 1, 1}, 0},
		{"rgb24 red", FromRGB24(0xff), RGB{1, 0, 0}, 0},
		{"rgb24 blue", FromRGB24(0xff0000), RGB{0, 0, 1}, 0},
		{"yuv black", FromYUV(0, 0, 0), RGB{0, 0, 0}, 1e-7},
		{"yuv white", FromYUV(1, 0, 0), RGB{1, 1, 1}, 1e-5},
		{"yuv negative", FromYUV(-1, 0, 0), RGB{0, 0, 0}, 1e-7},
		{"yuv over", FromYUV(2, 0, 0), RGB{1, 1, 1}, 1e-7},
		{"yuv red", FromYUV(0.299, -0.14713769751693, 0.615), RGB{1, 0, 0}, 1e-7},
		{"yuv bytes black", FromYUVBytes(16, 128, 128), RGB{0, 0, 0}, 1e-7},
		{"yuv bytes white", FromYUVBytes(235, 128, 128), RGB{1, 1, 1}, 1e-7},
		{"yuv bytes under", FromYUVBytes(-255, 128, 128), RGB{0, 0, 0}, 1e-7},
		{"yuv bytes over", FromYUVBytes(512, 128, 128), RGB{1, 1, 1}, 1e-7},
		{"yuv bytes red", FromYUVBytes(81, 90, 240), RGB{1, 0, 0}, 1e-7},
		{"yiq white", FromYIQ(1, 0, 0), RGB{1, 1, 1}, 1e-5},
		{"yiq over", FromYIQ(2, 0, 0), RGB{1, 1, 1}, 1e-7},
		{"yiq under", FromYIQ(-1, 0, 0), RGB{0, 0, 0}, 1e-7},
		{"yiq red", FromYIQ(0.3, 0.599, 0.213), RGB{1, 0, 0}, 1e-7},
		{"xyz black", FromXYZ(0, 0, 0), RGB{0, 0, 0}, 1e-7},
		{"xyz white", FromXYZ(0.95047, 1, 1.08883), RGB{1, 1, 1}, 1e-5},
		{"xyz red", FromXYZ(0.4124564, 0.2126729, 0.0193339), RGB{1, 0, 0}, 1e-5},
		{"lab black", FromLab(0, 0, 0), RGB{0, 0, 0}, 1e-7},
		{"lab white", FromLab(100, 0, 0), RGB{1, 1, 1}, 1e-5},
		{"lab red", FromLab(53.24, 80.1, 67.2), RGB{1, 0, 0}, 1e-4},
		{"luv black", fromLuv(0, 0, 0), RGB{0, 0, 0}, 1e-7},
		{"luv white", fromLuv(100, 0, 0), RGB{1, 1, 1}, 1e-5},
		{"luv red", fromLuv(53.24079, 175.01503, 37.75643), RGB{1, 0, 0}, 1e-5},
		{"hls black", FromHLS(0, 0, 0), RGB{0, 0, 0}, 0},
		{"hls negative", FromHLS(0, -1, 0), RGB{0, 0, 0}, 0},
		{"hls white", FromHLS(0, 1, 0), RGB{1, 1, 1}, 0},
		{"hls over", FromHLS(0, 2, 0), RGB{1, 1, 1}, 0},
		{"hsv white", FromHSV(0, 0, 1), RGB{1, 1, 1}, 0},
		{"hsv over", FromHSV(0, 0, 2), RGB{1, 1, 1}, 0},
		{"hsv red", FromHSV(0, 1, 1), RGB{1, 0, 0}, 0},
		{"cmy black", FromCMY(1, 1, 1), RGB{0, 0, 0}, 0},
		{"cmy over", FromCMY(2, 1, 1), RGB{0, 0, 0}, 0},
		{"cmy white", FromCMY(0, 0, 0), RGB{1, 1, 1}, 0},
		{"cmy under", FromCMY(-1, 0, 0), RGB{1, 1, 1}, 0},
		{"cmy red", FromCMY(0, 1, 1), RGB{1, 0, 0}, 0},
		{"cmyk black", FromCMYK(0, 0, 0, 1), RGB{0, 0, 0}, 0},
		{"cmyk white", FromCMYK(0, 0, 0, 0), RGB{1, 1, 1}, 0},
		{"cmyk red", FromCMYK(0, 1, 1, 0), RGB{1, 0, 0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.got.RGB()
			if !floatNear(got.R, tt.want.R, tt.tol) || !floatNear(got.G, tt.want.G, tt.tol) || !floatNear(got.B, tt.want.B, tt.tol) {
				t.Errorf("got %+v, want %+v (±%g)", got, tt.want, tt.tol)
			}
		})
	}
}

func TestRGB565Bytes(t *testing.T) {
	tests := []struct {
		n    int
		want RGBBytes
	}{
		{1, RGBBytes{0, 0, 8}},
		{1 << 5, RGBBytes{0, 4, 0}},
		{1 << 11, RGBBytes{8, 0, 0}},
	}
	for _, tt := range tests {
		if got := FromRGB565(tt.n).RGBBytes(); got != tt.want {
			t.Errorf("FromRGB565(%#x).RGBBytes() = %+v, want %+v", tt.n, got, tt.want)
		}
	}
}

func TestRGBBytesClamp(t *testing.T) {
	got := FromRGBBytes(300, -10, 128)
	if want := FromRGBBytes(255, 0, 128); got != want {
		t.Errorf("FromRGBBytes(300, -10, 128) = %v, want %v", got.RGB(), want.RGB())
	}
	if b := got.RGBBytes(); b != (RGBBytes{255, 0, 128}) {
		t.Errorf("RGBBytes() = %+v", b)
	}
	if b := FromRGBBytes(1, 1, 1).RGBBytes(); b != (RGBBytes{1, 1, 1}) {
		t.Errorf("byte round trip = %+v, want {1 1 1}", b)
	}
}

func TestAccessors(t *testing.T) {
	white := White
	t.Run("exact", func(t *testing.T) {
		tests := []struct {
			name      string
			got, want any
		}{
			{"black html", Black.HTML(), "#000000"},
			{"red html", red.HTML(), "#ff0000"},
			{"white string", white.String(), "#ffffff"},
			{"red rgb", red.RGB(), RGB{1, 0, 0}},
			{"black rgb565", Black.RGB565(), 0},
			{"red rgb565", red.RGB565(), 0x1f << 11},
			{"white rgb565", white.RGB565(), 0xffff},
			{"red rgb24", red.RGB24(), 0xff},
			{"blue rgb24", blue.RGB24(), 0xff0000},
			{"red bytes", red.RGBBytes(), RGBBytes{255, 0, 0}},
			{"white bytes", white.RGBBytes(), RGBBytes{255, 255, 255}},
			{"black yuv bytes", Black.YUVBytes(), YUVBytes{16, 128, 128}},
			{"red yuv bytes", red.YUVBytes(), YUVBytes{82, 90, 240}},
			{"white yuv bytes", white.YUVBytes(), YUVBytes{235, 129, 128}},
			{"black hls", Black.HLS(), HLS{0, 0, 0}},
			{"white hls", white.HLS(), HLS{0, 1, 0}},
			{"red hls", red.HLS(), HLS{0, 0.5, 1}},
			{"black hsv", Black.HSV(), HSV{0, 0, 0}},
			{"white hsv", white.HSV(), HSV{0, 0, 1}},
			{"red hsv", red.HSV(), HSV{0, 1, 1}},
			{"black cmy", Black.CMY(), CMY{1, 1, 1}},
			{"white cmy", white.CMY(), CMY{0, 0, 0}},
			{"red cmy", red.CMY(), CMY{0, 1, 1}},
			{"black cmyk", Black.CMYK(), CMYK{0, 0, 0, 1}},
			{"white cmyk", white.CMYK(), CMYK{0, 0, 0, 0}},
			{"red cmyk", red.CMYK(), CMYK{0, 1, 1, 0}},
		}
		for _, tt := range tests {
			if diff := cmp.Diff(tt.want, tt.got); diff != "" {
				t.Errorf("%s mismatch (-want +got):\n%s", tt.name, diff)
			}
		}
	})

	t.Run("approximate", func(t *testing.T) {
		tests := []struct {
			name      string
			got, want []float64
			tol       float64
		}{
			{"black yuv", yuvSlice(Black.YUV()), []float64{0, 0, 0}, 1e-7},
			{"white yuv", yuvSlice(white.YUV()), []float64{1, 0, 0}, 1e-7},
			{"red yuv", yuvSlice(red.YUV()), []float64{0.299, -0.14713, 0.615}, 1e-3},
			{"black yiq", yiqSlice(Black.YIQ()), []float64{0, 0, 0}, 1e-7},
			{"white yiq", yiqSlice(white.YIQ()), []float64{1, 0, 0}, 1e-7},
			{"red yiq", yiqSlice(red.YIQ()), []float64{0.3, 0.599, 0.213}, 1e-7},
			{"black xyz", xyzSlice(Black.XYZ()), []float64{0, 0, 0}, 1e-7},
			{"white xyz", xyzSlice(white.XYZ()), []float64{0.95047, 1, 1.08883}, 1e-5},
			{"red xyz", xyzSlice(red.XYZ()), []float64{0.41246, 0.21267, 0.01933}, 1e-5},
			{"black lab", labSlice(Black.Lab()), []float64{0, 0, 0}, 1e-7},
			{"white lab", labSlice(white.Lab()), []float64{100, 0, 0}, 1e-4},
			{"red lab", labSlice(red.Lab()), []float64{53.24079, 80.09246, 67.2032}, 1e-4},
			{"black luv", luvSlice(Black.Luv()), []float64{0, 0, 0}, 1e-7},
			{"white luv", luvSlice(white.Luv()), []float64{100, 0, 0}, 1e-4},
			{"red luv", luvSlice(red.Luv()), []float64{53.24079, 175.01503, 37.75643}, 1e-4},
		}
		for _, tt := range tests {
			if !slicesNear(tt.got, tt.want, tt.tol) {
				t.Errorf("%s = %v, want %v (±%g)", tt.name, tt.got, tt.want, tt.tol)
			}
		}
	})
}

func yuvSlice(c YUV) []float64 { return []float64{c.Y, c.U, c.V} }
func yiqSlice(c YIQ) []float64 { return []float64{c.Y, c.I, c.Q} }
func xyzSlice(c XYZ) []float64 { return []float64{c.X, c.Y, c.Z} }
func labSlice(c Lab) []float64 { return []float64{c.L, c.A, c.B} }
func luvSlice(c Luv) []float64 { return []float64{c.L, c.U, c.V} }

func TestRoundTrip(t *testing.T) {
	tolerance := map[graph.Space]float64{
		SpaceYIQ:      1e-9,
		SpaceHLS:      1e-9,
		SpaceHSV:      1e-9,
		SpaceRGBBytes: 1e-9,
		SpaceHTML:     1e-9,
		SpaceRGB24:    1e-9,
		SpaceRGB565:   0.03,
		SpaceYUV:      5e-4,
		SpaceYUVBytes: 0.02,
		SpaceCMY:      1e-9,
		SpaceCMYK:     1e-9,
		SpaceXYZ:      1e-5,
		SpaceLuv:      1e-5,
		SpaceLab:      1e-5,
	}
	for _, space := range Accessors() {
		tol, ok := tolerance[space]
		if !ok {
			t.Errorf("no round trip tolerance for accessor %s", space)
			continue
		}
		t.Run(string(space), func(t *testing.T) {
			for _, c := range grid() {
				v, err := c.In(space)
				if err != nil {
					t.Fatalf("%v.In(%s): %v", c.RGB(), space, err)
				}
				back, err := From(space, v)
				if err != nil {
					t.Fatalf("From(%s, %v): %v", space, v, err)
				}
				if !colorNear(c, back, tol) {
					t.Errorf("%v -> %v -> %v", c.RGB(), v, back.RGB())
				}
			}
		})
	}
}

func TestCompleteness(t *testing.T) {
	wantAccessors := []graph.Space{
		SpaceYIQ, SpaceHLS, SpaceHSV, SpaceRGBBytes, SpaceHTML, SpaceRGB24,
		SpaceRGB565, SpaceYUV, SpaceYUVBytes, SpaceCMY, SpaceCMYK, SpaceXYZ,
		SpaceLuv, SpaceLab,
	}
	if diff := cmp.Diff(wantAccessors, Accessors()); diff != "" {
		t.Errorf("Accessors() mismatch (-want +got):\n%s", diff)
	}

	wantConstructors := []graph.Space{
		SpaceYIQ, SpaceHLS, SpaceHSV, SpaceRGBBytes, SpaceHTML, SpaceRGB24,
		SpaceName, SpaceRGB565, SpaceYUV, SpaceYUVBytes, SpaceCMY, SpaceCMYK,
		SpaceXYZ, SpaceLuv, SpaceLab,
	}
	if diff := cmp.Diff(wantConstructors, Constructors()); diff != "" {
		t.Errorf("Constructors() mismatch (-want +got):\n%s", diff)
	}

	// Every constructor accepts a value in its declared shape.
	for _, space := range Constructors() {
		var v graph.Value
		if space == SpaceName {
			v = graph.Text("Orange")
		} else {
			var err error
			if v, err = red.In(space); err != nil {
				t.Fatalf("red.In(%s): %v", space, err)
			}
		}
		if _, err := From(space, v); err != nil {
			t.Errorf("From(%s, %v): %v", space, v, err)
		}
	}
}

func TestConvert(t *testing.T) {
	t.Run("identity", func(t *testing.T) {
		v := graph.Floats(0.1, 0.2, 0.3)
		got, err := Convert(SpaceHLS, SpaceHLS, v)
		if err != nil {
			t.Fatal(err)
		}
		if !got.Equal(v) {
			t.Errorf("Convert(hls, hls) = %v, want %v", got, v)
		}
	})
	t.Run("identity converter", func(t *testing.T) {
		if _, err := DefaultRegistry().Converter(SpaceRGB, SpaceRGB); !errors.Is(err, graph.ErrSameSpace) {
			t.Errorf("Converter(rgb, rgb) error = %v, want ErrSameSpace", err)
		}
	})
	t.Run("identity shape", func(t *testing.T) {
		if _, err := Convert(SpaceHTML, SpaceHTML, graph.Ints(1)); !errors.Is(err, graph.ErrShape) {
			t.Errorf("error = %v, want ErrShape", err)
		}
	})
	t.Run("unknown space", func(t *testing.T) {
		if _, err := Convert("hcl", "hcl", graph.Floats(1, 2, 3)); !errors.Is(err, graph.ErrUnknownSpace) {
			t.Errorf("error = %v, want ErrUnknownSpace", err)
		}
		if _, err := Convert("hcl", SpaceRGB, graph.Floats(1, 2, 3)); !errors.Is(err, graph.ErrUnknownSpace) {
			t.Errorf("error = %v, want ErrUnknownSpace", err)
		}
	})
	t.Run("shape", func(t *testing.T) {
		if _, err := Convert(SpaceRGB, SpaceLab, graph.Ints(255, 0, 0)); !errors.Is(err, graph.ErrShape) {
			t.Errorf("error = %v, want ErrShape", err)
		}
	})
	t.Run("composite", func(t *testing.T) {
		got, err := Convert(SpaceName, SpaceRGB565, graph.Text("RED"))
		if err != nil {
			t.Fatal(err)
		}
		if !got.Equal(graph.Ints(0xf800)) {
			t.Errorf("Convert(name, rgb565) = %v, want (63488)", got)
		}
	})
	t.Run("deterministic", func(t *testing.T) {
		a, err := DefaultRegistry().Converter(SpaceHSV, SpaceLab)
		if err != nil {
			t.Fatal(err)
		}
		b, err := DefaultRegistry().Converter(SpaceHSV, SpaceLab)
		if err != nil {
			t.Fatal(err)
		}
		want := []graph.Space{SpaceHSV, SpaceRGB, SpaceXYZ, SpaceLab}
		if diff := cmp.Diff(want, a.Path()); diff != "" {
			t.Errorf("Path() mismatch (-want +got):\n%s", diff)
		}
		if a != b {
			t.Error("second lookup built a new converter")
		}
	})
}

func TestInputErrors(t *testing.T) {
	if _, err := FromHTML("#ggg"); !errors.Is(err, colorconv.ErrInvalidHTML) {
		t.Errorf("FromHTML(#ggg) error = %v, want ErrInvalidHTML", err)
	}
	if _, err := FromString("#ff00"); !errors.Is(err, colorconv.ErrInvalidHTML) {
		t.Errorf("FromString(#ff00) error = %v, want ErrInvalidHTML", err)
	}
	if _, err := FromString("notacolor"); !errors.Is(err, colorconv.ErrUnknownName) {
		t.Errorf("FromString(notacolor) error = %v, want ErrUnknownName", err)
	}

	// The formula error surfaces unchanged through the composed converter.
	vw := 9.0 / (0.95047 + 15 + 3*1.08883)
	if _, err := FromLuv(50, 0, -13*50*vw); err != colorconv.ErrDomain {
		t.Errorf("FromLuv with v' = 0 error = %v, want ErrDomain", err)
	}
}

func TestMustParse(t *testing.T) {
	if c := MustParse("Blue"); c != blue {
		t.Errorf("MustParse(Blue) = %v", c.RGB())
	}
	defer func() {
		if recover() == nil {
			t.Error("MustParse(bogus) did not panic")
		}
	}()
	MustParse("bogus")
}

func TestFormatting(t *testing.T) {
	navy := MustParse("#004")
	tests := []struct {
		got, want string
	}{
		{red.CSS(), "rgb(255, 0, 0)"},
		{navy.CSS(), "rgb(0, 0, 68)"},
		{navy.CSSHSL(), "hsl(240deg, 100%, 13.3333%)"},
		{navy.String(), "#000044"},
		{Black.CSSHSL(), "hsl(0deg, 0%, 0%)"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}
