package draw

import (
	"testing"

	"github.com/BeatGlow/ks0108/pixel"
)

// testCanvas is a 128x64 canvas that counts commits instead of talking to
// hardware.
type testCanvas struct {
	*pixel.MonoPageImage
	commits int
	auto    bool
}

func newTestCanvas() *testCanvas {
	return &testCanvas{
		MonoPageImage: pixel.NewMonoPageImage(128, 64),
	}
}

func (c *testCanvas) Commit(full, live bool) error {
	c.commits++
	return nil
}

func (c *testCanvas) AutoCommit() bool {
	return c.auto
}

// lit returns the coordinates of all lit pixels.
func (c *testCanvas) lit() map[[2]int]bool {
	out := make(map[[2]int]bool)
	b := c.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if c.At(x, y) == pixel.On {
				out[[2]int{x, y}] = true
			}
		}
	}
	return out
}

func TestPixel(t *testing.T) {
	c := newTestCanvas()
	d := New(c)

	d.Pixel(5, 5, false)
	if on, ok := d.GetPixel(5, 5); !ok || !on {
		t.Fatal("expected pixel (5,5) lit")
	}
	d.Pixel(5, 5, true)
	if on, ok := d.GetPixel(5, 5); !ok || on {
		t.Fatal("expected pixel (5,5) unlit")
	}
}

func TestPixelOutOfRange(t *testing.T) {
	c := newTestCanvas()
	d := New(c)

	// Out of range coordinates are no-ops, not errors.
	d.Pixel(200, 5, false)
	d.Pixel(5, 200, false)
	d.Pixel(-1, 5, false)
	if n := len(c.lit()); n != 0 {
		t.Fatalf("expected no lit pixels, got %d", n)
	}

	if _, ok := d.GetPixel(200, 5); ok {
		t.Error("expected GetPixel(200,5) not ok")
	}
	if _, ok := d.GetPixel(5, 200); ok {
		t.Error("expected GetPixel(5,200) not ok")
	}
	if _, ok := d.GetPixel(5, 5); !ok {
		t.Error("expected GetPixel(5,5) ok")
	}
}

func TestLineVertical(t *testing.T) {
	c := newTestCanvas()
	d := New(c)

	if err := d.Line(0, 0, 0, 10, false); err != nil {
		t.Fatal(err)
	}

	lit := c.lit()
	if len(lit) != 11 {
		t.Fatalf("expected 11 lit pixels, got %d", len(lit))
	}
	for y := 0; y <= 10; y++ {
		if !lit[[2]int{0, y}] {
			t.Errorf("expected pixel (0,%d) lit", y)
		}
	}
}

func TestLineVerticalReversed(t *testing.T) {
	c := newTestCanvas()
	d := New(c)

	if err := d.Line(3, 10, 3, 2, false); err != nil {
		t.Fatal(err)
	}
	for y := 2; y <= 10; y++ {
		if c.At(3, y) != pixel.On {
			t.Errorf("expected pixel (3,%d) lit", y)
		}
	}
}

// columnRows returns the lit rows of column x as an interval, requiring the
// rows to be contiguous.
func columnRows(t *testing.T, c *testCanvas, x int) (min, max int) {
	t.Helper()
	min, max = -1, -1
	for y := 0; y < 64; y++ {
		if c.At(x, y) == pixel.On {
			if min < 0 {
				min = y
			}
			max = y
		} else if min >= 0 && max >= 0 && y > max {
			// Confirm nothing lit after a gap.
			for yy := y; yy < 64; yy++ {
				if c.At(x, yy) == pixel.On {
					t.Fatalf("column %d has a vertical gap at row %d", x, y)
				}
			}
			break
		}
	}
	if min < 0 {
		t.Fatalf("column %d has no lit pixels", x)
	}
	return min, max
}

func TestLineGapFree(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		firstX, lastX  int
		firstY, lastY  int
	}{
		{"shallow", 0, 0, 10, 5, 0, 10, 0, 5},
		{"steep", 0, 0, 2, 10, 0, 2, 0, 10},
		{"steep down", 0, 10, 2, 0, 0, 2, 10, 0},
		{"swapped endpoints", 10, 5, 0, 0, 0, 10, 0, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(it *testing.T) {
			c := newTestCanvas()
			d := New(c)
			if err := d.Line(tt.x0, tt.y0, tt.x1, tt.y1, false); err != nil {
				it.Fatal(err)
			}

			if c.At(tt.firstX, tt.firstY) != pixel.On {
				it.Errorf("expected start pixel (%d,%d) lit", tt.firstX, tt.firstY)
			}
			if c.At(tt.lastX, tt.lastY) != pixel.On {
				it.Errorf("expected stop pixel (%d,%d) lit", tt.lastX, tt.lastY)
			}

			// Every column between the endpoints is lit and vertically
			// adjacent to its neighbor, so the line has no holes.
			prevMin, prevMax := columnRows(it, c, tt.firstX)
			for x := tt.firstX + 1; x <= tt.lastX; x++ {
				min, max := columnRows(it, c, x)
				if min > prevMax+1 || max < prevMin-1 {
					it.Errorf("columns %d and %d leave a vertical gap", x-1, x)
				}
				prevMin, prevMax = min, max
			}
		})
	}
}

func TestPolarLine(t *testing.T) {
	c := newTestCanvas()
	d := New(c)

	// 0° points up.
	if err := d.PolarLine(10, 10, 0, 5, false); err != nil {
		t.Fatal(err)
	}
	for y := 5; y <= 10; y++ {
		if c.At(10, y) != pixel.On {
			t.Errorf("expected pixel (10,%d) lit", y)
		}
	}

	// 90° points right.
	c = newTestCanvas()
	d = New(c)
	if err := d.PolarLine(10, 10, 90, 5, false); err != nil {
		t.Fatal(err)
	}
	for x := 10; x <= 15; x++ {
		if c.At(x, 10) != pixel.On {
			t.Errorf("expected pixel (%d,10) lit", x)
		}
	}
}

// The rectangle scan ranges extend one pixel below the smaller bound. The
// shape below pins the literal historic behavior; it is intentionally not
// the naive inclusive box.
func TestRectangleOutline(t *testing.T) {
	c := newTestCanvas()
	d := New(c)

	if err := d.Rectangle(10, 10, 20, 20, false, false); err != nil {
		t.Fatal(err)
	}

	want := make(map[[2]int]bool)
	for x := 9; x <= 20; x++ {
		want[[2]int{x, 10}] = true
		want[[2]int{x, 20}] = true
	}
	for y := 9; y <= 20; y++ {
		want[[2]int{10, y}] = true
		want[[2]int{20, y}] = true
	}

	lit := c.lit()
	for p := range want {
		if !lit[p] {
			t.Errorf("expected pixel (%d,%d) lit", p[0], p[1])
		}
	}
	for p := range lit {
		if !want[p] {
			t.Errorf("unexpected lit pixel (%d,%d)", p[0], p[1])
		}
	}
}

func TestRectangleFill(t *testing.T) {
	c := newTestCanvas()
	d := New(c)

	if err := d.Rectangle(10, 10, 20, 20, true, false); err != nil {
		t.Fatal(err)
	}

	lit := c.lit()
	if want := 12 * 12; len(lit) != want {
		t.Fatalf("expected %d lit pixels, got %d", want, len(lit))
	}
	for x := 9; x <= 20; x++ {
		for y := 9; y <= 20; y++ {
			if !lit[[2]int{x, y}] {
				t.Errorf("expected pixel (%d,%d) lit", x, y)
			}
		}
	}
}

func TestRectangleReversedCorners(t *testing.T) {
	c := newTestCanvas()
	d := New(c)
	if err := d.Rectangle(20, 20, 10, 10, true, false); err != nil {
		t.Fatal(err)
	}
	lit := c.lit()
	if want := 12 * 12; len(lit) != want {
		t.Fatalf("expected %d lit pixels, got %d", want, len(lit))
	}
	if !lit[[2]int{9, 9}] || !lit[[2]int{20, 20}] {
		t.Error("expected corners (9,9) and (20,20) lit")
	}
}

func TestAutoCommit(t *testing.T) {
	c := newTestCanvas()
	c.auto = true
	d := New(c)

	if err := d.Line(0, 0, 10, 10, false); err != nil {
		t.Fatal(err)
	}
	if c.commits != 1 {
		t.Fatalf("expected 1 commit, got %d", c.commits)
	}

	c.auto = false
	if err := d.Line(0, 0, 10, 10, false); err != nil {
		t.Fatal(err)
	}
	if c.commits != 1 {
		t.Fatalf("expected no further commits, got %d", c.commits)
	}
}

func TestFunctionPlot(t *testing.T) {
	c := newTestCanvas()
	d := New(c)

	identity := func(x float64) float64 { return x }
	if err := d.FunctionPlot(identity, 0, 10, 32, 1, 0, 10, false); err != nil {
		t.Fatal(err)
	}
	for i := 0; i <= 10; i++ {
		if c.At(i, 32-i) != pixel.On {
			t.Errorf("expected pixel (%d,%d) lit", i, 32-i)
		}
	}
}

func TestAnalogClock(t *testing.T) {
	c := newTestCanvas()
	d := New(c)

	if err := d.AnalogClock(32, 32, 20, &ClockConfig{
		Hour:   -1,
		Minute: -1,
		Second: 0,
	}); err != nil {
		t.Fatal(err)
	}

	// The second hand at :00 points straight up, length 0.85 * 20 = 17.
	for y := 15; y <= 32; y++ {
		if c.At(32, y) != pixel.On {
			t.Errorf("expected second hand pixel (32,%d) lit", y)
		}
	}
	// The outline passes through the circle's topmost point.
	if c.At(32, 12) != pixel.On {
		t.Error("expected circle top (32,12) lit")
	}
}
