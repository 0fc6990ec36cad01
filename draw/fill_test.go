package draw

import (
	"testing"

	"github.com/BeatGlow/ks0108/pixel"
)

func TestPatterns(t *testing.T) {
	tests := []struct {
		name    string
		pattern Pattern
		x, y    int
		want    bool
	}{
		{"solid", Solid, 3, 7, true},
		{"empty", Empty, 3, 7, false},
		{"dots on step", Dots(2, 0, 0), 0, 0, true},
		{"dots between x", Dots(2, 0, 0), 1, 0, false},
		{"dots between y", Dots(2, 0, 0), 0, 1, false},
		{"dots next step", Dots(2, 0, 0), 2, 4, true},
		{"dots offset", Dots(2, 1, 1), 1, 1, true},
		{"dots offset miss", Dots(2, 1, 1), 2, 2, false},
		{"dots default distance", Dots(0, 0, 0), 2, 2, true},
		{"horizontal stripe row", HorizontalStripes(2), 5, 1, true},
		{"horizontal stripe gap", HorizontalStripes(2), 5, 2, false},
		{"vertical stripe column", VerticalStripes(2), 1, 5, true},
		{"vertical stripe gap", VerticalStripes(2), 2, 5, false},
		{"cross stripes on dot", CrossStripes(2, 0, 0), 0, 0, false},
		{"cross stripes off dot", CrossStripes(2, 0, 0), 1, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(it *testing.T) {
			if got := tt.pattern(tt.x, tt.y); got != tt.want {
				it.Errorf("pattern(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestFillAreaInterior(t *testing.T) {
	c := newTestCanvas()
	d := New(c)

	if err := d.Rectangle(10, 10, 20, 20, false, false); err != nil {
		t.Fatal(err)
	}
	border := c.lit()

	if err := d.FillArea(15, 15, Solid, false); err != nil {
		t.Fatal(err)
	}

	lit := c.lit()
	for x := 11; x <= 19; x++ {
		for y := 11; y <= 19; y++ {
			if !lit[[2]int{x, y}] {
				t.Errorf("expected interior pixel (%d,%d) lit", x, y)
			}
		}
	}
	// The border is untouched and nothing outside the outline changed.
	for p := range lit {
		interior := p[0] >= 11 && p[0] <= 19 && p[1] >= 11 && p[1] <= 19
		if !interior && !border[p] {
			t.Errorf("fill leaked to (%d,%d)", p[0], p[1])
		}
	}
	for p := range border {
		if !lit[p] {
			t.Errorf("fill removed border pixel (%d,%d)", p[0], p[1])
		}
	}
}

func TestFillAreaPattern(t *testing.T) {
	c := newTestCanvas()
	d := New(c)

	if err := d.Rectangle(10, 10, 16, 16, false, false); err != nil {
		t.Fatal(err)
	}
	if err := d.FillArea(13, 13, Dots(2, 0, 0), false); err != nil {
		t.Fatal(err)
	}

	// Pattern coordinates are local to the region's bounding box, whose
	// minimum corner is (11,11).
	for x := 11; x <= 15; x++ {
		for y := 11; y <= 15; y++ {
			want := (x-11)%2 == 0 && (y-11)%2 == 0
			got := c.At(x, y) == pixel.On
			if got != want {
				t.Errorf("interior pixel (%d,%d) lit=%v, want %v", x, y, got, want)
			}
		}
	}
}

func TestFillAreaSeedOutOfCanvas(t *testing.T) {
	c := newTestCanvas()
	d := New(c)

	// An off-canvas seed visits nothing; the bounding box guard turns it
	// into a no-op instead of a crash.
	if err := d.FillArea(500, 500, Solid, false); err != nil {
		t.Fatal(err)
	}
	if n := len(c.lit()); n != 0 {
		t.Fatalf("expected no lit pixels, got %d", n)
	}
}

func TestFillAreaStopsAtSeedColorBoundary(t *testing.T) {
	c := newTestCanvas()
	d := New(c)

	// Seeding on a lit region fills the lit region, not the background.
	if err := d.Rectangle(10, 10, 20, 20, true, false); err != nil {
		t.Fatal(err)
	}
	if err := d.FillArea(15, 15, Empty, false); err != nil {
		t.Fatal(err)
	}
	if n := len(c.lit()); n != 0 {
		t.Fatalf("expected the filled box to be blanked by the empty pattern, got %d lit", n)
	}
}

func TestFillScreen(t *testing.T) {
	c := newTestCanvas()
	d := New(c)

	if err := d.FillScreen(VerticalStripes(2)); err != nil {
		t.Fatal(err)
	}
	for x := 0; x < 128; x++ {
		for y := 0; y < 64; y++ {
			want := x%2 != 0
			if got := c.At(x, y) == pixel.On; got != want {
				t.Fatalf("pixel (%d,%d) lit=%v, want %v", x, y, got, want)
			}
		}
	}
}
