// Package draw implements a software rasterizer for 1-bit displays.
//
// All operations mutate the in-memory canvas of a [Canvas]; nothing is
// written to hardware until the canvas is committed, either explicitly or
// through the canvas' auto-commit setting.
package draw

import (
	"image/draw"
	"math"

	"github.com/golang/freetype/truetype"

	"github.com/BeatGlow/ks0108/pixel"
)

// Canvas is the drawing surface, typically a [ks0108.Display] or
// [ks0108.Sim].
type Canvas interface {
	draw.Image

	// Commit pushes the canvas to the display.
	Commit(full, live bool) error

	// AutoCommit reports whether mutations are committed immediately.
	AutoCommit() bool
}

// Draw rasterizes shapes onto a canvas. It holds no pixel state of its own.
type Draw struct {
	c     Canvas
	fonts map[string]*truetype.Font
}

// New returns a rasterizer for the given canvas.
func New(c Canvas) *Draw {
	return &Draw{
		c: c,
	}
}

// commit pushes the canvas when auto-commit is enabled.
func (d *Draw) commit() error {
	if d.c.AutoCommit() {
		return d.c.Commit(false, true)
	}
	return nil
}

// Pixel sets (or clears) the pixel at (x, y). Coordinates outside the canvas
// are silently ignored; shape math routinely produces them at the edges.
func (d *Draw) Pixel(x, y int, clear bool) {
	d.c.Set(x, y, pixel.Mono{On: !clear})
}

// GetPixel returns the pixel at (x, y). The second return value is false for
// coordinates outside the canvas; callers must not treat that as unlit.
func (d *Draw) GetPixel(x, y int) (on, ok bool) {
	m, ok := d.c.At(x, y).(pixel.Mono)
	return m.On, ok
}

// Line draws a line between (startX, startY) and (stopX, stopY) inclusive.
// On steep slopes every row between consecutive steps is filled so the line
// has no holes.
func (d *Draw) Line(startX, startY, stopX, stopY int, clear bool) error {
	if startX == stopX {
		y0, y1 := startY, stopY
		if y1 < y0 {
			y0, y1 = y1, y0
		}
		for y := y0; y <= y1; y++ {
			d.Pixel(startX, y, clear)
		}
		return d.commit()
	}
	if startX > stopX {
		startX, stopX = stopX, startX
		startY, stopY = stopY, startY
	}

	m := float64(stopY-startY) / float64(stopX-startX)
	oldY := startY
	for x := startX; x <= stopX; x++ {
		y := int(math.Round(m*float64(x-startX) + float64(startY)))
		if y >= oldY {
			for i := oldY + 1; i < y; i++ {
				d.Pixel(x, i, clear)
			}
		} else {
			for i := y + 1; i < oldY; i++ {
				d.Pixel(x, i, clear)
			}
		}
		d.Pixel(x, y, clear)
		oldY = y
	}

	return d.commit()
}

// PolarLine draws a line of the given length from (x, y) at an angle in
// degrees, with 0° pointing up and angles increasing clockwise.
func (d *Draw) PolarLine(x, y int, angle, length float64, clear bool) error {
	stopX, stopY := polarToRect(x, y, angle, length)
	return d.Line(x, y, stopX, stopY, clear)
}

// polarToRect converts an angle (0° = up, clockwise) and length to the
// rectangular end point.
func polarToRect(x, y int, angle, length float64) (stopX, stopY int) {
	var (
		w = int(math.Round(math.Sin(radians(angle)) * length))
		h = int(math.Round(math.Cos(radians(angle)) * length))
	)
	return x + w, y - h
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Rectangle draws a rectangle with corners (startX, startY) and
// (stopX, stopY), outlined or filled.
//
// The scan ranges extend one pixel below the smaller bound on both axes.
// This matches the behavior of the reference implementation; callers depend
// on the literal shape, so it is kept as-is.
func (d *Draw) Rectangle(startX, startY, stopX, stopY int, fill, clear bool) error {
	xMin, xMax := startX-1, stopX
	if stopX < startX {
		xMin, xMax = stopX-1, startX
	}
	yMin, yMax := startY-1, stopY
	if stopY < startY {
		yMin, yMax = stopY-1, startY
	}

	for x := xMin; x <= xMax; x++ {
		if fill {
			for y := yMin; y <= yMax; y++ {
				d.Pixel(x, y, clear)
			}
		} else {
			d.Pixel(x, startY, clear)
			d.Pixel(x, stopY, clear)
		}
	}

	if !fill {
		for y := yMin; y <= yMax; y++ {
			d.Pixel(startX, y, clear)
			d.Pixel(stopX, y, clear)
		}
	}

	return d.commit()
}
