package draw

import "image"

// FillArea flood fills the region of equal color around the seed (x, y)
// with a pattern. The fill explores 4-connected neighbors whose color
// matches the seed's original color; the pattern is evaluated in coordinates
// local to the region's bounding box. When clear is set the pattern result
// is inverted.
//
// A seed outside the canvas visits no pixels and is a no-op.
func (d *Draw) FillArea(x, y int, pattern Pattern, clear bool) error {
	seed, ok := d.GetPixel(x, y)
	if !ok {
		return nil
	}

	// Pixels of the stop color bound the region.
	stop := !seed

	var (
		queue   = []image.Point{image.Pt(x, y)}
		visited = make(map[image.Point]bool)
	)
	for len(queue) > 0 {
		p := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		if visited[p] {
			continue
		}
		on, ok := d.GetPixel(p.X, p.Y)
		if !ok || on == stop {
			continue
		}
		visited[p] = true
		queue = append(queue,
			image.Pt(p.X, p.Y+1),
			image.Pt(p.X, p.Y-1),
			image.Pt(p.X+1, p.Y),
			image.Pt(p.X-1, p.Y),
		)
	}

	// Guard: computing a bounding box over an empty set is undefined.
	if len(visited) == 0 {
		return nil
	}

	minX, minY := x, y
	for p := range visited {
		if p.X < minX {
			minX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
	}

	for p := range visited {
		lit := pattern(p.X-minX, p.Y-minY)
		if clear {
			lit = !lit
		}
		d.Pixel(p.X, p.Y, !lit)
	}

	return d.commit()
}

// FillScreen evaluates the pattern across every canvas coordinate.
func (d *Draw) FillScreen(pattern Pattern) error {
	b := d.c.Bounds()
	for x := b.Min.X; x < b.Max.X; x++ {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			d.Pixel(x, y, !pattern(x, y))
		}
	}
	return d.commit()
}
