package draw

import "math"

// circleResolution is the number of angular steps in a full circle.
const circleResolution = 360

// Circle draws a circle around (centerX, centerY). A single radius draws a
// plain circle; multiple radii define a smoothly varying outline: the 360
// angular steps are divided evenly among the radii and the radius is
// interpolated geometrically from each control value to the next, wrapping
// back to the first.
//
// Only angles within [start, stop] (degrees, 0° = up, clockwise) are drawn.
// A non-nil fill pattern flood fills the outline from the center.
func (d *Draw) Circle(centerX, centerY int, radii []float64, start, stop int, fill Pattern, clear bool) error {
	if len(radii) == 0 {
		return nil
	}

	var (
		step     = circleResolution / len(radii)
		complete = make([]float64, circleResolution)
	)
	for i, radius := range radii {
		next := radii[(i+1)%len(radii)]
		b := math.Log(next/radius) / float64(step)
		for s := 0; s < step; s++ {
			complete[i*step+s] = radius * math.Exp(b*float64(s))
		}
	}

	for a, radius := range complete {
		if a < start || a > stop {
			continue
		}
		var (
			modX = int(math.Round(math.Sin(radians(float64(a))) * radius))
			modY = int(math.Round(math.Cos(radians(float64(a))) * radius))
		)
		d.Pixel(centerX+modX, centerY-modY, clear)
	}

	if fill != nil {
		if err := d.FillArea(centerX, centerY, fill, clear); err != nil {
			return err
		}
	}

	return d.commit()
}
