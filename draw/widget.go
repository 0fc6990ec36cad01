package draw

import "math"

// ClockConfig configures an analog clock face.
type ClockConfig struct {
	// Hour, Minute and Second position the hands; -1 hides a hand.
	Hour   int
	Minute int
	Second int

	// Ticks draws the twelve hour marks.
	Ticks bool

	// Fill flood fills the clock face with a pattern; nil draws the
	// outline only.
	Fill Pattern

	// Clear clears pixels instead of setting them.
	Clear bool
}

// AnalogClock draws a clock face of the given radius around (x, y). The
// minute hand advances smoothly with the seconds, the hour hand with the
// minutes. On a filled face the hands are drawn in the inverse color.
func (d *Draw) AnalogClock(x, y int, size float64, config *ClockConfig) error {
	if config == nil {
		config = &ClockConfig{Hour: -1, Minute: -1, Second: -1}
	}

	if err := d.Circle(x, y, []float64{size}, 0, 360, config.Fill, config.Clear); err != nil {
		return err
	}

	// Hands must stay visible on a filled face.
	handClear := (config.Fill != nil) != config.Clear

	if config.Ticks {
		for i := 0; i < 12; i++ {
			var (
				angle          = float64(i) * (360.0 / 12.0)
				startX, startY = polarToRect(x, y, angle, size*0.85)
			)
			if err := d.PolarLine(startX, startY, angle, size*0.12, handClear); err != nil {
				return err
			}
		}
	}

	if config.Hour >= 0 {
		hour := float64(config.Hour%12) * 5
		if config.Minute >= 0 {
			hour += float64(config.Minute%60) / 60.0 * 5
		}
		if err := d.PolarLine(x, y, hour/60.0*360.0, size*0.55, handClear); err != nil {
			return err
		}
	}

	if config.Minute >= 0 {
		minute := float64(config.Minute % 60)
		if config.Second >= 0 {
			minute += float64(config.Second%60) / 60.0
		}
		if err := d.PolarLine(x, y, minute/60.0*360.0, size*0.75, handClear); err != nil {
			return err
		}
	}

	if config.Second >= 0 {
		second := float64(config.Second % 60)
		if err := d.PolarLine(x, y, second/60.0*360.0, size*0.85, handClear); err != nil {
			return err
		}
	}

	return d.commit()
}

// FunctionPlot plots f over the canvas columns leftX..rightX. The function
// domain [minX, maxX] is mapped linearly onto the columns; values are scaled
// by yScale and drawn relative to the baseline row baseY.
func (d *Draw) FunctionPlot(f func(float64) float64, leftX, rightX, baseY int, yScale, minX, maxX float64, clear bool) error {
	xStep := (maxX - minX) / float64(rightX-leftX)
	for i := 0; i <= rightX-leftX; i++ {
		xVal := minX + xStep*float64(i)
		d.Pixel(leftX+i, baseY-int(math.Round(f(xVal)*yScale)), clear)
	}
	return d.commit()
}
