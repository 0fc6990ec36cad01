package ks0108

import "errors"

// Bus errors.
var (
	ErrMissingDataPin = errors.New("ks0108: all eight data GPIO pins are required")
	ErrMissingPin     = errors.New("ks0108: control GPIO pin is invalid")
)

// Line identifies a control line of the parallel bus by role.
type Line uint8

const (
	// LineReset is the RST line.
	LineReset Line = iota

	// LineEnable is the E (strobe) line.
	LineEnable

	// LineCS1 is the chip select of the first chip (columns 0..63).
	LineCS1

	// LineCS2 is the chip select of the second chip (columns 64..127). It
	// doubles as the broadcast select for global instructions.
	LineCS2
)

func (l Line) String() string {
	switch l {
	case LineReset:
		return "RST"
	case LineEnable:
		return "E"
	case LineCS1:
		return "CS1"
	case LineCS2:
		return "CS2"
	default:
		return "?"
	}
}

// Bus is the parallel bus backend. It exposes discrete bus operations only;
// the instruction protocol (chip selection, strobing, addressing order) is
// driven by [Display].
//
// The bus has no acknowledgment channel. A failing bus operation is fatal for
// the display; errors are propagated, never retried.
type Bus interface {
	// SetLine drives a control line high or low.
	SetLine(line Line, high bool) error

	// Pulse strobes a control line high and low again.
	Pulse(line Line) error

	// WriteByte presents a byte on the data lines. The data flag selects
	// between display data and instructions (the RS line).
	WriteByte(b byte, data bool) error

	// SetBacklight sets the backlight brightness (0..1023).
	SetBacklight(level uint16) error

	// AllLow drops every bus line low.
	AllLow() error

	// Close releases the bus.
	Close() error
}

// chipSelect maps a chip index to its select line.
var chipSelect = map[int]Line{
	1: LineCS1,
	2: LineCS2,
}
