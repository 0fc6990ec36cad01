// Package ks0108 drives KS0108 compatible graphical LCDs.
//
// The display is built from two 64x64 pixel controller chips forming one
// 128x64 canvas, addressed over an 8-bit parallel bus. Drawing happens on an
// in-memory canvas; [Display.Commit] pushes the canvas to the hardware,
// writing only the columns that changed since the previous commit.
package ks0108

import (
	"fmt"

	"github.com/BeatGlow/ks0108/pixel"
)

// Display dimensions. They are fixed properties of the chip pair.
const (
	Width  = 128
	Height = 64
	Pages  = Height / 8

	// chipColumns is the column count owned by each chip.
	chipColumns = 64
)

// Config is the display configuration.
type Config struct {
	// AutoCommit pushes the canvas to the hardware after every mutation.
	AutoCommit bool

	// SkipInit skips the hardware initialization sequence.
	SkipInit bool

	// Backlight enables the backlight at full brightness on startup.
	Backlight bool
}

// DefaultConfig are the default configuration values.
var DefaultConfig = Config{
	Backlight: true,
}

// Display is a KS0108 display pair.
type Display struct {
	*pixel.MonoPageImage

	bus        Bus
	committed  *pixel.MonoPageImage
	autoCommit bool
	cursorX    int
	cursorY    int
	chip       int
	halted     bool
}

// New opens a display on the given bus. A nil config uses [DefaultConfig].
func New(bus Bus, config *Config) (*Display, error) {
	if config == nil {
		config = new(Config)
		*config = DefaultConfig
	}

	d := &Display{
		MonoPageImage: pixel.NewMonoPageImage(Width, Height),
		bus:           bus,
		committed:     pixel.NewMonoPageImage(Width, Height),
		autoCommit:    config.AutoCommit,
		chip:          1,
	}

	if err := bus.AllLow(); err != nil {
		return nil, err
	}
	if config.Backlight {
		if err := bus.SetBacklight(1023); err != nil {
			return nil, err
		}
	}
	if !config.SkipInit {
		if err := d.Initialize(); err != nil {
			return nil, err
		}
		if err := d.SetCursorPosition(0, 0, true); err != nil {
			return nil, err
		}
	}

	return d, nil
}

func (d *Display) String() string {
	return fmt.Sprintf("KS0108 %dx%d", Width, Height)
}

// AutoCommit reports whether mutations are committed immediately.
func (d *Display) AutoCommit() bool {
	return d.autoCommit
}

// Initialize resets the chips, sets the start line to 0 and switches the
// display on. It must run once before any drawing is guaranteed visible.
func (d *Display) Initialize() error {
	if err := d.Reset(); err != nil {
		return err
	}
	if err := d.setStartLine(0); err != nil {
		return err
	}
	return d.setDisplayEnable(true)
}

// Reset pulses the reset line.
func (d *Display) Reset() error {
	if err := d.bus.SetLine(LineReset, false); err != nil {
		return err
	}
	return d.bus.SetLine(LineReset, true)
}

// Clear zeroes the canvas.
func (d *Display) Clear() error {
	d.MonoPageImage.Clear()
	if d.autoCommit {
		return d.Commit(false, true)
	}
	return nil
}

// Shutdown clears the display, drops all bus lines low and switches the
// backlight off. It is safe to call more than once.
func (d *Display) Shutdown() error {
	if err := d.Clear(); err != nil {
		return err
	}
	if err := d.bus.AllLow(); err != nil {
		return err
	}
	return d.bus.SetBacklight(0)
}

// Close shuts the display down and releases the bus.
func (d *Display) Close() error {
	if !d.halted {
		if err := d.Shutdown(); err != nil {
			_ = d.bus.Close()
			return err
		}
		d.halted = true
	}
	return d.bus.Close()
}

// writeValue performs one byte write sequence on the bus: raise the chip
// select, present the byte, strobe, lower the chip select.
func (d *Display) writeValue(value byte, chip int, data bool) error {
	cs := chipSelect[chip]
	if err := d.bus.SetLine(cs, true); err != nil {
		return err
	}
	if err := d.bus.WriteByte(value, data); err != nil {
		return err
	}
	if err := d.bus.Pulse(LineEnable); err != nil {
		return err
	}
	return d.bus.SetLine(cs, false)
}

// broadcast issues an instruction to both chips by asserting the secondary
// chip select while writing through the first chip's data path.
func (d *Display) broadcast(value byte) error {
	if err := d.bus.SetLine(LineCS2, true); err != nil {
		return err
	}
	if err := d.writeValue(value, 1, false); err != nil {
		return err
	}
	return d.bus.SetLine(LineCS2, false)
}

func (d *Display) setDisplayEnable(on bool) error {
	return d.broadcast(cmdSetDisplayEnable(on))
}

func (d *Display) setStartLine(line int) error {
	return d.broadcast(cmdSetStartLine(byte(line)))
}

func (d *Display) setPage(page int) error {
	return d.broadcast(cmdSetPage(byte(page)))
}

// setColumn addresses a column on the chip owning it. Columns 0..63 select
// chip 1, columns 64..127 select chip 2 with the column taken locally.
func (d *Display) setColumn(column int) error {
	if column > chipColumns-1 {
		column -= chipColumns
		d.chip = 2
	} else {
		d.chip = 1
	}
	return d.writeValue(cmdSetColumn(byte(column)), d.chip, false)
}

// SetCursorPosition moves the hardware write position to (x, y). The page
// instruction is only issued when the target page differs from the cursor's
// current page, and the column instruction only when the column differs,
// unless force is set.
func (d *Display) SetCursorPosition(x, y int, force bool) error {
	var (
		curPage = d.cursorY / 8
		page    = y / 8
	)
	if force || page != curPage {
		if err := d.setPage(page); err != nil {
			return err
		}
	}
	if force || x != d.cursorX {
		if err := d.setColumn(x); err != nil {
			return err
		}
	}
	d.cursorX, d.cursorY = x, y
	return nil
}

// moveCursor updates the cursor state without issuing instructions, for
// writes where the hardware advances the column on its own.
func (d *Display) moveCursor(x, y int) {
	d.cursorX, d.cursorY = x, y
}

// WritePage sets the 8-pixel column slice at (column, page). When commit is
// set the value is also written to the hardware at that address and the
// cursor advances one column; crossing the chip boundary forces a full
// re-address on the second chip.
func (d *Display) WritePage(value byte, column, page int, commit bool) error {
	if commit {
		if err := d.SetCursorPosition(column, page*8, false); err != nil {
			return err
		}
		if err := d.writeValue(value, d.chip, true); err != nil {
			return err
		}
		if force := column+1 == chipColumns; force {
			if err := d.SetCursorPosition(column+1, page*8, true); err != nil {
				return err
			}
		} else {
			d.moveCursor(column+1, page*8)
		}
	}

	d.SetByte(column, page, value)
	if d.autoCommit && !commit {
		return d.Commit(false, true)
	}
	return nil
}

// Commit pushes the canvas to the hardware. Cells whose packed byte equals
// the previously committed byte are skipped unless full is set. When live is
// false the display is switched off for the duration of the sweep to avoid
// visible tearing.
func (d *Display) Commit(full, live bool) error {
	if !live {
		if err := d.setDisplayEnable(false); err != nil {
			return err
		}
	}
	if err := d.SetCursorPosition(0, 0, true); err != nil {
		return err
	}
	for page := 0; page < Pages; page++ {
		for column := 0; column < Width; column++ {
			value := d.Byte(column, page)
			if full || value != d.committed.Byte(column, page) {
				if err := d.WritePage(value, column, page, true); err != nil {
					return err
				}
			}
		}
	}
	d.Snapshot(d.committed)
	if err := d.SetCursorPosition(0, 0, true); err != nil {
		return err
	}
	if !live {
		return d.setDisplayEnable(true)
	}
	return nil
}
