package ks0108

import (
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

// strobeWidth is how long the E line is held high during a pulse. The chip
// needs roughly 450ns; GPIO access itself is slower than that on most hosts,
// the sleep covers the fast ones.
const strobeWidth = time.Microsecond

// backlightFreq is the PWM frequency for the backlight pin.
const backlightFreq = 120 * physic.Hertz

// GPIOConfig describes the parallel bus pin mapping.
type GPIOConfig struct {
	// Data are the DB0..DB7 pins.
	Data [8]gpio.PinOut

	// RS is the register select (data/instruction) pin.
	RS gpio.PinOut

	// RW is the read/write pin. Optional; when set it is held low (write).
	RW gpio.PinOut

	// E is the strobe pin.
	E gpio.PinOut

	// CS1 and CS2 are the chip select pins. CS2 doubles as the broadcast
	// select.
	CS1 gpio.PinOut
	CS2 gpio.PinOut

	// Reset is the RST pin.
	Reset gpio.PinOut

	// Backlight is the backlight pin. Optional; driven with PWM when the
	// pin supports it, on/off otherwise.
	Backlight gpio.PinOut
}

type gpioBus struct {
	data      [8]gpio.PinOut
	rs        gpio.PinOut
	rw        gpio.PinOut
	backlight gpio.PinOut
	lines     map[Line]gpio.PinOut
	rsLevel   gpio.Level
	noPWM     bool
}

// OpenGPIO opens a parallel bus on the given GPIO pins.
func OpenGPIO(config *GPIOConfig) (Bus, error) {
	for _, pin := range config.Data {
		if pin == nil || pin == gpio.INVALID {
			return nil, ErrMissingDataPin
		}
	}
	for _, pin := range []gpio.PinOut{config.RS, config.E, config.CS1, config.CS2, config.Reset} {
		if pin == nil || pin == gpio.INVALID {
			return nil, ErrMissingPin
		}
	}

	return &gpioBus{
		data:      config.Data,
		rs:        config.RS,
		rw:        config.RW,
		backlight: config.Backlight,
		lines: map[Line]gpio.PinOut{
			LineReset:  config.Reset,
			LineEnable: config.E,
			LineCS1:    config.CS1,
			LineCS2:    config.CS2,
		},
	}, nil
}

func (b *gpioBus) SetLine(line Line, high bool) error {
	return b.lines[line].Out(gpio.Level(high))
}

func (b *gpioBus) Pulse(line Line) error {
	pin := b.lines[line]
	if err := pin.Out(gpio.High); err != nil {
		return err
	}
	time.Sleep(strobeWidth)
	return pin.Out(gpio.Low)
}

func (b *gpioBus) WriteByte(value byte, data bool) error {
	if err := b.updateRS(gpio.Level(data)); err != nil {
		return err
	}
	if b.rw != nil {
		if err := b.rw.Out(gpio.Low); err != nil {
			return err
		}
	}
	for i, pin := range b.data {
		if err := pin.Out(gpio.Level(value&(1<<uint(i)) != 0)); err != nil {
			return err
		}
	}
	return nil
}

func (b *gpioBus) updateRS(level gpio.Level) error {
	if b.rsLevel != level {
		if err := b.rs.Out(level); err != nil {
			return err
		}
		b.rsLevel = level
	}
	return nil
}

func (b *gpioBus) SetBacklight(level uint16) error {
	if b.backlight == nil {
		return nil
	}
	if !b.noPWM {
		duty := gpio.Duty(uint64(level) * uint64(gpio.DutyMax) / 1023)
		if err := b.backlight.PWM(duty, backlightFreq); err == nil {
			return nil
		}
		b.noPWM = true
	}
	return b.backlight.Out(gpio.Level(level >= 512))
}

func (b *gpioBus) AllLow() error {
	for _, pin := range b.data {
		if err := pin.Out(gpio.Low); err != nil {
			return err
		}
	}
	if err := b.updateRS(gpio.Low); err != nil {
		return err
	}
	if b.rw != nil {
		if err := b.rw.Out(gpio.Low); err != nil {
			return err
		}
	}
	for _, pin := range b.lines {
		if err := pin.Out(gpio.Low); err != nil {
			return err
		}
	}
	return nil
}

func (b *gpioBus) Close() error {
	return b.AllLow()
}
