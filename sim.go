package ks0108

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/BeatGlow/ks0108/pixel"
)

// SimConfig is the simulated display configuration.
type SimConfig struct {
	// Path of the output image. Defaults to "display.png".
	Path string

	// Foreground is the color of lit pixels. Defaults to white.
	Foreground color.Color

	// Background is the color of unlit pixels. Defaults to blue.
	Background color.Color

	// AutoCommit renders the image after every mutation.
	AutoCommit bool
}

// DefaultSimConfig are the default simulator configuration values.
var DefaultSimConfig = SimConfig{
	Path:       "display.png",
	Foreground: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	Background: color.RGBA{B: 0xff, A: 0xff},
}

// Sim is a simulated display for non-hardware targets. Committing renders
// the canvas to an image file instead of issuing bus writes.
type Sim struct {
	*Display

	path       string
	fg, bg     color.Color
	autoCommit bool
}

// NewSim opens a simulated display. A nil config uses [DefaultSimConfig].
func NewSim(config *SimConfig) (*Sim, error) {
	if config == nil {
		config = new(SimConfig)
		*config = DefaultSimConfig
	}
	if config.Path == "" {
		config.Path = DefaultSimConfig.Path
	}
	if config.Foreground == nil {
		config.Foreground = DefaultSimConfig.Foreground
	}
	if config.Background == nil {
		config.Background = DefaultSimConfig.Background
	}

	d, err := New(nopBus{}, &Config{SkipInit: true})
	if err != nil {
		return nil, err
	}

	s := &Sim{
		Display:    d,
		path:       config.Path,
		fg:         config.Foreground,
		bg:         config.Background,
		autoCommit: config.AutoCommit,
	}

	// Write the initial all-unlit frame.
	if err := s.render(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Sim) String() string {
	return "simulated KS0108 " + s.path
}

// AutoCommit reports whether mutations are rendered immediately.
func (s *Sim) AutoCommit() bool {
	return s.autoCommit
}

// Commit renders the canvas to the configured image file. The snapshot
// bookkeeping matches the hardware display.
func (s *Sim) Commit(full, live bool) error {
	if err := s.Display.Commit(full, live); err != nil {
		return err
	}
	return s.render()
}

// Clear zeroes the canvas.
func (s *Sim) Clear() error {
	s.MonoPageImage.Clear()
	if s.autoCommit {
		return s.Commit(false, true)
	}
	return nil
}

func (s *Sim) render() error {
	img := image.NewRGBA(s.Bounds())
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if s.At(x, y) == (pixel.Mono{On: true}) {
				img.Set(x, y, s.fg)
			} else {
				img.Set(x, y, s.bg)
			}
		}
	}

	f, err := os.Create(s.path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// nopBus discards all bus operations.
type nopBus struct{}

func (nopBus) SetLine(Line, bool) error   { return nil }
func (nopBus) Pulse(Line) error           { return nil }
func (nopBus) WriteByte(byte, bool) error { return nil }
func (nopBus) SetBacklight(uint16) error  { return nil }
func (nopBus) AllLow() error              { return nil }
func (nopBus) Close() error               { return nil }
