// Command lcd-test exercises a KS0108 display connected to GPIO pins, or a
// simulated display rendering to a PNG file.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/ks0108"
	"github.com/BeatGlow/ks0108/draw"
)

func main() {
	simFlag := flag.String("sim", "", "Render to this PNG file instead of hardware")
	dataFlag := flag.String("data", "GPIO12,GPIO16,GPIO20,GPIO21,GPIO26,GPIO19,GPIO13,GPIO6", "Data pins DB0..DB7")
	rsPinFlag := flag.String("rs", "GPIO14", "Register select GPIO pin (RS)")
	rwPinFlag := flag.String("rw", "", "Read/write GPIO pin (RW), optional")
	ePinFlag := flag.String("e", "GPIO15", "Strobe GPIO pin (E)")
	cs1PinFlag := flag.String("cs1", "GPIO18", "Chip select 1 GPIO pin")
	cs2PinFlag := flag.String("cs2", "GPIO23", "Chip select 2 GPIO pin")
	resetPinFlag := flag.String("reset", "GPIO24", "Reset GPIO pin")
	blPinFlag := flag.String("bl", "GPIO25", "Backlight GPIO pin")
	fontFlag := flag.String("font", draw.DefaultFont, "TrueType font file")
	textFlag := flag.String("text", "KS0108", "Text to draw")
	flag.Parse()

	var (
		canvas draw.Canvas
		err    error
	)
	if *simFlag != "" {
		canvas, err = ks0108.NewSim(&ks0108.SimConfig{Path: *simFlag})
	} else {
		if _, err = host.Init(); err != nil {
			fatal(err)
		}

		config := &ks0108.GPIOConfig{
			RS:        gpioreg.ByName(*rsPinFlag),
			E:         gpioreg.ByName(*ePinFlag),
			CS1:       gpioreg.ByName(*cs1PinFlag),
			CS2:       gpioreg.ByName(*cs2PinFlag),
			Reset:     gpioreg.ByName(*resetPinFlag),
			Backlight: gpioreg.ByName(*blPinFlag),
		}
		if *rwPinFlag != "" {
			config.RW = gpioreg.ByName(*rwPinFlag)
		}

		names := strings.Split(*dataFlag, ",")
		if len(names) != len(config.Data) {
			fatal(fmt.Errorf("expected %d data pins, got %q", len(config.Data), *dataFlag))
		}
		for i, name := range names {
			config.Data[i] = gpioreg.ByName(strings.TrimSpace(name))
		}

		var bus ks0108.Bus
		if bus, err = ks0108.OpenGPIO(config); err != nil {
			fatal(err)
		}
		canvas, err = ks0108.New(bus, nil)
	}
	if err != nil {
		fatal(err)
	}
	fmt.Printf("using display: %s\n", canvas)

	d := draw.New(canvas)

	// Border and a sine plot in the lower half.
	if err = d.Rectangle(1, 1, 126, 62, false, false); err != nil {
		fatal(err)
	}
	if err = d.FunctionPlot(math.Sin, 4, 123, 48, 12, 0, 4*math.Pi, false); err != nil {
		fatal(err)
	}

	// Clock face with the current time.
	now := time.Now()
	if err = d.AnalogClock(24, 24, 18, &draw.ClockConfig{
		Hour:   now.Hour(),
		Minute: now.Minute(),
		Second: now.Second(),
		Ticks:  true,
	}); err != nil {
		fatal(err)
	}

	if err = d.Text(*textFlag, draw.At(52), draw.At(8), &draw.TextOptions{
		Size: 12,
		Font: *fontFlag,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "text skipped: %s\n", err)
	}

	if err = canvas.Commit(true, false); err != nil {
		fatal(err)
	}
	fmt.Println("done")
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
