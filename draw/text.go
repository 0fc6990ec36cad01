package draw

import (
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

// ErrFontUnavailable is returned when the TrueType font for a text operation
// cannot be loaded.
var ErrFontUnavailable = errors.New("draw: font is not available")

// DefaultFont is the font used when TextOptions.Font is empty.
var DefaultFont = "/usr/share/fonts/truetype/freefont/FreeSans.ttf"

// fontDPI is the resolution text is rendered at; at 72 DPI one point is one
// pixel.
const fontDPI = 72

// TextOptions control text rendering.
type TextOptions struct {
	// Size is the point size. Defaults to 10.
	Size float64

	// Font is the path of a TrueType font file. Defaults to [DefaultFont].
	Font string

	// Angle rotates the rendered text counter-clockwise in degrees.
	Angle int

	// Clear clears pixels instead of setting them.
	Clear bool
}

// Text rasterizes a string with a TrueType font and blits it onto the
// canvas at (x, y). Fonts are parsed once and cached per path.
func (d *Draw) Text(text string, x, y Coord, opts *TextOptions) error {
	if opts == nil {
		opts = new(TextOptions)
	}
	var (
		size     = opts.Size
		fontPath = opts.Font
	)
	if size == 0 {
		size = 10
	}
	if fontPath == "" {
		fontPath = DefaultFont
	}

	f, err := d.font(fontPath)
	if err != nil {
		return err
	}

	face := truetype.NewFace(f, &truetype.Options{
		Size: size,
		DPI:  fontDPI,
	})
	defer face.Close()

	var (
		metrics = face.Metrics()
		width   = font.MeasureString(face, text).Ceil()
		height  = (metrics.Ascent + metrics.Descent).Ceil()
	)
	if width == 0 || height == 0 {
		return nil
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	ctx := freetype.NewContext()
	ctx.SetDPI(fontDPI)
	ctx.SetFont(f)
	ctx.SetFontSize(size)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(image.Black)
	if _, err := ctx.DrawString(text, freetype.Pt(0, metrics.Ascent.Ceil())); err != nil {
		return err
	}

	return d.Image(img, x, y, &ImageOptions{
		Angle: opts.Angle,
		Clear: opts.Clear,
	})
}

// font loads and caches the TrueType font at path.
func (d *Draw) font(path string) (*truetype.Font, error) {
	if f, ok := d.fonts[path]; ok {
		return f, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFontUnavailable, err)
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFontUnavailable, err)
	}

	if d.fonts == nil {
		d.fonts = make(map[string]*truetype.Font)
	}
	d.fonts[path] = f
	return f, nil
}
