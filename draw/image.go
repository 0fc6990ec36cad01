package draw

import (
	"image"
	"image/color"
	stddraw "image/draw"
	"math"
	"os"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	// Codecs for ImageFile.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// Align is a symbolic placement within a bounding range.
type Align uint8

const (
	// AlignNone places at the literal coordinate value.
	AlignNone Align = iota

	// AlignMin places at the start of the range (left, top).
	AlignMin

	// AlignCenter centers within the range.
	AlignCenter

	// AlignMax places at the end of the range (right, bottom).
	AlignMax
)

// Coord is a placement coordinate: either a literal value (see [At]) or a
// symbolic anchor resolved against a bounding range.
type Coord struct {
	Value int
	Align Align
}

// At is a literal coordinate.
func At(v int) Coord {
	return Coord{Value: v}
}

// Symbolic anchors.
var (
	Left   = Coord{Align: AlignMin}
	Center = Coord{Align: AlignCenter}
	Right  = Coord{Align: AlignMax}
	Top    = Coord{Align: AlignMin}
	Middle = Coord{Align: AlignCenter}
	Bottom = Coord{Align: AlignMax}
)

// resolve positions an object of the given size in the inclusive range
// [min, max].
func (c Coord) resolve(min, max, size int) int {
	switch c.Align {
	case AlignMin:
		return min
	case AlignCenter:
		return min + (max-min-size)/2
	case AlignMax:
		return min + max - size
	default:
		return c.Value
	}
}

// PixelPredicate decides whether a source pixel is drawn, given its 8-bit
// red, green, blue and alpha values.
type PixelPredicate func(r, g, b, a uint8) bool

// AlphaThreshold is a predicate drawing pixels whose alpha exceeds min.
func AlphaThreshold(min uint8) PixelPredicate {
	return func(r, g, b, a uint8) bool {
		return a > min
	}
}

// Luminance is a predicate drawing opaque pixels darker than max.
func Luminance(max uint8) PixelPredicate {
	return func(r, g, b, a uint8) bool {
		y := (299*int(r) + 587*int(g) + 114*int(b)) / 1000
		return a > 127 && y < int(max)
	}
}

// ImageOptions control how an image is blitted onto the canvas.
type ImageOptions struct {
	// Width and Height resize the image; 0 keeps the respective source
	// dimension.
	Width  int
	Height int

	// Angle rotates the image counter-clockwise in degrees, expanding the
	// image to fit.
	Angle int

	// Greyscale converts the image to greyscale before drawing.
	Greyscale bool

	// Predicate decides per source pixel whether to draw. Defaults to
	// alpha > 127.
	Predicate PixelPredicate

	// Bounds is the sub-rectangle that symbolic anchors resolve against.
	// The zero rectangle means the full canvas.
	Bounds image.Rectangle

	// Clear clears pixels instead of setting them.
	Clear bool
}

// Image blits an image onto the canvas at (x, y). For every source pixel
// the predicate is evaluated over its RGBA channel values; pixels passing
// the predicate are drawn.
func (d *Draw) Image(src image.Image, x, y Coord, opts *ImageOptions) error {
	if opts == nil {
		opts = new(ImageOptions)
	}

	img := toRGBA(src)
	if opts.Greyscale {
		img = toGreyscale(img)
	}

	if angle := mod(opts.Angle, 360); angle != 0 {
		img = rotate(img, angle)
	}

	if opts.Width != 0 || opts.Height != 0 {
		var (
			width  = opts.Width
			height = opts.Height
		)
		if width == 0 {
			width = img.Bounds().Dx()
		}
		if height == 0 {
			height = img.Bounds().Dy()
		}
		img = resize(img, width, height)
	}

	var (
		width  = img.Bounds().Dx()
		height = img.Bounds().Dy()
		box    = opts.Bounds
	)
	if box.Empty() {
		box = d.c.Bounds()
	}
	var (
		posX = x.resolve(box.Min.X, box.Max.X-1, width)
		posY = y.resolve(box.Min.Y, box.Max.Y-1, height)
	)

	pred := opts.Predicate
	if pred == nil {
		pred = AlphaThreshold(127)
	}

	for imX := 0; imX < width; imX++ {
		for imY := 0; imY < height; imY++ {
			c := img.RGBAAt(img.Bounds().Min.X+imX, img.Bounds().Min.Y+imY)
			if pred(c.R, c.G, c.B, c.A) {
				d.Pixel(posX+imX, posY+imY, opts.Clear)
			}
		}
	}

	return d.commit()
}

// ImageFile decodes the image at path and blits it like [Draw.Image].
// PNG, JPEG and GIF are supported.
func (d *Draw) ImageFile(path string, x, y Coord, opts *ImageOptions) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return err
	}
	return d.Image(img, x, y, opts)
}

func toRGBA(src image.Image) *image.RGBA {
	if img, ok := src.(*image.RGBA); ok {
		return img
	}
	img := image.NewRGBA(src.Bounds())
	stddraw.Draw(img, img.Bounds(), src, src.Bounds().Min, stddraw.Src)
	return img
}

func toGreyscale(src *image.RGBA) *image.RGBA {
	b := src.Bounds()
	img := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := src.RGBAAt(x, y)
			g := color.GrayModel.Convert(c).(color.Gray)
			img.SetRGBA(x, y, color.RGBA{R: g.Y, G: g.Y, B: g.Y, A: c.A})
		}
	}
	return img
}

func resize(src *image.RGBA, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// rotate rotates the image counter-clockwise by angle degrees, expanding
// the result to fit. Pixels outside the source stay fully transparent.
func rotate(src *image.RGBA, angle int) *image.RGBA {
	var (
		theta    = radians(float64(angle))
		sin, cos = math.Sin(theta), math.Cos(theta)
		srcW     = float64(src.Bounds().Dx())
		srcH     = float64(src.Bounds().Dy())
		dstW     = expandDim(math.Abs(srcW*cos) + math.Abs(srcH*sin))
		dstH     = expandDim(math.Abs(srcW*sin) + math.Abs(srcH*cos))
	)
	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))

	// Rotate about the source center, mapping it onto the destination
	// center. In image coordinates (y down) a counter-clockwise rotation is
	// (x·cosθ + y·sinθ, -x·sinθ + y·cosθ).
	var (
		srcCX = float64(src.Bounds().Min.X) + srcW/2
		srcCY = float64(src.Bounds().Min.Y) + srcH/2
		dstCX = float64(dstW) / 2
		dstCY = float64(dstH) / 2
	)
	s2d := f64.Aff3{
		cos, sin, dstCX - cos*srcCX - sin*srcCY,
		-sin, cos, dstCY + sin*srcCX - cos*srcCY,
	}
	xdraw.ApproxBiLinear.Transform(dst, s2d, src, src.Bounds(), xdraw.Over, nil)
	return dst
}

// expandDim rounds an expanded dimension up, absorbing floating point noise
// so right-angle rotations keep exact sizes.
func expandDim(v float64) int {
	return int(math.Ceil(v - 1e-9))
}
