package pixel

import (
	"image"
	"image/color"
	"image/draw"
)

// Image is a mutable 1-bit image.
type Image interface {
	draw.Image

	// Clear the image.
	Clear()

	// Fill the image with a single color.
	Fill(color.Color)
}

// Buffer holds the pixel values.
type Buffer struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pages.
	Stride int
}

func (p *Buffer) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Buffer) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0x00
	}
}

// MonoPageImage is a 1-bit per pixel monochrome image with the page-packed
// memory layout used by KS0108 (and SSD1xxx) display controllers: each byte
// holds 8 vertically stacked pixels of one column, with the least significant
// bit on top.
type MonoPageImage struct {
	Buffer
}

func NewMonoPageImage(w, h int) *MonoPageImage {
	pages := ((h + 7) & ^7) / 8 // round up to whole bytes
	return &MonoPageImage{
		Buffer: Buffer{
			Rect:   image.Rect(0, 0, w, h),
			Pix:    make([]byte, pages*w),
			Stride: w,
		},
	}
}

func (p *MonoPageImage) ColorModel() color.Model {
	return MonoModel
}

func (p *MonoPageImage) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}

	var (
		pos = y/8*p.Stride + x
		bit = byte(1) << uint(y&7)
	)
	return Mono{
		On: p.Pix[pos]&bit != 0,
	}
}

func (p *MonoPageImage) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}

	var (
		pos = y/8*p.Stride + x
		bit = byte(1) << uint(y&7)
	)
	if monoModel(c).(Mono).On {
		p.Pix[pos] |= bit
	} else {
		p.Pix[pos] &^= bit
	}
}

func (p *MonoPageImage) Fill(c color.Color) {
	var value byte
	if monoModel(c).(Mono).On {
		value = 0xff
	}
	for i := range p.Pix {
		p.Pix[i] = value
	}
}

// Pages is the number of 8-pixel pages.
func (p *MonoPageImage) Pages() int {
	return len(p.Pix) / p.Stride
}

// Byte returns the packed byte of column x in the given page.
func (p *MonoPageImage) Byte(x, page int) byte {
	return p.Pix[page*p.Stride+x]
}

// SetByte replaces the packed byte of column x in the given page.
func (p *MonoPageImage) SetByte(x, page int, value byte) {
	p.Pix[page*p.Stride+x] = value
}

// Snapshot copies the pixel data into dst, allocating dst when nil. The copy
// shares no memory with p.
func (p *MonoPageImage) Snapshot(dst *MonoPageImage) *MonoPageImage {
	if dst == nil {
		dst = NewMonoPageImage(p.Rect.Dx(), p.Rect.Dy())
	}
	copy(dst.Pix, p.Pix)
	return dst
}
