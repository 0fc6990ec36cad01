// Package pixel implements the 1-bit color and image types used by the KS0108
// display driver.
//
// The types are compatible with Go's native [color.Color] and [image.Image] /
// [draw.Image] interfaces, so the standard library and golang.org/x/image
// drawing routines work on them directly.
package pixel
