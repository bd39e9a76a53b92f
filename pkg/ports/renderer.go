package ports

import (
	"image"
	"image/color"
)

// Renderer abstracts the image operations used for compositing and export.
type Renderer interface {
	// CreateCanvas creates a fully transparent drawing canvas.
	CreateCanvas(width, height int) Canvas

	// EncodeImage encodes an image to the specified format.
	// Quality applies to JPEG only.
	EncodeImage(img image.Image, format ImageFormat, quality int) ([]byte, error)

	// ResizeImage resizes an image to the specified dimensions.
	ResizeImage(img image.Image, width, height int) image.Image
}

// Canvas provides the drawing operations used to composite frames.
type Canvas interface {
	// DrawImage draws an image at the specified position with alpha blending.
	DrawImage(img image.Image, x, y int)

	// DrawRect fills a rectangle with a solid color.
	DrawRect(x, y, w, h int, c color.Color)

	// ClearRect resets a rectangle to fully transparent.
	ClearRect(x, y, w, h int)

	// ToImage returns the canvas content. Callers must not mutate the
	// result afterwards; composited frames are shared read-only.
	ToImage() image.Image
}

// ImageFormat specifies image encoding format.
type ImageFormat int

const (
	FormatPNG ImageFormat = iota
	FormatJPEG
)
