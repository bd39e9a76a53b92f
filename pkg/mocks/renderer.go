package mocks

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/user/gifplay/pkg/ports"
)

// Renderer is a mock implementation of ports.Renderer. By default it hands
// out functional software canvases so compositing tests see real pixels.
type Renderer struct {
	CreateCanvasFunc func(width, height int) ports.Canvas
	EncodeImageFunc  func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error)
	ResizeImageFunc  func(img image.Image, width, height int) image.Image
}

func (m *Renderer) CreateCanvas(width, height int) ports.Canvas {
	if m.CreateCanvasFunc != nil {
		return m.CreateCanvasFunc(width, height)
	}
	return NewCanvas(width, height)
}

func (m *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	if m.EncodeImageFunc != nil {
		return m.EncodeImageFunc(img, format, quality)
	}
	return []byte{}, nil
}

func (m *Renderer) ResizeImage(img image.Image, width, height int) image.Image {
	if m.ResizeImageFunc != nil {
		return m.ResizeImageFunc(img, width, height)
	}
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

var _ ports.Renderer = (*Renderer)(nil)

// Canvas is a software implementation of ports.Canvas backed by an RGBA
// buffer.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas creates a transparent software canvas.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

func (m *Canvas) DrawImage(img image.Image, x, y int) {
	b := img.Bounds()
	dst := image.Rect(x, y, x+b.Dx(), y+b.Dy())
	draw.Draw(m.img, dst, img, b.Min, draw.Over)
}

func (m *Canvas) DrawRect(x, y, w, h int, c color.Color) {
	draw.Draw(m.img, image.Rect(x, y, x+w, y+h), image.NewUniform(c), image.Point{}, draw.Over)
}

func (m *Canvas) ClearRect(x, y, w, h int) {
	draw.Draw(m.img, image.Rect(x, y, x+w, y+h), image.Transparent, image.Point{}, draw.Src)
}

func (m *Canvas) ToImage() image.Image {
	return m.img
}

var _ ports.Canvas = (*Canvas)(nil)
