package ggrenderer

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/user/gifplay/pkg/ports"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestRenderer_CreateCanvas_Transparent(t *testing.T) {
	canvas := New().CreateCanvas(4, 4)

	img := canvas.ToImage()
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 4 {
		t.Fatalf("canvas bounds = %v, want 4x4", img.Bounds())
	}
	_, _, _, a := img.At(0, 0).RGBA()
	if a != 0 {
		t.Errorf("new canvas pixel alpha = %d, want 0", a)
	}
}

func TestCanvas_DrawImage(t *testing.T) {
	canvas := New().CreateCanvas(4, 4)
	red := color.RGBA{R: 255, A: 255}

	canvas.DrawImage(solid(2, 2, red), 1, 1)

	img := canvas.ToImage()
	r, _, _, a := img.At(1, 1).RGBA()
	if r>>8 != 255 || a>>8 != 255 {
		t.Errorf("pixel (1,1) = %v, want red", img.At(1, 1))
	}
	_, _, _, a = img.At(0, 0).RGBA()
	if a != 0 {
		t.Errorf("pixel (0,0) alpha = %d, want 0", a)
	}
}

func TestCanvas_DrawRect(t *testing.T) {
	canvas := New().CreateCanvas(4, 4)

	canvas.DrawRect(0, 0, 4, 4, color.White)

	r, g, b, a := canvas.ToImage().At(2, 2).RGBA()
	if r>>8 != 255 || g>>8 != 255 || b>>8 != 255 || a>>8 != 255 {
		t.Errorf("pixel (2,2) = %v, want white", canvas.ToImage().At(2, 2))
	}
}

func TestCanvas_ClearRect(t *testing.T) {
	canvas := New().CreateCanvas(4, 4)
	canvas.DrawRect(0, 0, 4, 4, color.White)

	canvas.ClearRect(1, 1, 2, 2)

	img := canvas.ToImage()
	if _, _, _, a := img.At(1, 1).RGBA(); a != 0 {
		t.Errorf("cleared pixel (1,1) alpha = %d, want 0", a)
	}
	if _, _, _, a := img.At(0, 0).RGBA(); a>>8 != 255 {
		t.Errorf("pixel (0,0) alpha = %d, want opaque", a)
	}
}

func TestRenderer_EncodeImage_PNG(t *testing.T) {
	r := New()
	data, err := r.EncodeImage(solid(4, 4, color.RGBA{R: 255, A: 255}), ports.FormatPNG, 90)
	if err != nil {
		t.Fatalf("EncodeImage failed: %v", err)
	}

	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode failed: %v", err)
	}
	if decoded.Bounds().Dx() != 4 {
		t.Errorf("decoded width = %d, want 4", decoded.Bounds().Dx())
	}
}

func TestRenderer_EncodeImage_JPEG(t *testing.T) {
	r := New()
	data, err := r.EncodeImage(solid(4, 4, color.RGBA{R: 255, A: 255}), ports.FormatJPEG, 80)
	if err != nil {
		t.Fatalf("EncodeImage failed: %v", err)
	}

	if _, err := jpeg.Decode(bytes.NewReader(data)); err != nil {
		t.Fatalf("jpeg.Decode failed: %v", err)
	}
}

func TestRenderer_ResizeImage(t *testing.T) {
	resized := New().ResizeImage(solid(4, 4, color.RGBA{G: 255, A: 255}), 2, 2)

	if resized.Bounds().Dx() != 2 || resized.Bounds().Dy() != 2 {
		t.Fatalf("resized bounds = %v, want 2x2", resized.Bounds())
	}
	_, g, _, a := resized.At(0, 0).RGBA()
	if g>>8 != 255 || a>>8 != 255 {
		t.Errorf("resized pixel (0,0) = %v, want green", resized.At(0, 0))
	}
}
