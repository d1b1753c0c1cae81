package raster

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"testing"

	"invertdeck/backend/internal/domain"
	"invertdeck/backend/internal/testpdf"
)

func TestInvertIsInvolution(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	buf := NewPixelBuffer(17, 9)
	rng.Read(buf.Pix)

	twice := buf.Invert().Invert()
	if !bytes.Equal(twice.Pix, buf.Pix) {
		t.Fatalf("double inversion changed the buffer")
	}
	if twice.Width != buf.Width || twice.Height != buf.Height {
		t.Fatalf("double inversion changed dimensions")
	}
}

func TestInvertComplementsEveryByte(t *testing.T) {
	buf := PixelBuffer{Width: 2, Height: 1, Pix: []byte{0, 1, 128, 200, 254, 255}}
	got := buf.Invert()
	want := []byte{255, 254, 127, 55, 1, 0}
	if !bytes.Equal(got.Pix, want) {
		t.Fatalf("expected %v, got %v", want, got.Pix)
	}
	if buf.Pix[0] != 0 {
		t.Fatalf("Invert must not modify the receiver")
	}
}

func TestFromImageDropsAlpha(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 0})
	img.Set(1, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 255})

	buf := FromImage(img)
	if len(buf.Pix) != 2*1*3 {
		t.Fatalf("expected RGB payload of 6 bytes, got %d", len(buf.Pix))
	}
	if r, g, b := buf.At(1, 0); r != 200 || g != 100 || b != 50 {
		t.Fatalf("unexpected pixel (%d,%d,%d)", r, g, b)
	}
}

func TestFromImageRGBAWithOffset(t *testing.T) {
	img := image.NewRGBA(image.Rect(5, 5, 8, 7))
	img.Set(7, 6, color.RGBA{R: 1, G: 2, B: 3, A: 255})

	buf := FromImage(img)
	if buf.Width != 3 || buf.Height != 2 {
		t.Fatalf("unexpected size %dx%d", buf.Width, buf.Height)
	}
	if r, g, b := buf.At(2, 1); r != 1 || g != 2 || b != 3 {
		t.Fatalf("unexpected pixel (%d,%d,%d)", r, g, b)
	}
}

func TestEncodePNGKeepsDimensions(t *testing.T) {
	buf := NewPixelBuffer(31, 12)
	data, err := buf.Invert().EncodePNG()
	if err != nil {
		t.Fatalf("EncodePNG error: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 31 || img.Bounds().Dy() != 12 {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}
	r, g, b, a := img.At(0, 0).RGBA()
	if r>>8 != 255 || g>>8 != 255 || b>>8 != 255 || a>>8 != 255 {
		t.Fatalf("expected opaque white pixel")
	}
}

func TestEncodePNGRejectsBadPayload(t *testing.T) {
	if _, err := (PixelBuffer{Width: 2, Height: 2, Pix: make([]byte, 5)}).EncodePNG(); err == nil {
		t.Fatalf("expected error for short payload")
	}
	if _, err := (PixelBuffer{}).EncodePNG(); err == nil {
		t.Fatalf("expected error for empty buffer")
	}
}

func TestOpenRejectsNonPDF(t *testing.T) {
	_, err := Open("notes.txt", []byte("just some text"))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, domain.ErrDocumentOpen) {
		t.Fatalf("expected document open error, got %v", err)
	}
}

func TestRenderWhitePage(t *testing.T) {
	data := testpdf.Whites(t, 2, 120, 80)

	doc, err := Open("white.pdf", data)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	defer doc.Close()

	if doc.NumPages() != 2 {
		t.Fatalf("expected 2 pages, got %d", doc.NumPages())
	}

	buf, err := doc.Render(1)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if buf.Width != 120 || buf.Height != 80 {
		t.Fatalf("expected 120x80 render at scale 1, got %dx%d", buf.Width, buf.Height)
	}
	if r, g, b := buf.At(60, 40); r != 255 || g != 255 || b != 255 {
		t.Fatalf("expected white pixel, got (%d,%d,%d)", r, g, b)
	}

	if _, err := doc.Render(2); !errors.Is(err, domain.ErrPageRender) {
		t.Fatalf("expected page render error for out of range page, got %v", err)
	}
}

func TestRenderPNGInverted(t *testing.T) {
	doc, err := Open("white.pdf", testpdf.Whites(t, 1, 40, 30))
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	defer doc.Close()

	data, buf, err := doc.RenderPNG(0, true)
	if err != nil {
		t.Fatalf("RenderPNG error: %v", err)
	}
	if r, g, b := buf.At(20, 15); r != 0 || g != 0 || b != 0 {
		t.Fatalf("expected black pixel after inversion, got (%d,%d,%d)", r, g, b)
	}
	if len(data) == 0 {
		t.Fatalf("expected png bytes")
	}
}
