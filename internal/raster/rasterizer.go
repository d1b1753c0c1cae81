package raster

import (
	"bytes"
	"errors"
	"fmt"

	fitz "github.com/gen2brain/go-fitz"

	"invertdeck/backend/internal/domain"
)

// Scale is the fixed render scale. At 72 DPI one PDF point maps to one pixel.
const (
	Scale = 1.0
	DPI   = 72 * Scale
)

// headerWindow is how far into the stream the %PDF- marker may appear.
const headerWindow = 1024

var errNotPDF = errors.New("missing %PDF- header")

// Document is an opened source PDF ready for rendering. It is not safe for
// use by multiple goroutines.
type Document struct {
	name string
	doc  *fitz.Document
}

// Open parses data as a PDF. Failures are reported as document_open errors.
func Open(name string, data []byte) (*Document, error) {
	if !looksLikePDF(data) {
		return nil, &domain.OpError{
			Op:   "raster.open",
			Kind: domain.KindDocumentOpen,
			Doc:  name,
			Err:  errNotPDF,
		}
	}

	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "raster.open",
			Kind: domain.KindDocumentOpen,
			Doc:  name,
			Err:  err,
		}
	}
	return &Document{name: name, doc: doc}, nil
}

func looksLikePDF(data []byte) bool {
	head := data
	if len(head) > headerWindow {
		head = head[:headerWindow]
	}
	return bytes.Contains(head, []byte("%PDF-"))
}

// Name returns the name the document was opened with.
func (d *Document) Name() string { return d.name }

// NumPages returns the page count.
func (d *Document) NumPages() int {
	return d.doc.NumPage()
}

// Render rasterizes page i (0-based) at the fixed scale.
func (d *Document) Render(i int) (PixelBuffer, error) {
	if i < 0 || i >= d.NumPages() {
		return PixelBuffer{}, d.renderErr(i, fmt.Errorf("page index %d out of range [0,%d)", i, d.NumPages()))
	}

	img, err := d.doc.ImageDPI(i, DPI)
	if err != nil {
		return PixelBuffer{}, d.renderErr(i, err)
	}
	if img.Bounds().Empty() {
		return PixelBuffer{}, d.renderErr(i, errors.New("page rendered to an empty image"))
	}
	return FromImage(img), nil
}

// RenderPNG rasterizes page i and encodes the result as PNG, optionally inverted.
func (d *Document) RenderPNG(i int, invert bool) ([]byte, PixelBuffer, error) {
	buf, err := d.Render(i)
	if err != nil {
		return nil, PixelBuffer{}, err
	}
	if invert {
		buf = buf.Invert()
	}

	data, err := buf.EncodePNG()
	if err != nil {
		return nil, PixelBuffer{}, &domain.OpError{
			Op:   "raster.encode",
			Kind: domain.KindEncoding,
			Doc:  d.name,
			Page: i + 1,
			Err:  err,
		}
	}
	return data, buf, nil
}

// Close releases the underlying MuPDF document.
func (d *Document) Close() error {
	if d == nil || d.doc == nil {
		return nil
	}
	return d.doc.Close()
}

func (d *Document) renderErr(i int, err error) error {
	return &domain.OpError{
		Op:   "raster.render",
		Kind: domain.KindPageRender,
		Doc:  d.name,
		Page: i + 1,
		Err:  err,
	}
}
