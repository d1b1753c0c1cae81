package deck

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/go-pdf/fpdf"
	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// documentDate is stamped on every generated PDF so identical inputs yield
// identical bytes.
var documentDate = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

const labelFont = "Helvetica"

var disableConfigDir sync.Once

// newConfiguration returns a pdfcpu configuration that never touches the
// user config directory.
func newConfiguration() *model.Configuration {
	disableConfigDir.Do(pdfapi.DisableConfigDir)
	return model.NewDefaultConfiguration()
}

// pageWriter builds an output document page by page. Coordinates are in
// points with the origin at the top-left corner of the page.
type pageWriter struct {
	pdf    *fpdf.Fpdf
	pages  int
	images int
}

func newPageWriter() *pageWriter {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: DefaultSheetWidth, Ht: DefaultSheetHeight},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCompression(true)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(documentDate)
	pdf.SetProducer("invertdeck", true)

	return &pageWriter{pdf: pdf}
}

func (w *pageWriter) addPage(width, height float64) {
	w.pdf.AddPageFormat("P", fpdf.SizeType{Wd: width, Ht: height})
	w.pages++
}

// drawPNG places a PNG image into the rectangle (x, y, width, height).
func (w *pageWriter) drawPNG(data []byte, x, y, width, height float64) error {
	w.images++
	name := fmt.Sprintf("im%d", w.images)
	opt := fpdf.ImageOptions{ImageType: "PNG"}

	w.pdf.RegisterImageOptionsReader(name, opt, bytes.NewReader(data))
	if w.pdf.Err() {
		return w.pdf.Error()
	}
	w.pdf.ImageOptions(name, x, y, width, height, false, opt, 0, "")
	return w.pdf.Error()
}

// text draws s with its baseline starting at (x, y).
func (w *pageWriter) text(x, y, size float64, s string) error {
	w.pdf.SetFont(labelFont, "", size)
	w.pdf.SetTextColor(0, 0, 0)
	w.pdf.Text(x, y, s)
	return w.pdf.Error()
}

// bytes serializes the document. A writer with no pages yields an empty
// document rather than fpdf's implicit blank page.
func (w *pageWriter) bytes() ([]byte, error) {
	if w.pages == 0 {
		return emptyPDF()
	}

	var buf bytes.Buffer
	if err := w.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// emptyPDF returns a valid document with zero pages.
func emptyPDF() ([]byte, error) {
	ctx, err := pdfcpu.CreateContextWithXRefTable(newConfiguration(), types.PaperSize["A4"])
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := pdfapi.WriteContext(ctx, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
