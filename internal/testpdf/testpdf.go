// Package testpdf builds small fixture PDFs for tests.
package testpdf

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/go-pdf/fpdf"
)

// Page describes one fixture page: its size in points and a fill color.
type Page struct {
	W, H    float64
	R, G, B int
}

// White returns a white page of the given size.
func White(w, h float64) Page {
	return Page{W: w, H: h, R: 255, G: 255, B: 255}
}

// Build renders pages into a PDF and fails the test on error.
func Build(t testing.TB, pages ...Page) []byte {
	t.Helper()

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: 595, Ht: 842},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreationDate(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))

	for _, p := range pages {
		pdf.AddPageFormat("P", fpdf.SizeType{Wd: p.W, Ht: p.H})
		if p.R != 255 || p.G != 255 || p.B != 255 {
			pdf.SetFillColor(p.R, p.G, p.B)
			pdf.Rect(0, 0, p.W, p.H, "F")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatalf("build fixture pdf: %v", err)
	}
	return buf.Bytes()
}

// Whites builds n white pages of the same size.
func Whites(t testing.TB, n int, w, h float64) []byte {
	t.Helper()
	pages := make([]Page, n)
	for i := range pages {
		pages[i] = White(w, h)
	}
	return Build(t, pages...)
}

// MissingPage returns a document whose page tree declares two pages but
// only links the first. The document opens, the first page renders and
// loading the second page fails.
func MissingPage(t testing.TB) []byte {
	t.Helper()

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Count 2 /Kids [3 0 R] >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 100 60] /Contents 4 0 R >>",
		"<< /Length 0 >>\nstream\n\nendstream",
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}
