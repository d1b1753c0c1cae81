package deck

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"invertdeck/backend/internal/domain"
	"invertdeck/backend/internal/raster"
	"invertdeck/backend/internal/testpdf"
)

func isDark(r, g, b uint8) bool  { return r < 32 && g < 32 && b < 32 }
func isLight(r, g, b uint8) bool { return r > 223 && g > 223 && b > 223 }

// renderPages rasterizes every page of data at scale 1.
func renderPages(t *testing.T, data []byte) []raster.PixelBuffer {
	t.Helper()

	doc, err := raster.Open("check.pdf", data)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer doc.Close()

	out := make([]raster.PixelBuffer, doc.NumPages())
	for i := range out {
		buf, err := doc.Render(i)
		if err != nil {
			t.Fatalf("render output page %d: %v", i+1, err)
		}
		out[i] = buf
	}
	return out
}

// slotFilled samples the center of slot s on a rendered sheet.
func slotFilled(t *testing.T, sheet raster.PixelBuffer, s Slot) bool {
	t.Helper()
	r, g, b := sheet.At(int(s.X+s.W/2), int(s.Y+s.H/2))
	switch {
	case isDark(r, g, b):
		return true
	case isLight(r, g, b):
		return false
	}
	t.Fatalf("ambiguous slot color (%d,%d,%d)", r, g, b)
	return false
}

func blackPages(t *testing.T, n int) []byte {
	t.Helper()
	pages := make([]testpdf.Page, n)
	for i := range pages {
		pages[i] = testpdf.Page{W: 160, H: 90}
	}
	return testpdf.Build(t, pages...)
}

func TestInvertWhitePagesBecomeBlack(t *testing.T) {
	d := New(DefaultGeometry(), nil)
	src := domain.Source{Name: "white.pdf", Data: testpdf.Whites(t, 2, 100, 60)}

	inv, err := d.Invert(context.Background(), src)
	if err != nil {
		t.Fatalf("Invert error: %v", err)
	}
	if inv.Pages != 2 {
		t.Fatalf("expected 2 pages, got %d", inv.Pages)
	}
	if inv.Name != "inv_white.pdf" {
		t.Fatalf("unexpected name %q", inv.Name)
	}

	for i, page := range renderPages(t, inv.Data) {
		if page.Width != 100 || page.Height != 60 {
			t.Fatalf("page %d: expected 100x60, got %dx%d", i+1, page.Width, page.Height)
		}
		for y := 0; y < page.Height; y++ {
			for x := 0; x < page.Width; x++ {
				if r, g, b := page.At(x, y); !isDark(r, g, b) {
					t.Fatalf("page %d: pixel (%d,%d) = (%d,%d,%d), want black", i+1, x, y, r, g, b)
				}
			}
		}
	}
}

func TestInvertTwiceRestoresColors(t *testing.T) {
	d := New(DefaultGeometry(), nil)
	src := domain.Source{Name: "grey.pdf", Data: testpdf.Build(t, testpdf.Page{W: 50, H: 40, R: 200, G: 100, B: 30})}

	once, err := d.Invert(context.Background(), src)
	if err != nil {
		t.Fatalf("Invert error: %v", err)
	}
	twice, err := d.Invert(context.Background(), domain.Source{Name: once.Name, Data: once.Data})
	if err != nil {
		t.Fatalf("Invert error: %v", err)
	}

	orig := renderPages(t, src.Data)[0]
	back := renderPages(t, twice.Data)[0]
	r0, g0, b0 := orig.At(25, 20)
	r1, g1, b1 := back.At(25, 20)
	if r0 != r1 || g0 != g1 || b0 != b1 {
		t.Fatalf("expected (%d,%d,%d) after double inversion, got (%d,%d,%d)", r0, g0, b0, r1, g1, b1)
	}
}

func TestInvertRejectsGarbage(t *testing.T) {
	d := New(DefaultGeometry(), nil)
	_, err := d.Invert(context.Background(), domain.Source{Name: "bad.pdf", Data: []byte("not a pdf")})
	if !errors.Is(err, domain.ErrDocumentOpen) {
		t.Fatalf("expected document open error, got %v", err)
	}
}

func TestInvertZeroPageDocument(t *testing.T) {
	empty, err := emptyPDF()
	if err != nil {
		t.Fatalf("emptyPDF error: %v", err)
	}

	d := New(DefaultGeometry(), nil)
	inv, err := d.Invert(context.Background(), domain.Source{Name: "empty.pdf", Data: empty})
	if err != nil {
		t.Fatalf("Invert error: %v", err)
	}
	if inv.Pages != 0 {
		t.Fatalf("expected zero pages, got %d", inv.Pages)
	}
}

func TestInvertHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := New(DefaultGeometry(), nil)
	_, err := d.Invert(ctx, domain.Source{Name: "white.pdf", Data: testpdf.Whites(t, 1, 10, 10)})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func assertPageRender(t *testing.T, err error, doc string, page int) {
	t.Helper()
	var oe *domain.OpError
	if !errors.As(err, &oe) || oe.Kind != domain.KindPageRender {
		t.Fatalf("expected page_render error, got %v", err)
	}
	if oe.Doc != doc || oe.Page != page {
		t.Fatalf("expected failure on %s page %d, got %s page %d", doc, page, oe.Doc, oe.Page)
	}
}

func TestInvertAbortsOnUnrenderablePage(t *testing.T) {
	d := New(DefaultGeometry(), nil)
	out, err := d.Invert(context.Background(), domain.Source{Name: "torn.pdf", Data: testpdf.MissingPage(t)})
	assertPageRender(t, err, "torn.pdf", 2)
	if out.Data != nil {
		t.Fatalf("expected no document on failure")
	}
}

func TestConcatEmptyList(t *testing.T) {
	d := New(DefaultGeometry(), nil)
	out, err := d.Concat(context.Background(), nil)
	if err != nil {
		t.Fatalf("Concat error: %v", err)
	}
	if out.Pages != 0 {
		t.Fatalf("expected zero pages, got %d", out.Pages)
	}
	if n := len(renderPages(t, out.Data)); n != 0 {
		t.Fatalf("expected zero-page document, got %d pages", n)
	}
}

func TestConcatSingleDocumentIsUnchanged(t *testing.T) {
	d := New(DefaultGeometry(), nil)
	data := testpdf.Whites(t, 2, 100, 60)

	out, err := d.Concat(context.Background(), []domain.Document{{Name: "a.pdf", Data: data}})
	if err != nil {
		t.Fatalf("Concat error: %v", err)
	}
	if !bytes.Equal(out.Data, data) {
		t.Fatalf("expected single input bytes to pass through unchanged")
	}
	if out.Pages != 2 {
		t.Fatalf("expected 2 pages, got %d", out.Pages)
	}
}

func TestConcatPreservesOrder(t *testing.T) {
	d := New(DefaultGeometry(), nil)
	d1 := testpdf.Build(t, testpdf.White(100, 50), testpdf.White(110, 50), testpdf.White(120, 50))
	d2 := testpdf.Build(t, testpdf.White(130, 50), testpdf.White(140, 50), testpdf.White(150, 50))

	out, err := d.Concat(context.Background(), []domain.Document{
		{Name: "d1.pdf", Data: d1},
		{Name: "d2.pdf", Data: d2},
	})
	if err != nil {
		t.Fatalf("Concat error: %v", err)
	}
	if out.Pages != 6 {
		t.Fatalf("expected 6 pages, got %d", out.Pages)
	}

	pages := renderPages(t, out.Data)
	want := []int{100, 110, 120, 130, 140, 150}
	if len(pages) != len(want) {
		t.Fatalf("expected %d rendered pages, got %d", len(want), len(pages))
	}
	for i, p := range pages {
		if p.Width != want[i] {
			t.Fatalf("page %d: expected width %d, got %d", i+1, want[i], p.Width)
		}
	}
}

func TestConcatFailsFastOnBadDocument(t *testing.T) {
	d := New(DefaultGeometry(), nil)
	_, err := d.Concat(context.Background(), []domain.Document{
		{Name: "good.pdf", Data: testpdf.Whites(t, 1, 10, 10)},
		{Name: "broken.pdf", Data: []byte("garbage")},
		{Name: "never.pdf", Data: []byte("also garbage")},
	})

	var oe *domain.OpError
	if !errors.As(err, &oe) {
		t.Fatalf("expected OpError, got %v", err)
	}
	if oe.Kind != domain.KindDocumentOpen || oe.Doc != "broken.pdf" {
		t.Fatalf("expected document_open for broken.pdf, got %v", err)
	}
}

func TestReadSegmentNamesRejectedDocument(t *testing.T) {
	if err := readSegment(domain.Document{Name: "ok.pdf", Data: testpdf.Whites(t, 1, 10, 10)}); err != nil {
		t.Fatalf("expected readable segment, got %v", err)
	}

	err := readSegment(domain.Document{Name: "inv_b.pdf", Data: []byte("%PDF-1.4\ntruncated")})
	var oe *domain.OpError
	if !errors.As(err, &oe) || oe.Kind != domain.KindDocumentOpen || oe.Doc != "inv_b.pdf" {
		t.Fatalf("expected document_open naming inv_b.pdf, got %v", err)
	}
}

func TestPackTwoPageScenario(t *testing.T) {
	d := New(DefaultGeometry(), nil)
	ctx := context.Background()

	inv, err := d.Invert(ctx, domain.Source{Name: "white.pdf", Data: testpdf.Whites(t, 2, 100, 60)})
	if err != nil {
		t.Fatalf("Invert error: %v", err)
	}
	merged, err := d.Concat(ctx, []domain.Document{inv})
	if err != nil {
		t.Fatalf("Concat error: %v", err)
	}
	if !bytes.Equal(merged.Data, inv.Data) {
		t.Fatalf("expected single-input concat to keep stage-1 bytes")
	}

	packed, err := d.Pack(ctx, merged)
	if err != nil {
		t.Fatalf("Pack error: %v", err)
	}
	if packed.Pages != 1 {
		t.Fatalf("expected 1 sheet, got %d", packed.Pages)
	}

	sheets := renderPages(t, packed.Data)
	if len(sheets) != 1 {
		t.Fatalf("expected 1 rendered sheet, got %d", len(sheets))
	}
	sheet := sheets[0]
	if sheet.Width != 595 || sheet.Height != 842 {
		t.Fatalf("expected 595x842 sheet, got %dx%d", sheet.Width, sheet.Height)
	}

	slots := d.Geometry().Slots()
	want := []bool{true, true, false}
	for i, s := range slots {
		if got := slotFilled(t, sheet, s); got != want[i] {
			t.Fatalf("slot %d: filled=%v, want %v", i, got, want[i])
		}
	}
}

func TestPackSheetCounts(t *testing.T) {
	d := New(DefaultGeometry(), nil)
	slots := d.Geometry().Slots()

	for _, pages := range []int{1, 3, 4, 5, 6, 7} {
		packed, err := d.Pack(context.Background(), domain.Document{Name: "black.pdf", Data: blackPages(t, pages)})
		if err != nil {
			t.Fatalf("%d pages: Pack error: %v", pages, err)
		}

		sheets := renderPages(t, packed.Data)
		if len(sheets) != SheetCount(pages) || packed.Pages != len(sheets) {
			t.Fatalf("%d pages: expected %d sheets, got %d (reported %d)", pages, SheetCount(pages), len(sheets), packed.Pages)
		}

		for i, sheet := range sheets {
			if sheet.Width != 595 || sheet.Height != 842 {
				t.Fatalf("%d pages: sheet %d is %dx%d", pages, i+1, sheet.Width, sheet.Height)
			}
			filled := 0
			for _, s := range slots {
				if slotFilled(t, sheet, s) {
					filled++
				}
			}
			if want := min(SlotsPerSheet, pages-SlotsPerSheet*i); filled != want {
				t.Fatalf("%d pages: sheet %d has %d images, want %d", pages, i+1, filled, want)
			}
		}
	}
}

func TestPackAbortsOnUnrenderablePage(t *testing.T) {
	d := New(DefaultGeometry(), nil)
	out, err := d.Pack(context.Background(), domain.Document{Name: "torn.pdf", Data: testpdf.MissingPage(t)})
	assertPageRender(t, err, "torn.pdf", 2)
	if out.Data != nil {
		t.Fatalf("expected no document on failure")
	}
}

func TestPackIsDeterministic(t *testing.T) {
	d := New(DefaultGeometry(), nil)
	doc := domain.Document{Name: "black.pdf", Data: blackPages(t, 4)}

	a, err := d.Pack(context.Background(), doc)
	if err != nil {
		t.Fatalf("Pack error: %v", err)
	}
	b, err := d.Pack(context.Background(), doc)
	if err != nil {
		t.Fatalf("Pack error: %v", err)
	}
	if !bytes.Equal(a.Data, b.Data) {
		t.Fatalf("expected identical output for identical input")
	}
}

func TestPackRejectsInvalidGeometry(t *testing.T) {
	g := DefaultGeometry()
	g.MarginLeft = 1000

	_, err := New(g, nil).Pack(context.Background(), domain.Document{Name: "black.pdf", Data: blackPages(t, 1)})
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config error, got %v", err)
	}
}

func TestInspectReportsPageBoxes(t *testing.T) {
	d := New(DefaultGeometry(), nil)
	data := testpdf.Build(t, testpdf.White(200, 100), testpdf.White(300, 400))

	info, err := d.Inspect(context.Background(), domain.Source{Name: "two.pdf", Data: data})
	if err != nil {
		t.Fatalf("Inspect error: %v", err)
	}
	if len(info.Pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(info.Pages))
	}
	if p := info.Pages[1]; p.Number != 2 || p.Width != 300 || p.Height != 400 {
		t.Fatalf("unexpected page info %+v", p)
	}
	if info.Size != len(data) {
		t.Fatalf("expected size %d, got %d", len(data), info.Size)
	}
}

func TestInspectRejectsGarbage(t *testing.T) {
	d := New(DefaultGeometry(), nil)
	_, err := d.Inspect(context.Background(), domain.Source{Name: "bad.pdf", Data: []byte("nope")})
	if !errors.Is(err, domain.ErrDocumentOpen) {
		t.Fatalf("expected document open error, got %v", err)
	}
}
