package deck

import (
	"context"
	"fmt"
	"time"

	"invertdeck/backend/internal/domain"
	"invertdeck/backend/internal/raster"
)

// SheetLabel is the text stamped on sheet n (1-based).
func SheetLabel(n int) string {
	return fmt.Sprintf("Page %d", n)
}

// Pack lays doc out three pages per sheet. Every page is rendered again,
// scaled to fit its slot and centered; a short final batch leaves the
// remaining slots blank.
func (d *Deck) Pack(ctx context.Context, doc domain.Document) (domain.Document, error) {
	started := time.Now()

	if err := d.geom.Validate(); err != nil {
		return domain.Document{}, &domain.OpError{Op: "deck.pack", Kind: domain.KindInvalidConfig, Err: err}
	}

	src, err := raster.Open(doc.Name, doc.Data)
	if err != nil {
		return domain.Document{}, err
	}
	defer src.Close()

	total := src.NumPages()
	slots := d.geom.Slots()

	w := newPageWriter()
	for sheet := 0; sheet < SheetCount(total); sheet++ {
		w.addPage(d.geom.SheetWidth, d.geom.SheetHeight)

		for j, p := range Batch(total, sheet) {
			if err := ctx.Err(); err != nil {
				return domain.Document{}, err
			}

			data, buf, err := src.RenderPNG(p, false)
			if err != nil {
				return domain.Document{}, err
			}

			r := slots[j].Fit(float64(buf.Width), float64(buf.Height))
			if err := w.drawPNG(data, r.X, r.Y, r.W, r.H); err != nil {
				return domain.Document{}, &domain.OpError{
					Op:   "deck.pack",
					Kind: domain.KindEncoding,
					Doc:  doc.Name,
					Page: p + 1,
					Err:  err,
				}
			}
		}

		if d.geom.Label {
			x, y := d.geom.LabelPosition()
			if err := w.text(x, y, d.geom.LabelFontSize, SheetLabel(sheet+1)); err != nil {
				return domain.Document{}, &domain.OpError{Op: "deck.pack", Kind: domain.KindWrite, Doc: doc.Name, Err: err}
			}
		}
	}

	out, err := w.bytes()
	if err != nil {
		return domain.Document{}, &domain.OpError{Op: "deck.pack", Kind: domain.KindWrite, Doc: doc.Name, Err: err}
	}

	d.log.Debug("deck.pack.done",
		"doc", doc.Name,
		"pages", total,
		"sheets", w.pages,
		"bytes", len(out),
		"elapsed_ms", time.Since(started).Milliseconds(),
	)

	return domain.Document{Name: doc.Name, Data: out, Pages: w.pages}, nil
}
