package deck

import (
	"context"
	"time"

	"invertdeck/backend/internal/domain"
	"invertdeck/backend/internal/raster"
)

// InvertedPrefix is prepended to the source name of a stage-1 document.
const InvertedPrefix = "inv_"

// Invert renders every page of src, complements its colors and returns a
// document with one full-bleed image page per source page. Each output page
// measures exactly the rendered pixel size in points.
func (d *Deck) Invert(ctx context.Context, src domain.Source) (domain.Document, error) {
	started := time.Now()

	doc, err := raster.Open(src.Name, src.Data)
	if err != nil {
		return domain.Document{}, err
	}
	defer doc.Close()

	w := newPageWriter()
	for i := 0; i < doc.NumPages(); i++ {
		if err := ctx.Err(); err != nil {
			return domain.Document{}, err
		}

		data, buf, err := doc.RenderPNG(i, true)
		if err != nil {
			return domain.Document{}, err
		}

		width, height := float64(buf.Width), float64(buf.Height)
		w.addPage(width, height)
		if err := w.drawPNG(data, 0, 0, width, height); err != nil {
			return domain.Document{}, &domain.OpError{
				Op:   "deck.invert",
				Kind: domain.KindEncoding,
				Doc:  src.Name,
				Page: i + 1,
				Err:  err,
			}
		}
	}

	out, err := w.bytes()
	if err != nil {
		return domain.Document{}, &domain.OpError{
			Op:   "deck.invert",
			Kind: domain.KindWrite,
			Doc:  src.Name,
			Err:  err,
		}
	}

	d.log.Debug("deck.invert.done",
		"doc", src.Name,
		"pages", w.pages,
		"bytes", len(out),
		"elapsed_ms", time.Since(started).Milliseconds(),
	)

	return domain.Document{
		Name:  InvertedPrefix + src.Name,
		Data:  out,
		Pages: w.pages,
	}, nil
}
