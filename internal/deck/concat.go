package deck

import (
	"bytes"
	"context"
	"io"
	"time"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"

	"invertdeck/backend/internal/domain"
	"invertdeck/backend/internal/raster"
)

// MergedName is the name given to a stage-2 document.
const MergedName = "merged.pdf"

// Concat joins docs into one document, list order first and page order
// within each document second. Pages are copied as-is.
func (d *Deck) Concat(ctx context.Context, docs []domain.Document) (domain.Document, error) {
	started := time.Now()

	var (
		segments []domain.Document
		pages    int
	)
	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return domain.Document{}, err
		}

		n, err := countPages(doc)
		if err != nil {
			return domain.Document{}, err
		}
		if n == 0 {
			continue
		}
		segments = append(segments, doc)
		pages += n
	}

	var out []byte
	switch len(segments) {
	case 0:
		empty, err := emptyPDF()
		if err != nil {
			return domain.Document{}, &domain.OpError{Op: "deck.concat", Kind: domain.KindWrite, Err: err}
		}
		out = empty
	case 1:
		out = segments[0].Data
	default:
		readers := make([]io.ReadSeeker, len(segments))
		for i, doc := range segments {
			if err := readSegment(doc); err != nil {
				return domain.Document{}, err
			}
			readers[i] = bytes.NewReader(doc.Data)
		}

		var buf bytes.Buffer
		if err := pdfapi.MergeRaw(readers, &buf, false, newConfiguration()); err != nil {
			return domain.Document{}, &domain.OpError{Op: "deck.concat.merge", Kind: domain.KindWrite, Doc: MergedName, Err: err}
		}
		out = buf.Bytes()
	}

	d.log.Debug("deck.concat.done",
		"docs", len(docs),
		"pages", pages,
		"bytes", len(out),
		"elapsed_ms", time.Since(started).Milliseconds(),
	)

	return domain.Document{Name: MergedName, Data: out, Pages: pages}, nil
}

// readSegment checks that pdfcpu can read doc before it is handed to the
// merger, so a rejected input is reported under its own name.
func readSegment(doc domain.Document) error {
	if _, err := pdfapi.ReadValidateAndOptimize(bytes.NewReader(doc.Data), newConfiguration()); err != nil {
		return &domain.OpError{Op: "deck.concat", Kind: domain.KindDocumentOpen, Doc: doc.Name, Err: err}
	}
	return nil
}

func countPages(doc domain.Document) (int, error) {
	r, err := raster.Open(doc.Name, doc.Data)
	if err != nil {
		return 0, err
	}
	defer r.Close()
	return r.NumPages(), nil
}
