package deck

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"

	"invertdeck/backend/internal/domain"
)

// ErrEncrypted is reported for inputs that need a password to open.
var ErrEncrypted = errors.New("document is password protected")

// Inspect reports the page count and visible page boxes of src.
func (d *Deck) Inspect(ctx context.Context, src domain.Source) (domain.DocumentInfo, error) {
	openErr := func(err error) error {
		return &domain.OpError{Op: "deck.inspect", Kind: domain.KindDocumentOpen, Doc: src.Name, Err: err}
	}

	if len(src.Data) == 0 {
		return domain.DocumentInfo{}, openErr(errors.New("document is empty"))
	}

	pctx, err := pdfapi.ReadValidateAndOptimize(bytes.NewReader(src.Data), newConfiguration())
	if err != nil {
		if errors.Is(err, pdfcpu.ErrWrongPassword) {
			err = ErrEncrypted
		}
		return domain.DocumentInfo{}, openErr(err)
	}
	if err := pctx.EnsurePageCount(); err != nil {
		return domain.DocumentInfo{}, openErr(err)
	}

	info := domain.DocumentInfo{
		Name:  src.Name,
		Size:  len(src.Data),
		Pages: make([]domain.PageInfo, 0, pctx.PageCount),
	}

	for pageIndex := 1; pageIndex <= pctx.PageCount; pageIndex++ {
		if err := ctx.Err(); err != nil {
			return domain.DocumentInfo{}, err
		}

		_, _, inh, err := pctx.PageDict(pageIndex, false)
		if err != nil {
			return domain.DocumentInfo{}, openErr(err)
		}

		box := inh.CropBox
		if box == nil {
			box = inh.MediaBox
		}
		if box == nil {
			return domain.DocumentInfo{}, &domain.OpError{
				Op:   "deck.inspect",
				Kind: domain.KindDocumentOpen,
				Doc:  src.Name,
				Page: pageIndex,
				Err:  fmt.Errorf("page %d has no media box", pageIndex),
			}
		}

		info.Pages = append(info.Pages, domain.PageInfo{
			Number:   pageIndex,
			Width:    box.Width(),
			Height:   box.Height(),
			Rotation: inh.Rotate,
		})
	}

	d.log.Debug("deck.inspect.done", "doc", src.Name, "pages", len(info.Pages))

	return info, nil
}
