// Package deck implements the page-processing stages: color inversion by
// rasterization, concatenation of documents, and three-up sheet layout.
//
// Every page passes through a bitmap. Text and vector content are not
// preserved; the output pages carry images only.
//
// A run chains the stages:
//
//	d := deck.New(deck.DefaultGeometry(), logger)
//	inv, err := d.Invert(ctx, src)
//	merged, err := d.Concat(ctx, []domain.Document{inv})
//	sheets, err := d.Pack(ctx, merged)
package deck
