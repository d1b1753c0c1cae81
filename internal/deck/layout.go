package deck

import (
	"errors"
	"fmt"
	"math"
)

// SlotsPerSheet is the number of source pages placed on one output sheet.
const SlotsPerSheet = 3

// Default sheet geometry in points (A4 portrait).
const (
	DefaultSheetWidth    = 595.0
	DefaultSheetHeight   = 842.0
	DefaultMarginTop     = 5.0
	DefaultMarginLeft    = 57.0
	DefaultMarginRight   = 5.0
	DefaultSpacing       = 0.0
	DefaultLabelFontSize = 10.0
	DefaultLabelOffsetX  = 100.0
	DefaultLabelOffsetY  = 20.0
)

// Geometry holds the named sheet parameters the slots are derived from.
type Geometry struct {
	SheetWidth  float64
	SheetHeight float64
	MarginTop   float64
	MarginLeft  float64
	MarginRight float64
	Spacing     float64

	// Label stamps "Page N" at (SheetWidth-LabelOffsetX, SheetHeight-LabelOffsetY).
	Label         bool
	LabelFontSize float64
	LabelOffsetX  float64
	LabelOffsetY  float64
}

// DefaultGeometry returns the standard three-up A4 layout.
func DefaultGeometry() Geometry {
	return Geometry{
		SheetWidth:    DefaultSheetWidth,
		SheetHeight:   DefaultSheetHeight,
		MarginTop:     DefaultMarginTop,
		MarginLeft:    DefaultMarginLeft,
		MarginRight:   DefaultMarginRight,
		Spacing:       DefaultSpacing,
		Label:         true,
		LabelFontSize: DefaultLabelFontSize,
		LabelOffsetX:  DefaultLabelOffsetX,
		LabelOffsetY:  DefaultLabelOffsetY,
	}
}

// Slot is a placement rectangle on a sheet, origin at the top-left corner.
type Slot struct {
	X, Y, W, H float64
}

// Empty reports whether the slot has no area.
func (s Slot) Empty() bool {
	return s.W <= 0 || s.H <= 0
}

// SlotWidth is the horizontal extent shared by every slot.
func (g Geometry) SlotWidth() float64 {
	return g.SheetWidth - g.MarginLeft - g.MarginRight
}

// SlotHeight is a third of the vertical span below the top margin.
func (g Geometry) SlotHeight() float64 {
	available := g.SheetHeight - g.MarginTop - 2*g.Spacing
	return available / SlotsPerSheet
}

// Slots returns the three vertically stacked slots, top first.
func (g Geometry) Slots() [SlotsPerSheet]Slot {
	var slots [SlotsPerSheet]Slot
	w, h := g.SlotWidth(), g.SlotHeight()
	for i := range slots {
		slots[i] = Slot{
			X: g.MarginLeft,
			Y: g.MarginTop + float64(i)*(h+g.Spacing),
			W: w,
			H: h,
		}
	}
	return slots
}

// LabelPosition is the baseline origin of the sheet label.
func (g Geometry) LabelPosition() (x, y float64) {
	return g.SheetWidth - g.LabelOffsetX, g.SheetHeight - g.LabelOffsetY
}

// Validate reports geometry that cannot hold three non-empty slots.
func (g Geometry) Validate() error {
	var errs []error
	if g.SheetWidth <= 0 || g.SheetHeight <= 0 {
		errs = append(errs, fmt.Errorf("sheet size %gx%g must be positive", g.SheetWidth, g.SheetHeight))
	}
	if g.MarginTop < 0 || g.MarginLeft < 0 || g.MarginRight < 0 || g.Spacing < 0 {
		errs = append(errs, errors.New("margins and spacing must not be negative"))
	}
	if g.SlotWidth() <= 0 {
		errs = append(errs, fmt.Errorf("slot width %g must be positive", g.SlotWidth()))
	}
	if g.SlotHeight() <= 0 {
		errs = append(errs, fmt.Errorf("slot height %g must be positive", g.SlotHeight()))
	}
	if g.Label && g.LabelFontSize <= 0 {
		errs = append(errs, fmt.Errorf("label font size %g must be positive", g.LabelFontSize))
	}
	return errors.Join(errs...)
}

// Fit scales an image of w×h into the slot without distortion and centers it.
func (s Slot) Fit(w, h float64) Slot {
	if w <= 0 || h <= 0 || s.Empty() {
		return Slot{X: s.X, Y: s.Y}
	}

	scale := math.Min(s.W/w, s.H/h)
	fw, fh := w*scale, h*scale
	return Slot{
		X: s.X + (s.W-fw)/2,
		Y: s.Y + (s.H-fh)/2,
		W: fw,
		H: fh,
	}
}

// SheetCount is the number of sheets needed for pages source pages.
func SheetCount(pages int) int {
	if pages <= 0 {
		return 0
	}
	return (pages + SlotsPerSheet - 1) / SlotsPerSheet
}

// Batch returns the 0-based page indices placed on sheet i.
func Batch(pages, sheet int) []int {
	start := sheet * SlotsPerSheet
	if sheet < 0 || start >= pages {
		return nil
	}
	end := min(start+SlotsPerSheet, pages)

	idx := make([]int, 0, end-start)
	for p := start; p < end; p++ {
		idx = append(idx, p)
	}
	return idx
}
