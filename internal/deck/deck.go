package deck

import (
	"io"
	"log/slog"
)

// Deck runs the three page-processing stages. A Deck holds no per-run state
// and may be shared by concurrent runs.
type Deck struct {
	geom Geometry
	log  *slog.Logger
}

// New returns a Deck using geom for sheet layout. A nil logger discards.
func New(geom Geometry, log *slog.Logger) *Deck {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Deck{geom: geom, log: log}
}

// Geometry returns the sheet layout in use.
func (d *Deck) Geometry() Geometry {
	return d.geom
}
