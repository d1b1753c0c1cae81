package domain

import "time"

// Source is one uploaded input. Name is used for bookkeeping and naming only.
type Source struct {
	Name string
	Data []byte
}

// Document is a serialized PDF produced by one pipeline stage.
type Document struct {
	Name  string
	Data  []byte
	Pages int
}

// PageInfo describes the visible box of one page in points.
type PageInfo struct {
	Number   int     `json:"number"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Rotation int     `json:"rotation"`
}

// DocumentInfo is the result of inspecting a source document.
type DocumentInfo struct {
	Name  string     `json:"name"`
	Size  int        `json:"size"`
	Pages []PageInfo `json:"pages"`
}

// Result is the outcome of one pipeline run.
type Result struct {
	ID          string
	Filename    string // name of the PDF entry inside the archive
	ArchiveName string
	Archive     []byte
	Sheets      int
	SourcePages int
	Elapsed     time.Duration
}
