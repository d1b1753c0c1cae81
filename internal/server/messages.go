package server

import (
	deckv1 "invertdeck/backend/gen/go/deck"
	"invertdeck/backend/internal/domain"
)

const (
	UploadFieldName    = "pdfs"
	zipContentType     = "application/zip"
	maxMultipartMemory = 32 << 20
)

func toSources(files []*deckv1.UploadedFile) []domain.Source {
	sources := make([]domain.Source, 0, len(files))
	for _, f := range files {
		sources = append(sources, domain.Source{Name: f.GetFilename(), Data: f.GetPdfFile()})
	}
	return sources
}

func toDocumentInfos(infos []domain.DocumentInfo) []*deckv1.DocumentInfo {
	out := make([]*deckv1.DocumentInfo, 0, len(infos))
	for _, info := range infos {
		pages := make([]*deckv1.PageInfo, 0, len(info.Pages))
		for _, p := range info.Pages {
			pages = append(pages, &deckv1.PageInfo{
				Number:   int32(p.Number),
				Width:    p.Width,
				Height:   p.Height,
				Rotation: int32(p.Rotation),
			})
		}
		out = append(out, &deckv1.DocumentInfo{
			Name:  info.Name,
			Size:  int64(info.Size),
			Pages: pages,
		})
	}
	return out
}
