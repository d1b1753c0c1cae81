package ports

import (
	"context"

	"invertdeck/backend/internal/domain"
)

// Stages is the page-processing pipeline the use cases drive.
type Stages interface {
	Invert(ctx context.Context, src domain.Source) (domain.Document, error)
	Concat(ctx context.Context, docs []domain.Document) (domain.Document, error)
	Pack(ctx context.Context, doc domain.Document) (domain.Document, error)
}

// Inspector reports page metadata for a source document.
type Inspector interface {
	Inspect(ctx context.Context, src domain.Source) (domain.DocumentInfo, error)
}

// WorkspaceFactory opens a per-run working context.
type WorkspaceFactory interface {
	Open() (Workspace, error)
}

// Workspace is a per-run scratch area identified by a unique id.
type Workspace interface {
	ID() string
	Save(name string, data []byte) (string, error)
	Close() error
}
