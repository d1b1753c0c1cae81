package usecase

import (
	"context"
	"errors"
	"fmt"

	"invertdeck/backend/internal/domain"
	"invertdeck/backend/internal/infra/workspace"
	"invertdeck/backend/internal/ports"
)

type InspectDocuments struct {
	inspector ports.Inspector
}

func NewInspectDocuments(inspector ports.Inspector) *InspectDocuments {
	return &InspectDocuments{inspector: inspector}
}

// Execute inspects every source in order and stops at the first failure.
func (uc *InspectDocuments) Execute(ctx context.Context, sources []domain.Source) ([]domain.DocumentInfo, error) {
	if len(sources) == 0 {
		return nil, &domain.OpError{
			Op:   "usecase.inspect",
			Kind: domain.KindEmptyInput,
			Err:  errors.New("no documents supplied"),
		}
	}

	out := make([]domain.DocumentInfo, 0, len(sources))
	for i, src := range sources {
		src.Name = workspace.SanitizeFilename(src.Name, fmt.Sprintf("document_%d.pdf", i+1))
		info, err := uc.inspector.Inspect(ctx, src)
		if err != nil {
			return nil, err
		}
		out = append(out, info)
	}
	return out, nil
}
