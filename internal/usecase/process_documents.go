package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"invertdeck/backend/internal/domain"
	"invertdeck/backend/internal/infra/archive"
	"invertdeck/backend/internal/infra/workspace"
	"invertdeck/backend/internal/ports"
)

type ProcessDocuments struct {
	stages     ports.Stages
	workspaces ports.WorkspaceFactory
	log        *slog.Logger
}

func NewProcessDocuments(stages ports.Stages, workspaces ports.WorkspaceFactory, log *slog.Logger) *ProcessDocuments {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &ProcessDocuments{
		stages:     stages,
		workspaces: workspaces,
		log:        log,
	}
}

// Execute inverts every source, concatenates the results in upload order,
// packs them three per sheet and zips the final PDF. Any stage failure
// aborts the run before an archive exists.
func (uc *ProcessDocuments) Execute(ctx context.Context, sources []domain.Source) (domain.Result, error) {
	if len(sources) == 0 {
		return domain.Result{}, &domain.OpError{
			Op:   "usecase.process",
			Kind: domain.KindEmptyInput,
			Err:  errors.New("no documents supplied"),
		}
	}

	started := time.Now()

	ws, err := uc.workspaces.Open()
	if err != nil {
		return domain.Result{}, err
	}
	defer func() {
		if cerr := ws.Close(); cerr != nil {
			uc.log.Warn("workspace.close_failed", "id", ws.ID(), "err", cerr)
		}
	}()

	log := uc.log.With("id", ws.ID())
	log.Info("process.started", "sources", len(sources))

	inverted := make([]domain.Document, 0, len(sources))
	sourcePages := 0
	for i, src := range sources {
		src.Name = workspace.SanitizeFilename(src.Name, fmt.Sprintf("document_%d.pdf", i+1))
		if err := uc.save(ws, sourceArtifact(i, src.Name), src.Data); err != nil {
			return domain.Result{}, err
		}

		inv, err := uc.stages.Invert(ctx, src)
		if err != nil {
			log.Error("process.invert_failed", "doc", src.Name, "err", err)
			return domain.Result{}, err
		}
		if err := uc.save(ws, sourceArtifact(i, inv.Name), inv.Data); err != nil {
			return domain.Result{}, err
		}

		sourcePages += inv.Pages
		inverted = append(inverted, inv)
	}

	merged, err := uc.stages.Concat(ctx, inverted)
	if err != nil {
		log.Error("process.concat_failed", "err", err)
		return domain.Result{}, err
	}
	if err := uc.save(ws, merged.Name, merged.Data); err != nil {
		return domain.Result{}, err
	}

	packed, err := uc.stages.Pack(ctx, merged)
	if err != nil {
		log.Error("process.pack_failed", "err", err)
		return domain.Result{}, err
	}

	filename := FinalName(ws.ID())
	if err := uc.save(ws, filename, packed.Data); err != nil {
		return domain.Result{}, err
	}

	zipped, err := archive.SingleFile(filename, packed.Data)
	if err != nil {
		return domain.Result{}, &domain.OpError{Op: "usecase.process", Kind: domain.KindWrite, Doc: filename, Err: err}
	}

	res := domain.Result{
		ID:          ws.ID(),
		Filename:    filename,
		ArchiveName: ArchiveName(ws.ID()),
		Archive:     zipped,
		Sheets:      packed.Pages,
		SourcePages: sourcePages,
		Elapsed:     time.Since(started),
	}

	log.Info("process.done",
		"pages", res.SourcePages,
		"sheets", res.Sheets,
		"zip_bytes", len(res.Archive),
		"elapsed_ms", res.Elapsed.Milliseconds(),
	)
	return res, nil
}

func (uc *ProcessDocuments) save(ws ports.Workspace, name string, data []byte) error {
	path, err := ws.Save(name, data)
	if err != nil {
		return &domain.OpError{Op: "usecase.process", Kind: domain.KindWrite, Doc: name, Err: err}
	}
	if path != "" {
		uc.log.Debug("workspace.saved", "id", ws.ID(), "path", path, "bytes", len(data))
	}
	return nil
}

// sourceArtifact prefixes per-source artifacts with the 1-based source index
// so repeated upload names never overwrite each other or the merged and
// final documents.
func sourceArtifact(i int, name string) string {
	return fmt.Sprintf("%02d_%s", i+1, name)
}

// FinalName is the name of the PDF inside the archive for run id.
func FinalName(id string) string {
	return "final_" + id + ".pdf"
}

// ArchiveName is the download name of the archive for run id.
func ArchiveName(id string) string {
	return "final_" + id + ".zip"
}
