// Package workspace gives each pipeline run its own working directory, named
// by a random UUID so concurrent runs never share paths.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"invertdeck/backend/internal/ports"
)

type Workspace struct {
	id   string
	dir  string
	keep bool
}

// New creates root/<uuid>. When keep is false, Save is a no-op and nothing
// is written to disk besides the empty directory.
func New(root string, keep bool) (*Workspace, error) {
	id := uuid.NewString()
	dir := filepath.Join(root, id)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create workspace: %w", err)
	}
	return &Workspace{id: id, dir: dir, keep: keep}, nil
}

func (w *Workspace) ID() string  { return w.id }
func (w *Workspace) Dir() string { return w.dir }

// Save stores an intermediate artifact under its sanitized name and returns
// the path, or "" when artifacts are not kept.
func (w *Workspace) Save(name string, data []byte) (string, error) {
	if !w.keep {
		return "", nil
	}
	path := filepath.Join(w.dir, SanitizeFilename(name, "document.pdf"))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("save %s: %w", name, err)
	}
	return path, nil
}

// Close removes the directory unless artifacts are kept.
func (w *Workspace) Close() error {
	if w.keep {
		return nil
	}
	return os.RemoveAll(w.dir)
}

var invalidFilenameChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1F]`)

// SanitizeFilename makes an uploaded name safe to use as a single path
// element, falling back to fallback when nothing usable remains.
func SanitizeFilename(name, fallback string) string {
	trimmed := strings.TrimSpace(filepath.Base(filepath.ToSlash(name)))
	sanitized := invalidFilenameChars.ReplaceAllString(trimmed, "_")
	sanitized = strings.Trim(sanitized, ". ")
	if sanitized == "" {
		return fallback
	}
	return sanitized
}

// Factory opens workspaces under a fixed root.
type Factory struct {
	Root string
	Keep bool
}

func NewFactory(root string, keep bool) Factory {
	return Factory{Root: root, Keep: keep}
}

func (f Factory) Open() (ports.Workspace, error) {
	return New(f.Root, f.Keep)
}
