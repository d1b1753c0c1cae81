package workspace

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewCreatesUniqueDirs(t *testing.T) {
	root := t.TempDir()

	a, err := New(root, false)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	b, err := New(root, false)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	if a.ID() == b.ID() || a.Dir() == b.Dir() {
		t.Fatalf("expected distinct workspaces, got %s and %s", a.Dir(), b.Dir())
	}
	if filepath.Dir(a.Dir()) != root {
		t.Fatalf("expected workspace under %s, got %s", root, a.Dir())
	}
	if _, err := os.Stat(a.Dir()); err != nil {
		t.Fatalf("expected workspace dir to exist: %v", err)
	}
}

func TestSaveAndCloseWithoutKeep(t *testing.T) {
	ws, err := New(t.TempDir(), false)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	path, err := ws.Save("merged.pdf", []byte("x"))
	if err != nil || path != "" {
		t.Fatalf("expected no-op save, got %q, %v", path, err)
	}
	if err := ws.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}
	if _, err := os.Stat(ws.Dir()); !os.IsNotExist(err) {
		t.Fatalf("expected workspace dir removed, got %v", err)
	}
}

func TestSaveKeepsArtifacts(t *testing.T) {
	ws, err := New(t.TempDir(), true)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	path, err := ws.Save("../../escape.pdf", []byte("data"))
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if filepath.Dir(path) != ws.Dir() {
		t.Fatalf("expected artifact inside workspace, got %s", path)
	}
	b, err := os.ReadFile(path)
	if err != nil || string(b) != "data" {
		t.Fatalf("unexpected artifact content %q, %v", b, err)
	}

	if err := ws.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected kept artifact to survive Close: %v", err)
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"slides.pdf", "slides.pdf"},
		{"  lecture 1.pdf ", "lecture 1.pdf"},
		{"dir/sub/notes.pdf", "notes.pdf"},
		{`a:b*c?.pdf`, "a_b_c_.pdf"},
		{"...", "fallback.pdf"},
		{"", "fallback.pdf"},
	}
	for _, tt := range tests {
		if got := SanitizeFilename(tt.in, "fallback.pdf"); got != tt.want {
			t.Fatalf("SanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
