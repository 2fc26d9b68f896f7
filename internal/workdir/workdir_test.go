package workdir

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveBaseDirNoMarkers(t *testing.T) {
	dir := t.TempDir()
	if got := ResolveBaseDir(dir); got != dir {
		t.Errorf("ResolveBaseDir(%q) = %q, want unchanged", dir, got)
	}
}

func TestResolveBaseDirEmpty(t *testing.T) {
	if got := ResolveBaseDir(""); got != "" {
		t.Errorf("ResolveBaseDir(\"\") = %q, want \"\"", got)
	}
}

func TestResolveBaseDirDataDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, ".scout"), 0755); err != nil {
		t.Fatal(err)
	}
	if got := ResolveBaseDir(dir); got != dir {
		t.Errorf("ResolveBaseDir(%q) = %q, want same dir", dir, got)
	}
}

func TestResolveBaseDirRootFile(t *testing.T) {
	mainDir := t.TempDir()
	workDir := t.TempDir()

	if err := os.WriteFile(filepath.Join(workDir, ".scout-root"), []byte(mainDir+"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if got := ResolveBaseDir(workDir); got != filepath.Clean(mainDir) {
		t.Errorf("ResolveBaseDir(%q) = %q, want %q", workDir, got, mainDir)
	}
}

func TestResolveBaseDirRelativeRootFile(t *testing.T) {
	base := t.TempDir()
	workDir := filepath.Join(base, "worktree")
	if err := os.MkdirAll(workDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(workDir, ".scout-root"), []byte("..\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if got := ResolveBaseDir(workDir); got != filepath.Clean(base) {
		t.Errorf("ResolveBaseDir(%q) = %q, want %q", workDir, got, base)
	}
}

func TestResolveBaseDirEmptyRootFileIgnored(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".scout-root"), []byte("  \n"), 0644); err != nil {
		t.Fatal(err)
	}
	if got := ResolveBaseDir(dir); got != dir {
		t.Errorf("blank .scout-root should be ignored, got %q", got)
	}
}
