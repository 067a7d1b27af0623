package repo

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fcasibu/minigit/pkg/object"
)

func TestInitCreatesLayout(t *testing.T) {
	dir := t.TempDir()
	r, reinitialized, err := Init(dir)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if reinitialized {
		t.Error("first Init reported reinitialized")
	}

	for _, sub := range []string{"objects", filepath.Join("refs", "heads"), filepath.Join("refs", "tags")} {
		info, err := os.Stat(filepath.Join(r.RepoDir, sub))
		if err != nil || !info.IsDir() {
			t.Errorf("missing directory %s: %v", sub, err)
		}
	}

	head, err := os.ReadFile(filepath.Join(r.RepoDir, "HEAD"))
	if err != nil {
		t.Fatalf("read HEAD: %v", err)
	}
	if string(head) != "ref: refs/heads/main\n" {
		t.Errorf("HEAD content: got %q", head)
	}

	info, err := os.Stat(filepath.Join(r.RepoDir, "index"))
	if err != nil {
		t.Fatalf("stat index: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("index should start empty, has %d bytes", info.Size())
	}
}

func TestInitIdempotent(t *testing.T) {
	dir := t.TempDir()
	if _, _, err := Init(dir); err != nil {
		t.Fatalf("Init: %v", err)
	}

	// Point HEAD somewhere else; reinit must not overwrite it.
	headPath := filepath.Join(dir, DirName, "HEAD")
	if err := os.WriteFile(headPath, []byte("ref: refs/heads/dev\n"), 0o644); err != nil {
		t.Fatalf("write HEAD: %v", err)
	}

	_, reinitialized, err := Init(dir)
	if err != nil {
		t.Fatalf("re-Init: %v", err)
	}
	if !reinitialized {
		t.Error("second Init did not report reinitialized")
	}

	head, err := os.ReadFile(headPath)
	if err != nil {
		t.Fatalf("read HEAD: %v", err)
	}
	if string(head) != "ref: refs/heads/dev\n" {
		t.Errorf("re-Init overwrote HEAD: got %q", head)
	}
}

func TestOpenFindsRepoFromSubdirectory(t *testing.T) {
	dir := t.TempDir()
	if _, _, err := Init(dir); err != nil {
		t.Fatalf("Init: %v", err)
	}

	sub := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	r, err := Open(sub)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if r.RootDir != dir {
		t.Errorf("RootDir: got %q, want %q", r.RootDir, dir)
	}
}

func TestOpenOutsideRepository(t *testing.T) {
	_, err := Open(t.TempDir())
	if !errors.Is(err, object.ErrNotInitialized) {
		t.Errorf("got %v, want ErrNotInitialized", err)
	}
}
