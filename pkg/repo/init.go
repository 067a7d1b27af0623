package repo

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fcasibu/minigit/pkg/object"
)

// Init creates the repository layout at path:
//
//	.minigit/objects/
//	.minigit/refs/heads/
//	.minigit/refs/tags/
//	.minigit/HEAD      ("ref: refs/heads/main\n")
//	.minigit/index     (empty)
//
// Init is idempotent: re-running on an existing repository performs the
// same creation steps, skips files that already exist, and reports
// reinitialized=true.
func Init(path string) (r *Repo, reinitialized bool, err error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, false, fmt.Errorf("init: abs path %q: %w", path, err)
	}
	repoDir := filepath.Join(abs, DirName)

	if info, statErr := os.Stat(repoDir); statErr == nil && info.IsDir() {
		reinitialized = true
	}

	dirs := []string{
		filepath.Join(repoDir, "objects"),
		filepath.Join(repoDir, "refs", "heads"),
		filepath.Join(repoDir, "refs", "tags"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return nil, false, fmt.Errorf("init: mkdir %s: %w", d, err)
		}
	}

	headPath := filepath.Join(repoDir, "HEAD")
	if _, err := os.Stat(headPath); os.IsNotExist(err) {
		if err := os.WriteFile(headPath, []byte("ref: refs/heads/main\n"), 0o644); err != nil {
			return nil, false, fmt.Errorf("init: write HEAD %s: %w", headPath, err)
		}
	}

	indexPath := filepath.Join(repoDir, "index")
	if _, err := os.Stat(indexPath); os.IsNotExist(err) {
		if err := os.WriteFile(indexPath, nil, 0o644); err != nil {
			return nil, false, fmt.Errorf("init: write index %s: %w", indexPath, err)
		}
	}

	return &Repo{
		RootDir: abs,
		RepoDir: repoDir,
		Store:   object.NewStore(repoDir),
	}, reinitialized, nil
}
