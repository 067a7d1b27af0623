// Package repo is the repository façade: it resolves the on-disk root,
// validates repository existence before every operation, and orchestrates
// the object store and staging index.
package repo

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fcasibu/minigit/pkg/object"
)

// DirName is the repository directory created at the working-tree root.
const DirName = ".minigit"

// Repo represents an opened minigit repository.
type Repo struct {
	RootDir string        // working directory root
	RepoDir string        // .minigit/ directory
	Store   *object.Store // content-addressed object store
}

// Open searches upward from path for a .minigit/ directory and opens the
// repository. Initialization state is derived from the filesystem on every
// call, never cached.
func Open(path string) (*Repo, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("open: abs path %q: %w", path, err)
	}

	cur := abs
	for {
		repoDir := filepath.Join(cur, DirName)
		info, err := os.Stat(repoDir)
		if err == nil && info.IsDir() {
			return &Repo{
				RootDir: cur,
				RepoDir: repoDir,
				Store:   object.NewStore(repoDir),
			}, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return nil, fmt.Errorf("open %s: %w", abs, object.ErrNotInitialized)
		}
		cur = parent
	}
}

// HashBlob encodes content as a blob and returns its address. When persist
// is set the blob is also written to the object store.
func (r *Repo) HashBlob(data []byte, persist bool) (object.Hash, error) {
	obj, err := object.EncodeBlob(data)
	if err != nil {
		return "", err
	}
	if persist {
		return r.Store.Put(obj)
	}
	return obj.Hash, nil
}

func (r *Repo) indexPath() string {
	return filepath.Join(r.RepoDir, "index")
}
