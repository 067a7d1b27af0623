package repo

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fcasibu/minigit/pkg/index"
	"github.com/fcasibu/minigit/pkg/object"
)

// loadIndex checks the index file is present (its absence means the
// repository was never initialized) and decodes it.
func (r *Repo) loadIndex() (*index.Index, error) {
	if _, err := os.Stat(r.indexPath()); err != nil {
		return nil, fmt.Errorf("%w: %s", object.ErrNotInitialized, r.RepoDir)
	}
	return index.Load(r.indexPath())
}

// Add stages the file at path for the next tree object:
//
//  1. The file's current content is written as a blob to the object store.
//  2. The index entry for the path is inserted or updated; re-staging
//     identical content leaves the index unchanged.
//  3. The whole index is rewritten atomically.
//
// The blob's address is returned.
func (r *Repo) Add(path string) (object.Hash, error) {
	relPath, err := r.repoRelPath(path)
	if err != nil {
		return "", fmt.Errorf("add: resolve path %q: %w", path, err)
	}

	absPath := filepath.Join(r.RootDir, relPath)
	content, err := os.ReadFile(absPath)
	if err != nil {
		return "", fmt.Errorf("add: read %q: %w", relPath, err)
	}
	info, err := os.Stat(absPath)
	if err != nil {
		return "", fmt.Errorf("add: stat %q: %w", relPath, err)
	}

	h, err := r.HashBlob(content, true)
	if err != nil {
		return "", fmt.Errorf("add: write blob %q: %w", relPath, err)
	}

	ix, err := r.loadIndex()
	if err != nil {
		return "", fmt.Errorf("add: %w", err)
	}
	ix.Set(index.Entry{
		Mode: modeFromFileInfo(info),
		Hash: h,
		Path: relPath,
	})
	if err := ix.Save(r.indexPath()); err != nil {
		return "", fmt.Errorf("add: %w", err)
	}
	return h, nil
}

// ListIndex returns the staged entries in canonical (mode, digest, path)
// order.
func (r *Repo) ListIndex() ([]index.Entry, error) {
	ix, err := r.loadIndex()
	if err != nil {
		return nil, err
	}
	return ix.Entries, nil
}

// repoRelPath converts a path (absolute, or relative to CWD) into a
// slash-separated path relative to the repository root. A path that cannot
// be placed under the root is treated as already repo-relative.
func (r *Repo) repoRelPath(p string) (string, error) {
	if filepath.IsAbs(p) {
		rel, err := filepath.Rel(r.RootDir, p)
		if err != nil {
			return "", fmt.Errorf("cannot make %q relative to %q: %w", p, r.RootDir, err)
		}
		return filepath.ToSlash(rel), nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return filepath.ToSlash(filepath.Clean(p)), nil
	}

	abs := filepath.Join(cwd, p)
	rel, err := filepath.Rel(r.RootDir, abs)
	if err != nil {
		return filepath.ToSlash(filepath.Clean(p)), nil
	}
	if len(rel) >= 2 && rel[:2] == ".." {
		return filepath.ToSlash(filepath.Clean(p)), nil
	}
	return filepath.ToSlash(rel), nil
}
