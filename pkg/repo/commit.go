package repo

import (
	"fmt"
	"time"

	"github.com/fcasibu/minigit/pkg/object"
)

// CommitTree creates a commit object referencing the given tree and
// optional parent, and writes it to the store. The tree and parent
// addresses must resolve to stored objects; the reference checks run
// before any object is written.
func (r *Repo) CommitTree(message, treeAddr, parentAddr string) (object.Hash, error) {
	if err := r.Store.EnsureInitialized(); err != nil {
		return "", fmt.Errorf("commit-tree: %w", err)
	}

	treeHash, err := object.ParseHash(treeAddr)
	if err != nil {
		return "", fmt.Errorf("commit-tree: %w", err)
	}
	if !r.Store.Has(treeHash) {
		return "", fmt.Errorf("commit-tree: %w: tree %s", object.ErrInvalidReference, treeHash)
	}

	var parentHash object.Hash
	if parentAddr != "" {
		parentHash, err = object.ParseHash(parentAddr)
		if err != nil {
			return "", fmt.Errorf("commit-tree: %w", err)
		}
		if !r.Store.Has(parentHash) {
			return "", fmt.Errorf("commit-tree: %w: parent %s", object.ErrInvalidReference, parentHash)
		}
	}

	who, err := r.Identity()
	if err != nil {
		return "", fmt.Errorf("commit-tree: %w", err)
	}

	commit := object.NewCommit(message, treeHash, parentHash, who, time.Now())
	obj, err := object.EncodeCommit(commit)
	if err != nil {
		return "", fmt.Errorf("commit-tree: %w", err)
	}
	h, err := r.Store.Put(obj)
	if err != nil {
		return "", fmt.Errorf("commit-tree: %w", err)
	}
	return h, nil
}
