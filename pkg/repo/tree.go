package repo

import (
	"fmt"

	"github.com/fcasibu/minigit/pkg/object"
)

// WriteTree materializes a tree object from the current staging index and
// writes it to the store. The index invariant keeps entries in canonical
// order, so repeated calls with no intervening staging change produce the
// same address.
func (r *Repo) WriteTree() (object.Hash, error) {
	ix, err := r.loadIndex()
	if err != nil {
		return "", fmt.Errorf("write-tree: %w", err)
	}

	entries := make([]object.TreeEntry, 0, len(ix.Entries))
	for _, e := range ix.Entries {
		entries = append(entries, object.TreeEntry{
			Mode: e.Mode,
			Path: e.Path,
			Hash: e.Hash,
		})
	}

	obj, err := object.EncodeTree(entries)
	if err != nil {
		return "", fmt.Errorf("write-tree: %w", err)
	}
	h, err := r.Store.Put(obj)
	if err != nil {
		return "", fmt.Errorf("write-tree: %w", err)
	}
	return h, nil
}
