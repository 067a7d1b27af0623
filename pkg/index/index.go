// Package index implements the staging index: the ordered, deduplicated
// set of (mode, digest, path) entries queued for the next tree object.
package index

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/google/renameio"

	"github.com/fcasibu/minigit/pkg/object"
)

// ErrCorruptIndex reports an index file whose binary record cannot be
// decoded.
var ErrCorruptIndex = errors.New("corrupt index")

// Entry records the staged state of a single path.
type Entry struct {
	Mode uint32
	Hash object.Hash
	Path string
}

// Index holds the staging entries. Entries stay sorted by
// (mode, digest, path) after every mutation, with at most one entry per
// distinct path.
type Index struct {
	Entries []Entry
}

// Load reads the index file at path. A zero-length file is an empty index;
// a missing file is reported as-is so the caller can map it to repository
// state.
func Load(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read index %s: %w", path, err)
	}
	if len(data) == 0 {
		return &Index{}, nil
	}

	ix, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("read index %s: %w", path, err)
	}
	return ix, nil
}

// Save rewrites the whole index file atomically.
func (ix *Index) Save(path string) error {
	if err := renameio.WriteFile(path, encode(ix), 0o644); err != nil {
		return fmt.Errorf("write index %s: %w", path, err)
	}
	return nil
}

// Set inserts or updates the entry for e.Path. An existing entry is only
// replaced when the digest differs, so re-staging identical content is a
// no-op mutation. The entry sequence is re-sorted afterwards.
func (ix *Index) Set(e Entry) {
	for i := range ix.Entries {
		if ix.Entries[i].Path == e.Path {
			if ix.Entries[i].Hash != e.Hash {
				ix.Entries[i] = e
				ix.sort()
			}
			return
		}
	}
	ix.Entries = append(ix.Entries, e)
	ix.sort()
}

// Lookup returns the entry staged for path, if any.
func (ix *Index) Lookup(path string) (Entry, bool) {
	for _, e := range ix.Entries {
		if e.Path == path {
			return e, true
		}
	}
	return Entry{}, false
}

// sort orders entries by the total order over (mode, digest, path), so
// ties on mode and digest still resolve deterministically by path.
func (ix *Index) sort() {
	sort.Slice(ix.Entries, func(i, j int) bool {
		a, b := ix.Entries[i], ix.Entries[j]
		if a.Mode != b.Mode {
			return a.Mode < b.Mode
		}
		if a.Hash != b.Hash {
			return a.Hash < b.Hash
		}
		return a.Path < b.Path
	})
}
