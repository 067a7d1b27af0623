package object

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Store is a content-addressed object store with a 2-character fan-out
// directory layout: objects/ab/cdef0123... Leaf files hold the compressed
// canonical bytes.
type Store struct {
	root string
}

// NewStore creates a Store rooted at the repository directory. Shard
// directories are created lazily on first write.
func NewStore(root string) *Store {
	return &Store{root: root}
}

// Root returns the repository directory this store is rooted at.
func (s *Store) Root() string { return s.root }

// objectPath returns the filesystem path for a given hash.
func (s *Store) objectPath(h Hash) string {
	return filepath.Join(s.root, "objects", string(h[:2]), string(h[2:]))
}

// EnsureInitialized verifies the objects root exists. Every store
// operation re-checks this eagerly, before any filesystem mutation; the
// state is never cached across calls.
func (s *Store) EnsureInitialized() error {
	info, err := os.Stat(filepath.Join(s.root, "objects"))
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotInitialized, s.root)
	}
	return nil
}

// Has reports whether the store contains an object with the given hash.
func (s *Store) Has(h Hash) bool {
	_, err := os.Stat(s.objectPath(h))
	return err == nil
}

// Put writes an encoded object's compressed bytes under its address and
// returns that address. Writes go through a temp file and rename, so a
// rewrite of an existing address lands the same bytes and is a no-op in
// effect.
func (s *Store) Put(obj *Object) (Hash, error) {
	if err := s.EnsureInitialized(); err != nil {
		return "", err
	}

	dir := filepath.Join(s.root, "objects", string(obj.Hash[:2]))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("object write mkdir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return "", fmt.Errorf("object write tmpfile: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(obj.Compressed); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("object write %s: %w", obj.Hash, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("object write close %s: %w", obj.Hash, err)
	}

	dest := s.objectPath(obj.Hash)
	if err := os.Rename(tmpName, dest); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("object write rename %s: %w", dest, err)
	}
	return obj.Hash, nil
}

// Get retrieves an object by address, returning its type and body bytes.
// The address must be exactly 40 hex characters; a missing shard or leaf
// file is ErrObjectNotFound.
func (s *Store) Get(addr string) (ObjectType, []byte, error) {
	h, err := ParseHash(addr)
	if err != nil {
		return "", nil, err
	}
	if err := s.EnsureInitialized(); err != nil {
		return "", nil, err
	}

	compressed, err := os.ReadFile(s.objectPath(h))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil, fmt.Errorf("%w: %s", ErrObjectNotFound, h)
		}
		return "", nil, fmt.Errorf("object read %s: %w", h, err)
	}

	raw, err := Decompress(compressed)
	if err != nil {
		return "", nil, fmt.Errorf("object read %s: %w", h, err)
	}

	objType, body, err := Parse(raw)
	if err != nil {
		return "", nil, fmt.Errorf("object read %s: %w", h, err)
	}
	return objType, body, nil
}

// GetBlob reads an object and returns its content, enforcing the blob type.
func (s *Store) GetBlob(addr string) ([]byte, error) {
	body, err := s.getTyped(addr, TypeBlob)
	if err != nil {
		return nil, err
	}
	return body, nil
}

// GetTree reads a tree object and decodes its entries from the persisted
// body bytes.
func (s *Store) GetTree(addr string) ([]TreeEntry, error) {
	body, err := s.getTyped(addr, TypeTree)
	if err != nil {
		return nil, err
	}
	entries, err := ParseTreeEntries(body)
	if err != nil {
		return nil, fmt.Errorf("object read %s: %w", addr, err)
	}
	return entries, nil
}

// GetCommit reads and decodes a commit object.
func (s *Store) GetCommit(addr string) (*Commit, error) {
	body, err := s.getTyped(addr, TypeCommit)
	if err != nil {
		return nil, err
	}
	c, err := ParseCommit(body)
	if err != nil {
		return nil, fmt.Errorf("object read %s: %w", addr, err)
	}
	return c, nil
}

func (s *Store) getTyped(addr string, want ObjectType) ([]byte, error) {
	objType, body, err := s.Get(addr)
	if err != nil {
		return nil, err
	}
	if objType != want {
		return nil, fmt.Errorf("object %s: type mismatch: got %q, want %q", addr, objType, want)
	}
	return body, nil
}
