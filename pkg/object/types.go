package object

// Hash is a 40-character hex-encoded SHA-1 digest of an object's canonical
// bytes. It doubles as the object's on-disk address.
type Hash string

// ObjectType identifies the kind of object stored.
type ObjectType string

const (
	TypeBlob   ObjectType = "blob"
	TypeTree   ObjectType = "tree"
	TypeCommit ObjectType = "commit"
)

const (
	// Entry mode constants matching Git's canonical decimal mode values.
	ModeFile       uint32 = 100644
	ModeExecutable uint32 = 100755
)

const (
	// RawHashLen is the length of a digest in raw bytes; HexHashLen is the
	// length of its hex-encoded address form.
	RawHashLen = 20
	HexHashLen = 40
)

// Object is the result of encoding one object variant: its type, its
// address, the canonical "type len\0body" bytes the address is derived
// from, and the zlib-compressed bytes that go to disk.
type Object struct {
	Type       ObjectType
	Hash       Hash
	Canonical  []byte
	Compressed []byte
}

// TreeEntry is one entry in a tree object body.
type TreeEntry struct {
	Mode uint32
	Path string
	Hash Hash
}

// Identity names a commit author or committer.
type Identity struct {
	Name  string
	Email string
}

// String renders the identity the way commit metadata embeds it.
func (id Identity) String() string {
	return id.Name + " <" + id.Email + ">"
}

// Commit holds the semantic fields of a commit object. Timestamp and
// Timezone are captured once when the commit is constructed and never
// re-derived.
type Commit struct {
	TreeHash   Hash
	ParentHash Hash // empty for a root commit
	Author     Identity
	Committer  Identity
	Timestamp  int64
	Timezone   string // signed +HHMM/-HHMM offset
	Message    string
}
