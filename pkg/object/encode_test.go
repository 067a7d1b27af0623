package object

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestEncodeBlobKnownAddress(t *testing.T) {
	// The canonical layout "blob 6\0hello\n" must digest to the address
	// the modeled format produces for the same content.
	obj, err := EncodeBlob([]byte("hello\n"))
	if err != nil {
		t.Fatalf("EncodeBlob: %v", err)
	}
	if obj.Hash != "ce013625030ba8dba906f756967f9e9ca394464a" {
		t.Errorf("blob address: got %s", obj.Hash)
	}
	if !bytes.Equal(obj.Canonical, []byte("blob 6\x00hello\n")) {
		t.Errorf("canonical bytes: got %q", obj.Canonical)
	}
}

func TestEncodeBlobEmpty(t *testing.T) {
	obj, err := EncodeBlob(nil)
	if err != nil {
		t.Fatalf("EncodeBlob: %v", err)
	}
	if obj.Hash != "e69de29bb2d1d6434b8b29ae775ad8c2e48c5391" {
		t.Errorf("empty blob address: got %s", obj.Hash)
	}
}

func TestEncodeBlobCompressedRoundTrip(t *testing.T) {
	obj, err := EncodeBlob([]byte("content with \x01 odd bytes"))
	if err != nil {
		t.Fatalf("EncodeBlob: %v", err)
	}
	raw, err := Decompress(obj.Compressed)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if !bytes.Equal(raw, obj.Canonical) {
		t.Error("compressed bytes do not decompress back to canonical bytes")
	}
}

func TestEncodeTreeLayout(t *testing.T) {
	h1 := DigestBytes([]byte("one"))
	raw1, _ := HashToRaw(h1)

	obj, err := EncodeTree([]TreeEntry{{Mode: ModeFile, Path: "a.txt", Hash: h1}})
	if err != nil {
		t.Fatalf("EncodeTree: %v", err)
	}

	var want bytes.Buffer
	want.WriteString("100644 a.txt\x00")
	want.Write(raw1)

	// "100644 a.txt\0" is 13 bytes, plus 20 raw digest bytes.
	if !bytes.HasPrefix(obj.Canonical, []byte("tree 33\x00")) {
		t.Errorf("tree header: got %q", obj.Canonical[:8])
	}
	if body := treeBody(t, obj); !bytes.Equal(body, want.Bytes()) {
		t.Errorf("tree body: got %q, want %q", body, want.Bytes())
	}
}

func TestEncodeTreeDoesNotResort(t *testing.T) {
	// Caller contract: entries arrive pre-sorted; the encoder must keep
	// whatever order it is given so the index ordering decides the bytes.
	h := DigestBytes([]byte("x"))
	entries := []TreeEntry{
		{Mode: ModeFile, Path: "z.txt", Hash: h},
		{Mode: ModeFile, Path: "a.txt", Hash: h},
	}
	obj, err := EncodeTree(entries)
	if err != nil {
		t.Fatalf("EncodeTree: %v", err)
	}
	decoded, err := ParseTreeEntries(treeBody(t, obj))
	if err != nil {
		t.Fatalf("ParseTreeEntries: %v", err)
	}
	if decoded[0].Path != "z.txt" || decoded[1].Path != "a.txt" {
		t.Errorf("encoder re-ordered entries: %v", decoded)
	}
}

func TestEncodeTreeRejectsBadDigest(t *testing.T) {
	_, err := EncodeTree([]TreeEntry{{Mode: ModeFile, Path: "a", Hash: "short"}})
	if err == nil {
		t.Error("EncodeTree accepted an entry with a malformed digest")
	}
}

func TestEncodeTreeEmpty(t *testing.T) {
	obj, err := EncodeTree(nil)
	if err != nil {
		t.Fatalf("EncodeTree: %v", err)
	}
	if !bytes.Equal(obj.Canonical, []byte("tree 0\x00")) {
		t.Errorf("empty tree canonical: got %q", obj.Canonical)
	}
}

func TestNewCommitCapturesTimestampAndZone(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*3600)
	now := time.Date(2023, 11, 14, 22, 13, 20, 0, loc)

	c := NewCommit("msg", DigestBytes([]byte("t")), "", Identity{Name: "A", Email: "a@b"}, now)
	if c.Timestamp != now.Unix() {
		t.Errorf("Timestamp: got %d, want %d", c.Timestamp, now.Unix())
	}
	if c.Timezone != "+0200" {
		t.Errorf("Timezone: got %q, want +0200", c.Timezone)
	}
}

func TestNewCommitNegativeZone(t *testing.T) {
	loc := time.FixedZone("UTC-5:30", -(5*3600 + 30*60))
	c := NewCommit("msg", DigestBytes([]byte("t")), "", Identity{}, time.Date(2023, 1, 1, 0, 0, 0, 0, loc))
	if c.Timezone != "-0530" {
		t.Errorf("Timezone: got %q, want -0530", c.Timezone)
	}
}

func TestEncodeCommitLayout(t *testing.T) {
	tree := Hash(strings.Repeat("aa", 20))
	parent := Hash(strings.Repeat("bb", 20))
	c := &Commit{
		TreeHash:   tree,
		ParentHash: parent,
		Author:     Identity{Name: "Test User", Email: "test@example.com"},
		Committer:  Identity{Name: "Test User", Email: "test@example.com"},
		Timestamp:  1700000000,
		Timezone:   "+0100",
		Message:    "initial commit",
	}

	obj, err := EncodeCommit(c)
	if err != nil {
		t.Fatalf("EncodeCommit: %v", err)
	}

	wantBody := "tree " + string(tree) + "\n" +
		"parent " + string(parent) + "\n" +
		"author Test User <test@example.com> 1700000000 +0100\n" +
		"committer Test User <test@example.com> 1700000000 +0100\n" +
		"\n" +
		"initial commit"
	nul := bytes.IndexByte(obj.Canonical, 0)
	if got := string(obj.Canonical[nul+1:]); got != wantBody {
		t.Errorf("commit body:\ngot  %q\nwant %q", got, wantBody)
	}
}

func TestEncodeCommitNoParent(t *testing.T) {
	c := &Commit{
		TreeHash:  Hash(strings.Repeat("aa", 20)),
		Author:    Identity{Name: "A", Email: "a@b"},
		Committer: Identity{Name: "A", Email: "a@b"},
		Timestamp: 1,
		Timezone:  "+0000",
		Message:   "m",
	}
	obj, err := EncodeCommit(c)
	if err != nil {
		t.Fatalf("EncodeCommit: %v", err)
	}
	if bytes.Contains(obj.Canonical, []byte("parent ")) {
		t.Error("root commit should carry no parent header")
	}
}

// treeBody strips the header from a tree object's canonical bytes.
func treeBody(t *testing.T, obj *Object) []byte {
	t.Helper()
	nul := bytes.IndexByte(obj.Canonical, 0)
	if nul < 0 {
		t.Fatal("canonical bytes missing NUL")
	}
	return obj.Canonical[nul+1:]
}
