package object

import (
	"bytes"
	"fmt"
	"strconv"
	"time"
)

// encode wraps body in the "type len\0" envelope, digests the result, and
// compresses it. Every object variant funnels through here so the header
// framing stays byte-identical across kinds.
func encode(objType ObjectType, body []byte) (*Object, error) {
	header := fmt.Sprintf("%s %d\x00", objType, len(body))
	canonical := make([]byte, 0, len(header)+len(body))
	canonical = append(canonical, header...)
	canonical = append(canonical, body...)

	compressed, err := Compress(canonical)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", objType, err)
	}

	return &Object{
		Type:       objType,
		Hash:       DigestBytes(canonical),
		Canonical:  canonical,
		Compressed: compressed,
	}, nil
}

// EncodeBlob encodes raw content as a blob object. The content bytes are
// carried verbatim in the body.
func EncodeBlob(data []byte) (*Object, error) {
	return encode(TypeBlob, data)
}

// EncodeTree encodes tree entries as a tree object. Each entry becomes
// "<decimal mode> <path>\0" followed by the 20 raw digest bytes. Entries
// must already be in the staging index's canonical order; the encoder does
// not re-sort, so identical staged content is byte-identical here.
func EncodeTree(entries []TreeEntry) (*Object, error) {
	var body bytes.Buffer
	for _, e := range entries {
		raw, err := HashToRaw(e.Hash)
		if err != nil {
			return nil, fmt.Errorf("encode tree entry %q: %w", e.Path, err)
		}
		body.WriteString(strconv.FormatUint(uint64(e.Mode), 10))
		body.WriteByte(' ')
		body.WriteString(e.Path)
		body.WriteByte(0)
		body.Write(raw)
	}
	return encode(TypeTree, body.Bytes())
}

// NewCommit builds a Commit whose timestamp and zone offset are captured
// from now. The offset is frozen into the struct so re-encoding the same
// commit later cannot drift across a zone change.
func NewCommit(message string, tree Hash, parent Hash, who Identity, now time.Time) *Commit {
	return &Commit{
		TreeHash:   tree,
		ParentHash: parent,
		Author:     who,
		Committer:  who,
		Timestamp:  now.Unix(),
		Timezone:   now.Format("-0700"),
		Message:    message,
	}
}

// EncodeCommit encodes the commit metadata text block and message.
func EncodeCommit(c *Commit) (*Object, error) {
	var body bytes.Buffer
	fmt.Fprintf(&body, "tree %s\n", c.TreeHash)
	if c.ParentHash != "" {
		fmt.Fprintf(&body, "parent %s\n", c.ParentHash)
	}
	fmt.Fprintf(&body, "author %s %d %s\n", c.Author, c.Timestamp, c.Timezone)
	fmt.Fprintf(&body, "committer %s %d %s\n", c.Committer, c.Timestamp, c.Timezone)
	body.WriteByte('\n')
	body.WriteString(c.Message)
	return encode(TypeCommit, body.Bytes())
}
