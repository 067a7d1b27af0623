package object

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// scanner is a cursor over an immutable byte buffer. Each step either
// advances the cursor or reports failure; callers translate failure into
// ErrCorruptObject so parsing stays total on malformed input.
type scanner struct {
	buf []byte
	pos int
}

// until returns the bytes before the next occurrence of delim and advances
// the cursor past it.
func (s *scanner) until(delim byte) ([]byte, bool) {
	idx := bytes.IndexByte(s.buf[s.pos:], delim)
	if idx < 0 {
		return nil, false
	}
	out := s.buf[s.pos : s.pos+idx]
	s.pos += idx + 1
	return out, true
}

// take returns the next n bytes and advances the cursor.
func (s *scanner) take(n int) ([]byte, bool) {
	if s.pos+n > len(s.buf) {
		return nil, false
	}
	out := s.buf[s.pos : s.pos+n]
	s.pos += n
	return out, true
}

func (s *scanner) rest() []byte { return s.buf[s.pos:] }
func (s *scanner) done() bool { return s.pos >= len(s.buf) }

// Parse splits decompressed object bytes into their type tag and body.
// The type runs up to the first space, the declared body length up to the
// first NUL. A missing delimiter, unrecognized type, malformed length, or
// a length that disagrees with the actual body is ErrCorruptObject.
func Parse(raw []byte) (ObjectType, []byte, error) {
	sc := &scanner{buf: raw}

	typeBytes, ok := sc.until(' ')
	if !ok {
		return "", nil, fmt.Errorf("%w: header missing space delimiter", ErrCorruptObject)
	}
	objType := ObjectType(typeBytes)
	switch objType {
	case TypeBlob, TypeTree, TypeCommit:
	default:
		return "", nil, fmt.Errorf("%w: unrecognized type %q", ErrCorruptObject, typeBytes)
	}

	lenBytes, ok := sc.until(0)
	if !ok {
		return "", nil, fmt.Errorf("%w: header missing NUL delimiter", ErrCorruptObject)
	}
	declared, err := strconv.Atoi(string(lenBytes))
	if err != nil || declared < 0 {
		return "", nil, fmt.Errorf("%w: bad length %q", ErrCorruptObject, lenBytes)
	}

	body := sc.rest()
	if len(body) != declared {
		return "", nil, fmt.Errorf("%w: length mismatch (header=%d, actual=%d)", ErrCorruptObject, declared, len(body))
	}
	return objType, body, nil
}

// ParseTreeEntries walks a tree body sequentially: decimal mode digits up
// to a space, a NUL-terminated path, then exactly 20 raw digest bytes,
// repeating until the body is exhausted. An entry that starts but cannot
// complete is a fatal ErrCorruptObject, never a partial result.
func ParseTreeEntries(body []byte) ([]TreeEntry, error) {
	sc := &scanner{buf: body}
	var entries []TreeEntry

	for !sc.done() {
		modeBytes, ok := sc.until(' ')
		if !ok {
			return nil, fmt.Errorf("%w: tree entry missing mode delimiter", ErrCorruptObject)
		}
		mode, err := strconv.ParseUint(string(modeBytes), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: tree entry bad mode %q", ErrCorruptObject, modeBytes)
		}

		pathBytes, ok := sc.until(0)
		if !ok {
			return nil, fmt.Errorf("%w: tree entry missing path terminator", ErrCorruptObject)
		}

		raw, ok := sc.take(RawHashLen)
		if !ok {
			return nil, fmt.Errorf("%w: tree entry %q: truncated digest", ErrCorruptObject, pathBytes)
		}
		h, err := RawToHash(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: tree entry %q: %v", ErrCorruptObject, pathBytes, err)
		}

		entries = append(entries, TreeEntry{
			Mode: uint32(mode),
			Path: string(pathBytes),
			Hash: h,
		})
	}
	return entries, nil
}

// ParseCommit recovers the semantic commit fields from a commit body.
func ParseCommit(body []byte) (*Commit, error) {
	header, message, found := bytes.Cut(body, []byte("\n\n"))
	if !found {
		return nil, fmt.Errorf("%w: commit missing header/message separator", ErrCorruptObject)
	}

	c := &Commit{Message: string(message)}
	for _, line := range strings.Split(strings.TrimRight(string(header), "\n"), "\n") {
		key, val, ok := strings.Cut(line, " ")
		if !ok {
			return nil, fmt.Errorf("%w: commit malformed header line %q", ErrCorruptObject, line)
		}
		switch key {
		case "tree":
			c.TreeHash = Hash(val)
		case "parent":
			c.ParentHash = Hash(val)
		case "author":
			id, ts, tz, err := parsePerson(val)
			if err != nil {
				return nil, fmt.Errorf("%w: commit author: %v", ErrCorruptObject, err)
			}
			c.Author, c.Timestamp, c.Timezone = id, ts, tz
		case "committer":
			id, _, _, err := parsePerson(val)
			if err != nil {
				return nil, fmt.Errorf("%w: commit committer: %v", ErrCorruptObject, err)
			}
			c.Committer = id
		default:
			return nil, fmt.Errorf("%w: commit unknown header key %q", ErrCorruptObject, key)
		}
	}

	if c.TreeHash == "" {
		return nil, fmt.Errorf("%w: commit missing tree header", ErrCorruptObject)
	}
	return c, nil
}

// parsePerson splits "Name <email> <timestamp> <tz>" into its parts.
func parsePerson(val string) (Identity, int64, string, error) {
	open := strings.Index(val, " <")
	end := strings.Index(val, ">")
	if open < 0 || end < open {
		return Identity{}, 0, "", fmt.Errorf("malformed identity %q", val)
	}
	id := Identity{Name: val[:open], Email: val[open+2 : end]}

	fields := strings.Fields(val[end+1:])
	if len(fields) != 2 {
		return Identity{}, 0, "", fmt.Errorf("malformed timestamp/zone in %q", val)
	}
	ts, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return Identity{}, 0, "", fmt.Errorf("bad timestamp %q: %v", fields[0], err)
	}
	return id, ts, fields[1], nil
}
