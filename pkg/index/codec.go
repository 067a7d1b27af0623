package index

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/fcasibu/minigit/pkg/object"
)

// On-disk record, all integers big-endian:
//
//	magic "MGIX" | u32 version | u32 count
//	per entry: u32 mode | 20 raw digest bytes | u32 path length | path bytes
const indexVersion = 1

var indexMagic = [4]byte{'M', 'G', 'I', 'X'}

// maxPathLen bounds a single decoded path so a corrupt length field cannot
// drive an absurd allocation.
const maxPathLen = 1 << 16

func encode(ix *Index) []byte {
	var buf bytes.Buffer
	buf.Write(indexMagic[:])
	_ = binary.Write(&buf, binary.BigEndian, uint32(indexVersion))
	_ = binary.Write(&buf, binary.BigEndian, uint32(len(ix.Entries)))

	for _, e := range ix.Entries {
		_ = binary.Write(&buf, binary.BigEndian, e.Mode)
		raw, err := object.HashToRaw(e.Hash)
		if err != nil {
			// Entries are only built from encoded objects, so their
			// digests are always well-formed 40-hex strings.
			panic(fmt.Sprintf("index entry %q holds invalid digest %q", e.Path, e.Hash))
		}
		buf.Write(raw)
		_ = binary.Write(&buf, binary.BigEndian, uint32(len(e.Path)))
		buf.WriteString(e.Path)
	}
	return buf.Bytes()
}

func decode(data []byte) (*Index, error) {
	r := &reader{buf: data}

	magic, ok := r.take(4)
	if !ok || !bytes.Equal(magic, indexMagic[:]) {
		return nil, fmt.Errorf("%w: bad magic", ErrCorruptIndex)
	}
	version, ok := r.uint32()
	if !ok {
		return nil, fmt.Errorf("%w: truncated version", ErrCorruptIndex)
	}
	if version != indexVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrCorruptIndex, version)
	}
	count, ok := r.uint32()
	if !ok {
		return nil, fmt.Errorf("%w: truncated entry count", ErrCorruptIndex)
	}

	ix := &Index{}
	for i := uint32(0); i < count; i++ {
		mode, ok := r.uint32()
		if !ok {
			return nil, fmt.Errorf("%w: entry %d: truncated mode", ErrCorruptIndex, i)
		}
		raw, ok := r.take(object.RawHashLen)
		if !ok {
			return nil, fmt.Errorf("%w: entry %d: truncated digest", ErrCorruptIndex, i)
		}
		h, err := object.RawToHash(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrCorruptIndex, i, err)
		}
		pathLen, ok := r.uint32()
		if !ok {
			return nil, fmt.Errorf("%w: entry %d: truncated path length", ErrCorruptIndex, i)
		}
		if pathLen > maxPathLen {
			return nil, fmt.Errorf("%w: entry %d: path length %d out of range", ErrCorruptIndex, i, pathLen)
		}
		path, ok := r.take(int(pathLen))
		if !ok {
			return nil, fmt.Errorf("%w: entry %d: truncated path", ErrCorruptIndex, i)
		}

		ix.Entries = append(ix.Entries, Entry{
			Mode: mode,
			Hash: h,
			Path: string(path),
		})
	}

	if !r.done() {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrCorruptIndex, r.remaining())
	}
	return ix, nil
}

// reader is a bounds-checked cursor over the binary record.
type reader struct {
	buf []byte
	pos int
}

func (r *reader) take(n int) ([]byte, bool) {
	if r.pos+n > len(r.buf) {
		return nil, false
	}
	out := r.buf[r.pos : r.pos+n]
	r.pos += n
	return out, true
}

func (r *reader) uint32() (uint32, bool) {
	raw, ok := r.take(4)
	if !ok {
		return 0, false
	}
	return binary.BigEndian.Uint32(raw), true
}

func (r *reader) done() bool     { return r.pos == len(r.buf) }
func (r *reader) remaining() int { return len(r.buf) - r.pos }
