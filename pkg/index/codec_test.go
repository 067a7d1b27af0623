package index

import (
	"errors"
	"testing"

	"github.com/fcasibu/minigit/pkg/object"
)

func sampleIndex() *Index {
	ix := &Index{}
	ix.Set(Entry{Mode: object.ModeFile, Hash: object.DigestBytes([]byte("1")), Path: "a.txt"})
	ix.Set(Entry{Mode: object.ModeFile, Hash: object.DigestBytes([]byte("2")), Path: "b.txt"})
	return ix
}

func TestDecodeRejectsBadMagic(t *testing.T) {
	data := encode(sampleIndex())
	data[0] = 'X'
	if _, err := decode(data); !errors.Is(err, ErrCorruptIndex) {
		t.Errorf("got %v, want ErrCorruptIndex", err)
	}
}

func TestDecodeRejectsBadVersion(t *testing.T) {
	data := encode(sampleIndex())
	data[7] = 99 // version lives in bytes 4..8
	if _, err := decode(data); !errors.Is(err, ErrCorruptIndex) {
		t.Errorf("got %v, want ErrCorruptIndex", err)
	}
}

func TestDecodeRejectsTruncation(t *testing.T) {
	data := encode(sampleIndex())
	// Every proper prefix must fail cleanly, never panic or return a
	// partial index.
	for cut := 1; cut < len(data); cut++ {
		if _, err := decode(data[:cut]); !errors.Is(err, ErrCorruptIndex) {
			t.Fatalf("prefix of %d bytes: got %v, want ErrCorruptIndex", cut, err)
		}
	}
}

func TestDecodeRejectsTrailingBytes(t *testing.T) {
	data := append(encode(sampleIndex()), 0xde, 0xad)
	if _, err := decode(data); !errors.Is(err, ErrCorruptIndex) {
		t.Errorf("got %v, want ErrCorruptIndex", err)
	}
}

func TestDecodeRejectsOversizedPathLength(t *testing.T) {
	ix := &Index{}
	ix.Set(Entry{Mode: object.ModeFile, Hash: object.DigestBytes([]byte("1")), Path: "a"})
	data := encode(ix)
	// The path length field sits right before the final path byte.
	off := len(data) - 1 - 4
	data[off] = 0xff
	if _, err := decode(data); !errors.Is(err, ErrCorruptIndex) {
		t.Errorf("got %v, want ErrCorruptIndex", err)
	}
}

func TestEncodeEmptyIndex(t *testing.T) {
	ix, err := decode(encode(&Index{}))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(ix.Entries) != 0 {
		t.Errorf("got %d entries, want 0", len(ix.Entries))
	}
}
