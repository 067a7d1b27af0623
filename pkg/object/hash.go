package object

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
)

// DigestBytes computes the SHA-1 digest of data and returns it as a
// lowercase hex-encoded Hash.
func DigestBytes(data []byte) Hash {
	sum := sha1.Sum(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// ParseHash validates that s is exactly 40 hex characters and returns it
// as a Hash. Anything else fails with ErrInvalidAddress.
func ParseHash(s string) (Hash, error) {
	if len(s) != HexHashLen {
		return "", fmt.Errorf("%w: %q (want %d hex chars, got %d)", ErrInvalidAddress, s, HexHashLen, len(s))
	}
	if _, err := hex.DecodeString(s); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	return Hash(s), nil
}

// HashToRaw decodes a hex Hash into its 20 raw digest bytes.
func HashToRaw(h Hash) ([]byte, error) {
	if len(h) != HexHashLen {
		return nil, fmt.Errorf("%w: %q (want %d hex chars, got %d)", ErrInvalidAddress, h, HexHashLen, len(h))
	}
	raw, err := hex.DecodeString(string(h))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAddress, h)
	}
	return raw, nil
}

// RawToHash encodes 20 raw digest bytes as a hex Hash.
func RawToHash(raw []byte) (Hash, error) {
	if len(raw) != RawHashLen {
		return "", fmt.Errorf("%w: %d raw bytes (want %d)", ErrInvalidAddress, len(raw), RawHashLen)
	}
	return Hash(hex.EncodeToString(raw)), nil
}
