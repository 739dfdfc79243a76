package ftab

import (
	"encoding/binary"
	"fmt"
	"strconv"
)

// Tag is the canonical 4-byte segment identifier. The manifest form
// accepts either a short ASCII string ("rkos") or the unsigned integer
// produced by reading the same four bytes big-endian (0x726B6F73); both
// normalize to the identical Tag. Internally only the byte form exists.
type Tag [4]byte

// ParseTag builds a Tag from its string form. Strings shorter than four
// bytes are zero-padded on the right, longer strings are rejected.
func ParseTag(s string) (Tag, error) {
	var t Tag
	if len(s) > len(t) {
		return t, fmt.Errorf("ftab: tag %q longer than 4 bytes", s)
	}
	copy(t[:], s)
	return t, nil
}

// TagFromUint32 builds a Tag from its integer form. The big-endian byte
// reading keeps "rkos" and 0x726B6F73 interchangeable.
func TagFromUint32(v uint32) Tag {
	var t Tag
	binary.BigEndian.PutUint32(t[:], v)
	return t
}

// Uint32 returns the integer form of the tag.
func (t Tag) Uint32() uint32 {
	return binary.BigEndian.Uint32(t[:])
}

func (t Tag) alphanumeric() bool {
	for _, b := range t {
		switch {
		case b >= '0' && b <= '9':
		case b >= 'A' && b <= 'Z':
		case b >= 'a' && b <= 'z':
		default:
			return false
		}
	}
	return true
}

// String renders the tag for humans: the character form when all four
// bytes are alphanumeric, hex otherwise.
func (t Tag) String() string {
	if t.alphanumeric() {
		return string(t[:])
	}
	return fmt.Sprintf("0x%08x", t.Uint32())
}

// MarshalTOML emits the string form when all four bytes are ASCII
// alphanumeric and the integer form otherwise.
func (t Tag) MarshalTOML() ([]byte, error) {
	if t.alphanumeric() {
		return []byte(strconv.Quote(string(t[:]))), nil
	}
	return []byte(strconv.FormatUint(uint64(t.Uint32()), 10)), nil
}

// UnmarshalTOML accepts either manifest representation of a tag.
func (t *Tag) UnmarshalTOML(v any) error {
	switch val := v.(type) {
	case string:
		parsed, err := ParseTag(val)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case int64:
		if val < 0 || val > int64(^uint32(0)) {
			return fmt.Errorf("ftab: tag value %d outside the unsigned 32-bit range", val)
		}
		*t = TagFromUint32(uint32(val))
		return nil
	default:
		return fmt.Errorf("ftab: tag must be a string or an integer, got %T", v)
	}
}
