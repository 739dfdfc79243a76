package ftab

import (
	"strings"
	"testing"
)

func TestParseTag(t *testing.T) {
	t.Parallel()

	tag, err := ParseTag("rkos")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if tag != (Tag{'r', 'k', 'o', 's'}) {
		t.Fatalf("tag bytes: %v", tag)
	}
	if tag.Uint32() != 0x726B6F73 {
		t.Fatalf("integer form: %#x", tag.Uint32())
	}
}

func TestParseTagShortPadsWithZeros(t *testing.T) {
	t.Parallel()

	tag, err := ParseTag("ab")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if tag != (Tag{'a', 'b', 0, 0}) {
		t.Fatalf("short tag not zero-padded: %v", tag)
	}
}

func TestParseTagTooLong(t *testing.T) {
	t.Parallel()

	if _, err := ParseTag("rkost"); err == nil {
		t.Fatalf("expected error for a 5-byte tag")
	}
}

func TestTagString(t *testing.T) {
	t.Parallel()

	if s := (Tag{'r', 'k', 'o', 's'}).String(); s != "rkos" {
		t.Fatalf("alphanumeric tag string: %q", s)
	}
	if s := (Tag{1, 2, 3, 4}).String(); s != "0x01020304" {
		t.Fatalf("binary tag string: %q", s)
	}
}

func TestTagMarshalTOML(t *testing.T) {
	t.Parallel()

	out, err := Tag{'r', 'k', 'o', 's'}.MarshalTOML()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `"rkos"` {
		t.Fatalf("alphanumeric tag: %s", out)
	}

	out, err = Tag{1, 2, 3, 4}.MarshalTOML()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != "16909060" { // 0x01020304
		t.Fatalf("binary tag should use the integer form: %s", out)
	}
}

func TestTagUnmarshalTOML(t *testing.T) {
	t.Parallel()

	var fromString, fromInt Tag
	if err := fromString.UnmarshalTOML("rkos"); err != nil {
		t.Fatalf("unmarshal string: %v", err)
	}
	if err := fromInt.UnmarshalTOML(int64(0x726B6F73)); err != nil {
		t.Fatalf("unmarshal integer: %v", err)
	}
	if fromString != fromInt {
		t.Fatalf("forms disagree: %v vs %v", fromString, fromInt)
	}
}

func TestTagUnmarshalTOMLRejectsBadValues(t *testing.T) {
	t.Parallel()

	var tag Tag
	if err := tag.UnmarshalTOML(int64(-1)); err == nil {
		t.Fatalf("negative value accepted")
	}
	if err := tag.UnmarshalTOML(int64(1) << 32); err == nil {
		t.Fatalf("out-of-range value accepted")
	}
	if err := tag.UnmarshalTOML(strings.Repeat("x", 5)); err == nil {
		t.Fatalf("overlong string accepted")
	}
	if err := tag.UnmarshalTOML(1.5); err == nil {
		t.Fatalf("float accepted")
	}
}
