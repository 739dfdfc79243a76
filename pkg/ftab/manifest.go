package ftab

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/samcharles93/ftab/internal/fileio"
)

const (
	// ManifestFileName is the manifest written beside unpacked segments.
	ManifestFileName = "manifest.toml"

	// TicketFileName is the default file an unpacked ticket is saved to.
	TicketFileName = "ApImg4Ticket.der"
)

// SegmentRef is one manifest entry. It references the payload by file
// path; offsets and lengths are deliberately absent from the manifest
// and are recomputed on every encode.
type SegmentRef struct {
	Path string `toml:"path"`
	Tag  Tag    `toml:"tag"`
	Unk  uint32 `toml:"unk"`
}

// Manifest is the editable TOML form of an ftab image. Relative paths
// are resolved against the directory the manifest lives in.
type Manifest struct {
	Unk0 uint32 `toml:"unk_0"`
	Unk1 uint32 `toml:"unk_1"`
	Unk2 uint32 `toml:"unk_2"`
	Unk3 uint32 `toml:"unk_3"`
	Unk4 uint32 `toml:"unk_4"`
	Unk5 uint32 `toml:"unk_5"`
	Unk6 uint32 `toml:"unk_6"`

	// Ticket names the signature blob file; empty means the packed file
	// embeds no ticket.
	Ticket string `toml:"ticket,omitempty"`

	Segments []SegmentRef `toml:"segments"`
}

// LoadManifest reads and parses a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := fileio.ReadFile("manifest", path)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %q: %w", path, err)
	}
	return &m, nil
}

// Save serializes the manifest to path.
func (m *Manifest) Save(path string, overwrite bool) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(m); err != nil {
		return fmt.Errorf("serialize manifest: %w", err)
	}
	return fileio.SaveFile("manifest", path, buf.Bytes(), overwrite)
}

// ToManifest writes every payload (and the ticket, when present) into
// dir and returns a manifest referencing the written files by their
// names relative to dir. Filenames derive from the tag, with a
// positional suffix when the same name repeats, so duplicate tags never
// clobber each other.
func (img *Image) ToManifest(dir string, overwrite bool) (*Manifest, error) {
	m := &Manifest{
		Unk0:     img.Unk0,
		Unk1:     img.Unk1,
		Unk2:     img.Unk2,
		Unk3:     img.Unk3,
		Unk4:     img.Unk4,
		Unk5:     img.Unk5,
		Unk6:     img.Unk6,
		Segments: make([]SegmentRef, 0, len(img.Segments)),
	}

	if img.Ticket != nil {
		path := fileio.QualifyPath(TicketFileName, dir)
		if err := fileio.SaveFile("ticket", path, img.Ticket, overwrite); err != nil {
			return nil, err
		}
		m.Ticket = TicketFileName
	}

	seen := make(map[string]int, len(img.Segments))
	for i := range img.Segments {
		seg := &img.Segments[i]
		name := segmentFileName(seg.Tag, seen)
		path := fileio.QualifyPath(name, dir)
		if err := fileio.SaveFile("segment", path, seg.Data, overwrite); err != nil {
			return nil, err
		}
		m.Segments = append(m.Segments, SegmentRef{
			Path: name,
			Tag:  seg.Tag,
			Unk:  seg.Unk,
		})
	}

	return m, nil
}

// FromManifest assembles an Image from a manifest, reading every
// referenced segment file and the ticket from disk. Relative paths are
// resolved against dir.
func FromManifest(m *Manifest, dir string) (*Image, error) {
	img := &Image{
		Unk0:     m.Unk0,
		Unk1:     m.Unk1,
		Unk2:     m.Unk2,
		Unk3:     m.Unk3,
		Unk4:     m.Unk4,
		Unk5:     m.Unk5,
		Unk6:     m.Unk6,
		Segments: make([]Segment, 0, len(m.Segments)),
	}

	for i := range m.Segments {
		ref := &m.Segments[i]
		data, err := fileio.ReadFile("segment", fileio.QualifyPath(ref.Path, dir))
		if err != nil {
			return nil, err
		}
		img.Segments = append(img.Segments, Segment{
			Tag:  ref.Tag,
			Unk:  ref.Unk,
			Data: data,
		})
	}

	if m.Ticket != "" {
		ticket, err := fileio.ReadFile("ticket", fileio.QualifyPath(m.Ticket, dir))
		if err != nil {
			return nil, err
		}
		img.Ticket = ticket
	}

	return img, nil
}

// segmentFileName picks the output filename for a segment: the tag
// itself for alphanumeric tags, a hex form otherwise, and an index
// suffix whenever the base name was already used.
func segmentFileName(tag Tag, seen map[string]int) string {
	var base string
	if tag.alphanumeric() {
		base = string(tag[:])
	} else {
		base = "tag_" + hex.EncodeToString(tag[:])
	}
	n := seen[base]
	seen[base] = n + 1
	if n == 0 {
		return base + ".bin"
	}
	return fmt.Sprintf("%s_%d.bin", base, n)
}
