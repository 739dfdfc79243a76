// Package ftab implements the 'ftab' firmware container format.
//
// An ftab file is a fixed header followed by a table of tagged segment
// records, the raw segment payloads, and an optional trailing signature
// blob (the "ticket"). The package maps files to an in-memory Image and
// back, and converts Images to and from the editable TOML manifest form.
// Segment contents and the ticket are opaque bytes and are never
// interpreted.
package ftab

// Ftab global constants must never change.
const (
	// Magic is the file magic found at offset 32 of every ftab header.
	Magic = "rkosftab"

	// HeaderLen is the size of the fixed ftab header in bytes.
	HeaderLen = 48

	// SegmentHeaderLen is the size of one segment table record in bytes.
	SegmentHeaderLen = 16

	// segmentAlign pads each payload's start to this boundary. The ticket
	// is not padded; that matches the original builder.
	segmentAlign = 4
)

// fileHeader is the on-disk ftab header. All scalar fields are
// little-endian. The unk fields have no known meaning and must be
// carried through byte-exact.
type fileHeader struct {
	Unk0         uint32
	Unk1         uint32
	Unk2         uint32
	Unk3         uint32
	TicketOffset uint32
	TicketLen    uint32
	Unk4         uint32
	Unk5         uint32
	Magic        [8]byte
	SegmentCount uint32
	Unk6         uint32
}

// segmentHeader is one on-disk segment table record. Offsets are
// absolute file offsets.
type segmentHeader struct {
	Tag Tag
	Off uint32
	Len uint32
	Unk uint32
}

// Segment is one tagged payload entry of an Image. The Data slice is
// owned by the segment; decode copies it out of the source buffer.
type Segment struct {
	Tag  Tag
	Unk  uint32
	Data []byte
}

// Image is the in-memory form of an ftab file: the opaque header
// scalars, the ordered segment list and the optional ticket.
//
// Segment order is the table order of the source file and is preserved
// through every conversion. Duplicate tags are legal. Offsets and
// lengths are not part of the model; Encode derives them.
type Image struct {
	Unk0 uint32
	Unk1 uint32
	Unk2 uint32
	Unk3 uint32
	Unk4 uint32
	Unk5 uint32
	Unk6 uint32

	Segments []Segment

	// Ticket holds the raw signature blob, nil when absent.
	Ticket []byte
}

// HasTicket reports whether the image carries a ticket.
func (img *Image) HasTicket() bool {
	return img.Ticket != nil
}
