package ftab

import (
	"fmt"
	"math"
)

// Decode parses data as a complete ftab file and returns an Image that
// owns copies of every payload and the ticket, so the input buffer may
// be reused or unmapped afterwards.
//
// Decoding is purely structural: tags are not validated, duplicate tags
// are kept in table order, payload bytes are never interpreted.
func Decode(data []byte) (*Image, error) {
	hdr, ok := decodeHeader(data)
	if !ok {
		return nil, fmt.Errorf("%w: file shorter than %d bytes", ErrMalformedHeader, HeaderLen)
	}
	if string(hdr.Magic[:]) != Magic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrMalformedHeader, hdr.Magic[:])
	}

	// Cheap bound before allocating: even an otherwise empty file cannot
	// hold a table this large.
	if uint64(hdr.SegmentCount) > (math.MaxInt-HeaderLen)/SegmentHeaderLen {
		return nil, fmt.Errorf("%w: segment count %d overflows the table size", ErrMalformedHeader, hdr.SegmentCount)
	}
	count := int(hdr.SegmentCount)
	tableEnd := HeaderLen + count*SegmentHeaderLen
	if tableEnd > len(data) {
		return nil, fmt.Errorf("%w: %d records need %d bytes, file has %d",
			ErrTruncatedSegmentTable, count, tableEnd, len(data))
	}

	img := &Image{
		Unk0:     hdr.Unk0,
		Unk1:     hdr.Unk1,
		Unk2:     hdr.Unk2,
		Unk3:     hdr.Unk3,
		Unk4:     hdr.Unk4,
		Unk5:     hdr.Unk5,
		Unk6:     hdr.Unk6,
		Segments: make([]Segment, 0, count),
	}

	for i := 0; i < count; i++ {
		rec, _ := decodeSegmentHeader(data[HeaderLen+i*SegmentHeaderLen:])
		payload, ok := cut(data, rec.Off, rec.Len, tableEnd)
		if !ok {
			return nil, fmt.Errorf("%w: segment %d (tag %s) range [%d, %d)",
				ErrTruncatedPayload, i, rec.Tag, rec.Off, uint64(rec.Off)+uint64(rec.Len))
		}
		data := make([]byte, len(payload))
		copy(data, payload)
		img.Segments = append(img.Segments, Segment{
			Tag:  rec.Tag,
			Unk:  rec.Unk,
			Data: data,
		})
	}

	// No presence flag exists; a zero offset and length pair means no
	// ticket, and nothing is scanned for.
	if hdr.TicketOffset != 0 || hdr.TicketLen != 0 {
		ticket, ok := cut(data, hdr.TicketOffset, hdr.TicketLen, tableEnd)
		if !ok {
			return nil, fmt.Errorf("%w: range [%d, %d)",
				ErrTicketOutOfBounds, hdr.TicketOffset, uint64(hdr.TicketOffset)+uint64(hdr.TicketLen))
		}
		// make keeps a zero-length ticket non-nil, so presence survives
		// the round trip.
		img.Ticket = make([]byte, len(ticket))
		copy(img.Ticket, ticket)
	}

	return img, nil
}

// cut slices [off, off+length) out of data. The range must start at or
// after floor (the end of the header/table region) and end inside the
// buffer; overlapping the structural region is as invalid as running
// past the end.
func cut(data []byte, off, length uint32, floor int) ([]byte, bool) {
	start := uint64(off)
	end := start + uint64(length)
	if start < uint64(floor) || end > uint64(len(data)) {
		return nil, false
	}
	return data[start:end], true
}
