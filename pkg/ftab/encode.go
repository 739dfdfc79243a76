package ftab

import (
	"bytes"
	"fmt"
	"io"
	"math"
)

// Encode lays the image out as a complete ftab file.
//
// The segment count and every offset are derived from the segment list
// itself; offsets carried in from a decoded file or a hand-edited
// manifest are never trusted, so payloads that changed size still land
// in a structurally consistent file.
func Encode(img *Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeTo(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeTo streams the encoded image to w. Capacity checks run before
// the first byte is written, so a failed encode leaves w untouched.
func EncodeTo(w io.Writer, img *Image) error {
	hdr, table, err := layout(img)
	if err != nil {
		return err
	}

	var hb [HeaderLen]byte
	encodeHeader(hb[:], hdr)
	if _, err := w.Write(hb[:]); err != nil {
		return err
	}

	var sb [SegmentHeaderLen]byte
	for i := range table {
		encodeSegmentHeader(sb[:], table[i])
		if _, err := w.Write(sb[:]); err != nil {
			return err
		}
	}

	var pad [segmentAlign]byte
	cursor := uint64(HeaderLen) + uint64(len(table))*SegmentHeaderLen
	for i := range img.Segments {
		if n := padTo(cursor); n > 0 {
			if _, err := w.Write(pad[:n]); err != nil {
				return err
			}
			cursor += uint64(n)
		}
		if _, err := w.Write(img.Segments[i].Data); err != nil {
			return err
		}
		cursor += uint64(len(img.Segments[i].Data))
	}

	if img.Ticket != nil {
		if _, err := w.Write(img.Ticket); err != nil {
			return err
		}
	}
	return nil
}

// layout computes the header and segment table with fresh offsets.
func layout(img *Image) (fileHeader, []segmentHeader, error) {
	count := uint64(len(img.Segments))
	if count > math.MaxUint32 || HeaderLen+count*SegmentHeaderLen > math.MaxUint32 {
		return fileHeader{}, nil, fmt.Errorf("%w: %d segments", ErrTooManySegments, count)
	}

	table := make([]segmentHeader, len(img.Segments))
	cursor := uint64(HeaderLen) + count*SegmentHeaderLen
	for i := range img.Segments {
		seg := &img.Segments[i]
		cursor += uint64(padTo(cursor))
		segLen := uint64(len(seg.Data))
		if segLen > math.MaxUint32 || cursor+segLen > math.MaxUint32 {
			return fileHeader{}, nil, fmt.Errorf("%w: segment %d (tag %s) of %d bytes at offset %d",
				ErrSegmentTooLarge, i, seg.Tag, segLen, cursor)
		}
		table[i] = segmentHeader{
			Tag: seg.Tag,
			Off: uint32(cursor),
			Len: uint32(segLen),
			Unk: seg.Unk,
		}
		cursor += segLen
	}

	hdr := fileHeader{
		Unk0:         img.Unk0,
		Unk1:         img.Unk1,
		Unk2:         img.Unk2,
		Unk3:         img.Unk3,
		Unk4:         img.Unk4,
		Unk5:         img.Unk5,
		Unk6:         img.Unk6,
		SegmentCount: uint32(len(img.Segments)),
	}
	copy(hdr.Magic[:], Magic)

	if img.Ticket != nil {
		ticketLen := uint64(len(img.Ticket))
		if cursor > math.MaxUint32 || ticketLen > math.MaxUint32 {
			return fileHeader{}, nil, fmt.Errorf("%w: ticket of %d bytes at offset %d",
				ErrSegmentTooLarge, ticketLen, cursor)
		}
		hdr.TicketOffset = uint32(cursor)
		hdr.TicketLen = uint32(ticketLen)
	}

	return hdr, table, nil
}

// padTo returns the zero padding needed to bring cursor to the segment
// alignment boundary.
func padTo(cursor uint64) int {
	return int((segmentAlign - cursor%segmentAlign) % segmentAlign)
}
