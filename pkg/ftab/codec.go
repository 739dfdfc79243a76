package ftab

import "encoding/binary"

// Explicit little-endian field codecs for the fixed-layout structures.
// Struct casting would also work on little-endian hosts but would tie
// the file format to the host byte order.

func decodeHeader(b []byte) (fileHeader, bool) {
	var h fileHeader
	if len(b) < HeaderLen {
		return h, false
	}
	h.Unk0 = binary.LittleEndian.Uint32(b[0:4])
	h.Unk1 = binary.LittleEndian.Uint32(b[4:8])
	h.Unk2 = binary.LittleEndian.Uint32(b[8:12])
	h.Unk3 = binary.LittleEndian.Uint32(b[12:16])
	h.TicketOffset = binary.LittleEndian.Uint32(b[16:20])
	h.TicketLen = binary.LittleEndian.Uint32(b[20:24])
	h.Unk4 = binary.LittleEndian.Uint32(b[24:28])
	h.Unk5 = binary.LittleEndian.Uint32(b[28:32])
	copy(h.Magic[:], b[32:40])
	h.SegmentCount = binary.LittleEndian.Uint32(b[40:44])
	h.Unk6 = binary.LittleEndian.Uint32(b[44:48])
	return h, true
}

func encodeHeader(b []byte, h fileHeader) bool {
	if len(b) < HeaderLen {
		return false
	}
	binary.LittleEndian.PutUint32(b[0:4], h.Unk0)
	binary.LittleEndian.PutUint32(b[4:8], h.Unk1)
	binary.LittleEndian.PutUint32(b[8:12], h.Unk2)
	binary.LittleEndian.PutUint32(b[12:16], h.Unk3)
	binary.LittleEndian.PutUint32(b[16:20], h.TicketOffset)
	binary.LittleEndian.PutUint32(b[20:24], h.TicketLen)
	binary.LittleEndian.PutUint32(b[24:28], h.Unk4)
	binary.LittleEndian.PutUint32(b[28:32], h.Unk5)
	copy(b[32:40], h.Magic[:])
	binary.LittleEndian.PutUint32(b[40:44], h.SegmentCount)
	binary.LittleEndian.PutUint32(b[44:48], h.Unk6)
	return true
}

func decodeSegmentHeader(b []byte) (segmentHeader, bool) {
	var s segmentHeader
	if len(b) < SegmentHeaderLen {
		return s, false
	}
	copy(s.Tag[:], b[0:4])
	s.Off = binary.LittleEndian.Uint32(b[4:8])
	s.Len = binary.LittleEndian.Uint32(b[8:12])
	s.Unk = binary.LittleEndian.Uint32(b[12:16])
	return s, true
}

func encodeSegmentHeader(b []byte, s segmentHeader) bool {
	if len(b) < SegmentHeaderLen {
		return false
	}
	copy(b[0:4], s.Tag[:])
	binary.LittleEndian.PutUint32(b[4:8], s.Off)
	binary.LittleEndian.PutUint32(b[8:12], s.Len)
	binary.LittleEndian.PutUint32(b[12:16], s.Unk)
	return true
}
