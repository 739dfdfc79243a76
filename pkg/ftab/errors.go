package ftab

import "errors"

var (
	// ErrMalformedHeader reports a file that is too short for a header,
	// has the wrong magic, or declares a segment count that no file of
	// any size could satisfy.
	ErrMalformedHeader = errors.New("ftab: malformed header")

	// ErrTruncatedSegmentTable reports a segment table extending past
	// the end of the file.
	ErrTruncatedSegmentTable = errors.New("ftab: truncated segment table")

	// ErrTruncatedPayload reports a segment record whose payload range
	// lies outside the file or inside the header/table region.
	ErrTruncatedPayload = errors.New("ftab: truncated segment payload")

	// ErrTicketOutOfBounds reports a ticket range outside the file or
	// inside the header/table region.
	ErrTicketOutOfBounds = errors.New("ftab: ticket out of bounds")

	// ErrSegmentTooLarge reports a payload or ticket whose length or
	// computed offset does not fit the format's 32-bit fields.
	ErrSegmentTooLarge = errors.New("ftab: segment too large")

	// ErrTooManySegments reports a segment list whose count or table
	// size does not fit the format's 32-bit fields.
	ErrTooManySegments = errors.New("ftab: too many segments")
)
