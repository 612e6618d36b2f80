package packet

import "fmt"

// UnsynchronizedStreamError indicates no sync word was found where strict
// synchronization was requested.
type UnsynchronizedStreamError struct {
	Offset int
}

func (e *UnsynchronizedStreamError) Error() string {
	return fmt.Sprintf("unsynchronized stream at byte offset %d: no sync word found", e.Offset)
}

// IsUnsynchronizedStream reports whether err is an *UnsynchronizedStreamError.
func IsUnsynchronizedStream(err error) bool {
	_, ok := err.(*UnsynchronizedStreamError)
	return ok
}

// MalformedPacketError indicates a header with an unknown packet type, or a
// TYPE2 header not preceded by a zero-count TYPE1.
type MalformedPacketError struct {
	Offset int
	Reason string
}

func (e *MalformedPacketError) Error() string {
	return fmt.Sprintf("malformed packet at byte offset %d: %s", e.Offset, e.Reason)
}

// IsMalformedPacket reports whether err is a *MalformedPacketError.
func IsMalformedPacket(err error) bool {
	_, ok := err.(*MalformedPacketError)
	return ok
}

// TruncatedPayloadError indicates a declared word count exceeds the
// remaining input.
type TruncatedPayloadError struct {
	Offset    int
	WordCount int
	Remaining int
}

func (e *TruncatedPayloadError) Error() string {
	return fmt.Sprintf("truncated payload at byte offset %d: word count %d exceeds %d remaining words",
		e.Offset, e.WordCount, e.Remaining)
}

// IsTruncatedPayload reports whether err is a *TruncatedPayloadError.
func IsTruncatedPayload(err error) bool {
	_, ok := err.(*TruncatedPayloadError)
	return ok
}
