// Package packet decodes the Xilinx UG470 configuration packet grammar:
// synchronization to the SYNC word, and TYPE1/TYPE2 header decoding into a
// stream of register/command events.
package packet

import (
	"encoding/binary"
	"fmt"
)

// Decode scans data for a sync word, then decodes configuration packets in
// stream order, invoking cb once per decoded Event. It returns the byte
// offset of the first input word past the last packet consumed.
//
// The decoder is stateless across calls to Decode but stateful within one
// call: a TYPE1 header with word_count == 0 and a non-nop op is paired with
// the TYPE2 header that must immediately follow it, and the pair is
// reported to cb as a single Event.
func Decode(data []byte, opts Options, cb Callback) (int, error) {
	pos, err := synchronize(data, opts)
	if err != nil {
		return pos, err
	}

	for {
		if pos+4 > len(data) {
			return pos, nil
		}

		header := binary.BigEndian.Uint32(data[pos : pos+4])

		if header == SyncWord {
			pos += 4
			continue
		}

		typeBits := (header >> headerTypeShift) & headerTypeMask
		if typeBits != type1 {
			return pos, &MalformedPacketError{
				Offset: pos,
				Reason: fmt.Sprintf("unexpected header type bits 0b%03b", typeBits),
			}
		}

		op := Op((header >> 27) & 0x3)
		reg := Register((header >> 13) & 0x1F)
		wordCount := int(header & 0x7FF)

		if wordCount == 0 && op != OpNop {
			next, npos, err := requireType2(data, pos)
			if err != nil {
				return pos, err
			}

			payloadStart := npos
			payload, end, err := readPayload(data, payloadStart, int(next&0x07FFFFFF))
			if err != nil {
				return pos, err
			}

			signal := cb(Event{Op: op, Register: reg, Payload: payload, HeaderOffset: pos, PayloadOffset: payloadStart})
			pos = end
			if signal == Stop {
				return pos, nil
			}
			continue
		}

		payloadStart := pos + 4
		payload, end, err := readPayload(data, payloadStart, wordCount)
		if err != nil {
			return pos, err
		}

		signal := cb(Event{Op: op, Register: reg, Payload: payload, HeaderOffset: pos, PayloadOffset: payloadStart})
		pos = end
		if signal == Stop {
			return pos, nil
		}
	}
}

// synchronize scans forward for the first sync word and skips any run of
// consecutive sync words, returning the offset of the first packet header.
func synchronize(data []byte, opts Options) (int, error) {
	pos := 0
	for pos+4 <= len(data) {
		if binary.BigEndian.Uint32(data[pos:pos+4]) == SyncWord {
			for pos+4 <= len(data) && binary.BigEndian.Uint32(data[pos:pos+4]) == SyncWord {
				pos += 4
			}
			return pos, nil
		}
		pos += 4
	}

	if opts.StrictSync {
		return 0, &UnsynchronizedStreamError{Offset: 0}
	}
	return len(data), nil
}

// requireType2 reads the header immediately following a zero-count TYPE1
// header and verifies it is a TYPE2 header.
func requireType2(data []byte, type1Offset int) (header uint32, next int, err error) {
	pos := type1Offset + 4
	if pos+4 > len(data) {
		return 0, 0, &MalformedPacketError{
			Offset: type1Offset,
			Reason: "zero-count TYPE1 not followed by a TYPE2 header (input ended)",
		}
	}

	header = binary.BigEndian.Uint32(data[pos : pos+4])
	typeBits := (header >> headerTypeShift) & headerTypeMask
	if typeBits != type2 {
		return 0, 0, &MalformedPacketError{
			Offset: type1Offset,
			Reason: fmt.Sprintf("zero-count TYPE1 followed by header type bits 0b%03b, not TYPE2", typeBits),
		}
	}
	return header, pos + 4, nil
}

// readPayload decodes wordCount big-endian 32-bit words starting at
// payloadStart, returning the decoded slice and the offset immediately
// past the payload.
func readPayload(data []byte, payloadStart, wordCount int) ([]uint32, int, error) {
	payloadEnd := payloadStart + wordCount*4
	if payloadEnd > len(data) {
		return nil, 0, &TruncatedPayloadError{
			Offset:    payloadStart - 4,
			WordCount: wordCount,
			Remaining: (len(data) - payloadStart) / 4,
		}
	}

	payload := make([]uint32, wordCount)
	for i := 0; i < wordCount; i++ {
		payload[i] = binary.BigEndian.Uint32(data[payloadStart+i*4 : payloadStart+i*4+4])
	}
	return payload, payloadEnd, nil
}
