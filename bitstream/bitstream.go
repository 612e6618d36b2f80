// Package bitstream implements the bitstream container: loading a raw
// configuration file, locating each Super Logic Region's frame-data span,
// exposing bit-level read/write access to frame data (with the 32-bit
// byte-swap UG470 bitstreams use), and the CRC-strip rewrite.
package bitstream

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/dcoles/xbitstream/device"
	"github.com/dcoles/xbitstream/packet"
)

// defaultWordsPerFrame is used for the readback pad-frame strip when the
// SLR's IDCODE does not resolve to a known catalog device.
const defaultWordsPerFrame = 101

// SlrInfo describes one Super Logic Region's position within the
// bitstream's byte buffer.
type SlrInfo struct {
	SyncByteOffset      int
	FrameDataByteOffset int
	FrameDataByteSize   int
	IDCode              uint32
	HaveIDCode          bool
	IsReadback          bool
}

// Bitstream is a loaded configuration file: the owned byte buffer plus
// the SLR boundaries found within it.
type Bitstream struct {
	bytes []byte
	slrs  []SlrInfo
}

// Load reads path and parses it as a bitstream.
func Load(path string) (*Bitstream, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Op: "load", Err: err}
	}
	return New(data)
}

// New parses data (taken by reference, not copied) as a bitstream.
func New(data []byte) (*Bitstream, error) {
	slrs, err := extractSLRs(data)
	if err != nil {
		return nil, err
	}
	return &Bitstream{bytes: data, slrs: slrs}, nil
}

// Save writes the bitstream's byte buffer verbatim to path.
func (bs *Bitstream) Save(path string) error {
	if err := os.WriteFile(path, bs.bytes, 0o644); err != nil {
		return &IOError{Op: "save", Err: err}
	}
	return nil
}

// Bytes returns the bitstream's backing byte buffer. Callers must not
// retain it past further edits to bs.
func (bs *Bitstream) Bytes() []byte {
	return bs.bytes
}

// SLRs returns the ordered list of SLRs found in this bitstream.
func (bs *Bitstream) SLRs() []SlrInfo {
	out := make([]SlrInfo, len(bs.slrs))
	copy(out, bs.slrs)
	return out
}

// extractSLRs implements the two-pass SLR extractor described in the
// bitstream container's component design: pass 1 decodes each flat
// sub-stream (following SLR-switch writes as a linear continuation, not a
// recursive descent — see the engine package for the contrasting
// recursive model), pass 2 retains only sub-streams that
// carried real frame data.
func extractSLRs(data []byte) ([]SlrInfo, error) {
	type candidate struct {
		SlrInfo
		haveFDRI, haveFDRO bool
	}

	var candidates []candidate
	var anyFDRI, anyFDRO bool
	cursor := 0

	for {
		var cand candidate
		cand.SyncByteOffset = cursor
		switchAt := -1
		multiple := false

		_, err := packet.Decode(data[cursor:], packet.Options{}, func(ev packet.Event) packet.Signal {
			switch {
			case ev.Register == packet.RegIDCODE && ev.Op == packet.OpWrite && len(ev.Payload) > 0:
				cand.IDCode = ev.Payload[len(ev.Payload)-1]
				cand.HaveIDCode = true

			case ev.Register == packet.RegFDRI && ev.Op == packet.OpWrite:
				if cand.haveFDRI || cand.haveFDRO {
					multiple = true
					return packet.Stop
				}
				cand.haveFDRI = true
				cand.FrameDataByteOffset = cursor + ev.PayloadOffset
				cand.FrameDataByteSize = ev.WordCount() * 4

			case ev.Register == packet.RegFDRO && ev.Op == packet.OpWrite:
				if cand.haveFDRI || cand.haveFDRO {
					multiple = true
					return packet.Stop
				}
				cand.haveFDRO = true
				cand.IsReadback = true
				cand.FrameDataByteOffset = cursor + ev.PayloadOffset
				cand.FrameDataByteSize = ev.WordCount() * 4

			case ev.Register == packet.RegSlrSwitch && ev.Op == packet.OpWrite && len(ev.Payload) > 0:
				switchAt = cursor + ev.PayloadOffset
				return packet.Stop
			}
			return packet.Continue
		})
		if err != nil {
			return nil, err
		}
		if multiple {
			return nil, &MalformedBitstreamError{Reason: "multiple FDRI/FDRO writes in a single sub-stream"}
		}
		if cand.haveFDRI {
			anyFDRI = true
		}
		if cand.haveFDRO {
			anyFDRO = true
		}

		candidates = append(candidates, cand)

		if switchAt < 0 {
			break
		}
		cursor = switchAt
	}

	if anyFDRI && anyFDRO {
		return nil, &MalformedBitstreamError{Reason: "mixed FDRI and FDRO writes in the same bitstream"}
	}

	var retained []SlrInfo
	for _, cand := range candidates {
		if cand.FrameDataByteSize == 0 {
			continue
		}
		info := cand.SlrInfo
		if info.IsReadback {
			wpf := defaultWordsPerFrame
			if info.HaveIDCode {
				if d, err := device.ByIDCode(info.IDCode); err == nil {
					wpf = d.WordsPerFrame
				}
			}
			strip := wpf * 4
			if strip > info.FrameDataByteSize {
				return nil, &MalformedBitstreamError{Reason: fmt.Sprintf("readback frame data (%d bytes) smaller than the pipeline+pad frame (%d bytes)", info.FrameDataByteSize, strip)}
			}
			info.FrameDataByteOffset += strip
			info.FrameDataByteSize -= strip
			if info.FrameDataByteSize == 0 {
				// Only the leading pipeline+pad frame was present; no real
				// frame data survives the strip, so this sub-stream is not
				// retained (mirrors the pre-strip FrameDataByteSize == 0 skip
				// above).
				continue
			}
		}
		retained = append(retained, info)
	}

	if len(retained) == 0 {
		return nil, &UnsupportedBitstreamError{Reason: "no sub-stream carried frame data"}
	}
	return retained, nil
}

// SLRView is a bram.BitAccessor bound to one SLR's frame-data span.
type SLRView struct {
	bs  *Bitstream
	idx int
}

// SLR returns a view over the frame data of the i'th SLR.
func (bs *Bitstream) SLR(i int) *SLRView {
	return &SLRView{bs: bs, idx: i}
}

// swapByteOffset applies the 32-bit-word byte swap frame data uses: bit b's
// containing byte is not at byte b/8 but at its mirror within the
// enclosing 4-byte word.
func swapByteOffset(b int) int {
	byteInWord := (b / 8) & 3
	aligned := (b / 8) &^ 3
	return aligned + (3 - byteInWord)
}

// ReadFrameBit implements bram.BitAccessor.
func (v *SLRView) ReadFrameBit(bitIndex int) (bool, error) {
	info := v.bs.slrs[v.idx]
	swapped := swapByteOffset(bitIndex)
	if bitIndex < 0 || swapped < 0 || swapped >= info.FrameDataByteSize {
		return false, &FrameDataOutOfRangeError{SLRIndex: v.idx, BitIndex: bitIndex, Size: info.FrameDataByteSize * 8}
	}
	absolute := info.FrameDataByteOffset + swapped
	bitInByte := uint(bitIndex % 8)
	return v.bs.bytes[absolute]&(1<<bitInByte) != 0, nil
}

// WriteFrameBit implements bram.BitAccessor.
func (v *SLRView) WriteFrameBit(bitIndex int, val bool) error {
	info := v.bs.slrs[v.idx]
	swapped := swapByteOffset(bitIndex)
	if bitIndex < 0 || swapped < 0 || swapped >= info.FrameDataByteSize {
		return &FrameDataOutOfRangeError{SLRIndex: v.idx, BitIndex: bitIndex, Size: info.FrameDataByteSize * 8}
	}
	absolute := info.FrameDataByteOffset + swapped
	bitInByte := uint(bitIndex % 8)
	if val {
		v.bs.bytes[absolute] |= 1 << bitInByte
	} else {
		v.bs.bytes[absolute] &^= 1 << bitInByte
	}
	return nil
}

// StripCRCChecks rewrites every one-word CRC-register write packet
// (header 0x30000001) into two NOP headers, preserving total length.
// Only the top-level packet stream is visited: the payload of an
// SLR-switch write is treated as opaque, so CRC writes inside a nested
// SLR's sub-stream are left as they are. Idempotent: a second call leaves an already-stripped bitstream
// unchanged.
func (bs *Bitstream) StripCRCChecks() error {
	_, err := packet.Decode(bs.bytes, packet.Options{}, func(ev packet.Event) packet.Signal {
		start := ev.HeaderOffset
		end := ev.PayloadOffset + ev.WordCount()*4
		if end-start != 8 {
			return packet.Continue
		}
		if binary.BigEndian.Uint32(bs.bytes[start:start+4]) != packet.CRCStripHeader {
			return packet.Continue
		}
		binary.BigEndian.PutUint32(bs.bytes[start:start+4], packet.NopHeader)
		binary.BigEndian.PutUint32(bs.bytes[start+4:start+8], packet.NopHeader)
		return packet.Continue
	})
	return err
}

// ExportReadback concatenates each SLR's frame-data range, without the
// surrounding command packets, in SLR order. This does not prepend the
// device-specific leading pipeline words and pad frame a real readback
// stream carries on export — an acknowledged gap (see DESIGN.md), not a
// bug to be silently worked around.
func (bs *Bitstream) ExportReadback() []byte {
	var out []byte
	for _, info := range bs.slrs {
		out = append(out, bs.bytes[info.FrameDataByteOffset:info.FrameDataByteOffset+info.FrameDataByteSize]...)
	}
	return out
}
