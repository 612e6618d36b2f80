package bram

// ramb18e1TopDataOffset and ramb18e1TopParityOffset are the bit-address
// adjustments RAMB18E1 applies before delegating to its enclosing
// RAMB36E1's tables. Top/bottom placement has not been cross-checked
// against real hardware; treat RAMB18E1 extract/inject mismatches as a
// known limitation.
const (
	ramb18e1TopDataOffset   = 0x4000
	ramb18e1TopParityOffset = 0x0800
)

// RAMB18E1 maps logical bit addresses of a 7-series 18Kb block RAM. Every
// RAMB18E1 tile occupies the top or bottom half of an enclosing RAMB36E1
// tile and shares that tile's bitstream_offset_bits; RAMB18E1 delegates
// entirely to the parent RAMB36E1's lookup tables with an added bit offset.
type RAMB18E1 struct {
	// IsTop selects the top half (true) or bottom half (false) of the
	// enclosing RAMB36E1.
	IsTop bool
}

const (
	RAMB18E1NumWords   = 1024
	RAMB18E1DataBits   = 16
	RAMB18E1ParityBits = 4
)

// Map returns the absolute frame-data bit offset, relative to the
// enclosing RAMB36E1 tile's bitstream_offset_bits.
func (r RAMB18E1) Map(bitIndex int, parity bool) int {
	parent := RAMB36E1{}
	if parity {
		offset := 0
		if r.IsTop {
			offset = ramb18e1TopParityOffset
		}
		return parent.Map(bitIndex+offset, true)
	}

	offset := 0
	if r.IsTop {
		offset = ramb18e1TopDataOffset
	}
	return parent.Map(bitIndex+offset, false)
}
