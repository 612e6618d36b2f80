package bram

// dataBitTable36E2 and parityBitTable36E2 are transcribed verbatim from the
// UltraScale+ logic-location tables: they were inferred by synthesizing a
// design that uses every block RAM and reading back the generated logic
// location file, the same way the 7-series tables were.
var dataBitTable36E2 = [128]int{
	0x00, 0x84, 0x0C, 0x90, 0x18, 0x9C, 0x24, 0xA8,
	0x3C, 0xC0, 0x48, 0xCC, 0x54, 0xD8, 0x60, 0xE4,
	0x06, 0x8A, 0x12, 0x96, 0x1E, 0xA2, 0x2A, 0xAE,
	0x42, 0xC6, 0x4E, 0xD2, 0x5A, 0xDE, 0x66, 0xEA,
	0x03, 0x87, 0x0F, 0x93, 0x1B, 0x9F, 0x27, 0xAB,
	0x3F, 0xC3, 0x4B, 0xCF, 0x57, 0xDB, 0x63, 0xE7,
	0x09, 0x8D, 0x15, 0x99, 0x21, 0xA5, 0x2D, 0xB1,
	0x45, 0xC9, 0x51, 0xD5, 0x5D, 0xE1, 0x69, 0xED,
	0x02, 0x86, 0x0E, 0x92, 0x1A, 0x9E, 0x26, 0xAA,
	0x3E, 0xC2, 0x4A, 0xCE, 0x56, 0xDA, 0x62, 0xE6,
	0x08, 0x8C, 0x14, 0x98, 0x20, 0xA4, 0x2C, 0xB0,
	0x44, 0xC8, 0x50, 0xD4, 0x5C, 0xE0, 0x68, 0xEC,
	0x05, 0x89, 0x11, 0x95, 0x1D, 0xA1, 0x29, 0xAD,
	0x41, 0xC5, 0x4D, 0xD1, 0x59, 0xDD, 0x65, 0xE9,
	0x0B, 0x8F, 0x17, 0x9B, 0x23, 0xA7, 0x2F, 0xB3,
	0x47, 0xCB, 0x53, 0xD7, 0x5F, 0xE3, 0x6B, 0xEF,
}

var parityBitTable36E2 = [16]int{
	0x30, 0xB4, 0x36, 0xBA, 0x33, 0xB7, 0x39, 0xBD,
	0x32, 0xB6, 0x38, 0xBC, 0x35, 0xB9, 0x3B, 0xBF,
}

const blockScale36E2 = 0xBA0

// RAMB36E2 maps logical bit addresses of a Virtex UltraScale+ 36Kb block
// RAM onto their absolute position within a device's frame-data area.
// Shape-compatible with RAMB36E1 (1024 words, 32 data bits + 4 parity bits)
// but with different lookup tables and block scale.
type RAMB36E2 struct{}

const (
	RAMB36E2NumWords   = 1024
	RAMB36E2DataBits   = 32
	RAMB36E2ParityBits = 4
)

// Map returns the absolute frame-data bit offset for logical bit index
// bitIndex within the data plane (parity=false) or parity plane
// (parity=true).
func (RAMB36E2) Map(bitIndex int, parity bool) int {
	if parity {
		return (bitIndex>>4)*blockScale36E2 + parityBitTable36E2[bitIndex&0xF]
	}
	return (bitIndex>>7)*blockScale36E2 + dataBitTable36E2[bitIndex&0x7F]
}
