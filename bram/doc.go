// Package bram implements the BRAM-to-bitstream bit mapping layer: for a
// given primitive type and logical (bit, parity) address, where in a
// device's frame-data area does that bit live.
//
// There are three primitive types, each a lookup table plus a constant
// stride:
//
//	RAMB36E1  7-series 36Kb block RAM
//	RAMB18E1  7-series 18Kb block RAM, delegates to an enclosing RAMB36E1
//	RAMB36E2  UltraScale+ 36Kb block RAM
//
// All three are pure functions of their inputs; there is no mutable state
// and no device-specific behavior here. Device-specific placement (which
// (x,y) tile maps to which bitstream_offset_bits) lives in the device
// package.
package bram
