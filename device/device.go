// Package device is the catalog of known FPGA devices: their IDCODEs and
// the fixed placement of their block-RAM tiles within the bitstream's
// frame-data area.
//
// Placement data here is transcribed from the reference tile tables for
// each part; it is not computed. Two families are represented: Zynq-7000
// (7-series, RAMB36E1 tiles) and Virtex UltraScale+ (RAMB36E2 tiles).
package device

import "github.com/dcoles/xbitstream/bram"

// Tile is one block-RAM primitive's fixed location: its (x, y) coordinate
// in the device's BRAM grid, the SLR it belongs to, and the absolute bit
// offset into that SLR's frame-data area where its mapping tables apply.
type Tile struct {
	X                   int
	Y                   int
	SLRIndex            int
	BitstreamOffsetBits int
	Kind                bram.Kind
}

// Device describes a specific FPGA part: its identification, its
// frame geometry, and the fixed tile table used to locate its block RAMs
// within a bitstream.
type Device struct {
	Name          string
	IDCode        uint32
	WordsPerFrame int
	SLRCount      int
	Tiles         []Tile
}

// TileAt returns the tile at grid coordinate (x, y) within SLR slr, and
// whether one exists.
func (d *Device) TileAt(slr, x, y int) (Tile, bool) {
	for _, t := range d.Tiles {
		if t.SLRIndex == slr && t.X == x && t.Y == y {
			return t, true
		}
	}
	return Tile{}, false
}
