package device

import "github.com/dcoles/xbitstream/bram"

// tilesXCVU9P is a representative RAMB36E2 tile table for XCVU9P. The
// reference UltraScale+ support this is grounded on is itself flagged
// experimental and ships no concrete per-device tile table; these
// offsets are synthesized on the same clock-region stride pattern used
// by the 7-series tables, enough to exercise the RAMB36E2 mapper end to
// end but not validated against real hardware.
var tilesXCVU9P = func() []Tile {
	const (
		rows       = 8
		cols       = 4
		baseOffset = 0x02000000
		rowStride  = 0x00020000
		colStride  = 0x00000140
	)
	tiles := make([]Tile, 0, rows*cols)
	for x := 0; x < cols; x++ {
		for y := 0; y < rows; y++ {
			tiles = append(tiles, Tile{
				X:                   x,
				Y:                   y,
				SLRIndex:            0,
				BitstreamOffsetBits: baseOffset + x*rowStride + y*colStride,
				Kind:                bram.KindRAMB36E2,
			})
		}
	}
	return tiles
}()
