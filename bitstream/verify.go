package bitstream

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/dcoles/xbitstream/bram"
	"github.com/dcoles/xbitstream/device"
)

// TileCheck is one tile's expected contents, checked by VerifyTiles.
type TileCheck struct {
	SLRIndex int
	Tile     device.Tile
	Parity   bool
	Want     []byte
}

// VerifyTiles reads back every check's tile contents and reports the
// first mismatch, if any. Checks are read-only and independent, so this
// is the one place in the module that fans work across goroutines (via
// errgroup) rather than running the single-threaded decode/engine path;
// it never mutates the bitstream or any engine state.
func (bs *Bitstream) VerifyTiles(ctx context.Context, checks []TileCheck) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, check := range checks {
		check := check
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			view := bs.SLR(check.SLRIndex)
			got, err := bram.Extract(check.Tile.Kind, false, check.Tile.BitstreamOffsetBits, view, check.Parity)
			if err != nil {
				return err
			}
			if !bytesEqual(got, check.Want) {
				return &MismatchError{SLRIndex: check.SLRIndex, X: check.Tile.X, Y: check.Tile.Y}
			}
			return nil
		})
	}
	return g.Wait()
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
