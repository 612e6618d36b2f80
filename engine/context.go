package engine

// slrContext is the live state of one SLR's configuration pass.
type slrContext struct {
	slrIndex      int
	far           uint32
	idcode        uint32
	haveIdcode    bool
	writeMode     WriteMode
	writtenFrames map[uint32]bool
	lastFrame     []uint32
}

func newSlrContext(slrIndex int) *slrContext {
	return &slrContext{
		slrIndex:      slrIndex,
		writeMode:     ReadOnly,
		writtenFrames: make(map[uint32]bool),
	}
}
