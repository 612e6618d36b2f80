// Package engine implements the per-SLR configuration-engine state
// machine described by UG470: frame address tracking, write-mode
// transitions (read_only / write_once / overwrite), FDRI/MFWR frame
// commit, IDCODE capture, and nested SLR-switch context push/pop.
//
// The engine is a pure state-machine replay: it has no knowledge of the
// bitstream's byte layout (that's the bitstream package's job) and
// performs no I/O. Callers feed it raw packet bytes; it reports committed
// frames and state transitions through the optional Callbacks.
package engine
