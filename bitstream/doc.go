// Package bitstream is the configuration-bitstream container: loading a
// raw file, locating each SLR's frame-data span, bit-level frame-data
// access (with the 32-bit byte swap UG470 frame data uses), and the
// CRC-strip edit primitive.
//
// This package answers "where in the byte buffer does each SLR's frame
// data live"; it does not replay the configuration packet stream against
// a state machine (that is the engine package's job) — the two walk
// nested SLR-switch writes differently on purpose, see extractSLRs.
package bitstream
